package storage

import (
	"context"
	"metashare/pkg/domain"

	"github.com/google/uuid"
)

// RecordStorage defines operations on the metadata records the exporter
// resolves. It is the storage-backed counterpart of metadata.Source: the
// exporter only reads records, the load command writes them.
type RecordStorage interface {
	// StoreRecords inserts or replaces records by (type, uuid) identity and
	// returns the number of stored rows.
	StoreRecords(ctx context.Context, records ...*domain.GenericRecord) (int64, error)
	// RecordByTypeAndUUID fetches a single record by identity. Returns nil when
	// not found.
	RecordByTypeAndUUID(ctx context.Context, recordType string, id uuid.UUID) (*domain.GenericRecord, error)
	// RecordCount returns the total number of stored records.
	RecordCount(ctx context.Context) (int64, error)
}
