package metadata

import (
	"context"
	"fmt"
	"metashare/pkg/domain"
	"metashare/pkg/serrors"
	"metashare/pkg/storage"

	"github.com/google/uuid"
)

// StoreSource adapts record storage into a Source. The server runs the export
// pipeline against this adapter so records ingested with the load command are
// resolvable by identity.
type StoreSource struct {
	records storage.RecordStorage
}

// NewStoreSource creates a Source backed by the given record storage.
func NewStoreSource(records storage.RecordStorage) *StoreSource {
	return &StoreSource{records: records}
}

// Load implements Source.
func (s *StoreSource) Load(ctx context.Context, recordType string, id uuid.UUID) (domain.Record, error) {
	record, err := s.records.RecordByTypeAndUUID(ctx, recordType, id)
	if err != nil {
		return nil, fmt.Errorf("could not load %s record %s: %w", recordType, id, err)
	}
	if record == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no %s record with uuid %s", recordType, id)
	}

	return record, nil
}
