// Package metadata defines the contracts the export pipeline consumes:
// loading records from a backing store, validating them, serializing them to
// text and optionally enriching them before serialization. Implementations
// live in subpackages or behind the storage layer so the pipeline stays
// independent of any concrete backend.
//
//go:generate mockgen -package mockmetadata -source=interface.go -destination=mock/mockmetadata.go *
package metadata

import (
	"context"
	"metashare/pkg/domain"

	"github.com/google/uuid"
)

// Source loads fully resolved records by identity.
type Source interface {
	// Load returns the record with the given type and UUID. It returns an
	// error carrying serrors.ErrNotFound when no such record exists.
	Load(ctx context.Context, recordType string, id uuid.UUID) (domain.Record, error)
}

// Validator checks package descriptors and individual records against the
// application's validation rules. Both methods return nil when the subject is
// valid and a descriptive error otherwise; they never panic.
type Validator interface {
	// ValidatePackage validates the export descriptor before any resolution
	// work begins.
	ValidatePackage(pkg *domain.Package) error
	// ValidateRecord validates a single resolved record.
	ValidateRecord(record domain.Record) error
}

// Serializer produces a deterministic text representation of a value. The
// pipeline passes it record slices (chunk bodies) and the package descriptor
// (header); the produced text is wrapped with a format prologue by the caller.
type Serializer interface {
	Serialize(v any) (string, error)
}

// Enricher applies an idempotent enrichment side effect to a single record.
// The pipeline invokes it only for concept-kind records and only when
// cross-reference attachment is enabled.
type Enricher interface {
	Enrich(ctx context.Context, record domain.Record) error
}
