package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"metashare/pkg/domain"
	"metashare/pkg/serrors"
	"sync"

	"github.com/google/uuid"
)

// Registry is an in-memory Source keyed by record identity. It backs the
// one-shot export command (records loaded from a fixture file) and tests.
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	records map[domain.Item]domain.Record
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[domain.Item]domain.Record)}
}

// Put stores the record, replacing any previous record with the same identity.
func (r *Registry) Put(records ...domain.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range records {
		r.records[domain.ItemFor(record)] = record
	}
}

// Load implements Source.
func (r *Registry) Load(_ context.Context, recordType string, id uuid.UUID) (domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[domain.Item{Type: recordType, UUID: id}]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "no %s record with uuid %s", recordType, id)
	}

	return record, nil
}

// Len returns the number of stored records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records)
}

// LoadJSON decodes a JSON array of generic records and stores them. It is
// used to seed a Registry from a fixture file.
func (r *Registry) LoadJSON(data []byte) error {
	var records []*domain.GenericRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("could not decode records: %w", err)
	}

	for _, record := range records {
		r.Put(record)
	}

	return nil
}
