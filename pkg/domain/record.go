package domain

import (
	"github.com/google/uuid"
)

const (
	// TypeConcept is the record kind that qualifies for cross-reference
	// enrichment during an export.
	TypeConcept = "Concept"
	// TypeUser is the record kind representing user accounts. Users are
	// principals, not shareable metadata, and are never pulled into a package.
	TypeUser = "User"
)

// Record is a fully resolved metadata record. Each record kind implements
// this interface once, declaring its identity and the identities of every
// record it directly references (including elements of collection-valued
// fields, flattened in field order). The exporter follows References to
// discover the transitive closure of a package without any runtime type
// inspection.
type Record interface {
	// RecordType returns the record kind, e.g. "Concept".
	RecordType() string
	// RecordUUID returns the unique identifier of the record within its kind.
	RecordUUID() uuid.UUID
	// References returns the identities of all records this record points at,
	// in declaration order. Implementations must not return identities of the
	// record itself.
	References() []Item
}

// Exportable reports whether a record with this identity may be pulled into a
// package through reference traversal. User accounts are excluded.
func (i Item) Exportable() bool {
	return i.Type != "" && i.Type != TypeUser
}

// GenericRecord is a schema-less Record implementation used by the metadata
// store, fixtures and tests. Concrete applications embed richer kinds; the
// exporter only ever sees the Record interface.
type GenericRecord struct {
	// Kind is the record type, e.g. "Concept".
	Kind string `json:"type"`
	// ID is the record UUID.
	ID uuid.UUID `json:"uuid"`
	// Name is a human-readable label, required by the default validator.
	Name string `json:"name"`
	// Retired marks records that should no longer be used but remain
	// referenced by history.
	Retired bool `json:"retired,omitempty"`
	// Properties holds arbitrary scalar attributes of the record.
	Properties map[string]string `json:"properties,omitempty"`
	// Refs lists the identities of directly referenced records, both scalar
	// and collection-valued, in declaration order.
	Refs []Item `json:"refs,omitempty"`
}

// RecordType implements Record.
func (r *GenericRecord) RecordType() string { return r.Kind }

// RecordUUID implements Record.
func (r *GenericRecord) RecordUUID() uuid.UUID { return r.ID }

// References implements Record.
func (r *GenericRecord) References() []Item { return r.Refs }
