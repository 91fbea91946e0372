package domain

import (
	"time"

	"github.com/google/uuid"
)

// PackageID uniquely identifies one export run.
// It wraps uuid.UUID to provide type safety at the domain layer.
type PackageID uuid.UUID

// String returns the canonical UUID representation of the ID.
func (id PackageID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler so PackageID renders as a
// UUID string in JSON.
func (id PackageID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *PackageID) UnmarshalText(text []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(text); err != nil {
		return err //nolint: wrapcheck
	}
	*id = PackageID(u)

	return nil
}

// ExportStatus represents the lifecycle state of an export run.
type ExportStatus string

const (
	// ExportStatusPending indicates the export has been requested but not
	// processed yet.
	ExportStatusPending ExportStatus = "PENDING"
	// ExportStatusCompleted indicates the export finished successfully and the
	// serialized package is available.
	ExportStatusCompleted ExportStatus = "COMPLETED"
	// ExportStatusFailed indicates the export ended with an error; see
	// LastError and Attempts for details.
	ExportStatusFailed ExportStatus = "FAILED"
)

// SerializedPackage is the final artifact of one successful export run: a
// header (the serialized package descriptor) followed by an ordered list of
// chunk bodies, each a self-contained serialization of one chunk's records.
// The value is write-once; it is produced only when every chunk succeeded.
type SerializedPackage struct {
	// Header is the prologue-wrapped serialized descriptor. Logically it comes
	// first but it is stored separately from the chunk bodies.
	Header string `json:"header"`
	// Chunks holds the prologue-wrapped chunk bodies in chunk order.
	Chunks []string `json:"chunks"`
}

// Package describes one export: the metadata envelope the user filled in
// (name, description, version), the explicitly selected items, and the state
// of the export run processing it. Successive exports of the same logical
// package share a GroupUUID and increment Version.
type Package struct {
	// ID is the unique identifier of this export run.
	ID PackageID `json:"id"`
	// GroupUUID ties together all versions of the same logical package.
	GroupUUID uuid.UUID `json:"groupUuid"`

	// Name is the human-readable package name.
	Name string `json:"name"`
	// Description explains what the package contains.
	Description string `json:"description"`
	// Version is the sequence number of this package within its group.
	Version uint `json:"version"`

	// Items is the ordered set of explicitly selected records, the roots of
	// the export.
	Items []Item `json:"items"`
	// RelatedItems collects records discovered through reference traversal.
	// It is owned and mutated only by the exporter during a run and is always
	// disjoint from Items.
	RelatedItems *ItemSet `json:"-"`

	// Status is the current lifecycle state of the export run.
	Status ExportStatus `json:"status"`
	// Serialized holds the artifact once the run completed, nil before that.
	Serialized *SerializedPackage `json:"-"`

	// Attempts is the number of times the system has tried to process this export.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent error message, if any, encountered
	// while processing the export.
	LastError string `json:"-"`

	// CreatedAt is the time when the export was requested.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the export was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the package was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// ItemSet returns the explicit items as an ItemSet for membership checks.
func (p *Package) ItemSet() *ItemSet {
	return NewItemSet(p.Items...)
}
