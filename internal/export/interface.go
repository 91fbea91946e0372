package export

import (
	"context"
	"metashare/pkg/domain"

	"github.com/google/uuid"
)

// ExportRequest carries everything needed to request a new export run.
type ExportRequest struct {
	// Name is the human-readable package name.
	Name string
	// Description explains what the package contains.
	Description string
	// GroupUUID ties the new package to an existing group; when zero a new
	// group is started.
	GroupUUID uuid.UUID
	// Items is the explicit selection to export. Duplicates are dropped,
	// order is preserved. An empty selection is allowed and yields a package
	// with a header and no chunk bodies.
	Items []domain.Item
	// Persist controls whether the finished artifact is stored alongside the
	// package row or discarded after the run.
	Persist bool
}

// Exporter executes one export run for a package and returns the assembled
// artifact. Pipeline is the production implementation.
//
//go:generate mockgen -package mockexport -source=interface.go -destination=mock/mockexport.go *
type Exporter interface {
	Export(ctx context.Context, pkg *domain.Package) (*domain.SerializedPackage, error)
}

// Service is the application-facing surface for managing export runs: it
// persists requests and hands the actual work to the background job queue.
type Service interface {
	// Request stores a new pending package and enqueues an export job for it.
	// A request for a group that already has an export in flight fails with a
	// conflict error.
	Request(ctx context.Context, req ExportRequest) (*domain.Package, error)
	// Get fetches a single package by ID.
	Get(ctx context.Context, id domain.PackageID) (*domain.Package, error)
	// List returns a page of packages filtered by status, with cursor-based
	// pagination over RFC3339 timestamps.
	List(ctx context.Context,
		status domain.ExportStatus,
		cursor string,
		limit uint) ([]domain.Package, string, error)
	// Delete removes a package. Deleting an unknown ID returns a not-found
	// error.
	Delete(ctx context.Context, id domain.PackageID) error
}
