package storage

import (
	"context"
	"metashare/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PackageUpdates describes a set of optional fields that can be applied to an
// existing package during an update. Only provided fields are changed.
type PackageUpdates struct {
	// Status is the new status to set for the export run.
	Status domain.ExportStatus
	// Serialized, when provided, stores the finished artifact (header plus
	// chunk bodies) alongside the package row.
	Serialized *domain.SerializedPackage
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment would
	// exceed this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// PackagePage groups a page of packages together with an optional NextCursor
// used for pagination.
type PackagePage struct {
	// Packages contains the current page of package rows.
	Packages []domain.Package
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// PackageStorage defines CRUD and query operations related to export packages.
// Implementations should handle soft deletes where applicable.
type PackageStorage interface {
	// StorePackages inserts one or more packages and returns the stored rows as
	// they exist in the database (including generated fields). The version of
	// each stored package is assigned as one more than the highest existing
	// version within its group.
	StorePackages(ctx context.Context, pkgs ...domain.Package) ([]domain.Package, error)
	// UpdatePackageByID updates a single package identified by its ID and
	// returns the updated row, or nil when not found.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment would exceed MaxAttempts; otherwise
	//   status remains unchanged (i.e., stays Pending).
	UpdatePackageByID(ctx context.Context, ID domain.PackageID, updates PackageUpdates) (*domain.Package, error)
	// PackageByID fetches a package by its ID, excluding soft-deleted records.
	// Returns nil when not found.
	PackageByID(ctx context.Context, ID domain.PackageID) (*domain.Package, error)
	// LatestPackageByGroup returns the highest-version package within a group,
	// or nil when the group has no packages.
	LatestPackageByGroup(ctx context.Context, groupUUID uuid.UUID) (*domain.Package, error)
	// Packages returns a page of packages created before the optional cursor
	// time, limited by the given limit. If status is non-empty, results are
	// filtered to records with the given status.
	Packages(ctx context.Context, status domain.ExportStatus, cursor time.Time, limit uint) (PackagePage, error)
	// DeletePackage performs a soft delete for the given package ID and returns
	// the deleted package, or nil if it was not found.
	DeletePackage(ctx context.Context, ID domain.PackageID) (*domain.Package, error)
}
