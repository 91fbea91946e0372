package export

import (
	"context"
	"fmt"
	"metashare/pkg/domain"
	"metashare/pkg/serrors"
	"metashare/pkg/storage"
	"time"

	"github.com/google/uuid"
)

// service is the concrete implementation of the Service interface.
// It coordinates persistence with the storage layer and job enqueueing.
type service struct {
	// options holds runtime configuration that affects enqueueing.
	options Options
	// storage is the persistence layer used to store packages and manage jobs.
	storage storage.Storage
}

// New creates a new Service instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Service {
	return &service{
		options: options,
		storage: storage,
	}
}

// Request stores a new pending package for the given selection and enqueues a
// background job to export it, both inside one transaction. If another export
// for the same group is already in flight, the whole request is rolled back
// and a conflict error is returned.
func (s service) Request(ctx context.Context, req ExportRequest) (*domain.Package, error) {
	if req.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "package name is required")
	}
	if req.Description == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "package description is required")
	}

	groupUUID := req.GroupUUID
	if groupUUID == uuid.Nil {
		groupUUID = uuid.New()
	}

	var pkg *domain.Package
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StorePackages(ctx, domain.Package{
			GroupUUID:   groupUUID,
			Name:        req.Name,
			Description: req.Description,
			// duplicates in the selection are dropped, order preserved
			Items:  domain.NewItemSet(req.Items...).Items(),
			Status: domain.ExportStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store package: %w", err)
		}
		pkg = &res[0]

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			GroupUUID:   groupUUID,
			PackageID:   pkg.ID,
			Persist:     req.Persist,
			maxAttempts: s.options.MaxAttempts,
			dedupWindow: s.options.DedupWindow,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// river unique jobs prevent two in-flight exports of one group; the
		// error rolls back the package row stored above.
		if !jobAdded {
			return serrors.With(serrors.ErrConflict, "an export for this group is already in progress")
		}

		return nil
	}); err != nil {
		if serrors.IsKind(err) {
			return nil, err
		}

		return nil, fmt.Errorf("could not request export: %w", err)
	}

	return pkg, nil
}

// Get fetches a single package by ID. It returns a not-found error when no
// matching package exists.
func (s service) Get(ctx context.Context, id domain.PackageID) (*domain.Package, error) {
	pkg, err := s.storage.PackageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get package: %w", err)
	}
	if pkg == nil {
		return nil, serrors.With(serrors.ErrNotFound, "package not found")
	}

	return pkg, nil
}

// List returns a page of packages filtered by status. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (s service) List(ctx context.Context,
	status domain.ExportStatus,
	cursor string,
	limit uint) ([]domain.Package, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.Packages(ctx, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get packages: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Packages, next, nil
}

// Delete removes a package. If the package does not exist, a not-found error
// is returned. A job already in flight for the package is not cancelled; the
// worker notices the deleted row and cancels itself.
func (s service) Delete(ctx context.Context, id domain.PackageID) error {
	pkg, err := s.storage.DeletePackage(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete package: %w", err)
	}
	if pkg == nil {
		return serrors.With(serrors.ErrNotFound, "package not found")
	}

	return nil
}
