package worker

import (
	"context"
	"errors"
	"fmt"
	"metashare/internal/export"
	"metashare/pkg/domain"
	"metashare/pkg/logger"
	"metashare/pkg/serrors"
	"metashare/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ExportWorker is a River worker that executes export runs. Each job loads
// its package row, hands it to the pipeline, and records the outcome:
//
//   - Success marks the package COMPLETED and, when the job's persist flag is
//     set, stores the artifact alongside the row.
//   - A descriptor or item validation failure is permanent: the package is
//     marked FAILED immediately and the job is cancelled so River does not
//     retry it.
//   - Any other failure is treated as transient: the error is recorded on the
//     row, the FAILED status only sticks once the attempts exceed MaxAttempts
//     (the storage layer guards this), and the job is returned to River for
//     retry.
type ExportWorker struct {
	river.WorkerDefaults[export.JobArgs]

	// exporter runs the actual pipeline for one package.
	exporter export.Exporter
	// storage is used to load the package row and record run outcomes.
	storage storage.Storage
	// maxAttempts caps transient retries before a package is marked failed.
	maxAttempts int
}

// NewExportWorker constructs an ExportWorker using the provided pipeline and
// storage.
func NewExportWorker(exporter export.Exporter, storage storage.Storage, maxAttempts int) *ExportWorker {
	return &ExportWorker{
		exporter:    exporter,
		storage:     storage,
		maxAttempts: maxAttempts,
	}
}

// Work executes a single export job.
func (w *ExportWorker) Work(ctx context.Context, job *river.Job[export.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("packageID", job.Args.PackageID))

	pkg, err := w.storage.PackageByID(ctx, job.Args.PackageID)
	if err != nil {
		return fmt.Errorf("could not load package: %w", err)
	}
	if pkg == nil {
		// the package was deleted between enqueue and execution
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "package not found")) //nolint: wrapcheck
	}
	if pkg.Status == domain.ExportStatusCompleted {
		logger.Info(ctx, "package already exported, nothing to do")

		return nil
	}

	serialized, err := w.exporter.Export(ctx, pkg)
	if err != nil {
		logger.Error(ctx, "error exporting package", zap.Error(err))

		if errors.Is(err, export.ErrDescriptorInvalid) || errors.Is(err, export.ErrItemValidationFailed) {
			w.recordFailure(ctx, pkg.ID, err, 0)

			return river.JobCancel(err) //nolint: wrapcheck
		}

		w.recordFailure(ctx, pkg.ID, err, w.maxAttempts)

		return fmt.Errorf("could not export package: %w", err)
	}

	noError := ""
	updates := storage.PackageUpdates{
		Status:    domain.ExportStatusCompleted,
		LastError: &noError,
	}
	if job.Args.Persist {
		updates.Serialized = serialized
	}
	if _, err := w.storage.UpdatePackageByID(ctx, pkg.ID, updates); err != nil {
		return fmt.Errorf("could not record export result: %w", err)
	}

	logger.Info(ctx, "package exported successfully",
		zap.Int("chunks", len(serialized.Chunks)),
		zap.Bool("persisted", job.Args.Persist))

	return nil
}

// recordFailure stores the error text on the package row. maxAttempts > 0
// makes the FAILED status conditional on the attempt budget being exhausted;
// 0 applies it unconditionally (permanent failures).
func (w *ExportWorker) recordFailure(ctx context.Context, id domain.PackageID, cause error, maxAttempts int) {
	msg := cause.Error()
	if _, err := w.storage.UpdatePackageByID(ctx, id, storage.PackageUpdates{
		Status:      domain.ExportStatusFailed,
		LastError:   &msg,
		MaxAttempts: maxAttempts,
	}); err != nil {
		logger.Error(ctx, "could not record export failure", zap.Error(err))
	}
}
