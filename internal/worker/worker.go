// Package worker wires the River job queue client and the export worker. One
// process may run many export jobs concurrently, but each job processes
// exactly one package end to end.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"metashare/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start registers the export worker and starts a River client on the given
// connection pool. The returned client must be stopped by the caller on
// shutdown.
func Start(ctx context.Context, dbPool *pgxpool.Pool, exportWorker *ExportWorker) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, exportWorker)

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			// exports are heavyweight; keep the per-process parallelism low
			river.QueueDefault: {MaxWorkers: 4},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
