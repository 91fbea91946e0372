package export

import (
	"context"
	"metashare/pkg/domain"
	"metashare/pkg/logger"

	"go.uber.org/zap"
)

// ValidationFailure describes a single record that failed best-effort
// validation during a run. Failures are accumulated, never raised inline; the
// pipeline escalates them in aggregate at chunk boundaries.
type ValidationFailure struct {
	// Subject identifies the record that failed.
	Subject domain.Item
	// Reason is a short description of what went wrong.
	Reason string
	// Cause is the underlying error, if any.
	Cause error
}

// failureList accumulates validation failures for one export run. It is owned
// exclusively by the run, so no locking is needed.
type failureList struct {
	failures []ValidationFailure
}

func newFailureList() *failureList {
	return &failureList{}
}

// record appends the failure and reports it on the log side channel. It never
// interrupts the caller.
func (l *failureList) record(ctx context.Context, failure ValidationFailure) {
	l.failures = append(l.failures, failure)

	logger.Warn(ctx, failure.Reason,
		zap.String("type", failure.Subject.Type),
		zap.Stringer("uuid", failure.Subject.UUID),
		zap.Error(failure.Cause))
}

// hasFailures reports whether any failure was recorded so far in this run.
func (l *failureList) hasFailures() bool {
	return len(l.failures) > 0
}
