package export

import (
	"time"

	"metashare/pkg/domain"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for an export job submitted to River.
// The group UUID is the unique key so only one export per package group can
// be in flight at a time.
type JobArgs struct {
	// GroupUUID identifies the package group being exported. It is marked as
	// unique so River can enforce one in-flight export per group according to
	// InsertOpts.UniqueOpts.
	GroupUUID uuid.UUID `json:"groupUuid" river:"unique"`
	// PackageID is the package row this job processes.
	PackageID domain.PackageID `json:"packageId"`
	// Persist controls whether the finished artifact is stored with the
	// package row.
	Persist bool `json:"persist"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// dedupWindow defines the lookback window during which a job with the
	// same group is considered a duplicate across the specified states.
	dedupWindow time.Duration
}

// Kind returns the River job kind used to register and dispatch the export worker.
func (args JobArgs) Kind() string { return "ExportPackageJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// concurrent exports of the same package group. Completed and cancelled jobs
// do not block new versions of a group from being exported.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.dedupWindow,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
