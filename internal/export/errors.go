package export

import "metashare/pkg/serrors"

// Pipeline failure kinds. Anything else that goes wrong during a run is
// wrapped once as serrors.ErrInternal with the message "export failed" and
// the original cause preserved.
var (
	// ErrDescriptorInvalid indicates the package descriptor failed validation.
	// The run aborts before any resolution work.
	ErrDescriptorInvalid = serrors.NewKind("DESCRIPTOR_INVALID")
	// ErrItemValidationFailed indicates one or more items failed validation
	// during a chunk. Individual reasons are reported on the log side channel;
	// the error itself stays generic.
	ErrItemValidationFailed = serrors.NewKind("ITEM_VALIDATION_FAILED")
)
