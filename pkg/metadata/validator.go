package metadata

import (
	"metashare/pkg/domain"
	"metashare/pkg/serrors"

	"github.com/google/uuid"
)

// DefaultValidator applies the baseline validation rules every deployment
// needs: descriptors must carry a name and description, records must carry an
// identity and a name. Applications with richer rule engines provide their
// own Validator.
type DefaultValidator struct{}

// NewValidator returns the baseline validator.
func NewValidator() *DefaultValidator {
	return &DefaultValidator{}
}

// ValidatePackage implements Validator.
func (v *DefaultValidator) ValidatePackage(pkg *domain.Package) error {
	if pkg == nil {
		return serrors.With(serrors.ErrBadRequest, "package is required")
	}
	if pkg.Name == "" {
		return serrors.With(serrors.ErrBadRequest, "package name is required")
	}
	if pkg.Description == "" {
		return serrors.With(serrors.ErrBadRequest, "package description is required")
	}

	return nil
}

// ValidateRecord implements Validator.
func (v *DefaultValidator) ValidateRecord(record domain.Record) error {
	if record == nil {
		return serrors.With(serrors.ErrBadRequest, "record is required")
	}
	if record.RecordType() == "" {
		return serrors.With(serrors.ErrBadRequest, "record type is required")
	}
	if record.RecordUUID() == uuid.Nil {
		return serrors.With(serrors.ErrBadRequest, "record uuid is required")
	}
	if generic, ok := record.(*domain.GenericRecord); ok && generic.Name == "" {
		return serrors.With(serrors.ErrBadRequest, "record name is required")
	}

	return nil
}
