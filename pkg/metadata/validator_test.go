package metadata_test

import (
	"metashare/pkg/domain"
	"metashare/pkg/metadata"
	"metashare/pkg/serrors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidatePackage(t *testing.T) {
	v := metadata.NewValidator()

	require.NoError(t, v.ValidatePackage(&domain.Package{Name: "pkg", Description: "desc"}))

	require.ErrorIs(t, v.ValidatePackage(nil), serrors.ErrBadRequest)
	require.ErrorIs(t, v.ValidatePackage(&domain.Package{Description: "desc"}), serrors.ErrBadRequest)
	require.ErrorIs(t, v.ValidatePackage(&domain.Package{Name: "pkg"}), serrors.ErrBadRequest)
}

func TestValidator_ValidateRecord(t *testing.T) {
	v := metadata.NewValidator()

	valid := &domain.GenericRecord{Kind: "Concept", ID: uuid.New(), Name: "fever"}
	require.NoError(t, v.ValidateRecord(valid))

	require.ErrorIs(t, v.ValidateRecord(nil), serrors.ErrBadRequest)
	require.ErrorIs(t,
		v.ValidateRecord(&domain.GenericRecord{ID: uuid.New(), Name: "no kind"}),
		serrors.ErrBadRequest)
	require.ErrorIs(t,
		v.ValidateRecord(&domain.GenericRecord{Kind: "Concept", Name: "no uuid"}),
		serrors.ErrBadRequest)
	require.ErrorIs(t,
		v.ValidateRecord(&domain.GenericRecord{Kind: "Concept", ID: uuid.New()}),
		serrors.ErrBadRequest)
}
