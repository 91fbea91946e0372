package metadata_test

import (
	"context"
	"errors"
	"testing"

	"metashare/pkg/domain"
	"metashare/pkg/metadata"
	"metashare/pkg/serrors"
	mockstorage "metashare/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStoreSource_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	source := metadata.NewStoreSource(st)
	ctx := context.Background()

	record := &domain.GenericRecord{Kind: "Concept", ID: uuid.New(), Name: "Malaria"}
	st.EXPECT().
		RecordByTypeAndUUID(ctx, "Concept", record.ID).
		Return(record, nil)

	got, err := source.Load(ctx, "Concept", record.ID)
	require.NoError(t, err)
	require.Same(t, domain.Record(record), got)
}

func TestStoreSource_Load_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	source := metadata.NewStoreSource(st)

	id := uuid.New()
	st.EXPECT().
		RecordByTypeAndUUID(gomock.Any(), "Location", id).
		Return(nil, nil)

	_, err := source.Load(context.Background(), "Location", id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestStoreSource_Load_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	source := metadata.NewStoreSource(st)

	boom := errors.New("pg down")
	st.EXPECT().
		RecordByTypeAndUUID(gomock.Any(), "Concept", gomock.Any()).
		Return(nil, boom)

	_, err := source.Load(context.Background(), "Concept", uuid.New())
	require.ErrorIs(t, err, boom)
}
