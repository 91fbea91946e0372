package export_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"metashare/internal/export"
	mockmetadata "metashare/pkg/metadata/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"metashare/pkg/domain"
	"metashare/pkg/logger"
	"metashare/pkg/metadata"
	"metashare/pkg/metadata/xmlcodec"
	"metashare/pkg/serrors"
)

const xmlProlog = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func concept(name string, refs ...domain.Item) *domain.GenericRecord {
	return &domain.GenericRecord{Kind: "Concept", ID: uuid.New(), Name: name, Refs: refs}
}

func ref(r *domain.GenericRecord) domain.Item {
	return domain.ItemFor(r)
}

func testPackage(items ...domain.Item) *domain.Package {
	return &domain.Package{
		ID:          domain.PackageID(uuid.New()),
		GroupUUID:   uuid.New(),
		Name:        "test package",
		Description: "test description",
		Version:     1,
		Items:       items,
		Status:      domain.ExportStatusPending,
	}
}

func newPipeline(source metadata.Source, options export.Options) *export.Pipeline {
	return export.NewPipeline(source,
		metadata.NewValidator(),
		xmlcodec.New(),
		metadata.NewCrossRefEnricher("test-instance"),
		options)
}

func TestPipeline_Export_ChunksBySize(t *testing.T) {
	registry := metadata.NewRegistry()

	items := make([]domain.Item, 0, 5)
	for i := 0; i < 5; i++ {
		r := concept(fmt.Sprintf("concept-%d", i))
		registry.Put(r)
		items = append(items, ref(r))
	}

	pkg := testPackage(items...)
	p := newPipeline(registry, export.Options{ChunkSize: 2})

	serialized, err := p.Export(context.Background(), pkg)
	require.NoError(t, err)

	// 5 items at size 2 make chunks of 2, 2 and 1
	require.Len(t, serialized.Chunks, 3)
	require.True(t, strings.HasPrefix(serialized.Header, xmlProlog))
	for _, body := range serialized.Chunks {
		require.True(t, strings.HasPrefix(body, xmlProlog))
	}
	require.Same(t, serialized, pkg.Serialized)
	require.Equal(t, 0, pkg.RelatedItems.Len())
}

func TestPipeline_Export_EmptySelection(t *testing.T) {
	pkg := testPackage()
	p := newPipeline(metadata.NewRegistry(), export.Options{})

	serialized, err := p.Export(context.Background(), pkg)
	require.NoError(t, err)

	require.Empty(t, serialized.Chunks)
	require.Contains(t, serialized.Header, "test package")
}

func TestPipeline_Export_RelatedRecordsRideInDiscoveringChunk(t *testing.T) {
	registry := metadata.NewRegistry()

	related := concept("related")
	root := concept("root", ref(related))
	registry.Put(root, related)

	pkg := testPackage(ref(root))
	p := newPipeline(registry, export.Options{ChunkSize: 1})

	serialized, err := p.Export(context.Background(), pkg)
	require.NoError(t, err)

	// the related record is serialized in the same body, not a new chunk
	require.Len(t, serialized.Chunks, 1)
	require.Contains(t, serialized.Chunks[0], related.ID.String())
	require.Equal(t, 1, pkg.RelatedItems.Len())
	require.True(t, pkg.RelatedItems.Contains(ref(related)))
}

func TestPipeline_Export_NilPackage(t *testing.T) {
	p := newPipeline(metadata.NewRegistry(), export.Options{})

	_, err := p.Export(context.Background(), nil)
	require.ErrorIs(t, err, export.ErrDescriptorInvalid)
}

func TestPipeline_Export_InvalidDescriptorResolvesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no Load expectations: any resolution attempt fails the test
	source := mockmetadata.NewMockSource(ctrl)

	pkg := testPackage(domain.Item{Type: "Concept", UUID: uuid.New()})
	pkg.Description = ""

	p := newPipeline(source, export.Options{})

	_, err := p.Export(context.Background(), pkg)
	require.ErrorIs(t, err, export.ErrDescriptorInvalid)
	require.Nil(t, pkg.Serialized)
}

func TestPipeline_Export_MissingItemFailsChunk(t *testing.T) {
	pkg := testPackage(domain.Item{Type: "Concept", UUID: uuid.New()})
	p := newPipeline(metadata.NewRegistry(), export.Options{})

	_, err := p.Export(context.Background(), pkg)
	require.ErrorIs(t, err, export.ErrItemValidationFailed)
	// individual reasons stay on the log side channel
	require.EqualError(t, err, "items failed validation")
}

func TestPipeline_Export_InvalidItemFailsChunk(t *testing.T) {
	registry := metadata.NewRegistry()

	// no name, fails the default validator
	invalid := &domain.GenericRecord{Kind: "Concept", ID: uuid.New()}
	registry.Put(invalid)

	pkg := testPackage(ref(invalid))
	p := newPipeline(registry, export.Options{})

	_, err := p.Export(context.Background(), pkg)
	require.ErrorIs(t, err, export.ErrItemValidationFailed)
	require.Nil(t, pkg.Serialized)
}

func TestPipeline_Export_FailureInEarlierChunkStopsRun(t *testing.T) {
	registry := metadata.NewRegistry()

	valid := concept("valid")
	registry.Put(valid)

	// chunk 1 holds the missing item, chunk 2 the valid one
	pkg := testPackage(domain.Item{Type: "Concept", UUID: uuid.New()}, ref(valid))
	p := newPipeline(registry, export.Options{ChunkSize: 1})

	serialized, err := p.Export(context.Background(), pkg)
	require.ErrorIs(t, err, export.ErrItemValidationFailed)
	require.Nil(t, serialized)
}

func TestPipeline_Export_CrossRefsDisabledByDefault(t *testing.T) {
	registry := metadata.NewRegistry()

	c := concept("concept")
	registry.Put(c)

	pkg := testPackage(ref(c))
	p := newPipeline(registry, export.Options{})

	_, err := p.Export(context.Background(), pkg)
	require.NoError(t, err)
	require.NotContains(t, c.Properties, "crossReference")
}

func TestPipeline_Export_AttachesCrossRefsToConcepts(t *testing.T) {
	registry := metadata.NewRegistry()

	c := concept("concept")
	location := &domain.GenericRecord{Kind: "Location", ID: uuid.New(), Name: "clinic"}
	registry.Put(c, location)

	pkg := testPackage(ref(c), ref(location))
	p := newPipeline(registry, export.Options{AttachCrossRefs: true})

	serialized, err := p.Export(context.Background(), pkg)
	require.NoError(t, err)

	require.Equal(t, "test-instance:"+c.ID.String(), c.Properties["crossReference"])
	// only concept records are enriched
	require.NotContains(t, location.Properties, "crossReference")
	require.Contains(t, serialized.Chunks[0], "test-instance:"+c.ID.String())
}

func TestPipeline_Export_EnrichmentFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := metadata.NewRegistry()
	c := concept("concept")
	registry.Put(c)

	enricher := mockmetadata.NewMockEnricher(ctrl)
	enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	p := export.NewPipeline(registry,
		metadata.NewValidator(),
		xmlcodec.New(),
		enricher,
		export.Options{AttachCrossRefs: true})

	_, err := p.Export(context.Background(), testPackage(ref(c)))
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.NotErrorIs(t, err, export.ErrItemValidationFailed)
}

func TestPipeline_Export_WrapsUntypedFailuresOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := metadata.NewRegistry()
	c := concept("concept")
	registry.Put(c)

	serializer := mockmetadata.NewMockSerializer(ctrl)
	serializeErr := errors.New("encoder broke")
	serializer.EXPECT().Serialize(gomock.Any()).Return("", serializeErr)

	p := export.NewPipeline(registry,
		metadata.NewValidator(),
		serializer,
		nil,
		export.Options{})

	_, err := p.Export(context.Background(), testPackage(ref(c)))
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, err, serializeErr)
	require.Contains(t, err.Error(), "export failed")
}

func TestPipeline_Export_ClearsRelatedItemsBetweenRuns(t *testing.T) {
	registry := metadata.NewRegistry()

	related := concept("related")
	root := concept("root", ref(related))
	registry.Put(root, related)

	pkg := testPackage(ref(root))
	p := newPipeline(registry, export.Options{})

	_, err := p.Export(context.Background(), pkg)
	require.NoError(t, err)
	require.Equal(t, 1, pkg.RelatedItems.Len())

	// a rerun starts from a clean discovered set rather than accumulating
	_, err = p.Export(context.Background(), pkg)
	require.NoError(t, err)
	require.Equal(t, 1, pkg.RelatedItems.Len())
}
