package export

import (
	"context"
	"errors"
	"fmt"
	"metashare/internal/config"
	"metashare/pkg/domain"
	"metashare/pkg/logger"
	"metashare/pkg/metadata"
	"metashare/pkg/metrics"
	"metashare/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// xmlProlog is prepended to the header and to every chunk body so each piece
// of the artifact is a self-contained document.
const xmlProlog = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// Options configure how export runs are executed and enqueued.
// These settings are typically derived from application configuration.
type Options struct {
	// ChunkSize bounds how many explicit items are resolved and serialized as
	// one unit. Zero or negative selects DefaultChunkSize.
	ChunkSize int
	// AttachCrossRefs enables the enrichment pass that attaches local
	// cross-references to concept records before serialization.
	AttachCrossRefs bool
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing an export job before marking it failed.
	MaxAttempts int
	// DedupWindow is the lookback period during which a second export job for
	// the same package group is considered a duplicate.
	DedupWindow time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ChunkSize:       cfg.Export.ChunkSize,
		AttachCrossRefs: cfg.Export.AttachCrossRefs,
		MaxAttempts:     cfg.Export.MaxAttempts,
		DedupWindow:     cfg.Export.DedupWindow,
	}
}

// Pipeline executes one export run end to end: it validates the descriptor,
// resolves the transitive closure of the selected items chunk by chunk,
// aggregates per-item validation failures, optionally enriches concept
// records, and assembles the final artifact from a header plus one body per
// chunk.
//
// A Pipeline instance is stateless between runs and may be shared, but a
// single run is strictly sequential: one chunk's resolved records are held in
// memory at a time and released before the next chunk starts. Concurrency
// across independent runs is the job framework's concern, not the pipeline's.
type Pipeline struct {
	source     metadata.Source
	validator  metadata.Validator
	serializer metadata.Serializer
	// enricher may be nil when cross-reference attachment is disabled.
	enricher metadata.Enricher

	options Options
}

// NewPipeline creates a Pipeline using the given collaborators. enricher may
// be nil unless Options.AttachCrossRefs is set.
func NewPipeline(source metadata.Source,
	validator metadata.Validator,
	serializer metadata.Serializer,
	enricher metadata.Enricher,
	options Options) *Pipeline {
	return &Pipeline{
		source:     source,
		validator:  validator,
		serializer: serializer,
		enricher:   enricher,
		options:    options,
	}
}

// Export runs the whole pipeline for pkg and returns the assembled artifact.
// On success the artifact is also stored on pkg.Serialized. Failures are
// returned as ErrDescriptorInvalid, ErrItemValidationFailed, or a single
// serrors.ErrInternal wrapping the original cause; an already-typed pipeline
// failure is never wrapped twice.
func (p *Pipeline) Export(ctx context.Context, pkg *domain.Package) (*domain.SerializedPackage, error) {
	if pkg == nil {
		return nil, serrors.With(ErrDescriptorInvalid, "package is required")
	}

	ctx = logger.WithFields(ctx,
		zap.String("package", pkg.Name),
		zap.Stringer("group", pkg.GroupUUID))

	start := time.Now()
	serialized, err := p.run(ctx, pkg)
	metrics.ExportDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExportRuns.WithLabelValues("failed").Inc()
		if errors.Is(err, ErrDescriptorInvalid) || errors.Is(err, ErrItemValidationFailed) {
			return nil, err
		}

		return nil, serrors.Wrap(serrors.ErrInternal, err, "export failed")
	}

	metrics.ExportRuns.WithLabelValues("completed").Inc()
	pkg.Serialized = serialized

	logger.Info(ctx, "export completed",
		zap.Int("chunks", len(serialized.Chunks)),
		zap.Int("relatedItems", pkg.RelatedItems.Len()))

	return serialized, nil
}

func (p *Pipeline) run(ctx context.Context, pkg *domain.Package) (*domain.SerializedPackage, error) {
	logger.Info(ctx, "export started", zap.Int("items", len(pkg.Items)))

	if err := p.validator.ValidatePackage(pkg); err != nil {
		return nil, serrors.Wrap(ErrDescriptorInvalid, err, "failed to validate package")
	}

	// A run never reuses a prior run's discovered set.
	if pkg.RelatedItems == nil {
		pkg.RelatedItems = domain.NewItemSet()
	} else {
		pkg.RelatedItems.Clear()
	}

	w := &walker{
		source:    p.source,
		validator: p.validator,
		roots:     pkg.ItemSet(),
		related:   pkg.RelatedItems,
		failures:  newFailureList(),
	}

	chunks := chunkItems(pkg.Items, p.options.ChunkSize)
	bodies := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		logger.Info(ctx, "exporting chunk",
			zap.Int("chunk", i+1),
			zap.Int("chunks", len(chunks)),
			zap.Int("items", len(chunk)))

		body, err := p.exportChunk(ctx, chunk, w)
		if err != nil {
			return nil, err
		}

		bodies = append(bodies, body)
		metrics.ExportChunks.Inc()
	}

	logger.Info(ctx, "serializing header")
	header, err := p.serializer.Serialize(pkg)
	if err != nil {
		return nil, fmt.Errorf("could not serialize header: %w", err)
	}

	return &domain.SerializedPackage{
		Header: xmlProlog + header + "\n",
		Chunks: bodies,
	}, nil
}

// exportChunk resolves, validates, enriches and serializes one chunk. The
// chunk's working list of resolved records only lives for the duration of
// this call, so long-running exports never hold more than one chunk's worth
// of records in memory.
func (p *Pipeline) exportChunk(ctx context.Context, chunk []domain.Item, w *walker) (string, error) {
	logger.Info(ctx, "preparing items to export")

	explicit := make([]domain.Record, 0, len(chunk))
	for _, item := range chunk {
		record, err := p.source.Load(ctx, item.Type, item.UUID)
		if err != nil {
			w.failures.record(ctx, ValidationFailure{
				Subject: item,
				Reason:  "could not load item",
				Cause:   err,
			})

			continue
		}

		if err := p.validator.ValidateRecord(record); err != nil {
			w.failures.record(ctx, ValidationFailure{
				Subject: item,
				Reason:  "item failed validation",
				Cause:   err,
			})
		}

		explicit = append(explicit, record)
	}
	metrics.ExportItems.WithLabelValues(metrics.OriginExplicit).Add(float64(len(explicit)))

	// Related records discovered while walking this chunk ride along in the
	// same body; they are not re-chunked.
	logger.Info(ctx, "resolving related items")
	records := explicit
	for _, record := range explicit {
		related := w.resolveRelated(ctx, record)
		records = append(records, related...)
		metrics.ExportItems.WithLabelValues(metrics.OriginRelated).Add(float64(len(related)))
	}

	// Failures accumulated anywhere in this chunk stop the run here, before
	// anything gets serialized.
	if w.failures.hasFailures() {
		return "", serrors.With(ErrItemValidationFailed, "items failed validation")
	}

	if p.options.AttachCrossRefs {
		logger.Info(ctx, "attaching cross-references")
		for _, record := range records {
			if record.RecordType() != domain.TypeConcept {
				continue
			}
			if err := p.enricher.Enrich(ctx, record); err != nil {
				return "", fmt.Errorf("could not enrich %s [%s]: %w",
					record.RecordType(), record.RecordUUID(), err)
			}
		}
	}

	logger.Info(ctx, "serializing items", zap.Int("records", len(records)))
	body, err := p.serializer.Serialize(records)
	if err != nil {
		return "", fmt.Errorf("could not serialize chunk: %w", err)
	}

	return xmlProlog + body + "\n", nil
}
