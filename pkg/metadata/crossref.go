package metadata

import (
	"context"
	"metashare/pkg/domain"
)

// crossRefProperty is the record property under which a local cross-reference
// is stored.
const crossRefProperty = "crossReference"

// CrossRefEnricher attaches a local cross-reference of the form
// "<source>:<uuid>" to concept records so the importing system can map them
// back to this instance. The enrichment is idempotent: a record that already
// carries a cross-reference is left untouched.
type CrossRefEnricher struct {
	// Source identifies this instance in attached cross-references, e.g. an
	// implementation id.
	Source string
}

// NewCrossRefEnricher creates an enricher stamping cross-references with the
// given source identifier.
func NewCrossRefEnricher(source string) *CrossRefEnricher {
	return &CrossRefEnricher{Source: source}
}

// Enrich implements Enricher.
func (e *CrossRefEnricher) Enrich(_ context.Context, record domain.Record) error {
	generic, ok := record.(*domain.GenericRecord)
	if !ok {
		return nil
	}

	if _, ok := generic.Properties[crossRefProperty]; ok {
		return nil
	}

	if generic.Properties == nil {
		generic.Properties = make(map[string]string, 1)
	}
	generic.Properties[crossRefProperty] = e.Source + ":" + generic.ID.String()

	return nil
}
