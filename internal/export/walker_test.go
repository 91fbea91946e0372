package export

import (
	"context"
	"metashare/pkg/domain"
	"metashare/pkg/metadata"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func record(kind, name string, refs ...domain.Item) *domain.GenericRecord {
	return &domain.GenericRecord{Kind: kind, ID: uuid.New(), Name: name, Refs: refs}
}

func item(r *domain.GenericRecord) domain.Item {
	return domain.ItemFor(r)
}

func newTestWalker(source metadata.Source, roots ...domain.Item) *walker {
	return &walker{
		source:    source,
		validator: metadata.NewValidator(),
		roots:     domain.NewItemSet(roots...),
		related:   domain.NewItemSet(),
		failures:  newFailureList(),
	}
}

func TestWalker_DiscoversTransitiveClosure(t *testing.T) {
	registry := metadata.NewRegistry()

	c := record("Concept", "c")
	b := record("ConceptClass", "b", item(c))
	a := record("Concept", "a", item(b))
	registry.Put(a, b, c)

	w := newTestWalker(registry, item(a))

	discovered := w.resolveRelated(context.Background(), a)

	require.Len(t, discovered, 2)
	require.Equal(t, 2, w.related.Len())
	require.True(t, w.related.Contains(item(b)))
	require.True(t, w.related.Contains(item(c)))
	require.False(t, w.failures.hasFailures())
}

func TestWalker_TerminatesOnCycles(t *testing.T) {
	registry := metadata.NewRegistry()

	// a -> b -> c -> a
	a := &domain.GenericRecord{Kind: "Concept", ID: uuid.New(), Name: "a"}
	b := &domain.GenericRecord{Kind: "Concept", ID: uuid.New(), Name: "b"}
	c := &domain.GenericRecord{Kind: "Concept", ID: uuid.New(), Name: "c"}
	a.Refs = []domain.Item{item(b)}
	b.Refs = []domain.Item{item(c)}
	c.Refs = []domain.Item{item(a)}
	registry.Put(a, b, c)

	w := newTestWalker(registry, item(a))

	discovered := w.resolveRelated(context.Background(), a)

	// the cycle closes back on the root, which is never duplicated
	require.Len(t, discovered, 2)
	require.False(t, w.related.Contains(item(a)))
}

func TestWalker_EachIdentityVisitedOnce(t *testing.T) {
	registry := metadata.NewRegistry()

	shared := record("Concept", "shared")
	left := record("Concept", "left", item(shared))
	right := record("Concept", "right", item(shared))
	a := record("Concept", "a", item(left), item(right), item(shared))
	registry.Put(a, left, right, shared)

	w := newTestWalker(registry, item(a))

	discovered := w.resolveRelated(context.Background(), a)

	require.Len(t, discovered, 3)
	require.Equal(t, 3, w.related.Len())
}

func TestWalker_SkipsUserAccounts(t *testing.T) {
	registry := metadata.NewRegistry()

	creator := record(domain.TypeUser, "admin")
	a := record("Concept", "a", item(creator))
	registry.Put(a, creator)

	w := newTestWalker(registry, item(a))

	discovered := w.resolveRelated(context.Background(), a)

	require.Empty(t, discovered)
	require.Equal(t, 0, w.related.Len())
}

func TestWalker_SkipsExplicitRoots(t *testing.T) {
	registry := metadata.NewRegistry()

	other := record("Concept", "other")
	a := record("Concept", "a", item(other))
	registry.Put(a, other)

	// other is explicitly selected, so it must not land in related
	w := newTestWalker(registry, item(a), item(other))

	discovered := w.resolveRelated(context.Background(), a)

	require.Empty(t, discovered)
	require.Equal(t, 0, w.related.Len())
}

func TestWalker_RecordsLoadFailuresAndContinues(t *testing.T) {
	registry := metadata.NewRegistry()

	present := record("Concept", "present")
	missing := domain.Item{Type: "Concept", UUID: uuid.New()}
	a := record("Concept", "a", missing, item(present))
	registry.Put(a, present)

	w := newTestWalker(registry, item(a))

	discovered := w.resolveRelated(context.Background(), a)

	// the load failure is recorded, traversal continues to the next reference
	require.Len(t, discovered, 1)
	require.True(t, w.failures.hasFailures())
	require.Len(t, w.failures.failures, 1)
	require.Equal(t, missing, w.failures.failures[0].Subject)
}

func TestWalker_RecordsValidationFailuresButStillTraverses(t *testing.T) {
	registry := metadata.NewRegistry()

	child := record("Concept", "child")
	// no name, fails the default validator
	invalid := &domain.GenericRecord{Kind: "Concept", ID: uuid.New(), Refs: []domain.Item{item(child)}}
	a := record("Concept", "a", item(invalid))
	registry.Put(a, invalid, child)

	w := newTestWalker(registry, item(a))

	discovered := w.resolveRelated(context.Background(), a)

	// the invalid record is still part of the closure and its references are
	// still followed
	require.Len(t, discovered, 2)
	require.True(t, w.failures.hasFailures())
}

func TestWalker_SecondWalkDiscoversNothing(t *testing.T) {
	registry := metadata.NewRegistry()

	b := record("Concept", "b")
	a := record("Concept", "a", item(b))
	registry.Put(a, b)

	w := newTestWalker(registry, item(a))

	require.Len(t, w.resolveRelated(context.Background(), a), 1)
	require.Empty(t, w.resolveRelated(context.Background(), a))
	require.Equal(t, 1, w.related.Len())
}
