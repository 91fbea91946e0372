package export

import (
	"context"
	"metashare/pkg/domain"
	"metashare/pkg/metadata"
)

// walker discovers the transitive closure of records referenced by a chunk's
// explicit records. It is an explicit work-list traversal rather than a
// recursive one, so arbitrarily deep reference graphs cannot exhaust the call
// stack. Deduplication happens before a reference is followed, which also
// guarantees termination on cyclic graphs: each reachable identity is visited
// at most once per run.
type walker struct {
	source    metadata.Source
	validator metadata.Validator

	// roots holds the identities of the explicitly selected items. A record
	// already selected by the user is never duplicated into related.
	roots *domain.ItemSet
	// related collects identities discovered through traversal, disjoint from
	// roots by construction. It persists across chunks of the same run.
	related *domain.ItemSet

	failures *failureList
}

// resolveRelated walks the reference graph from root and returns the related
// records it discovered, resolved and best-effort validated, in discovery
// order. Validation failures and load failures are recorded, never raised;
// traversal continues past them. Calling resolveRelated again over an
// already-walked graph discovers nothing new.
func (w *walker) resolveRelated(ctx context.Context, root domain.Record) []domain.Record {
	var discovered []domain.Record

	worklist := []domain.Record{root}
	for len(worklist) > 0 {
		record := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, ref := range record.References() {
			if !ref.Exportable() {
				continue
			}
			if w.roots.Contains(ref) {
				continue
			}
			// Add before following the reference; a second encounter of the
			// same identity stops here.
			if !w.related.Add(ref) {
				continue
			}

			resolved, err := w.source.Load(ctx, ref.Type, ref.UUID)
			if err != nil {
				w.failures.record(ctx, ValidationFailure{
					Subject: ref,
					Reason:  "could not load related item",
					Cause:   err,
				})

				continue
			}

			if err := w.validator.ValidateRecord(resolved); err != nil {
				w.failures.record(ctx, ValidationFailure{
					Subject: ref,
					Reason:  "related item failed validation",
					Cause:   err,
				})
			}

			discovered = append(discovered, resolved)
			worklist = append(worklist, resolved)
		}
	}

	return discovered
}
