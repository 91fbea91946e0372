package domain

import "github.com/google/uuid"

// Item is a lightweight reference to a single metadata record, identified by
// its record type and UUID. Items are the unit of selection in a package
// manifest: the user picks Items, the exporter resolves them to full records.
// Two Items are equal when both their Type and UUID match; Item is comparable
// and safe to use as a map key.
type Item struct {
	// Type is the metadata record kind, e.g. "Concept" or "Location".
	Type string `json:"type"`
	// UUID uniquely identifies the record within its type.
	UUID uuid.UUID `json:"uuid"`
}

// ItemFor builds the Item referencing the given record.
func ItemFor(record Record) Item {
	return Item{Type: record.RecordType(), UUID: record.RecordUUID()}
}

// ItemSet is an ordered collection of Items with set semantics: insertion
// order is preserved and duplicates are ignored. The zero value is not usable,
// use NewItemSet.
//
// ItemSet is not safe for concurrent use. An export run owns its sets
// exclusively, so no locking is needed.
type ItemSet struct {
	items   []Item
	present map[Item]struct{}
}

// NewItemSet creates an ItemSet containing the given items in order, with
// duplicates dropped.
func NewItemSet(items ...Item) *ItemSet {
	s := &ItemSet{present: make(map[Item]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add inserts the item if not already present. It reports whether the item
// was added.
func (s *ItemSet) Add(item Item) bool {
	if _, ok := s.present[item]; ok {
		return false
	}
	s.present[item] = struct{}{}
	s.items = append(s.items, item)

	return true
}

// Contains reports whether the item is in the set.
func (s *ItemSet) Contains(item Item) bool {
	if s == nil {
		return false
	}
	_, ok := s.present[item]

	return ok
}

// Len returns the number of items in the set.
func (s *ItemSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// Items returns the items in insertion order. The returned slice is a copy
// and may be mutated freely by the caller.
func (s *ItemSet) Items() []Item {
	if s == nil {
		return nil
	}
	out := make([]Item, len(s.items))
	copy(out, s.items)

	return out
}

// Clear removes all items from the set, keeping the allocated capacity.
func (s *ItemSet) Clear() {
	s.items = s.items[:0]
	clear(s.present)
}
