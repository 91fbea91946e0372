package domain_test

import (
	"metashare/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestItemSet_AddDeduplicatesAndPreservesOrder(t *testing.T) {
	first := domain.Item{Type: "Concept", UUID: uuid.New()}
	second := domain.Item{Type: "Location", UUID: uuid.New()}

	s := domain.NewItemSet()
	require.True(t, s.Add(first))
	require.True(t, s.Add(second))
	require.False(t, s.Add(first), "second insertion of the same identity must report false")

	require.Equal(t, 2, s.Len())
	require.Equal(t, []domain.Item{first, second}, s.Items())
}

func TestItemSet_NewDropsDuplicates(t *testing.T) {
	item := domain.Item{Type: "Concept", UUID: uuid.New()}

	s := domain.NewItemSet(item, item, item)
	require.Equal(t, 1, s.Len())
}

func TestItemSet_Contains(t *testing.T) {
	item := domain.Item{Type: "Concept", UUID: uuid.New()}

	s := domain.NewItemSet(item)
	require.True(t, s.Contains(item))
	require.False(t, s.Contains(domain.Item{Type: "Concept", UUID: uuid.New()}))
	// same uuid under a different type is a different identity
	require.False(t, s.Contains(domain.Item{Type: "Location", UUID: item.UUID}))
}

func TestItemSet_Clear(t *testing.T) {
	item := domain.Item{Type: "Concept", UUID: uuid.New()}

	s := domain.NewItemSet(item)
	s.Clear()

	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains(item))
	require.True(t, s.Add(item), "cleared set accepts the identity again")
}

func TestItemSet_NilReceiverReads(t *testing.T) {
	var s *domain.ItemSet

	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains(domain.Item{}))
	require.Nil(t, s.Items())
}

func TestItemSet_ItemsReturnsCopy(t *testing.T) {
	item := domain.Item{Type: "Concept", UUID: uuid.New()}

	s := domain.NewItemSet(item)
	items := s.Items()
	items[0] = domain.Item{Type: "Location", UUID: uuid.New()}

	require.Equal(t, []domain.Item{item}, s.Items())
}

func TestItemFor(t *testing.T) {
	record := &domain.GenericRecord{Kind: "Concept", ID: uuid.New(), Name: "fever"}

	item := domain.ItemFor(record)
	require.Equal(t, "Concept", item.Type)
	require.Equal(t, record.ID, item.UUID)
}

func TestItemExportable(t *testing.T) {
	require.True(t, domain.Item{Type: "Concept", UUID: uuid.New()}.Exportable())
	require.True(t, domain.Item{Type: "Location", UUID: uuid.New()}.Exportable())
	require.False(t, domain.Item{Type: domain.TypeUser, UUID: uuid.New()}.Exportable())
	require.False(t, domain.Item{UUID: uuid.New()}.Exportable())
}
