package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRepository(t *testing.T) *InMemoryRepository {
	t.Helper()

	items, err := DefaultSeed()
	require.NoError(t, err)

	repo, err := NewInMemoryRepository(items)
	require.NoError(t, err)
	return repo
}

func TestDefaultSeed_Counts(t *testing.T) {
	items, err := DefaultSeed()
	require.NoError(t, err)
	require.Len(t, items, 9)

	counts := map[string]int{}
	for _, it := range items {
		counts[it.Category]++
		assert.NotEmpty(t, it.Tags, "item %s has no tags", it.ID)
	}

	assert.Equal(t, map[string]int{
		CategoryAppetizers: 2,
		CategoryMains:      3,
		CategoryDesserts:   2,
		CategoryBeverages:  2,
	}, counts)
	assert.Equal(t, "18.00", items[0].Price)
}

func TestLoadSeed_RejectsDuplicateIDs(t *testing.T) {
	doc := []byte(`
items:
  - id: "1"
    name: A
    category: mains
  - id: "1"
    name: B
    category: mains
`)
	_, err := LoadSeed(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestLoadSeed_RejectsUnknownFields(t *testing.T) {
	doc := []byte(`
items:
  - id: "1"
    name: A
    cost: "3.00"
`)
	_, err := LoadSeed(doc)
	assert.Error(t, err)
}

func TestLoadSeed_NilTagsBecomeEmpty(t *testing.T) {
	items, err := LoadSeed([]byte("items:\n  - id: \"x\"\n    name: Water\n    category: beverages\n"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NotNil(t, items[0].Tags)
	assert.Equal(t, "", items[0].Badge())
}

func TestListByCategory_IsOrderedSubsetOfList(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)

	for _, category := range []string{CategoryAppetizers, CategoryMains, CategoryDesserts, CategoryBeverages, "brunch", ""} {
		got, err := repo.ListByCategory(ctx, category)
		require.NoError(t, err)

		want := []Item{}
		for _, it := range all {
			if it.Category == category {
				want = append(want, it)
			}
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ListByCategory(%q) mismatch (-want +got):\n%s", category, diff)
		}
	}
}

func TestListByCategory_UnknownIsEmptyNotError(t *testing.T) {
	repo := newSeededRepository(t)

	got, err := repo.ListByCategory(context.Background(), "Mains")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_ReturnsCopies(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	first[0].Name = "changed"
	first[0].Tags[0] = "changed"

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Burrata & Heirloom Tomatoes", second[0].Name)
	assert.Equal(t, "vegetarian", second[0].Tags[0])
}

func TestList_StableAcrossCalls(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	a, _ := repo.List(ctx)
	b, _ := repo.List(ctx)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("List order changed between calls:\n%s", diff)
	}
}

type failingRepository struct{}

func (failingRepository) List(context.Context) ([]Item, error) {
	return nil, errors.New("connection refused")
}

func (failingRepository) ListByCategory(context.Context, string) ([]Item, error) {
	return nil, errors.New("connection refused")
}

func TestService_WrapsRepositoryErrors(t *testing.T) {
	service := NewService(failingRepository{})

	_, err := service.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list menu")

	_, err = service.ListByCategory(context.Background(), "mains")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"mains"`)
}
