package menu

import (
	"context"
	"errors"
	"fmt"
)

var ErrDuplicateID = errors.New("duplicate menu item id")

// InMemoryRepository holds the catalog loaded at startup. It is never
// written to afterwards, so reads need no locking.
type InMemoryRepository struct {
	items []Item
}

func NewInMemoryRepository(items []Item) (*InMemoryRepository, error) {
	if err := validateCatalog(items); err != nil {
		return nil, err
	}
	return &InMemoryRepository{items: cloneItems(items)}, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Item, error) {
	return cloneItems(r.items), nil
}

func (r *InMemoryRepository) ListByCategory(ctx context.Context, category string) ([]Item, error) {
	return filterByCategory(r.items, category), nil
}

func filterByCategory(items []Item, category string) []Item {
	out := []Item{}
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return cloneItems(out)
}

func validateCatalog(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("menu item %d: empty id", i)
		}
		if _, ok := seen[it.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}
