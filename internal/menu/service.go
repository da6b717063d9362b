package menu

import (
	"context"
	"fmt"
)

// Service is the menu catalog exposed to handlers and views.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the whole catalog in seed order.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

// ListByCategory matches the category string exactly. Unknown categories
// are not an error, they just have no items.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]Item, error) {
	items, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list menu by category %q: %w", category, err)
	}
	return items, nil
}
