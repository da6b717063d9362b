package menu

import "context"

// Repository is the read-only catalog contract.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	ListByCategory(ctx context.Context, category string) ([]Item, error)
}
