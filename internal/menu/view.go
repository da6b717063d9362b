package menu

import (
	"context"
	"fmt"
)

const TabAll = "all"

// Tab is one of the category filters above the menu grid.
type Tab struct {
	ID    string
	Label string
}

var Tabs = []Tab{
	{ID: TabAll, Label: "All"},
	{ID: CategoryAppetizers, Label: "Appetizers"},
	{ID: CategoryMains, Label: "Main Courses"},
	{ID: CategoryDesserts, Label: "Desserts"},
	{ID: CategoryBeverages, Label: "Beverages"},
}

// Lister is the part of the catalog a View needs.
type Lister interface {
	List(ctx context.Context) ([]Item, error)
}

// View fetches the catalog once and filters it locally per tab.
type View struct {
	items []Item
}

func NewView(ctx context.Context, catalog Lister) (*View, error) {
	items, err := catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu view: %w", err)
	}
	return &View{items: items}, nil
}

// Select returns the items shown under a tab, in catalog order.
func (v *View) Select(tab string) []Item {
	if tab == TabAll {
		return cloneItems(v.items)
	}
	return filterByCategory(v.items, tab)
}

// Len is the size of the fetched catalog.
func (v *View) Len() int {
	return len(v.items)
}

var tagColors = map[string]string{
	"vegetarian":    "bg-sage/20 text-sage",
	"seafood":       "bg-blue-100 text-blue-600",
	"premium":       "bg-red-100 text-red-600",
	"healthy":       "bg-blue-100 text-blue-600",
	"signature":     "bg-purple-100 text-purple-600",
	"chef's choice": "bg-amber-100 text-amber-600",
	"traditional":   "bg-sage/20 text-sage",
	"artisan":       "bg-amber-100 text-amber-600",
	"craft":         "bg-amber-100 text-amber-600",
}

const defaultTagColor = "bg-gray-100 text-gray-600"

func TagColor(tag string) string {
	if c, ok := tagColors[tag]; ok {
		return c
	}
	return defaultTagColor
}
