package ports

import (
	"context"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

// ItemFilter drives the menu query. Empty Category and Search disable those filters.
type ItemFilter struct {
	Category        string
	Search          string
	IncludeInactive bool
}

// ItemRepository is read-only: items are managed by an external tool.
type ItemRepository interface {
	List(ctx context.Context, filter ItemFilter) ([]*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
}

// ListItemsInput mirrors the query string of GET /items.
type ListItemsInput struct {
	Category string
	Search   string
	Active   string
}

type CatalogService interface {
	ListItems(ctx context.Context, in ListItemsInput) ([]*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
}
