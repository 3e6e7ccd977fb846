package service

import (
	"context"
	"strings"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

const (
	categoryAll = "all"
	activeAll   = "all"
)

type CatalogService struct {
	repo ports.ItemRepository
}

func NewCatalogService(repo ports.ItemRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListItems returns the menu. Only active items are listed unless active=all.
func (s *CatalogService) ListItems(ctx context.Context, in ports.ListItemsInput) ([]*domain.Item, error) {
	filter := ports.ItemFilter{
		Category:        strings.TrimSpace(in.Category),
		Search:          strings.TrimSpace(in.Search),
		IncludeInactive: strings.EqualFold(strings.TrimSpace(in.Active), activeAll),
	}
	if strings.EqualFold(filter.Category, categoryAll) {
		filter.Category = ""
	}
	return s.repo.List(ctx, filter)
}

func (s *CatalogService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}
