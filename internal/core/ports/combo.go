package ports

import (
	"context"
	"time"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

// ComboFilter selects combos by active flag; nil Active returns all.
type ComboFilter struct {
	Active *bool
}

// ComboUpdate is a partial combo update. Nil means "leave as is".
type ComboUpdate struct {
	Name          *string
	Description   *string
	Items         []domain.ComboItem
	Price         *float64
	OriginalPrice *float64
	Image         *string
	IsActive      *bool
	StartDate     *time.Time
	EndDate       *time.Time
}

// CreateComboInput is a new combo; IsActive defaults to true when nil.
type CreateComboInput struct {
	Name          string
	Description   string
	Items         []domain.ComboItem
	Price         float64
	OriginalPrice float64
	Image         string
	IsActive      *bool
	StartDate     *time.Time
	EndDate       *time.Time
}

type ComboRepository interface {
	Create(ctx context.Context, c *domain.Combo) error
	FindByID(ctx context.Context, id string) (*domain.Combo, error)
	List(ctx context.Context, filter ComboFilter) ([]*domain.Combo, error)
	Update(ctx context.Context, id string, upd ComboUpdate) (*domain.Combo, error)
	Delete(ctx context.Context, id string) error
}

type ComboService interface {
	ListCombos(ctx context.Context, filter ComboFilter) ([]*domain.Combo, error)
	GetCombo(ctx context.Context, id string) (*domain.Combo, error)
	CreateCombo(ctx context.Context, in CreateComboInput) (*domain.Combo, error)
	UpdateCombo(ctx context.Context, id string, upd ComboUpdate) (*domain.Combo, error)
	DeleteCombo(ctx context.Context, id string) error
}
