package ports

import (
	"context"
	"time"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

// OrderFilter carries the parsed query of GET /orders/filter.
// Zero values disable the corresponding condition.
type OrderFilter struct {
	UserID        string
	Status        domain.OrderStatus // status == Status
	StatusNot     domain.OrderStatus // status != StatusNot; takes precedence over Status
	City          string
	District      string
	Ward          string
	PaymentMethod string
	DateFrom      time.Time // orderDate >= DateFrom
	DateTo        time.Time // orderDate <= DateTo
	Keyword       string    // OR across id, recipient name, phone and product names
}

// OrderUpdate is a partial order update. Nil means "leave as is".
type OrderUpdate struct {
	UserID          *string
	Status          *domain.OrderStatus
	DeliveryAddress *domain.DeliveryAddress
	Items           []domain.OrderItem
	PaymentMethod   *string
	TotalAmount     *float64
	Note            *string
	OrderDate       *time.Time
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	// Update applies upd and returns the updated order. When expected is not
	// empty the write only happens while the stored status still equals it; a
	// mismatch on an existing order yields domain.ErrOrderConflict.
	Update(ctx context.Context, id string, expected domain.OrderStatus, upd OrderUpdate) (*domain.Order, error)
}
