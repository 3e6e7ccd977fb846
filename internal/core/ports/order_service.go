package ports

import (
	"context"
	"time"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

// CreateOrderInput carries a new order as submitted by a client app.
type CreateOrderInput struct {
	UserID          string
	Status          string
	DeliveryAddress domain.DeliveryAddress
	Items           []domain.OrderItem
	PaymentMethod   string
	TotalAmount     *float64
	Note            string
	OrderDate       *time.Time
}

// UpdateOrderInput is a merge-style update; Status, when set, must be a known status.
type UpdateOrderInput struct {
	UserID          *string
	Status          *string
	DeliveryAddress *domain.DeliveryAddress
	Items           []domain.OrderItem
	PaymentMethod   *string
	TotalAmount     *float64
	Note            *string
	OrderDate       *time.Time
}

// FilterOrdersInput mirrors the raw query string of GET /orders/filter.
type FilterOrdersInput struct {
	UserID        string
	Status        string
	StatusNot     string
	City          string
	District      string
	Ward          string
	PaymentMethod string
	DateFrom      string
	DateTo        string
	Keyword       string
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	FilterOrders(ctx context.Context, in FilterOrdersInput) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, in UpdateOrderInput) (*domain.Order, error)
	ChangeStatus(ctx context.Context, id string, status string) (*domain.Order, error)
	CancelOrder(ctx context.Context, id string) (*domain.Order, error)
	ConfirmOrder(ctx context.Context, id string) (*domain.Order, error)
}
