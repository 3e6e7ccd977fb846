package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffeeshop/ordering-api/internal/api/metrics"
	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

type OrderService struct {
	repo     ports.OrderRepository
	notifier ports.OrderEventSink
	logger   zerolog.Logger
	now      func() time.Time
}

func NewOrderService(repo ports.OrderRepository, notifier ports.OrderEventSink, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, notifier: notifier, logger: logger, now: time.Now}
}

// CreateOrder persists a new order and hands it to the realtime notifier.
// A notifier failure is logged; the order is already stored at that point.
func (s *OrderService) CreateOrder(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	status := domain.StatusPending
	if in.Status != "" {
		status = domain.OrderStatus(in.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
		}
	}

	now := s.now().UTC()
	order := &domain.Order{
		UserID:          in.UserID,
		Status:          status,
		DeliveryAddress: in.DeliveryAddress,
		Items:           in.Items,
		PaymentMethod:   in.PaymentMethod,
		Note:            in.Note,
		OrderDate:       now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	if in.OrderDate != nil {
		order.OrderDate = in.OrderDate.UTC()
	}
	if in.TotalAmount != nil {
		order.TotalAmount = *in.TotalAmount
	} else {
		order.TotalAmount = order.ItemsTotal()
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	paymentLabel := order.PaymentMethod
	if paymentLabel == "" {
		paymentLabel = "unknown"
	}
	metrics.OrdersCreatedTotal.WithLabelValues(paymentLabel).Inc()
	s.logger.Info().Str("order_id", order.ID).Str("user_id", order.UserID).Float64("total", order.TotalAmount).Msg("order created")

	if s.notifier != nil {
		if err := s.notifier.OrderCreated(ctx, order, domain.SourceAPI); err != nil {
			s.logger.Warn().Err(err).Str("order_id", order.ID).Msg("newOrder notification incomplete")
		}
	}

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx, ports.OrderFilter{})
}

// FilterOrders parses the raw query and runs a conjunctive search.
func (s *OrderService) FilterOrders(ctx context.Context, in ports.FilterOrdersInput) ([]*domain.Order, error) {
	filter, err := parseOrderFilter(in)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// UpdateOrder merges the provided fields into the order. A status, when given,
// must be a known one and is guarded against concurrent writers.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, in ports.UpdateOrderInput) (*domain.Order, error) {
	upd := ports.OrderUpdate{
		UserID:          in.UserID,
		DeliveryAddress: in.DeliveryAddress,
		Items:           in.Items,
		PaymentMethod:   in.PaymentMethod,
		TotalAmount:     in.TotalAmount,
		Note:            in.Note,
		OrderDate:       in.OrderDate,
	}

	if in.Status == nil {
		order, err := s.repo.Update(ctx, id, "", upd)
		if err != nil {
			return nil, err
		}
		s.logger.Info().Str("order_id", id).Msg("order updated")
		return order, nil
	}

	next := domain.OrderStatus(*in.Status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *in.Status)
	}
	return s.setStatus(ctx, id, next, upd)
}

// ChangeStatus validates status before looking the order up.
func (s *OrderService) ChangeStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	return s.setStatus(ctx, id, next, ports.OrderUpdate{})
}

func (s *OrderService) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.setStatus(ctx, id, domain.StatusCancelled, ports.OrderUpdate{})
}

func (s *OrderService) ConfirmOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.setStatus(ctx, id, domain.StatusConfirmed, ports.OrderUpdate{})
}

// setStatus writes next over whatever status the order holds, applying upd
// in the same write. The write is conditioned on the status that was read;
// a concurrent status change yields ErrOrderConflict.
func (s *OrderService) setStatus(ctx context.Context, id string, next domain.OrderStatus, upd ports.OrderUpdate) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := order.Status
	if from == next && isEmptyOrderUpdate(upd) {
		return order, nil
	}

	upd.Status = &next
	updated, err := s.repo.Update(ctx, id, from, upd)
	if err != nil {
		if errors.Is(err, domain.ErrOrderConflict) {
			metrics.OrderTransitionsTotal.WithLabelValues(string(from), string(next), "conflict").Inc()
		}
		return nil, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(from), string(next), "applied").Inc()
	s.logger.Info().Str("order_id", id).Str("from", string(from)).Str("to", string(next)).Msg("order status changed")
	return updated, nil
}

func isEmptyOrderUpdate(u ports.OrderUpdate) bool {
	return u.UserID == nil && u.Status == nil && u.DeliveryAddress == nil && u.Items == nil &&
		u.PaymentMethod == nil && u.TotalAmount == nil && u.Note == nil && u.OrderDate == nil
}

func parseOrderFilter(in ports.FilterOrdersInput) (ports.OrderFilter, error) {
	f := ports.OrderFilter{
		UserID:        strings.TrimSpace(in.UserID),
		City:          strings.TrimSpace(in.City),
		District:      strings.TrimSpace(in.District),
		Ward:          strings.TrimSpace(in.Ward),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Keyword:       strings.TrimSpace(in.Keyword),
	}

	if in.Status != "" {
		f.Status = domain.OrderStatus(in.Status)
		if !f.Status.IsValid() {
			return f, fmt.Errorf("%w: status %q", domain.ErrInvalidStatus, in.Status)
		}
	}
	if in.StatusNot != "" {
		f.StatusNot = domain.OrderStatus(in.StatusNot)
		if !f.StatusNot.IsValid() {
			return f, fmt.Errorf("%w: status_ne %q", domain.ErrInvalidStatus, in.StatusNot)
		}
		// status_ne wins when both are present.
		f.Status = ""
	}

	var err error
	if f.DateFrom, err = parseFilterDate(in.DateFrom, false); err != nil {
		return f, fmt.Errorf("%w: date_from: %v", domain.ErrValidation, err)
	}
	if f.DateTo, err = parseFilterDate(in.DateTo, true); err != nil {
		return f, fmt.Errorf("%w: date_to: %v", domain.ErrValidation, err)
	}
	return f, nil
}

// parseFilterDate accepts YYYY-MM-DD or RFC 3339. A date-only upper bound is
// moved to the last instant of that day so the range stays inclusive.
func parseFilterDate(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Millisecond)
		}
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD or RFC 3339, got %q", raw)
	}
	return t.UTC(), nil
}
