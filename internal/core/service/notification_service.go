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

const (
	defaultDedupTTL = 2 * time.Minute
	newOrderKeyFmt  = "neworder:%s"
	sourceAdmin     = "admin"
)

// NotificationService fans realtime events out to every configured broadcaster.
// newOrder events are deduplicated by order id, because both the API path and
// the change stream report the same insert.
type NotificationService struct {
	broadcasters []ports.Broadcaster
	seen         ports.SeenSet
	dedupTTL     time.Duration
	log          zerolog.Logger
	now          func() time.Time
}

// NewNotificationService returns a NotificationService. seen may be nil, in
// which case every reported insert is emitted.
func NewNotificationService(seen ports.SeenSet, dedupTTL time.Duration, log zerolog.Logger, broadcasters ...ports.Broadcaster) *NotificationService {
	if dedupTTL <= 0 {
		dedupTTL = defaultDedupTTL
	}
	return &NotificationService{
		broadcasters: broadcasters,
		seen:         seen,
		dedupTTL:     dedupTTL,
		log:          log,
		now:          time.Now,
	}
}

// OrderCreated emits newOrder once per order id.
func (s *NotificationService) OrderCreated(ctx context.Context, order *domain.Order, source domain.EventSource) error {
	if order == nil || order.ID == "" {
		return fmt.Errorf("order created: %w: missing order id", domain.ErrValidation)
	}

	if s.seen != nil {
		claimed, err := s.seen.Claim(ctx, fmt.Sprintf(newOrderKeyFmt, order.ID), s.dedupTTL)
		switch {
		case err != nil:
			metrics.NewOrderDedupTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Str("order_id", order.ID).Msg("seen-set unavailable, emitting anyway")
		case !claimed:
			metrics.NewOrderDedupTotal.WithLabelValues("hit").Inc()
			s.log.Debug().Str("order_id", order.ID).Str("source", string(source)).Msg("newOrder already emitted")
			return nil
		default:
			metrics.NewOrderDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	event := domain.RealtimeEvent{
		Name: domain.EventNewOrder,
		Data: domain.NewOrderPayload{
			Message:   domain.NewOrderMessage,
			Order:     order,
			Timestamp: s.now().UTC(),
		},
	}
	metrics.RealtimeEventsTotal.WithLabelValues(domain.EventNewOrder, string(source)).Inc()
	s.log.Info().Str("order_id", order.ID).Str("source", string(source)).Msg("newOrder emitted")
	return s.broadcast(ctx, event)
}

// BroadcastAdmin sends an adminNotification to every connected session.
func (s *NotificationService) BroadcastAdmin(ctx context.Context, in ports.BroadcastInput) (*domain.AdminNotification, error) {
	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	if title == "" || body == "" {
		return nil, domain.ErrInvalidNotification
	}

	// Dashboards send a type of their own; broadcasts are always info.
	kind := domain.NotificationInfo

	n := &domain.AdminNotification{
		Title:     title,
		Body:      body,
		Type:      kind,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}

	metrics.NotificationsSentTotal.Inc()
	metrics.RealtimeEventsTotal.WithLabelValues(domain.EventAdminNotification, sourceAdmin).Inc()
	s.log.Info().Str("title", title).Str("requested_type", in.Type).Msg("admin notification broadcast")

	if err := s.broadcast(ctx, domain.RealtimeEvent{Name: domain.EventAdminNotification, Data: n}); err != nil {
		s.log.Warn().Err(err).Msg("admin notification not delivered to every broadcaster")
	}
	return n, nil
}

// broadcast tries every broadcaster and joins the failures.
func (s *NotificationService) broadcast(ctx context.Context, event domain.RealtimeEvent) error {
	var errs []error
	for _, b := range s.broadcasters {
		if err := b.Broadcast(ctx, event); err != nil {
			metrics.BroadcastErrorsTotal.WithLabelValues(b.Name()).Inc()
			s.log.Error().Err(err).Str("broadcaster", b.Name()).Str("event", event.Name).Msg("broadcast failed")
			errs = append(errs, fmt.Errorf("%s: %w", b.Name(), err))
		}
	}
	return errors.Join(errs...)
}
