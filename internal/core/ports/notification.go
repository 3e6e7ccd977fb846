package ports

import (
	"context"
	"time"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

// Broadcaster pushes an event to every subscriber it knows about.
type Broadcaster interface {
	Name() string
	Broadcast(ctx context.Context, event domain.RealtimeEvent) error
}

// SeenSet remembers keys for a limited time. Claim returns true only for the
// first caller that presents a key within ttl.
type SeenSet interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// OrderEventSink receives newly inserted orders, whichever path observed them.
type OrderEventSink interface {
	OrderCreated(ctx context.Context, order *domain.Order, source domain.EventSource) error
}

// BroadcastInput is the admin notification request. Type is what the caller
// asked for; it is logged but not emitted.
type BroadcastInput struct {
	Title string
	Body  string
	Type  string
}

type NotificationService interface {
	OrderEventSink
	BroadcastAdmin(ctx context.Context, in BroadcastInput) (*domain.AdminNotification, error)
}
