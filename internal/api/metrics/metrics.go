// Package metrics defines and registers the custom Prometheus metrics of the
// coffee-shop ordering API. Metric names, labels and help strings live here
// and nowhere else.
//
// All metrics are registered with the default registry through promauto when
// the package is first imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coffeeshop"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts orders persisted through the API.
// Label:
//   - payment_method: as submitted by the client, "unknown" when empty
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by payment method.",
	},
	[]string{"payment_method"},
)

// OrderTransitionsTotal counts status writes.
// Labels:
//   - from, to: order statuses
//   - result: "applied" or "conflict" (lost race)
var OrderTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Total number of order status transitions attempted.",
	},
	[]string{"from", "to", "result"},
)

// ── Realtime metrics ──────────────────────────────────────────────────────────

// RealtimeEventsTotal counts events handed to the broadcasters.
// Labels:
//   - event: "newOrder" or "adminNotification"
//   - source: "api", "change_stream" or "admin"
var RealtimeEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "realtime_events_total",
		Help:      "Total number of realtime events emitted.",
	},
	[]string{"event", "source"},
)

// BroadcastErrorsTotal counts broadcaster failures.
// Label:
//   - broadcaster: "websocket" or "rabbitmq"
var BroadcastErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_errors_total",
		Help:      "Total number of failed broadcasts, by broadcaster.",
	},
	[]string{"broadcaster"},
)

// NewOrderDedupTotal counts seen-set decisions for newOrder.
// Label:
//   - result: "hit" (already emitted, skipped), "miss" (emitted) or "error" (store unreachable, emitted)
var NewOrderDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "new_order_dedup_total",
		Help:      "Total number of newOrder deduplication checks, by result.",
	},
	[]string{"result"},
)

// NotificationsSentTotal counts admin broadcasts.
var NotificationsSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of admin notifications broadcast.",
	},
)

// SocketClients tracks the number of connected dashboard sessions.
var SocketClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "socket_clients",
		Help:      "Current number of connected websocket sessions.",
	},
)

// ── Change stream metrics ─────────────────────────────────────────────────────

// ChangeStreamEventsTotal counts insert notifications read from the orders change stream.
var ChangeStreamEventsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_stream_events_total",
		Help:      "Total number of order inserts observed on the change stream.",
	},
)

// ChangeStreamRestartsTotal counts resumptions after a stream failure.
var ChangeStreamRestartsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_stream_restarts_total",
		Help:      "Total number of change stream resumptions after an error.",
	},
)

// DispatchQueueDepth tracks the number of orders waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index
var DispatchQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dispatch_queue_depth",
		Help:      "Current number of orders pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// DispatchDuration measures how long the notifier takes for one dequeued order.
var DispatchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dispatch_duration_seconds",
		Help:      "Duration of newOrder handling from dequeue to broadcast.",
		Buckets:   prometheus.DefBuckets,
	},
)
