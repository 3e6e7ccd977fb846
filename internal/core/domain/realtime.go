package domain

import "time"

// Realtime event names pushed to dashboard sessions.
const (
	EventNewOrder          = "newOrder"
	EventAdminNotification = "adminNotification"
)

// NewOrderMessage is the message attached to newOrder events. Dashboards match on it.
const NewOrderMessage = "Có đơn hàng mới!"

// EventSource identifies which code path observed an order insert.
type EventSource string

const (
	SourceAPI          EventSource = "api"
	SourceChangeStream EventSource = "change_stream"
)

// NotificationType is the toast style dashboards use for an admin broadcast.
// The server only ever emits NotificationInfo.
type NotificationType string

const NotificationInfo NotificationType = "info"

// RealtimeEvent is a named payload fanned out to every connected session.
type RealtimeEvent struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// NewOrderPayload is the data of a newOrder event.
type NewOrderPayload struct {
	Message   string    `json:"message"`
	Order     *Order    `json:"order"`
	Timestamp time.Time `json:"timestamp"`
}

// AdminNotification is the data of an adminNotification event.
type AdminNotification struct {
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Type      NotificationType `json:"type"`
	Timestamp string           `json:"timestamp"`
}
