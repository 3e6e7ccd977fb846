// Package realtime keeps the set of connected dashboard sessions and pushes
// JSON frames of the form {"event": ..., "data": ...} to all of them.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/coffeeshop/ordering-api/internal/api/metrics"
	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

// ErrHubClosed is returned once the hub loop has stopped.
var ErrHubClosed = errors.New("realtime hub closed")

// Hub owns the session set. Only the Run goroutine touches clients.
type Hub struct {
	upgrader   websocket.Upgrader
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	count      atomic.Int64
	log        zerolog.Logger
}

// NewHub builds a hub that accepts upgrades from allowedOrigins. A "*"
// entry accepts any origin; requests without an Origin header are always
// accepted.
func NewHub(allowedOrigins []string, log zerolog.Logger) *Hub {
	h := &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		log:        log,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[strings.TrimRight(strings.TrimSpace(o), "/")] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, ok := set["*"]; ok {
			return true
		}
		_, ok := set[strings.TrimRight(origin, "/")]
		return ok
	}
}

func (h *Hub) Name() string { return "websocket" }

// Run serves register, unregister and broadcast requests until ctx is done,
// then closes every session.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return nil
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.setCount()
			h.log.Info().Str("session_id", c.id).Str("remote", c.remote).Msg("client connected")
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.log.Info().Str("session_id", c.id).Msg("client disconnected")
			}
		case msg := <-h.broadcast:
			h.fanout(msg)
		}
	}
}

// fanout never blocks: a client whose buffer is full is disconnected.
func (h *Hub) fanout(msg []byte) {
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.log.Warn().Str("session_id", c.id).Msg("client too slow, dropping session")
			h.drop(c)
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
	h.setCount()
}

func (h *Hub) setCount() {
	h.count.Store(int64(len(h.clients)))
	metrics.SocketClients.Set(float64(len(h.clients)))
}

// ClientCount returns the number of registered sessions.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Broadcast queues event for every connected session.
func (h *Hub) Broadcast(ctx context.Context, event domain.RealtimeEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.Name, err)
	}
	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}
	select {
	case h.broadcast <- msg:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ServeWS upgrades the request and registers a new session. On a failed
// upgrade the upgrader has already written the HTTP error.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug().Err(err).Str("origin", r.Header.Get("Origin")).Msg("websocket upgrade rejected")
		return nil
	}

	c := &Client{
		id:     uuid.NewString(),
		remote: r.RemoteAddr,
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return ErrHubClosed
	}

	go c.writePump()
	go c.readPump()
	return nil
}
