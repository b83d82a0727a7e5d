// Package stream pushes journal change events to connected websocket
// clients so open dashboards refresh without polling.
package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"nhooyr.io/websocket"

	"tradescope/internal/config"
)

// Event is one journal change notification. Payload carries the changed
// entity; clients re-fetch whatever views depend on it.
type Event struct {
	Type      string    `json:"type"`
	UserID    string    `json:"-"`
	AccountID string    `json:"account_id,omitempty"`
	Payload   any       `json:"payload,omitempty"`
	At        time.Time `json:"at"`
}

const (
	EventTradeCreated   = "trade.created"
	EventTradeDeleted   = "trade.deleted"
	EventAccountChanged = "account.changed"
	EventImportDone     = "import.done"
)

type subscriber struct {
	userID string
	ch     chan []byte
}

// Hub fans events out to subscribers of the same user. A nil hub is safe
// to publish to, so wiring stays optional.
type Hub struct {
	cfg    config.StreamConfig
	logger *zap.Logger

	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

func NewHub(cfg config.StreamConfig, logger *zap.Logger) *Hub {
	return &Hub{
		cfg:    cfg,
		logger: logger,
		subs:   make(map[*subscriber]struct{}),
	}
}

// Publish delivers the event to every subscriber of event.UserID. Slow
// clients get dropped events rather than blocking the caller.
func (h *Hub) Publish(event Event) {
	if h == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if sub.userID != event.UserID {
			continue
		}
		select {
		case sub.ch <- raw:
		default:
		}
	}
}

func (h *Hub) subscribe(userID string) *subscriber {
	buffered := h.cfg.BufferedSends
	if buffered <= 0 {
		buffered = 16
	}
	sub := &subscriber{userID: userID, ch: make(chan []byte, buffered)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// Serve upgrades the request and streams the user's events until the
// client goes away or ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, w http.ResponseWriter, r *http.Request, userID string) error {
	if h == nil || userID == "" {
		http.Error(w, "stream unavailable", http.StatusServiceUnavailable)
		return nil
	}
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	sub := h.subscribe(userID)
	defer h.unsubscribe(sub)

	writeTimeout := h.cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}

	// Reader goroutine surfaces client close; inbound frames are ignored.
	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return nil
			}
			return err
		case raw := <-sub.ch:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(writeCtx, websocket.MessageText, raw)
			cancel()
			if err != nil {
				if h.logger != nil {
					h.logger.Debug("stream write failed", zap.Error(err))
				}
				return err
			}
		}
	}
}

// SubscriberCount reports the live connections, for the readiness probe.
func (h *Hub) SubscriberCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
