package broadcast

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is the envelope every published message is wrapped in.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

type client struct {
	id      string
	channel string
	conn    *websocket.Conn
	send    chan []byte
}

// Hub fans published events out to every websocket subscribed to a channel.
// Publication is fire-and-forget: a client whose buffer is full is dropped
// and is expected to resynchronize over the pull path after reconnecting.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[*client]struct{}
	logger   *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		channels: make(map[string]map[*client]struct{}),
		logger:   logger,
	}
}

// Publish sends an event to every subscriber of the channel. Encoding errors
// and slow clients are logged, never propagated; delivery is at-most-once.
func (h *Hub) Publish(channel, event string, payload any) {
	msg, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		h.logger.Error("failed to encode broadcast event",
			zap.String("channel", channel),
			zap.String("event", event),
			zap.Error(err),
		)
		return
	}

	h.mu.RLock()
	subscribers := make([]*client, 0, len(h.channels[channel]))
	for c := range h.channels[channel] {
		subscribers = append(subscribers, c)
	}
	h.mu.RUnlock()

	for _, c := range subscribers {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("dropping slow subscriber",
				zap.String("channel", channel),
				zap.String("client_id", c.id),
			)
			h.remove(c)
		}
	}
}

// ServeWS upgrades an HTTP request and subscribes the connection to the
// channel until it closes.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, channel string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		id:      uuid.NewString(),
		channel: channel,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
	}
	h.add(c)
	h.logger.Debug("subscriber connected",
		zap.String("channel", channel),
		zap.String("client_id", c.id),
	)

	go h.writePump(c)
	go h.readPump(c)
}

// SubscriberCount returns how many clients are on a channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channel])
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.channels[c.channel]
	if !ok {
		set = make(map[*client]struct{})
		h.channels[c.channel] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	set, ok := h.channels[c.channel]
	if ok {
		if _, present := set[c]; present {
			delete(set, c)
			close(c.send)
			if len(set) == 0 {
				delete(h.channels, c.channel)
			}
		}
	}
	h.mu.Unlock()
}

// readPump discards inbound frames; clients talk to the server over HTTP.
// It exists to process control frames and to notice the close.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(1024)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
