// Package realtime pushes chat messages to admins watching a quote over websockets.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"translation_backoffice/internal/adapter/http/dto/response"
	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/infrastructure/metrics"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxInboundSize = 512
	sendBuffer     = 64
)

// Event is the frame written to subscribers.
type Event struct {
	Type    string                   `json:"type"`
	Payload response.MessageResponse `json:"payload"`
}

type client struct {
	quoteID string
	conn    *websocket.Conn
	send    chan []byte
}

// Hub fans persisted chat messages out to the sockets subscribed to their quote.
type Hub struct {
	upgrader   websocket.Upgrader
	register   chan *client
	unregister chan *client
	broadcast  chan entities.Message
	done       chan struct{}

	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}

	log zerolog.Logger
}

var _ interfaces.IMessagePublisher = (*Hub)(nil)

// NewHub builds a hub. checkOrigin may be nil to accept any origin.
func NewHub(checkOrigin func(r *http.Request) bool) *Hub {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan entities.Message, 256),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*client]struct{}),
		log:        log.With().Str("component", "chat").Str("layer", "realtime").Logger(),
	}
}

// Run owns the subscriber set until ctx is cancelled, then closes every socket.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case c := <-h.register:
			h.mu.Lock()
			room, ok := h.rooms[c.quoteID]
			if !ok {
				room = make(map[*client]struct{})
				h.rooms[c.quoteID] = room
			}
			room[c] = struct{}{}
			h.mu.Unlock()
			metrics.ChatConnections.Inc()
			h.log.Debug().Str("quote_id", c.quoteID).Msg("subscriber registered")

		case c := <-h.unregister:
			h.remove(c)

		case m := <-h.broadcast:
			h.fanOut(m)
		}
	}
}

// Publish queues m for delivery. It never blocks the request that stored the message;
// when the queue is full the event is dropped and clients catch up through the REST list.
func (h *Hub) Publish(m entities.Message) {
	select {
	case h.broadcast <- m:
	case <-h.done:
	default:
		h.log.Warn().Str("quote_id", m.QuoteID).Str("message_id", m.ID).Msg("chat broadcast queue full, event dropped")
	}
}

// Subscribers reports how many sockets watch quoteID.
func (h *Hub) Subscribers(quoteID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[quoteID])
}

// ServeQuote upgrades the request and subscribes the socket to the :quote_id room.
func (h *Hub) ServeQuote(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("quote_id"))
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid request"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("quote_id", quoteID).Msg("websocket upgrade failed")
		return
	}

	cl := &client{quoteID: quoteID, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- cl:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go h.writePump(cl)
	go h.readPump(cl)
}

func (h *Hub) fanOut(m entities.Message) {
	frame, err := json.Marshal(Event{Type: "new_message", Payload: response.FromMessage(m)})
	if err != nil {
		h.log.Error().Err(err).Str("message_id", m.ID).Msg("marshal chat event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.rooms[m.QuoteID] {
		select {
		case cl.send <- frame:
		default:
			// Slow consumer: drop it rather than stall the hub.
			h.dropLocked(cl)
		}
	}
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(cl)
}

func (h *Hub) dropLocked(cl *client) {
	room, ok := h.rooms[cl.quoteID]
	if !ok {
		return
	}
	if _, ok := room[cl]; !ok {
		return
	}
	delete(room, cl)
	if len(room) == 0 {
		delete(h.rooms, cl.quoteID)
	}
	close(cl.send)
	metrics.ChatConnections.Dec()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range h.rooms {
		for cl := range room {
			h.dropLocked(cl)
		}
	}
}

// readPump only services control frames; chat messages are posted through the REST API.
func (h *Hub) readPump(cl *client) {
	defer func() {
		select {
		case h.unregister <- cl:
		case <-h.done:
		}
		_ = cl.conn.Close()
	}()

	cl.conn.SetReadLimit(maxInboundSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn().Err(err).Str("quote_id", cl.quoteID).Msg("unexpected websocket close")
			}
			return
		}
	}
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				h.log.Debug().Err(err).Str("quote_id", cl.quoteID).Msg("websocket write failed")
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
