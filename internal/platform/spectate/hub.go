package spectate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Snapshots queued per client before it is dropped as too slow.
	sendBuffer = 64

	// Snapshots queued for the hub loop before Publish starts dropping them.
	broadcastBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The feed is read-only, so any page may watch.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is one snapshot as sent to spectators.
type Message struct {
	RunID    string `json:"run_id"`
	Snapshot any    `json:"snapshot"`
}

type envelope struct {
	runID string
	data  []byte
}

// Client is one connected spectator.
type Client struct {
	id    string
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	runID string
}

// Hub fans published snapshots out to connected spectators.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	count      atomic.Int64
	logger     *log.Logger
}

// NewHub creates a hub. A nil logger discards log output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan envelope, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run is the hub's event loop. It returns when ctx is done, closing every
// client connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.unregisterClient(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.count.Store(int64(len(h.clients)))
			h.logger.Info("spectator joined", "client", client.id, "run", client.runID, "total", len(h.clients))

		case client := <-h.unregister:
			h.unregisterClient(client)

		case env := <-h.broadcast:
			for client := range h.clients {
				if client.runID != "" && client.runID != env.runID {
					continue
				}
				select {
				case client.send <- env.data:
				default:
					h.unregisterClient(client)
				}
			}
		}
	}
}

func (h *Hub) unregisterClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.count.Store(int64(len(h.clients)))
	h.logger.Info("spectator left", "client", client.id, "remaining", len(h.clients))
}

// ServeWS upgrades the request and attaches a new spectator. The optional
// "run" query parameter restricts the feed to one run.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	client := &Client{
		id:    uuid.NewString(),
		hub:   h,
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		runID: r.URL.Query().Get("run"),
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// Publish queues a snapshot of run for every interested spectator. It never
// blocks; when the hub is backed up the snapshot is dropped.
func (h *Hub) Publish(runID string, v any) {
	data, err := json.Marshal(Message{RunID: runID, Snapshot: v})
	if err != nil {
		h.logger.Error("encode snapshot", "run", runID, "err", err)
		return
	}
	select {
	case h.broadcast <- envelope{runID: runID, data: data}:
	default:
		h.logger.Debug("snapshot dropped", "run", runID)
	}
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// readPump discards anything the spectator sends and unregisters it once the
// connection fails.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket read", "client", c.id, "err", err)
			}
			return
		}
	}
}

// writePump sends queued snapshots, one per websocket message, and pings the
// peer while idle.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
