package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/metrics"
)

const wsWriteWait = 5 * time.Second

// Dashboards run on projector kiosks and teachers' phones across the
// school network; any origin may subscribe.
var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Hub fans applied scoreboard payloads out to connected dashboards
type Hub struct {
	current func() any // latest payload for newly connected clients

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates a hub. current supplies the present board for clients
// that connect mid-day; it returns nil before the first load.
func NewHub(current func() any) *Hub {
	return &Hub{
		current: current,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeWS upgrades the connection, sends the current board, and
// registers the client for future broadcasts. The warm write happens
// before registration so a broadcast never writes concurrently with it.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	if h.current != nil {
		if payload := h.current(); payload != nil {
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(payload); err != nil {
				conn.Close()
				return
			}
		}
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	metrics.UpdateWebsocketClients(count)
	log.Info().Int("clients", count).Msg("Dashboard client connected")

	go h.readLoop(conn)
}

// readLoop drains client frames. Dashboards never send anything useful;
// reading just detects the close.
func (h *Hub) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.drop(conn)
			return
		}
	}
}

// Broadcast pushes one payload to every connected client. Clients that
// cannot take the write in time are dropped.
func (h *Hub) Broadcast(payload any) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(payload); err != nil {
			log.Warn().Err(err).Msg("Dropping slow dashboard client")
			h.drop(conn)
		}
	}

	metrics.RecordBroadcast()
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client, used during shutdown
func (h *Hub) Close() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.clients = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()

	for _, conn := range conns {
		conn.Close()
	}
	metrics.UpdateWebsocketClients(0)
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()

	conn.Close()
	metrics.UpdateWebsocketClients(count)
}
