package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const reloadWriteWait = 2 * time.Second

// reloadUpgrader is only mounted in watch mode on a local dev server, so it
// skips the origin check.
var reloadUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub tracks the browsers waiting for a reload signal.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Clients returns the number of connected browsers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	log.Printf("Live-reload client connected (%d open).", n)
}

// drop forgets conn and closes it. It reports false when conn was already gone.
func (h *Hub) drop(conn *websocket.Conn) bool {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		conn.Close()
	}
	return ok
}

// notify sends msg to every client. Clients that cannot take it within
// reloadWriteWait are dropped. It returns the number reached.
func (h *Hub) notify(msg string) int {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	sent := 0
	for _, c := range conns {
		_ = c.SetWriteDeadline(time.Now().Add(reloadWriteWait))
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			log.Printf("Dropping live-reload client: %v", err)
			h.drop(c)
			continue
		}
		sent++
	}
	return sent
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	conns := h.clients
	h.clients = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()
	for c := range conns {
		c.Close()
	}
}

// ServeHTTP upgrades the request and holds the client until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := reloadUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	h.add(conn)
	defer func() {
		if h.drop(conn) {
			log.Println("Live-reload client disconnected.")
		}
	}()

	// The browser never sends; reading only surfaces the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
