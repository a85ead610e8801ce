package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/metrics"
)

// EventsHandler pushes engine events to every connected WebSocket
// client.
type EventsHandler struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewEventsHandler creates a new EventsHandler with no clients.
func NewEventsHandler() *EventsHandler {
	return &EventsHandler{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	metrics.SetEventClients(len(h.clients))
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		metrics.SetEventClients(len(h.clients))
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends one event to all connected clients. The lock also
// serializes writes, which different engine goroutines may trigger.
func (h *EventsHandler) Broadcast(e app.Event) {
	msg, err := json.Marshal(e)
	if err != nil {
		return
	}

	h.mu.Lock()
	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
	h.mu.Unlock()
}
