package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/tracker"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// TrackHandler ingests tracker packets over a WebSocket and answers
// each with the per-frame updates it produced.
type TrackHandler struct {
	app *app.App
}

// NewTrackHandler creates a new TrackHandler feeding the given engine.
func NewTrackHandler(a *app.App) *TrackHandler {
	return &TrackHandler{app: a}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *TrackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		packet, err := tracker.ParsePacket(data)
		if err != nil {
			msg, _ := json.Marshal(map[string]string{"error": "invalid packet"})
			conn.WriteMessage(websocket.TextMessage, msg)
			continue
		}

		result := h.app.ProcessPacket(packet)
		if result == nil {
			continue
		}
		msg, err := json.Marshal(result)
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
