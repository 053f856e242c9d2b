package notify

import (
	"encoding/json"
	"log/slog"

	"github.com/knixan/b-movies/websocket"
)

// Notifier delivers real-time store events to connected admin dashboards.
type Notifier interface {
	Broadcast(event interface{})
}

// WSNotifier implements Notifier using a WebSocket Hub.
type WSNotifier struct {
	Hub *websocket.Hub
}

// Broadcast serializes the event as JSON and fans it out to every
// connected client.
func (n *WSNotifier) Broadcast(event interface{}) {
	if n == nil || n.Hub == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal notification", "err", err)
		return
	}
	n.Hub.Broadcast(payload)
}
