package live

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/logger"
)

// ConnectedPayload is sent as the first message of every stream
type ConnectedPayload struct {
	ClientID string      `json:"client_id"`
	Filters  []string    `json:"filters,omitempty"`
	Snapshot interface{} `json:"snapshot,omitempty"`
}

// parseTypes reads the optional ?types=a,b filter
func parseTypes(r *http.Request) []string {
	param := r.URL.Query().Get("types")
	if param == "" {
		return nil
	}
	var types []string
	for _, t := range strings.Split(param, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// ServeSSE streams playerID's messages as server-sent events until the client goes away.
// snapshot is delivered in the initial connected message.
func (h *Hub) ServeSSE(w http.ResponseWriter, r *http.Request, playerID string, snapshot interface{}) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	ctx := r.Context()
	log := logger.FromContext(ctx)
	types := parseTypes(r)

	client := h.Register(playerID, TransportSSE, types)
	log.Info(LogMsgClientConnected,
		"client_id", client.ID,
		"transport", TransportSSE,
		"filters", types)

	defer func() {
		h.Unregister(client.ID)
		log.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", TransportSSE)
	}()

	write := func(msg Message) bool {
		out, err := FormatSSEMessage(msg)
		if err != nil {
			log.Error(LogMsgWriteError, "error", err)
			return true
		}
		if _, err := w.Write(out); err != nil {
			log.Warn(LogMsgWriteError, "error", err)
			return false
		}
		flusher.Flush()
		return true
	}

	connected := Message{
		ID:        client.ID,
		Type:      MessageTypeConnected,
		PlayerID:  playerID,
		Timestamp: time.Now().UnixMilli(),
		Payload:   ConnectedPayload{ClientID: client.ID, Filters: types, Snapshot: snapshot},
	}
	if !write(connected) {
		return
	}

	ticker := time.NewTicker(KeepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-client.Messages:
			if !ok {
				// Hub shutting down
				return
			}
			if !write(msg) {
				return
			}

		case <-ticker.C:
			if !write(Message{Type: MessageTypeKeepalive, Timestamp: time.Now().UnixMilli()}) {
				return
			}
		}
	}
}
