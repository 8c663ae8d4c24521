package live

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/TowerIdle_Go/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWebSocket upgrades the request and pushes playerID's messages as JSON text frames.
// Inbound frames are read and discarded so pongs and close frames are processed.
func (h *Hub) ServeWebSocket(w http.ResponseWriter, r *http.Request, playerID string, snapshot interface{}) {
	log := logger.FromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error
		log.Warn(LogMsgUpgradeFailed, "error", err)
		return
	}
	defer conn.Close()

	types := parseTypes(r)
	client := h.Register(playerID, TransportWebSocket, types)
	log.Info(LogMsgClientConnected,
		"client_id", client.ID,
		"transport", TransportWebSocket,
		"filters", types)

	defer func() {
		h.Unregister(client.ID)
		log.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", TransportWebSocket)
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go readPump(conn, cancel, log)

	write := func(msg Message) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(WriteWait))
		if err := conn.WriteJSON(msg); err != nil {
			log.Warn(LogMsgWriteError, "error", err)
			return false
		}
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

	ticker := time.NewTicker(PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-client.Messages:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(WriteWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if !write(msg) {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func readPump(conn *websocket.Conn, done context.CancelFunc, log *slog.Logger) {
	defer done()

	conn.SetReadLimit(MaxInboundMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn(LogMsgUnexpectedClose, "error", err)
			}
			return
		}
	}
}
