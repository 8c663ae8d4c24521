package live

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/TowerIdle_Go/internal/event"
	"github.com/osse101/TowerIdle_Go/internal/metrics"
)

// Message is what a live client receives
type Message struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	PlayerID  string      `json:"player_id,omitempty"`
	Timestamp int64       `json:"timestamp"` // unix milliseconds
	Payload   interface{} `json:"payload"`
}

// Client represents one connected live stream for a single player
type Client struct {
	ID        string
	PlayerID  string
	Transport string
	Messages  chan Message
	// Filter is nil for all message types, otherwise only the listed ones
	Filter map[string]bool
}

func (c *Client) wants(msg Message) bool {
	if msg.PlayerID != "" && msg.PlayerID != c.PlayerID {
		return false
	}
	return c.Filter == nil || c.Filter[msg.Type]
}

// Hub manages live client connections and routes messages to them by player
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Message
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a new live Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Message, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts down the hub and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.Messages)
			metrics.LiveClients.WithLabelValues(client.Transport).Dec()
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

// run is the main broadcast loop
func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			metrics.LiveClients.WithLabelValues(client.Transport).Inc()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.Messages)
				delete(h.clients, clientID)
				metrics.LiveClients.WithLabelValues(client.Transport).Dec()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(msg) {
					continue
				}

				// Non-blocking send; a slow client misses messages rather than stalling the hub
				select {
				case client.Messages <- msg:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client for playerID. An empty types list subscribes to everything.
// After Stop the returned client's channel is already closed.
func (h *Hub) Register(playerID, transport string, types []string) *Client {
	client := &Client{
		ID:        uuid.New().String(),
		PlayerID:  playerID,
		Transport: transport,
		Messages:  make(chan Message, ClientMessageBuffer),
	}

	if len(types) > 0 {
		client.Filter = make(map[string]bool, len(types))
		for _, t := range types {
			client.Filter[t] = true
		}
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.Messages)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues a message for every interested client
func (h *Hub) Broadcast(msg Message) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}

	select {
	case h.broadcast <- msg:
	default:
		slog.Warn(LogMsgBroadcastDropped, "type", msg.Type, "player_id", msg.PlayerID)
	}
}

// Publish converts a bus event into a message for that event's player
func (h *Hub) Publish(evt event.Event) {
	h.Broadcast(Message{
		Type:      string(evt.Type),
		PlayerID:  evt.PlayerID,
		Timestamp: evt.Timestamp.UnixMilli(),
		Payload:   evt.Payload,
	})
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// PlayerClientCount returns the number of clients watching one player
func (h *Hub) PlayerClientCount(playerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, c := range h.clients {
		if c.PlayerID == playerID {
			n++
		}
	}
	return n
}

// FormatSSEMessage formats a message for transmission on an event stream
func FormatSSEMessage(msg Message) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	out := "id: " + msg.ID + "\n"
	out += "event: " + msg.Type + "\n"
	out += "data: " + string(data) + "\n\n"

	return []byte(out), nil
}
