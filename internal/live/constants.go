package live

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientMessageBuffer is the buffer size for each client's message channel
	ClientMessageBuffer = 64

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 16
)

// Connection settings
const (
	// KeepaliveInterval is how often SSE streams send a keepalive
	KeepaliveInterval = 30 * time.Second

	// WriteWait is the time allowed to write a websocket frame
	WriteWait = 10 * time.Second

	// PongWait is the time allowed to read the next pong from the peer
	PongWait = 60 * time.Second

	// PingPeriod must be less than PongWait
	PingPeriod = (PongWait * 9) / 10

	// MaxInboundMessageSize bounds what a websocket client may send; the feed is one-way
	MaxInboundMessageSize = 512
)

// Transports
const (
	TransportSSE       = "sse"
	TransportWebSocket = "websocket"
)

// Message types that do not come from the event bus
const (
	MessageTypeConnected = "connected"
	MessageTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "Live client connected"
	LogMsgClientDisconnected = "Live client disconnected"
	LogMsgWriteError         = "Failed to write live message"
	LogMsgUpgradeFailed      = "WebSocket upgrade failed"
	LogMsgBroadcastDropped   = "Live broadcast buffer full, message dropped"
	LogMsgSubscriberReady    = "Live subscriber registered for event types"
	LogMsgUnexpectedClose    = "WebSocket closed unexpectedly"
)

// ErrMsgStreamingUnsupported is returned when the response writer cannot flush
const ErrMsgStreamingUnsupported = "streaming not supported"
