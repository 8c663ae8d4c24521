package session

import "time"

// Scheduled job names
const (
	JobTick       = "tick"
	JobRefresh    = "refresh"
	JobCheckpoint = "checkpoint"
	JobEventEnd   = "event-end"
)

// Registry defaults
const (
	DefaultCacheSize = 1024
	DefaultIdleTTL   = 30 * time.Minute

	// StopTimeout bounds the final checkpoint of an evicted session
	StopTimeout = 5 * time.Second
)

// Session stop/reset reasons
const (
	ReasonStopped = "stopped"
	ReasonEvicted = "evicted"
	ReasonReset   = "reset"
)

// Log messages
const (
	LogMsgSessionStarted     = "Session started"
	LogMsgSessionStopped     = "Session stopped"
	LogMsgSessionReset       = "Session reset"
	LogMsgCheckpointCorrupt  = "Discarding unreadable checkpoint, starting fresh"
	LogMsgCheckpointSaved    = "Checkpoint saved"
	LogMsgCheckpointFailed   = "Checkpoint save failed"
	LogMsgOfflineReconciled  = "Offline progress credited"
	LogMsgEventEnded         = "Event window closed"
	LogMsgPublishFailed      = "Event publish failed"
	LogMsgSessionEvicted     = "Session evicted from registry"
	LogMsgEvictionStopFailed = "Final checkpoint of evicted session failed"
	LogMsgRegistryClosed     = "Session registry closed"
)

// Error messages
const (
	ErrMsgLoadCheckpointFailed   = "failed to load checkpoint"
	ErrMsgSaveCheckpointFailed   = "failed to save checkpoint"
	ErrMsgDeleteCheckpointFailed = "failed to delete checkpoint"
	ErrMsgEncodeCheckpointFailed = "failed to encode checkpoint"
	ErrMsgStartSessionFailed     = "failed to start session"
)
