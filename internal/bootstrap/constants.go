package bootstrap

import "time"

// =============================================================================
// Runtime Configuration
// =============================================================================

const (
	// ShutdownTimeout bounds graceful shutdown, including the final checkpoint flush
	ShutdownTimeout = 15 * time.Second

	// PoolWorkers is the number of workers persisting checkpoints
	PoolWorkers = 4

	// PoolQueueSize is the checkpoint job backlog before TryEnqueue drops work
	PoolQueueSize = 256
)

// =============================================================================
// Logger Messages
// =============================================================================

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting tower idle server"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// =============================================================================
// Store Messages
// =============================================================================

const (
	LogMsgStoreReady          = "Checkpoint store ready"
	LogMsgMemoryStoreVolatile = "Using in-memory checkpoint store, progress is lost on restart"

	ErrMsgFailedOpenSQLite   = "failed to open sqlite store"
	ErrMsgFailedOpenPostgres = "failed to open postgres store"
	ErrMsgFailedMigrate      = "failed to migrate checkpoint store"
	ErrMsgUnknownDriver      = "unknown store driver"
)

// =============================================================================
// Event Config Messages
// =============================================================================

const (
	LogMsgEventConfigReady   = "Event configuration ready"
	ErrMsgFailedLoadEventCfg = "failed to load event configuration"
)

// =============================================================================
// Event System Messages
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgFlushingSessions     = "Flushing player sessions..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSessionFlushFailed   = "Session flush failed"
	LogMsgStoreCloseFailed     = "Checkpoint store close failed"
)
