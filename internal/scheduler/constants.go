package scheduler

// Log messages
const (
	LogMsgJobSkippedQueueFull = "Scheduled job skipped, worker queue full"
)
