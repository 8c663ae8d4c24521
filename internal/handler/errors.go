package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlayerID       = "Invalid player ID"
	ErrMsgInvalidItemID         = "Invalid item ID"

	ErrMsgCreatePlayerFailed  = "Failed to create player"
	ErrMsgLoadPlayerFailed    = "Failed to load player"
	ErrMsgUpgradeFailed       = "Failed to upgrade producer"
	ErrMsgPurchaseBoostFailed = "Failed to purchase boost"
	ErrMsgResetFailed         = "Failed to reset progress"
	ErrMsgNoOfflineReport     = "No offline progress was credited this session"
)

// User-facing messages for domain errors
const (
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgServerErrorError     = "Server error occurred. Please try again."
	ErrMsgInsufficientFundsErr = "Not enough resources"
	ErrMsgMaxLevelError        = "Already at max level"
	ErrMsgUnknownProducerError = "Producer not found"
	ErrMsgUnknownBoostError    = "Boost not found"
	ErrMsgSessionStoppedError  = "Session is shutting down. Please try again."
	ErrMsgCheckpointNotFound   = "No saved progress"
)

// Log messages
const (
	LogMsgRequestFailed      = "Request failed"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgPlayerCreated      = "Player created"
	LogMsgProducerUpgraded   = "Producer upgraded"
	LogMsgBoostPurchased     = "Boost purchased"
	LogMsgProgressReset      = "Progress reset"
	LogMsgStreamOpened       = "Live stream opened"
	LogMsgDecodeFailedFormat = "Failed to decode %s request"
)
