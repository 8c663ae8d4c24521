package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Engine metric names
const (
	MetricNameTickDuration      = "tower_tick_duration_seconds"
	MetricNameProductionCycles  = "tower_production_cycles_total"
	MetricNameResourcesProduced = "tower_resources_produced_total"
	MetricNameDamageDealt       = "tower_damage_dealt_total"
	MetricNamePurchases         = "tower_purchases_total"
	MetricNameRankChanges       = "tower_rank_changes_total"
	MetricNameEventsEnded       = "tower_events_ended_total"
)

// Session metric names
const (
	MetricNameActiveSessions     = "tower_active_sessions"
	MetricNameSessionResets      = "tower_session_resets_total"
	MetricNameOfflineSeconds     = "tower_offline_seconds_credited_total"
	MetricNameOfflineCapped      = "tower_offline_capped_total"
	MetricNameCheckpoints        = "tower_checkpoints_total"
	MetricNameCheckpointDuration = "tower_checkpoint_duration_seconds"
	MetricNameLiveClients        = "tower_live_clients"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Engine metric help text
const (
	HelpTextTickDuration      = "Wall time spent in a single session tick"
	HelpTextProductionCycles  = "Total number of production cycles completed"
	HelpTextResourcesProduced = "Total quantity of each resource produced"
	HelpTextDamageDealt       = "Total damage dealt across all sessions"
	HelpTextPurchases         = "Total number of purchase attempts"
	HelpTextRankChanges       = "Total number of rank changes by new rank"
	HelpTextEventsEnded       = "Total number of sessions whose event window closed"
)

// Session metric help text
const (
	HelpTextActiveSessions     = "Current number of running sessions"
	HelpTextSessionResets      = "Total number of session resets"
	HelpTextOfflineSeconds     = "Total offline seconds credited on load"
	HelpTextOfflineCapped      = "Total number of offline gaps truncated by the cap"
	HelpTextCheckpoints        = "Total number of checkpoint saves by result"
	HelpTextCheckpointDuration = "Checkpoint save latency in seconds"
	HelpTextLiveClients        = "Current number of connected live clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelRoute     = "route"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelItem      = "item"
	LabelKind      = "kind"
	LabelResult    = "result"
	LabelProducer  = "producer"
	LabelResource  = "resource"
	LabelRank      = "rank"
	LabelTransport = "transport"
)

// Label values
const (
	ResultSuccess   = "success"
	ResultRejected  = "rejected"
	ResultFailed    = "failed"
	ResultDiscarded = "discarded"

	TransportSSE       = "sse"
	TransportWebSocket = "websocket"

	// RouteUnmatched labels requests that matched no route
	RouteUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets covers 10µs to 50ms; a tick normally touches only a handful of producers.
var TickLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
