package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelRoute, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelRoute},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Engine Metrics
var (
	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	ProductionCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProductionCycles,
			Help: HelpTextProductionCycles,
		},
		[]string{LabelProducer},
	)

	ResourcesProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesProduced,
			Help: HelpTextResourcesProduced,
		},
		[]string{LabelResource},
	)

	DamageDealt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDamageDealt,
			Help: HelpTextDamageDealt,
		},
	)

	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelKind, LabelItem, LabelResult},
	)

	RankChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRankChanges,
			Help: HelpTextRankChanges,
		},
		[]string{LabelRank},
	)

	EventsEnded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEventsEnded,
			Help: HelpTextEventsEnded,
		},
	)
)

// Session Metrics
var (
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	SessionResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionResets,
			Help: HelpTextSessionResets,
		},
	)

	OfflineSecondsCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOfflineSeconds,
			Help: HelpTextOfflineSeconds,
		},
	)

	OfflineCapped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOfflineCapped,
			Help: HelpTextOfflineCapped,
		},
	)

	Checkpoints = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCheckpoints,
			Help: HelpTextCheckpoints,
		},
		[]string{LabelResult},
	)

	CheckpointDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCheckpointDuration,
			Help:    HelpTextCheckpointDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	LiveClients = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLiveClients,
			Help: HelpTextLiveClients,
		},
		[]string{LabelTransport},
	)
)
