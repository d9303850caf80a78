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
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
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

// Business Metrics
var (
	DaysCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysCompleted,
			Help: HelpTextDaysCompleted,
		},
	)

	DaysEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDaysEnded,
			Help: HelpTextDaysEnded,
		},
		[]string{LabelClamped},
	)

	CompletionRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCompletionRejected,
			Help: HelpTextCompletionRejected,
		},
		[]string{LabelReason},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)

	TokensEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokensEarned,
			Help: HelpTextTokensEarned,
		},
		[]string{LabelTokenType},
	)

	TokensSpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokensSpent,
			Help: HelpTextTokensSpent,
		},
		[]string{LabelTokenType},
	)

	StreakOnCompletion = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameStreakOnCompletion,
			Help:    HelpTextStreakOnCompletion,
			Buckets: StreakBuckets,
		},
	)
)
