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
	QuestsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
	)

	QuestsUncompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsUncompleted,
			Help: HelpTextQuestsUncompleted,
		},
	)

	DailySetsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailySetsGenerated,
			Help: HelpTextDailySetsGenerated,
		},
	)

	DailySetsRerolled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailySetsRerolled,
			Help: HelpTextDailySetsRerolled,
		},
	)

	QuestsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsDeleted,
			Help: HelpTextQuestsDeleted,
		},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)

	CurrentStreak = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCurrentStreak,
			Help:    HelpTextCurrentStreak,
			Buckets: StreakBuckets,
		},
	)

	SessionsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsPurged,
			Help: HelpTextSessionsPurged,
		},
	)

	SSESubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSESubscribers,
			Help: HelpTextSSESubscribers,
		},
	)
)
