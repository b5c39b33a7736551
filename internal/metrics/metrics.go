// Package metrics defines the Prometheus collectors for HTTP traffic and
// game activity.
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

// Session Metrics
var (
	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEvicted,
			Help: HelpTextSessionsEvicted,
		},
	)
)

// Game Metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ScrapDeposits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScrapDeposits,
			Help: HelpTextScrapDeposits,
		},
		[]string{LabelItem},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)

	HealsPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHealsPerformed,
			Help: HelpTextHealsPerformed,
		},
	)

	EncountersStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEncountersStarted,
			Help: HelpTextEncountersStarted,
		},
	)

	EnemiesDefeated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEnemiesDefeated,
			Help: HelpTextEnemiesDefeated,
		},
	)

	EncounterOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncounterOutcomes,
			Help: HelpTextEncounterOutcomes,
		},
		[]string{LabelOutcome},
	)

	LocationsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLocationsUnlocked,
			Help: HelpTextLocationsUnlocked,
		},
		[]string{LabelLocation},
	)

	CreditsEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreditsEarned,
			Help: HelpTextCreditsEarned,
		},
		[]string{LabelSource},
	)

	CreditsSpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreditsSpent,
			Help: HelpTextCreditsSpent,
		},
		[]string{LabelSource},
	)
)

// RegisterActiveSessions exposes a gauge read from count at scrape time.
// Call once per process.
func RegisterActiveSessions(count func() int) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
		func() float64 { return float64(count()) },
	)
}
