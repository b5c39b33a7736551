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

// Session metric names
const (
	MetricNameSessionsCreated = "sessions_created_total"
	MetricNameSessionsEvicted = "sessions_evicted_total"
	MetricNameActiveSessions  = "sessions_active"
)

// Game metric names
const (
	MetricNameItemsBought       = "items_bought_total"
	MetricNameScrapDeposits     = "scrap_deposits_total"
	MetricNameSearchesPerformed = "searches_performed_total"
	MetricNameHealsPerformed    = "heals_performed_total"
	MetricNameEncountersStarted = "encounters_started_total"
	MetricNameEnemiesDefeated   = "enemies_defeated_total"
	MetricNameEncounterOutcomes = "encounter_outcomes_total"
	MetricNameLocationsUnlocked = "locations_unlocked_total"
	MetricNameCreditsEarned     = "credits_earned_total"
	MetricNameCreditsSpent      = "credits_spent_total"
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

// Session metric help text
const (
	HelpTextSessionsCreated = "Total number of game sessions started"
	HelpTextSessionsEvicted = "Total number of sessions evicted from the session cache"
	HelpTextActiveSessions  = "Current number of live sessions"
)

// Game metric help text
const (
	HelpTextItemsBought       = "Total number of items bought in the shop"
	HelpTextScrapDeposits     = "Total number of scrap deposits"
	HelpTextSearchesPerformed = "Total number of searches performed"
	HelpTextHealsPerformed    = "Total number of heals"
	HelpTextEncountersStarted = "Total number of encounters started"
	HelpTextEnemiesDefeated   = "Total number of enemies defeated"
	HelpTextEncounterOutcomes = "Total number of encounters ended, by outcome"
	HelpTextLocationsUnlocked = "Total number of location unlocks"
	HelpTextCreditsEarned     = "Total credits granted to players, by source"
	HelpTextCreditsSpent      = "Total credits spent by players, by source"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelItem     = "item"
	LabelOutcome  = "outcome"
	LabelLocation = "location"
	LabelSource   = "source"
)

// Label values
const (
	OutcomeWon          = "won"
	OutcomeDefeated     = "defeated"
	UnmatchedRouteLabel = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnreadable = "Event payload could not be decoded"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
