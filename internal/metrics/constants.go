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

// Business metric names
const (
	MetricNameAcquisitions        = "head_acquisitions_total"
	MetricNameRemovals            = "head_removals_total"
	MetricNameCompensations       = "compensations_total"
	MetricNameCompensationFailed  = "compensation_failures_total"
	MetricNameCurrencySpent       = "currency_spent_total"
	MetricNameCurrencyRefunded    = "currency_refunded_total"
	MetricNameCacheHits           = "ownership_cache_hits_total"
	MetricNameCacheMisses         = "ownership_cache_misses_total"
	MetricNameCatalogReloads      = "catalog_reloads_total"
	MetricNameCatalogEntries      = "catalog_entries"
	MetricNameLockWaitDuration    = "player_lock_wait_seconds"
	MetricNameLockTimeouts        = "player_lock_timeouts_total"
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

// Business metric help text
const (
	HelpTextAcquisitions       = "Total number of head acquisition attempts by outcome"
	HelpTextRemovals           = "Total number of administrative head removals"
	HelpTextCompensations      = "Total number of compensating refunds issued"
	HelpTextCompensationFailed = "Total number of compensating refunds that could not be delivered"
	HelpTextCurrencySpent      = "Total currency debited for head purchases"
	HelpTextCurrencyRefunded   = "Total currency credited back by compensation"
	HelpTextCacheHits          = "Total ownership cache hits"
	HelpTextCacheMisses        = "Total ownership cache misses"
	HelpTextCatalogReloads     = "Total number of catalog reloads by outcome"
	HelpTextCatalogEntries     = "Number of entries in the active catalog"
	HelpTextLockWaitDuration   = "Time spent waiting for the per-player lock in seconds"
	HelpTextLockTimeouts       = "Total number of per-player lock acquisition timeouts"
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
	LabelOutcome  = "outcome"
	LabelCategory = "category"
	LabelMode     = "mode"
)

// Acquisition outcome label values
const (
	OutcomeGranted           = "granted"
	OutcomeAlreadyOwned      = "already_owned"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeUnknownEntry      = "unknown_entry"
	OutcomeError             = "error"
)

// Catalog reload outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, ranging from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LockWaitBuckets covers the expected lock wait range, from uncontended
// microseconds up past the acquisition timeout.
var LockWaitBuckets = []float64{.0001, .001, .01, .05, .1, .5, 1, 5, 10}
