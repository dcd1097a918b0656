package main

import "errors"

// KnownMetrics is the set of metric names exported by medwatch plus the
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"medwatch_http_request_duration_seconds": true,
	"medwatch_http_requests_total":           true,

	// Health metrics.
	"medwatch_healthz_up": true,
	"medwatch_readyz_up":  true,

	// Cycle metrics.
	"medwatch_cycle_duration_seconds":             true,
	"medwatch_search_evaluation_duration_seconds": true,
	"medwatch_cycle_failures_total":               true,
	"medwatch_scheduler_next_cycle_timestamp":     true,
	"medwatch_active_searches":                    true,
	"medwatch_listings_fetched_total":             true,

	// Pipeline metrics.
	"medwatch_normalization_ambiguities_total": true,
	"medwatch_dedup_outcomes_total":            true,
	"medwatch_decisions_total":                 true,

	// Source metrics.
	"medwatch_source_requests_total":         true,
	"medwatch_source_daily_usage":            true,
	"medwatch_source_daily_limit_hits_total": true,

	// Dispatch metrics.
	"medwatch_notifications_sent_total":    true,
	"medwatch_notification_failures_total": true,
	"medwatch_bookings_total":              true,
	"medwatch_searches_deactivated_total":  true,

	// Recording rules.
	"medwatch:http_requests:rate5m":    true,
	"medwatch:http_errors:rate5m":      true,
	"medwatch:listings_fetched:rate5m": true,
	"medwatch:cycle_failures:rate5m":   true,
	"medwatch:decisions:rate5m":        true,
	"medwatch:source_requests:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
