package main

import "errors"

// KnownMetrics is the set of metric names exported by avito-client plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"avito_http_request_duration_seconds": true,
	"avito_http_requests_total":           true,
	"avito_http_panics_total":             true,

	// Health metrics.
	"avito_healthz_up": true,
	"avito_readyz_up":  true,

	// Avito API metrics.
	"avito_api_calls_total":              true,
	"avito_api_request_duration_seconds": true,
	"avito_token_exchanges_total":        true,
	"avito_token_retries_total":          true,
	"avito_daily_usage":                  true,
	"avito_daily_limit_hits_total":       true,

	// Messenger metrics.
	"avito_webhook_updates_total":        true,
	"avito_webhook_reply_failures_total": true,
	"avito_webhook_registered":           true,

	// Account and scheduler metrics.
	"avito_account_balance_rubles": true,
	"avito_job_runs_total":         true,

	// Notification metrics.
	"avito_notification_failures_total":   true,
	"avito_notification_duration_seconds": true,

	// Recording rules.
	"avito:http_requests:rate5m":         true,
	"avito:http_errors:rate5m":           true,
	"avito:api_calls:rate5m":             true,
	"avito:api_errors:rate5m":            true,
	"avito:webhook_updates:rate5m":       true,
	"avito:notification_duration:p95_5m": true,

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
