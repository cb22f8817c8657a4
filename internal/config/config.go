// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Avito         AvitoConfig         `yaml:"avito"`
	Redis         RedisConfig         `yaml:"redis"`
	Webhook       WebhookConfig       `yaml:"webhook"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Tracing       TracingConfig       `yaml:"tracing"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AvitoConfig defines the API credentials and client behaviour.
type AvitoConfig struct {
	ClientID         string          `yaml:"client_id"`
	ClientSecret     string          `yaml:"client_secret"`
	AccessToken      string          `yaml:"access_token"`
	BaseURL          string          `yaml:"base_url"`
	Timeout          time.Duration   `yaml:"timeout"`
	ProactiveRefresh *bool           `yaml:"proactive_refresh"`
	RateLimit        RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines Avito API rate limiting settings. A zero
// PerSecond disables the limiter.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// RedisConfig enables the shared self-info cache.
type RedisConfig struct {
	Addr      string        `yaml:"addr"`
	Password  string        `yaml:"password"`
	DB        int           `yaml:"db"`
	KeyPrefix string        `yaml:"key_prefix"`
	TTL       time.Duration `yaml:"ttl"`
}

// Enabled reports whether a Redis address is configured.
func (r *RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// WebhookConfig defines the inbound messenger webhook.
type WebhookConfig struct {
	// PublicURL is the address Avito delivers updates to. When set, serve
	// registers it on startup and keeps it registered.
	PublicURL      string `yaml:"public_url"`
	UnsubscribeAll bool   `yaml:"unsubscribe_all"`
	AutoReply      string `yaml:"auto_reply"`
	MarkRead       bool   `yaml:"mark_read"`

	// ReactionTimeout bounds the reaction to one update before it is
	// acknowledged.
	ReactionTimeout time.Duration `yaml:"reaction_timeout"`
}

// ScheduleConfig defines cron intervals for background jobs. A zero interval
// disables the job; omitted intervals take their defaults.
type ScheduleConfig struct {
	WebhookCheckInterval time.Duration `yaml:"webhook_check_interval"`
	BalanceInterval      time.Duration `yaml:"balance_interval"`
	// UnreadDigestInterval enables the unread chat digest when positive.
	UnreadDigestInterval time.Duration `yaml:"unread_digest_interval"`
}

// NotificationsConfig defines where incoming messages are forwarded.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TracingConfig enables OTLP trace export. With Metrics set, the client's
// OpenTelemetry instruments are pushed to the same collector. SampleRatio
// defaults to 1 when omitted; an explicit 0 samples nothing.
type TracingConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"`
	Insecure       bool          `yaml:"insecure"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	ServiceName    string        `yaml:"service_name"`
	Metrics        bool          `yaml:"metrics"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := seeded()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// seeded returns a Config holding the defaults of fields whose zero value
// means something. Decoding over it keeps an explicit 0 from the file.
func seeded() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			WebhookCheckInterval: 15 * time.Minute,
			BalanceInterval:      time.Hour,
		},
		Tracing: TracingConfig{
			SampleRatio: 1,
		},
	}
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyAvitoDefaults(&cfg.Avito)
	applyRedisDefaults(&cfg.Redis)
	applyWebhookDefaults(&cfg.Webhook)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyAvitoDefaults(a *AvitoConfig) {
	if a.BaseURL == "" {
		a.BaseURL = "https://api.avito.ru"
	}
	if a.Timeout == 0 {
		a.Timeout = 30 * time.Second
	}
	if a.ProactiveRefresh == nil {
		on := true
		a.ProactiveRefresh = &on
	}
	applyRateLimitDefaults(&a.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		return
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 100000
	}
}

func applyRedisDefaults(r *RedisConfig) {
	if r.KeyPrefix == "" {
		r.KeyPrefix = "avito:self"
	}
	if r.TTL == 0 {
		r.TTL = 24 * time.Hour
	}
}

func applyWebhookDefaults(w *WebhookConfig) {
	if w.ReactionTimeout <= 0 {
		w.ReactionTimeout = 5 * time.Second
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "avito-client"
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = time.Minute
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Avito.AccessToken == "" {
		if cfg.Avito.ClientID == "" {
			errs = append(errs, errors.New("avito.client_id is required without avito.access_token"))
		}
		if cfg.Avito.ClientSecret == "" {
			errs = append(errs, errors.New("avito.client_secret is required without avito.access_token"))
		}
	}

	if u, err := url.Parse(cfg.Avito.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("avito.base_url must be an absolute URL (got %q)", cfg.Avito.BaseURL))
	}

	if cfg.Avito.RateLimit.PerSecond < 0 {
		errs = append(errs, errors.New("avito.rate_limit.per_second must not be negative"))
	}

	intervals := []struct {
		key string
		d   time.Duration
	}{
		{"schedule.webhook_check_interval", cfg.Schedule.WebhookCheckInterval},
		{"schedule.balance_interval", cfg.Schedule.BalanceInterval},
		{"schedule.unread_digest_interval", cfg.Schedule.UnreadDigestInterval},
	}
	for _, iv := range intervals {
		if iv.d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative (got %s)", iv.key, iv.d))
		}
	}

	if cfg.Webhook.PublicURL != "" {
		if u, err := url.Parse(cfg.Webhook.PublicURL); err != nil || u.Scheme != "https" {
			errs = append(errs, fmt.Errorf("webhook.public_url must be an https URL (got %q)", cfg.Webhook.PublicURL))
		}
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, errors.New("notifications.discord.webhook_url is required when discord is enabled"))
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, errors.New("tracing.endpoint is required when tracing is enabled"))
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be within [0, 1] (got %v)", cfg.Tracing.SampleRatio))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
