package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
avito:
  client_id: my-id
  client_secret: my-secret
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "my-id", cfg.Avito.ClientID)
				assert.Equal(t, "my-secret", cfg.Avito.ClientSecret)
			},
		},
		{
			name: "access token alone is enough",
			yaml: `
avito:
  access_token: tok
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "tok", cfg.Avito.AccessToken)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
avito:
  client_id: my-id
  client_secret: my-secret
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, "https://api.avito.ru", cfg.Avito.BaseURL)
				assert.Equal(t, 30*time.Second, cfg.Avito.Timeout)
				require.NotNil(t, cfg.Avito.ProactiveRefresh)
				assert.True(t, *cfg.Avito.ProactiveRefresh)
				assert.Zero(t, cfg.Avito.RateLimit.PerSecond, "limiter is off unless configured")
				assert.Zero(t, cfg.Avito.RateLimit.Burst)
				assert.False(t, cfg.Redis.Enabled())
				assert.Equal(t, "avito:self", cfg.Redis.KeyPrefix)
				assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
				assert.Equal(t, 15*time.Minute, cfg.Schedule.WebhookCheckInterval)
				assert.Equal(t, time.Hour, cfg.Schedule.BalanceInterval)
				assert.Zero(t, cfg.Schedule.UnreadDigestInterval)
				assert.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0)
				assert.Equal(t, "avito-client", cfg.Tracing.ServiceName)
				assert.Equal(t, time.Minute, cfg.Tracing.MetricInterval)
				assert.Equal(t, 5*time.Second, cfg.Webhook.ReactionTimeout)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "rate limit defaults fill burst and daily limit",
			yaml: `
avito:
  client_id: my-id
  client_secret: my-secret
  rate_limit:
    per_second: 2
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.InDelta(t, 2.0, cfg.Avito.RateLimit.PerSecond, 0)
				assert.Equal(t, 5, cfg.Avito.RateLimit.Burst)
				assert.Equal(t, int64(100000), cfg.Avito.RateLimit.DailyLimit)
			},
		},
		{
			name: "env var substitution",
			yaml: `
avito:
  client_id: my-id
  client_secret: "${TEST_AVITO_SECRET}"
`,
			envVars: map[string]string{
				"TEST_AVITO_SECRET": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Avito.ClientSecret)
			},
		},
		{
			name:    "missing credentials",
			yaml:    `server: {port: 9000}`,
			wantErr: "avito.client_id is required without avito.access_token",
		},
		{
			name: "missing client secret",
			yaml: `
avito:
  client_id: my-id
`,
			wantErr: "avito.client_secret is required without avito.access_token",
		},
		{
			name: "relative base url",
			yaml: `
avito:
  access_token: tok
  base_url: api.avito.ru
`,
			wantErr: `avito.base_url must be an absolute URL (got "api.avito.ru")`,
		},
		{
			name: "plain http webhook url",
			yaml: `
avito:
  access_token: tok
webhook:
  public_url: http://bot.example.com/api/v1/webhook/abc
`,
			wantErr: "webhook.public_url must be an https URL",
		},
		{
			name: "discord enabled without url",
			yaml: `
avito:
  access_token: tok
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required when discord is enabled",
		},
		{
			name: "tracing enabled without endpoint",
			yaml: `
avito:
  access_token: tok
tracing:
  enabled: true
`,
			wantErr: "tracing.endpoint is required when tracing is enabled",
		},
		{
			name: "sample ratio out of range",
			yaml: `
avito:
  access_token: tok
tracing:
  sample_ratio: 1.5
`,
			wantErr: "tracing.sample_ratio must be within [0, 1]",
		},
		{
			name: "unknown log format",
			yaml: `
avito:
  access_token: tok
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json (got "xml")`,
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
avito:
  client_id: my-id
  client_secret: my-secret
  base_url: http://localhost:8089
  timeout: 5s
  proactive_refresh: false
  rate_limit:
    per_second: 10
    burst: 20
    daily_limit: 5000
redis:
  addr: localhost:6379
  db: 2
  key_prefix: bot:self
  ttl: 1h
webhook:
  public_url: https://bot.example.com/api/v1/webhook/my-id
  unsubscribe_all: true
  auto_reply: "Thanks, we will answer soon"
  mark_read: true
schedule:
  webhook_check_interval: 5m
  balance_interval: 30m
  unread_digest_interval: 10m
notifications:
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
tracing:
  enabled: true
  endpoint: otel-collector:4317
  insecure: true
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "http://localhost:8089", cfg.Avito.BaseURL)
				assert.Equal(t, 5*time.Second, cfg.Avito.Timeout)
				require.NotNil(t, cfg.Avito.ProactiveRefresh)
				assert.False(t, *cfg.Avito.ProactiveRefresh)
				assert.Equal(t, 20, cfg.Avito.RateLimit.Burst)
				assert.Equal(t, int64(5000), cfg.Avito.RateLimit.DailyLimit)
				assert.True(t, cfg.Redis.Enabled())
				assert.Equal(t, 2, cfg.Redis.DB)
				assert.Equal(t, "bot:self", cfg.Redis.KeyPrefix)
				assert.Equal(t, time.Hour, cfg.Redis.TTL)
				assert.Equal(t, "https://bot.example.com/api/v1/webhook/my-id", cfg.Webhook.PublicURL)
				assert.True(t, cfg.Webhook.UnsubscribeAll)
				assert.Equal(t, "Thanks, we will answer soon", cfg.Webhook.AutoReply)
				assert.True(t, cfg.Webhook.MarkRead)
				assert.Equal(t, 5*time.Minute, cfg.Schedule.WebhookCheckInterval)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.BalanceInterval)
				assert.Equal(t, 10*time.Minute, cfg.Schedule.UnreadDigestInterval)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.Equal(t, "otel-collector:4317", cfg.Tracing.Endpoint)
				assert.InDelta(t, 0.25, cfg.Tracing.SampleRatio, 0)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "explicit zero disables jobs and sampling",
			yaml: `
avito:
  client_id: my-id
  client_secret: my-secret
schedule:
  webhook_check_interval: 0s
  balance_interval: 0s
tracing:
  enabled: true
  endpoint: otel-collector:4317
  sample_ratio: 0
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Zero(t, cfg.Schedule.WebhookCheckInterval)
				assert.Zero(t, cfg.Schedule.BalanceInterval)
				assert.Zero(t, cfg.Schedule.UnreadDigestInterval)
				assert.Zero(t, cfg.Tracing.SampleRatio)
				assert.Equal(t, "avito-client", cfg.Tracing.ServiceName)
			},
		},
		{
			name: "omitted schedule keys keep their defaults",
			yaml: `
avito:
  client_id: my-id
  client_secret: my-secret
schedule:
  balance_interval: 0s
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 15*time.Minute, cfg.Schedule.WebhookCheckInterval)
				assert.Zero(t, cfg.Schedule.BalanceInterval)
				assert.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0)
			},
		},
		{
			name: "negative interval rejected",
			yaml: `
avito:
  client_id: my-id
  client_secret: my-secret
schedule:
  unread_digest_interval: -1m
`,
			wantErr: "schedule.unread_digest_interval must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestValidate_JoinsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Logging.Format = "xml"

	err := validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "avito.client_id")
	assert.Contains(t, err.Error(), "avito.client_secret")
	assert.Contains(t, err.Error(), "logging.format")
}
