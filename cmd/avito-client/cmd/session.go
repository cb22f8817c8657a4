package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	goredis "github.com/redis/go-redis/v9"

	"github.com/donaldgifford/avito-client/internal/avito"
	"github.com/donaldgifford/avito-client/internal/config"
	"github.com/donaldgifford/avito-client/pkg/logger"
)

// session holds what every command needs to talk to Avito.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	client  *avito.Client
	limiter *avito.RateLimiter
	rdb     *goredis.Client
}

// newSession loads the config file and builds a client from it. Extra
// options are applied after the configured ones.
func newSession(extra ...avito.Option) (*session, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return buildSession(cfg, newLogger(cfg), extra...), nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.ForClient(
		logger.New(cfg.Logging.Level, cfg.Logging.Format),
		cfg.Avito.ClientID,
	)
}

// buildSession builds a client from an already loaded config.
func buildSession(cfg *config.Config, log *slog.Logger, extra ...avito.Option) *session {
	s := &session{cfg: cfg, log: log}

	opts := []avito.Option{
		avito.WithBaseURL(cfg.Avito.BaseURL),
		avito.WithHTTPClient(&http.Client{Timeout: cfg.Avito.Timeout}),
		avito.WithCredentials(cfg.Avito.ClientID, cfg.Avito.ClientSecret),
		avito.WithToken(cfg.Avito.AccessToken),
		avito.WithLogger(s.log),
		avito.WithProactiveRefresh(*cfg.Avito.ProactiveRefresh),
	}

	if rl := cfg.Avito.RateLimit; rl.PerSecond > 0 {
		s.limiter = avito.NewRateLimiter(rl.PerSecond, rl.Burst, rl.DailyLimit)
		opts = append(opts, avito.WithRateLimiter(s.limiter))
	}

	if cfg.Redis.Enabled() {
		s.rdb = goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		opts = append(opts, avito.WithSelfInfoCache(avito.NewRedisCache(
			s.rdb,
			avito.WithKeyPrefix(cfg.Redis.KeyPrefix),
			avito.WithTTL(cfg.Redis.TTL),
		)))
	}

	s.client = avito.New(append(opts, extra...)...)
	return s
}

// Close releases the Redis connection, if any.
func (s *session) Close() error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
