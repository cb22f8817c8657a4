package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/avito-client/api/openapi"
	"github.com/donaldgifford/avito-client/internal/api/handlers"
	"github.com/donaldgifford/avito-client/internal/api/middleware"
	"github.com/donaldgifford/avito-client/internal/avito"
	"github.com/donaldgifford/avito-client/internal/config"
	"github.com/donaldgifford/avito-client/internal/engine"
	"github.com/donaldgifford/avito-client/internal/notify"
	"github.com/donaldgifford/avito-client/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the webhook receiver, API server and scheduler",
		Long: "Starts an HTTP server that receives Avito messenger webhooks and forwards\n" +
			"new messages to the configured notifier, exposes account status under\n" +
			"/api/v1, and runs the webhook upkeep, balance and unread digest jobs.",
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	tel, err := telemetry.Setup(cmd.Context(), &cfg.Tracing, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	s := buildSession(cfg, log,
		avito.WithTracerProvider(tel.Tracer),
		avito.WithMeterProvider(tel.Meter),
	)

	eng := engine.NewEngine(s.client, newNotifier(cfg, log),
		engine.WithLogger(log),
		engine.WithWebhook(cfg.Webhook.PublicURL, cfg.Webhook.UnsubscribeAll),
		engine.WithAutoReply(cfg.Webhook.AutoReply),
		engine.WithMarkRead(cfg.Webhook.MarkRead),
	)

	sched, err := engine.NewScheduler(eng, engine.Intervals{
		WebhookCheck: cfg.Schedule.WebhookCheckInterval,
		Balance:      cfg.Schedule.BalanceInterval,
		UnreadDigest: cfg.Schedule.UnreadDigestInterval,
	}, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := newServer(s, eng, sched, tel, log)

	addr := cfg.Server.Addr()
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	sched.Start()

	go func() {
		if err := eng.EnsureWebhook(cmd.Context()); err != nil {
			log.Error("initial webhook registration failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := e.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down server: %w", err))
	}

	select {
	case <-sched.Stop().Done():
	case <-ctx.Done():
		log.Warn("scheduler jobs still running at shutdown")
	}

	if err := tel.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down telemetry: %w", err))
	}
	if err := s.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing redis: %w", err))
	}

	log.Info("server stopped")
	return errors.Join(errs...)
}

func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}
	return notify.NewNoOpNotifier(log)
}

// newServer assembles the echo server with health probes, metrics and the
// huma API.
func newServer(
	s *session,
	eng *engine.Engine,
	sched *engine.Scheduler,
	tel *telemetry.Providers,
	log *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = s.cfg.Server.WriteTimeout

	e.Use(
		middleware.Recovery(log),
		middleware.RequestLog(log),
		middleware.Metrics(),
		middleware.Tracing(tel.Tracer),
	)

	health := handlers.NewHealthHandler(s.client)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Avito Client API", Version))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(s.limiter))
	handlers.RegisterAccountRoutes(api, handlers.NewAccountHandler(s.client))
	handlers.RegisterWebhookRoutes(api, handlers.NewWebhookHandler(
		s.cfg.Avito.ClientID, eng, log,
		handlers.WithReactionTimeout(s.cfg.Webhook.ReactionTimeout),
	))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(sched,
		engine.JobWebhookCheck,
		engine.JobBalance,
		engine.JobUnreadDigest,
	))
	openapi.RegisterRoutes(e, api)

	return e
}
