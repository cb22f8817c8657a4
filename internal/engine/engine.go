// Package engine reacts to inbound messenger updates and runs the periodic
// account upkeep jobs.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/donaldgifford/avito-client/internal/avito"
	"github.com/donaldgifford/avito-client/internal/metrics"
	"github.com/donaldgifford/avito-client/internal/notify"
)

// Engine orchestrates webhook handling, subscription upkeep, balance polling
// and message notifications for one Avito account.
type Engine struct {
	client   *avito.Client
	notifier notify.Notifier
	log      *slog.Logger

	webhookURL     string
	unsubscribeAll bool
	autoReply      string
	markRead       bool
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	c *avito.Client,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		client:   c,
		notifier: n,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithWebhook sets the public URL EnsureWebhook keeps subscribed.
func WithWebhook(url string, unsubscribeAll bool) EngineOption {
	return func(e *Engine) {
		e.webhookURL = url
		e.unsubscribeAll = unsubscribeAll
	}
}

// WithAutoReply answers every incoming message with text.
func WithAutoReply(text string) EngineOption {
	return func(e *Engine) {
		e.autoReply = text
	}
}

// WithMarkRead marks chats read as their messages arrive.
func WithMarkRead(enabled bool) EngineOption {
	return func(e *Engine) {
		e.markRead = enabled
	}
}

// Client returns the Avito client the engine acts for.
func (eng *Engine) Client() *avito.Client {
	return eng.client
}

// HandleUpdate binds u to the engine's client and reacts to the message it
// carries. Own and system messages are ignored. Every reaction is attempted;
// the returned error joins the ones that failed.
func (eng *Engine) HandleUpdate(ctx context.Context, u *avito.WebhookUpdate) error {
	avito.BindUpdate(eng.client, u)
	msg := u.Message()

	metrics.WebhookUpdatesTotal.WithLabelValues(string(msg.Type)).Inc()

	// FromSelf and the reply descriptors need the account id.
	if _, err := eng.client.SelfInfo(ctx); err != nil {
		return fmt.Errorf("resolving self info: %w", err)
	}

	if msg.FromSelf() || msg.Type == avito.MessageSystem {
		eng.log.Debug("ignoring update",
			"update_id", u.ID,
			"chat_id", msg.ChatID,
			"type", msg.Type,
		)
		return nil
	}

	eng.log.Info("incoming message",
		"update_id", u.ID,
		"chat_id", msg.ChatID,
		"author_id", msg.AuthorID,
		"type", msg.Type,
	)

	var errs []error

	if eng.markRead {
		if _, err := avito.Send(ctx, msg.ReadChat()); err != nil {
			metrics.WebhookReplyFailuresTotal.Inc()
			errs = append(errs, fmt.Errorf("marking chat read: %w", err))
		}
	}

	if eng.autoReply != "" {
		if _, err := avito.Send(ctx, msg.Answer(eng.autoReply)); err != nil {
			metrics.WebhookReplyFailuresTotal.Inc()
			errs = append(errs, fmt.Errorf("sending auto reply: %w", err))
		}
	}

	alert := alertFromWebhook(eng.client.ClientID(), msg)
	if err := eng.notifier.NotifyMessage(ctx, &alert); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		errs = append(errs, fmt.Errorf("notifying: %w", err))
	}

	return errors.Join(errs...)
}

// EnsureWebhook subscribes the configured webhook URL unless it is already
// registered. It is a no-op without a configured URL.
func (eng *Engine) EnsureWebhook(ctx context.Context) error {
	if eng.webhookURL == "" {
		return nil
	}

	subs, err := eng.client.Subscriptions(ctx)
	if err != nil {
		return fmt.Errorf("listing webhook subscriptions: %w", err)
	}

	if slices.ContainsFunc(subs.Subscriptions, func(s avito.WebhookSubscription) bool {
		return s.URL == eng.webhookURL
	}) {
		metrics.WebhookRegistered.Set(1)
		return nil
	}

	eng.log.Info("webhook not registered, subscribing",
		"url", eng.webhookURL,
		"unsubscribe_all", eng.unsubscribeAll,
	)

	ok, err := eng.client.SetWebhook(ctx, eng.webhookURL, eng.unsubscribeAll)
	if err != nil {
		metrics.WebhookRegistered.Set(0)
		return fmt.Errorf("subscribing webhook: %w", err)
	}
	if !ok.OK {
		metrics.WebhookRegistered.Set(0)
		return fmt.Errorf("subscribing webhook %s: service answered ok=false", eng.webhookURL)
	}

	metrics.WebhookRegistered.Set(1)
	return nil
}

// PollBalance fetches the account balance and exports it as gauges.
func (eng *Engine) PollBalance(ctx context.Context) (*avito.Balance, error) {
	b, err := eng.client.SelfBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching balance: %w", err)
	}

	metrics.AccountBalance.WithLabelValues("real").Set(b.Real)
	metrics.AccountBalance.WithLabelValues("bonus").Set(b.Bonus)

	eng.log.Debug("balance polled", "real", b.Real, "bonus", b.Bonus)
	return b, nil
}
