package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyMessage logs and discards a single alert.
func (n *NoOpNotifier) NotifyMessage(_ context.Context, alert *MessageAlert) error {
	n.log.Debug("notification discarded (no backend configured)",
		"chat_id", alert.ChatID,
		"author_id", alert.AuthorID,
		"type", alert.Type,
	)
	return nil
}

// NotifyBatch logs and discards a batch of alerts.
func (n *NoOpNotifier) NotifyBatch(_ context.Context, alerts []MessageAlert, clientID string) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"avito_client", clientID,
		"count", len(alerts),
	)
	return nil
}
