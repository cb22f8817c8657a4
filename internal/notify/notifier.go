// Package notify defines the notification interface and implementations
// for forwarding incoming Avito messages.
package notify

import (
	"context"
	"time"
)

// MessageAlert contains the data needed to announce an incoming message.
type MessageAlert struct {
	ClientID string
	ChatID   string
	ChatURL  string
	AuthorID int64
	ItemID   int64
	Type     string
	Text     string
	ImageURL string
	Created  time.Time
}

// Notifier defines the interface for forwarding message alerts.
type Notifier interface {
	NotifyMessage(ctx context.Context, alert *MessageAlert) error
	NotifyBatch(ctx context.Context, alerts []MessageAlert, clientID string) error
}
