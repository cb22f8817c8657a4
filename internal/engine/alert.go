package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/donaldgifford/avito-client/internal/avito"
	"github.com/donaldgifford/avito-client/internal/metrics"
	"github.com/donaldgifford/avito-client/internal/notify"
)

const (
	batchThreshold = 5
	chatURLPrefix  = "https://www.avito.ru/profile/messenger/channel/"
)

// RunUnreadDigest lists the account's unread chats and forwards their last
// incoming message. Five or more chats are sent as one batch.
func (eng *Engine) RunUnreadDigest(ctx context.Context) error {
	me, err := eng.client.SelfInfo(ctx)
	if err != nil {
		return fmt.Errorf("resolving self info: %w", err)
	}

	req := me.Chats()
	req.UnreadOnly = true
	chats, err := avito.Send(ctx, req)
	if err != nil {
		return fmt.Errorf("listing unread chats: %w", err)
	}

	alerts := make([]notify.MessageAlert, 0, len(chats.Chats))
	for i := range chats.Chats {
		ch := &chats.Chats[i]
		if ch.LastMessage == nil || ch.LastMessage.AuthorID == me.ID {
			continue
		}
		alerts = append(alerts, alertFromChat(eng.client.ClientID(), ch))
	}

	if len(alerts) == 0 {
		return nil
	}

	eng.log.Info("unread digest", "chats", len(alerts))
	return eng.sendAlerts(ctx, alerts)
}

func (eng *Engine) sendAlerts(ctx context.Context, alerts []notify.MessageAlert) error {
	if len(alerts) >= batchThreshold {
		if err := eng.notifier.NotifyBatch(ctx, alerts, eng.client.ClientID()); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			return fmt.Errorf("sending batch notification: %w", err)
		}
		return nil
	}

	var failed int
	for i := range alerts {
		if err := eng.notifier.NotifyMessage(ctx, &alerts[i]); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			eng.log.Error("notification failed", "chat_id", alerts[i].ChatID, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d notifications failed", failed, len(alerts))
	}
	return nil
}

func alertFromWebhook(clientID string, m *avito.WebhookMessage) notify.MessageAlert {
	return notify.MessageAlert{
		ClientID: clientID,
		ChatID:   m.ChatID,
		ChatURL:  chatURLPrefix + m.ChatID,
		AuthorID: m.AuthorID,
		ItemID:   m.ItemID,
		Type:     string(m.Type),
		Text:     contentText(&m.Content),
		ImageURL: contentImage(&m.Content),
		Created:  unixTime(m.Created),
	}
}

func alertFromChat(clientID string, ch *avito.Chat) notify.MessageAlert {
	last := ch.LastMessage
	return notify.MessageAlert{
		ClientID: clientID,
		ChatID:   ch.ID,
		ChatURL:  chatURLPrefix + ch.ID,
		AuthorID: last.AuthorID,
		ItemID:   ch.Context.Value.ID,
		Type:     string(last.Type),
		Text:     contentText(&last.Content),
		ImageURL: contentImage(&last.Content),
		Created:  unixTime(last.Created),
	}
}

func contentText(c *avito.MessageContent) string {
	switch {
	case c.Text != "":
		return c.Text
	case c.Link != nil:
		return c.Link.URL
	case c.Item != nil:
		return c.Item.Title
	default:
		return ""
	}
}

func contentImage(c *avito.MessageContent) string {
	if c.Image == nil {
		return ""
	}
	return c.Image.Sizes.Size640x480
}

func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
