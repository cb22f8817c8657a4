package avito

import (
	"context"
	"fmt"
)

// WebhookMessage is a message delivered by a webhook update. Its follow-ups
// address the chat from the bound client's account.
type WebhookMessage struct {
	Object

	AuthorID int64          `json:"author_id"`
	ChatID   string         `json:"chat_id"`
	ChatType string         `json:"chat_type"`
	Content  MessageContent `json:"content"`
	Created  int64          `json:"created"`
	ID       string         `json:"id"`
	ItemID   int64          `json:"item_id,omitempty"`
	Read     int64          `json:"read,omitempty"`
	Type     MessageType    `json:"type"`
	UserID   int64          `json:"user_id"`
}

// FromSelf reports whether the bound client's account wrote the message.
func (w WebhookMessage) FromSelf() bool {
	me, ok := w.MeID()
	return ok && w.AuthorID == me
}

// Answer returns a descriptor replying to the message's chat with text.
func (w WebhookMessage) Answer(text string) SendMessage {
	me, _ := w.MeID()
	m := SendMessage{
		UserID:  me,
		ChatID:  w.ChatID,
		Message: MessageToSend{Text: text},
		Type:    MessageText,
	}
	m.Bind(w.Client())
	return m
}

// AnswerImage uploads the image at path and returns a descriptor posting it
// to the message's chat.
func (w WebhookMessage) AnswerImage(ctx context.Context, path string) (SendImage, error) {
	c := w.Client()
	if c == nil {
		return SendImage{}, ErrUnbound
	}
	imageID, err := c.UploadImage(ctx, path)
	if err != nil {
		return SendImage{}, err
	}
	me, _ := w.MeID()
	m := SendImage{UserID: me, ChatID: w.ChatID, ImageID: imageID}
	m.Bind(c)
	return m, nil
}

// ReadChat returns a descriptor marking the message's chat as read.
func (w WebhookMessage) ReadChat() ChatRead {
	me, _ := w.MeID()
	m := ChatRead{UserID: me, ChatID: w.ChatID}
	m.Bind(w.Client())
	return m
}

// Delete returns a descriptor deleting the message.
func (w WebhookMessage) Delete() DeleteMessage {
	me, _ := w.MeID()
	m := DeleteMessage{UserID: me, ChatID: w.ChatID, MessageID: w.ID}
	m.Bind(w.Client())
	return m
}

// Blacklist returns a descriptor blocking the message's counterpart.
func (w WebhookMessage) Blacklist(reason Reason) AddToBlacklist {
	me, _ := w.MeID()
	m := AddToBlacklist{
		UserID: me,
		Users: []BlacklistUser{{
			Context: BlacklistContext{ItemID: w.ItemID, ReasonID: reason},
			UserID:  w.AuthorID,
		}},
	}
	m.Bind(w.Client())
	return m
}

// WebhookPayload wraps the update's value.
type WebhookPayload struct {
	Object

	Type  string         `json:"type"`
	Value WebhookMessage `json:"value"`
}

// WebhookUpdate is the body of an inbound webhook request.
type WebhookUpdate struct {
	Object

	ID        string         `json:"id"`
	Payload   WebhookPayload `json:"payload"`
	Timestamp int64          `json:"timestamp"`
	Version   string         `json:"version"`
}

// Message returns the update's message.
func (u *WebhookUpdate) Message() *WebhookMessage {
	return &u.Payload.Value
}

// BindUpdate binds a webhook update decoded outside the dispatcher to c.
func BindUpdate(c *Client, u *WebhookUpdate) {
	bindAll(c, u)
}

// WebhookSubscription is a registered webhook URL.
type WebhookSubscription struct {
	Object

	URL     string `json:"url"`
	Version string `json:"version"`
}

// Unsubscribe returns a descriptor removing this subscription.
func (s WebhookSubscription) Unsubscribe() PostWebhookUnsubscribe {
	m := PostWebhookUnsubscribe{URL: s.URL}
	m.Bind(s.Client())
	return m
}

// WebhookSubscriptions lists registered webhooks.
type WebhookSubscriptions struct {
	Object

	Subscriptions []WebhookSubscription `json:"subscriptions"`
}

// GetSubscriptions lists the account's webhook subscriptions.
type GetSubscriptions struct {
	Returns[WebhookSubscriptions]
}

// Path implements Method.
func (GetSubscriptions) Path() string { return "messenger/v1/subscriptions" }

// PostWebhook registers a webhook URL.
type PostWebhook struct {
	Returns[OKResponse]

	URL string `json:"url"`
}

// Path implements Method.
func (PostWebhook) Path() string { return "messenger/v3/webhook" }

// Encoding implements Method.
func (PostWebhook) Encoding() Encoding { return EncodingJSON }

// PostWebhookUnsubscribe removes a webhook URL.
type PostWebhookUnsubscribe struct {
	Returns[OKResponse]

	URL string `json:"url"`
}

// Path implements Method.
func (PostWebhookUnsubscribe) Path() string { return "messenger/v1/webhook/unsubscribe" }

// Encoding implements Method.
func (PostWebhookUnsubscribe) Encoding() Encoding { return EncodingJSON }

// Subscriptions lists the account's webhook subscriptions.
func (c *Client) Subscriptions(ctx context.Context) (*WebhookSubscriptions, error) {
	subs, err := Call(ctx, c, GetSubscriptions{})
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	return &subs, nil
}

// UnsubscribeAll removes every webhook subscription and returns the list
// that was removed.
func (c *Client) UnsubscribeAll(ctx context.Context) (*WebhookSubscriptions, error) {
	subs, err := c.Subscriptions(ctx)
	if err != nil {
		return nil, err
	}
	for _, sub := range subs.Subscriptions {
		if _, err := Send(ctx, sub.Unsubscribe()); err != nil {
			return nil, fmt.Errorf("unsubscribing %s: %w", sub.URL, err)
		}
		c.log.Info("webhook unsubscribed", "url", sub.URL)
	}
	return subs, nil
}

// SetWebhook registers url, optionally removing existing subscriptions first.
func (c *Client) SetWebhook(ctx context.Context, url string, unsubscribeAll bool) (*OKResponse, error) {
	if unsubscribeAll {
		if _, err := c.UnsubscribeAll(ctx); err != nil {
			return nil, err
		}
	}
	ok, err := Call(ctx, c, PostWebhook{URL: url})
	if err != nil {
		return nil, fmt.Errorf("setting webhook: %w", err)
	}
	c.log.Info("webhook set", "url", url)
	return &ok, nil
}
