package avito

import (
	"fmt"
	"net/http"
)

// GetMessages lists messages in a chat.
type GetMessages struct {
	Returns[Messages]

	UserID int64  `json:"-" url:"-"`
	ChatID string `json:"-" url:"-"`

	Limit  int `json:"-" url:"-"`
	Offset int `json:"-" url:"-"`
}

// Path implements Method.
func (m GetMessages) Path() string {
	q := newPathQuery(fmt.Sprintf("messenger/v3/accounts/%d/chats/%s/messages/", m.UserID, m.ChatID))
	q.positive("limit", m.Limit)
	q.positive("offset", m.Offset)
	return q.String()
}

// HTTPMethod implements Method.
func (GetMessages) HTTPMethod() string { return http.MethodGet }

// GetChats lists an account's chats.
type GetChats struct {
	Returns[Chats]

	UserID int64 `json:"-" url:"-"`

	ItemIDs    []int64 `json:"-" url:"-"`
	UnreadOnly bool    `json:"-" url:"-"`
	ChatTypes  string  `json:"-" url:"-"`
	Limit      int     `json:"-" url:"-"`
	Offset     int     `json:"-" url:"-"`
}

// Path implements Method. Only the filters that are set appear in the query,
// in field order.
func (m GetChats) Path() string {
	q := newPathQuery(fmt.Sprintf("messenger/v2/accounts/%d/chats", m.UserID))
	q.ids("item_ids", m.ItemIDs)
	q.flag("unread_only", m.UnreadOnly)
	q.str("chat_types", m.ChatTypes)
	q.positive("limit", m.Limit)
	q.positive("offset", m.Offset)
	return q.String()
}

// HTTPMethod implements Method.
func (GetChats) HTTPMethod() string { return http.MethodGet }

// GetChat fetches one chat.
type GetChat struct {
	Returns[Chat]

	UserID int64  `json:"-" url:"-"`
	ChatID string `json:"-" url:"-"`
}

// Path implements Method.
func (m GetChat) Path() string {
	return fmt.Sprintf("messenger/v2/accounts/%d/chats/%s", m.UserID, m.ChatID)
}

// HTTPMethod implements Method.
func (GetChat) HTTPMethod() string { return http.MethodGet }

// ChatRead marks all messages in a chat as read.
type ChatRead struct {
	Returns[OKResponse]

	UserID int64  `json:"-" url:"-"`
	ChatID string `json:"-" url:"-"`
}

// Path implements Method.
func (m ChatRead) Path() string {
	return fmt.Sprintf("messenger/v1/accounts/%d/chats/%s/read", m.UserID, m.ChatID)
}

// DeleteMessage deletes one of the account's own messages.
type DeleteMessage struct {
	Returns[OKResponse]

	UserID    int64  `json:"-" url:"-"`
	ChatID    string `json:"-" url:"-"`
	MessageID string `json:"-" url:"-"`
}

// Path implements Method.
func (m DeleteMessage) Path() string {
	return fmt.Sprintf("messenger/v1/accounts/%d/chats/%s/messages/%s", m.UserID, m.ChatID, m.MessageID)
}

// SendMessage posts a message to a chat.
type SendMessage struct {
	Returns[Message]

	UserID int64  `json:"-" url:"-"`
	ChatID string `json:"-" url:"-"`

	Message MessageToSend `json:"message"`
	Type    MessageType   `json:"type"`
}

// Path implements Method.
func (m SendMessage) Path() string {
	return fmt.Sprintf("messenger/v1/accounts/%d/chats/%s/messages", m.UserID, m.ChatID)
}

// Encoding implements Method.
func (SendMessage) Encoding() Encoding { return EncodingJSON }

func (m SendMessage) withDefaults() any {
	if m.Type == "" {
		m.Type = MessageText
	}
	return m
}

// SendImage posts a previously uploaded image to a chat.
type SendImage struct {
	Returns[Message]

	UserID int64  `json:"-" url:"-"`
	ChatID string `json:"-" url:"-"`

	ImageID string `json:"image_id"`
}

// Path implements Method.
func (m SendImage) Path() string {
	return fmt.Sprintf("messenger/v1/accounts/%d/chats/%s/messages/image", m.UserID, m.ChatID)
}

// Encoding implements Method.
func (SendImage) Encoding() Encoding { return EncodingJSON }
