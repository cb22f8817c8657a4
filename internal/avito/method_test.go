package avito_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/avito-client/internal/avito"
)

func TestGetChats_Path(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    avito.GetChats
		want string
	}{
		{
			name: "no optional fields",
			m:    avito.GetChats{UserID: 42},
			want: "messenger/v2/accounts/42/chats",
		},
		{
			name: "zero values are absent",
			m:    avito.GetChats{UserID: 42, ItemIDs: []int64{}, UnreadOnly: false, Limit: 0, Offset: 0},
			want: "messenger/v2/accounts/42/chats",
		},
		{
			name: "single field without leading item_ids",
			m:    avito.GetChats{UserID: 42, Limit: 10},
			want: "messenger/v2/accounts/42/chats?limit=10",
		},
		{
			name: "all fields in declaration order",
			m: avito.GetChats{
				UserID:     42,
				ItemIDs:    []int64{1, 2, 3},
				UnreadOnly: true,
				ChatTypes:  "u2i",
				Limit:      50,
				Offset:     100,
			},
			want: "messenger/v2/accounts/42/chats?item_ids=1,2,3&unread_only=true&chat_types=u2i&limit=50&offset=100",
		},
		{
			name: "declaration order is kept when fields are skipped",
			m:    avito.GetChats{UserID: 42, Offset: 5, UnreadOnly: true},
			want: "messenger/v2/accounts/42/chats?unread_only=true&offset=5",
		},
		{
			name: "values are escaped",
			m:    avito.GetChats{UserID: 42, ChatTypes: "u2i,u2u"},
			want: "messenger/v2/accounts/42/chats?chat_types=u2i%2Cu2u",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.m.Path())
			// Path is pure.
			assert.Equal(t, tt.m.Path(), tt.m.Path())
		})
	}
}

func TestGetMessages_Path(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    avito.GetMessages
		want string
	}{
		{
			name: "bare",
			m:    avito.GetMessages{UserID: 7, ChatID: "u2i-abc"},
			want: "messenger/v3/accounts/7/chats/u2i-abc/messages/",
		},
		{
			name: "offset without limit",
			m:    avito.GetMessages{UserID: 7, ChatID: "u2i-abc", Offset: 20},
			want: "messenger/v3/accounts/7/chats/u2i-abc/messages/?offset=20",
		},
		{
			name: "limit and offset",
			m:    avito.GetMessages{UserID: 7, ChatID: "u2i-abc", Limit: 10, Offset: 20},
			want: "messenger/v3/accounts/7/chats/u2i-abc/messages/?limit=10&offset=20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.m.Path())
		})
	}
}

func TestDescriptors_Contract(t *testing.T) {
	t.Parallel()

	type descriptor interface {
		Path() string
		HTTPMethod() string
		Encoding() avito.Encoding
	}

	tests := []struct {
		name     string
		m        descriptor
		path     string
		verb     string
		encoding avito.Encoding
	}{
		{"get token", avito.GetToken{}, "token", http.MethodPost, avito.EncodingForm},
		{"oauth code", avito.GetTokenOAuth{}, "token", http.MethodPost, avito.EncodingForm},
		{"oauth refresh", avito.RefreshOAuthToken{}, "token", http.MethodPost, avito.EncodingForm},
		{"self", avito.GetUserInfoSelf{}, "core/v1/accounts/self", http.MethodGet, avito.EncodingForm},
		{"balance", avito.GetUserBalance{UserID: 9}, "core/v1/accounts/9/balance", http.MethodGet, avito.EncodingForm},
		{"operations", avito.GetOperationsHistory{}, "core/v1/accounts/operations_history/", http.MethodPost, avito.EncodingJSON},
		{"rating", avito.GetRatingsInfo{}, "ratings/v1/info", http.MethodGet, avito.EncodingForm},
		{"chat", avito.GetChat{UserID: 1, ChatID: "c"}, "messenger/v2/accounts/1/chats/c", http.MethodGet, avito.EncodingForm},
		{"read", avito.ChatRead{UserID: 1, ChatID: "c"}, "messenger/v1/accounts/1/chats/c/read", http.MethodPost, avito.EncodingForm},
		{"delete", avito.DeleteMessage{UserID: 1, ChatID: "c", MessageID: "m"}, "messenger/v1/accounts/1/chats/c/messages/m", http.MethodPost, avito.EncodingForm},
		{"blacklist", avito.AddToBlacklist{UserID: 1}, "messenger/v2/accounts/1/blacklist", http.MethodPost, avito.EncodingJSON},
		{"send", avito.SendMessage{UserID: 1, ChatID: "c"}, "messenger/v1/accounts/1/chats/c/messages", http.MethodPost, avito.EncodingJSON},
		{"send image", avito.SendImage{UserID: 1, ChatID: "c"}, "messenger/v1/accounts/1/chats/c/messages/image", http.MethodPost, avito.EncodingJSON},
		{"upload", avito.UploadImage{UserID: 1}, "messenger/v1/accounts/1/uploadImages", http.MethodPost, avito.EncodingMultipart},
		{"subscriptions", avito.GetSubscriptions{}, "messenger/v1/subscriptions", http.MethodPost, avito.EncodingForm},
		{"webhook", avito.PostWebhook{}, "messenger/v3/webhook", http.MethodPost, avito.EncodingJSON},
		{"unsubscribe", avito.PostWebhookUnsubscribe{}, "messenger/v1/webhook/unsubscribe", http.MethodPost, avito.EncodingJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.path, tt.m.Path())
			assert.Equal(t, tt.verb, tt.m.HTTPMethod())
			assert.Equal(t, tt.encoding, tt.m.Encoding())
		})
	}
}

func TestEncoding_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "form", avito.EncodingForm.String())
	assert.Equal(t, "json", avito.EncodingJSON.String())
	assert.Equal(t, "multipart", avito.EncodingMultipart.String())
	assert.Equal(t, "unknown", avito.Encoding(42).String())
}
