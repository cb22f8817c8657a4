// Package main implements a mock Avito API server for local development.
// It issues short-lived tokens and serves an in-memory account, chats and
// webhook subscriptions so the client and the serve command can run without
// real Avito credentials.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	accountID   int64 = 100500
	accountName       = "Mock Shop"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	clientID := flag.String("client-id", "mock-client", "accepted client id")
	clientSecret := flag.String("client-secret", "mock-secret", "accepted client secret")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of issued access tokens")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := newMockAvito(*clientID, *clientSecret, *tokenTTL, logger)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Avito server", "addr", addr, "token_ttl", tokenTTL.String())

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, m.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

type mockMessage struct {
	AuthorID  int64          `json:"author_id"`
	Content   map[string]any `json:"content"`
	Created   int64          `json:"created"`
	Direction string         `json:"direction"`
	ID        string         `json:"id"`
	Type      string         `json:"type"`
}

type mockChat struct {
	ID       string
	Buyer    string
	BuyerID  int64
	ItemID   int64
	Title    string
	Unread   bool
	Messages []mockMessage
}

// mockAvito holds the server's mutable state.
type mockAvito struct {
	clientID     string
	clientSecret string
	tokenTTL     time.Duration
	logger       *slog.Logger
	now          func() time.Time

	mu            sync.Mutex
	tokens        map[string]time.Time
	refreshTokens map[string]bool
	chats         []*mockChat
	subscriptions []string
	seq           int
}

func newMockAvito(clientID, clientSecret string, ttl time.Duration, logger *slog.Logger) *mockAvito {
	now := time.Now().Unix()
	return &mockAvito{
		clientID:      clientID,
		clientSecret:  clientSecret,
		tokenTTL:      ttl,
		logger:        logger,
		now:           time.Now,
		tokens:        make(map[string]time.Time),
		refreshTokens: make(map[string]bool),
		chats: []*mockChat{
			{
				ID: "u2i-mock-1", Buyer: "Ivan", BuyerID: 200, ItemID: 3001, Title: "Road bike", Unread: true,
				Messages: []mockMessage{{
					AuthorID: 200, Content: map[string]any{"text": "Is it still available?"},
					Created: now - 60, Direction: "in", ID: "m-1", Type: "text",
				}},
			},
			{
				ID: "u2i-mock-2", Buyer: "Olga", BuyerID: 201, ItemID: 3002, Title: "Helmet",
				Messages: []mockMessage{{
					AuthorID: accountID, Content: map[string]any{"text": "Yes, pickup only."},
					Created: now - 3600, Direction: "out", ID: "m-2", Type: "text",
				}},
			},
		},
	}
}

func (m *mockAvito) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", m.tokenHandler)
	mux.HandleFunc("POST /token/", m.tokenHandler)
	mux.HandleFunc("POST /mock/expire-tokens", m.expireTokensHandler)

	mux.Handle("GET /core/v1/accounts/self", m.auth(m.selfHandler))
	mux.Handle("GET /core/v1/accounts/{user_id}/balance", m.auth(m.balanceHandler))
	mux.Handle("GET /core/v1/accounts/{user_id}/balance/", m.auth(m.balanceHandler))
	mux.Handle("GET /ratings/v1/info", m.auth(m.ratingHandler))
	mux.Handle("GET /messenger/v2/accounts/{user_id}/chats", m.auth(m.chatsHandler))
	mux.Handle("GET /messenger/v3/accounts/{user_id}/chats/{chat_id}/messages/", m.auth(m.messagesHandler))
	mux.Handle("POST /messenger/v1/accounts/{user_id}/chats/{chat_id}/messages", m.auth(m.sendHandler))
	mux.Handle("POST /messenger/v1/accounts/{user_id}/chats/{chat_id}/read", m.auth(m.readHandler))
	mux.Handle("POST /messenger/v1/subscriptions", m.auth(m.subscriptionsHandler))
	mux.Handle("POST /messenger/v3/webhook", m.auth(m.webhookHandler(true)))
	mux.Handle("POST /messenger/v1/webhook/unsubscribe", m.auth(m.webhookHandler(false)))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func newSecret(prefix string) string {
	b := make([]byte, 12)
	//nolint:errcheck,gosec // crypto/rand never fails on supported platforms
	rand.Read(b)
	return prefix + hex.EncodeToString(b)
}

func (m *mockAvito) tokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	if r.PostForm.Get("client_id") != m.clientID || r.PostForm.Get("client_secret") != m.clientSecret {
		m.logger.Warn("token request with unknown credentials", "client_id", r.PostForm.Get("client_id"))
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "invalid_client",
			"error_description": "client authentication failed",
		})
		return
	}

	grant := r.PostForm.Get("grant_type")
	resp := map[string]any{"expires_in": int(m.tokenTTL.Seconds()), "token_type": "Bearer"}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch grant {
	case "client_credentials":
	case "authorization_code":
		if r.PostForm.Get("code") == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant"})
			return
		}
		refresh := newSecret("mock-refresh-")
		m.refreshTokens[refresh] = true
		resp["refresh_token"] = refresh
		resp["scope"] = "messenger:read,messenger:write"
	case "refresh_token":
		if !m.refreshTokens[r.PostForm.Get("refresh_token")] {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant"})
			return
		}
		resp["refresh_token"] = r.PostForm.Get("refresh_token")
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		return
	}

	access := newSecret("mock-token-")
	m.tokens[access] = m.now().Add(m.tokenTTL)
	resp["access_token"] = access

	writeJSON(w, http.StatusOK, resp)
	m.logger.Info("issued mock token", "grant_type", grant)
}

// expireTokensHandler expires every issued access token so the next API
// call has to refresh.
func (m *mockAvito) expireTokensHandler(w http.ResponseWriter, _ *http.Request) {
	m.mu.Lock()
	past := m.now().Add(-time.Second)
	for tok := range m.tokens {
		m.tokens[tok] = past
	}
	n := len(m.tokens)
	m.mu.Unlock()

	m.logger.Info("expired mock tokens", "count", n)
	writeJSON(w, http.StatusOK, map[string]int{"expired": n})
}

// auth rejects requests without a live bearer token the way Avito does.
func (m *mockAvito) auth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		m.mu.Lock()
		expires, ok := m.tokens[token]
		m.mu.Unlock()

		if !ok || !m.now().Before(expires) {
			writeJSON(w, http.StatusForbidden, map[string]any{
				"result": map[string]any{"message": "access token expired", "status": false},
			})
			return
		}
		next(w, r)
	})
}

// ownAccount rejects paths addressed to another account.
func ownAccount(w http.ResponseWriter, r *http.Request) bool {
	if r.PathValue("user_id") == strconv.FormatInt(accountID, 10) {
		return true
	}
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error": map[string]any{"code": http.StatusNotFound, "message": "account not found"},
	})
	return false
}

func (m *mockAvito) selfHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"id":          accountID,
		"name":        accountName,
		"email":       "shop@example.com",
		"profile_url": "https://www.avito.ru/user/mock/profile",
	})
}

func (m *mockAvito) balanceHandler(w http.ResponseWriter, r *http.Request) {
	if !ownAccount(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"real": 1500.5, "bonus": 200})
}

func (m *mockAvito) ratingHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"isEnabled": true,
		"rating":    map[string]any{"score": 4.8, "reviewsCount": 37, "reviewsWithScoreCount": 35},
	})
}

func (m *mockAvito) chatsHandler(w http.ResponseWriter, r *http.Request) {
	if !ownAccount(w, r) {
		return
	}
	unreadOnly := r.URL.Query().Get("unread_only") == "true"

	m.mu.Lock()
	defer m.mu.Unlock()

	chats := make([]map[string]any, 0, len(m.chats))
	for _, ch := range m.chats {
		if unreadOnly && !ch.Unread {
			continue
		}
		chats = append(chats, m.renderChat(ch))
	}
	writeJSON(w, http.StatusOK, map[string]any{"chats": chats})
}

func (m *mockAvito) renderChat(ch *mockChat) map[string]any {
	last := ch.Messages[len(ch.Messages)-1]
	return map[string]any{
		"id":      ch.ID,
		"created": ch.Messages[0].Created,
		"updated": last.Created,
		"context": map[string]any{
			"type":  "item",
			"value": map[string]any{"id": ch.ItemID, "title": ch.Title, "user_id": accountID},
		},
		"last_message": last,
		"users": []map[string]any{
			{"id": accountID, "name": accountName},
			{"id": ch.BuyerID, "name": ch.Buyer},
		},
	}
}

func (m *mockAvito) findChat(w http.ResponseWriter, r *http.Request) *mockChat {
	if !ownAccount(w, r) {
		return nil
	}
	id := r.PathValue("chat_id")
	idx := slices.IndexFunc(m.chats, func(ch *mockChat) bool { return ch.ID == id })
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]any{"code": http.StatusNotFound, "message": "chat not found"},
		})
		return nil
	}
	return m.chats[idx]
}

func (m *mockAvito) messagesHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := m.findChat(w, r)
	if ch == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": ch.Messages,
		"meta":     map[string]any{"has_more": false},
	})
}

func (m *mockAvito) sendHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message struct {
			Text string `json:"text"`
		} `json:"message"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Message.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": http.StatusBadRequest, "message": "message.text is required"},
		})
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ch := m.findChat(w, r)
	if ch == nil {
		return
	}
	m.seq++
	msg := mockMessage{
		AuthorID:  accountID,
		Content:   map[string]any{"text": body.Message.Text},
		Created:   m.now().Unix(),
		Direction: "out",
		ID:        fmt.Sprintf("m-sent-%d", m.seq),
		Type:      "text",
	}
	ch.Messages = append(ch.Messages, msg)
	ch.Unread = false
	writeJSON(w, http.StatusOK, msg)
}

func (m *mockAvito) readHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := m.findChat(w, r)
	if ch == nil {
		return
	}
	ch.Unread = false
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (m *mockAvito) subscriptionsHandler(w http.ResponseWriter, _ *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := make([]map[string]string, 0, len(m.subscriptions))
	for _, u := range m.subscriptions {
		subs = append(subs, map[string]string{"url": u, "version": "3"})
	}
	writeJSON(w, http.StatusOK, map[string]any{"subscriptions": subs})
}

func (m *mockAvito) webhookHandler(subscribe bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.URL == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": map[string]any{"code": http.StatusBadRequest, "message": "url is required"},
			})
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()

		m.subscriptions = slices.DeleteFunc(m.subscriptions, func(u string) bool { return u == body.URL })
		if subscribe {
			m.subscriptions = append(m.subscriptions, body.URL)
		}
		m.logger.Info("webhook subscriptions changed", "url", body.URL, "subscribe", subscribe)
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
