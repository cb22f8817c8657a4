package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/avito-client/internal/avito"
)

// UpdateHandler reacts to an inbound messenger update.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, u *avito.WebhookUpdate) error
}

// DefaultReactionTimeout bounds how long Receive waits on the reaction
// before acknowledging.
const DefaultReactionTimeout = 5 * time.Second

// WebhookHandler receives the messenger webhook Avito posts to.
type WebhookHandler struct {
	clientID string
	updates  UpdateHandler
	log      *slog.Logger
	timeout  time.Duration
}

// WebhookOption configures a WebhookHandler.
type WebhookOption func(*WebhookHandler)

// WithReactionTimeout overrides DefaultReactionTimeout. Non-positive
// values keep the default.
func WithReactionTimeout(d time.Duration) WebhookOption {
	return func(h *WebhookHandler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewWebhookHandler creates a WebhookHandler accepting updates addressed to
// clientID.
func NewWebhookHandler(
	clientID string,
	u UpdateHandler,
	log *slog.Logger,
	opts ...WebhookOption,
) *WebhookHandler {
	h := &WebhookHandler{clientID: clientID, updates: u, log: log, timeout: DefaultReactionTimeout}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// WebhookInput is the inbound update. The body is decoded by hand because
// Avito omits fields freely across message types.
type WebhookInput struct {
	ClientID string `path:"client_id" doc:"Client id the webhook was registered for"`
	RawBody  []byte
}

// WebhookOutput acknowledges an update.
type WebhookOutput struct {
	Body struct {
		OK bool `json:"ok" example:"true" doc:"Always true once the update was accepted"`
	}
}

// Receive decodes the update and hands it to the engine. The reaction runs
// under the handler's timeout; failures, timeouts included, are logged and
// still acknowledged so Avito does not redeliver.
func (h *WebhookHandler) Receive(ctx context.Context, in *WebhookInput) (*WebhookOutput, error) {
	if in.ClientID != h.clientID {
		return nil, huma.Error404NotFound("unknown client id")
	}

	var u avito.WebhookUpdate
	if err := json.Unmarshal(in.RawBody, &u); err != nil {
		return nil, huma.Error400BadRequest("decoding update: " + err.Error())
	}

	rctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.updates.HandleUpdate(rctx, &u); err != nil {
		h.log.Error("webhook update handling failed",
			"update_id", u.ID,
			"chat_id", u.Message().ChatID,
			"timed_out", errors.Is(err, context.DeadlineExceeded),
			"error", err,
		)
	}

	resp := &WebhookOutput{}
	resp.Body.OK = true
	return resp, nil
}

// RegisterWebhookRoutes registers the webhook receiver with the Huma API.
func RegisterWebhookRoutes(api huma.API, h *WebhookHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "receive-webhook",
		Method:      http.MethodPost,
		Path:        "/api/v1/webhook/{client_id}",
		Summary:     "Receive a messenger webhook update",
		Description: "Endpoint registered with Avito through the messenger webhook subscription.",
		Tags:        []string{"webhook"},
	}, h.Receive)
}
