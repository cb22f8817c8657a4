package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/avito-client/internal/avito"
)

// Account is the part of the Avito client the account endpoints read.
type Account interface {
	SelfInfoer
	SelfBalance(ctx context.Context) (*avito.Balance, error)
	SelfRating(ctx context.Context) (*avito.RatingInfo, error)
	Token() *avito.Token
	TokenState() avito.TokenState
}

// AccountHandler exposes the authenticated account's profile, balance,
// rating and token status.
type AccountHandler struct {
	account Account
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(a Account) *AccountHandler {
	return &AccountHandler{account: a}
}

// SelfOutput is the response body for the self endpoint.
type SelfOutput struct {
	Body struct {
		ID         int64  `json:"id"                    example:"100500"       doc:"Account id"`
		Name       string `json:"name"                  example:"Bike Shop"    doc:"Display name"`
		Email      string `json:"email,omitempty"       example:"shop@mail.ru" doc:"Account email"`
		Phone      string `json:"phone,omitempty"       doc:"Account phone"`
		ProfileURL string `json:"profile_url,omitempty" doc:"Public profile URL"`
	}
}

// GetSelf returns the authenticated account.
func (h *AccountHandler) GetSelf(ctx context.Context, _ *struct{}) (*SelfOutput, error) {
	me, err := h.account.SelfInfo(ctx)
	if err != nil {
		return nil, upstreamError("getting self info", err)
	}

	resp := &SelfOutput{}
	resp.Body.ID = me.ID
	resp.Body.Name = me.Name
	resp.Body.Email = me.Email
	resp.Body.Phone = me.Phone
	resp.Body.ProfileURL = me.ProfileURL
	return resp, nil
}

// BalanceOutput is the response body for the balance endpoint.
type BalanceOutput struct {
	Body struct {
		Real  float64 `json:"real"  example:"1500.5" doc:"Wallet balance in rubles"`
		Bonus float64 `json:"bonus" example:"200"    doc:"Bonus balance in rubles"`
	}
}

// GetBalance returns the authenticated account's balance.
func (h *AccountHandler) GetBalance(ctx context.Context, _ *struct{}) (*BalanceOutput, error) {
	b, err := h.account.SelfBalance(ctx)
	if err != nil {
		return nil, upstreamError("getting balance", err)
	}

	resp := &BalanceOutput{}
	resp.Body.Real = b.Real
	resp.Body.Bonus = b.Bonus
	return resp, nil
}

// RatingOutput is the response body for the rating endpoint.
type RatingOutput struct {
	Body struct {
		IsEnabled bool    `json:"is_enabled"           doc:"Whether the account has a rating"`
		Score     float64 `json:"score,omitempty"      example:"4.8" doc:"Average score"`
		Reviews   int     `json:"reviews,omitempty"    example:"37"  doc:"Number of reviews counted"`
	}
}

// GetRating returns the authenticated account's rating.
func (h *AccountHandler) GetRating(ctx context.Context, _ *struct{}) (*RatingOutput, error) {
	r, err := h.account.SelfRating(ctx)
	if err != nil {
		return nil, upstreamError("getting rating", err)
	}

	resp := &RatingOutput{}
	resp.Body.IsEnabled = r.IsEnabled
	if r.Rating != nil {
		resp.Body.Score = r.Rating.Score
		resp.Body.Reviews = r.Rating.ReviewsCount
	}
	return resp, nil
}

// TokenOutput is the response body for the token status endpoint. The
// token itself is never returned.
type TokenOutput struct {
	Body struct {
		State     string     `json:"state"                example:"held" doc:"Token lifecycle state"`
		ExpiresAt *time.Time `json:"expires_at,omitempty" doc:"When the held token expires"`
	}
}

// GetToken returns the client's token lifecycle state.
func (h *AccountHandler) GetToken(_ context.Context, _ *struct{}) (*TokenOutput, error) {
	resp := &TokenOutput{}
	resp.Body.State = h.account.TokenState().String()
	if t := h.account.Token(); t != nil && !t.ExpiresAt.IsZero() {
		exp := t.ExpiresAt
		resp.Body.ExpiresAt = &exp
	}
	return resp, nil
}

// upstreamError maps client failures to HTTP errors: the daily quota
// becomes 429, credential problems 503, everything else 502.
func upstreamError(action string, err error) error {
	var authErr *avito.AuthError
	switch {
	case errors.Is(err, avito.ErrDailyLimitReached):
		return huma.Error429TooManyRequests(action + ": " + err.Error())
	case errors.As(err, &authErr):
		return huma.Error503ServiceUnavailable(action + ": " + err.Error())
	default:
		return huma.Error502BadGateway(action + ": " + err.Error())
	}
}

// RegisterAccountRoutes registers the account endpoints with the Huma API.
func RegisterAccountRoutes(api huma.API, h *AccountHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-self",
		Method:      http.MethodGet,
		Path:        "/api/v1/self",
		Summary:     "Get the authenticated account",
		Tags:        []string{"account"},
	}, h.GetSelf)

	huma.Register(api, huma.Operation{
		OperationID: "get-balance",
		Method:      http.MethodGet,
		Path:        "/api/v1/balance",
		Summary:     "Get the account balance",
		Tags:        []string{"account"},
	}, h.GetBalance)

	huma.Register(api, huma.Operation{
		OperationID: "get-rating",
		Method:      http.MethodGet,
		Path:        "/api/v1/rating",
		Summary:     "Get the account rating",
		Tags:        []string{"account"},
	}, h.GetRating)

	huma.Register(api, huma.Operation{
		OperationID: "get-token",
		Method:      http.MethodGet,
		Path:        "/api/v1/token",
		Summary:     "Get the token lifecycle state",
		Description: "Returns the state and expiry of the bearer token without revealing it.",
		Tags:        []string{"account"},
	}, h.GetToken)
}
