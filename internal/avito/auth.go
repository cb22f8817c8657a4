package avito

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/avito-client/internal/metrics"
)

// GrantType is the OAuth grant used against the token endpoint.
type GrantType string

// Supported grants.
const (
	GrantAuthorizationCode GrantType = "authorization_code"
	GrantClientCredentials GrantType = "client_credentials"
	GrantRefreshToken      GrantType = "refresh_token"
)

const tokenPath = "token"

// grant is implemented by the token endpoint descriptors. Call sends them
// without a bearer token, outside the rate limiter, and holds the token
// they return.
type grant interface {
	grantKind() TokenKind
}

func (GetToken) grantKind() TokenKind { return KindClientCredentials }

func (GetTokenOAuth) grantKind() TokenKind { return KindOAuth }

func (RefreshOAuthToken) grantKind() TokenKind { return KindOAuth }

// GetToken exchanges client credentials for an access token.
type GetToken struct {
	Returns[Token]

	ClientID     string    `url:"client_id"`
	ClientSecret string    `url:"client_secret"`
	GrantType    GrantType `url:"grant_type"`
}

// Path implements Method.
func (GetToken) Path() string { return tokenPath }

func (m GetToken) withDefaults() any {
	if m.GrantType == "" {
		m.GrantType = GrantClientCredentials
	}
	return m
}

// GetTokenOAuth exchanges an authorization code from the user OAuth flow for
// an access token and a refresh token.
type GetTokenOAuth struct {
	Returns[Token]

	ClientID     string    `url:"client_id"`
	ClientSecret string    `url:"client_secret"`
	Code         string    `url:"code"`
	GrantType    GrantType `url:"grant_type"`
}

// Path implements Method.
func (GetTokenOAuth) Path() string { return tokenPath }

func (m GetTokenOAuth) withDefaults() any {
	if m.GrantType == "" {
		m.GrantType = GrantAuthorizationCode
	}
	return m
}

// RefreshOAuthToken mints a new access token from a stored refresh token
// without re-prompting the user.
type RefreshOAuthToken struct {
	Returns[Token]

	ClientID     string    `url:"client_id"`
	ClientSecret string    `url:"client_secret"`
	GrantType    GrantType `url:"grant_type"`
	RefreshToken string    `url:"refresh_token"`
}

// Path implements Method.
func (RefreshOAuthToken) Path() string { return tokenPath }

func (m RefreshOAuthToken) withDefaults() any {
	if m.GrantType == "" {
		m.GrantType = GrantRefreshToken
	}
	return m
}

// Token returns the currently held token, or nil before the first
// acquisition. The returned token must not be modified.
func (c *Client) Token() *Token {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the held token.
func (c *Client) SetToken(t *Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = t
	if t != nil && t.AccessToken != "" {
		c.state = TokenHeld
	} else {
		c.state = TokenNone
	}
}

// TokenState returns the client's current token lifecycle state.
func (c *Client) TokenState() TokenState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// RefreshToken forces a token renewal and returns the new token.
func (c *Client) RefreshToken(ctx context.Context) (*Token, error) {
	stale := ""
	if t := c.Token(); t != nil {
		stale = t.AccessToken
	}
	return c.renew(ctx, stale, TokenRefreshing)
}

// ExchangeCode completes the user OAuth flow: it trades an authorization
// code for a token pair and holds the result. Later refreshes use the
// refresh token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	m := GetTokenOAuth{ClientID: c.clientID, ClientSecret: c.clientSecret, Code: code}

	var tok Token
	if err := c.roundTrip(ctx, m, "", &tok); err != nil {
		metrics.AvitoTokenExchangesTotal.WithLabelValues(KindOAuth.String(), "error").Inc()
		c.inst.recordExchange(ctx, KindOAuth.String(), "error")
		return nil, &AuthError{Err: err}
	}
	tok.issue(c.nowFunc())
	bindAll(c, &tok)
	metrics.AvitoTokenExchangesTotal.WithLabelValues(KindOAuth.String(), "success").Inc()
	c.inst.recordExchange(ctx, KindOAuth.String(), "success")

	c.SetToken(&tok)
	return &tok, nil
}

// callGrant sends a token endpoint descriptor unauthenticated and makes the
// returned token the held one.
func callGrant[T any](ctx context.Context, c *Client, m Method[T], kind TokenKind) (T, error) {
	result, err := callOnce(ctx, c, m, "")
	if err != nil {
		metrics.AvitoTokenExchangesTotal.WithLabelValues(kind.String(), "error").Inc()
		c.inst.recordExchange(ctx, kind.String(), "error")
		return result, err
	}

	if tok, ok := any(&result).(*Token); ok && tok.AccessToken != "" {
		tok.issue(c.nowFunc())
		if r, ok := any(m).(RefreshOAuthToken); ok && tok.RefreshToken == "" {
			tok.RefreshToken = r.RefreshToken
		}
		held := *tok
		c.SetToken(&held)
	}

	metrics.AvitoTokenExchangesTotal.WithLabelValues(kind.String(), "success").Inc()
	c.inst.recordExchange(ctx, kind.String(), "success")
	return result, nil
}

// ensureToken returns a usable access token, acquiring one on first use and
// refreshing a token already known to be expired.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	tok := c.Token()
	if tok == nil || tok.AccessToken == "" {
		c.log.Info("token is not set, acquiring", "client_id", c.clientID)
		t, err := c.renew(ctx, "", TokenAcquiring)
		if err != nil {
			return "", err
		}
		return t.AccessToken, nil
	}

	if c.proactive && tok.ExpiredAt(c.nowFunc()) {
		c.markStale(tok.AccessToken, TokenExpired)
		t, err := c.renew(ctx, tok.AccessToken, TokenRefreshing)
		if err != nil {
			return "", err
		}
		return t.AccessToken, nil
	}

	return tok.AccessToken, nil
}

// markStale moves the lifecycle to state if access is still the held token.
func (c *Client) markStale(access string, state TokenState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != nil && c.token.AccessToken == access {
		c.state = state
	}
}

// renew replaces the token whose access string is stale. Concurrent callers
// share a single exchange, and a caller whose token was already replaced
// gets the new one without another exchange. The held token is swapped only
// after a successful exchange; on failure the previous token and state are
// left untouched.
func (c *Client) renew(ctx context.Context, stale string, during TokenState) (*Token, error) {
	// A caller that is already gone never starts an exchange.
	if err := ctx.Err(); err != nil {
		return nil, &AuthError{Err: err}
	}

	ch := c.flight.DoChan("token", func() (any, error) {
		c.mu.Lock()
		if c.token != nil && c.token.AccessToken != "" && c.token.AccessToken != stale {
			current := c.token
			c.mu.Unlock()
			return current, nil
		}
		prevState := c.state
		current := c.token
		c.state = during
		c.mu.Unlock()

		// The exchange outlives a canceled caller so that other waiters
		// still get a result and the token is never half replaced.
		tok, err := c.exchange(context.WithoutCancel(ctx), current)

		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.state = prevState
			return nil, err
		}
		c.token = tok
		c.state = TokenHeld
		return tok, nil
	})

	select {
	case <-ctx.Done():
		return nil, &AuthError{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Token), nil //nolint:forcetypeassert // flight only returns *Token
	}
}

// exchange runs the grant matching the current token's kind.
func (c *Client) exchange(ctx context.Context, current *Token) (*Token, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, &AuthError{Err: ErrNoCredentials}
	}

	kind := KindClientCredentials
	var m endpoint = GetToken{ClientID: c.clientID, ClientSecret: c.clientSecret}
	if current != nil && current.Kind() == KindOAuth {
		kind = KindOAuth
		m = RefreshOAuthToken{
			ClientID:     c.clientID,
			ClientSecret: c.clientSecret,
			RefreshToken: current.RefreshToken,
		}
	}

	ctx, span := c.tracer.Start(ctx, "avito.token_exchange")
	defer span.End()
	span.SetAttributes(attribute.String("avito.token_kind", kind.String()))

	var tok Token
	if err := c.roundTrip(ctx, m, "", &tok); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exchange failed")
		metrics.AvitoTokenExchangesTotal.WithLabelValues(kind.String(), "error").Inc()
		c.inst.recordExchange(ctx, kind.String(), "error")
		c.log.Error("token exchange failed", "client_id", c.clientID, "kind", kind, "error", err)
		return nil, &AuthError{Err: err}
	}
	if tok.AccessToken == "" {
		metrics.AvitoTokenExchangesTotal.WithLabelValues(kind.String(), "error").Inc()
		c.inst.recordExchange(ctx, kind.String(), "error")
		return nil, &AuthError{Err: errors.New("token response has no access_token")}
	}

	// An OAuth refresh response may omit the refresh token; keep the old one.
	if kind == KindOAuth && tok.RefreshToken == "" {
		tok.RefreshToken = current.RefreshToken
	}
	tok.issue(c.nowFunc())
	bindAll(c, &tok)

	metrics.AvitoTokenExchangesTotal.WithLabelValues(kind.String(), "success").Inc()
	c.inst.recordExchange(ctx, kind.String(), "success")
	c.log.Info("token acquired",
		"client_id", c.clientID,
		"kind", kind,
		"expires_at", tok.ExpiresAt.Format(time.RFC3339),
	)
	return &tok, nil
}
