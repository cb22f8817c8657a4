package avito

import (
	"encoding/json"
	"time"
)

// TokenKind distinguishes how a token is renewed.
type TokenKind int

const (
	// KindClientCredentials tokens are renewed with a fresh client
	// credentials grant.
	KindClientCredentials TokenKind = iota
	// KindOAuth tokens come from the user authorization flow and are renewed
	// with their refresh token.
	KindOAuth
)

// String returns the kind name.
func (k TokenKind) String() string {
	if k == KindOAuth {
		return "oauth"
	}
	return "client_credentials"
}

// Token is an access token returned by the token endpoint. ExpiresAt is
// captured when the token is decoded (issued-at + expires_in); a zero
// ExpiresAt means the expiry is unknown, as for tokens supplied by callers.
type Token struct {
	Object

	AccessToken  string    `json:"access_token"`
	ExpiresIn    int       `json:"expires_in"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Scope        string    `json:"scope,omitempty"`
	ExpiresAt    time.Time `json:"-"`
}

// NewToken builds a token issued at issuedAt.
func NewToken(accessToken string, expiresIn int, issuedAt time.Time) *Token {
	t := &Token{AccessToken: accessToken, ExpiresIn: expiresIn, TokenType: "Bearer"}
	t.issue(issuedAt)
	return t
}

// UnmarshalJSON decodes the token and stamps its absolute expiry.
func (t *Token) UnmarshalJSON(data []byte) error {
	type plain Token
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Token(p)
	t.issue(time.Now())
	return nil
}

func (t *Token) issue(at time.Time) {
	if t.ExpiresIn > 0 {
		t.ExpiresAt = at.Add(time.Duration(t.ExpiresIn) * time.Second)
	}
}

// Kind reports how the token is renewed.
func (t *Token) Kind() TokenKind {
	if t.RefreshToken != "" {
		return KindOAuth
	}
	return KindClientCredentials
}

// ExpiredAt reports whether the token is expired at now.
func (t *Token) ExpiredAt(now time.Time) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(t.ExpiresAt)
}

// Expired reports whether the token is expired by the wall clock.
func (t *Token) Expired() bool {
	return t.ExpiredAt(time.Now())
}

// Refresh returns the descriptor that renews this token, bound to the same
// client as the token.
func (t *Token) Refresh(clientID, clientSecret string) BoundMethod[Token] {
	if t.Kind() == KindOAuth {
		m := RefreshOAuthToken{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RefreshToken: t.RefreshToken,
		}
		m.Bind(t.Client())
		return m
	}
	m := GetToken{ClientID: clientID, ClientSecret: clientSecret}
	m.Bind(t.Client())
	return m
}

// TokenState is the client's position in the token lifecycle.
type TokenState int

// Token lifecycle states.
const (
	TokenNone TokenState = iota
	TokenAcquiring
	TokenHeld
	TokenExpired
	TokenInvalidated
	TokenRefreshing
)

// String returns the state name.
func (s TokenState) String() string {
	switch s {
	case TokenNone:
		return "none"
	case TokenAcquiring:
		return "acquiring"
	case TokenHeld:
		return "held"
	case TokenExpired:
		return "expired"
	case TokenInvalidated:
		return "invalidated"
	case TokenRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}
