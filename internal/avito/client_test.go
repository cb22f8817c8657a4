package avito_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/avito-client/internal/avito"
)

func TestCall_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		body      string
		wantID    int64
		checkErr  func(t *testing.T, err error)
		wantCalls int32
	}{
		{
			name:      "success decodes declared type",
			status:    http.StatusOK,
			body:      selfJSON,
			wantID:    100,
			wantCalls: 1,
		},
		{
			name:   "200 with non-JSON body is a transport error",
			status: http.StatusOK,
			body:   "<html>oops</html>",
			checkErr: func(t *testing.T, err error) {
				var te *avito.TransportError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, http.StatusOK, te.StatusCode)
				assert.Equal(t, "<html>oops</html>", te.Body)
			},
			wantCalls: 1,
		},
		{
			name:   "error envelope is an API error",
			status: http.StatusNotFound,
			body:   `{"error":{"code":404,"message":"chat not found"}}`,
			checkErr: func(t *testing.T, err error) {
				var ae *avito.APIError
				require.ErrorAs(t, err, &ae)
				require.NotNil(t, ae.Code)
				assert.Equal(t, 404, *ae.Code)
				assert.Equal(t, "chat not found", ae.Message)
				assert.Equal(t, http.StatusNotFound, ae.StatusCode)
			},
			wantCalls: 1,
		},
		{
			name:   "error envelope with null code",
			status: http.StatusBadRequest,
			body:   `{"error":{"code":null,"message":"bad request"}}`,
			checkErr: func(t *testing.T, err error) {
				var ae *avito.APIError
				require.ErrorAs(t, err, &ae)
				assert.Nil(t, ae.Code)
				assert.Contains(t, ae.Error(), "bad request")
			},
			wantCalls: 1,
		},
		{
			name:   "unrecognized JSON error is a transport error",
			status: http.StatusInternalServerError,
			body:   `{"something":"else"}`,
			checkErr: func(t *testing.T, err error) {
				var te *avito.TransportError
				require.ErrorAs(t, err, &te)
				assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
			},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := newServer(t, &tokenIssuer{}, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				assert.Equal(t, "/core/v1/accounts/self", r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)
				writeJSON(w, tt.status, tt.body)
			})

			c := newClient(srv, avito.WithToken("static"))
			got, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})

			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.checkErr != nil {
				require.Error(t, err)
				tt.checkErr(t, err)
				assert.Zero(t, got.ID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, "Test Shop", got.Name)
			assert.Same(t, c, got.Client())
		})
	}
}

func TestCall_SendsBearerToken(t *testing.T) {
	t.Parallel()

	srv := newServer(t, &tokenIssuer{}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer static-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Content-Type"), "GET sends no body")
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		writeJSON(w, http.StatusOK, `{"isEnabled":true,"rating":{"reviewsCount":21,"reviewsWithScoreCount":12,"score":4.3}}`)
	})

	c := newClient(srv, avito.WithToken("static-token"))
	info, err := c.SelfRating(t.Context())
	require.NoError(t, err)
	assert.True(t, info.IsEnabled)
	require.NotNil(t, info.Rating)
	assert.InDelta(t, 4.3, info.Rating.Score, 0.001)
	assert.Equal(t, 21, info.Rating.ReviewsCount)
}

func TestCall_LazyAcquisition(t *testing.T) {
	t.Parallel()

	issuer := &tokenIssuer{}
	srv := newServer(t, issuer, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, selfJSON)
	})

	c := newClient(srv)
	assert.Equal(t, avito.TokenNone, c.TokenState())
	assert.Nil(t, c.Token())

	_, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})
	require.NoError(t, err)
	_, err = avito.Call(t.Context(), c, avito.GetUserInfoSelf{})
	require.NoError(t, err)

	assert.Equal(t, int32(1), issuer.calls.Load())
	assert.Equal(t, avito.TokenHeld, c.TokenState())
	require.NotNil(t, c.Token())
	assert.Equal(t, "token-1", c.Token().AccessToken)
	assert.False(t, c.Token().Expired())
}

func TestCall_AcquisitionFailureSkipsRequest(t *testing.T) {
	t.Parallel()

	var tokenCalls, apiCalls atomic.Int32
	issuer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		writeJSON(w, http.StatusBadRequest,
			`{"error":"invalid_client","error_description":"client authentication failed"}`)
	})
	srv := newServer(t, issuer, func(w http.ResponseWriter, _ *http.Request) {
		apiCalls.Add(1)
		writeJSON(w, http.StatusOK, selfJSON)
	})

	c := newClient(srv)

	_, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})
	var authErr *avito.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, err.Error(), "invalid_client: client authentication failed")
	assert.Equal(t, int32(0), apiCalls.Load())
	assert.Equal(t, avito.TokenNone, c.TokenState())

	// The next call starts acquisition from scratch.
	_, err = avito.Call(t.Context(), c, avito.GetUserInfoSelf{})
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, int32(2), tokenCalls.Load())
	assert.Equal(t, int32(0), apiCalls.Load())
}

func TestCall_NoCredentials(t *testing.T) {
	t.Parallel()

	var apiCalls atomic.Int32
	srv := newServer(t, &tokenIssuer{}, func(w http.ResponseWriter, _ *http.Request) {
		apiCalls.Add(1)
		writeJSON(w, http.StatusOK, selfJSON)
	})

	c := avito.New(avito.WithBaseURL(srv.URL))
	_, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})

	require.ErrorIs(t, err, avito.ErrNoCredentials)
	var authErr *avito.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, int32(0), apiCalls.Load())
}

func TestCall_RefreshAndRetryOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		reject string
	}{
		{"expired token envelope", http.StatusForbidden, expiredJSON},
		{"api error access token expired", http.StatusUnauthorized, `{"error":{"code":401,"message":"access token expired"}}`},
		{"api error unauthorized prefix", http.StatusUnauthorized, `{"error":{"code":null,"message":"unauthorized_client"}}`},
		{"api error invalid access token", http.StatusUnauthorized, `{"error":{"code":401,"message":"Invalid access token"}}`},
		{"non-JSON invalid access token", http.StatusUnauthorized, `invalid access token`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issuer := &tokenIssuer{}
			var apiCalls atomic.Int32
			srv := newServer(t, issuer, func(w http.ResponseWriter, r *http.Request) {
				apiCalls.Add(1)
				if r.Header.Get("Authorization") == "Bearer stale" {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.reject))
					return
				}
				assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
				writeJSON(w, http.StatusOK, selfJSON)
			})

			c := newClient(srv, avito.WithToken("stale"))
			got, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})

			require.NoError(t, err)
			assert.Equal(t, int64(100), got.ID)
			assert.Equal(t, int32(1), issuer.calls.Load(), "exactly one refresh")
			assert.Equal(t, int32(2), apiCalls.Load(), "original call plus one retry")
			assert.Equal(t, "token-1", c.Token().AccessToken)
			assert.Equal(t, avito.TokenHeld, c.TokenState())
		})
	}
}

func TestCall_SecondExpiryIsReturnedUnchanged(t *testing.T) {
	t.Parallel()

	issuer := &tokenIssuer{}
	var apiCalls atomic.Int32
	srv := newServer(t, issuer, func(w http.ResponseWriter, r *http.Request) {
		n := apiCalls.Add(1)
		if n == 1 {
			writeJSON(w, http.StatusForbidden, expiredJSON)
			return
		}
		writeJSON(w, http.StatusForbidden, `{"result":{"message":"access token expired again","status":false}}`)
	})

	c := newClient(srv, avito.WithToken("stale"))
	_, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})

	var expired *avito.ExpiredTokenError
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, "access token expired again", expired.Message)
	assert.Equal(t, err, error(expired), "retry result is not wrapped")
	assert.Equal(t, int32(1), issuer.calls.Load())
	assert.Equal(t, int32(2), apiCalls.Load())
}

func TestCall_OtherErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api error", http.StatusBadRequest, `{"error":{"code":400,"message":"wrong chat id"}}`},
		{"server error", http.StatusBadGateway, `bad gateway`},
		{"non-JSON success", http.StatusOK, `ok`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issuer := &tokenIssuer{}
			var apiCalls atomic.Int32
			srv := newServer(t, issuer, func(w http.ResponseWriter, _ *http.Request) {
				apiCalls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			c := newClient(srv, avito.WithToken("static"))
			_, err := avito.Call(t.Context(), c, avito.GetRatingsInfo{})

			require.Error(t, err)
			assert.Equal(t, int32(0), issuer.calls.Load())
			assert.Equal(t, int32(1), apiCalls.Load())
			assert.Equal(t, "static", c.Token().AccessToken)
		})
	}
}

func TestCall_RefreshFailureIsAuthError(t *testing.T) {
	t.Parallel()

	issuer := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":"invalid_client","error_description":"revoked"}`)
	})
	var apiCalls atomic.Int32
	srv := newServer(t, issuer, func(w http.ResponseWriter, _ *http.Request) {
		apiCalls.Add(1)
		writeJSON(w, http.StatusForbidden, expiredJSON)
	})

	c := newClient(srv, avito.WithToken("stale"))
	_, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})

	var authErr *avito.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, int32(1), apiCalls.Load(), "no retry without a fresh token")
	assert.Equal(t, "stale", c.Token().AccessToken, "prior token is kept")
	assert.Equal(t, avito.TokenInvalidated, c.TokenState())
}

func TestCall_ProactiveRefresh(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		proactive     bool
		wantAPICalls  int32
		wantFirstAuth string
	}{
		{
			name:          "expired token is renewed before use",
			proactive:     true,
			wantAPICalls:  1,
			wantFirstAuth: "Bearer token-1",
		},
		{
			name:          "reactive path catches the stale token",
			proactive:     false,
			wantAPICalls:  2,
			wantFirstAuth: "Bearer old",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issuer := &tokenIssuer{}
			var (
				mu    sync.Mutex
				auths []string
			)
			srv := newServer(t, issuer, func(w http.ResponseWriter, r *http.Request) {
				mu.Lock()
				auths = append(auths, r.Header.Get("Authorization"))
				mu.Unlock()
				if r.Header.Get("Authorization") == "Bearer old" {
					writeJSON(w, http.StatusForbidden, expiredJSON)
					return
				}
				writeJSON(w, http.StatusOK, selfJSON)
			})

			now := base.Add(2 * time.Hour)
			c := newClient(srv,
				avito.WithProactiveRefresh(tt.proactive),
				avito.WithNowFunc(func() time.Time { return now }),
			)
			c.SetToken(avito.NewToken("old", 3600, base))

			_, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})
			require.NoError(t, err)

			mu.Lock()
			defer mu.Unlock()
			assert.Len(t, auths, int(tt.wantAPICalls))
			assert.Equal(t, tt.wantFirstAuth, auths[0])
			assert.Equal(t, int32(1), issuer.calls.Load())
			assert.Equal(t, now.Add(24*time.Hour), c.Token().ExpiresAt)
		})
	}
}

func TestCall_OAuthTokenRefreshesWithRefreshToken(t *testing.T) {
	t.Parallel()

	var tokenCalls atomic.Int32
	issuer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "r1", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "test-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "test-secret", r.PostForm.Get("client_secret"))
		writeJSON(w, http.StatusOK,
			`{"access_token":"user-2","expires_in":86400,"token_type":"Bearer","refresh_token":"r2","scope":"messenger:read"}`)
	})
	srv := newServer(t, issuer, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer user-1" {
			writeJSON(w, http.StatusForbidden, expiredJSON)
			return
		}
		writeJSON(w, http.StatusOK, selfJSON)
	})

	c := newClient(srv)
	c.SetToken(&avito.Token{AccessToken: "user-1", RefreshToken: "r1", TokenType: "Bearer"})

	_, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})
	require.NoError(t, err)

	tok := c.Token()
	assert.Equal(t, "user-2", tok.AccessToken)
	assert.Equal(t, "r2", tok.RefreshToken)
	assert.Equal(t, avito.KindOAuth, tok.Kind())
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestClient_ExchangeCode(t *testing.T) {
	t.Parallel()

	issuer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK,
			`{"access_token":"user-1","expires_in":86400,"token_type":"Bearer","refresh_token":"r1","scope":"messenger:read"}`)
	})
	srv := newServer(t, issuer, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, selfJSON)
	})

	c := newClient(srv)
	tok, err := c.ExchangeCode(t.Context(), "the-code")
	require.NoError(t, err)

	assert.Equal(t, "user-1", tok.AccessToken)
	assert.Equal(t, avito.KindOAuth, tok.Kind())
	assert.Equal(t, "messenger:read", tok.Scope)
	assert.Equal(t, avito.TokenHeld, c.TokenState())
	assert.Same(t, c, tok.Client())
}

func TestClient_RefreshToken(t *testing.T) {
	t.Parallel()

	issuer := &tokenIssuer{}
	srv := newServer(t, issuer, func(w http.ResponseWriter, _ *http.Request) {})

	c := newClient(srv, avito.WithToken("old"))
	tok, err := c.RefreshToken(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "token-1", tok.AccessToken)

	tok, err = c.RefreshToken(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "token-2", tok.AccessToken)
	assert.Equal(t, int32(2), issuer.calls.Load())
}

func TestCall_GrantDescriptorHoldsToken(t *testing.T) {
	t.Parallel()

	var (
		exchanges atomic.Int32
		bearer    atomic.Value
	)
	issuer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := exchanges.Add(1)
		bearer.Store(r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON(fmt.Sprintf("token-%d", n+1)))
	})
	srv := newServer(t, issuer, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, selfJSON)
	})

	c := newClient(srv)
	held := avito.NewToken("token-1", 3600, time.Now())
	held.Bind(c)
	c.SetToken(held)

	fresh, err := avito.Send(t.Context(), held.Refresh("test-id", "test-secret"))
	require.NoError(t, err)

	assert.Equal(t, int32(1), exchanges.Load())
	assert.Empty(t, bearer.Load())
	assert.Equal(t, "token-2", fresh.AccessToken)
	assert.False(t, fresh.ExpiresAt.IsZero())
	require.NotNil(t, c.Token())
	assert.Equal(t, "token-2", c.Token().AccessToken)
	assert.Equal(t, avito.TokenHeld, c.TokenState())
}

func TestCall_GrantDescriptorOnUnheldClient(t *testing.T) {
	t.Parallel()

	issuer := &tokenIssuer{}
	srv := newServer(t, issuer, func(w http.ResponseWriter, _ *http.Request) {})

	rl := avito.NewRateLimiter(1000, 10, 1)
	c := newClient(srv, avito.WithRateLimiter(rl))

	for range 2 {
		_, err := avito.Call(t.Context(), c, avito.GetToken{ClientID: "test-id", ClientSecret: "test-secret"})
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), issuer.calls.Load())
	assert.Equal(t, "token-2", c.Token().AccessToken)
	assert.Zero(t, rl.DailyCount())
}

func TestCall_GrantDescriptorKeepsRefreshToken(t *testing.T) {
	t.Parallel()

	issuer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "r1", r.PostForm.Get("refresh_token"))
		writeJSON(w, http.StatusOK, `{"access_token":"user-2","expires_in":86400,"token_type":"Bearer"}`)
	})
	srv := newServer(t, issuer, func(w http.ResponseWriter, _ *http.Request) {})

	c := newClient(srv)
	tok, err := avito.Call(t.Context(), c, avito.RefreshOAuthToken{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		RefreshToken: "r1",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-2", tok.AccessToken)
	assert.Equal(t, "r1", c.Token().RefreshToken)
	assert.Equal(t, avito.KindOAuth, c.Token().Kind())
}

func TestCall_CanceledContextSkipsAcquisition(t *testing.T) {
	t.Parallel()

	issuer := &tokenIssuer{}
	srv := newServer(t, issuer, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, selfJSON)
	})

	c := newClient(srv)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := avito.Call(ctx, c, avito.GetUserInfoSelf{})
	require.ErrorIs(t, err, context.Canceled)
	var authErr *avito.AuthError
	require.ErrorAs(t, err, &authErr)

	assert.Never(t, func() bool {
		return issuer.calls.Load() > 0
	}, 50*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, avito.TokenNone, c.TokenState())
	assert.Nil(t, c.Token())
}

func TestCall_ConcurrentAcquisition(t *testing.T) {
	t.Parallel()

	var tokenCalls atomic.Int32
	issuer := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		tokenCalls.Add(1)
		time.Sleep(20 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("shared"))
	})
	srv := newServer(t, issuer, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer shared", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, selfJSON)
	})

	c := newClient(srv)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := avito.Call(context.Background(), c, avito.GetUserInfoSelf{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, avito.TokenHeld, c.TokenState())
	require.NotNil(t, c.Token())
	assert.Equal(t, "shared", c.Token().AccessToken)
	assert.False(t, c.Token().Expired())
	assert.GreaterOrEqual(t, tokenCalls.Load(), int32(1))
	assert.LessOrEqual(t, tokenCalls.Load(), int32(workers))
}

func TestCall_CanceledAcquisitionLeavesNoPartialToken(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	issuer := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("late"))
	})
	srv := newServer(t, issuer, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, selfJSON)
	})

	c := newClient(srv)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		_, err := avito.Call(ctx, c, avito.GetUserInfoSelf{})
		done <- err
	}()

	require.Eventually(t, func() bool {
		return c.TokenState() == avito.TokenAcquiring
	}, time.Second, 5*time.Millisecond)
	cancel()

	err := <-done
	require.ErrorIs(t, err, context.Canceled)
	var authErr *avito.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Nil(t, c.Token())

	close(release)
	require.Eventually(t, func() bool {
		return c.TokenState() == avito.TokenHeld
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "late", c.Token().AccessToken)
}

func TestCall_NetworkFailureIsTransportError(t *testing.T) {
	t.Parallel()

	c := avito.New(
		avito.WithBaseURL("http://127.0.0.1:1"),
		avito.WithToken("static"),
		avito.WithHTTPClient(&http.Client{Timeout: time.Second}),
	)
	_, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})

	var te *avito.TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.StatusCode)
	assert.False(t, errors.Is(err, avito.ErrUnbound))
}

func TestCall_RateLimited(t *testing.T) {
	t.Parallel()

	var apiCalls atomic.Int32
	srv := newServer(t, &tokenIssuer{}, func(w http.ResponseWriter, _ *http.Request) {
		apiCalls.Add(1)
		writeJSON(w, http.StatusOK, selfJSON)
	})

	rl := avito.NewRateLimiter(1000, 10, 2)
	c := newClient(srv, avito.WithToken("static"), avito.WithRateLimiter(rl))

	for range 2 {
		_, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})
		require.NoError(t, err)
	}
	_, err := avito.Call(t.Context(), c, avito.GetUserInfoSelf{})
	require.ErrorIs(t, err, avito.ErrDailyLimitReached)
	assert.Equal(t, int32(2), apiCalls.Load())
}
