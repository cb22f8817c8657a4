package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/avito-client/internal/api/handlers"
	"github.com/donaldgifford/avito-client/internal/avito"
)

func TestGetQuota(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rl          *avito.RateLimiter
		preCalls    int
		wantEnabled bool
		wantLimit   int64
		wantUsed    int64
		wantRemain  int64
	}{
		{
			name: "nil rate limiter returns zeroes",
			rl:   nil,
		},
		{
			name:        "fresh rate limiter",
			rl:          avito.NewRateLimiter(100, 10, 5000),
			wantEnabled: true,
			wantLimit:   5000,
			wantRemain:  5000,
		},
		{
			name:        "rate limiter with usage",
			rl:          avito.NewRateLimiter(100, 10, 100),
			preCalls:    3,
			wantEnabled: true,
			wantLimit:   100,
			wantUsed:    3,
			wantRemain:  97,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.rl != nil {
				for range tt.preCalls {
					require.NoError(t, tt.rl.Wait(t.Context()))
				}
			}

			_, api := humatest.New(t)
			handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(tt.rl))

			resp := api.Get("/api/v1/quota")
			require.Equal(t, http.StatusOK, resp.Code)

			var body struct {
				Enabled    bool  `json:"enabled"`
				DailyLimit int64 `json:"daily_limit"`
				DailyUsed  int64 `json:"daily_used"`
				Remaining  int64 `json:"remaining"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.wantEnabled, body.Enabled)
			assert.Equal(t, tt.wantLimit, body.DailyLimit)
			assert.Equal(t, tt.wantUsed, body.DailyUsed)
			assert.Equal(t, tt.wantRemain, body.Remaining)
			assert.Contains(t, resp.Body.String(), `"reset_at"`)
		})
	}
}

func TestGetQuota_ResetAtValue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	rl := avito.NewRateLimiter(
		5, 10, 5000,
		avito.WithRateLimiterNowFunc(func() time.Time { return now }),
	)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)

	// ResetAt should be 24 hours from now.
	assert.Contains(t, resp.Body.String(), "2025-06-16T14:30:00Z")
}
