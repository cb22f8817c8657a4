package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/avito-client/internal/api/handlers"
	"github.com/donaldgifford/avito-client/internal/api/handlers/mocks"
	"github.com/donaldgifford/avito-client/internal/avito"
)

func TestHealthz(t *testing.T) {
	t.Parallel()

	// Liveness never reaches Avito.
	h := handlers.NewHealthHandler(mocks.NewMockSelfInfoer(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Healthz(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		self       *avito.UserInfoSelf
		selfErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "returns 200 when self info resolves",
			self:       &avito.UserInfoSelf{ID: 100},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
		{
			name:       "returns 503 when credentials are rejected",
			selfErr:    &avito.AuthError{Err: errors.New("invalid_client")},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account := mocks.NewMockSelfInfoer(t)
			account.EXPECT().SelfInfo(mock.Anything).Return(tt.self, tt.selfErr).Once()
			h := handlers.NewHealthHandler(account)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Readyz(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
