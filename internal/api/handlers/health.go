// Package handlers implements HTTP handlers for the avito-client API.
package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/avito-client/internal/avito"
)

// SelfInfoer resolves the authenticated account.
type SelfInfoer interface {
	SelfInfo(ctx context.Context) (*avito.UserInfoSelf, error)
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	account SelfInfoer
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(a SelfInfoer) *HealthHandler {
	return &HealthHandler{account: a}
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Description Returns 200 if the process is running.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 once the account can be resolved with the configured
// credentials, 503 otherwise. Self info is memoized so only the first
// successful probe reaches Avito.
//
// @Summary Readiness check
// @Description Returns 200 if Avito accepts the configured credentials, 503 otherwise.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 503 {object} StatusResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	if _, err := h.account.SelfInfo(c.Request().Context()); err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			StatusResponse{Status: "unavailable"},
		)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
