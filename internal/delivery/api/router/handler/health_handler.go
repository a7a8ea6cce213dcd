package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// HealthHandler reports liveness and database reachability
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) (*HealthHandler, error) {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return nil, err
	}

	return NewHealthHandlerForPinger(sqlDB, params.Logger), nil
}

// NewHealthHandlerForPinger builds a HealthHandler around any pingable dependency
func NewHealthHandlerForPinger(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthCheck answers 200 when the database responds, 503 otherwise
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, healthStatus{Status: "degraded", Database: "unreachable"})
	}

	return c.JSON(http.StatusOK, healthStatus{Status: "ok", Database: "ok"})
}
