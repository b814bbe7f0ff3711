package handler

import (
	"net/http"

	"comanda/internal/delivery/http/response"
	"comanda/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck reports liveness for the desktop shell's readiness probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	ViewCache service.ViewCache
}

// SystemHandler exposes the view-cache generations so the UI can detect stale
// cached screens.
type SystemHandler struct {
	viewCache service.ViewCache
}

// NewSystemHandler is the constructor for SystemHandler
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		viewCache: params.ViewCache,
	}
}

// GetViewGenerations handles reporting the current generation of each view
func (h *SystemHandler) GetViewGenerations(c echo.Context) error {
	generations := map[string]uint64{
		service.ViewOrders:     h.viewCache.Generation(service.ViewOrders),
		service.ViewCatalog:    h.viewCache.Generation(service.ViewCatalog),
		service.ViewOrderEntry: h.viewCache.Generation(service.ViewOrderEntry),
	}

	return response.Success(c, http.StatusOK, generations, "View generations retrieved successfully")
}
