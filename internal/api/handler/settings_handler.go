package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/personal-finance/internal/api/metrics"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /v1/settings.
//
// @Summary      Display settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  settingsResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSettingsResponse(s))
}

// Toggle handles POST /v1/settings/:name/toggle.
//
// @Summary      Toggle dark_mode or private_mode
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "dark_mode | private_mode"
// @Success      200   {object}  settingsResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /v1/settings/{name}/toggle [post]
func (h *SettingsHandler) Toggle(c echo.Context) error {
	name := c.Param("name")
	s, err := h.settings.Toggle(c.Request().Context(), name)
	if err != nil {
		return err
	}
	metrics.SettingsToggledTotal.WithLabelValues(name).Inc()
	return c.JSON(http.StatusOK, toSettingsResponse(s))
}
