package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/personal-finance/internal/core/ports"
)

// SummaryHandler serves the derived views: totals, breakdown and budgets.
type SummaryHandler struct {
	ledger   ports.LedgerService
	settings ports.SettingsService
}

func NewSummaryHandler(ledger ports.LedgerService, settings ports.SettingsService) *SummaryHandler {
	return &SummaryHandler{ledger: ledger, settings: settings}
}

// Summary handles GET /v1/summary.
//
// @Summary      Totals, expense breakdown, monthly limit and recent transactions
// @Tags         summary
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  summaryResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /v1/summary [get]
func (h *SummaryHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()
	ov, err := h.ledger.Overview(ctx)
	if err != nil {
		return err
	}
	recent, err := h.ledger.ListTransactions(ctx, recentLimit)
	if err != nil {
		return err
	}
	hidden, err := privateMode(ctx, h.settings)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSummaryResponse(ov, recent, hidden))
}

// Challenge handles GET /v1/challenge.
//
// @Summary      Savings challenge progress
// @Tags         summary
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  challengeResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /v1/challenge [get]
func (h *SummaryHandler) Challenge(c echo.Context) error {
	ctx := c.Request().Context()
	ch, err := h.ledger.Challenge(ctx)
	if err != nil {
		return err
	}
	hidden, err := privateMode(ctx, h.settings)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, challengeResponse{
		CategoryID:     ch.CategoryID,
		CategoryName:   ch.CategoryName,
		budgetResponse: toBudgetResponse(ch.BudgetProgress, hidden),
	})
}
