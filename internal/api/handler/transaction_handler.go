package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/personal-finance/internal/api/metrics"
	"github.com/fintrack/personal-finance/internal/core/domain"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

// TransactionHandler handles the ledger endpoints.
type TransactionHandler struct {
	ledger   ports.LedgerService
	settings ports.SettingsService
}

func NewTransactionHandler(ledger ports.LedgerService, settings ports.SettingsService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, settings: settings}
}

// List handles GET /v1/transactions.
//
// @Summary      List transactions, newest first
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum number of transactions (0 = all)"
// @Success      200    {array}   transactionResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Router       /v1/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: limit must be a non-negative integer", domain.ErrValidation)
		}
		limit = n
	}

	ctx := c.Request().Context()
	txs, err := h.ledger.ListTransactions(ctx, limit)
	if err != nil {
		return err
	}
	hidden, err := privateMode(ctx, h.settings)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTransactionResponses(txs, hidden))
}

// Create handles POST /v1/transactions.
//
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTransactionRequest  true  "Transaction"
// @Success      201   {object}  transactionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /v1/transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	var req createTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	tx, err := h.ledger.AddTransaction(ctx, ports.AddTransactionInput{
		Type:     domain.TransactionType(req.Type),
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
		Note:     req.Note,
	})
	if err != nil {
		return err
	}
	metrics.TransactionsAddedTotal.WithLabelValues(string(tx.Type)).Inc()

	hidden, err := privateMode(ctx, h.settings)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTransactionResponse(*tx, hidden))
}

// parseDate accepts a bare date (taken as UTC midnight) or an RFC 3339
// timestamp. The empty string yields the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD or RFC 3339", domain.ErrValidation)
}

func privateMode(ctx context.Context, settings ports.SettingsService) (bool, error) {
	s, err := settings.Get(ctx)
	if err != nil {
		return false, err
	}
	return s.PrivateMode, nil
}
