package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/personal-finance/internal/core/domain"
)

// AddTransactionInput is the DTO passed from the transport layer to LedgerService.
type AddTransactionInput struct {
	Type     domain.TransactionType
	Amount   decimal.Decimal
	Category string
	Date     time.Time // zero means today
	Note     string
}

// Overview is the home screen data: totals, breakdown and the monthly
// spending limit card.
type Overview struct {
	Summary      domain.Summary
	MonthlyLimit domain.BudgetProgress
}

// LedgerService records and reads the current user's transactions.
type LedgerService interface {
	AddTransaction(ctx context.Context, in AddTransactionInput) (*domain.Transaction, error)
	// ListTransactions returns newest first. limit <= 0 returns everything.
	ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
	Overview(ctx context.Context) (*Overview, error)
	Challenge(ctx context.Context) (*domain.Challenge, error)
}
