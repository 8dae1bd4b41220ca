package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/personal-finance/internal/core/domain"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

// recentLimit is how many transactions the summary carries for the home screen.
const recentLimit = 5

// ErrorResponse is the envelope of every 4xx/5xx response. Details carries the
// underlying validation message when the user-facing text is generic.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// --- Request types ---

type registerRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Username string `json:"username"  validate:"required,max=50"`
	Password string `json:"password"  validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createTransactionRequest struct {
	Type     string          `json:"type"     validate:"required,oneof=expense income"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category" validate:"required"`
	// Date accepts a date-picker value (2006-01-02) or RFC 3339. Empty means today.
	Date string `json:"date" validate:"omitempty"`
	Note string `json:"note" validate:"max=200"`
}

type askRequest struct {
	Query string `json:"query" validate:"max=500"`
}

// --- Response types ---

type authResponse struct {
	Token string             `json:"token,omitempty"`
	User  *domain.PublicUser `json:"user,omitempty"`
}

type categoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type transactionResponse struct {
	ID            int64            `json:"id"`
	Type          string           `json:"type"`
	Amount        decimal.Decimal  `json:"amount"`
	AmountDisplay string           `json:"amount_display"`
	Category      categoryResponse `json:"category"`
	Date          time.Time        `json:"date"`
	Note          string           `json:"note,omitempty"`
	Label         string           `json:"label"`
}

type categorySumResponse struct {
	CategoryID   string          `json:"category_id"`
	Name         string          `json:"name"`
	Value        decimal.Decimal `json:"value"`
	ValueDisplay string          `json:"value_display"`
	Percent      int64           `json:"percent"`
}

type budgetResponse struct {
	Limit            decimal.Decimal `json:"limit"`
	Spent            decimal.Decimal `json:"spent"`
	Remaining        decimal.Decimal `json:"remaining"`
	LimitDisplay     string          `json:"limit_display"`
	SpentDisplay     string          `json:"spent_display"`
	RemainingDisplay string          `json:"remaining_display"`
	Progress         float64         `json:"progress"`
	Exceeded         bool            `json:"exceeded"`
}

type summaryResponse struct {
	TotalIncome         decimal.Decimal       `json:"total_income"`
	TotalExpense        decimal.Decimal       `json:"total_expense"`
	Balance             decimal.Decimal       `json:"balance"`
	TotalIncomeDisplay  string                `json:"total_income_display"`
	TotalExpenseDisplay string                `json:"total_expense_display"`
	BalanceDisplay      string                `json:"balance_display"`
	ExpenseByCategory   []categorySumResponse `json:"expense_by_category"`
	MonthlyLimit        budgetResponse        `json:"monthly_limit"`
	Recent              []transactionResponse `json:"recent"`
	Hidden              bool                  `json:"hidden"`
}

type challengeResponse struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	budgetResponse
}

type answerResponse struct {
	Intent string `json:"intent"`
	Answer string `json:"answer"`
}

type settingsResponse struct {
	DarkMode    bool `json:"dark_mode"`
	PrivateMode bool `json:"private_mode"`
}

// --- Mappers ---

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Type: string(c.Type), Icon: c.Icon, Color: c.Color}
}

func toTransactionResponse(tx domain.Transaction, hidden bool) transactionResponse {
	return transactionResponse{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		AmountDisplay: domain.FormatVND(tx.Amount, hidden),
		Category:      toCategoryResponse(domain.ResolveCategory(tx.Type, tx.Category)),
		Date:          tx.Date,
		Note:          tx.Note,
		Label:         tx.Label(),
	}
}

func toTransactionResponses(txs []domain.Transaction, hidden bool) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx, hidden))
	}
	return out
}

func toBudgetResponse(b domain.BudgetProgress, hidden bool) budgetResponse {
	return budgetResponse{
		Limit:            b.Limit,
		Spent:            b.Spent,
		Remaining:        b.Remaining,
		LimitDisplay:     domain.FormatVND(b.Limit, hidden),
		SpentDisplay:     domain.FormatVND(b.Spent, hidden),
		RemainingDisplay: domain.FormatVND(b.Remaining, hidden),
		Progress:         b.Progress,
		Exceeded:         b.Exceeded,
	}
}

func toSummaryResponse(ov *ports.Overview, recent []domain.Transaction, hidden bool) summaryResponse {
	sum := ov.Summary
	byCategory := make([]categorySumResponse, 0, len(sum.ExpenseByCategory))
	for _, c := range sum.ExpenseByCategory {
		byCategory = append(byCategory, categorySumResponse{
			CategoryID:   c.CategoryID,
			Name:         c.Name,
			Value:        c.Value,
			ValueDisplay: domain.FormatVND(c.Value, hidden),
			Percent:      c.Percent,
		})
	}
	return summaryResponse{
		TotalIncome:         sum.TotalIncome,
		TotalExpense:        sum.TotalExpense,
		Balance:             sum.Balance,
		TotalIncomeDisplay:  domain.FormatVND(sum.TotalIncome, hidden),
		TotalExpenseDisplay: domain.FormatVND(sum.TotalExpense, hidden),
		BalanceDisplay:      domain.FormatVND(sum.Balance, hidden),
		ExpenseByCategory:   byCategory,
		MonthlyLimit:        toBudgetResponse(ov.MonthlyLimit, hidden),
		Recent:              toTransactionResponses(recent, hidden),
		Hidden:              hidden,
	}
}

func toSettingsResponse(s *domain.Settings) settingsResponse {
	return settingsResponse{DarkMode: s.DarkMode, PrivateMode: s.PrivateMode}
}
