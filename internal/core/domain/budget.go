package domain

import "github.com/shopspring/decimal"

// BudgetProgress compares spending against a fixed limit. It is recomputed
// from the transaction list every time; nothing about it is persisted.
type BudgetProgress struct {
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"` // negative once the limit is passed
	Progress  float64         `json:"progress"`  // spent/limit capped at 1.0
	Exceeded  bool            `json:"exceeded"`
}

// NewBudgetProgress derives the progress metrics for spent against limit.
func NewBudgetProgress(spent, limit decimal.Decimal) BudgetProgress {
	p := BudgetProgress{
		Limit:     limit,
		Spent:     spent,
		Remaining: limit.Sub(spent),
		Exceeded:  spent.GreaterThan(limit),
	}
	switch {
	case limit.IsPositive():
		p.Progress = spent.Div(limit).InexactFloat64()
	case spent.IsPositive():
		p.Progress = 1
	}
	if p.Progress > 1 {
		p.Progress = 1
	}
	if p.Progress < 0 {
		p.Progress = 0
	}
	return p
}

// Challenge is a savings challenge: keep one category under a limit.
type Challenge struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	BudgetProgress
}

// NewChallenge evaluates the challenge for categoryID over txs.
func NewChallenge(txs []Transaction, categoryID string, limit decimal.Decimal) Challenge {
	spent := CategoryTotal(txs, TypeExpense, categoryID)
	return Challenge{
		CategoryID:     categoryID,
		CategoryName:   ResolveCategory(TypeExpense, categoryID).Name,
		BudgetProgress: NewBudgetProgress(spent, limit),
	}
}
