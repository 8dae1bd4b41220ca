package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry. Transactions are never
// mutated after creation.
type Transaction struct {
	ID       int64           `json:"id"`
	Type     TransactionType `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
	Note     string          `json:"note,omitempty"`
}

// Label is what the UI shows as the transaction title: the note when present,
// otherwise the category name.
func (t Transaction) Label() string {
	if t.Note != "" {
		return t.Note
	}
	return ResolveCategory(t.Type, t.Category).Name
}
