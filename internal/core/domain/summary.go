package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategorySum is one slice of the expense breakdown.
type CategorySum struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	// Percent is Value's share of total expense, rounded to a whole number.
	Percent int64 `json:"percent"`
}

// Summary is the aggregate view of a transaction list. It is derived on every
// read and never stored.
type Summary struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	Balance           decimal.Decimal `json:"balance"`
	ExpenseByCategory []CategorySum   `json:"expense_by_category"`
}

// Summarize computes totals and the per-category expense breakdown. Amounts
// are not validated. Expense ids missing from the registry are folded into a
// single "other" bucket. The breakdown is sorted by value, largest first.
func Summarize(txs []Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	byCat := make(map[string]decimal.Decimal)
	var order []string

	for _, t := range txs {
		if t.Type == TypeIncome {
			income = income.Add(t.Amount)
			continue
		}
		expense = expense.Add(t.Amount)

		id := t.Category
		if _, ok := LookupCategory(TypeExpense, id); !ok {
			id = CategoryOther
		}
		if _, seen := byCat[id]; !seen {
			order = append(order, id)
		}
		byCat[id] = byCat[id].Add(t.Amount)
	}

	breakdown := make([]CategorySum, 0, len(order))
	for _, id := range order {
		value := byCat[id]
		breakdown = append(breakdown, CategorySum{
			CategoryID: id,
			Name:       ResolveCategory(TypeExpense, id).Name,
			Value:      value,
			Percent:    percentOf(value, expense),
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Value.GreaterThan(breakdown[j].Value)
	})

	return Summary{
		TotalIncome:       income,
		TotalExpense:      expense,
		Balance:           income.Sub(expense),
		ExpenseByCategory: breakdown,
	}
}

// CategoryTotal sums the amounts of type t filed under categoryID.
func CategoryTotal(txs []Transaction, t TransactionType, categoryID string) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		if tx.Type == t && tx.Category == categoryID {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

func percentOf(part, total decimal.Decimal) int64 {
	if total.IsZero() {
		return 0
	}
	return part.Mul(decimal.NewFromInt(100)).Div(total).Round(0).IntPart()
}
