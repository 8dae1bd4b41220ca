package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(t TransactionType, amount int64, category string) Transaction {
	return Transaction{
		Type:     t,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.Empty(t, s.ExpenseByCategory)
}

func TestSummarize_FoodAndSalary(t *testing.T) {
	s := Summarize([]Transaction{
		tx(TypeExpense, 50000, "food"),
		tx(TypeIncome, 2000000, "salary"),
	})

	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(50000)))
	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(2000000)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(1950000)))
	require.Len(t, s.ExpenseByCategory, 1)
	assert.Equal(t, "Ăn uống", s.ExpenseByCategory[0].Name)
	assert.True(t, s.ExpenseByCategory[0].Value.Equal(decimal.NewFromInt(50000)))
	assert.EqualValues(t, 100, s.ExpenseByCategory[0].Percent)
}

func TestSummarize_UnknownCategoriesShareOtherBucket(t *testing.T) {
	s := Summarize([]Transaction{
		tx(TypeExpense, 1000, "gym"),
		tx(TypeExpense, 2000, "pets"),
		tx(TypeExpense, 500, CategoryOther),
		tx(TypeExpense, 4000, "transport"),
	})

	require.Len(t, s.ExpenseByCategory, 2)
	assert.Equal(t, "transport", s.ExpenseByCategory[0].CategoryID)
	assert.Equal(t, CategoryOther, s.ExpenseByCategory[1].CategoryID)
	assert.Equal(t, "Khác", s.ExpenseByCategory[1].Name)
	assert.True(t, s.ExpenseByCategory[1].Value.Equal(decimal.NewFromInt(3500)))
}

func TestSummarize_TotalsAgree(t *testing.T) {
	txs := []Transaction{
		tx(TypeExpense, 120000, "food"),
		tx(TypeExpense, 35000, "transport"),
		tx(TypeIncome, 15000000, "salary"),
		tx(TypeExpense, 990000, "shopping"),
		tx(TypeExpense, 45000, "food"),
		tx(TypeIncome, 500000, "bonus"),
		tx(TypeExpense, 700000, "utilities"),
		tx(TypeExpense, 10, "unknown"),
	}
	txs = append(txs, Transaction{Type: TypeExpense, Amount: decimal.RequireFromString("0.1"), Category: "food"})
	txs = append(txs, Transaction{Type: TypeExpense, Amount: decimal.RequireFromString("0.2"), Category: "food"})

	s := Summarize(txs)

	assert.True(t, s.TotalIncome.Sub(s.TotalExpense).Equal(s.Balance))

	sum := decimal.Zero
	for _, c := range s.ExpenseByCategory {
		sum = sum.Add(c.Value)
	}
	assert.True(t, sum.Equal(s.TotalExpense), "breakdown %s != total %s", sum, s.TotalExpense)

	for i := 1; i < len(s.ExpenseByCategory); i++ {
		prev, cur := s.ExpenseByCategory[i-1].Value, s.ExpenseByCategory[i].Value
		assert.False(t, cur.GreaterThan(prev), "breakdown not sorted at %d", i)
	}

	assert.Equal(t, s, Summarize(txs))
}

func TestCategoryTotal(t *testing.T) {
	txs := []Transaction{
		tx(TypeExpense, 100, "food"),
		tx(TypeExpense, 250, "food"),
		tx(TypeIncome, 999, "food"),
		tx(TypeExpense, 40, "transport"),
	}

	assert.True(t, CategoryTotal(txs, TypeExpense, "food").Equal(decimal.NewFromInt(350)))
	assert.True(t, CategoryTotal(txs, TypeExpense, "bonus").IsZero())
}
