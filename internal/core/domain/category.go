package domain

// TransactionType separates money coming in from money going out.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// CategoryOther is the registry's fallback bucket for unknown expense ids.
const CategoryOther = "other"

// Category is static display metadata for a transaction category.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
}

var expenseCategories = []Category{
	{ID: "food", Name: "Ăn uống", Type: TypeExpense, Icon: "coffee", Color: "orange"},
	{ID: "transport", Name: "Di chuyển", Type: TypeExpense, Icon: "car", Color: "blue"},
	{ID: "shopping", Name: "Mua sắm", Type: TypeExpense, Icon: "shopping-bag", Color: "pink"},
	{ID: "utilities", Name: "Hóa đơn", Type: TypeExpense, Icon: "zap", Color: "yellow"},
	{ID: "entertainment", Name: "Giải trí", Type: TypeExpense, Icon: "gift", Color: "purple"},
	{ID: CategoryOther, Name: "Khác", Type: TypeExpense, Icon: "more-horizontal", Color: "gray"},
}

var incomeCategories = []Category{
	{ID: "salary", Name: "Lương", Type: TypeIncome, Icon: "wallet", Color: "green"},
	{ID: "bonus", Name: "Thưởng", Type: TypeIncome, Icon: "gift", Color: "teal"},
	{ID: "investment", Name: "Đầu tư", Type: TypeIncome, Icon: "trending-up", Color: "indigo"},
}

// Categories returns the registry for one transaction type, in display order.
// The returned slice is a copy.
func Categories(t TransactionType) []Category {
	var src []Category
	switch t {
	case TypeExpense:
		src = expenseCategories
	case TypeIncome:
		src = incomeCategories
	}
	return append([]Category(nil), src...)
}

// AllCategories returns expense categories followed by income categories.
func AllCategories() []Category {
	out := make([]Category, 0, len(expenseCategories)+len(incomeCategories))
	out = append(out, expenseCategories...)
	return append(out, incomeCategories...)
}

// LookupCategory finds a category by id within the registry of type t.
func LookupCategory(t TransactionType, id string) (Category, bool) {
	for _, c := range Categories(t) {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FallbackCategory is the registry's designated "other" expense category.
func FallbackCategory() Category {
	return expenseCategories[len(expenseCategories)-1]
}

// ResolveCategory returns the display metadata for id, falling back to the
// "other" category when the id is not registered for t.
func ResolveCategory(t TransactionType, id string) Category {
	if c, ok := LookupCategory(t, id); ok {
		return c
	}
	fb := FallbackCategory()
	fb.Type = t
	return fb
}
