package assistant

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fintrack/personal-finance/internal/core/domain"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

// Intent names reported with each answer.
const (
	IntentTotalExpense = "total_expense"
	IntentTotalIncome  = "total_income"
	IntentBalance      = "balance"
	IntentCategory     = "category"
	IntentAdvice       = "advice"
)

var (
	expensePhrases = []string{"tổng chi", "chi tiêu", "tiêu hết", "expense", "spent"}
	incomePhrases  = []string{"tổng thu", "thu nhập", "kiếm được", "income", "earn"}
	balancePhrases = []string{"số dư", "còn lại", "còn bao nhiêu", "balance"}
	advicePhrases  = []string{"lời khuyên", "khuyên", "tiết kiệm", "gợi ý", "advice", "tips"}
)

// DefaultRules is the rule table in evaluation order: total expense, total
// income, balance, per-category sums, advice.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:  IntentTotalExpense,
			Match: phraseMatcher(expensePhrases),
			Reply: func(_ string, s ports.Snapshot) string {
				return fmt.Sprintf("Tổng chi tiêu của bạn là %s qua %d giao dịch chi.",
					money(s.Summary.TotalExpense, s), countType(s.Transactions, domain.TypeExpense))
			},
		},
		{
			Name:  IntentTotalIncome,
			Match: phraseMatcher(incomePhrases),
			Reply: func(_ string, s ports.Snapshot) string {
				return fmt.Sprintf("Tổng thu nhập của bạn là %s.", money(s.Summary.TotalIncome, s))
			},
		},
		{
			Name:  IntentBalance,
			Match: phraseMatcher(balancePhrases),
			Reply: replyBalance,
		},
		{
			Name: IntentCategory,
			Match: func(q string, _ ports.Snapshot) bool {
				_, ok := matchCategory(q)
				return ok
			},
			Reply: replyCategory,
		},
		{
			Name:  IntentAdvice,
			Match: phraseMatcher(advicePhrases),
			Reply: replyAdvice,
		},
	}
}

func phraseMatcher(phrases []string) func(string, ports.Snapshot) bool {
	return func(q string, _ ports.Snapshot) bool {
		return containsAny(q, phrases...)
	}
}

// matchCategory walks the registry, expense first, and returns the first
// category whose lower-cased name occurs in q.
func matchCategory(q string) (domain.Category, bool) {
	for _, c := range domain.AllCategories() {
		if strings.Contains(q, strings.ToLower(c.Name)) {
			return c, true
		}
	}
	return domain.Category{}, false
}

func replyBalance(_ string, s ports.Snapshot) string {
	if s.Summary.Balance.IsNegative() {
		return fmt.Sprintf("Số dư hiện tại của bạn là %s. Bạn đang chi nhiều hơn thu, hãy cân nhắc cắt giảm chi tiêu nhé!",
			money(s.Summary.Balance, s))
	}
	return fmt.Sprintf("Số dư hiện tại của bạn là %s.", money(s.Summary.Balance, s))
}

func replyCategory(q string, s ports.Snapshot) string {
	c, _ := matchCategory(q)
	if c.Type == domain.TypeIncome {
		total := domain.CategoryTotal(s.Transactions, c.Type, c.ID)
		return fmt.Sprintf("Bạn đã nhận %s từ mục \"%s\".", money(total, s), c.Name)
	}
	// the breakdown already folds unregistered ids into the fallback bucket
	entry, ok := expenseEntry(s.Summary, c.ID)
	if !ok || entry.Value.IsZero() {
		return fmt.Sprintf("Bạn chưa có khoản chi nào cho \"%s\".", c.Name)
	}
	return fmt.Sprintf("Bạn đã chi %s cho \"%s\" (%d%% tổng chi tiêu).",
		money(entry.Value, s), c.Name, entry.Percent)
}

func replyAdvice(_ string, s ports.Snapshot) string {
	sum := s.Summary
	switch {
	case len(s.Transactions) == 0:
		return "Bạn chưa có giao dịch nào. Hãy bắt đầu ghi lại thu chi hằng ngày để mình có thể đưa ra lời khuyên nhé!"
	case sum.TotalExpense.GreaterThan(sum.TotalIncome):
		return fmt.Sprintf("Cảnh báo: bạn đã chi %s, vượt quá thu nhập %s. Hãy xem lại các khoản chi không cần thiết.",
			money(sum.TotalExpense, s), money(sum.TotalIncome, s))
	case s.Challenge.Exceeded:
		return fmt.Sprintf("Chi cho \"%s\" đã vượt giới hạn %s. Thử nấu ăn ở nhà nhiều hơn để tiết kiệm nhé!",
			s.Challenge.CategoryName, money(s.Challenge.Limit, s))
	case len(sum.ExpenseByCategory) > 0:
		top := sum.ExpenseByCategory[0]
		return fmt.Sprintf("Bạn đang chi nhiều nhất cho \"%s\" (%s, %d%% tổng chi). Giảm 10%% khoản này sẽ giúp bạn tiết kiệm %s.",
			top.Name, money(top.Value, s), top.Percent, money(top.Value.Div(decimal.NewFromInt(10)), s))
	default:
		return "Tài chính của bạn đang rất ổn! Hãy tiếp tục duy trì thói quen tiết kiệm nhé."
	}
}

func money(d decimal.Decimal, s ports.Snapshot) string {
	return domain.FormatVND(d, s.Hidden)
}

func countType(txs []domain.Transaction, t domain.TransactionType) int {
	n := 0
	for _, tx := range txs {
		if tx.Type == t {
			n++
		}
	}
	return n
}

func expenseEntry(sum domain.Summary, categoryID string) (domain.CategorySum, bool) {
	for _, c := range sum.ExpenseByCategory {
		if c.CategoryID == categoryID {
			return c, true
		}
	}
	return domain.CategorySum{}, false
}
