// Package assistant implements the rule-based finance assistant. A query is
// lower-cased and tested against an ordered rule table; the first rule whose
// predicate matches produces the answer.
package assistant

import (
	"strings"

	"github.com/fintrack/personal-finance/internal/core/ports"
)

// Rule pairs a predicate with the reply it triggers. Match receives the
// lower-cased query.
type Rule struct {
	Name  string
	Match func(query string, snap ports.Snapshot) bool
	Reply func(query string, snap ports.Snapshot) string
}

// FallbackIntent is reported when no rule matches.
const FallbackIntent = "fallback"

// FallbackText lists example questions the assistant understands.
const FallbackText = "Mình chưa hiểu câu hỏi của bạn. Bạn có thể thử hỏi:\n" +
	"• \"Tổng chi tiêu của tôi là bao nhiêu?\"\n" +
	"• \"Thu nhập của tôi?\"\n" +
	"• \"Số dư còn lại?\"\n" +
	"• \"Tôi đã chi bao nhiêu cho ăn uống?\"\n" +
	"• \"Cho tôi lời khuyên tiết kiệm\""

// Responder evaluates rules in order; first match wins.
type Responder struct {
	rules []Rule
}

// New returns a Responder over rules. With no arguments it uses DefaultRules.
func New(rules ...Rule) *Responder {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Responder{rules: rules}
}

var _ ports.Responder = (*Responder)(nil)

func (r *Responder) Respond(query string, snap ports.Snapshot) ports.Answer {
	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" {
		for _, rule := range r.rules {
			if rule.Match(q, snap) {
				return ports.Answer{Intent: rule.Name, Text: rule.Reply(q, snap)}
			}
		}
	}
	return ports.Answer{Intent: FallbackIntent, Text: FallbackText}
}

// containsAny reports whether q contains any of the phrases.
func containsAny(q string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(q, p) {
			return true
		}
	}
	return false
}
