package domain

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// HiddenAmount replaces every figure while private mode is on.
const HiddenAmount = "******"

// FormatVND renders an amount the way vi-VN locale formats VND: dot as the
// thousands separator, no minor unit, trailing currency sign. Any magnitude
// is accepted.
func FormatVND(amount decimal.Decimal, hidden bool) string {
	if hidden {
		return HiddenAmount
	}
	grouped := humanize.BigComma(amount.Round(0).BigInt())
	return strings.ReplaceAll(grouped, ",", ".") + " ₫"
}
