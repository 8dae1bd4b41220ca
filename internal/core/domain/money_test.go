package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0 ₫"},
		{"999", "999 ₫"},
		{"50000", "50.000 ₫"},
		{"1950000.4", "1.950.000 ₫"},
		{"-500000", "-500.000 ₫"},
		{"1000.5", "1.001 ₫"},
		// beyond int64
		{"123456789012345678901234", "123.456.789.012.345.678.901.234 ₫"},
		{"-99999999999999999999", "-99.999.999.999.999.999.999 ₫"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVND(decimal.RequireFromString(tt.amount), false), tt.amount)
	}
}

func TestFormatVND_Hidden(t *testing.T) {
	assert.Equal(t, HiddenAmount, FormatVND(decimal.NewFromInt(50000), true))
}
