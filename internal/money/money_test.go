package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₹0"},
		{"7", "₹7"},
		{"500", "₹500"},
		{"4500", "₹4,500"},
		{"45000", "₹45,000"},
		{"125000", "₹1,25,000"},
		{"4500000", "₹45,00,000"},
		{"12345678", "₹1,23,45,678"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(dec(tc.in)), "amount %s", tc.in)
	}
}

func TestFormatINR_AbsoluteValue(t *testing.T) {
	assert.Equal(t, "₹1,500", FormatINR(dec("-1500")))
}

func TestFormatINR_RoundsToWholeRupees(t *testing.T) {
	assert.Equal(t, "₹1,251", FormatINR(dec("1250.50")))
	assert.Equal(t, "₹1,250", FormatINR(dec("1250.49")))
}
