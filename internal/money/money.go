// Package money formats amounts for display. The app shows a single
// fixed locale: Indian rupees, grouped Indian-style, no paise.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount as ₹ with Indian digit grouping (last
// three digits, then groups of two: ₹1,25,000). The absolute value is
// shown, rounded to whole rupees; sign is the caller's concern, matching
// how totals are displayed with their own up/down indicators.
func FormatINR(amount decimal.Decimal) string {
	digits := amount.Abs().Round(0).String()
	return "₹" + groupIndian(digits)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}
