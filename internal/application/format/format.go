// Package format renders monetary amounts and percentages the way every
// user-facing text surface (chat replies, report narratives, insights)
// expects them.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency renders an amount as $#,##0.00 (e.g. "$1,234.56", "$-250.00").
func Currency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("$%s%s.%s", sign, grouped.String(), fracPart)
}

// Percent renders a percentage with one decimal place (e.g. "12.3%").
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
