// Package engine - Currency and percent rendering
package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a value in pt-BR currency format ("R$ 1.234,56").
// The value is truncated to cents before formatting so the display never
// shows a cent more than what was actually credited.
func FormatCurrency(v decimal.Decimal) string {
	truncated := v.Truncate(2)

	negative := truncated.IsNegative()
	if negative {
		truncated = truncated.Neg()
	}

	fixed := truncated.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("R$ ")

	// Group thousands with '.'
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteString(".")
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteString(".")
		}
	}

	b.WriteString(",")
	b.WriteString(fracPart)
	return b.String()
}

// FormatPercent renders a rebate fraction as a whole-number percentage
// string, e.g. 0.05 -> "5%".
func FormatPercent(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).Round(0).String() + "%"
}
