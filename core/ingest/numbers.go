// Package ingest - Numeric cell parsing
package ingest

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingNumber extracts the longest numeric prefix of a cleaned cell,
// mirroring lenient parse-what-you-can semantics for dirty exports.
var leadingNumber = regexp.MustCompile(`^[+-]?\d*\.?\d+`)

// currencyChars are stripped from string cells before parsing
const currencyChars = "R$ \t "

// ParseNumber converts a cell value to a decimal amount.
// Strings are cleaned of currency symbols and whitespace; a comma is
// treated as the decimal separator only when no period is present.
// Unparseable values become zero, never an error.
func ParseNumber(val interface{}) decimal.Decimal {
	switch v := val.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		clean := strings.Map(func(r rune) rune {
			if strings.ContainsRune(currencyChars, r) {
				return -1
			}
			return r
		}, strings.TrimSpace(v))
		if clean == "" {
			return decimal.Zero
		}
		if strings.Contains(clean, ",") && !strings.Contains(clean, ".") {
			clean = strings.ReplaceAll(clean, ",", ".")
		}
		if d, err := decimal.NewFromString(clean); err == nil {
			return d
		}
		if m := leadingNumber.FindString(clean); m != "" {
			if d, err := decimal.NewFromString(m); err == nil {
				return d
			}
		}
		return decimal.Zero
	}
	return decimal.Zero
}
