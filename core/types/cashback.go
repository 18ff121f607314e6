// Package types - Shared cashback domain types
package types

import "github.com/shopspring/decimal"

// Category identifies a cashback category
type Category string

const (
	// CategoryWeekly is live-casino cashback, paid per week
	CategoryWeekly Category = "weekly"

	// CategoryDaily is slots cashback, paid per day
	CategoryDaily Category = "daily"

	// CategorySports is sportsbook cashback, paid per week
	CategorySports Category = "sports"

	// CategoryAviator is crash-game cashback, paid per day
	CategoryAviator Category = "aviator"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the category is a known one
func (c Category) IsValid() bool {
	switch c {
	case CategoryWeekly, CategoryDaily, CategorySports, CategoryAviator:
		return true
	}
	return false
}

// Categories lists all categories in report order.
// This order is also the tie-break for entries sharing a bucket date.
func Categories() []Category {
	return []Category{CategoryWeekly, CategoryDaily, CategorySports, CategoryAviator}
}

// Platform identifies a gambling platform
type Platform string

const (
	Platform7K      Platform = "7K"
	PlatformCassino Platform = "Cassino"
	PlatformVera    Platform = "Vera"
)

// String returns the string representation
func (p Platform) String() string {
	return string(p)
}

// IsValid reports whether the platform is a known one
func (p Platform) IsValid() bool {
	switch p {
	case Platform7K, PlatformCassino, PlatformVera:
		return true
	}
	return false
}

// CashbackResult is the outcome of one rebate calculation
type CashbackResult struct {
	// LossAmount is the loss the calculation was requested for
	LossAmount decimal.Decimal `json:"loss_amount"`

	// CashbackAmount is the rebate, truncated to cents, within [0, cap]
	CashbackAmount decimal.Decimal `json:"cashback_amount"`

	// AppliedPercent is the matched tier's rebate fraction (0 when none granted)
	AppliedPercent decimal.Decimal `json:"applied_percent"`

	// Message is an informational status string; callers must not branch on it
	Message string `json:"message"`
}

// Granted reports whether the calculation produced a payable rebate
func (r CashbackResult) Granted() bool {
	return r.CashbackAmount.IsPositive()
}

// RawRow is one spreadsheet line: column header mapped to cell value.
// Values are either string or float64 depending on the source decoder.
type RawRow map[string]interface{}
