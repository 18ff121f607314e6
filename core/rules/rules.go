// Package rules holds the static cashback rule tables.
// Mappers and the calculation engine declare intent, not data:
// every tier boundary, floor, cap and base limit lives here.
package rules

import (
	"github.com/shopspring/decimal"

	"cashback-report/core/types"
	"cashback-report/internal/errors"
)

// Tier maps a contiguous loss range to a flat rebate fraction.
// Max zero value means the tier is unbounded above.
type Tier struct {
	Min     decimal.Decimal
	Max     decimal.Decimal
	Percent decimal.Decimal
}

// Contains reports whether the loss amount falls within the tier range
func (t Tier) Contains(loss decimal.Decimal) bool {
	if loss.LessThan(t.Min) {
		return false
	}
	if t.Max.IsZero() {
		return true
	}
	return loss.LessThanOrEqual(t.Max)
}

// Unbounded reports whether the tier has no upper limit
func (t Tier) Unbounded() bool {
	return t.Max.IsZero()
}

// RuleSet is the complete rule data for one (category, platform) pair.
// Immutable after package init; never mutated at runtime.
type RuleSet struct {
	// Category the rules apply to
	Category types.Category

	// Tiers are disjoint loss ranges ordered ascending by Min
	Tiers []Tier

	// MinCashback is the payout floor; truncated rebates below it become zero
	MinCashback decimal.Decimal

	// MaxCashback is the payout cap per period
	MaxCashback decimal.Decimal

	// BaseLimit caps the loss amount used for the percentage calculation
	BaseLimit decimal.Decimal
}

// FindTier returns the tier containing the loss amount.
// Tiers are few and ordered, so a linear scan is fine.
func (rs RuleSet) FindTier(loss decimal.Decimal) (Tier, bool) {
	for _, t := range rs.Tiers {
		if t.Contains(loss) {
			return t, true
		}
	}
	return Tier{}, false
}

type ruleKey struct {
	category types.Category
	platform types.Platform
}

var registry map[ruleKey]RuleSet

func init() {
	registry = make(map[ruleKey]RuleSet)
	for _, p := range []types.Platform{types.Platform7K, types.PlatformCassino, types.PlatformVera} {
		for _, c := range types.Categories() {
			registry[ruleKey{c, p}] = buildRuleSet(c, p)
		}
	}
}

func buildRuleSet(c types.Category, p types.Platform) RuleSet {
	switch c {
	case types.CategoryWeekly:
		rs := RuleSet{
			Category:    c,
			Tiers:       weeklyTiers,
			MinCashback: weeklyMinCashback,
			MaxCashback: weeklyMaxCashback,
			BaseLimit:   weeklyBaseLimit,
		}
		// Vera pays out weekly rebates from the first cent.
		if p == types.PlatformVera {
			rs.MinCashback = veraWeeklyMinCashback
		}
		return rs
	case types.CategoryDaily:
		if p == types.PlatformVera {
			return RuleSet{
				Category:    c,
				Tiers:       veraDailyTiers,
				MinCashback: dailyMinCashback,
				MaxCashback: dailyMaxCashback,
				BaseLimit:   veraDailyBaseLimit,
			}
		}
		return RuleSet{
			Category:    c,
			Tiers:       dailyTiers,
			MinCashback: dailyMinCashback,
			MaxCashback: dailyMaxCashback,
			BaseLimit:   dailyBaseLimit,
		}
	case types.CategorySports:
		return RuleSet{
			Category:    c,
			Tiers:       sportsTiers,
			MinCashback: sportsMinCashback,
			MaxCashback: sportsMaxCashback,
			BaseLimit:   sportsBaseLimit,
		}
	case types.CategoryAviator:
		return RuleSet{
			Category:    c,
			Tiers:       aviatorTiers,
			MinCashback: aviatorMinCashback,
			MaxCashback: aviatorMaxCashback,
			BaseLimit:   aviatorBaseLimit,
		}
	}
	return RuleSet{}
}

// Resolve returns the rule set for a (category, platform) pair.
// Unknown combinations are a configuration error, never a silent
// zero-limit fallback.
func Resolve(category types.Category, platform types.Platform) (RuleSet, error) {
	if !category.IsValid() || !platform.IsValid() {
		return RuleSet{}, errors.NotSupported(category.String(), platform.String())
	}
	rs, ok := registry[ruleKey{category, platform}]
	if !ok {
		return RuleSet{}, errors.NotSupported(category.String(), platform.String())
	}
	return rs, nil
}
