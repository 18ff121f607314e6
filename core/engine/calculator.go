// Package engine implements the tiered cashback calculation.
// Pure and deterministic: identical inputs always produce identical results,
// with no dependence on clock, locale or external state.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cashback-report/core/rules"
	"cashback-report/core/types"
)

// Status messages. Informational only; callers derive status from the
// cashback amount, never from the message text.
const (
	msgInvalidLoss   = "Valor inválido ou sem prejuízo."
	msgBelowFloor    = "Cashback abaixo do valor mínimo para pagamento."
	msgAvailable     = "Cashback disponível!"
	msgBelowTierTmpl = "Perda de R$ %s não atingiu o mínimo para cashback."
)

// Calculate computes the rebate for a loss amount under the rule set for
// (category, platform). The loss amount is the absolute value of the
// player's net loss for the period.
//
// The only error case is an unknown (category, platform) combination.
// Invalid loss amounts are encoded in the result, not raised.
func Calculate(loss decimal.Decimal, category types.Category, platform types.Platform) (types.CashbackResult, error) {
	ruleSet, err := rules.Resolve(category, platform)
	if err != nil {
		return types.CashbackResult{}, err
	}

	result := types.CashbackResult{
		LossAmount:     loss,
		CashbackAmount: decimal.Zero,
		AppliedPercent: decimal.Zero,
	}

	if !loss.IsPositive() {
		result.Message = msgInvalidLoss
		return result, nil
	}

	tier, ok := ruleSet.FindTier(loss)
	if !ok {
		// Loss below the lowest tier minimum.
		result.Message = fmt.Sprintf(msgBelowTierTmpl, loss.StringFixed(2))
		return result, nil
	}

	// Losses beyond the base limit earn no additional rebate.
	base := decimal.Min(loss, ruleSet.BaseLimit)

	// Truncate, never round: the platform does not round up in the
	// player's favor. Decimal math is exact, so no float correction
	// step is needed before flooring at the cents boundary.
	cashback := base.Mul(tier.Percent).Truncate(2)

	if cashback.LessThan(ruleSet.MinCashback) {
		result.Message = msgBelowFloor
		return result, nil
	}
	if cashback.GreaterThan(ruleSet.MaxCashback) {
		cashback = ruleSet.MaxCashback
	}

	result.CashbackAmount = cashback
	result.AppliedPercent = tier.Percent
	result.Message = msgAvailable
	return result, nil
}
