// Package rules - Static tier tables per category and platform
package rules

import "github.com/shopspring/decimal"

// d parses a decimal literal; tables are static so a parse failure is a bug.
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tier(min, max, percent string) Tier {
	t := Tier{Min: d(min), Percent: d(percent)}
	if max != "" {
		t.Max = d(max)
	}
	return t
}

// Weekly live-casino rules (7K / Cassino; Vera shares the tiers but has its
// own payout floor).
var (
	weeklyMinCashback     = d("0.50")
	veraWeeklyMinCashback = d("0.01")
	weeklyMaxCashback     = d("5000.00")
	weeklyBaseLimit       = d("100000.00") // 5% of 100k = 5k cap

	weeklyTiers = []Tier{
		tier("1.00", "499.99", "0.01"),
		tier("500.00", "999.99", "0.02"),
		tier("1000.00", "1499.99", "0.03"),
		tier("1500.00", "4999.99", "0.04"),
		tier("5000.00", "", "0.05"),
	}
)

// Daily slots rules (7K / Cassino).
var (
	dailyMinCashback = d("0.01")
	dailyMaxCashback = d("5000.00")
	dailyBaseLimit   = d("20000.00") // 25% of 20k = 5k cap

	dailyTiers = []Tier{
		tier("1.00", "399.99", "0.02"),
		tier("400.00", "999.99", "0.04"),
		tier("1000.00", "4999.99", "0.06"),
		tier("5000.00", "9999.99", "0.08"),
		tier("10000.00", "11999.99", "0.12"),
		tier("12000.00", "19999.99", "0.15"),
		tier("20000.00", "", "0.25"),
	}
)

// Vera daily slots rules: different brackets, max 20% capped at 5000,
// so the base limit is 5000 / 0.20 = 25000.
var (
	veraDailyBaseLimit = d("25000.00")

	veraDailyTiers = []Tier{
		tier("1.00", "299.99", "0.02"),
		tier("300.00", "999.99", "0.04"),
		tier("1000.00", "4999.99", "0.06"),
		tier("5000.00", "14999.99", "0.08"),
		tier("15000.00", "24999.99", "0.10"),
		tier("25000.00", "29999.99", "0.15"),
		tier("30000.00", "", "0.20"),
	}
)

// Sports rules, aggregated weekly.
var (
	sportsMinCashback = d("0.01")
	sportsMaxCashback = d("5000.00")
	sportsBaseLimit   = d("50000.00") // 10% of 50k = 5k cap

	sportsTiers = []Tier{
		tier("0.01", "499.99", "0.02"),
		tier("500.00", "1999.99", "0.03"),
		tier("2000.00", "9999.99", "0.04"),
		tier("10000.00", "19999.99", "0.05"),
		tier("20000.00", "24999.99", "0.06"),
		tier("25000.00", "29999.99", "0.07"),
		tier("30000.00", "49999.99", "0.08"),
		tier("50000.00", "", "0.10"),
	}
)

// Aviator crash-game rules: same brackets as daily slots, separate payout
// context so the table is referenced under its own name.
var (
	aviatorMinCashback = d("0.01")
	aviatorMaxCashback = d("5000.00")
	aviatorBaseLimit   = d("20000.00")

	aviatorTiers = dailyTiers
)
