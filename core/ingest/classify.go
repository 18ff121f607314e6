// Package ingest - Category classification
// Classification is an ordered list of keyword rules evaluated in priority
// order. The order is a deliberate tie-break: a live-casino game on the
// daily exclusion list still lands in weekly if it qualified there first.
// Categories are mutually exclusive per row.
package ingest

import (
	"strings"

	"cashback-report/core/rules"
	"cashback-report/core/types"
)

// liveKeywords mark live-casino games (weekly category candidates)
var liveKeywords = []string{
	"live", "ao vivo", "roulette", "roleta", "blackjack", "baccarat",
	"crazy time", "monopoly", "mega ball", "dream catcher", "sic bo", "dragon tiger",
}

// sportsKeywords mark sportsbook entries
var sportsKeywords = []string{"sport", "esport", "apostas", "odds"}

// classifierRule is one step of the ordered decision.
// Decided=false means the rule does not apply and the next one runs.
// Decided=true with Excluded=true drops the row from every category.
type classifierRule struct {
	name     string
	evaluate func(game string, platform rules.PlatformInfo) classifierOutcome
}

type classifierOutcome struct {
	decided  bool
	excluded bool
	category types.Category
}

func outcomeSkip() classifierOutcome {
	return classifierOutcome{}
}

func outcomeMatch(c types.Category) classifierOutcome {
	return classifierOutcome{decided: true, category: c}
}

func outcomeExclude() classifierOutcome {
	return classifierOutcome{decided: true, excluded: true}
}

// classifierRules in priority order: aviator, sports, live casino, slots.
var classifierRules = []classifierRule{
	{
		name: "aviator",
		evaluate: func(game string, platform rules.PlatformInfo) classifierOutcome {
			if strings.Contains(game, "aviator") && platform.HasAviator {
				return outcomeMatch(types.CategoryAviator)
			}
			return outcomeSkip()
		},
	},
	{
		name: "sports",
		evaluate: func(game string, platform rules.PlatformInfo) classifierOutcome {
			if !containsAny(game, sportsKeywords) {
				return outcomeSkip()
			}
			if platform.HasSports {
				return outcomeMatch(types.CategorySports)
			}
			// Sports entries on platforms without sports cashback
			// contribute to nothing.
			return outcomeExclude()
		},
	},
	{
		name: "live-casino",
		evaluate: func(game string, platform rules.PlatformInfo) classifierOutcome {
			if containsAny(game, liveKeywords) && !matchesExclusion(game, platform.ExcludedWeekly) {
				return outcomeMatch(types.CategoryWeekly)
			}
			return outcomeSkip()
		},
	},
	{
		name: "slots",
		evaluate: func(game string, platform rules.PlatformInfo) classifierOutcome {
			if matchesExclusion(game, platform.ExcludedDaily) {
				return outcomeExclude()
			}
			return outcomeMatch(types.CategoryDaily)
		},
	},
}

// Classify maps a game name to its cashback category for a platform.
// Returns false when the row is eligible for no category.
func Classify(gameName string, platform types.Platform) (types.Category, bool) {
	info, ok := rules.PlatformByID(platform)
	if !ok {
		return "", false
	}
	game := normalize(gameName)
	for _, rule := range classifierRules {
		outcome := rule.evaluate(game, info)
		if !outcome.decided {
			continue
		}
		if outcome.excluded {
			return "", false
		}
		return outcome.category, true
	}
	return "", false
}

func containsAny(game string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(game, k) {
			return true
		}
	}
	return false
}

// matchesExclusion reports whether the game name contains any entry of an
// exclusion list, case and whitespace insensitive.
func matchesExclusion(game string, exclusions []string) bool {
	for _, excluded := range exclusions {
		if strings.Contains(game, normalize(excluded)) {
			return true
		}
	}
	return false
}
