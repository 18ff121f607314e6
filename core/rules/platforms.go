// Package rules - Platform catalog
package rules

import "cashback-report/core/types"

// PlatformInfo is the rules-relevant slice of a platform's configuration.
// Branding (logos, colors, delivery copy) belongs to the presentation shell
// and is deliberately absent.
type PlatformInfo struct {
	// ID is the platform identifier
	ID types.Platform

	// Name is the display name
	Name string

	// HasSports enables the sports cashback category
	HasSports bool

	// HasAviator enables the aviator cashback category
	HasAviator bool

	// ExcludedWeekly lists game names ineligible for weekly cashback
	ExcludedWeekly []string

	// ExcludedDaily lists game names ineligible for daily cashback
	ExcludedDaily []string
}

var platforms = map[types.Platform]PlatformInfo{
	types.Platform7K: {
		ID:             types.Platform7K,
		Name:           "7K.bet",
		HasSports:      true,
		HasAviator:     false,
		ExcludedWeekly: excludedWeekly,
		ExcludedDaily:  excludedDaily,
	},
	types.PlatformCassino: {
		ID:             types.PlatformCassino,
		Name:           "Cassino.bet.br",
		HasSports:      false,
		HasAviator:     true,
		ExcludedWeekly: excludedWeekly,
		ExcludedDaily:  excludedDaily,
	},
	types.PlatformVera: {
		ID:             types.PlatformVera,
		Name:           "Vera.bet",
		HasSports:      false,
		HasAviator:     true,
		ExcludedWeekly: veraExcludedWeekly,
		ExcludedDaily:  veraExcludedDaily,
	},
}

// Exclusion lists. Matching is substring-based and case/whitespace-insensitive.
var (
	excludedWeekly = []string{
		"Dragon Tiger", "Bac Bo", "Double Red Dog", "Sic BO", "Jogos de Crash", "Betting Games",
	}

	veraExcludedWeekly = []string{
		"Dragon Tiger", "Bac Bo", "Double Red Dog", "Baccarat", "Sic BO", "Jogos de Crash",
	}

	excludedDaily = []string{
		"Jogos de Crash", "Vídeo Pôquer", "Inbet", "Mines", "Banana Mines", "Jogos Zeus", "Jogos de Mesa",
	}

	veraExcludedDaily = []string{
		"Crash (Aviator, JetX...)", "Apostas Esportivas", "Jogos de Mesa", "Vídeo Pôquer", "Cassino Ao Vivo",
	}
)

// PlatformByID returns the catalog entry for a platform
func PlatformByID(p types.Platform) (PlatformInfo, bool) {
	info, ok := platforms[p]
	return info, ok
}

// Platforms returns the catalog in a stable order
func Platforms() []PlatformInfo {
	return []PlatformInfo{
		platforms[types.Platform7K],
		platforms[types.PlatformCassino],
		platforms[types.PlatformVera],
	}
}
