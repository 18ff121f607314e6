// Package ingest - Column resolution
// Spreadsheet exports name their columns freely ("Data", "Date", "Dia" are
// all the date column), so each semantic field is resolved against a list
// of known aliases.
package ingest

import (
	"sort"
	"strings"

	"cashback-report/core/types"
)

// Known header aliases per semantic field. Resolution tries an exact
// case-insensitive match against every alias first, then substring
// containment (e.g. "Valor Apostado (R$)" contains "Valor Apostado").
var (
	dateAliases    = []string{"Data", "Date", "Dia"}
	gameAliases    = []string{"Tipo de Jogo", "Game", "Jogo", "Nome"}
	wageredAliases = []string{"Valor Apostado", "Bet", "Aposta"}
	wonAliases     = []string{"Valor Ganho", "Win", "Ganho"}
	netAliases     = []string{"GGR", "PL", "P/L", "Win/Loss"}
)

// normalize lowercases and trims a string for comparison
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// rowView wraps a raw row with its headers in a stable order, so alias
// resolution is deterministic regardless of map iteration order.
type rowView struct {
	row  types.RawRow
	keys []string
}

func newRowView(row types.RawRow) rowView {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return rowView{row: row, keys: keys}
}

// find resolves a field against the alias list.
// Exact match wins over containment for every alias in turn.
func (v rowView) find(aliases []string) (interface{}, bool) {
	for _, alias := range aliases {
		target := normalize(alias)
		for _, k := range v.keys {
			if normalize(k) == target {
				return v.row[k], true
			}
		}
		for _, k := range v.keys {
			if strings.Contains(normalize(k), target) {
				return v.row[k], true
			}
		}
	}
	return nil, false
}
