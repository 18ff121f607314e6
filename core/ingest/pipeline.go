// Package ingest implements the spreadsheet ingestion pipeline: column
// resolution, date normalization, category classification, aggregation
// by date bucket and rebate computation per aggregate.
//
// Per-row problems (missing columns, unclassifiable games) drop the row
// and never fail the batch; partial results beat all-or-nothing failure.
package ingest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cashback-report/core/engine"
	"cashback-report/core/report"
	"cashback-report/core/types"
	"cashback-report/internal/errors"
	"cashback-report/internal/logging"
)

// categoryWeight orders categories for the date tie-break in the final sort
var categoryWeight = map[types.Category]int{
	types.CategoryWeekly:  0,
	types.CategoryDaily:   1,
	types.CategorySports:  2,
	types.CategoryAviator: 3,
}

// ProcessBatch runs the full pipeline over a decoded row table and
// produces the consolidated cashback report for one platform.
func ProcessBatch(rows []types.RawRow, platform types.Platform) (*report.BatchReport, error) {
	if !platform.IsValid() {
		return nil, errors.Newf(errors.TypeNotSupported, "unknown platform %q", platform)
	}

	aggregates := newAggregateSet()
	skipped := 0

	for i, row := range rows {
		view := newRowView(row)

		rawDate, ok := view.find(dateAliases)
		if !ok {
			skipped++
			logging.Debug("row skipped: no date column", zap.Int("row", i))
			continue
		}
		dateStr, ok := NormalizeDate(rawDate)
		if !ok {
			skipped++
			logging.Debug("row skipped: empty date", zap.Int("row", i))
			continue
		}

		gameVal, ok := view.find(gameAliases)
		if !ok {
			skipped++
			logging.Debug("row skipped: no game column", zap.Int("row", i))
			continue
		}
		gameName := strings.TrimSpace(fmt.Sprint(gameVal))
		if gameName == "" {
			skipped++
			continue
		}

		loss := deriveLoss(view)

		category, ok := Classify(gameName, platform)
		if !ok {
			skipped++
			logging.Debug("row skipped: no eligible category",
				zap.Int("row", i), zap.String("game", gameName))
			continue
		}

		bucket := dateStr
		if category == types.CategoryWeekly || category == types.CategorySports {
			bucket = WeekStart(dateStr)
		}
		aggregates.add(bucket, category, loss)
	}

	entries := make([]report.ProcessedEntry, 0, len(aggregates.order))
	for _, agg := range aggregates.values() {
		// Cashback is owed on positive loss only.
		if !agg.TotalLoss.IsPositive() {
			continue
		}
		result, err := engine.Calculate(agg.TotalLoss, agg.Mode, platform)
		if err != nil {
			return nil, err
		}
		if !result.Granted() {
			continue
		}
		entries = append(entries, report.ProcessedEntry{
			Date:     agg.Date,
			Mode:     agg.Mode,
			Loss:     agg.TotalLoss,
			Cashback: result.CashbackAmount,
			Percent:  result.AppliedPercent,
		})
	}

	sortEntries(entries)

	batch := report.NewBatchReport()
	for _, entry := range entries {
		batch.Add(entry)
	}

	logging.Debug("batch processed",
		zap.Int("rows", len(rows)),
		zap.Int("skipped", skipped),
		zap.Int("entries", len(batch.Summary)))
	return batch, nil
}

// deriveLoss computes a row's loss contribution.
// Wagered minus won when both columns resolve; otherwise the signed net
// (GGR) column. A negative net value is inverted to a positive loss only
// when no wagered column resolved. This is an ambiguous source convention
// preserved as-is pending product clarification.
func deriveLoss(view rowView) decimal.Decimal {
	wagered, wageredOK := view.find(wageredAliases)
	won, wonOK := view.find(wonAliases)
	if wageredOK && wonOK {
		return ParseNumber(wagered).Sub(ParseNumber(won))
	}

	net, netOK := view.find(netAliases)
	if !netOK {
		return decimal.Zero
	}
	loss := ParseNumber(net)
	if loss.IsNegative() && !wageredOK {
		loss = loss.Abs()
	}
	return loss
}

// sortEntries orders the report ascending by bucket date, with the fixed
// category order as tie-break. Unparseable dates sort last.
func sortEntries(entries []report.ProcessedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, errI := ParseBRDate(entries[i].Date)
		dj, errJ := ParseBRDate(entries[j].Date)
		switch {
		case errI != nil && errJ != nil:
			return entries[i].Date < entries[j].Date
		case errI != nil:
			return false
		case errJ != nil:
			return true
		}
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return categoryWeight[entries[i].Mode] < categoryWeight[entries[j].Mode]
	})
}
