// Package report defines the batch report produced by the ingestion
// pipeline and its output formatters.
package report

import (
	"github.com/shopspring/decimal"

	"cashback-report/core/types"
)

// ProcessedEntry is one aggregate's result: the cashback owed for one
// (bucket date, category) pair.
type ProcessedEntry struct {
	// Date is the bucket date in DD/MM/YYYY format. For weekly and sports
	// entries this is the Monday starting the week.
	Date string `json:"date"`

	// Mode is the cashback category
	Mode types.Category `json:"mode"`

	// Loss is the total loss accumulated in the bucket
	Loss decimal.Decimal `json:"loss"`

	// Cashback is the rebate for the bucket, truncated to cents
	Cashback decimal.Decimal `json:"cashback"`

	// Percent is the applied tier fraction
	Percent decimal.Decimal `json:"percent"`
}

// BatchReport is the consolidated output of one ingestion run.
// Constructed once, immutable thereafter.
type BatchReport struct {
	// Summary holds the per-aggregate entries, ordered ascending by date
	Summary []ProcessedEntry `json:"summary"`

	// TotalCashback is the sum of all entry cashback values
	TotalCashback decimal.Decimal `json:"total_cashback"`

	// DetailsByMode breaks the total down per category
	DetailsByMode map[types.Category]decimal.Decimal `json:"details_by_mode"`
}

// NewBatchReport returns an empty report with zeroed totals
func NewBatchReport() *BatchReport {
	details := make(map[types.Category]decimal.Decimal, len(types.Categories()))
	for _, c := range types.Categories() {
		details[c] = decimal.Zero
	}
	return &BatchReport{
		Summary:       []ProcessedEntry{},
		TotalCashback: decimal.Zero,
		DetailsByMode: details,
	}
}

// Add appends an entry and accumulates the totals
func (r *BatchReport) Add(entry ProcessedEntry) {
	r.Summary = append(r.Summary, entry)
	r.TotalCashback = r.TotalCashback.Add(entry.Cashback)
	r.DetailsByMode[entry.Mode] = r.DetailsByMode[entry.Mode].Add(entry.Cashback)
}
