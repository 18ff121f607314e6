// Package report - Output formatters
// This package produces human and machine-readable outputs.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"cashback-report/core/engine"
	"cashback-report/core/types"
	"cashback-report/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, r *BatchReport) error
}

// ForFormat returns the formatter for a format name
func ForFormat(f Format, showDetails bool) (Formatter, error) {
	switch f {
	case FormatCLI:
		return &CLIFormatter{ShowDetails: showDetails}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	}
	return nil, errors.Newf(errors.TypeConfig, "unknown output format: %s", f)
}

// JSONFormatter renders the report as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report as JSON
func (f *JSONFormatter) Render(w io.Writer, r *BatchReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// CLIFormatter renders a human-readable summary table
type CLIFormatter struct {
	// ShowDetails includes the per-entry breakdown
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// categoryLabels are the human labels used in CLI output
var categoryLabels = map[types.Category]string{
	types.CategoryWeekly:  "Live Casino (semanal)",
	types.CategoryDaily:   "Slots (diário)",
	types.CategorySports:  "Esportes (semanal)",
	types.CategoryAviator: "Aviator (diário)",
}

// Render writes the report as a boxed table
func (f *CLIFormatter) Render(w io.Writer, r *BatchReport) error {
	fmt.Fprintln(w, "┌──────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                         CASHBACK CONSOLIDADO                         │")
	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────────────┤")

	if f.ShowDetails {
		for _, entry := range r.Summary {
			label := fmt.Sprintf("%s  %-22s %5s", entry.Date, categoryLabels[entry.Mode], engine.FormatPercent(entry.Percent))
			fmt.Fprintf(w, "│ %-48s %19s │\n", label, engine.FormatCurrency(entry.Cashback))
		}
		fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────────────┤")
	}

	for _, c := range types.Categories() {
		amount := r.DetailsByMode[c]
		if amount.IsZero() {
			continue
		}
		fmt.Fprintf(w, "│ %-48s %19s │\n", categoryLabels[c], engine.FormatCurrency(amount))
	}

	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────────────┤")
	fmt.Fprintf(w, "│ %-48s %19s │\n", "TOTAL", engine.FormatCurrency(r.TotalCashback))
	fmt.Fprintln(w, "└──────────────────────────────────────────────────────────────────────┘")
	return nil
}
