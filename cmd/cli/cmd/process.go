// Package cmd - process command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cashback-report/adapters/spreadsheet"
	"cashback-report/core/ingest"
	"cashback-report/core/report"
	"cashback-report/core/rules"
	"cashback-report/core/types"
	"cashback-report/internal/config"
	"cashback-report/internal/logging"
)

var (
	procPlatform string
	procFormat   string
	procDetails  bool
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Process a spreadsheet export into a consolidated cashback report",
	Long: `Parse a spreadsheet export (XLSX or CSV), classify each row into a
cashback category, aggregate losses per date bucket and produce the
consolidated report.

Examples:
  cashback-report process losses.xlsx --platform 7K
  cashback-report process export.csv --platform Vera --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&procPlatform, "platform", "p", "", "platform identifier (7K, Cassino, Vera)")
	processCmd.Flags().StringVarP(&procFormat, "format", "f", "", "output format (cli, json)")
	processCmd.Flags().BoolVarP(&procDetails, "details", "d", true, "show the per-entry breakdown")
}

func runProcess(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read file: %w", err)
	}

	platform := resolvePlatform(procPlatform)
	logging.Info("processing export",
		zap.String("file", path),
		zap.String("platform", platform.String()))

	rows, err := spreadsheet.DecodeFile(path, data)
	if err != nil {
		return err
	}

	batch, err := ingest.ProcessBatch(rows, platform)
	if err != nil {
		return err
	}

	format := report.Format(procFormat)
	if procFormat == "" {
		format = report.Format(config.Get().Output.DefaultFormat)
	}
	formatter, err := report.ForFormat(format, procDetails && config.Get().Output.ShowDetails)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, batch)
}

// resolvePlatform falls back to the configured default platform
func resolvePlatform(flag string) types.Platform {
	if flag != "" {
		return types.Platform(flag)
	}
	return types.Platform(config.Get().Report.DefaultPlatform)
}

// platformsCmd lists the supported platforms
var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms and their cashback categories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range rules.Platforms() {
			categories := "weekly, daily"
			if info.HasSports {
				categories += ", sports"
			}
			if info.HasAviator {
				categories += ", aviator"
			}
			fmt.Printf("%-8s %-16s %s\n", info.ID, info.Name, categories)
		}
	},
}
