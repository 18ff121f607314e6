// Package cmd provides the CLI commands for cashback-report.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cashback-report/internal/config"
	"cashback-report/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cashback-report",
	Short: "Compute tiered cashback rebates from platform loss reports",
	Long: `cashback-report computes tiered cashback rebates for gambling-platform
players and consolidates spreadsheet exports into per-period reports.

Examples:
  cashback-report calculate 1500 --category weekly --platform 7K
  cashback-report process losses.xlsx --platform Vera
  cashback-report process export.csv --platform Cassino --format json`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cashback-report.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cashback-report version 0.1.0")
	},
}
