// Package cmd - calculate command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"cashback-report/core/engine"
	"cashback-report/core/types"
)

var (
	calcCategory string
	calcPlatform string
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate <loss-amount>",
	Short: "Compute the cashback for a single loss amount",
	Long: `Compute the tiered cashback rebate for one loss amount.

The loss amount is the absolute value of the player's net loss for
the period (wagered minus won).

Examples:
  cashback-report calculate 1500 --category weekly --platform 7K
  cashback-report calculate 250.75 --category daily --platform Vera`,
	Args: cobra.ExactArgs(1),
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&calcCategory, "category", "c", "weekly", "cashback category (weekly, daily, sports, aviator)")
	calculateCmd.Flags().StringVarP(&calcPlatform, "platform", "p", "", "platform identifier (7K, Cassino, Vera)")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	loss, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid loss amount %q: %w", args[0], err)
	}

	platform := resolvePlatform(calcPlatform)

	result, err := engine.Calculate(loss, types.Category(calcCategory), platform)
	if err != nil {
		return err
	}

	fmt.Printf("Perda:     %s\n", engine.FormatCurrency(result.LossAmount))
	fmt.Printf("Percentual: %s\n", engine.FormatPercent(result.AppliedPercent))
	fmt.Printf("Cashback:  %s\n", engine.FormatCurrency(result.CashbackAmount))
	fmt.Printf("Status:    %s\n", result.Message)
	return nil
}
