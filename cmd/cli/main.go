// Package main is the entry point for the cashback-report CLI.
package main

import (
	"os"

	"cashback-report/cmd/cli/cmd"
	"cashback-report/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
