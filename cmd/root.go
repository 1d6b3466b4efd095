package cmd

import (
	"fmt"
	"os"

	"recon-service/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "recon-service",
	Short: "Transaction Reconciliation Service",
	Long: `Recon Service reconciles transaction records between two systems
using set operations: matched identifiers, per-system leftovers, amount
discrepancies and summary statistics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format so CLI errors stay readable; debug level gives
		// ISO8601 timestamps instead of epoch
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
