package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"recon-service/core/config"
	"recon-service/core/database"
	"recon-service/core/logger"
	"recon-service/feature/reconciliation"
	"recon-service/feature/session"

	"github.com/spf13/cobra"
)

var (
	reconcileSession string
	reconcileJSON    bool
)

// reconcileCmd runs all three analyses for one session from the CLI.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run a reconciliation analysis against the database",
	Long: `Runs the set-based reconciliation, the amount discrepancy analysis
and the summary for one session and prints a report. The session may be
addressed by numeric id or by name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reconcileSession == "" {
			return fmt.Errorf("--session is required (id or name)")
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: "warn", Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		ctx := context.Background()
		sessions := session.NewService(db, logg)

		sessionID, err := resolveSession(ctx, sessions, reconcileSession)
		if err != nil {
			return err
		}

		svc := reconciliation.NewService(db, sessions, nil, cfg.Storage.Bucket, logg)

		analysis, err := svc.Analyse(ctx, sessionID)
		if err != nil {
			return err
		}
		discrepancies, err := svc.Discrepancies(ctx, sessionID)
		if err != nil {
			return err
		}
		summary, err := svc.Summary(ctx, sessionID)
		if err != nil {
			return err
		}

		if reconcileJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"analysis":      analysis,
				"discrepancies": discrepancies,
				"summary":       summary,
			})
		}

		printReport(analysis, discrepancies, summary)
		return nil
	},
}

// resolveSession accepts a numeric id or a session name.
func resolveSession(ctx context.Context, sessions *session.Service, ref string) (uint, error) {
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		return uint(id), nil
	}
	found, err := sessions.GetByName(ctx, ref)
	if err != nil {
		return 0, err
	}
	if found == nil {
		return 0, fmt.Errorf("session %q not found", ref)
	}
	return found.ID, nil
}

func printReport(analysis *reconciliation.AnalysisResult, discrepancies *reconciliation.DiscrepancyResult, summary *reconciliation.SummaryResult) {
	fmt.Printf("Session #%d: %s (%s vs %s)\n\n",
		analysis.SessionID, analysis.SessionName, analysis.SystemAName, analysis.SystemBName)

	fmt.Printf("Matched:        %d %v\n", analysis.MatchedCount, analysis.MatchedTransactions)
	fmt.Printf("Only in %s: %d %v\n", analysis.SystemAName, analysis.OnlyInSystemACount, analysis.OnlyInSystemA)
	fmt.Printf("Only in %s: %d %v\n", analysis.SystemBName, analysis.OnlyInSystemBCount, analysis.OnlyInSystemB)
	fmt.Printf("Match rate:     %.2f%%\n\n", analysis.MatchRate)

	fmt.Printf("Amount discrepancies: %d (total $%.2f)\n",
		discrepancies.TransactionsWithDiscrepancies, discrepancies.TotalDiscrepancyAmount)
	for _, d := range discrepancies.Discrepancies {
		fmt.Printf("  %s: %.2f vs %.2f (diff %.2f)\n",
			d.TransactionID, d.SystemAAmount, d.SystemBAmount, d.Difference)
	}

	fmt.Printf("\nTotals: %s $%.2f, %s $%.2f (difference $%.2f)\n",
		summary.SystemAName, summary.SystemATotalAmount,
		summary.SystemBName, summary.SystemBTotalAmount,
		summary.AmountDifference)
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileSession, "session", "", "Session id or name to reconcile")
	reconcileCmd.Flags().BoolVar(&reconcileJSON, "json", false, "Print the full report as JSON")
	RootCmd.AddCommand(reconcileCmd)
}
