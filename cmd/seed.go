package cmd

import (
	"context"
	"log"

	"recon-service/core/config"
	"recon-service/core/database"
	"recon-service/core/logger"
	"recon-service/feature/session"
	"recon-service/feature/session/models"
	"recon-service/feature/transaction"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var seedClear bool

// demoTransactions is the sample scenario: TXN-101..105 reported by the
// finance system, TXN-101..103 and TXN-106 by the payment provider, with one
// amount disagreement on TXN-102.
func demoTransactions() []transaction.CreateTransactionRequest {
	return []transaction.CreateTransactionRequest{
		{TransactionID: "TXN-101", System: models.SystemA, Amount: 100, Metadata: `{"source": "finance_export"}`},
		{TransactionID: "TXN-102", System: models.SystemA, Amount: 200, Metadata: `{"source": "finance_export"}`},
		{TransactionID: "TXN-103", System: models.SystemA, Amount: 300, Metadata: `{"source": "finance_export"}`},
		{TransactionID: "TXN-104", System: models.SystemA, Amount: 400, Metadata: `{"source": "finance_export"}`},
		{TransactionID: "TXN-105", System: models.SystemA, Amount: 500, Metadata: `{"source": "finance_export"}`},
		{TransactionID: "TXN-101", System: models.SystemB, Amount: 100, Metadata: `{"source": "stripe_api"}`},
		{TransactionID: "TXN-102", System: models.SystemB, Amount: 250, Metadata: `{"source": "stripe_api"}`},
		{TransactionID: "TXN-103", System: models.SystemB, Amount: 300, Metadata: `{"source": "stripe_api"}`},
		{TransactionID: "TXN-106", System: models.SystemB, Amount: 600, Metadata: `{"source": "stripe_api"}`},
	}
}

// seedCmd loads a demo session with sample transactions.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample reconciliation data",
	Long: `Creates a demo reconciliation session with sample transactions from
two systems, including matched ids, per-system leftovers and one amount
discrepancy. Useful for trying the API locally.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: "info", Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if err := db.AutoMigrate(&models.Session{}, &models.Transaction{}); err != nil {
			return err
		}

		ctx := context.Background()

		if seedClear {
			if err := clearAll(ctx, db, logg); err != nil {
				return err
			}
		}

		sessions := session.NewService(db, logg)
		sess, err := sessions.Create(ctx, session.CreateSessionRequest{
			SessionName: "demo_finance_vs_stripe",
			SystemAName: "Finance System",
			SystemBName: "Stripe",
			Description: "Demo session seeded with sample transactions",
		})
		if err != nil {
			return err
		}
		logg.Info("Created reconciliation session",
			zap.Uint("id", sess.ID),
			zap.String("name", sess.SessionName),
		)

		transactions := transaction.NewService(db, logg)
		records, err := transactions.BulkCreate(ctx, sess.ID, demoTransactions())
		if err != nil {
			return err
		}
		logg.Info("Seeded sample transactions", zap.Int("count", len(records)))
		return nil
	},
}

func clearAll(ctx context.Context, db *gorm.DB, logg *zap.Logger) error {
	transactions := db.WithContext(ctx).Where("1 = 1").Delete(&models.Transaction{})
	if transactions.Error != nil {
		return transactions.Error
	}
	sessions := db.WithContext(ctx).Where("1 = 1").Delete(&models.Session{})
	if sessions.Error != nil {
		return sessions.Error
	}
	logg.Info("Cleared existing data",
		zap.Int64("sessions", sessions.RowsAffected),
		zap.Int64("transactions", transactions.RowsAffected),
	)
	return nil
}

func init() {
	seedCmd.Flags().BoolVar(&seedClear, "clear", false, "Delete all existing sessions and transactions first")
	RootCmd.AddCommand(seedCmd)
}
