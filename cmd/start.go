package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"recon-service/core/audit"
	"recon-service/core/config"
	"recon-service/core/database"
	"recon-service/core/loader"
	"recon-service/core/logger"
	"recon-service/core/middleware/auth"
	"recon-service/core/middleware/rayid"
	"recon-service/core/middleware/readonly"
	"recon-service/core/storage"

	"recon-service/feature/assistant"
	"recon-service/feature/health"
	"recon-service/feature/reconciliation"
	"recon-service/feature/session"
	"recon-service/feature/session/models"
	"recon-service/feature/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "recon-service/docs/swagger"
)

// @title Transaction Reconciliation API
// @version 1.0
// @description API for reconciling transactions between different systems using set operations.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&models.Session{}, &models.Transaction{}); err != nil {
			logg.Fatal("Failed to migrate database schema", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Storage (Optional, report archiving)
		var store storage.Client
		if cfg.Storage.Enabled() {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			logg.Info("Report archiving enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Audit Sink
		sink := audit.NewFileSink(cfg.Audit)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public surface: health probes and API docs
		health.Register(app)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Governance: optional read-only mode, then API key auth
		app.Use(readonly.New(cfg.Server.ReadOnly))
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Features
		sessionFeature := session.NewFeature(db, logg)
		sessions := sessionFeature.Service()

		transactionFeature := transaction.NewFeature(db, logg, sessions)
		reconFeature := reconciliation.NewFeature(db, logg, sessions, store, cfg.Storage.Bucket)

		mgr := loader.NewManager()
		mgr.Register(sessionFeature)
		mgr.Register(transactionFeature)
		mgr.Register(reconFeature)
		mgr.Register(assistant.NewFeature(
			sessions,
			transactionFeature.Service(),
			reconFeature.Service(),
			sink,
			logg,
		))

		api := app.Group("/api/v1")
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
