package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/openpurse/walletd/internal/adapters/directory"
	"github.com/openpurse/walletd/internal/adapters/transport"
	"github.com/openpurse/walletd/internal/core/services"
	"github.com/openpurse/walletd/internal/handlers"
	"github.com/openpurse/walletd/internal/middleware"
	"github.com/openpurse/walletd/internal/platform/config"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the walletd HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func runServer() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		logger.Error("Failed to build currency registry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire the demo collaborators. Production deployments substitute real
	// directory and transport adapters here.
	loopback := transport.NewLoopback()
	walletService := services.NewWalletService(services.WalletServiceConfig{
		InitialBalance:  cfg.StartingBalance,
		Directory:       directory.NewStatic(cfg.DirectoryEntries),
		Transport:       loopback,
		Requests:        loopback,
		TransferTimeout: cfg.TransferTimeout,
		IdempotencyTTL:  cfg.IdempotencyTTL,
	})
	container := services.NewServiceContainer(services.NewConverterService(registry), walletService)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("reference_currency", cfg.ReferenceCurrency),
		slog.String("starting_balance", cfg.StartingBalance.String()),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
