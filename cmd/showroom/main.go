// Showroom server — hosts live demo environments, proxies conversation turns
// to the agent gateway, and streams conversation/timeline/approval updates to
// the frontend over WebSocket.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/showroom-hq/showroom/pkg/api"
	"github.com/showroom-hq/showroom/pkg/cleanup"
	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/database"
	"github.com/showroom-hq/showroom/pkg/events"
	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/services"
	"github.com/showroom-hq/showroom/pkg/session"
	"github.com/showroom-hq/showroom/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting Showroom",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded", "tools", stats.Tools, "templates", stats.Templates)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	environmentService := services.NewEnvironmentService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	timelineService := services.NewTimelineService(dbClient.Client)
	demoService := services.NewCustomDemoService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Agent gateway client
	gatewayClient := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Timeout)
	slog.Info("Agent gateway client initialized", "base_url", cfg.Gateway.BaseURL)

	// 6. Session manager with write-through persistence
	sink := session.NewPersistenceSink(messageService, timelineService, eventPublisher)
	sessionManager := session.NewManager(cfg, gatewayClient, sink, environmentService, eventPublisher)

	// 7. Retention loop
	cleanupService := cleanup.NewService(cleanup.Options{
		EventTTL: cfg.Defaults.EventTTL,
	}, sessionManager, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	httpServer := api.NewServer(cfg, dbClient, sessionManager, connManager)
	httpServer.SetCustomDemoService(demoService)
	if dir := os.Getenv("DASHBOARD_DIR"); dir != "" {
		httpServer.SetDashboardDir(dir)
		slog.Info("Serving dashboard", "dir", dir)
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Showroom started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
