package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"merrymeal/internal/api"
	"merrymeal/internal/auth"
	"merrymeal/internal/config"
	"merrymeal/internal/models"
	"merrymeal/internal/monitoring"
	"merrymeal/internal/store"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration; fall back to defaults when no file is present.
	cfg := config.Default()
	if _, err := os.Stat(*configFile); err == nil {
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Fatal("failed to load configuration", zap.Error(err))
		}
	} else {
		logger.Info("no config file found, using defaults", zap.String("path", *configFile))
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Metrics.Port = *metricsPort
	}

	// Seed the per-screen collections with the demo data.
	stores := store.Seed()

	// The credential store is injected rather than hard-coded; the demo
	// admin account comes from configuration.
	creds := auth.NewMemoryCredentials()
	if err := creds.Create(models.User{
		Email: cfg.Auth.Admin.Email,
		Name:  cfg.Auth.Admin.Name,
		Role:  cfg.Auth.Admin.Role,
	}, cfg.Auth.Admin.Password); err != nil {
		logger.Fatal("failed to seed admin account", zap.Error(err))
	}
	sessions := auth.NewManager(creds, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Std())

	monitor := monitoring.NewMonitor()
	collectors := monitoring.NewCollectors(prometheus.DefaultRegisterer)

	consoleAPI := api.NewServer(stores, sessions, monitor, collectors, logger)

	// Start metrics server
	if cfg.Metrics.Enabled {
		go startMetricsServer(cfg.Metrics.Port, cfg.Metrics.Path, logger)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: consoleAPI.Router(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down servers")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("API server shutdown error", zap.Error(err))
		}

		cancel()
	}()

	logger.Info("starting API server", zap.Int("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal("API server error", zap.Error(err))
	}

	<-ctx.Done()
}

func startMetricsServer(port int, path string, logger *zap.Logger) {
	metricsRouter := gin.Default()
	metricsRouter.GET(path, gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	logger.Info("starting metrics server", zap.Int("port", port))
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error("metrics server error", zap.Error(err))
	}
}
