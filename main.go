package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/talmyra/website/pkg/api"
	"github.com/talmyra/website/pkg/clients/formbackend"
	"github.com/talmyra/website/pkg/components"
	"github.com/talmyra/website/pkg/config"
	"github.com/talmyra/website/pkg/logging"
	"github.com/talmyra/website/pkg/metrics"
	"github.com/talmyra/website/pkg/middleware"
	"github.com/talmyra/website/pkg/services"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// Initialize API clients
	backend := formbackend.NewClient(cfg.FormBackend.Timeout, logger)

	// Initialize services
	submissionService := services.NewLeadSubmissionService(backend, cfg.FormBackend, m, logger)

	// Initialize handlers
	handlers := api.NewHandlers(submissionService, components.Site{
		Name: cfg.SiteName,
		URL:  cfg.SiteURL,
	}, logger)

	router, err := api.NewRouter(api.RouterConfig{
		Handlers:    handlers,
		Logger:      logger,
		Registry:    registry,
		Metrics:     m,
		Limiter:     middleware.NewRateLimiter(cfg.SubmitRateLimit, cfg.SubmitRateBurst),
		CORSOrigins: cfg.CORSAllowedOrigins,

		TrustedProxies: cfg.TrustedProxies,
	})
	if err != nil {
		logger.Fatal("error building router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}
