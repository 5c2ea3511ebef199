package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"findash/internal/config"
	"findash/internal/handlers"
	"findash/internal/middleware"
	"findash/internal/repositories"
	"findash/internal/scoring"
	"findash/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env file not found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	catalog, err := repositories.NewCatalogRepository(cfg.Catalog.Path)
	if err != nil {
		slog.Error("failed to load institution catalogue", "error", err)
		os.Exit(1)
	}
	savingsRepo := repositories.NewSavingsRepository()

	recorder := services.NewPrometheusMetrics()
	expenseFeed := services.NewLatestExpenseFeed()

	metricsService := services.NewMetricsService(recorder)
	analyzer := services.NewCategoryAnalyzer(catalog.CategoryThresholds())
	anomalyService := services.NewAnomalyService(analyzer, recorder)
	reportService := services.NewReportService(recorder)
	savingsService := services.NewSavingsService(savingsRepo, expenseFeed, recorder)

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Scoring.CircuitMaxFailures,
		ResetTimeout:    cfg.Scoring.CircuitResetTimeout,
		HalfOpenMaxSucc: 3,
	})
	insightService := services.NewInsightService(
		scoringBackend(cfg), breaker, recorder, cfg.Scoring.Timeout)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(
		cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst))

	handlers.RegisterRoutes(e,
		handlers.NewDashboardHandler(catalog, metricsService, anomalyService, reportService, expenseFeed),
		handlers.NewSavingsHandler(catalog, savingsService),
		handlers.NewInsightHandler(insightService),
		handlers.NewHealthCheckHandler(catalog),
	)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server",
			"addr", server.Addr,
			"environment", cfg.Server.Environment,
			"scoring_mode", cfg.Scoring.Mode)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// scoringBackend selects the configured scoring implementation
func scoringBackend(cfg *config.Config) services.ScoringClientInterface {
	if cfg.Scoring.Mode == config.ScoringModeRemote {
		return scoring.NewClient(cfg.Scoring.BaseURL, cfg.Scoring.Timeout)
	}
	return scoring.NewLocalScorer()
}

// setupLogger configures slog with JSON output in production and text
// output for development
func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
