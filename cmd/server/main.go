// Command server starts the resume scoring HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httpserver "github.com/hirelens/resume-scorer/internal/adapter/httpserver"
	"github.com/hirelens/resume-scorer/internal/adapter/observability"
	"github.com/hirelens/resume-scorer/internal/adapter/textextractor/local"
	"github.com/hirelens/resume-scorer/internal/app"
	"github.com/hirelens/resume-scorer/internal/catalog"
	"github.com/hirelens/resume-scorer/internal/config"
	"github.com/hirelens/resume-scorer/internal/scoring"
	"github.com/hirelens/resume-scorer/internal/usecase"
)

func main() {
	// Load .env when present; deployed environments configure the process env directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	// Register all Prometheus metrics once per process so that /metrics
	// exposes HTTP, extraction, and scoring instrumentation.
	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	// Domain catalog
	cat, err := catalog.Load()
	if err != nil {
		slog.Error("catalog load failed", slog.Any("error", err))
		os.Exit(1)
	}

	// Scoring engine with thresholds from the environment
	scorer, err := scoring.New(cat, scoring.Thresholds{
		AboutOptimalMin:    cfg.AboutOptimalMin,
		AboutOptimalMax:    cfg.AboutOptimalMax,
		FresherWordMin:     cfg.FresherWordMin,
		FresherWordMax:     cfg.FresherWordMax,
		ExperiencedWordMin: cfg.ExperiencedWordMin,
		ExperiencedWordMax: cfg.ExperiencedWordMax,
	})
	if err != nil {
		slog.Error("scoring engine init failed", slog.Any("error", err))
		os.Exit(1)
	}

	// In-process text extractor (PDF/DOCX)
	ext := local.New()

	// Usecases
	analyzeSvc := usecase.NewAnalyzeService(ext, scorer)

	// Score drift monitor feeds the resume_score_drift gauge
	drift := observability.NewScoreDriftMonitor(0, 0)

	// Readiness checks
	catalogCheck, scorerCheck := app.BuildReadinessChecks(cat, scorer)

	// HTTP server
	srv := httpserver.NewServer(cfg, analyzeSvc, cat, drift, catalogCheck, scorerCheck)

	// Build router and wrap it in the OTel-instrumented handler
	handler := otelhttp.NewHandler(app.BuildRouter(cfg, srv), "http.server")

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
