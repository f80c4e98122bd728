package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/jusunglee/boothko/internal/db"
	"github.com/jusunglee/boothko/internal/db/postgres"
	"github.com/jusunglee/boothko/internal/db/store"
	"github.com/jusunglee/boothko/internal/dictionary"
	"github.com/jusunglee/boothko/internal/health"
	"github.com/jusunglee/boothko/internal/logger"
	"github.com/jusunglee/boothko/internal/metrics"
	"github.com/jusunglee/boothko/internal/suggest"
	"github.com/jusunglee/boothko/internal/web"
	"github.com/jusunglee/boothko/internal/web/middleware"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("boothko-web")

	var (
		port             = fs.Int64Long("port", 3000, "HTTP server port")
		metricsPort      = fs.Int64Long("metrics-port", 9090, "health and metrics server port")
		databaseURL      = fs.StringLong("database-url", "sqlite://booth-ko.db", "sqlite:// path or postgres:// URL")
		historyRetention = fs.DurationLong("history-retention", 90*24*time.Hour, "how long search history is kept")
		rateLimit        = fs.Int64Long("rate-limit", 60, "history writes allowed per client per minute")
		allowedOrigins   = fs.StringLong("allowed-origins", "", "comma-separated list of allowed CORS origins")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *rateLimit < 1 {
		return errors.New("rate-limit must be at least 1")
	}
	if *historyRetention <= 0 {
		return errors.New("history-retention must be positive")
	}

	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, driver, err := store.Open(ctx, *databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()
	log.InfoContext(ctx, "connected to database", "driver", driver)

	// Build the dictionary before serving so the first request doesn't pay for it.
	composer := suggest.NewComposer(dictionary.Default())
	log.InfoContext(ctx, "loaded dictionary", "entries", dictionary.Default().Len())

	origins := lo.Compact(lo.Map(strings.Split(*allowedOrigins, ","), func(o string, _ int) string {
		return strings.TrimSpace(o)
	}))

	limiter := middleware.NewRateLimiter(ctx, int(*rateLimit), time.Minute)
	router := web.NewRouter(repo, log, composer, limiter, origins)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	healthServer := health.New(int(*metricsPort), repo, log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.InfoContext(gctx, "starting web server", "port", *port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.InfoContext(gctx, "starting health server", "port", *metricsPort)
		return healthServer.Start()
	})

	g.Go(func() error {
		return db.RunRetention(gctx, repo, log, *historyRetention, time.Hour)
	})

	if pg, ok := repo.(*postgres.Repository); ok {
		g.Go(func() error {
			exportPoolStats(gctx, pg)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.InfoContext(ctx, "shutting down gracefully", "cause", context.Cause(gctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return errors.Join(
			server.Shutdown(shutdownCtx),
			healthServer.Shutdown(shutdownCtx),
		)
	})

	return g.Wait()
}

// exportPoolStats copies pgxpool counters into Prometheus gauges.
func exportPoolStats(ctx context.Context, repo *postgres.Repository) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s := repo.PoolStats()
			metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
			metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
			metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
			metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
		case <-ctx.Done():
			return
		}
	}
}
