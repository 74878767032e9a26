package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jswiatek/kapital/internal/cache"
	"github.com/jswiatek/kapital/internal/config"
	"github.com/jswiatek/kapital/internal/database"
	"github.com/jswiatek/kapital/internal/modules/analytics"
	analyticshandlers "github.com/jswiatek/kapital/internal/modules/analytics/handlers"
	"github.com/jswiatek/kapital/internal/modules/insights"
	"github.com/jswiatek/kapital/internal/modules/investments"
	"github.com/jswiatek/kapital/internal/modules/investors"
	"github.com/jswiatek/kapital/internal/modules/records"
	votinghandlers "github.com/jswiatek/kapital/internal/modules/voting/handlers"
	"github.com/jswiatek/kapital/internal/scheduler"
	"github.com/jswiatek/kapital/internal/server"
	"github.com/jswiatek/kapital/pkg/logger"
)

func main() {
	// Load configuration first, the log level comes from it
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New("info", true)
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.DevMode)

	log.Info().Msg("Starting Kapital dashboard backend")

	// Record store
	db, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "records.db"),
		Profile: database.ProfileStandard,
		Name:    "records",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize record store")
	}
	defer db.Close()

	ctx := context.Background()

	recordRepo := records.NewRepository(db.Conn(), log)
	if err := recordRepo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure record store schema")
	}
	clientRepo := investors.NewRepository(db.Conn(), log)
	if err := clientRepo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure client schema")
	}

	// Analytics pipeline
	resolver := records.NewResolver(cfg.DevMode, log)
	service := analytics.NewService(
		recordRepo,
		clientRepo,
		investments.NewBuilder(resolver, log),
		investors.NewAggregator(log),
		insights.NewGenerator(cfg.Insights),
		analytics.Options{
			MajorityThreshold: cfg.MajorityThreshold,
			RiskFreeRate:      cfg.RiskFreeRate,
			VaRConfidence:     cfg.VaRConfidence,
		},
		log,
	)

	resultCache := cache.New(cfg.CacheTTL)

	// Background refresh
	sched := scheduler.New(2*time.Minute, log)
	refreshJob := scheduler.NewRefreshJob(service, resultCache, log)
	if cfg.RefreshSchedule != "" {
		if err := sched.Schedule(cfg.RefreshSchedule, refreshJob); err != nil {
			log.Fatal().Err(err).Msg("Failed to register refresh job")
		}
		sched.Start()
		defer sched.Stop()

		// Warm the cache before serving
		if err := sched.RunNow(refreshJob); err != nil {
			log.Warn().Err(err).Msg("Initial analytics refresh failed")
		}
	}

	// HTTP server
	srv := server.New(server.Config{
		Port:      cfg.Port,
		Log:       log,
		DB:        db,
		Config:    cfg,
		Analytics: analyticshandlers.NewHandler(service, resultCache, log),
		Voting:    votinghandlers.NewHandler(service, resultCache, log),
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
