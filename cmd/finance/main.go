package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/personal-finance/internal/api"
	"github.com/fintrack/personal-finance/internal/core/assistant"
	"github.com/fintrack/personal-finance/internal/core/service"
	"github.com/fintrack/personal-finance/internal/infrastructure/config"
	"github.com/fintrack/personal-finance/internal/infrastructure/db"
	"github.com/fintrack/personal-finance/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "finance"})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "finance",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	// --- Store ---
	backend, err := db.Open(ctx, cfg.Store, logger.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to open store")
	}

	// --- Services ---
	auth := service.NewAuthService(backend.Store, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth"))
	ledger := service.NewLedgerService(backend.Store, auth, service.NewIDGenerator(), service.BudgetLimits{
		MonthlyLimit:      decimal.NewFromInt(cfg.Budget.MonthlyLimit),
		ChallengeCategory: cfg.Budget.ChallengeCategory,
		ChallengeLimit:    decimal.NewFromInt(cfg.Budget.ChallengeLimit),
	}, logger.Component("ledger"))
	settings := service.NewSettingsService(backend.Store, auth, logger.Component("settings"))
	helper := service.NewAssistantService(ledger, settings, assistant.New(assistant.DefaultRules()...), logger.Component("assistant"))

	auth.Subscribe(ledger)
	if err := auth.Restore(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to restore session")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:         auth,
		Ledger:       ledger,
		Assistant:    helper,
		Settings:     settings,
		Store:        backend.Store,
		StoreBackend: cfg.Store.Backend,
		JWTSecret:    cfg.JWTSecret,
		Logger:       logger.Component("http"),
	})
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Store.Backend).Msg("starting finance server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	failed := false
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server error")
		failed = true
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	if err := backend.Cleanup(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("store cleanup error")
	}

	log.Info().Msg("server stopped")
	if failed {
		os.Exit(1)
	}
}
