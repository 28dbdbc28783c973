package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/tirasundara/lotto-reward/internal/config"
	"github.com/tirasundara/lotto-reward/internal/handlers"
	"github.com/tirasundara/lotto-reward/internal/logging"
	"github.com/tirasundara/lotto-reward/internal/report"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New("info", false, "lotto-api")
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel, false, "lotto-api")
	if envErr != nil {
		logger.Debug().Msg(".env file not found, using environment variables")
	}

	router, err := newRouter(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid currency settings")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}
}

func newRouter(cfg *config.Config, logger zerolog.Logger) (*gin.Engine, error) {
	currency, err := report.NewCurrencyFormatterFromLocale(cfg.Currency.Locale, cfg.Currency.Suffix)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())

	rewardHandler := handlers.NewRewardHandler(cfg.TicketPriceDecimal(), report.NewStatisticsFormatter(currency), logger)
	rewardHandler.RegisterRoutes(router)

	return router, nil
}
