package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/handler"
	"github.com/iliyamo/venue-booking/internal/logger"
	"github.com/iliyamo/venue-booking/internal/middleware"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/router"
	"github.com/iliyamo/venue-booking/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("dev", "info")
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	var events service.EventPublisher
	if cfg.EventsEnabled() {
		events = queue.NewPublisher(cfg.RabbitMQURL)
		if cfg.ConsumerEnabled {
			go func() {
				err := queue.StartConsumer(ctx, cfg.RabbitMQURL, cfg.EventLogDir, log)
				if err != nil && !errors.Is(err, context.Canceled) {
					log.Error().Err(err).Msg("event consumer stopped")
				}
			}()
		}
	} else {
		log.Info().Msg("RABBITMQ_URL not set, directory events disabled")
	}

	dir := service.NewDirectory(
		repository.NewVenueRepo(db),
		repository.NewArtistRepo(db),
		repository.NewShowRepo(db),
		events,
		log,
	)

	rdb := config.NewRedisClient(ctx, cfg.Redis)
	if rdb == nil {
		log.Warn().Msg("redis unreachable, rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
	e.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		echomw.Recover(),
		metrics.Middleware(),
	)
	router.RegisterRoutes(e, db)
	router.RegisterDirectory(e,
		handler.NewDirectoryHandler(dir, log),
		middleware.RateLimit(cfg.RateLimit, rdb, log),
	)

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	dir.Drain()
	log.Info().Msg("server stopped")
}
