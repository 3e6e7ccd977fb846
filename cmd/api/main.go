// Command api serves the coffee shop ordering backend: REST routes for the
// mobile app and dashboard, the /socket realtime channel and the order
// change-stream watcher.
//
// @title                       Coffee Shop Ordering API
// @version                     1.0
// @description                 Users, menu, combos, orders and realtime dashboard notifications.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	_ "github.com/coffeeshop/ordering-api/docs"
	"github.com/coffeeshop/ordering-api/internal/api"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
	"github.com/coffeeshop/ordering-api/internal/core/service"
	"github.com/coffeeshop/ordering-api/internal/infrastructure/broker"
	"github.com/coffeeshop/ordering-api/internal/infrastructure/config"
	mongodb "github.com/coffeeshop/ordering-api/internal/infrastructure/db/mongo"
	redisdb "github.com/coffeeshop/ordering-api/internal/infrastructure/db/redis"
	"github.com/coffeeshop/ordering-api/internal/infrastructure/http/handlers"
	"github.com/coffeeshop/ordering-api/internal/infrastructure/queue"
	"github.com/coffeeshop/ordering-api/internal/infrastructure/realtime"
	"github.com/coffeeshop/ordering-api/pkg/logger"
)

const (
	serviceName     = "coffeeshop-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("coffeeshop api stopped")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: serviceName,
	})
	if cfg.Auth.UsingDevSecret {
		log.Warn().Msg("JWT_SECRET not set, signing tokens with the development secret")
	}

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: serviceName})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	// --- Realtime fan-out ---
	hub := realtime.NewHub(cfg.HTTP.CORSOrigins, logger.Component("socket"))
	broadcasters := []ports.Broadcaster{hub}
	checks := []handlers.DependencyCheck{handlers.MongoCheck(db), handlers.RedisCheck(rdb)}

	if cfg.RabbitMQ.URL != "" {
		publisher, err := broker.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger.Component("rabbitmq"))
		if err != nil {
			return err
		}
		defer publisher.Close()
		broadcasters = append(broadcasters, publisher)
		checks = append(checks, handlers.DependencyCheck{Name: "rabbitmq", Check: publisher.Check})
	}

	notifier := service.NewNotificationService(
		redisdb.NewSeenSet(rdb),
		cfg.Redis.NewOrderDedupTTL,
		logger.Component("notifications"),
		broadcasters...,
	)
	dispatcher := queue.NewDispatcher(cfg.Dispatch.Workers, notifier, logger.Component("dispatcher"))

	// --- Use cases ---
	users := mongodb.NewUserRepository(db)
	svc := api.Services{
		Auth:          service.NewAuthService(users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Users:         service.NewUserService(users, logger.Component("users")),
		Catalog:       service.NewCatalogService(mongodb.NewItemRepository(db)),
		Orders:        service.NewOrderService(mongodb.NewOrderRepository(db), notifier, logger.Component("orders")),
		Combos:        service.NewComboService(mongodb.NewComboRepository(db), logger.Component("combos")),
		Notifications: notifier,
	}

	e := api.NewRouter(svc, api.Options{
		CORSOrigins:  cfg.HTTP.CORSOrigins,
		BodyLimit:    cfg.HTTP.BodyLimit,
		JWTSecret:    cfg.Auth.JWTSecret,
		AuthRequired: cfg.Auth.Required,
		Socket:       hub,
		HealthChecks: checks,
		Logger:       logger.Component("http"),
	})
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return hub.Run(gctx) })
	g.Go(func() error { return dispatcher.Run(gctx) })
	if cfg.Mongo.ChangeStreamEnabled {
		watcher := mongodb.NewOrderWatcher(db, dispatcher, logger.Component("change-stream"))
		g.Go(func() error { return watcher.Run(gctx) })
	}

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Bool("auth_required", cfg.Auth.Required).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("stopped")
	return nil
}
