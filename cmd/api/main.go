// Package main Bistro Boss API
//
// @title           Bistro Boss API
// @version         1.0
// @description     Restaurant ordering backend: menu, carts, card and gateway checkout, admin analytics.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from POST /jwt.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	_ "github.com/bistroboss/bistro-api/docs"
	"github.com/bistroboss/bistro-api/internal/api"
	"github.com/bistroboss/bistro-api/internal/api/handler"
	"github.com/bistroboss/bistro-api/internal/api/metrics"
	"github.com/bistroboss/bistro-api/internal/core/service"
	"github.com/bistroboss/bistro-api/internal/infrastructure/config"
	mongodb "github.com/bistroboss/bistro-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bistroboss/bistro-api/internal/infrastructure/db/redis"
	"github.com/bistroboss/bistro-api/internal/infrastructure/payments/card"
	"github.com/bistroboss/bistro-api/internal/infrastructure/payments/sslcommerz"
	"github.com/bistroboss/bistro-api/internal/infrastructure/queue"
	"github.com/bistroboss/bistro-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "bistro-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("bistro-api stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("bistro-api stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	statsRepo := mongodb.NewStatsRepository(db)

	// --- Payment providers ---
	processor := card.NewProcessor(card.Config{
		SecretKey: cfg.Card.SecretKey,
		Timeout:   cfg.Gateway.HTTPTimeout,
	})
	gateway := sslcommerz.NewClient(sslcommerz.Config{
		StoreID:       cfg.Gateway.StoreID,
		StorePassword: cfg.Gateway.StorePassword,
		Sandbox:       cfg.Gateway.Sandbox,
		Timeout:       cfg.Gateway.HTTPTimeout,
	})

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	directory := service.NewDirectoryService(userRepo, log)
	carts := service.NewCartService(cartRepo)
	payments := service.NewPaymentService(
		paymentRepo,
		carts,
		processor,
		gateway,
		redisdb.NewReplayGuard(rdb),
		service.PaymentConfig{
			CardCurrency:     cfg.Card.Currency,
			GatewayCurrency:  cfg.Gateway.Currency,
			VerifyCardIntent: cfg.Card.VerifyIntent,
			CallbackBaseURL:  cfg.Gateway.PublicBaseURL,
		},
		log,
	)

	// --- Background cart reconciliation ---
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	reconciler := queue.NewReconciler(cfg.Reconciler.Workers, cfg.Reconciler.Interval, paymentRepo, payments, log).
		OnResult(func(deleted int64, err error) {
			metrics.CartReleasesTotal.WithLabelValues("reconciler", metrics.ReleaseResult(err)).Inc()
			metrics.CartEntriesDeletedTotal.Add(float64(deleted))
		})
	reconciler.Start(workerCtx)

	e := api.NewRouter(api.Deps{
		Tokens:    tokens,
		Directory: directory,
		Menu:      service.NewMenuService(menuRepo),
		Reviews:   reviewRepo,
		Carts:     carts,
		Payments:  payments,
		Stats:     service.NewStatsService(statsRepo),
		Redirects: handler.RedirectConfig{
			SuccessURL: cfg.Gateway.SuccessURL,
			FailURL:    cfg.Gateway.FailURL,
		},
		ReadyChecks: map[string]handler.Check{
			"mongodb": func(ctx context.Context) error {
				return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
			},
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		},
		CORSOrigins:    cfg.CORSOrigins,
		TokenRateLimit: cfg.TokenRateLimit,
		Log:            log,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("boss is sitting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			cancelWorkers()
			reconciler.Wait()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := e.Shutdown(shutdownCtx)

	cancelWorkers()
	reconciler.Wait()

	return shutdownErr
}
