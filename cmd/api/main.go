package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/estately/listings-api/internal/api"
	"github.com/estately/listings-api/internal/api/handler"
	"github.com/estately/listings-api/internal/core/service"
	mongodb "github.com/estately/listings-api/internal/infrastructure/db/mongo"
	redisdb "github.com/estately/listings-api/internal/infrastructure/db/redis"
	"github.com/estately/listings-api/internal/infrastructure/queue"
	"github.com/estately/listings-api/internal/pkg/config"
	"github.com/estately/listings-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	likeRepo := mongodb.NewLikeRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":         userRepo.EnsureIndexes,
		"properties":    propertyRepo.EnsureIndexes,
		"reviews":       reviewRepo.EnsureIndexes,
		"likes":         likeRepo.EnsureIndexes,
		"notifications": notificationRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	views := redisdb.NewViewTracker(rdb)

	tokenService := service.NewTokenService(userRepo,
		cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret,
		cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	propertyService := service.NewPropertyService(propertyRepo, views, log)
	notificationService := service.NewNotificationService(notificationRepo)

	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notificationService, log)
	dispatcher.Start(ctx)

	reviewService := service.NewReviewService(reviewRepo, propertyRepo, dispatcher)
	likeService := service.NewLikeService(likeRepo, propertyRepo, dispatcher)

	e := api.NewRouter(api.Deps{
		Auth:          authService,
		Tokens:        tokenService,
		Users:         userRepo,
		Properties:    propertyService,
		PropertyRepo:  propertyRepo,
		Reviews:       reviewService,
		Likes:         likeService,
		Notifications: notificationService,
		Cookies: handler.CookieConfig{
			Secure:     cfg.Auth.CookieSecure,
			AccessTTL:  cfg.Auth.AccessTTL,
			RefreshTTL: cfg.Auth.RefreshTTL,
		},
		MongoDB: db,
		Redis:   rdb,
		Log:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
