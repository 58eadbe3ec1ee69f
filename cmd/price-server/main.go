// Command price-server runs the nearby-prices HTTP service: a Redis
// read-through/write-through cache in front of the MongoDB item catalog.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nearbyprices/price-service/pkg/api"
	"github.com/nearbyprices/price-service/pkg/cache"
	"github.com/nearbyprices/price-service/pkg/logging"
	"github.com/nearbyprices/price-service/pkg/prices"
	"github.com/nearbyprices/price-service/pkg/store"
)

func main() {
	cfg := loadConfig()

	logger := logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Startup order matters: cache first (connect, clear), then the store,
	// then the listener, then the asynchronous warm-up.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	cacheClient := cache.New(rdb)

	if err := cacheClient.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("connecting to Redis failed")
	}
	logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")

	if err := cacheClient.FlushAll(ctx); err != nil {
		logger.Fatal().Err(err).Msg("clearing Redis cache failed")
	}
	logger.Info().Msg("cleared Redis cache")

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	itemStore, err := store.Connect(connectCtx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Str("uri", cfg.MongoURI).Msg("connecting to MongoDB failed")
	}

	recorder := prices.NewRecorder(cacheClient)
	manager := prices.NewManager(itemStore, cacheClient, recorder, cfg.CacheTTL)

	handler := api.New(api.Deps{
		Manager:  manager,
		Recorder: recorder,
		Ready: func(r *http.Request) error {
			if err := cacheClient.Ping(r.Context()); err != nil {
				return err
			}
			return itemStore.Ping(r.Context())
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Warm-up runs after the listener is up and is not awaited: the server
	// is ready regardless of whether preloading succeeds.
	go manager.WarmUp(ctx)

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	if err := itemStore.Close(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("closing MongoDB failed")
	}
	if err := cacheClient.Close(); err != nil {
		logger.Error().Err(err).Msg("closing Redis failed")
	}
}
