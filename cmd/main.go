package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
	"golang.org/x/sync/errgroup"

	httpadapter "boost-engine/internal/adapter/http"
	"boost-engine/internal/adapter/kafka"
	"boost-engine/internal/adapter/memory"
	"boost-engine/internal/adapter/postgres"
	"boost-engine/internal/adapter/redis"
	"boost-engine/internal/adapter/scheduler"
	"boost-engine/internal/adapter/usecase"
	"boost-engine/internal/config"
	"boost-engine/internal/config/configs"
	"boost-engine/internal/core/port"
	"boost-engine/internal/db"
)

// main is the entry point of the boost engine. It loads configuration,
// opens the configured store, wires the use cases, then runs the HTTP server
// and the supervised sweeper and event dispatcher until a termination signal
// arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var signalled atomic.Int32
	go func() {
		value := <-quit
		signalled.Store(int32(value.(syscall.Signal)))
		logger.Info("shutdown requested", slog.String("signal", value.String()))
		cancel()
	}()

	tolerance, _ := cfg.Boost.Tolerance()

	var (
		boostRepo   port.BoostRepository
		catalogRepo port.CatalogRepository
		seedBoosts  bool
	)
	switch cfg.Storage.Driver {
	case configs.StorageMemory:
		store := memory.NewStore()
		for _, it := range db.DemoItems(time.Now().UTC()) {
			store.PutItem(it, true, true)
		}
		boostRepo, catalogRepo, seedBoosts = store, store, true
		logger.Warn("using in-memory storage, data is lost on exit")
	default:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool, time.Now().UTC()); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
			seedBoosts = true
		}
		boostRepo = postgres.NewBoostRepository(pool)
		catalogRepo = postgres.NewCatalogRepository(pool)
	}

	var (
		publisher  port.EventPublisher
		dispatcher *kafka.Dispatcher
	)
	if cfg.Kafka.Enabled() {
		p := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := p.Close(); err != nil {
				logger.Warn("kafka writer close error", slog.Any("error", err))
			}
		}()
		dispatcher = kafka.NewDispatcher(p, logger, kafka.DispatcherConfig{
			Buffer:       cfg.Kafka.QueueSize,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		})
		publisher = dispatcher
		logger.Info("publishing boost events", slog.String("topic", cfg.Kafka.Topic))
	}

	var locker port.Locker
	if cfg.Redis.Enabled() {
		l := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer l.Close()
		if err = l.Ping(ctx); err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		locker = l
	}

	boosts := usecase.NewBoostUseCase(boostRepo, publisher, logger, usecase.Options{
		BudgetTolerance:  tolerance,
		ClickMaxAttempts: cfg.Boost.ClickMaxAttempts,
		MaxPageSize:      cfg.Boost.MaxPageSize,
	})
	if seedBoosts {
		if err = db.SeedBoosts(ctx, boosts, time.Now().UTC()); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}

	sweeper := scheduler.NewSweeper(boosts, locker, logger, scheduler.Config{
		Interval: cfg.Boost.SweepInterval,
		MinGap:   cfg.Boost.LazySweepMinGap,
		LockTTL:  cfg.Redis.LockTTL,
	})
	listings := usecase.NewListingUseCase(catalogRepo, sweeper, logger, cfg.Boost.MaxPageSize)

	sup := suture.New("boost-engine", suture.Spec{
		EventHook: (&sutureslog.Handler{Logger: logger}).MustHook(),
		Timeout:   cfg.HTTP.ShutdownTimeout,
	})
	sup.Add(sweeper)
	if dispatcher != nil {
		sup.Add(dispatcher)
	}

	handler := httpadapter.NewHandler(boosts, listings, logger, cfg.Boost.DefaultPageSize)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := sup.Serve(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("supervisor: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		return
	}
	if sig := signalled.Load(); sig != 0 {
		exitCode = 128 + int(sig)
	} else {
		exitCode = 0
	}
}
