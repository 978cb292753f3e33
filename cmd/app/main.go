package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"fitswitch/internal/backend"
	"fitswitch/internal/config"
	"fitswitch/internal/db"
	"fitswitch/internal/logger"
	"fitswitch/internal/server"
)

func main() {
	logger.Init()
	logger.Info("Starting FitSwitch gateway")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Opening visit database...")
	visitDB, err := db.Connect(cfg.VisitDBPath)
	if err != nil {
		logger.Fatalf("Failed to open visit database: %v", err)
	}
	defer visitDB.Close()

	if err := db.RunMigrations(visitDB); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// The catalog cache degrades to direct backend reads without Redis.
		logger.Warn("Redis unreachable, catalog caching disabled", "error", err.Error())
	}

	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)
	srv := server.New(cfg, client, rdb, visitDB)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Gateway listening on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Gateway stopped")
}
