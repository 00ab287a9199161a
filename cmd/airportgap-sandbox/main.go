package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/airportgap-client/internal/app/config"
	"github.com/ijalalfrz/airportgap-client/internal/app/transport"
	"github.com/ijalalfrz/airportgap-client/internal/pkg/logger"
	httptransport "github.com/ijalalfrz/airportgap-client/internal/pkg/transport/http"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
)

// @title           AirportGap Sandbox API
// @version         0.0.1
// @description     Local AirportGap compatible backend for the API checks.
// @host      localhost:8080
// @BasePath  /api
func main() {
	fs := pflag.NewFlagSet("airportgap-sandbox", pflag.ExitOnError)
	envFile := fs.String("env-file", ".env", "optional env file")
	fs.Int("port", 8080, "HTTP port")
	fs.String("redis-addr", "localhost:6379", "redis address")
	fs.String("log-level", "info", "log level")
	_ = fs.Parse(os.Args[1:])

	cfg := config.MustInitConfig(*envFile, config.WithFlags(fs, map[string]string{
		"port":       "HTTP_PORT",
		"redis-addr": "REDIS_ADDR",
		"log-level":  "LOG_LEVEL",
	}))
	logger.InitStructuredLogger(cfg.LogLevel, cfg.LogFormat)

	slog.Debug("config loaded successfully", slog.Int("port", cfg.HTTP.Port), slog.String("redis", cfg.Redis.Addr))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		defer cancel()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "HTTP server stopped")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.WarnContext(ctx, "redis is not reachable, favorites will fail until it is",
			slog.String("addr", cfg.Redis.Addr), slog.String("error", err.Error()))
	}

	var limiter httptransport.Limiter
	if cfg.Sandbox.RateLimit > 0 {
		limiter = redis_rate.NewLimiter(redisClient)
	}

	router, err := transport.MakeSandboxRouter(&cfg, redisClient, limiter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build router", slog.String("error", err.Error()))
		return
	}

	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}
