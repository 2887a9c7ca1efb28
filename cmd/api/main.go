package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"syscall"

	"github.com/oklog/run"
	"go.uber.org/zap"

	"github.com/PratikDhanave/event-track-service/internal/config"
	"github.com/PratikDhanave/event-track-service/internal/httpserver"
	"github.com/PratikDhanave/event-track-service/internal/logging"
	"github.com/PratikDhanave/event-track-service/internal/metrics"
)

// main boots the service: config → logger → metrics → HTTP server(s).
func main() {
	// Load runtime config from environment (SECRET_TOKEN, PORT, ...).
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := serve(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// serve runs the API listener, the optional metrics listener and a signal
// handler until one of them returns.
func serve(cfg config.Config, logger *zap.Logger) error {
	if cfg.UsingDefaultSecret() {
		logger.Warn("SECRET_TOKEN not set, using insecure default token")
	}

	m := metrics.New()
	api := httpserver.NewServer(cfg.Addr, httpserver.NewRouter(cfg, logger, m))

	var g run.Group

	g.Add(func() error {
		logger.Info("server started", zap.String("addr", cfg.Addr))
		return listen(api)
	}, func(error) {
		shutdown(api, cfg, logger)
	})

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		ms := httpserver.NewServer(cfg.MetricsAddr, mux)

		g.Add(func() error {
			logger.Info("metrics server started", zap.String("addr", cfg.MetricsAddr))
			return listen(ms)
		}, func(error) {
			shutdown(ms, cfg, logger)
		})
	}

	g.Add(run.SignalHandler(context.Background(), os.Interrupt, syscall.SIGTERM))

	err := g.Run()
	var sig run.SignalError
	if errors.As(err, &sig) {
		logger.Info("shutting down", zap.String("signal", sig.Signal.String()))
		return nil
	}
	return err
}

func listen(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}
	return nil
}

func shutdown(srv *http.Server, cfg config.Config, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.String("addr", srv.Addr), zap.Error(err))
	}
}
