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
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Rayou-Ryan/Puissance-4/internal/logging"
	"github.com/Rayou-Ryan/Puissance-4/internal/service/cleanup"
	"github.com/Rayou-Ryan/Puissance-4/internal/service/game"
	transportHttp "github.com/Rayou-Ryan/Puissance-4/internal/transport/http"
	"github.com/Rayou-Ryan/Puissance-4/internal/transport/websocket"
	"github.com/Rayou-Ryan/Puissance-4/pkg/auth"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve tables over HTTP and WebSocket",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Usage: "listen address (overrides HOST)"},
			&cli.StringFlag{Name: "port", Usage: "listen port (overrides PORT)"},
			&cli.StringFlag{Name: "static-dir", Value: "./static", Usage: "frontend build served at /", TakesFile: true},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	envLoaded := loadEnv()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.IsSet("host") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.String("port")
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !envLoaded {
		logger.Debug("no .env file found")
	}
	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Core services. The hub is the notifier of every table.
	hub := websocket.NewHub(logger)
	tables := game.NewTableManager(hub, logger)
	tokens := auth.NewTokenIssuer(cfg.TableSecret, cfg.TableTokenTTL)

	// 2. Background workers
	worker := cleanup.NewWorker(tables, cfg.TableIdleTimeout, cfg.CleanupInterval, logger)
	go worker.Start(ctx)

	// 3. Handlers and router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	tableHandler := transportHttp.NewTableHandler(tables, tokens, cfg.GameConfig, cfg.Locale, cfg.MaxBoardSize, cfg.IsProduction(), logger)
	wsHandler := websocket.NewHandler(hub, tables, tokens, cfg.AllowedOrigins, logger)
	router := transportHttp.NewRouter(transportHttp.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cmd.String("static-dir"),
	}, tableHandler, wsHandler.HandleWebSocket, logger)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}
	logger.Info("server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}
