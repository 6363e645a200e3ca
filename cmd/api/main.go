package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"behavior-analytics/internal/app"
	"behavior-analytics/internal/config"
	apihttp "behavior-analytics/internal/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	svcs, cleanup, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("build services", zap.Error(err))
	}
	defer cleanup()

	router := apihttp.NewRouter(logger,
		apihttp.NewUserHandler(logger, svcs.Users),
		apihttp.NewMessageHandler(logger, svcs.Ingest),
		apihttp.NewReportHandler(logger, svcs.Reports),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
