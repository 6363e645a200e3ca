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
	"golang.org/x/sync/errgroup"

	"behavior-analytics/internal/app"
	"behavior-analytics/internal/config"
	apihttp "behavior-analytics/internal/http"
	"behavior-analytics/internal/telegram"
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

	handler := telegram.NewHandler(logger, svcs.Users, svcs.Ingest, svcs.Reports)
	b, err := telegram.NewBot(cfg.TelegramToken, logger, handler)
	if err != nil {
		logger.Fatal("telegram bot", zap.Error(err))
	}

	// La API HTTP comparte servicios con el bot para consultar reportes.
	server := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: apihttp.NewRouter(logger,
			apihttp.NewUserHandler(logger, svcs.Users),
			apihttp.NewMessageHandler(logger, svcs.Ingest),
			apihttp.NewReportHandler(logger, svcs.Reports),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		telegram.Run(gCtx, b, logger)
		if gCtx.Err() == nil {
			return errors.New("telegram listener stopped unexpectedly")
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stopped with error", zap.Error(err))
	}
}
