package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ishaansolanki9/StudyFlow/config"
	"github.com/ishaansolanki9/StudyFlow/internal/api/handler"
	"github.com/ishaansolanki9/StudyFlow/internal/api/router"
	"github.com/ishaansolanki9/StudyFlow/internal/service"
	"github.com/ishaansolanki9/StudyFlow/internal/store"
	applogger "github.com/ishaansolanki9/StudyFlow/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config failed: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("store_path", cfg.Store.Path),
		zap.String("log_level", cfg.Log.Level),
	)

	st, err := store.NewFileStore(cfg.Store.Path)
	if err != nil {
		logger.Fatal("opening store failed", zap.Error(err))
	}

	// Load once at boot so a corrupt document fails fast instead of on
	// the first request.
	if _, err := st.Load(); err != nil {
		logger.Fatal("reading store document failed", zap.Error(err))
	}

	svc := service.NewService(st, logger)
	h := handler.NewHandler(svc)
	engine := router.Setup(cfg, h, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
