package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/murkotick/shoe-card-service/internal/config"
	"github.com/murkotick/shoe-card-service/internal/pkg/clock"
	"github.com/murkotick/shoe-card-service/internal/pkg/logger"
	"github.com/murkotick/shoe-card-service/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.DevMode)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if !cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info("shutdown signal received")
		cancel()
	}()

	srv, err := server.New(cfg, clock.RealClock{}, log)
	if err != nil {
		log.Fatal("build server", zap.Error(err))
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatal("serve", zap.Error(err))
	}
}
