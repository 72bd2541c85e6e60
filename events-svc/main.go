package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"foodcourt/config"
	httpapi "foodcourt/events-svc/internal/api/http"
	"foodcourt/events-svc/internal/service"
	"foodcourt/events-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load("events-svc", ":8083")
	logger := config.NewLogger(cfg)
	defer logger.Sync()

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := service.NewHub(logger)
	consumer := service.NewConsumer(reader, storage.NewStore(rdb), hub, logger)
	consumed := make(chan struct{})
	go func() {
		defer close(consumed)
		consumer.Start(ctx)
	}()

	err := httpapi.StartServer(ctx, cfg.HTTPAddr, httpapi.NewRouter(&httpapi.Handler{Hub: hub, Logger: logger}), logger)
	stop()
	hub.Close()
	<-consumed
	if err != nil {
		logger.Error("server stopped", zap.Error(err))
		return
	}
	logger.Info("events service stopped")
}
