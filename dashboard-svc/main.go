package main

import (
	"net/http"

	"foodcourt/backend"
	"foodcourt/config"
	httpapi "foodcourt/dashboard-svc/internal/api/http"
	"foodcourt/dashboard-svc/internal/service"
	"foodcourt/dashboard-svc/internal/storage"
	"foodcourt/session"
)

func main() {
	cfg := config.Load("dashboard-svc", ":8082")
	logger := config.NewLogger(cfg)
	defer logger.Sync()

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg)
	defer writer.Close()

	httpClient := &http.Client{Timeout: cfg.BackendTimeout}
	api := backend.NewClient(cfg.BackendURL, httpClient)

	handler := &httpapi.Handler{
		Overview:     service.NewOverviewService(api, logger),
		Menu:         service.NewMenuService(api, logger),
		Orders:       service.NewOrderService(api, storage.NewKafkaPublisher(writer), logger),
		Reservations: service.NewReservationService(api, logger),
		Analytics: service.NewAnalyticsService(api,
			storage.NewReviewFeed(cfg.StorefrontURL, httpClient),
			storage.NewRedisCounters(rdb),
			logger),
		Sessions: session.NewManager(session.NewRedisStore(rdb, cfg.SessionTTL), cfg.SessionTTL, logger),
		Logger:   logger,
	}

	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler), logger)
}
