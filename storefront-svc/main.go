package main

import (
	"net/http"

	"foodcourt/backend"
	"foodcourt/config"
	"foodcourt/session"
	httpapi "foodcourt/storefront-svc/internal/api/http"
	"foodcourt/storefront-svc/internal/service"
	"foodcourt/storefront-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load("storefront-svc", ":8081")
	logger := config.NewLogger(cfg)
	defer logger.Sync()

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg)
	defer writer.Close()

	api := backend.NewClient(cfg.BackendURL, &http.Client{Timeout: cfg.BackendTimeout})

	var catalogSource service.Catalog = storage.NewStaticCatalog()
	remote := cfg.CatalogSource == "backend"
	if remote {
		catalogSource = storage.NewBackendCatalog(api)
	}
	logger.Info("catalog source selected", zap.String("source", cfg.CatalogSource))

	catalog := service.NewCatalogService(catalogSource, logger)
	carts := service.NewCartService(catalog, logger)
	auth := service.NewAuthService(api, remote, logger)

	handler := &httpapi.Handler{
		Catalog:      catalog,
		Cart:         carts,
		Reservations: service.NewReservationService(catalog, cfg.SessionTTL, logger),
		Checkout: service.NewCheckoutService(carts,
			storage.NewKafkaPublisher(writer),
			storage.NewReceiptQR(cfg.PublicURL),
			logger),
		Auth:       auth,
		Reviews:    service.NewReviewService(storage.SeedReviews()),
		Navigation: service.NewNavigationService(carts, auth),
		Sessions:   session.NewManager(session.NewRedisStore(rdb, cfg.SessionTTL), cfg.SessionTTL, logger),
		Logger:     logger,
	}

	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler), logger)
}
