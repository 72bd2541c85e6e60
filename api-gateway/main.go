package main

import (
	"net/http"

	"foodcourt/api-gateway/internal/gateway"
	"foodcourt/config"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load("api-gateway", ":8080")
	logger := config.NewLogger(cfg)
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		StorefrontURL:  cfg.StorefrontURL,
		DashboardURL:   cfg.DashboardURL,
		FrontendDir:    cfg.FrontendDir,
		AllowedOrigins: []string{cfg.PublicURL, "http://localhost:3000"},
	}, &http.Client{Timeout: cfg.BackendTimeout}, logger)
	handler := gw.Handler()

	logger.Info("api gateway starting", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
