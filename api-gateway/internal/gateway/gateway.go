package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	StorefrontURL  string
	DashboardURL   string
	FrontendDir    string
	AllowedOrigins []string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) *Gateway {
	config.StorefrontURL = strings.TrimRight(config.StorefrontURL, "/")
	config.DashboardURL = strings.TrimRight(config.DashboardURL, "/")
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ProxyRequest forwards r unchanged to targetURL, cookies included, and
// copies the upstream response back.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	g.logger.Debug("proxy", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", targetURL))

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error("failed to create upstream request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	req.Header.Set("X-Forwarded-Host", r.Host)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("upstream unavailable", zap.String("target", targetURL), zap.Error(err))
		http.Error(w, "service unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("failed to copy upstream response", zap.Error(err))
	}
}

// copyHeaders copies upstream headers except the CORS ones, which belong to
// the gateway. The services answer with a wildcard origin that browsers
// reject on credentialed requests.
func copyHeaders(dst, src http.Header) {
	for k, v := range src {
		switch {
		case strings.HasPrefix(k, "Access-Control-"):
		case k == "Vary":
			for _, val := range v {
				if val != "Origin" {
					dst.Add(k, val)
				}
			}
		default:
			dst[k] = v
		}
	}
}

// RouteHandler sends owner dashboard calls to dashboard-svc, every other API
// call to storefront-svc, and anything else to the single-page frontend.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == "/api/owner" || strings.HasPrefix(path, "/api/owner/"):
		g.ProxyRequest(w, r, g.config.DashboardURL)
	case strings.HasPrefix(path, "/api/"):
		g.ProxyRequest(w, r, g.config.StorefrontURL)
	default:
		http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

// Handler wraps the routes in credentialed CORS for the configured origins.
func (g *Gateway) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   g.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(g.SetupRoutes())
}
