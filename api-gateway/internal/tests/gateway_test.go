package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foodcourt/api-gateway/internal/gateway"
	"foodcourt/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantTarget string
	}{
		{"outlets", http.MethodGet, "/api/outlets?cuisine=Kenyan", "http://storefront/api/outlets?cuisine=Kenyan"},
		{"cart", http.MethodPost, "/api/cart/items", "http://storefront/api/cart/items"},
		{"owner orders", http.MethodGet, "/api/owner/orders?status=pending", "http://dashboard/api/owner/orders?status=pending"},
		{"owner status", http.MethodPatch, "/api/owner/orders/4/status", "http://dashboard/api/owner/orders/4/status"},
		{"owner lookalike", http.MethodGet, "/api/ownership", "http://storefront/api/ownership"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{
				StorefrontURL: "http://storefront/",
				DashboardURL:  "http://dashboard",
			}, mockClient, zap.NewNop())

			mockClient.On("Do", mock.MatchedBy(func(r *http.Request) bool {
				return r.Method == tc.method && r.URL.String() == tc.wantTarget
			})).Return(jsonResponse(http.StatusOK, `{"ok":true}`), nil).Once()

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_ForwardsSessionCookie(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{StorefrontURL: "http://storefront"}, mockClient, zap.NewNop())

	upstream := jsonResponse(http.StatusOK, `[]`)
	upstream.Header.Add("Set-Cookie", "fc_session=abc; Path=/; HttpOnly")
	mockClient.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		c, err := r.Cookie("fc_session")
		return err == nil && c.Value == "existing"
	})).Return(upstream, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "fc_session", Value: "existing"})
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "fc_session=abc; Path=/; HttpOnly", rr.Header().Get("Set-Cookie"))
}

func TestGateway_Handler_CredentialedCORS(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		StorefrontURL:  "http://storefront",
		AllowedOrigins: []string{"http://localhost:3000"},
	}, mockClient, zap.NewNop())

	upstream := jsonResponse(http.StatusOK, `{"items":[]}`)
	upstream.Header.Set("Access-Control-Allow-Origin", "*")
	upstream.Header.Add("Vary", "Origin")
	upstream.Header.Add("Vary", "Accept-Encoding")
	mockClient.On("Do", mock.Anything).Return(upstream, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()

	gw.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"http://localhost:3000"}, rr.Header().Values("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, []string{"Origin", "Accept-Encoding"}, rr.Header().Values("Vary"))
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		DashboardURL: "http://invalid",
	}, mockClient, zap.NewNop())

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/owner/analytics", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_UpstreamStatusPassesThrough(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{StorefrontURL: "http://storefront"}, mockClient, zap.NewNop())

	mockClient.On("Do", mock.Anything).
		Return(jsonResponse(http.StatusForbidden, `{"error":"access denied","title":"Please Log In"}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Please Log In")
}

func TestGateway_ServesFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>food court</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	handler := gateway.NewGateway(gateway.Config{FrontendDir: dir}, nil, zap.NewNop()).SetupRoutes()

	for _, path := range []string{"/", "/checkout", "/owner-dashboard/menu"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Contains(t, rr.Body.String(), "food court", path)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "console.log(1)", rr.Body.String())
}
