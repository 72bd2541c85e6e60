package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "sid", KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "sid", KeyCart, "[]", 0))
	value, ok, err := store.Get(ctx, "sid", KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
	assert.Equal(t, time.Hour, mr.TTL("session:sid:foodCourtCart"))

	require.NoError(t, store.Set(ctx, "sid", ReceiptKey("FC-1"), "{}", 24*time.Hour))
	assert.Equal(t, 24*time.Hour, mr.TTL("session:sid:receipt:FC-1"))

	require.NoError(t, store.Delete(ctx, "sid", KeyCart, KeyUserType))
	_, ok, _ = store.Get(ctx, "sid", KeyCart)
	assert.False(t, ok)
}

func TestRedisStore_SessionsAreIsolated(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", KeyUserName, "Amina", 0))
	_, ok, err := store.Get(ctx, "b", KeyUserName)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		marker string
		want   Role
	}{
		{"owner", RoleOwner},
		{"admin", RoleOwner},
		{"customer", RoleCustomer},
		{"user", RoleCustomer},
		{"", RoleNone},
		{"guest", RoleNone},
	}

	for _, testCase := range tests {
		t.Run(testCase.marker, func(t *testing.T) {
			assert.Equal(t, testCase.want, ParseRole(testCase.marker))
		})
	}
}

func TestSession_RoleAndAuthentication(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()
	s := New("sid", store)

	assert.False(t, s.IsAuthenticated(ctx))
	assert.Equal(t, RoleNone, s.Role(ctx))

	require.NoError(t, s.Set(ctx, KeyUserType, "admin"))
	require.NoError(t, s.Set(ctx, KeyUserName, "Amina"))
	assert.True(t, s.IsAuthenticated(ctx))
	assert.Equal(t, RoleOwner, s.Role(ctx))
	assert.Equal(t, "Amina", s.Name(ctx))
}

func TestManager_Middleware_IssuesAndReusesCookie(t *testing.T) {
	store, _ := newRedisStore(t)
	manager := NewManager(store, time.Hour, zap.NewNop())

	var seen []string
	handler := manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, FromContext(r.Context()).ID)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Empty(t, rr.Result().Cookies())

	require.Len(t, seen, 2)
	assert.Equal(t, seen[0], seen[1])
}

func TestManager_Middleware_ReplacesMalformedCookie(t *testing.T) {
	store, _ := newRedisStore(t)
	manager := NewManager(store, time.Hour, zap.NewNop())
	handler := manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "../../etc"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "../../etc", cookies[0].Value)
}

func TestRequireRole(t *testing.T) {
	store, _ := newRedisStore(t)
	manager := NewManager(store, time.Hour, zap.NewNop())

	tests := []struct {
		name     string
		marker   string
		wantCode int
	}{
		{name: "owner allowed", marker: "owner", wantCode: http.StatusOK},
		{name: "admin allowed", marker: "admin", wantCode: http.StatusOK},
		{name: "customer denied", marker: "customer", wantCode: http.StatusForbidden},
		{name: "anonymous denied", marker: "", wantCode: http.StatusForbidden},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.Use(manager.Middleware)
			r.Handle("/owner", RequireRole(RoleOwner)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))

			sid := "3f1c2a8e-8d43-4d0e-9a55-1b2f9d6f0c11"
			if testCase.marker != "" {
				require.NoError(t, store.Set(context.Background(), sid, KeyUserType, testCase.marker, 0))
			} else {
				require.NoError(t, store.Delete(context.Background(), sid, KeyUserType))
			}

			req := httptest.NewRequest(http.MethodGet, "/owner", nil)
			req.AddCookie(&http.Cookie{Name: CookieName, Value: sid})
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantCode, rr.Code)
			if testCase.wantCode == http.StatusForbidden {
				assert.Contains(t, rr.Body.String(), `"login_url":"/login"`)
			}
		})
	}
}

func TestRequireLogin_CarriesSignupLink(t *testing.T) {
	store, _ := newRedisStore(t)
	manager := NewManager(store, time.Hour, zap.NewNop())

	r := mux.NewRouter()
	r.Use(manager.Middleware)
	r.Handle("/reservations", RequireLogin("You need to be logged in to make reservations")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reservations", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), `"signup_url":"/signup"`)
	assert.Contains(t, rr.Body.String(), "make reservations")
}
