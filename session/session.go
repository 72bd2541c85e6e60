package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CookieName = "fc_session"

type Role string

const (
	RoleNone     Role = "none"
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

// ParseRole maps a stored user type marker to a role. Older clients wrote
// "admin" and "user", so both are accepted.
func ParseRole(marker string) Role {
	switch marker {
	case "owner", "admin":
		return RoleOwner
	case "customer", "user":
		return RoleCustomer
	default:
		return RoleNone
	}
}

// Session is the per-browser state bound to one request.
type Session struct {
	ID    string
	store Store
}

func New(id string, store Store) *Session {
	return &Session{ID: id, store: store}
}

func (s *Session) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.ID, key)
}

func (s *Session) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.ID, key, value, 0)
}

func (s *Session) SetFor(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.store.Set(ctx, s.ID, key, value, ttl)
}

func (s *Session) Delete(ctx context.Context, keys ...string) error {
	return s.store.Delete(ctx, s.ID, keys...)
}

// Role reads the role marker. Store failures count as no role.
func (s *Session) Role(ctx context.Context) Role {
	marker, ok, err := s.Get(ctx, KeyUserType)
	if err != nil || !ok {
		return RoleNone
	}
	return ParseRole(marker)
}

func (s *Session) IsAuthenticated(ctx context.Context) bool {
	marker, ok, err := s.Get(ctx, KeyUserType)
	return err == nil && ok && marker != ""
}

func (s *Session) Name(ctx context.Context) string {
	name, _, _ := s.Get(ctx, KeyUserName)
	return name
}

type contextKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session attached by Manager.Middleware, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}

type Manager struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

func NewManager(store Store, ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{store: store, ttl: ttl, logger: logger}
}

// Middleware attaches a session to every request, issuing a fresh cookie when
// the browser has none or sends a malformed id.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if c, err := r.Cookie(CookieName); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				sid = c.Value
			}
		}

		if sid == "" {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    sid,
				Path:     "/",
				MaxAge:   int(m.ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			m.logger.Debug("issued session", zap.String("sid", sid))
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), New(sid, m.store))))
	})
}
