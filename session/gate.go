package session

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// AccessDenied is the view substituted for a gated page.
type AccessDenied struct {
	Error     string `json:"error"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	LoginURL  string `json:"login_url"`
	SignupURL string `json:"signup_url,omitempty"`
}

func writeDenied(w http.ResponseWriter, view AccessDenied) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(view)
}

// RequireLogin gates customer pages on any role marker being present.
func RequireLogin(message string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := FromContext(r.Context())
			if s == nil || !s.IsAuthenticated(r.Context()) {
				writeDenied(w, AccessDenied{
					Error:     "access denied",
					Title:     "Please Log In",
					Message:   message,
					LoginURL:  "/login",
					SignupURL: "/signup",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole gates pages on the session holding exactly role.
func RequireRole(role Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := FromContext(r.Context())
			if s == nil || s.Role(r.Context()) != role {
				writeDenied(w, AccessDenied{
					Error:    "access denied",
					Title:    "Access Denied",
					Message:  "You need to be logged in as an admin to access this page",
					LoginURL: "/login",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
