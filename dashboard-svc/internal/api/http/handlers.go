package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodcourt/dashboard-svc/internal/domain"
	"foodcourt/dashboard-svc/internal/service"
	"foodcourt/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20

type Handler struct {
	Overview     service.OverviewServiceInterface
	Menu         service.MenuServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
	Analytics    service.AnalyticsServiceInterface
	Sessions     *session.Manager
	Logger       *zap.Logger
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	owner := r.PathPrefix("/api/owner").Subrouter()
	owner.Use(h.Sessions.Middleware)
	owner.Use(session.RequireRole(session.RoleOwner))

	owner.HandleFunc("/overview", h.getOverview).Methods("GET")
	owner.HandleFunc("/analytics", h.getAnalytics).Methods("GET")

	owner.HandleFunc("/menu", h.getMenu).Methods("GET")
	owner.HandleFunc("/menu/items", h.addMenuItem).Methods("POST")
	owner.HandleFunc("/menu/items/{id:[0-9]+}", h.deleteMenuItem).Methods("DELETE")
	owner.HandleFunc("/menu/import", h.importMenu).Methods("POST")

	owner.HandleFunc("/orders", h.getOrders).Methods("GET")
	owner.HandleFunc("/orders/{id:[0-9]+}/status", h.updateOrderStatus).Methods("PATCH")
	owner.HandleFunc("/orders/{id:[0-9]+}", h.deleteOrder).Methods("DELETE")

	owner.HandleFunc("/reservations", h.getReservations).Methods("GET")
	owner.HandleFunc("/reservations", h.addReservation).Methods("POST")
	owner.HandleFunc("/reservations/{id:[0-9]+}", h.deleteReservation).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "dashboard-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, domain.ErrConfirmationRequired), errors.Is(err, domain.ErrTableUnavailable):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrBackendUnavailable):
		h.Logger.Warn("backend call failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "backend unavailable"})
	default:
		h.Logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.Invalid("body", "Invalid request body")
	}
	return nil
}

// pathID reads the numeric {id} var; the route pattern guarantees digits.
func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}

func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	outletID, _ := strconv.Atoi(r.URL.Query().Get("outlet_id"))
	name := session.FromContext(r.Context()).Name(r.Context())
	writeJSON(w, http.StatusOK, h.Overview.Overview(r.Context(), name, outletID))
}

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Analytics.Summary(r.Context()))
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Menu.Menu(r.Context()))
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var in domain.MenuItemInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	item, err := h.Menu.Add(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Delete(r.Context(), pathID(r), confirmed(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) importMenu(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, domain.Invalid("file", "Please upload an .xlsx file"))
		return
	}
	defer file.Close()

	report, err := h.Menu.Import(r.Context(), file)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.Orders.UpdateStatus(r.Context(), pathID(r), body.Status); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":      pathID(r),
		"status":  body.Status,
		"actions": domain.Actions(domain.OrderStatus(body.Status)),
	})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.Delete(r.Context(), pathID(r), confirmed(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Reservations.Board(r.Context()))
}

func (h *Handler) addReservation(w http.ResponseWriter, r *http.Request) {
	var in domain.ReservationInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	created, err := h.Reservations.Add(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Reservations.Delete(r.Context(), pathID(r), confirmed(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
