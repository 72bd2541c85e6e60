package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodcourt/session"
	"foodcourt/storefront-svc/internal/domain"
	"foodcourt/storefront-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Catalog      service.CatalogServiceInterface
	Cart         service.CartServiceInterface
	Reservations service.ReservationServiceInterface
	Checkout     service.CheckoutServiceInterface
	Auth         service.AuthServiceInterface
	Reviews      service.ReviewServiceInterface
	Navigation   service.NavigationServiceInterface
	Sessions     *session.Manager
	Logger       *zap.Logger
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.Sessions.Middleware)

	api.HandleFunc("/header", h.getHeader).Methods("GET")
	api.HandleFunc("/cuisines", h.getCuisines).Methods("GET")
	api.HandleFunc("/outlets", h.getOutlets).Methods("GET")
	api.HandleFunc("/popular-dishes", h.getPopularDishes).Methods("GET")
	api.HandleFunc("/reviews", h.getReviews).Methods("GET")

	api.HandleFunc("/cart", h.getCart).Methods("GET")
	api.HandleFunc("/cart/items", h.addCartItem).Methods("POST")
	api.HandleFunc("/cart/items/{dishId}", h.setCartQuantity).Methods("PUT")
	api.HandleFunc("/cart/items/{dishId}/note", h.setCartNote).Methods("PUT")
	api.HandleFunc("/cart/items/{dishId}", h.removeCartItem).Methods("DELETE")

	api.HandleFunc("/checkout", h.getCheckout).Methods("GET")
	api.HandleFunc("/checkout", h.placeOrder).Methods("POST")
	api.HandleFunc("/receipts/{number}", h.getReceipt).Methods("GET")
	api.HandleFunc("/receipts/{number}/qrcode", h.getReceiptQR).Methods("GET")

	api.HandleFunc("/signup", h.signup).Methods("POST")
	api.HandleFunc("/login", h.login).Methods("POST")
	api.HandleFunc("/logout", h.logout).Methods("POST")
	api.HandleFunc("/preferences/dark-mode", h.getDarkMode).Methods("GET")
	api.HandleFunc("/preferences/dark-mode", h.toggleDarkMode).Methods("POST")

	ordering := api.NewRoute().Subrouter()
	ordering.Use(session.RequireLogin("You need to be logged in to place orders"))
	ordering.HandleFunc("/outlets/{id}", h.getOutlet).Methods("GET")

	booking := api.NewRoute().Subrouter()
	booking.Use(session.RequireLogin("You need to be logged in to make reservations"))
	booking.HandleFunc("/tables", h.getTables).Methods("GET")
	booking.HandleFunc("/reservations", h.getReservations).Methods("GET")
	booking.HandleFunc("/reservations", h.createReservation).Methods("POST")
	booking.HandleFunc("/reservations/{id}/cancel", h.cancelReservation).Methods("POST")

	reviewing := api.NewRoute().Subrouter()
	reviewing.Use(session.RequireLogin("Please log in to submit a review!"))
	reviewing.HandleFunc("/reviews", h.createReview).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
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
	case errors.Is(err, domain.ErrTableUnavailable):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrDishNotFound),
		errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrReceiptNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrBackendUnavailable):
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
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

func current(r *http.Request) *session.Session {
	return session.FromContext(r.Context())
}

func (h *Handler) getHeader(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	writeJSON(w, http.StatusOK, h.Navigation.Header(r.Context(), current(r), path))
}

func (h *Handler) getCuisines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Cuisines(r.Context()))
}

func (h *Handler) getOutlets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.Catalog.Restaurants(r.Context(), q.Get("cuisine"), q.Get("q")))
}

func (h *Handler) getOutlet(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.Restaurant(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getPopularDishes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.PopularDishes(r.Context()))
}

func (h *Handler) cartView(w http.ResponseWriter, cart domain.Cart) {
	writeJSON(w, http.StatusOK, domain.Summarize(cart))
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.cartView(w, h.Cart.Cart(r.Context(), current(r)))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DishID string `json:"dish_id"`
	}
	if err := decode(r, &payload); err != nil {
		h.writeError(w, err)
		return
	}
	if payload.DishID == "" {
		h.writeError(w, domain.Invalid("dish_id", "Please choose a dish"))
		return
	}

	cart, err := h.Cart.Add(r.Context(), current(r), payload.DishID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.cartView(w, cart)
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := decode(r, &payload); err != nil {
		h.writeError(w, err)
		return
	}

	cart, err := h.Cart.SetQuantity(r.Context(), current(r), mux.Vars(r)["dishId"], payload.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.cartView(w, cart)
}

func (h *Handler) setCartNote(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Note string `json:"note"`
	}
	if err := decode(r, &payload); err != nil {
		h.writeError(w, err)
		return
	}

	cart, err := h.Cart.SetNote(r.Context(), current(r), mux.Vars(r)["dishId"], payload.Note)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.cartView(w, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Cart.Remove(r.Context(), current(r), mux.Vars(r)["dishId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.cartView(w, cart)
}

func (h *Handler) getCheckout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Checkout.Summary(r.Context(), current(r)))
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	receipt, err := h.Checkout.PlaceOrder(r.Context(), current(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.Checkout.Receipt(r.Context(), current(r), mux.Vars(r)["number"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *Handler) getReceiptQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Checkout.ReceiptQR(r.Context(), current(r), mux.Vars(r)["number"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	sid := current(r).ID
	if r.URL.Query().Get("available") == "true" {
		writeJSON(w, http.StatusOK, h.Reservations.AvailableTables(r.Context(), sid))
		return
	}
	writeJSON(w, http.StatusOK, h.Reservations.Tables(r.Context(), sid))
}

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	sid := current(r).ID
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reservations": h.Reservations.Reservations(sid),
		"active":       h.Reservations.ActiveCount(sid),
	})
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req domain.ReservationRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	res, err := h.Reservations.Reserve(r.Context(), current(r).ID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Cancel(r.Context(), current(r).ID, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Reviews.List())
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var in domain.ReviewInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, err)
		return
	}

	review, err := h.Reviews.Submit(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.Auth.Signup(r.Context(), current(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.Auth.Login(r.Context(), current(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), current(r)); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/"})
}

func (h *Handler) getDarkMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"dark_mode": h.Auth.DarkMode(r.Context(), current(r))})
}

func (h *Handler) toggleDarkMode(w http.ResponseWriter, r *http.Request) {
	on, err := h.Auth.ToggleDarkMode(r.Context(), current(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"dark_mode": on})
}
