package service

import (
	"context"
	"time"

	"foodcourt/backend"
	"foodcourt/session"
	"foodcourt/storefront-svc/internal/domain"
)

// Session is the per-browser key/value state a request carries.
type Session interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	SetFor(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Role(ctx context.Context) session.Role
	IsAuthenticated(ctx context.Context) bool
	Name(ctx context.Context) string
}

type Catalog interface {
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
	Cuisines(ctx context.Context) ([]domain.Cuisine, error)
	Tables(ctx context.Context) ([]domain.Table, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Link(orderNumber string) string
	Generate(orderNumber string) ([]byte, error)
}

type AuthBackend interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.LoginResponse, error)
	Register(ctx context.Context, req backend.RegisterRequest) (*backend.User, error)
}

type CatalogServiceInterface interface {
	Restaurants(ctx context.Context, cuisine, query string) []domain.Restaurant
	Restaurant(ctx context.Context, id, dishQuery string) (*domain.Restaurant, error)
	Cuisines(ctx context.Context) []domain.Cuisine
	PopularDishes(ctx context.Context) []domain.PopularDish
	Dish(ctx context.Context, id string) (*domain.Dish, string, error)
	Tables(ctx context.Context) []domain.Table
}

type CartServiceInterface interface {
	Cart(ctx context.Context, s Session) domain.Cart
	Add(ctx context.Context, s Session, dishID string) (domain.Cart, error)
	SetQuantity(ctx context.Context, s Session, dishID string, qty int) (domain.Cart, error)
	SetNote(ctx context.Context, s Session, dishID, note string) (domain.Cart, error)
	Remove(ctx context.Context, s Session, dishID string) (domain.Cart, error)
	Clear(ctx context.Context, s Session) error
}

type ReservationServiceInterface interface {
	Reserve(ctx context.Context, sid string, req domain.ReservationRequest) (domain.Reservation, error)
	Cancel(ctx context.Context, sid, reservationID string) (domain.Reservation, error)
	Tables(ctx context.Context, sid string) []domain.TableView
	AvailableTables(ctx context.Context, sid string) []domain.Table
	Reservations(sid string) []domain.Reservation
	ActiveCount(sid string) int
}

type CheckoutServiceInterface interface {
	Summary(ctx context.Context, s Session) domain.Summary
	PlaceOrder(ctx context.Context, s Session, req domain.CheckoutRequest) (*domain.Receipt, error)
	Receipt(ctx context.Context, s Session, orderNumber string) (*domain.Receipt, error)
	ReceiptQR(ctx context.Context, s Session, orderNumber string) ([]byte, error)
}

type AuthServiceInterface interface {
	Signup(ctx context.Context, s Session, req domain.SignupRequest) (*domain.AuthResult, error)
	Login(ctx context.Context, s Session, req domain.LoginRequest) (*domain.AuthResult, error)
	Logout(ctx context.Context, s Session) error
	DarkMode(ctx context.Context, s Session) bool
	ToggleDarkMode(ctx context.Context, s Session) (bool, error)
}

type ReviewServiceInterface interface {
	List() []domain.Review
	Submit(ctx context.Context, in domain.ReviewInput) (domain.Review, error)
}

type NavigationServiceInterface interface {
	Header(ctx context.Context, s Session, path string) domain.Header
}

var (
	_ CatalogServiceInterface     = (*CatalogService)(nil)
	_ CartServiceInterface        = (*CartService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
	_ CheckoutServiceInterface    = (*CheckoutService)(nil)
	_ AuthServiceInterface        = (*AuthService)(nil)
	_ ReviewServiceInterface      = (*ReviewService)(nil)
	_ NavigationServiceInterface  = (*NavigationService)(nil)
	_ Session                     = (*session.Session)(nil)
)
