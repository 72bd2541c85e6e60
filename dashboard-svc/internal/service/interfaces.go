package service

import (
	"context"
	"io"

	"foodcourt/backend"
	"foodcourt/dashboard-svc/internal/domain"
	"foodcourt/dashboard-svc/internal/storage"
)

// Backend is the subset of the food court REST API the dashboard drives.
type Backend interface {
	Outlets(ctx context.Context) ([]backend.Outlet, error)
	Tables(ctx context.Context) ([]backend.Table, error)
	MenuItems(ctx context.Context) ([]backend.MenuItem, error)
	CreateMenuItem(ctx context.Context, item backend.MenuItem) (*backend.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
	Orders(ctx context.Context) ([]backend.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) error
	DeleteOrder(ctx context.Context, id int) error
	Reservations(ctx context.Context) ([]backend.Reservation, error)
	CreateReservation(ctx context.Context, r backend.Reservation) (*backend.Reservation, error)
	DeleteReservation(ctx context.Context, id int) error
	Register(ctx context.Context, req backend.RegisterRequest) (*backend.User, error)
}

type StatusPublisher interface {
	PublishStatus(ctx context.Context, event domain.StatusEvent) error
}

type LiveCounterSource interface {
	Live(ctx context.Context, date string) (*domain.LiveCounters, error)
}

type RatingSource interface {
	Ratings(ctx context.Context) ([]int, error)
}

type MenuServiceInterface interface {
	Menu(ctx context.Context) domain.MenuView
	Add(ctx context.Context, in domain.MenuItemInput) (*backend.MenuItem, error)
	Delete(ctx context.Context, id int, confirmed bool) error
	Import(ctx context.Context, r io.Reader) (*domain.ImportReport, error)
}

type OrderServiceInterface interface {
	List(ctx context.Context, filter string) ([]domain.OrderView, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int, confirmed bool) error
}

type ReservationServiceInterface interface {
	Board(ctx context.Context) domain.ReservationBoard
	Add(ctx context.Context, in domain.ReservationInput) (*backend.Reservation, error)
	Delete(ctx context.Context, id int, confirmed bool) error
}

type OverviewServiceInterface interface {
	Overview(ctx context.Context, ownerName string, outletID int) domain.Overview
}

type AnalyticsServiceInterface interface {
	Summary(ctx context.Context) domain.Analytics
}

var (
	_ Backend           = (*backend.Client)(nil)
	_ StatusPublisher   = (*storage.KafkaPublisher)(nil)
	_ LiveCounterSource = (*storage.RedisCounters)(nil)
	_ RatingSource      = (*storage.ReviewFeed)(nil)

	_ MenuServiceInterface        = (*MenuService)(nil)
	_ OrderServiceInterface       = (*OrderService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
	_ OverviewServiceInterface    = (*OverviewService)(nil)
	_ AnalyticsServiceInterface   = (*AnalyticsService)(nil)
)
