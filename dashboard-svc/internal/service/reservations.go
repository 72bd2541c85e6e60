package service

import (
	"context"

	"foodcourt/backend"
	"foodcourt/dashboard-svc/internal/domain"

	"go.uber.org/zap"
)

type ReservationService struct {
	api    Backend
	logger *zap.Logger
}

func NewReservationService(api Backend, logger *zap.Logger) *ReservationService {
	return &ReservationService{api: api, logger: logger}
}

// Board lists reservations and tables. If either fetch fails the owner gets
// an empty list over the fallback floor plan.
func (s *ReservationService) Board(ctx context.Context) domain.ReservationBoard {
	board, err := s.fetchBoard(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch reservation data", zap.Error(err))
		return domain.ReservationBoard{
			Reservations: []backend.Reservation{},
			Tables:       domain.FallbackTables(),
			Fallback:     true,
		}
	}
	return board
}

func (s *ReservationService) fetchBoard(ctx context.Context) (domain.ReservationBoard, error) {
	board := domain.ReservationBoard{Reservations: []backend.Reservation{}, Tables: []backend.Table{}}

	reservations, err := s.api.Reservations(ctx)
	if err != nil {
		return board, err
	}
	tables, err := s.api.Tables(ctx)
	if err != nil {
		return board, err
	}

	if reservations != nil {
		board.Reservations = reservations
	}
	if tables != nil {
		board.Tables = tables
	}
	return board, nil
}

// Add books an available table for a walk-in customer. The customer is
// registered first; when registration fails the booking is filed under the
// fallback user.
func (s *ReservationService) Add(ctx context.Context, in domain.ReservationInput) (*backend.Reservation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tables, err := s.api.Tables(ctx)
	if err != nil {
		return nil, backendError("table", err)
	}
	if err := domain.CheckTable(tables, in.TableID); err != nil {
		return nil, err
	}

	userID := domain.FallbackUserID
	user, err := s.api.Register(ctx, backend.RegisterRequest{
		Name:     in.CustomerName,
		Email:    in.CustomerEmail,
		Password: domain.TempPassword,
		PhoneNo:  domain.PlaceholderPhone,
		Role:     "customer",
	})
	switch {
	case err != nil:
		s.logger.Info("customer registration failed, using fallback user", zap.Error(err))
	case user != nil && user.ID > 0:
		userID = user.ID
	}

	created, err := s.api.CreateReservation(ctx, backend.Reservation{
		UserID:          userID,
		TableID:         in.TableID,
		ReservationDate: in.ReservationDate,
		ReservationTime: in.ReservationTime,
		PartySize:       in.PartySize,
		Status:          domain.ReservationConfirmed,
	})
	if err != nil {
		return nil, backendError("reservation", err)
	}
	return created, nil
}

func (s *ReservationService) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := s.api.DeleteReservation(ctx, id); err != nil {
		return backendError("reservation", err)
	}
	return nil
}
