package service

import (
	"context"
	"sync"
	"time"

	"foodcourt/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionBook struct {
	book *domain.ReservationBook
	seen time.Time
}

// ReservationService keeps one reservation book per session in process
// memory. Books are lost on restart and dropped after idleTTL without use,
// the same lifetime as the session itself. A zero idleTTL keeps them forever.
type ReservationService struct {
	catalog CatalogServiceInterface
	idleTTL time.Duration
	logger  *zap.Logger
	now     func() time.Time

	mu        sync.Mutex
	books     map[string]*sessionBook
	lastSweep time.Time
}

func NewReservationService(catalog CatalogServiceInterface, idleTTL time.Duration, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		catalog: catalog,
		idleTTL: idleTTL,
		logger:  logger,
		now:     time.Now,
		books:   make(map[string]*sessionBook),
	}
}

// WithClock replaces the time source used for idle eviction.
func (s *ReservationService) WithClock(now func() time.Time) *ReservationService {
	s.now = now
	return s
}

// book returns the session's book. Reads of a session without one get an
// empty book that is not stored. Callers hold s.mu.
func (s *ReservationService) book(sid string, create bool) *domain.ReservationBook {
	now := s.now()
	s.sweep(now)

	sb, ok := s.books[sid]
	if !ok {
		if !create {
			return domain.NewReservationBook()
		}
		sb = &sessionBook{book: domain.NewReservationBook()}
		s.books[sid] = sb
	}
	sb.seen = now
	return sb.book
}

func (s *ReservationService) sweep(now time.Time) {
	if s.idleTTL <= 0 || now.Sub(s.lastSweep) < s.idleTTL {
		return
	}
	s.lastSweep = now
	for sid, sb := range s.books {
		if now.Sub(sb.seen) >= s.idleTTL {
			delete(s.books, sid)
		}
	}
}

func (s *ReservationService) Reserve(ctx context.Context, sid string, req domain.ReservationRequest) (domain.Reservation, error) {
	tables := s.catalog.Tables(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.book(sid, true).Reserve(tables, req, uuid.NewString())
	if err != nil {
		return domain.Reservation{}, err
	}
	s.logger.Info("table reserved",
		zap.String("table", res.TableID),
		zap.String("date", res.Date),
		zap.String("time", res.Time),
		zap.Int("party_size", res.PartySize))
	return res, nil
}

func (s *ReservationService) Cancel(ctx context.Context, sid, reservationID string) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book(sid, false).Cancel(reservationID)
}

func (s *ReservationService) Tables(ctx context.Context, sid string) []domain.TableView {
	tables := s.catalog.Tables(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book(sid, false).View(tables)
}

func (s *ReservationService) AvailableTables(ctx context.Context, sid string) []domain.Table {
	tables := s.catalog.Tables(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book(sid, false).Available(tables)
}

func (s *ReservationService) Reservations(sid string) []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.book(sid, false)
	out := make([]domain.Reservation, len(b.Reservations))
	copy(out, b.Reservations)
	return out
}

func (s *ReservationService) ActiveCount(sid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book(sid, false).ActiveCount()
}
