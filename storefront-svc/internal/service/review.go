package service

import (
	"context"
	"sync"
	"time"

	"foodcourt/storefront-svc/internal/domain"

	"github.com/google/uuid"
)

type ReviewService struct {
	mu      sync.RWMutex
	reviews []domain.Review
	now     func() time.Time
}

func NewReviewService(seed []domain.Review) *ReviewService {
	return &ReviewService{reviews: seed, now: time.Now}
}

func (s *ReviewService) List() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// Submit prepends the review so the newest shows first.
func (s *ReviewService) Submit(ctx context.Context, in domain.ReviewInput) (domain.Review, error) {
	if err := in.Validate(); err != nil {
		return domain.Review{}, err
	}

	review := domain.Review{
		ID:           uuid.NewString(),
		CustomerName: in.CustomerName,
		Outlet:       in.Outlet,
		Rating:       in.Rating,
		Comment:      in.Comment,
		Date:         s.now().Format("2006-01-02"),
	}

	s.mu.Lock()
	s.reviews = append([]domain.Review{review}, s.reviews...)
	s.mu.Unlock()
	return review, nil
}
