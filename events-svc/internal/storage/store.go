package storage

import (
	"context"
	"time"

	"foodcourt/events-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const CounterTTL = 7 * 24 * time.Hour

func DailyKey(date string) string  { return "analytics:orders:daily:" + date }
func StatusKey(date string) string { return "analytics:status:" + date }

// Store keeps per-day order counters in Redis for the owner dashboard.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) RecordPlaced(ctx context.Context, ev domain.OrderEvent) error {
	date := ev.Date()
	daily, status := DailyKey(date), StatusKey(date)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, daily, "placed", 1)
		pipe.HIncrBy(ctx, daily, "items", int64(ev.Items))
		pipe.HIncrByFloat(ctx, daily, "revenue", float64(ev.Total))
		pipe.HIncrBy(ctx, status, statusOrPending(ev.Status), 1)
		pipe.Expire(ctx, daily, CounterTTL)
		pipe.Expire(ctx, status, CounterTTL)
		return nil
	})
	return err
}

func (s *Store) RecordStatus(ctx context.Context, ev domain.OrderEvent) error {
	key := StatusKey(ev.Date())

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, statusOrPending(ev.Status), 1)
		pipe.Expire(ctx, key, CounterTTL)
		return nil
	})
	return err
}

func statusOrPending(s string) string {
	if s == "" {
		return "pending"
	}
	return s
}
