package storage

import (
	"context"
	"strconv"

	"foodcourt/dashboard-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCounters reads the per-day order counters written by events-svc.
type RedisCounters struct {
	Client *redis.Client
}

func NewRedisCounters(client *redis.Client) *RedisCounters {
	return &RedisCounters{Client: client}
}

func (c *RedisCounters) Live(ctx context.Context, date string) (*domain.LiveCounters, error) {
	daily, err := c.Client.HGetAll(ctx, "analytics:orders:daily:"+date).Result()
	if err != nil {
		return nil, err
	}
	statuses, err := c.Client.HGetAll(ctx, "analytics:status:"+date).Result()
	if err != nil {
		return nil, err
	}

	live := &domain.LiveCounters{Date: date, ByStatus: map[string]int{}}
	live.Placed, _ = strconv.ParseInt(daily["placed"], 10, 64)
	live.Revenue, _ = strconv.ParseFloat(daily["revenue"], 64)
	for status, n := range statuses {
		live.ByStatus[status], _ = strconv.Atoi(n)
	}
	return live, nil
}
