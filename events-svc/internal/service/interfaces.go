package service

import (
	"context"

	"foodcourt/events-svc/internal/domain"
	"foodcourt/events-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordPlaced(ctx context.Context, ev domain.OrderEvent) error
	RecordStatus(ctx context.Context, ev domain.OrderEvent) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type Broadcaster interface {
	Broadcast(v interface{})
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, ev domain.OrderEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ Broadcaster       = (*Hub)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
