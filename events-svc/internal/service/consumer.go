package service

import (
	"context"
	"encoding/json"

	"foodcourt/events-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Hub    Broadcaster
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, hub Broadcaster, logger *zap.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Hub:    hub,
		Logger: logger,
	}
}

// Start reads the orders topic until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("order event consumer stopped")
				return
			}
			c.Logger.Error("error reading message", zap.Error(err))
			continue
		}

		var ev domain.OrderEvent
		if err := json.Unmarshal(message.Value, &ev); err != nil {
			c.Logger.Warn("error unmarshaling message", zap.ByteString("key", message.Key), zap.Error(err))
			continue
		}
		c.Process(ctx, ev)
	}
}

// Process updates the counters for one event and forwards it to the live
// board. A counter failure is logged; the board still gets the event.
func (c *Consumer) Process(ctx context.Context, ev domain.OrderEvent) {
	var err error
	switch ev.Type {
	case domain.EventOrderPlaced:
		err = c.Store.RecordPlaced(ctx, ev)
	case domain.EventStatusChanged:
		err = c.Store.RecordStatus(ctx, ev)
	default:
		c.Logger.Debug("ignoring event", zap.String("type", ev.Type))
		return
	}

	if err != nil {
		c.Logger.Error("error updating order counters",
			zap.String("type", ev.Type),
			zap.String("order_number", ev.OrderNumber),
			zap.Int("order_id", ev.OrderID),
			zap.Error(err))
	}

	c.Hub.Broadcast(ev)
	c.Logger.Info("processed order event",
		zap.String("type", ev.Type),
		zap.String("status", ev.Status))
}
