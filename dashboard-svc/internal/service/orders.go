package service

import (
	"context"
	"time"

	"foodcourt/dashboard-svc/internal/domain"

	"go.uber.org/zap"
)

type OrderService struct {
	api       Backend
	publisher StatusPublisher
	logger    *zap.Logger
}

func NewOrderService(api Backend, publisher StatusPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{api: api, publisher: publisher, logger: logger}
}

func (s *OrderService) List(ctx context.Context, filter string) ([]domain.OrderView, error) {
	orders, err := s.api.Orders(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch orders", zap.Error(err))
		orders = nil
	}
	return domain.FilterOrders(orders, filter)
}

// UpdateStatus sets any known status. Transitions are not enforced here;
// the offered actions are what keep owners on the forward path.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) error {
	st, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Invalid("status", "Invalid order status")
	}
	if err := s.api.UpdateOrderStatus(ctx, id, string(st)); err != nil {
		return backendError("order", err)
	}

	event := domain.StatusEvent{
		Type:      domain.EventStatusChanged,
		OrderID:   id,
		Status:    st,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.PublishStatus(ctx, event); err != nil {
		s.logger.Warn("failed to publish status change", zap.Int("order_id", id), zap.Error(err))
	}
	s.logger.Info("order status updated", zap.Int("order_id", id), zap.String("status", string(st)))
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := s.api.DeleteOrder(ctx, id); err != nil {
		return backendError("order", err)
	}
	return nil
}
