package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodcourt/session"
	"foodcourt/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ReceiptTTL     = 24 * time.Hour
	estimatedReady = "15-20 minutes"
)

// CheckoutService turns a cart into a simulated order. Nothing is charged.
type CheckoutService struct {
	carts     CartServiceInterface
	publisher OrderPublisher
	qr        QRGenerator
	logger    *zap.Logger
	now       func() time.Time
}

func NewCheckoutService(carts CartServiceInterface, publisher OrderPublisher, qr QRGenerator, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		publisher: publisher,
		qr:        qr,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *CheckoutService) Summary(ctx context.Context, sess Session) domain.Summary {
	return domain.Summarize(s.carts.Cart(ctx, sess))
}

func orderNumber(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("FC-%s-%s", at.Format("20060102"), suffix)
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, sess Session, req domain.CheckoutRequest) (*domain.Receipt, error) {
	cart := s.carts.Cart(ctx, sess)
	if len(cart) == 0 {
		return nil, domain.Invalid("cart", domain.MsgEmptyCart)
	}
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	summary := domain.Summarize(cart)
	now := s.now()
	receipt := &domain.Receipt{
		OrderNumber:         orderNumber(now),
		Items:               cart,
		Subtotal:            summary.Subtotal,
		DeliveryFee:         summary.DeliveryFee,
		Total:               summary.Total,
		PaymentMethod:       req.PaymentMethod,
		CustomerName:        req.Name,
		Phone:               req.Phone,
		Email:               strings.TrimSpace(req.Email),
		TableNumber:         strings.TrimSpace(req.TableNumber),
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
		EstimatedReady:      estimatedReady,
		CreatedAt:           now,
	}

	payload, err := json.Marshal(receipt)
	if err != nil {
		return nil, err
	}
	if err := sess.SetFor(ctx, session.ReceiptKey(receipt.OrderNumber), string(payload), ReceiptTTL); err != nil {
		return nil, fmt.Errorf("failed to store receipt: %w", err)
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:        domain.EventOrderPlaced,
			OrderNumber: receipt.OrderNumber,
			Status:      "pending",
			Total:       receipt.Total,
			Items:       summary.ItemCount,
			Payment:     receipt.PaymentMethod,
			Timestamp:   now,
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			s.logger.Warn("failed to publish order event", zap.String("order", receipt.OrderNumber), zap.Error(err))
		}
	}

	if err := s.carts.Clear(ctx, sess); err != nil {
		s.logger.Warn("failed to clear cart", zap.Error(err))
	}

	s.logger.Info("order placed",
		zap.String("order", receipt.OrderNumber),
		zap.Int("total", receipt.Total),
		zap.String("payment", receipt.PaymentMethod))
	return receipt, nil
}

func (s *CheckoutService) Receipt(ctx context.Context, sess Session, orderNumber string) (*domain.Receipt, error) {
	raw, ok, err := sess.Get(ctx, session.ReceiptKey(orderNumber))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrReceiptNotFound
	}

	var receipt domain.Receipt
	if err := json.Unmarshal([]byte(raw), &receipt); err != nil {
		return nil, errors.Join(domain.ErrReceiptNotFound, err)
	}
	return &receipt, nil
}

func (s *CheckoutService) ReceiptQR(ctx context.Context, sess Session, orderNumber string) ([]byte, error) {
	if _, err := s.Receipt(ctx, sess, orderNumber); err != nil {
		return nil, err
	}
	return s.qr.Generate(orderNumber)
}
