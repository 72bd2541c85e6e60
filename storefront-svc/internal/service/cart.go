package service

import (
	"context"
	"encoding/json"
	"fmt"

	"foodcourt/session"
	"foodcourt/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

// CartService keeps the cart as one JSON document in the session. Every
// mutation rewrites the whole document; concurrent requests on the same
// session race and the last write wins.
type CartService struct {
	catalog CatalogServiceInterface
	logger  *zap.Logger
}

func NewCartService(catalog CatalogServiceInterface, logger *zap.Logger) *CartService {
	return &CartService{catalog: catalog, logger: logger}
}

func (s *CartService) Cart(ctx context.Context, sess Session) domain.Cart {
	raw, ok, err := sess.Get(ctx, session.KeyCart)
	if err != nil {
		s.logger.Warn("failed to read cart", zap.Error(err))
		return domain.Cart{}
	}
	if !ok || raw == "" {
		return domain.Cart{}
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		s.logger.Warn("discarding corrupt cart", zap.Error(err))
		return domain.Cart{}
	}
	if cart == nil {
		cart = domain.Cart{}
	}
	return cart
}

func (s *CartService) save(ctx context.Context, sess Session, cart domain.Cart) (domain.Cart, error) {
	if cart == nil {
		cart = domain.Cart{}
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return nil, err
	}
	if err := sess.Set(ctx, session.KeyCart, string(payload)); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) Add(ctx context.Context, sess Session, dishID string) (domain.Cart, error) {
	dish, restaurant, err := s.catalog.Dish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	cart := s.Cart(ctx, sess).Add(dish.ID, dish.Name, dish.Price, restaurant)
	return s.save(ctx, sess, cart)
}

func (s *CartService) SetQuantity(ctx context.Context, sess Session, dishID string, qty int) (domain.Cart, error) {
	cart := s.Cart(ctx, sess)
	if qty > 0 && !cart.Contains(dishID) {
		return nil, domain.ErrDishNotFound
	}
	return s.save(ctx, sess, cart.SetQuantity(dishID, qty))
}

func (s *CartService) SetNote(ctx context.Context, sess Session, dishID, note string) (domain.Cart, error) {
	cart := s.Cart(ctx, sess)
	if !cart.Contains(dishID) {
		return nil, domain.ErrDishNotFound
	}
	return s.save(ctx, sess, cart.SetNote(dishID, note))
}

func (s *CartService) Remove(ctx context.Context, sess Session, dishID string) (domain.Cart, error) {
	return s.save(ctx, sess, s.Cart(ctx, sess).Remove(dishID))
}

// Clear drops the persisted cart entry entirely.
func (s *CartService) Clear(ctx context.Context, sess Session) error {
	return sess.Delete(ctx, session.KeyCart)
}
