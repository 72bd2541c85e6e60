package mocks

import (
	"context"

	"foodcourt/storefront-svc/internal/domain"
	"foodcourt/storefront-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

type CatalogServiceInterface struct {
	mock.Mock
}

func (_m *CatalogServiceInterface) Restaurants(ctx context.Context, cuisine, query string) []domain.Restaurant {
	ret := _m.Called(ctx, cuisine, query)

	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0
}

func (_m *CatalogServiceInterface) Restaurant(ctx context.Context, id, dishQuery string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id, dishQuery)

	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) Cuisines(ctx context.Context) []domain.Cuisine {
	ret := _m.Called(ctx)

	var r0 []domain.Cuisine
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Cuisine)
	}
	return r0
}

func (_m *CatalogServiceInterface) PopularDishes(ctx context.Context) []domain.PopularDish {
	ret := _m.Called(ctx)

	var r0 []domain.PopularDish
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PopularDish)
	}
	return r0
}

func (_m *CatalogServiceInterface) Dish(ctx context.Context, id string) (*domain.Dish, string, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Dish
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Dish)
	}
	return r0, ret.String(1), ret.Error(2)
}

func (_m *CatalogServiceInterface) Tables(ctx context.Context) []domain.Table {
	ret := _m.Called(ctx)

	var r0 []domain.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Table)
	}
	return r0
}

func NewCatalogServiceInterface(t testingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type CheckoutServiceInterface struct {
	mock.Mock
}

func (_m *CheckoutServiceInterface) Summary(ctx context.Context, s service.Session) domain.Summary {
	ret := _m.Called(ctx, s)
	return ret.Get(0).(domain.Summary)
}

func (_m *CheckoutServiceInterface) PlaceOrder(ctx context.Context, s service.Session, req domain.CheckoutRequest) (*domain.Receipt, error) {
	ret := _m.Called(ctx, s, req)

	var r0 *domain.Receipt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Receipt)
	}
	return r0, ret.Error(1)
}

func (_m *CheckoutServiceInterface) Receipt(ctx context.Context, s service.Session, orderNumber string) (*domain.Receipt, error) {
	ret := _m.Called(ctx, s, orderNumber)

	var r0 *domain.Receipt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Receipt)
	}
	return r0, ret.Error(1)
}

func (_m *CheckoutServiceInterface) ReceiptQR(ctx context.Context, s service.Session, orderNumber string) ([]byte, error) {
	ret := _m.Called(ctx, s, orderNumber)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func NewCheckoutServiceInterface(t testingT) *CheckoutServiceInterface {
	m := &CheckoutServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
