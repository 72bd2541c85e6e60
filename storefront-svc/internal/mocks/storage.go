package mocks

import (
	"context"

	"foodcourt/backend"
	"foodcourt/storefront-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type Catalog struct {
	mock.Mock
}

func (_m *Catalog) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *Catalog) Cuisines(ctx context.Context) ([]domain.Cuisine, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Cuisine
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Cuisine)
	}
	return r0, ret.Error(1)
}

func (_m *Catalog) Tables(ctx context.Context) ([]domain.Table, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Table)
	}
	return r0, ret.Error(1)
}

func NewCatalog(t testingT) *Catalog {
	m := &Catalog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Link(orderNumber string) string {
	ret := _m.Called(orderNumber)
	return ret.String(0)
}

func (_m *QRGenerator) Generate(orderNumber string) ([]byte, error) {
	ret := _m.Called(orderNumber)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type AuthBackend struct {
	mock.Mock
}

func (_m *AuthBackend) Login(ctx context.Context, req backend.LoginRequest) (*backend.LoginResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *backend.LoginResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*backend.LoginResponse)
	}
	return r0, ret.Error(1)
}

func (_m *AuthBackend) Register(ctx context.Context, req backend.RegisterRequest) (*backend.User, error) {
	ret := _m.Called(ctx, req)

	var r0 *backend.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*backend.User)
	}
	return r0, ret.Error(1)
}

func NewAuthBackend(t testingT) *AuthBackend {
	m := &AuthBackend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type CatalogClient struct {
	mock.Mock
}

func (_m *CatalogClient) Outlets(ctx context.Context) ([]backend.Outlet, error) {
	ret := _m.Called(ctx)

	var r0 []backend.Outlet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]backend.Outlet)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogClient) Cuisines(ctx context.Context) ([]backend.Cuisine, error) {
	ret := _m.Called(ctx)

	var r0 []backend.Cuisine
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]backend.Cuisine)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogClient) Tables(ctx context.Context) ([]backend.Table, error) {
	ret := _m.Called(ctx)

	var r0 []backend.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]backend.Table)
	}
	return r0, ret.Error(1)
}

func NewCatalogClient(t testingT) *CatalogClient {
	m := &CatalogClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
