package mocks

import (
	"context"

	"foodcourt/dashboard-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type OrderServiceInterface struct {
	mock.Mock
}

func (_m *OrderServiceInterface) List(ctx context.Context, filter string) ([]domain.OrderView, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.OrderView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OrderView)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) UpdateStatus(ctx context.Context, id int, status string) error {
	ret := _m.Called(ctx, id, status)
	return ret.Error(0)
}

func (_m *OrderServiceInterface) Delete(ctx context.Context, id int, confirmed bool) error {
	ret := _m.Called(ctx, id, confirmed)
	return ret.Error(0)
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
