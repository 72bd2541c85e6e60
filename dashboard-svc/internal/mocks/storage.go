package mocks

import (
	"context"

	"foodcourt/backend"
	"foodcourt/dashboard-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type Backend struct {
	mock.Mock
}

func (_m *Backend) Outlets(ctx context.Context) ([]backend.Outlet, error) {
	ret := _m.Called(ctx)

	var r0 []backend.Outlet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]backend.Outlet)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) Tables(ctx context.Context) ([]backend.Table, error) {
	ret := _m.Called(ctx)

	var r0 []backend.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]backend.Table)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) MenuItems(ctx context.Context) ([]backend.MenuItem, error) {
	ret := _m.Called(ctx)

	var r0 []backend.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]backend.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) CreateMenuItem(ctx context.Context, item backend.MenuItem) (*backend.MenuItem, error) {
	ret := _m.Called(ctx, item)

	var r0 *backend.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*backend.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) DeleteMenuItem(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *Backend) Orders(ctx context.Context) ([]backend.Order, error) {
	ret := _m.Called(ctx)

	var r0 []backend.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]backend.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	ret := _m.Called(ctx, id, status)
	return ret.Error(0)
}

func (_m *Backend) DeleteOrder(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *Backend) Reservations(ctx context.Context) ([]backend.Reservation, error) {
	ret := _m.Called(ctx)

	var r0 []backend.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]backend.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) CreateReservation(ctx context.Context, r backend.Reservation) (*backend.Reservation, error) {
	ret := _m.Called(ctx, r)

	var r0 *backend.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*backend.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *Backend) DeleteReservation(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *Backend) Register(ctx context.Context, req backend.RegisterRequest) (*backend.User, error) {
	ret := _m.Called(ctx, req)

	var r0 *backend.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*backend.User)
	}
	return r0, ret.Error(1)
}

func NewBackend(t testingT) *Backend {
	m := &Backend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type StatusPublisher struct {
	mock.Mock
}

func (_m *StatusPublisher) PublishStatus(ctx context.Context, event domain.StatusEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewStatusPublisher(t testingT) *StatusPublisher {
	m := &StatusPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type RatingSource struct {
	mock.Mock
}

func (_m *RatingSource) Ratings(ctx context.Context) ([]int, error) {
	ret := _m.Called(ctx)

	var r0 []int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int)
	}
	return r0, ret.Error(1)
}

func NewRatingSource(t testingT) *RatingSource {
	m := &RatingSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type LiveCounterSource struct {
	mock.Mock
}

func (_m *LiveCounterSource) Live(ctx context.Context, date string) (*domain.LiveCounters, error) {
	ret := _m.Called(ctx, date)

	var r0 *domain.LiveCounters
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.LiveCounters)
	}
	return r0, ret.Error(1)
}

func NewLiveCounterSource(t testingT) *LiveCounterSource {
	m := &LiveCounterSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
