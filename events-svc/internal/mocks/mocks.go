package mocks

import (
	"context"

	"foodcourt/events-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) RecordPlaced(ctx context.Context, ev domain.OrderEvent) error {
	ret := _m.Called(ctx, ev)
	return ret.Error(0)
}

func (_m *StoreInterface) RecordStatus(ctx context.Context, ev domain.OrderEvent) error {
	ret := _m.Called(ctx, ev)
	return ret.Error(0)
}

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MessageReader struct {
	mock.Mock
}

func (_m *MessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(kafka.Message), ret.Error(1)
}

func NewMessageReader(t testingT) *MessageReader {
	m := &MessageReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type Broadcaster struct {
	mock.Mock
}

func (_m *Broadcaster) Broadcast(v interface{}) {
	_m.Called(v)
}

func NewBroadcaster(t testingT) *Broadcaster {
	m := &Broadcaster{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
