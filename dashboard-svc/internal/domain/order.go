package domain

import (
	"time"

	"foodcourt/backend"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// FilterAll disables status filtering on the order list.
const FilterAll = "all"

var statusOrder = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusDelivered}

func ParseStatus(s string) (OrderStatus, error) {
	for _, st := range statusOrder {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// Next returns the forward transition, or false once delivered.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range statusOrder {
		if st == s && i+1 < len(statusOrder) {
			return statusOrder[i+1], true
		}
	}
	return "", false
}

type Action struct {
	Label  string      `json:"label"`
	Status OrderStatus `json:"status"`
}

var forwardLabels = map[OrderStatus]string{
	StatusPreparing: "Start Preparing",
	StatusReady:     "Mark as Ready",
	StatusDelivered: "Mark as Delivered",
}

// Actions lists what an owner may do with an order in status s: the forward
// step if there is one, then a reset unless the order is already pending.
func Actions(s OrderStatus) []Action {
	actions := []Action{}
	if next, ok := s.Next(); ok {
		actions = append(actions, Action{Label: forwardLabels[next], Status: next})
	}
	if s != StatusPending {
		actions = append(actions, Action{Label: "Reset to Pending", Status: StatusPending})
	}
	return actions
}

type OrderView struct {
	backend.Order
	Actions []Action `json:"actions"`
}

func NewOrderView(o backend.Order) OrderView {
	return OrderView{Order: o, Actions: Actions(OrderStatus(o.Status))}
}

// FilterOrders keeps orders matching filter. An empty filter or "all" keeps
// everything; any other value must be a known status.
func FilterOrders(orders []backend.Order, filter string) ([]OrderView, error) {
	var want OrderStatus
	if filter != "" && filter != FilterAll {
		st, err := ParseStatus(filter)
		if err != nil {
			return nil, Invalid("status", "Unknown status filter")
		}
		want = st
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		if want != "" && OrderStatus(o.Status) != want {
			continue
		}
		views = append(views, NewOrderView(o))
	}
	return views, nil
}

const EventStatusChanged = "order_status_changed"

type StatusEvent struct {
	Type      string      `json:"type"`
	OrderID   int         `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}
