package domain

import "time"

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "order_status_changed"
)

// OrderEvent covers both message types on the orders topic. Placed orders
// carry an order number and totals; status changes carry the backend order id.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderNumber string    `json:"order_number,omitempty"`
	OrderID     int       `json:"order_id,omitempty"`
	Status      string    `json:"status"`
	Total       int       `json:"total,omitempty"`
	Items       int       `json:"items,omitempty"`
	Payment     string    `json:"payment_method,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Date is the UTC calendar day the event is counted under, matching the
// date prefix of backend created_at values.
func (e OrderEvent) Date() string {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return ts.UTC().Format("2006-01-02")
}
