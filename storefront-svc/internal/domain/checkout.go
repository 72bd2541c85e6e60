package domain

import (
	"strings"
	"time"
)

const (
	FreeDeliveryThreshold = 1000
	DeliveryFee           = 100
)

const (
	PaymentMpesa = "mpesa"
	PaymentCard  = "card"
	PaymentCash  = "cash"
)

const (
	MsgEmptyCart       = "Your cart is empty!"
	MsgMissingCustomer = "Please fill in your name and phone number!"
)

// DeliveryFeeFor waives delivery strictly above the threshold.
func DeliveryFeeFor(subtotal int) int {
	if subtotal > FreeDeliveryThreshold {
		return 0
	}
	return DeliveryFee
}

type Summary struct {
	Items       Cart `json:"items"`
	ItemCount   int  `json:"item_count"`
	Subtotal    int  `json:"subtotal"`
	DeliveryFee int  `json:"delivery_fee"`
	Total       int  `json:"total"`
}

func Summarize(cart Cart) Summary {
	if cart == nil {
		cart = Cart{}
	}
	subtotal := cart.Total()
	fee := DeliveryFeeFor(subtotal)
	return Summary{
		Items:       cart,
		ItemCount:   cart.ItemCount(),
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}

type CheckoutRequest struct {
	Name                string `json:"name"`
	Phone               string `json:"phone"`
	Email               string `json:"email"`
	TableNumber         string `json:"table_number"`
	SpecialInstructions string `json:"special_instructions"`
	PaymentMethod       string `json:"payment_method"`
}

// Normalize trims the form and resolves the payment method, defaulting to
// M-Pesa.
func (r *CheckoutRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)

	switch strings.ToLower(strings.TrimSpace(r.PaymentMethod)) {
	case "", PaymentMpesa:
		r.PaymentMethod = PaymentMpesa
	case PaymentCard:
		r.PaymentMethod = PaymentCard
	case PaymentCash:
		r.PaymentMethod = PaymentCash
	default:
		return Invalid("payment_method", "Unsupported payment method: "+r.PaymentMethod)
	}

	if r.Name == "" {
		return Invalid("name", MsgMissingCustomer)
	}
	if r.Phone == "" {
		return Invalid("phone", MsgMissingCustomer)
	}
	return nil
}

type Receipt struct {
	OrderNumber         string    `json:"order_number"`
	Items               Cart      `json:"items"`
	Subtotal            int       `json:"subtotal"`
	DeliveryFee         int       `json:"delivery_fee"`
	Total               int       `json:"total"`
	PaymentMethod       string    `json:"payment_method"`
	CustomerName        string    `json:"customer_name"`
	Phone               string    `json:"phone"`
	Email               string    `json:"email,omitempty"`
	TableNumber         string    `json:"table_number,omitempty"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	EstimatedReady      string    `json:"estimated_ready"`
	CreatedAt           time.Time `json:"created_at"`
}
