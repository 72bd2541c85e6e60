package domain

import "time"

type Dish struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	Description  string `json:"description"`
	Category     string `json:"category,omitempty"`
	RestaurantID string `json:"restaurant_id"`
	IsPopular    bool   `json:"is_popular"`
}

type Restaurant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Contact     string `json:"contact,omitempty"`
	Dishes      []Dish `json:"dishes"`
}

type Cuisine struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type PopularDish struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Outlet string `json:"outlet"`
	Price  int    `json:"price"`
}

const (
	TableAvailable = "available"
	TableReserved  = "reserved"
	TableOccupied  = "occupied"
)

type Table struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
	OwnerID  string `json:"owner_id,omitempty"`
}

// TableView is a table as one session sees it.
type TableView struct {
	Table
	Selectable bool `json:"selectable"`
}

type Review struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Outlet       string `json:"outlet"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
}

const (
	EventOrderPlaced = "order_placed"
)

// OrderEvent is published to the orders topic.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Total       int       `json:"total"`
	Items       int       `json:"items"`
	Payment     string    `json:"payment_method,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
