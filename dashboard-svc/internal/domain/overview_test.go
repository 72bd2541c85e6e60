package domain

import (
	"testing"

	"foodcourt/backend"

	"github.com/stretchr/testify/assert"
)

func line(name string, outlet, price, qty int) backend.OrderItem {
	return backend.OrderItem{
		Quantity: qty,
		Subtotal: float64(price * qty),
		MenuItem: &backend.MenuItem{Name: name, OutletID: outlet, Price: price},
	}
}

func TestPickOutlet(t *testing.T) {
	outlets := []backend.Outlet{{ID: 4, Name: "Tamu Tamu Grills"}, {ID: 7, Name: "Sushi Spot"}}

	assert.Equal(t, "Sushi Spot", PickOutlet(outlets, 7).Name)
	assert.Equal(t, "Tamu Tamu Grills", PickOutlet(outlets, 0).Name)
	assert.Equal(t, "Tamu Tamu Grills", PickOutlet(outlets, 99).Name)
	assert.Nil(t, PickOutlet(nil, 1))
}

func TestOutletRevenueAndTopDishes(t *testing.T) {
	orders := []backend.Order{
		{TotalPrice: 2600, OrderItems: []backend.OrderItem{line("Nyama Choma", 1, 1200, 1), line("Sushi Roll", 2, 700, 2)}},
		{TotalPrice: 2400, OrderItems: []backend.OrderItem{line("Nyama Choma", 1, 1200, 2)}},
		{TotalPrice: 300, OrderItems: []backend.OrderItem{line("Kachumbari", 1, 150, 2), line("Chapati", 1, 50, 2), line("Mandazi", 1, 30, 1)}},
	}

	assert.Equal(t, 4030.0, OutletRevenue(orders, 1))
	assert.Equal(t, 5300.0, OutletRevenue(orders, 0))

	top := TopDishes(orders, 1)
	assert.Equal(t, []DishCount{
		{Name: "Nyama Choma", Price: 1200, Quantity: 3},
		{Name: "Chapati", Price: 50, Quantity: 2},
		{Name: "Kachumbari", Price: 150, Quantity: 2},
	}, top)

	assert.Empty(t, TopDishes(nil, 1))
}

func TestCountAvailable(t *testing.T) {
	assert.Equal(t, 2, CountAvailable(FallbackTables()))
}
