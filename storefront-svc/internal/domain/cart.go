package domain

type CartItem struct {
	DishID         string `json:"dishId"`
	Name           string `json:"name"`
	Price          int    `json:"price"`
	Quantity       int    `json:"quantity"`
	RestaurantName string `json:"restaurantName"`
	Notes          string `json:"notes,omitempty"`
}

// Cart holds at most one line per dish id, in insertion order.
type Cart []CartItem

func (c Cart) index(dishID string) int {
	for i := range c {
		if c[i].DishID == dishID {
			return i
		}
	}
	return -1
}

// Add bumps an existing line by one or appends a new line with quantity 1.
// Name and price are captured now and never refreshed.
func (c Cart) Add(dishID, name string, price int, restaurantName string) Cart {
	if i := c.index(dishID); i >= 0 {
		c[i].Quantity++
		return c
	}
	return append(c, CartItem{
		DishID:         dishID,
		Name:           name,
		Price:          price,
		Quantity:       1,
		RestaurantName: restaurantName,
	})
}

// SetQuantity sets a line in place; zero or less removes it.
func (c Cart) SetQuantity(dishID string, qty int) Cart {
	if qty <= 0 {
		return c.Remove(dishID)
	}
	if i := c.index(dishID); i >= 0 {
		c[i].Quantity = qty
	}
	return c
}

func (c Cart) SetNote(dishID, note string) Cart {
	if i := c.index(dishID); i >= 0 {
		c[i].Notes = note
	}
	return c
}

func (c Cart) Remove(dishID string) Cart {
	out := c[:0]
	for _, item := range c {
		if item.DishID != dishID {
			out = append(out, item)
		}
	}
	return out
}

func (c Cart) Total() int {
	total := 0
	for _, item := range c {
		total += item.Price * item.Quantity
	}
	return total
}

func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c {
		count += item.Quantity
	}
	return count
}

func (c Cart) Contains(dishID string) bool {
	return c.index(dishID) >= 0
}
