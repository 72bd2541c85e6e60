package domain

type NavLink struct {
	Href     string `json:"href"`
	Label    string `json:"label"`
	Greeting bool   `json:"greeting,omitempty"`
}

type Header struct {
	Links     []NavLink `json:"links"`
	Role      string    `json:"role"`
	UserName  string    `json:"user_name,omitempty"`
	ShowCart  bool      `json:"show_cart"`
	CartCount int       `json:"cart_count"`
	DarkMode  bool      `json:"dark_mode"`
}

var OwnerLinks = []NavLink{
	{Href: "/owner-dashboard", Label: "Overview"},
	{Href: "/owner-dashboard/analytics", Label: "Analytics"},
	{Href: "/owner-dashboard/order-management", Label: "Order Management"},
	{Href: "/owner-dashboard/menu", Label: "Menu"},
	{Href: "/owner-dashboard/reservations", Label: "Reservations"},
}

var CustomerLinks = []NavLink{
	{Href: "/", Label: "Home"},
	{Href: "/order", Label: "Order"},
	{Href: "/reservations", Label: "Reservations"},
}
