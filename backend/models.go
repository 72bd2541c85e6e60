package backend

// Wire types of the food court REST backend.

type Cuisine struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Outlet struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Contact     string     `json:"contact"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	CuisineID   int        `json:"cuisine_id"`
	Cuisine     *Cuisine   `json:"cuisine,omitempty"`
	MenuItems   []MenuItem `json:"menu_items,omitempty"`
}

type MenuItem struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	OutletID    int    `json:"outlet_id"`
}

type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	PhoneNo string `json:"phone_no,omitempty"`
}

type OrderItem struct {
	Quantity int       `json:"quantity"`
	Subtotal float64   `json:"subtotal"`
	MenuItem *MenuItem `json:"menu_item,omitempty"`
}

type Order struct {
	ID          int         `json:"id"`
	Status      string      `json:"status"`
	TotalPrice  float64     `json:"total_price"`
	CreatedAt   string      `json:"created_at"`
	TableNumber *int        `json:"table_number,omitempty"`
	User        *User       `json:"user,omitempty"`
	OrderItems  []OrderItem `json:"order_items"`
}

type Table struct {
	ID          int    `json:"id"`
	TableNumber int    `json:"table_number"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
}

type Reservation struct {
	ID              int    `json:"id,omitempty"`
	UserID          int    `json:"user_id"`
	TableID         int    `json:"table_id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	Status          string `json:"status"`
	PartySize       int    `json:"party_size"`
	CreatedAt       string `json:"created_at,omitempty"`
	User            *User  `json:"user,omitempty"`
	Table           *Table `json:"table,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhoneNo  string `json:"phone_no"`
	Role     string `json:"role"`
}
