package storage

import (
	"context"
	"strconv"

	"foodcourt/storefront-svc/internal/domain"
)

func photo(path string) string {
	return "https://images.pexels.com/photos/" + path + "?auto=compress&cs=tinysrgb&w=400"
}

// StaticCatalog serves the built-in demo food court.
type StaticCatalog struct {
	restaurants []domain.Restaurant
	cuisines    []domain.Cuisine
	tables      []domain.Table
}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		restaurants: seedRestaurants(),
		cuisines:    seedCuisines(),
		tables:      seedTables(),
	}
}

func (c *StaticCatalog) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, len(c.restaurants))
	for i, r := range c.restaurants {
		r.Dishes = append([]domain.Dish(nil), r.Dishes...)
		out[i] = r
	}
	return out, nil
}

func (c *StaticCatalog) Cuisines(ctx context.Context) ([]domain.Cuisine, error) {
	return append([]domain.Cuisine(nil), c.cuisines...), nil
}

func (c *StaticCatalog) Tables(ctx context.Context) ([]domain.Table, error) {
	return append([]domain.Table(nil), c.tables...), nil
}

func dish(id, name string, price int, description, restaurantID string, popular bool) domain.Dish {
	return domain.Dish{
		ID:           id,
		Name:         name,
		Price:        price,
		Description:  description,
		RestaurantID: restaurantID,
		IsPopular:    popular,
	}
}

func seedRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID: "1", Name: "Tamu Tamu Grills", Cuisine: "BBQ",
			Description: "Authentic grilled meats and vegetables with traditional African spices",
			Image:       photo("1640777/pexels-photo-1640777.jpeg"),
			Dishes: []domain.Dish{
				dish("1", "Grilled Chicken", 1200, "Marinated chicken with traditional spices", "1", true),
				dish("2", "Beef Kebabs", 1500, "Tender beef skewers", "1", false),
				dish("3", "Grilled Fish", 1800, "Fresh fish with herbs", "1", false),
			},
		},
		{
			ID: "2", Name: "Swahili Plates", Cuisine: "Coastal",
			Description: "Traditional Swahili dishes with coconut and spices",
			Image:       photo("1633578/pexels-photo-1633578.jpeg"),
			Dishes: []domain.Dish{
				dish("4", "Chicken Biryani", 1000, "Fragrant rice with spiced chicken", "2", true),
				dish("5", "Coconut Rice", 600, "Rice cooked in coconut milk", "2", false),
				dish("6", "Fish Curry", 1400, "Coconut fish curry", "2", false),
			},
		},
		{
			ID: "3", Name: "Burger Bros", Cuisine: "Fast Food",
			Description: "Juicy burgers and crispy fries for quick meals",
			Image:       photo("1639557/pexels-photo-1639557.jpeg"),
			Dishes: []domain.Dish{
				dish("7", "Classic Burger", 800, "Beef patty with lettuce and tomato", "3", true),
				dish("8", "Chicken Burger", 750, "Grilled chicken breast burger", "3", false),
				dish("9", "Fries", 400, "Crispy golden fries", "3", false),
			},
		},
		{
			ID: "4", Name: "Sushi Spot", Cuisine: "Japanese",
			Description: "Fresh sushi and Japanese favorites",
			Image:       photo("357756/pexels-photo-357756.jpeg"),
			Dishes: []domain.Dish{
				dish("10", "California Roll", 1200, "Avocado and crab roll", "4", true),
				dish("11", "Salmon Nigiri", 1500, "Fresh salmon over rice", "4", false),
				dish("12", "Miso Soup", 500, "Traditional soybean soup", "4", false),
			},
		},
		{
			ID: "5", Name: "Mama Njeri Kitchen", Cuisine: "Coastal",
			Description: "Traditional coastal dishes with a homely touch",
			Image:       photo("1633578/pexels-photo-1633578.jpeg"),
			Dishes: []domain.Dish{
				dish("19", "Pilau Rice", 800, "Spiced rice with meat", "5", true),
				dish("20", "Samosas", 150, "Crispy pastries with filling", "5", false),
				dish("21", "Chapati", 50, "Soft flatbread", "5", false),
			},
		},
		{
			ID: "8", Name: "Delhi Delights", Cuisine: "Indian",
			Description: "North Indian specialties and street food",
			Image:       photo("1624487/pexels-photo-1624487.jpeg"),
			Dishes: []domain.Dish{
				dish("22", "Chicken Tikka", 1400, "Grilled marinated chicken", "8", true),
				dish("23", "Paneer Curry", 1100, "Cottage cheese in spicy gravy", "8", false),
				dish("24", "Garlic Naan", 350, "Garlic flavored bread", "8", false),
			},
		},
		{
			ID: "9", Name: "Spice Garden", Cuisine: "Indian",
			Description: "Authentic Indian curries and breads",
			Image:       photo("1624487/pexels-photo-1624487.jpeg"),
			Dishes: []domain.Dish{
				dish("13", "Butter Chicken", 1300, "Creamy tomato chicken curry", "9", true),
				dish("14", "Naan Bread", 300, "Fresh baked Indian bread", "9", false),
				dish("15", "Dal Curry", 700, "Lentil curry with spices", "9", false),
			},
		},
		{
			ID: "6", Name: "Green Bowl", Cuisine: "Vegan",
			Description: "Healthy plant-based meals and smoothies",
			Image:       photo("1640770/pexels-photo-1640770.jpeg"),
			Dishes: []domain.Dish{
				dish("16", "Buddha Bowl", 900, "Mixed vegetables and quinoa", "6", true),
				dish("17", "Green Smoothie", 500, "Spinach, banana, and mango", "6", false),
				dish("18", "Veggie Wrap", 700, "Fresh vegetables in a tortilla", "6", false),
			},
		},
	}
}

func seedCuisines() []domain.Cuisine {
	return []domain.Cuisine{
		{Name: "Coastal", Image: photo("1633578/pexels-photo-1633578.jpeg")},
		{Name: "Indian", Image: photo("1624487/pexels-photo-1624487.jpeg")},
		{Name: "Chinese", Image: photo("1410235/pexels-photo-1410235.jpeg")},
		{Name: "Fast Food", Image: photo("1639557/pexels-photo-1639557.jpeg")},
		{Name: "Vegan", Image: photo("1640770/pexels-photo-1640770.jpeg")},
		{Name: "BBQ", Image: photo("1640777/pexels-photo-1640777.jpeg")},
		{Name: "Japanese", Image: photo("357756/pexels-photo-357756.jpeg")},
	}
}

// seedTables lays out twenty tables; capacities follow the floor plan and a
// fixed set starts out reserved.
func seedTables() []domain.Table {
	capacities := []int{4, 6, 4, 8, 4, 6, 4, 6, 4, 6, 8, 4, 6, 4, 8, 6, 4, 6, 4, 8}
	reserved := map[int]bool{2: true, 5: true, 8: true, 11: true, 14: true, 18: true}
	owners := []string{"1", "1", "2", "2", "3", "3", "1", "2", "1", "2", "3", "1", "2", "3", "1", "2", "3", "1", "2", "3"}

	tables := make([]domain.Table, 0, len(capacities))
	for i, capacity := range capacities {
		n := i + 1
		status := domain.TableAvailable
		if reserved[n] {
			status = domain.TableReserved
		}
		tables = append(tables, domain.Table{
			ID:       strconv.Itoa(n),
			Number:   n,
			Capacity: capacity,
			Status:   status,
			OwnerID:  owners[i],
		})
	}
	return tables
}

// SeedReviews returns the reviews shown before anyone has posted.
func SeedReviews() []domain.Review {
	return []domain.Review{
		{ID: "1", CustomerName: "John Mwangi", Outlet: "Tamu Tamu Grills", Rating: 5,
			Comment: "Amazing grilled chicken! The spices were perfect and the meat was so tender.", Date: "2024-01-15"},
		{ID: "2", CustomerName: "Sarah Ahmed", Outlet: "Swahili Plates", Rating: 4,
			Comment: "Love the coconut rice and fish curry. Authentic coastal flavors.", Date: "2024-01-14"},
		{ID: "3", CustomerName: "Mike Johnson", Outlet: "Burger Bros", Rating: 4,
			Comment: "Quick service and tasty burgers. Great for a fast lunch.", Date: "2024-01-13"},
		{ID: "4", CustomerName: "Priya Patel", Outlet: "Sushi Spot", Rating: 5,
			Comment: "Fresh sushi and excellent presentation. Will definitely come back!", Date: "2024-01-12"},
	}
}
