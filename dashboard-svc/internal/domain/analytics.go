package domain

import (
	"math"
	"sort"
	"strings"

	"foodcourt/backend"
)

const (
	NoOrdersYet = "No orders yet"
	unknownDish = "Unknown Dish"
)

type Analytics struct {
	TotalReservations int           `json:"total_reservations"`
	TodayOrders       int           `json:"today_orders"`
	PopularDish       string        `json:"popular_dish"`
	Revenue           float64       `json:"revenue"`
	AverageRating     float64       `json:"average_rating"`
	CompletionRate    int           `json:"completion_rate"`
	MenuItems         int           `json:"menu_items"`
	Live              *LiveCounters `json:"live,omitempty"`
	Demo              bool          `json:"demo,omitempty"`
}

// LiveCounters are maintained by the events service from the order stream.
type LiveCounters struct {
	Date     string         `json:"date"`
	Placed   int64          `json:"placed"`
	Revenue  float64        `json:"revenue"`
	ByStatus map[string]int `json:"by_status"`
}

// DemoAnalytics is what the dashboard shows when the backend cannot be reached.
func DemoAnalytics() Analytics {
	return Analytics{
		TotalReservations: 15,
		TodayOrders:       8,
		PopularDish:       "Grilled Chicken",
		Revenue:           25000,
		AverageRating:     4.2,
		CompletionRate:    85,
		Demo:              true,
	}
}

// ComputeAnalytics derives dashboard figures. today is a YYYY-MM-DD prefix
// matched against each order's created_at.
func ComputeAnalytics(orders []backend.Order, reservations []backend.Reservation, menuItems int, today string, rating float64) Analytics {
	a := Analytics{
		TotalReservations: len(reservations),
		PopularDish:       MostOrderedDish(orders),
		AverageRating:     rating,
		MenuItems:         menuItems,
	}

	delivered := 0
	for _, o := range orders {
		if strings.HasPrefix(o.CreatedAt, today) {
			a.TodayOrders++
		}
		a.Revenue += o.TotalPrice
		if OrderStatus(o.Status) == StatusDelivered {
			delivered++
		}
	}
	if len(orders) > 0 {
		a.CompletionRate = int(math.Round(float64(delivered) / float64(len(orders)) * 100))
	}
	return a
}

// MostOrderedDish sums item quantities by dish name. Ties go to the
// alphabetically first name so the result is stable.
func MostOrderedDish(orders []backend.Order) string {
	counts := map[string]int{}
	for _, o := range orders {
		for _, item := range o.OrderItems {
			name := unknownDish
			if item.MenuItem != nil && item.MenuItem.Name != "" {
				name = item.MenuItem.Name
			}
			counts[name] += item.Quantity
		}
	}
	if len(counts) == 0 {
		return NoOrdersYet
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	best := names[0]
	for _, name := range names[1:] {
		if counts[name] > counts[best] {
			best = name
		}
	}
	return best
}

// AverageRating of the given ratings, rounded to one decimal.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}
