package domain

import (
	"sort"

	"foodcourt/backend"
)

const popularLimit = 3

type DishCount struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// Overview is the landing view of the owner dashboard for one outlet.
type Overview struct {
	OwnerName       string          `json:"owner_name"`
	Outlet          *backend.Outlet `json:"outlet,omitempty"`
	Revenue         float64         `json:"revenue"`
	TablesOwned     int             `json:"tables_owned"`
	TablesAvailable int             `json:"tables_available"`
	Tables          []backend.Table `json:"tables"`
	PopularDishes   []DishCount     `json:"popular_dishes"`
}

// PickOutlet returns the outlet with id, or the first outlet when id is 0
// or unknown.
func PickOutlet(outlets []backend.Outlet, id int) *backend.Outlet {
	if len(outlets) == 0 {
		return nil
	}
	for i := range outlets {
		if outlets[i].ID == id {
			return &outlets[i]
		}
	}
	return &outlets[0]
}

// OutletRevenue sums line subtotals for dishes of outletID. With no outlet
// selected (0) it falls back to order totals.
func OutletRevenue(orders []backend.Order, outletID int) float64 {
	var revenue float64
	for _, o := range orders {
		if outletID == 0 {
			revenue += o.TotalPrice
			continue
		}
		for _, item := range o.OrderItems {
			if item.MenuItem != nil && item.MenuItem.OutletID == outletID {
				revenue += item.Subtotal
			}
		}
	}
	return revenue
}

// TopDishes ranks an outlet's dishes by quantity ordered, highest first.
func TopDishes(orders []backend.Order, outletID int) []DishCount {
	byName := map[string]*DishCount{}
	for _, o := range orders {
		for _, item := range o.OrderItems {
			mi := item.MenuItem
			if mi == nil || mi.Name == "" || (outletID != 0 && mi.OutletID != outletID) {
				continue
			}
			dc, ok := byName[mi.Name]
			if !ok {
				dc = &DishCount{Name: mi.Name, Price: mi.Price}
				byName[mi.Name] = dc
			}
			dc.Quantity += item.Quantity
		}
	}

	top := make([]DishCount, 0, len(byName))
	for _, dc := range byName {
		top = append(top, *dc)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > popularLimit {
		top = top[:popularLimit]
	}
	return top
}

func CountAvailable(tables []backend.Table) int {
	n := 0
	for _, t := range tables {
		if t.Status == "available" {
			n++
		}
	}
	return n
}
