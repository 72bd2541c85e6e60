package domain

import (
	"strings"

	"foodcourt/backend"
)

type MenuItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	OutletID    int    `json:"outlet_id"`
}

func (in *MenuItemInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return Invalid("name", "Item name is required")
	}
	if in.Price <= 0 {
		return Invalid("price", "Price must be greater than zero")
	}
	return nil
}

type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportReport struct {
	Imported int        `json:"imported"`
	Skipped  []RowError `json:"skipped"`
}

type MenuView struct {
	Items   []backend.MenuItem `json:"items"`
	Outlets []backend.Outlet   `json:"outlets"`
}
