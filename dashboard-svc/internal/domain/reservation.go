package domain

import (
	"strings"

	"foodcourt/backend"
)

const (
	// Walk-in customers are registered on the owner's behalf with these
	// placeholder credentials.
	TempPassword     = "temppass123"
	PlaceholderPhone = "0700000000"
	FallbackUserID   = 1

	ReservationConfirmed = "confirmed"
	DefaultPartySize     = 2
)

type ReservationInput struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	TableID         int    `json:"table_id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	PartySize       int    `json:"party_size"`
}

func (in *ReservationInput) Validate() error {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	if in.CustomerName == "" || in.ReservationDate == "" || in.ReservationTime == "" {
		return Invalid("reservation", "Please fill in all required fields!")
	}
	if in.TableID <= 0 {
		return Invalid("table_id", "Please select a table")
	}
	if in.PartySize <= 0 {
		in.PartySize = DefaultPartySize
	}
	return nil
}

// FallbackTables stand in for the floor plan when the backend is unreachable.
func FallbackTables() []backend.Table {
	return []backend.Table{
		{ID: 1, TableNumber: 1, Capacity: 4, Status: "available"},
		{ID: 2, TableNumber: 2, Capacity: 6, Status: "available"},
		{ID: 3, TableNumber: 3, Capacity: 4, Status: "reserved"},
	}
}

// CheckTable reports whether id names an available table.
func CheckTable(tables []backend.Table, id int) error {
	for _, t := range tables {
		if t.ID == id {
			if t.Status != "available" {
				return ErrTableUnavailable
			}
			return nil
		}
	}
	return ErrNotFound
}

type ReservationBoard struct {
	Reservations []backend.Reservation `json:"reservations"`
	Tables       []backend.Table       `json:"tables"`
	Fallback     bool                  `json:"fallback,omitempty"`
}
