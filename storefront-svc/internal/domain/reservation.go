package domain

import "strings"

const (
	ReservationConfirmed = "confirmed"
	ReservationPending   = "pending"
	ReservationCancelled = "cancelled"
)

const MissingReservationFields = "Please fill in all required fields!"

type Reservation struct {
	ID           string `json:"id"`
	TableID      string `json:"table_id"`
	TableNumber  int    `json:"table_number"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"party_size"`
	Status       string `json:"status"`
}

type ReservationRequest struct {
	TableID      string `json:"table_id"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"party_size"`
}

func (r ReservationRequest) Validate() error {
	fields := []struct{ name, value string }{
		{"table_id", r.TableID},
		{"customer_name", r.CustomerName},
		{"date", r.Date},
		{"time", r.Time},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return Invalid(f.name, MissingReservationFields)
		}
	}
	return nil
}

// ReservationBook is one session's reservations and the tables it holds.
type ReservationBook struct {
	Reservations []Reservation
	held         map[string]bool
}

func NewReservationBook() *ReservationBook {
	return &ReservationBook{held: make(map[string]bool)}
}

func (b *ReservationBook) Selectable(t Table) bool {
	return t.Status == TableAvailable && !b.held[t.ID]
}

func (b *ReservationBook) Reserve(tables []Table, req ReservationRequest, id string) (Reservation, error) {
	if err := req.Validate(); err != nil {
		return Reservation{}, err
	}

	var table *Table
	for i := range tables {
		if tables[i].ID == req.TableID {
			table = &tables[i]
			break
		}
	}
	if table == nil {
		return Reservation{}, ErrTableNotFound
	}
	if !b.Selectable(*table) {
		return Reservation{}, ErrTableUnavailable
	}

	party := req.PartySize
	if party < 1 {
		party = 1
	}

	res := Reservation{
		ID:           id,
		TableID:      table.ID,
		TableNumber:  table.Number,
		CustomerName: strings.TrimSpace(req.CustomerName),
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    party,
		Status:       ReservationConfirmed,
	}
	b.Reservations = append(b.Reservations, res)
	b.held[table.ID] = true
	return res, nil
}

// Cancel marks a reservation cancelled and releases its table. Cancelling an
// already cancelled reservation changes nothing.
func (b *ReservationBook) Cancel(id string) (Reservation, error) {
	for i := range b.Reservations {
		if b.Reservations[i].ID != id {
			continue
		}
		if b.Reservations[i].Status != ReservationCancelled {
			b.Reservations[i].Status = ReservationCancelled
			delete(b.held, b.Reservations[i].TableID)
		}
		return b.Reservations[i], nil
	}
	return Reservation{}, ErrReservationNotFound
}

func (b *ReservationBook) View(tables []Table) []TableView {
	out := make([]TableView, 0, len(tables))
	for _, t := range tables {
		out = append(out, TableView{Table: t, Selectable: b.Selectable(t)})
	}
	return out
}

func (b *ReservationBook) Available(tables []Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		if b.Selectable(t) {
			out = append(out, t)
		}
	}
	return out
}

func (b *ReservationBook) ActiveCount() int {
	n := 0
	for _, r := range b.Reservations {
		if r.Status != ReservationCancelled {
			n++
		}
	}
	return n
}
