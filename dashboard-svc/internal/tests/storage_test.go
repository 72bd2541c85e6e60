package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodcourt/dashboard-svc/internal/domain"
	"foodcourt/dashboard-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// menuSheet builds an .xlsx upload with a header row followed by rows.
func menuSheet(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"outlet_id", "name", "price", "category", "description"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		if row == nil {
			continue
		}
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", i+2), &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseMenuSheet(t *testing.T) {
	buf := menuSheet(t,
		[]interface{}{1, "Pilau", 450, "Mains", "Spiced rice"},
		[]interface{}{"x", "Bad Outlet", 100},
		[]interface{}{2, "Soda", "free"},
		[]interface{}{2, "", 100, "Drinks"},
		nil,
		[]interface{}{3, "Chai"},
		[]interface{}{3, "Masala Chai", 80},
	)

	rows, skipped, err := storage.ParseMenuSheet(buf)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Row)
	assert.Equal(t, domain.MenuItemInput{OutletID: 1, Name: "Pilau", Price: 450, Category: "Mains", Description: "Spiced rice"}, rows[0].Item)
	assert.Equal(t, 8, rows[1].Row)
	assert.Equal(t, "Masala Chai", rows[1].Item.Name)
	assert.Equal(t, 80, rows[1].Item.Price)

	assert.Equal(t, []domain.RowError{
		{Row: 3, Reason: "invalid outlet id"},
		{Row: 4, Reason: "invalid price"},
		{Row: 5, Reason: "Item name is required"},
		{Row: 7, Reason: "incomplete row"},
	}, skipped)
}

func TestParseMenuSheet_Errors(t *testing.T) {
	_, _, err := storage.ParseMenuSheet(strings.NewReader("not a spreadsheet"))
	assert.Error(t, err)

	_, _, err = storage.ParseMenuSheet(menuSheet(t))
	assert.ErrorIs(t, err, storage.ErrEmptySheet)
}

func TestRedisCounters_Live(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	ctx := context.Background()

	client.HSet(ctx, "analytics:orders:daily:2026-10-15", "placed", 3, "revenue", "4250.5")
	client.HSet(ctx, "analytics:status:2026-10-15", "pending", 3, "ready", 1)

	live, err := storage.NewRedisCounters(client).Live(ctx, "2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", live.Date)
	assert.Equal(t, int64(3), live.Placed)
	assert.Equal(t, 4250.5, live.Revenue)
	assert.Equal(t, map[string]int{"pending": 3, "ready": 1}, live.ByStatus)

	empty, err := storage.NewRedisCounters(client).Live(ctx, "2026-10-14")
	require.NoError(t, err)
	assert.Zero(t, empty.Placed)
	assert.Empty(t, empty.ByStatus)
}

func TestRedisCounters_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	_, err := storage.NewRedisCounters(client).Live(context.Background(), "2026-10-15")
	assert.Error(t, err)
}

func TestReviewFeed_Ratings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reviews", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "1", "rating": 5, "comment": "Great"},
			{"id": "2", "rating": 4, "comment": "Good"},
		})
	}))
	defer srv.Close()

	ratings, err := storage.NewReviewFeed(srv.URL+"/", srv.Client()).Ratings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4}, ratings)
}

func TestReviewFeed_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := storage.NewReviewFeed(srv.URL, srv.Client()).Ratings(context.Background())
	assert.Error(t, err)
}
