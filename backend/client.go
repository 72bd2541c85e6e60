package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

var ErrNotFound = errors.New("backend: resource not found")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for any non-2xx answer other than 404.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (c *Client) Outlets(ctx context.Context) ([]Outlet, error) {
	var outlets []Outlet
	err := c.do(ctx, http.MethodGet, "/outlets", nil, &outlets)
	return outlets, err
}

func (c *Client) Cuisines(ctx context.Context) ([]Cuisine, error) {
	var cuisines []Cuisine
	err := c.do(ctx, http.MethodGet, "/cuisines", nil, &cuisines)
	return cuisines, err
}

func (c *Client) Tables(ctx context.Context) ([]Table, error) {
	var tables []Table
	err := c.do(ctx, http.MethodGet, "/tables", nil, &tables)
	return tables, err
}

func (c *Client) MenuItems(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	err := c.do(ctx, http.MethodGet, "/menu-items", nil, &items)
	return items, err
}

func (c *Client) CreateMenuItem(ctx context.Context, item MenuItem) (*MenuItem, error) {
	var created MenuItem
	if err := c.do(ctx, http.MethodPost, "/menu-items", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/menu-items/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := c.do(ctx, http.MethodGet, "/orders", nil, &orders)
	return orders, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, "/orders/"+strconv.Itoa(id), body, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) Reservations(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation
	err := c.do(ctx, http.MethodGet, "/reservations", nil, &reservations)
	return reservations, err
}

func (c *Client) CreateReservation(ctx context.Context, r Reservation) (*Reservation, error) {
	var created Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", r, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteReservation(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/reservations/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// readMessage pulls a "message" or "error" field out of an error body, falling
// back to the raw text.
func readMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
