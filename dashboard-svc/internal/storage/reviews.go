package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ReviewFeed reads published customer reviews from the storefront.
type ReviewFeed struct {
	BaseURL string
	Client  HTTPClient
}

func NewReviewFeed(baseURL string, client HTTPClient) *ReviewFeed {
	return &ReviewFeed{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

func (f *ReviewFeed) Ratings(ctx context.Context) ([]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"/api/reviews", nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reviews: unexpected status %d", resp.StatusCode)
	}

	var reviews []struct {
		Rating int `json:"rating"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	ratings := make([]int, 0, len(reviews))
	for _, r := range reviews {
		ratings = append(ratings, r.Rating)
	}
	return ratings, nil
}
