package service

import (
	"context"
	"strings"

	"foodcourt/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

type CatalogService struct {
	source Catalog
	logger *zap.Logger
}

func NewCatalogService(source Catalog, logger *zap.Logger) *CatalogService {
	return &CatalogService{source: source, logger: logger}
}

func (s *CatalogService) all(ctx context.Context) []domain.Restaurant {
	restaurants, err := s.source.Restaurants(ctx)
	if err != nil {
		s.logger.Warn("failed to load restaurants", zap.Error(err))
		return []domain.Restaurant{}
	}
	return restaurants
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// Restaurants filters by exact cuisine name, then by a case-insensitive query
// over name, cuisine and description. Empty arguments match everything.
func (s *CatalogService) Restaurants(ctx context.Context, cuisine, query string) []domain.Restaurant {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Restaurant, 0)
	for _, r := range s.all(ctx) {
		if cuisine != "" && r.Cuisine != cuisine {
			continue
		}
		if query != "" &&
			!containsFold(r.Name, query) &&
			!containsFold(r.Cuisine, query) &&
			!containsFold(r.Description, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *CatalogService) Restaurant(ctx context.Context, id, dishQuery string) (*domain.Restaurant, error) {
	dishQuery = strings.ToLower(strings.TrimSpace(dishQuery))

	for _, r := range s.all(ctx) {
		if r.ID != id {
			continue
		}
		if dishQuery != "" {
			dishes := make([]domain.Dish, 0, len(r.Dishes))
			for _, d := range r.Dishes {
				if containsFold(d.Name, dishQuery) || containsFold(d.Description, dishQuery) {
					dishes = append(dishes, d)
				}
			}
			r.Dishes = dishes
		}
		return &r, nil
	}
	return nil, domain.ErrNotFound
}

func (s *CatalogService) Cuisines(ctx context.Context) []domain.Cuisine {
	cuisines, err := s.source.Cuisines(ctx)
	if err != nil {
		s.logger.Warn("failed to load cuisines", zap.Error(err))
		return []domain.Cuisine{}
	}
	return cuisines
}

func (s *CatalogService) PopularDishes(ctx context.Context) []domain.PopularDish {
	out := make([]domain.PopularDish, 0)
	for _, r := range s.all(ctx) {
		for _, d := range r.Dishes {
			if d.IsPopular {
				out = append(out, domain.PopularDish{ID: d.ID, Name: d.Name, Outlet: r.Name, Price: d.Price})
			}
		}
	}
	return out
}

// Dish finds a dish anywhere in the catalog and returns it with the name of
// the restaurant that lists it.
func (s *CatalogService) Dish(ctx context.Context, id string) (*domain.Dish, string, error) {
	for _, r := range s.all(ctx) {
		for _, d := range r.Dishes {
			if d.ID == id {
				return &d, r.Name, nil
			}
		}
	}
	return nil, "", domain.ErrDishNotFound
}

func (s *CatalogService) Tables(ctx context.Context) []domain.Table {
	tables, err := s.source.Tables(ctx)
	if err != nil {
		s.logger.Warn("failed to load tables", zap.Error(err))
		return []domain.Table{}
	}
	return tables
}
