package storage

import (
	"context"
	"strconv"

	"foodcourt/backend"
	"foodcourt/storefront-svc/internal/domain"
)

type CatalogClient interface {
	Outlets(ctx context.Context) ([]backend.Outlet, error)
	Cuisines(ctx context.Context) ([]backend.Cuisine, error)
	Tables(ctx context.Context) ([]backend.Table, error)
}

// BackendCatalog reads outlets, cuisines and tables from the REST backend.
type BackendCatalog struct {
	client CatalogClient
}

func NewBackendCatalog(client CatalogClient) *BackendCatalog {
	return &BackendCatalog{client: client}
}

func (c *BackendCatalog) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	outlets, err := c.client.Outlets(ctx)
	if err != nil {
		return nil, err
	}

	restaurants := make([]domain.Restaurant, 0, len(outlets))
	for _, o := range outlets {
		id := strconv.Itoa(o.ID)
		rest := domain.Restaurant{
			ID:          id,
			Name:        o.Name,
			Description: o.Description,
			Image:       o.ImageURL,
			Contact:     o.Contact,
			Dishes:      make([]domain.Dish, 0, len(o.MenuItems)),
		}
		if o.Cuisine != nil {
			rest.Cuisine = o.Cuisine.Name
		}
		// Backend menu items carry no popularity flag.
		for _, item := range o.MenuItems {
			rest.Dishes = append(rest.Dishes, domain.Dish{
				ID:           strconv.Itoa(item.ID),
				Name:         item.Name,
				Price:        item.Price,
				Description:  item.Description,
				Category:     item.Category,
				RestaurantID: id,
			})
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, nil
}

func (c *BackendCatalog) Cuisines(ctx context.Context) ([]domain.Cuisine, error) {
	cuisines, err := c.client.Cuisines(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Cuisine, 0, len(cuisines))
	for _, cu := range cuisines {
		out = append(out, domain.Cuisine{Name: cu.Name})
	}
	return out, nil
}

func (c *BackendCatalog) Tables(ctx context.Context) ([]domain.Table, error) {
	tables, err := c.client.Tables(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Table, 0, len(tables))
	for _, t := range tables {
		status := t.Status
		if status == "" {
			status = domain.TableAvailable
		}
		out = append(out, domain.Table{
			ID:       strconv.Itoa(t.ID),
			Number:   t.TableNumber,
			Capacity: t.Capacity,
			Status:   status,
		})
	}
	return out, nil
}
