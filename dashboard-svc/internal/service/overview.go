package service

import (
	"context"

	"foodcourt/backend"
	"foodcourt/dashboard-svc/internal/domain"

	"go.uber.org/zap"
)

const defaultOwnerName = "Owner"

type OverviewService struct {
	api    Backend
	logger *zap.Logger
}

func NewOverviewService(api Backend, logger *zap.Logger) *OverviewService {
	return &OverviewService{api: api, logger: logger}
}

// Overview assembles the dashboard landing page. Each source degrades on its
// own: a failed fetch leaves its section empty rather than failing the page.
func (s *OverviewService) Overview(ctx context.Context, ownerName string, outletID int) domain.Overview {
	if ownerName == "" {
		ownerName = defaultOwnerName
	}
	view := domain.Overview{
		OwnerName:     ownerName,
		Tables:        []backend.Table{},
		PopularDishes: []domain.DishCount{},
	}

	outlets, err := s.api.Outlets(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch outlets", zap.Error(err))
	}
	view.Outlet = domain.PickOutlet(outlets, outletID)

	selected := 0
	if view.Outlet != nil {
		selected = view.Outlet.ID
	}

	orders, err := s.api.Orders(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch orders", zap.Error(err))
	} else {
		view.Revenue = domain.OutletRevenue(orders, selected)
		view.PopularDishes = domain.TopDishes(orders, selected)
	}

	tables, err := s.api.Tables(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch tables", zap.Error(err))
		tables = domain.FallbackTables()
	}
	if tables != nil {
		view.Tables = tables
	}
	view.TablesOwned = len(view.Tables)
	view.TablesAvailable = domain.CountAvailable(view.Tables)
	return view
}
