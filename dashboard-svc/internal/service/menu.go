package service

import (
	"context"
	"io"

	"foodcourt/backend"
	"foodcourt/dashboard-svc/internal/domain"
	"foodcourt/dashboard-svc/internal/storage"

	"go.uber.org/zap"
)

type MenuService struct {
	api    Backend
	logger *zap.Logger
}

func NewMenuService(api Backend, logger *zap.Logger) *MenuService {
	return &MenuService{api: api, logger: logger}
}

func (s *MenuService) Menu(ctx context.Context) domain.MenuView {
	view := domain.MenuView{Items: []backend.MenuItem{}, Outlets: []backend.Outlet{}}

	items, err := s.api.MenuItems(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch menu items", zap.Error(err))
		return view
	}
	outlets, err := s.api.Outlets(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch outlets", zap.Error(err))
		return view
	}

	if items != nil {
		view.Items = items
	}
	if outlets != nil {
		view.Outlets = outlets
	}
	return view
}

func (s *MenuService) Add(ctx context.Context, in domain.MenuItemInput) (*backend.MenuItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	item := toMenuItem(in)
	created, err := s.api.CreateMenuItem(ctx, item)
	if err != nil {
		return nil, backendError("menu item", err)
	}
	if created == nil {
		created = &item
	}
	s.logger.Info("menu item added", zap.Int("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *MenuService) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := s.api.DeleteMenuItem(ctx, id); err != nil {
		return backendError("menu item", err)
	}
	return nil
}

// Import creates one menu item per valid spreadsheet row. Rows the backend
// rejects are reported alongside the rows that failed to parse.
func (s *MenuService) Import(ctx context.Context, r io.Reader) (*domain.ImportReport, error) {
	rows, skipped, err := storage.ParseMenuSheet(r)
	if err != nil {
		return nil, domain.Invalid("file", err.Error())
	}

	report := &domain.ImportReport{Skipped: skipped}
	for _, row := range rows {
		if _, err := s.api.CreateMenuItem(ctx, toMenuItem(row.Item)); err != nil {
			s.logger.Warn("menu import row rejected", zap.Int("row", row.Row), zap.Error(err))
			report.Skipped = append(report.Skipped, domain.RowError{Row: row.Row, Reason: "rejected by backend"})
			continue
		}
		report.Imported++
	}
	if report.Skipped == nil {
		report.Skipped = []domain.RowError{}
	}

	s.logger.Info("menu import finished",
		zap.Int("imported", report.Imported),
		zap.Int("skipped", len(report.Skipped)))
	return report, nil
}

func toMenuItem(in domain.MenuItemInput) backend.MenuItem {
	return backend.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		OutletID:    in.OutletID,
	}
}
