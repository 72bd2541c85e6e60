package storage

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"foodcourt/dashboard-svc/internal/domain"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("spreadsheet must have at least one row of data")

// MenuRow is one parsed spreadsheet line; Row is 1-based as shown in Excel.
type MenuRow struct {
	Row  int
	Item domain.MenuItemInput
}

// ParseMenuSheet reads the first sheet of an .xlsx upload. The first row is
// a header. Columns: outlet id, name, price, category, description.
// Rows that cannot be parsed are returned as skipped rather than failing
// the whole import.
func ParseMenuSheet(r io.Reader) ([]MenuRow, []domain.RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, ErrEmptySheet
	}

	var (
		parsed  []MenuRow
		skipped []domain.RowError
	)
	for i, row := range rows[1:] {
		line := i + 2
		if blank(row) {
			continue
		}
		if len(row) < 3 {
			skipped = append(skipped, domain.RowError{Row: line, Reason: "incomplete row"})
			continue
		}

		outletID, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil || outletID <= 0 {
			skipped = append(skipped, domain.RowError{Row: line, Reason: "invalid outlet id"})
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			skipped = append(skipped, domain.RowError{Row: line, Reason: "invalid price"})
			continue
		}

		item := domain.MenuItemInput{
			OutletID: outletID,
			Name:     row[1],
			Price:    int(math.Round(price)),
			Category: cell(row, 3),
		}
		item.Description = cell(row, 4)
		if err := item.Validate(); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				skipped = append(skipped, domain.RowError{Row: line, Reason: verr.Message})
				continue
			}
			return nil, nil, err
		}
		parsed = append(parsed, MenuRow{Row: line, Item: item})
	}
	return parsed, skipped, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
