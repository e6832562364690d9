package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/sitetrack/internal/model"
)

// AddFinanceItem inserts a new invoice/expense record.
// Generates a UUID if ID is empty.
func (s *SQLiteStore) AddFinanceItem(ctx context.Context, item model.FinanceItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("finance item name must not be empty")
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Status == "" {
		item.Status = model.FinancePending
	}

	if item.Position == 0 {
		pos, err := s.nextPosition(ctx, "finance_items")
		if err != nil {
			return err
		}
		item.Position = pos
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO finance_items (
			id, date, name, vendor, quantity, unit_price, total, status, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Date, item.Name, item.Vendor, item.Quantity,
		item.UnitPrice, item.Total, item.Status, item.Position,
	)
	if err != nil {
		return fmt.Errorf("adding finance item: %w", err)
	}
	return nil
}

// UpdateFinanceItem merges the non-nil patch fields into a finance item.
func (s *SQLiteStore) UpdateFinanceItem(ctx context.Context, id string, patch FinancePatch) error {
	var columns []string
	var args []interface{}

	if patch.Date != nil {
		columns = append(columns, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return fmt.Errorf("finance item name must not be empty")
		}
		columns = append(columns, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Vendor != nil {
		columns = append(columns, "vendor = ?")
		args = append(args, *patch.Vendor)
	}
	if patch.Quantity != nil {
		columns = append(columns, "quantity = ?")
		args = append(args, *patch.Quantity)
	}
	if patch.UnitPrice != nil {
		columns = append(columns, "unit_price = ?")
		args = append(args, *patch.UnitPrice)
	}
	if patch.Total != nil {
		columns = append(columns, "total = ?")
		args = append(args, *patch.Total)
	}
	if patch.Status != nil {
		columns = append(columns, "status = ?")
		args = append(args, *patch.Status)
	}

	return s.applyPatch(ctx, "finance_items", "finance item", id, columns, args)
}

// DeleteFinanceItem removes a finance item by ID.
func (s *SQLiteStore) DeleteFinanceItem(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "finance_items", "finance item", id)
}

// GetFinanceItems retrieves all finance items, newest first.
func (s *SQLiteStore) GetFinanceItems(ctx context.Context) ([]model.FinanceItem, error) {
	var items []model.FinanceItem
	err := s.db.SelectContext(ctx, &items,
		"SELECT * FROM finance_items ORDER BY position DESC")
	if err != nil {
		return nil, fmt.Errorf("querying finance items: %w", err)
	}
	return items, nil
}
