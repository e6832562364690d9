package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/sitetrack/internal/model"
)

// AddContractor inserts a new contractor. Generates a UUID if ID is
// empty.
func (s *SQLiteStore) AddContractor(ctx context.Context, c model.Contractor) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("contractor name must not be empty")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = model.ContractorActive
	}
	if c.Rating < 0 {
		c.Rating = 0
	} else if c.Rating > 5 {
		c.Rating = 5
	}

	if c.Position == 0 {
		pos, err := s.nextPosition(ctx, "contractors")
		if err != nil {
			return err
		}
		c.Position = pos
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO contractors (
			id, name, specialty, phone, email, rating, status, notes, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Specialty, c.Phone, c.Email,
		c.Rating, c.Status, c.Notes, c.Position,
	)
	if err != nil {
		return fmt.Errorf("adding contractor: %w", err)
	}
	return nil
}

// UpdateContractor merges the non-nil patch fields into a contractor.
func (s *SQLiteStore) UpdateContractor(ctx context.Context, id string, patch ContractorPatch) error {
	var columns []string
	var args []interface{}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return fmt.Errorf("contractor name must not be empty")
		}
		columns = append(columns, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Specialty != nil {
		columns = append(columns, "specialty = ?")
		args = append(args, *patch.Specialty)
	}
	if patch.Phone != nil {
		columns = append(columns, "phone = ?")
		args = append(args, *patch.Phone)
	}
	if patch.Email != nil {
		columns = append(columns, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.Rating != nil {
		rating := *patch.Rating
		if rating < 0 {
			rating = 0
		} else if rating > 5 {
			rating = 5
		}
		columns = append(columns, "rating = ?")
		args = append(args, rating)
	}
	if patch.Status != nil {
		columns = append(columns, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.Notes != nil {
		columns = append(columns, "notes = ?")
		args = append(args, *patch.Notes)
	}

	return s.applyPatch(ctx, "contractors", "contractor", id, columns, args)
}

// DeleteContractor removes a contractor by ID.
func (s *SQLiteStore) DeleteContractor(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "contractors", "contractor", id)
}

// GetContractors retrieves all contractors in the order they were added.
func (s *SQLiteStore) GetContractors(ctx context.Context) ([]model.Contractor, error) {
	var contractors []model.Contractor
	err := s.db.SelectContext(ctx, &contractors,
		"SELECT * FROM contractors ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("querying contractors: %w", err)
	}
	return contractors, nil
}
