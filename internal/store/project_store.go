package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhle/sitetrack/internal/model"
)

// GetProject reads the singleton project metadata row.
func (s *SQLiteStore) GetProject(ctx context.Context) (model.ProjectInfo, error) {
	var p model.ProjectInfo
	err := s.db.GetContext(ctx, &p,
		"SELECT name, location, owner, budget, start_date FROM project WHERE id = 1")
	if err != nil {
		return model.ProjectInfo{}, fmt.Errorf("reading project metadata: %w", err)
	}
	return p, nil
}

// UpdateProject merges the non-nil patch fields into the project row.
// The row always exists; it is seeded by the initial migration.
func (s *SQLiteStore) UpdateProject(ctx context.Context, patch ProjectPatch) error {
	var columns []string
	var args []interface{}

	if patch.Name != nil {
		columns = append(columns, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Location != nil {
		columns = append(columns, "location = ?")
		args = append(args, *patch.Location)
	}
	if patch.Owner != nil {
		columns = append(columns, "owner = ?")
		args = append(args, *patch.Owner)
	}
	if patch.Budget != nil {
		if *patch.Budget < 0 {
			return fmt.Errorf("project budget must not be negative")
		}
		columns = append(columns, "budget = ?")
		args = append(args, *patch.Budget)
	}
	if patch.StartDate != nil {
		columns = append(columns, "start_date = ?")
		args = append(args, *patch.StartDate)
	}

	if len(columns) == 0 {
		return nil
	}

	query := "UPDATE project SET " + strings.Join(columns, ", ") + " WHERE id = 1"
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating project metadata: %w", err)
	}
	return nil
}

// replaceProject overwrites the whole project row, used by imports.
func replaceProject(ctx context.Context, exec execer, p model.ProjectInfo) error {
	_, err := exec.ExecContext(ctx, `
		UPDATE project SET name = ?, location = ?, owner = ?, budget = ?, start_date = ?
		WHERE id = 1`,
		p.Name, p.Location, p.Owner, p.Budget, p.StartDate,
	)
	if err != nil {
		return fmt.Errorf("replacing project metadata: %w", err)
	}
	return nil
}
