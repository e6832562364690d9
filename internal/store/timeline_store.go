package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/sitetrack/internal/model"
)

// AddTimelineStep appends a new step to the end of the timeline.
// Generates a UUID if ID is empty.
func (s *SQLiteStore) AddTimelineStep(ctx context.Context, step model.TimelineStep) error {
	if strings.TrimSpace(step.Label) == "" {
		return fmt.Errorf("timeline step label must not be empty")
	}
	if step.ID == "" {
		step.ID = uuid.New().String()
	}
	if step.Status == "" {
		step.Status = model.StepPending
	}
	if step.Progress < 0 {
		step.Progress = 0
	} else if step.Progress > 100 {
		step.Progress = 100
	}

	if step.Position == 0 {
		pos, err := s.nextPosition(ctx, "timeline_steps")
		if err != nil {
			return err
		}
		step.Position = pos
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO timeline_steps (
			id, label, date, status, progress, contractor, estimate, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		step.ID, step.Label, step.Date, step.Status, step.Progress,
		step.Contractor, step.Estimate, step.Position,
	)
	if err != nil {
		return fmt.Errorf("adding timeline step: %w", err)
	}
	return nil
}

// UpdateTimelineStep merges the non-nil patch fields into a step.
func (s *SQLiteStore) UpdateTimelineStep(ctx context.Context, id string, patch StepPatch) error {
	var columns []string
	var args []interface{}

	if patch.Label != nil {
		if strings.TrimSpace(*patch.Label) == "" {
			return fmt.Errorf("timeline step label must not be empty")
		}
		columns = append(columns, "label = ?")
		args = append(args, *patch.Label)
	}
	if patch.Date != nil {
		columns = append(columns, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.Status != nil {
		columns = append(columns, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.Progress != nil {
		progress := *patch.Progress
		if progress < 0 {
			progress = 0
		} else if progress > 100 {
			progress = 100
		}
		columns = append(columns, "progress = ?")
		args = append(args, progress)
	}
	if patch.Contractor != nil {
		columns = append(columns, "contractor = ?")
		args = append(args, *patch.Contractor)
	}
	if patch.Estimate != nil {
		columns = append(columns, "estimate = ?")
		args = append(args, *patch.Estimate)
	}

	return s.applyPatch(ctx, "timeline_steps", "timeline step", id, columns, args)
}

// DeleteTimelineStep removes a step by ID.
func (s *SQLiteStore) DeleteTimelineStep(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "timeline_steps", "timeline step", id)
}

// GetTimelineSteps retrieves all steps in schedule order.
func (s *SQLiteStore) GetTimelineSteps(ctx context.Context) ([]model.TimelineStep, error) {
	var steps []model.TimelineStep
	err := s.db.SelectContext(ctx, &steps,
		"SELECT * FROM timeline_steps ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("querying timeline steps: %w", err)
	}
	return steps, nil
}
