package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/sitetrack/internal/model"
)

// AddIssue inserts a new site issue. Generates a UUID if ID is empty
// and stamps the creation date when missing.
func (s *SQLiteStore) AddIssue(ctx context.Context, issue model.Issue) error {
	if strings.TrimSpace(issue.Title) == "" {
		return fmt.Errorf("issue title must not be empty")
	}
	if issue.ID == "" {
		issue.ID = uuid.New().String()
	}
	if issue.Priority == "" {
		issue.Priority = model.IssuePriorityMedium
	}
	if issue.Status == "" {
		issue.Status = model.IssueOpen
	}
	if issue.CreatedDate == "" {
		issue.CreatedDate = time.Now().Format("02/01/2006")
	}

	if issue.Position == 0 {
		pos, err := s.nextPosition(ctx, "issues")
		if err != nil {
			return err
		}
		issue.Position = pos
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO issues (
			id, title, description, location, priority, status,
			assignee, photo_url, created_date, resolved_date, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		issue.ID, issue.Title, issue.Description, issue.Location,
		issue.Priority, issue.Status, issue.Assignee, issue.PhotoURL,
		issue.CreatedDate, issue.ResolvedDate, issue.Position,
	)
	if err != nil {
		return fmt.Errorf("adding issue: %w", err)
	}
	return nil
}

// UpdateIssue merges the non-nil patch fields into an issue. Moving an
// issue to resolved stamps the resolution date unless one is supplied.
func (s *SQLiteStore) UpdateIssue(ctx context.Context, id string, patch IssuePatch) error {
	var columns []string
	var args []interface{}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return fmt.Errorf("issue title must not be empty")
		}
		columns = append(columns, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		columns = append(columns, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Location != nil {
		columns = append(columns, "location = ?")
		args = append(args, *patch.Location)
	}
	if patch.Priority != nil {
		columns = append(columns, "priority = ?")
		args = append(args, *patch.Priority)
	}
	if patch.Status != nil {
		columns = append(columns, "status = ?")
		args = append(args, *patch.Status)
		if *patch.Status == model.IssueResolved && patch.ResolvedDate == nil {
			columns = append(columns, "resolved_date = ?")
			args = append(args, time.Now().Format("02/01/2006"))
		}
	}
	if patch.Assignee != nil {
		columns = append(columns, "assignee = ?")
		args = append(args, *patch.Assignee)
	}
	if patch.PhotoURL != nil {
		columns = append(columns, "photo_url = ?")
		args = append(args, *patch.PhotoURL)
	}
	if patch.ResolvedDate != nil {
		columns = append(columns, "resolved_date = ?")
		args = append(args, *patch.ResolvedDate)
	}

	return s.applyPatch(ctx, "issues", "issue", id, columns, args)
}

// DeleteIssue removes an issue by ID.
func (s *SQLiteStore) DeleteIssue(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "issues", "issue", id)
}

// GetIssues retrieves all issues, newest first.
func (s *SQLiteStore) GetIssues(ctx context.Context) ([]model.Issue, error) {
	var issues []model.Issue
	err := s.db.SelectContext(ctx, &issues,
		"SELECT * FROM issues ORDER BY position DESC")
	if err != nil {
		return nil, fmt.Errorf("querying issues: %w", err)
	}
	return issues, nil
}
