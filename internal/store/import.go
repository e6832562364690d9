package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// execer abstracts *sqlx.DB and *sqlx.Tx for write helpers.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ImportState applies a backup payload in a single transaction. Each
// non-nil collection replaces the stored one wholesale; nil collections
// and a nil project are left untouched, so a partial backup merges into
// the current state.
func (s *SQLiteStore) ImportState(ctx context.Context, data ImportData) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	if data.Project != nil {
		if err := replaceProject(ctx, tx, *data.Project); err != nil {
			return err
		}
	}

	if data.TimelineSteps != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM timeline_steps"); err != nil {
			return fmt.Errorf("clearing timeline steps: %w", err)
		}
		for i, step := range *data.TimelineSteps {
			if step.ID == "" {
				step.ID = uuid.New().String()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO timeline_steps (
					id, label, date, status, progress, contractor, estimate, position
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				step.ID, step.Label, step.Date, step.Status, step.Progress,
				step.Contractor, step.Estimate, i+1,
			)
			if err != nil {
				return fmt.Errorf("importing timeline step %s: %w", step.ID, err)
			}
		}
	}

	if data.DailyPhotos != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM daily_photos"); err != nil {
			return fmt.Errorf("clearing photos: %w", err)
		}
		// Backups list photos newest first; higher position = newer.
		n := len(*data.DailyPhotos)
		for i, photo := range *data.DailyPhotos {
			if photo.ID == "" {
				photo.ID = uuid.New().String()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO daily_photos (
					id, url, timestamp, ai_tag, ai_color, phase, position
				) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				photo.ID, photo.URL, photo.Timestamp, photo.AITag,
				photo.AIColor, photo.Phase, n-i,
			)
			if err != nil {
				return fmt.Errorf("importing photo %s: %w", photo.ID, err)
			}
		}
	}

	if data.FinanceItems != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM finance_items"); err != nil {
			return fmt.Errorf("clearing finance items: %w", err)
		}
		n := len(*data.FinanceItems)
		for i, item := range *data.FinanceItems {
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO finance_items (
					id, date, name, vendor, quantity, unit_price, total, status, position
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				item.ID, item.Date, item.Name, item.Vendor, item.Quantity,
				item.UnitPrice, item.Total, item.Status, n-i,
			)
			if err != nil {
				return fmt.Errorf("importing finance item %s: %w", item.ID, err)
			}
		}
	}

	if data.AILogs != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM ai_logs"); err != nil {
			return fmt.Errorf("clearing ai logs: %w", err)
		}
		n := len(*data.AILogs)
		for i, entry := range *data.AILogs {
			if entry.ID == "" {
				entry.ID = uuid.New().String()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO ai_logs (id, type, time, content, position)
				VALUES (?, ?, ?, ?, ?)`,
				entry.ID, entry.Type, entry.Time, entry.Content, n-i,
			)
			if err != nil {
				return fmt.Errorf("importing ai log %s: %w", entry.ID, err)
			}
		}
	}

	if data.Contractors != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM contractors"); err != nil {
			return fmt.Errorf("clearing contractors: %w", err)
		}
		for i, c := range *data.Contractors {
			if c.ID == "" {
				c.ID = uuid.New().String()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO contractors (
					id, name, specialty, phone, email, rating, status, notes, position
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				c.ID, c.Name, c.Specialty, c.Phone, c.Email,
				c.Rating, c.Status, c.Notes, i+1,
			)
			if err != nil {
				return fmt.Errorf("importing contractor %s: %w", c.ID, err)
			}
		}
	}

	if data.Documents != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM documents"); err != nil {
			return fmt.Errorf("clearing documents: %w", err)
		}
		n := len(*data.Documents)
		for i, doc := range *data.Documents {
			if doc.ID == "" {
				doc.ID = uuid.New().String()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO documents (
					id, name, category, url, file_size, upload_date, notes, position
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				doc.ID, doc.Name, doc.Category, doc.URL,
				doc.FileSize, doc.UploadDate, doc.Notes, n-i,
			)
			if err != nil {
				return fmt.Errorf("importing document %s: %w", doc.ID, err)
			}
		}
	}

	if data.Issues != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM issues"); err != nil {
			return fmt.Errorf("clearing issues: %w", err)
		}
		n := len(*data.Issues)
		for i, issue := range *data.Issues {
			if issue.ID == "" {
				issue.ID = uuid.New().String()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO issues (
					id, title, description, location, priority, status,
					assignee, photo_url, created_date, resolved_date, position
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				issue.ID, issue.Title, issue.Description, issue.Location,
				issue.Priority, issue.Status, issue.Assignee, issue.PhotoURL,
				issue.CreatedDate, issue.ResolvedDate, n-i,
			)
			if err != nil {
				return fmt.Errorf("importing issue %s: %w", issue.ID, err)
			}
		}
	}

	return tx.Commit()
}
