package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/sitetrack/internal/model"
)

// AddAILog appends an entry to the AI journal. Generates a UUID if ID
// is empty and stamps the time when missing.
func (s *SQLiteStore) AddAILog(ctx context.Context, entry model.AILog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Type == "" {
		entry.Type = model.AILogChat
	}
	if entry.Time == "" {
		entry.Time = time.Now().Format("02/01/2006 15:04")
	}

	if entry.Position == 0 {
		pos, err := s.nextPosition(ctx, "ai_logs")
		if err != nil {
			return err
		}
		entry.Position = pos
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO ai_logs (id, type, time, content, position)
		VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Type, entry.Time, entry.Content, entry.Position,
	)
	if err != nil {
		return fmt.Errorf("adding ai log: %w", err)
	}
	return nil
}

// GetAILogs retrieves the AI journal, newest first.
func (s *SQLiteStore) GetAILogs(ctx context.Context) ([]model.AILog, error) {
	var logs []model.AILog
	err := s.db.SelectContext(ctx, &logs,
		"SELECT * FROM ai_logs ORDER BY position DESC")
	if err != nil {
		return nil, fmt.Errorf("querying ai logs: %w", err)
	}
	return logs, nil
}

// ClearAILogs deletes the whole AI journal.
func (s *SQLiteStore) ClearAILogs(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM ai_logs"); err != nil {
		return fmt.Errorf("clearing ai logs: %w", err)
	}
	return nil
}
