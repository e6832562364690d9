package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/sitetrack/internal/model"
)

// AddPhoto inserts a new daily photo record. Generates a UUID if ID is
// empty.
func (s *SQLiteStore) AddPhoto(ctx context.Context, photo model.DailyPhoto) error {
	if strings.TrimSpace(photo.URL) == "" {
		return fmt.Errorf("photo url must not be empty")
	}
	if photo.ID == "" {
		photo.ID = uuid.New().String()
	}

	if photo.Position == 0 {
		pos, err := s.nextPosition(ctx, "daily_photos")
		if err != nil {
			return err
		}
		photo.Position = pos
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO daily_photos (
			id, url, timestamp, ai_tag, ai_color, phase, position
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		photo.ID, photo.URL, photo.Timestamp, photo.AITag,
		photo.AIColor, photo.Phase, photo.Position,
	)
	if err != nil {
		return fmt.Errorf("adding photo: %w", err)
	}
	return nil
}

// UpdatePhoto merges the non-nil patch fields into a photo, typically
// the AI tag written back after an image analysis.
func (s *SQLiteStore) UpdatePhoto(ctx context.Context, id string, patch PhotoPatch) error {
	var columns []string
	var args []interface{}

	if patch.URL != nil {
		columns = append(columns, "url = ?")
		args = append(args, *patch.URL)
	}
	if patch.AITag != nil {
		columns = append(columns, "ai_tag = ?")
		args = append(args, *patch.AITag)
	}
	if patch.AIColor != nil {
		columns = append(columns, "ai_color = ?")
		args = append(args, *patch.AIColor)
	}
	if patch.Phase != nil {
		columns = append(columns, "phase = ?")
		args = append(args, *patch.Phase)
	}

	return s.applyPatch(ctx, "daily_photos", "photo", id, columns, args)
}

// DeletePhoto removes a photo by ID.
func (s *SQLiteStore) DeletePhoto(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "daily_photos", "photo", id)
}

// GetPhotos retrieves all photos, newest first.
func (s *SQLiteStore) GetPhotos(ctx context.Context) ([]model.DailyPhoto, error) {
	var photos []model.DailyPhoto
	err := s.db.SelectContext(ctx, &photos,
		"SELECT * FROM daily_photos ORDER BY position DESC")
	if err != nil {
		return nil, fmt.Errorf("querying photos: %w", err)
	}
	return photos, nil
}
