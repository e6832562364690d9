package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/sitetrack/internal/model"
)

// AddDocument inserts a new document record. Generates a UUID if ID is
// empty and stamps the upload date when missing.
func (s *SQLiteStore) AddDocument(ctx context.Context, doc model.ProjectDocument) error {
	if strings.TrimSpace(doc.Name) == "" {
		return fmt.Errorf("document name must not be empty")
	}
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Category == "" {
		doc.Category = model.DocOther
	}
	if doc.UploadDate == "" {
		doc.UploadDate = time.Now().Format("02/01/2006")
	}

	if doc.Position == 0 {
		pos, err := s.nextPosition(ctx, "documents")
		if err != nil {
			return err
		}
		doc.Position = pos
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO documents (
			id, name, category, url, file_size, upload_date, notes, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Name, doc.Category, doc.URL,
		doc.FileSize, doc.UploadDate, doc.Notes, doc.Position,
	)
	if err != nil {
		return fmt.Errorf("adding document: %w", err)
	}
	return nil
}

// DeleteDocument removes a document by ID.
func (s *SQLiteStore) DeleteDocument(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "documents", "document", id)
}

// GetDocuments retrieves all documents, newest first.
func (s *SQLiteStore) GetDocuments(ctx context.Context) ([]model.ProjectDocument, error) {
	var docs []model.ProjectDocument
	err := s.db.SelectContext(ctx, &docs,
		"SELECT * FROM documents ORDER BY position DESC")
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	return docs, nil
}
