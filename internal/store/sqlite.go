package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/sitetrack/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Snapshot assembles the full current state of the store. The
// statistics and risk engines work off the returned value, so it must
// always reflect the latest committed writes.
func (s *SQLiteStore) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	project, err := s.GetProject(ctx)
	if err != nil {
		return nil, err
	}
	steps, err := s.GetTimelineSteps(ctx)
	if err != nil {
		return nil, err
	}
	photos, err := s.GetPhotos(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.GetFinanceItems(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.GetAILogs(ctx)
	if err != nil {
		return nil, err
	}
	contractors, err := s.GetContractors(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.GetDocuments(ctx)
	if err != nil {
		return nil, err
	}
	issues, err := s.GetIssues(ctx)
	if err != nil {
		return nil, err
	}
	darkMode, err := s.GetDarkMode(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Snapshot{
		Project:       project,
		TimelineSteps: steps,
		DailyPhotos:   photos,
		FinanceItems:  items,
		AILogs:        logs,
		Contractors:   contractors,
		Documents:     docs,
		Issues:        issues,
		DarkMode:      darkMode,
	}, nil
}

// GetDarkMode reads the persisted dark mode flag.
func (s *SQLiteStore) GetDarkMode(ctx context.Context) (bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value,
		"SELECT value FROM settings WHERE key = 'dark_mode'")
	if err != nil {
		return false, fmt.Errorf("reading dark_mode setting: %w", err)
	}
	return value == "1", nil
}

// SetDarkMode persists the dark mode flag.
func (s *SQLiteStore) SetDarkMode(ctx context.Context, enabled bool) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO settings (key, value) VALUES ('dark_mode', ?)",
		fmt.Sprintf("%d", boolToInt(enabled)),
	)
	if err != nil {
		return fmt.Errorf("saving dark_mode setting: %w", err)
	}
	return nil
}

// nextPosition returns max(position)+1 for the given table, used to
// assign append order to new records.
func (s *SQLiteStore) nextPosition(ctx context.Context, table string) (int, error) {
	var maxPos int
	query := fmt.Sprintf("SELECT COALESCE(MAX(position), 0) FROM %s", table)
	if err := s.db.GetContext(ctx, &maxPos, query); err != nil {
		return 0, fmt.Errorf("getting max position for %s: %w", table, err)
	}
	return maxPos + 1, nil
}

// applyPatch runs a dynamic UPDATE built from the given columns. It
// returns a not-found error when no row matches the ID.
func (s *SQLiteStore) applyPatch(
	ctx context.Context,
	table, entity, id string,
	columns []string,
	args []interface{},
) error {
	if len(columns) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?",
		table, strings.Join(columns, ", "))
	args = append(args, id)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating %s %s: %w", entity, id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%s %s not found", entity, id)
	}
	return nil
}

// deleteByID removes one row and reports not-found when nothing matched.
func (s *SQLiteStore) deleteByID(ctx context.Context, table, entity, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table)
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", entity, id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%s %s not found", entity, id)
	}
	return nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
