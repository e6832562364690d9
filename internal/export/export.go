// Package export reads and writes project backup files. A backup is a
// JSON document carrying the entity collections plus export metadata;
// on import, only the collections present in the file are applied.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/store"
)

// FormatVersion identifies the backup file schema.
const FormatVersion = "1.0"

// Payload is the backup file shape. Collections are pointers so a
// partial file can distinguish "absent" (leave current data alone)
// from "present but empty" (replace with nothing).
type Payload struct {
	Project       *model.ProjectInfo       `json:"project"`
	TimelineSteps *[]model.TimelineStep    `json:"timelineSteps"`
	DailyPhotos   *[]model.DailyPhoto      `json:"dailyPhotos,omitempty"`
	FinanceItems  *[]model.FinanceItem     `json:"financeItems,omitempty"`
	AILogs        *[]model.AILog           `json:"aiLogs,omitempty"`
	Contractors   *[]model.Contractor      `json:"contractors,omitempty"`
	Documents     *[]model.ProjectDocument `json:"documents,omitempty"`
	Issues        *[]model.Issue           `json:"issues,omitempty"`

	ExportedAt time.Time `json:"exportedAt"`
	Version    string    `json:"version"`
}

// FromSnapshot builds a full backup payload from a store snapshot.
func FromSnapshot(snap *model.Snapshot, now time.Time) Payload {
	project := snap.Project
	return Payload{
		Project:       &project,
		TimelineSteps: &snap.TimelineSteps,
		DailyPhotos:   &snap.DailyPhotos,
		FinanceItems:  &snap.FinanceItems,
		AILogs:        &snap.AILogs,
		Contractors:   &snap.Contractors,
		Documents:     &snap.Documents,
		Issues:        &snap.Issues,
		ExportedAt:    now.UTC(),
		Version:       FormatVersion,
	}
}

// Write serializes a snapshot as an indented backup document.
func Write(w io.Writer, snap *model.Snapshot) error {
	payload := FromSnapshot(snap, time.Now())

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}

// WriteFile writes a backup document to path.
func WriteFile(path string, snap *model.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating backup file %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, snap); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing backup file %s: %w", path, err)
	}
	return nil
}

// Parse decodes and validates a backup document. A file without a
// project object or a timelineSteps array is rejected.
func Parse(r io.Reader) (*Payload, error) {
	var payload Payload
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid backup JSON: %w", err)
	}

	if payload.Project == nil || payload.TimelineSteps == nil {
		return nil, fmt.Errorf("backup file is missing project metadata or timeline steps")
	}

	return &payload, nil
}

// ParseFile reads and validates a backup document from path.
func ParseFile(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening backup file %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// ImportData converts the payload into the store's import shape.
func (p *Payload) ImportData() store.ImportData {
	return store.ImportData{
		Project:       p.Project,
		TimelineSteps: p.TimelineSteps,
		DailyPhotos:   p.DailyPhotos,
		FinanceItems:  p.FinanceItems,
		AILogs:        p.AILogs,
		Contractors:   p.Contractors,
		Documents:     p.Documents,
		Issues:        p.Issues,
	}
}

// DefaultFilename returns the conventional backup file name for a
// given time, e.g. "sitetrack-backup-2025-03-12.json".
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("sitetrack-backup-%s.json", now.Format("2006-01-02"))
}
