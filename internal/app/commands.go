package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/nhle/sitetrack/internal/export"
	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/stats"
	"github.com/nhle/sitetrack/internal/store"
)

// snapshotLoadedMsg delivers a fresh store snapshot to the root model.
type snapshotLoadedMsg struct {
	snapshot *model.Snapshot
	err      error
}

// mutationDoneMsg reports the outcome of a store write. verb is the
// past-tense description shown in the status bar.
type mutationDoneMsg struct {
	verb string
	err  error
}

// photoAnalyzedMsg carries the AI image analysis result for a photo.
type photoAnalyzedMsg struct {
	photoID  string
	tag      string
	analysis string
	err      error
}

type exportDoneMsg struct {
	path string
	err  error
}

type importDoneMsg struct {
	path string
	err  error
}

// aiTagMaxLen caps the badge text written back onto a photo; the full
// analysis goes to the AI journal.
const aiTagMaxLen = 60

func (m Model) loadSnapshot() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		snap, err := s.Snapshot(context.Background())
		return snapshotLoadedMsg{snapshot: snap, err: err}
	}
}

// --- timeline ---

func (m Model) saveStep(step model.TimelineStep, edit bool) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		var err error
		if edit {
			err = s.UpdateTimelineStep(context.Background(), step.ID, store.StepPatch{
				Label:      &step.Label,
				Date:       &step.Date,
				Status:     &step.Status,
				Progress:   &step.Progress,
				Contractor: &step.Contractor,
				Estimate:   &step.Estimate,
			})
		} else {
			err = s.AddTimelineStep(context.Background(), step)
		}
		return mutationDoneMsg{verb: "timeline step " + step.Label, err: err}
	}
}

func (m Model) deleteStep(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.DeleteTimelineStep(context.Background(), id)
		return mutationDoneMsg{verb: "timeline step removed", err: err}
	}
}

// advanceStep cycles a step one state forward: pending becomes the
// current phase, the current phase is marked completed.
func (m Model) advanceStep(step model.TimelineStep) tea.Cmd {
	s := m.store

	var next string
	switch step.Status {
	case model.StepPending:
		next = model.StepCurrent
	case model.StepCurrent:
		next = model.StepCompleted
	default:
		return nil
	}

	return func() tea.Msg {
		patch := store.StepPatch{Status: &next}
		if next == model.StepCompleted {
			full := 100
			patch.Progress = &full
		}
		err := s.UpdateTimelineStep(context.Background(), step.ID, patch)
		return mutationDoneMsg{verb: step.Label + " is now " + next, err: err}
	}
}

// --- finance ---

func (m Model) saveFinanceItem(item model.FinanceItem, edit bool) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		var err error
		if edit {
			err = s.UpdateFinanceItem(context.Background(), item.ID, store.FinancePatch{
				Date:      &item.Date,
				Name:      &item.Name,
				Vendor:    &item.Vendor,
				Quantity:  &item.Quantity,
				UnitPrice: &item.UnitPrice,
				Total:     &item.Total,
				Status:    &item.Status,
			})
		} else {
			err = s.AddFinanceItem(context.Background(), item)
		}
		return mutationDoneMsg{verb: "invoice " + item.Name, err: err}
	}
}

func (m Model) deleteFinanceItem(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.DeleteFinanceItem(context.Background(), id)
		return mutationDoneMsg{verb: "invoice removed", err: err}
	}
}

// --- contractors ---

func (m Model) saveContractor(c model.Contractor, edit bool) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		var err error
		if edit {
			err = s.UpdateContractor(context.Background(), c.ID, store.ContractorPatch{
				Name:      &c.Name,
				Specialty: &c.Specialty,
				Phone:     &c.Phone,
				Email:     &c.Email,
				Rating:    &c.Rating,
				Status:    &c.Status,
				Notes:     &c.Notes,
			})
		} else {
			err = s.AddContractor(context.Background(), c)
		}
		return mutationDoneMsg{verb: "contractor " + c.Name, err: err}
	}
}

func (m Model) deleteContractor(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.DeleteContractor(context.Background(), id)
		return mutationDoneMsg{verb: "contractor removed", err: err}
	}
}

// --- documents ---

func (m Model) saveDocument(doc model.ProjectDocument) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.AddDocument(context.Background(), doc)
		return mutationDoneMsg{verb: "document " + doc.Name, err: err}
	}
}

func (m Model) deleteDocument(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.DeleteDocument(context.Background(), id)
		return mutationDoneMsg{verb: "document removed", err: err}
	}
}

// --- issues ---

func (m Model) saveIssue(issue model.Issue, edit bool) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		var err error
		if edit {
			err = s.UpdateIssue(context.Background(), issue.ID, store.IssuePatch{
				Title:       &issue.Title,
				Description: &issue.Description,
				Location:    &issue.Location,
				Priority:    &issue.Priority,
				Status:      &issue.Status,
				Assignee:    &issue.Assignee,
				PhotoURL:    &issue.PhotoURL,
			})
		} else {
			err = s.AddIssue(context.Background(), issue)
		}
		return mutationDoneMsg{verb: "issue " + issue.Title, err: err}
	}
}

func (m Model) deleteIssue(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.DeleteIssue(context.Background(), id)
		return mutationDoneMsg{verb: "issue removed", err: err}
	}
}

func (m Model) resolveIssue(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		resolved := model.IssueResolved
		err := s.UpdateIssue(context.Background(), id, store.IssuePatch{
			Status: &resolved,
		})
		return mutationDoneMsg{verb: "issue resolved", err: err}
	}
}

// --- photos ---

// savePhoto inserts the photo and, when requested and an assistant is
// configured, kicks off the AI image analysis.
func (m Model) savePhoto(photo model.DailyPhoto, analyze bool) tea.Cmd {
	s := m.store
	assistant := m.assistant

	if photo.ID == "" {
		photo.ID = uuid.New().String()
	}
	if photo.Timestamp == "" {
		photo.Timestamp = stats.DisplayTimestamp(time.Now())
	}

	saveCmd := func() tea.Msg {
		err := s.AddPhoto(context.Background(), photo)
		return mutationDoneMsg{verb: "photo added", err: err}
	}

	if !analyze || assistant == nil {
		return saveCmd
	}

	photoID := photo.ID
	path := photo.URL
	analyzeCmd := func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return photoAnalyzedMsg{photoID: photoID, err: fmt.Errorf("reading photo %s: %w", path, err)}
		}

		analysis, err := assistant.AnalyzeImage(
			context.Background(),
			base64.StdEncoding.EncodeToString(data),
			mediaTypeFor(path),
		)
		if err != nil {
			return photoAnalyzedMsg{photoID: photoID, err: err}
		}

		return photoAnalyzedMsg{
			photoID:  photoID,
			tag:      shortTag(analysis),
			analysis: analysis,
		}
	}

	return tea.Sequence(saveCmd, analyzeCmd)
}

// writePhotoTag stores the AI tag back onto the analyzed photo.
func (m Model) writePhotoTag(photoID, tag string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		color := "blue"
		err := s.UpdatePhoto(context.Background(), photoID, store.PhotoPatch{
			AITag:   &tag,
			AIColor: &color,
		})
		return mutationDoneMsg{verb: "photo analyzed", err: err}
	}
}

// mediaTypeFor maps an image file extension to its MIME type.
func mediaTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// shortTag reduces a full analysis to badge-sized text.
func shortTag(analysis string) string {
	tag := analysis
	if idx := strings.IndexAny(tag, ".\n"); idx > 0 {
		tag = tag[:idx]
	}
	tag = strings.TrimSpace(tag)
	if len(tag) > aiTagMaxLen {
		tag = tag[:aiTagMaxLen-3] + "..."
	}
	return tag
}

// --- project / settings ---

func (m Model) saveProject(info model.ProjectInfo) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.UpdateProject(context.Background(), store.ProjectPatch{
			Name:      &info.Name,
			Location:  &info.Location,
			Owner:     &info.Owner,
			Budget:    &info.Budget,
			StartDate: &info.StartDate,
		})
		return mutationDoneMsg{verb: "project details", err: err}
	}
}

func (m Model) toggleDarkMode() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		current, err := s.GetDarkMode(context.Background())
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		if err := s.SetDarkMode(context.Background(), !current); err != nil {
			return mutationDoneMsg{err: err}
		}
		mode := "light"
		if !current {
			mode = "dark"
		}
		return mutationDoneMsg{verb: mode + " theme"}
	}
}

// --- AI journal ---

func (m Model) appendAILog(kind, content string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.AddAILog(context.Background(), model.AILog{
			Type:    kind,
			Content: content,
		})
		return mutationDoneMsg{err: err}
	}
}

func (m Model) clearAILogs() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.ClearAILogs(context.Background())
		return mutationDoneMsg{verb: "AI journal cleared", err: err}
	}
}

// --- backup ---

func (m Model) exportBackup(path string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		snap, err := s.Snapshot(context.Background())
		if err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		if err := export.WriteFile(path, snap); err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m Model) importBackup(path string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		payload, err := export.ParseFile(path)
		if err != nil {
			return importDoneMsg{path: path, err: err}
		}
		if err := s.ImportState(context.Background(), payload.ImportData()); err != nil {
			return importDoneMsg{path: path, err: err}
		}
		return importDoneMsg{path: path}
	}
}

// defaultBackupPath proposes a dated backup file in the working
// directory.
func defaultBackupPath() string {
	return export.DefaultFilename(time.Now())
}
