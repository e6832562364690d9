package forms

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nhle/sitetrack/internal/model"
)

// IssueSavedMsg is dispatched when an issue form is submitted.
type IssueSavedMsg struct {
	Issue model.Issue
	Edit  bool
}

type issueBindings struct {
	title       string
	description string
	location    string
	priority    string
	status      string
	assignee    string
	photoURL    string
}

// NewIssueForm builds the create/edit form for a site issue. Pass a
// nil existing issue for create mode.
func NewIssueForm(width, height int, existing *model.Issue) Model {
	fb := &issueBindings{priority: model.IssuePriorityMedium, status: model.IssueOpen}
	title := "New Issue"
	editID := ""

	if existing != nil {
		title = "Edit Issue"
		editID = existing.ID
		fb.title = existing.Title
		fb.description = existing.Description
		fb.location = existing.Location
		fb.priority = existing.Priority
		fb.status = existing.Status
		fb.assignee = existing.Assignee
		fb.photoURL = existing.PhotoURL
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Placeholder("What went wrong?").
			Value(&fb.title).
			Validate(validateRequired("Title")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&fb.description),
		huh.NewInput().
			Title("Location").
			Placeholder("East wall, second floor...").
			Value(&fb.location),
		huh.NewSelect[string]().
			Title("Priority").
			Options(
				huh.NewOption("High", model.IssuePriorityHigh),
				huh.NewOption("Medium", model.IssuePriorityMedium),
				huh.NewOption("Low", model.IssuePriorityLow),
			).
			Value(&fb.priority),
		huh.NewSelect[string]().
			Title("Status").
			Options(
				huh.NewOption("Open", model.IssueOpen),
				huh.NewOption("In progress", model.IssueInProgress),
				huh.NewOption("Resolved", model.IssueResolved),
			).
			Value(&fb.status),
		huh.NewInput().
			Title("Assignee").
			Placeholder("Optional").
			Value(&fb.assignee),
		huh.NewInput().
			Title("Photo URL").
			Placeholder("Optional").
			Value(&fb.photoURL),
	)).WithWidth(formWidth(width)).WithHeight(formHeight(height))

	return Model{
		form:   form,
		title:  title,
		width:  width,
		height: height,
		submit: func() tea.Msg {
			return IssueSavedMsg{
				Issue: model.Issue{
					ID:          editID,
					Title:       fb.title,
					Description: fb.description,
					Location:    fb.location,
					Priority:    fb.priority,
					Status:      fb.status,
					Assignee:    fb.assignee,
					PhotoURL:    fb.photoURL,
				},
				Edit: editID != "",
			}
		},
	}
}
