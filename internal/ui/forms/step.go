package forms

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nhle/sitetrack/internal/model"
)

// StepSavedMsg is dispatched when a timeline step form is submitted.
type StepSavedMsg struct {
	Step model.TimelineStep
	Edit bool
}

type stepBindings struct {
	label      string
	date       string
	status     string
	progress   string
	contractor string
	estimate   string
}

// NewStepForm builds the create/edit form for a timeline step. Pass a
// nil existing step for create mode.
func NewStepForm(width, height int, existing *model.TimelineStep) Model {
	fb := &stepBindings{status: model.StepPending}
	title := "New Timeline Step"
	editID := ""

	if existing != nil {
		title = "Edit Timeline Step"
		editID = existing.ID
		fb.label = existing.Label
		fb.date = existing.Date
		fb.status = existing.Status
		fb.progress = strconv.Itoa(existing.Progress)
		fb.contractor = existing.Contractor
		fb.estimate = existing.Estimate
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Label").
			Placeholder("Foundation, framing, roofing...").
			Value(&fb.label).
			Validate(validateRequired("Label")),
		huh.NewInput().
			Title("Date").
			Placeholder("DD/MM/YYYY or free text").
			Value(&fb.date),
		huh.NewSelect[string]().
			Title("Status").
			Options(
				huh.NewOption("Pending", model.StepPending),
				huh.NewOption("Current", model.StepCurrent),
				huh.NewOption("Completed", model.StepCompleted),
			).
			Value(&fb.status),
		huh.NewInput().
			Title("Progress %").
			Placeholder("0-100, used while current").
			Value(&fb.progress).
			Validate(validateOptionalNumber),
		huh.NewInput().
			Title("Contractor").
			Placeholder("Optional").
			Value(&fb.contractor),
		huh.NewInput().
			Title("Cost estimate").
			Placeholder("Optional").
			Value(&fb.estimate),
	)).WithWidth(formWidth(width)).WithHeight(formHeight(height))

	return Model{
		form:   form,
		title:  title,
		width:  width,
		height: height,
		submit: func() tea.Msg {
			return StepSavedMsg{
				Step: model.TimelineStep{
					ID:         editID,
					Label:      fb.label,
					Date:       fb.date,
					Status:     fb.status,
					Progress:   parseInt(fb.progress),
					Contractor: fb.contractor,
					Estimate:   fb.estimate,
				},
				Edit: editID != "",
			}
		},
	}
}
