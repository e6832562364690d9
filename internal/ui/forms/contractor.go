package forms

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nhle/sitetrack/internal/model"
)

// ContractorSavedMsg is dispatched when a contractor form is submitted.
type ContractorSavedMsg struct {
	Contractor model.Contractor
	Edit       bool
}

type contractorBindings struct {
	name      string
	specialty string
	phone     string
	email     string
	rating    int
	status    string
	notes     string
}

// NewContractorForm builds the create/edit form for a contractor. Pass
// a nil existing contractor for create mode.
func NewContractorForm(width, height int, existing *model.Contractor) Model {
	fb := &contractorBindings{rating: 3, status: model.ContractorActive}
	title := "New Contractor"
	editID := ""

	if existing != nil {
		title = "Edit Contractor"
		editID = existing.ID
		fb.name = existing.Name
		fb.specialty = existing.Specialty
		fb.phone = existing.Phone
		fb.email = existing.Email
		fb.rating = existing.Rating
		fb.status = existing.Status
		fb.notes = existing.Notes
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(&fb.name).
			Validate(validateRequired("Name")),
		huh.NewInput().
			Title("Specialty").
			Placeholder("Masonry, electrical, plumbing...").
			Value(&fb.specialty),
		huh.NewInput().
			Title("Phone").
			Value(&fb.phone),
		huh.NewInput().
			Title("Email").
			Placeholder("Optional").
			Value(&fb.email),
		huh.NewSelect[int]().
			Title("Rating").
			Options(
				huh.NewOption("★★★★★", 5),
				huh.NewOption("★★★★", 4),
				huh.NewOption("★★★", 3),
				huh.NewOption("★★", 2),
				huh.NewOption("★", 1),
			).
			Value(&fb.rating),
		huh.NewSelect[string]().
			Title("Status").
			Options(
				huh.NewOption("Active", model.ContractorActive),
				huh.NewOption("Completed", model.ContractorCompleted),
				huh.NewOption("Paused", model.ContractorPaused),
			).
			Value(&fb.status),
		huh.NewText().
			Title("Notes").
			Placeholder("Optional").
			Value(&fb.notes),
	)).WithWidth(formWidth(width)).WithHeight(formHeight(height))

	return Model{
		form:   form,
		title:  title,
		width:  width,
		height: height,
		submit: func() tea.Msg {
			return ContractorSavedMsg{
				Contractor: model.Contractor{
					ID:        editID,
					Name:      fb.name,
					Specialty: fb.specialty,
					Phone:     fb.phone,
					Email:     fb.email,
					Rating:    fb.rating,
					Status:    fb.status,
					Notes:     fb.notes,
				},
				Edit: editID != "",
			}
		},
	}
}
