package forms

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nhle/sitetrack/internal/model"
)

// ProjectSavedMsg is dispatched when the project settings form is
// submitted.
type ProjectSavedMsg struct {
	Info model.ProjectInfo
}

type projectBindings struct {
	name      string
	location  string
	owner     string
	budget    string
	startDate string
}

// NewProjectForm builds the edit form for the project metadata.
func NewProjectForm(width, height int, info model.ProjectInfo) Model {
	fb := &projectBindings{
		name:      info.Name,
		location:  info.Location,
		owner:     info.Owner,
		budget:    strconv.FormatFloat(info.Budget, 'f', -1, 64),
		startDate: info.StartDate,
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Value(&fb.name).
			Validate(validateRequired("Project name")),
		huh.NewInput().
			Title("Location").
			Value(&fb.location),
		huh.NewInput().
			Title("Owner").
			Value(&fb.owner),
		huh.NewInput().
			Title("Total budget").
			Value(&fb.budget).
			Validate(validateRequiredNumber("Total budget")),
		huh.NewInput().
			Title("Start date").
			Placeholder("DD/MM/YYYY").
			Value(&fb.startDate),
	)).WithWidth(formWidth(width)).WithHeight(formHeight(height))

	return Model{
		form:   form,
		title:  "Project Settings",
		width:  width,
		height: height,
		submit: func() tea.Msg {
			return ProjectSavedMsg{
				Info: model.ProjectInfo{
					Name:      fb.name,
					Location:  fb.location,
					Owner:     fb.owner,
					Budget:    parseFloat(fb.budget),
					StartDate: fb.startDate,
				},
			}
		},
	}
}
