package forms

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nhle/sitetrack/internal/model"
)

// PhotoSavedMsg is dispatched when a photo form is submitted. Analyze
// asks the app to run AI image analysis on the file afterwards.
type PhotoSavedMsg struct {
	Photo   model.DailyPhoto
	Analyze bool
}

type photoBindings struct {
	url     string
	phase   string
	analyze bool
}

// NewPhotoForm builds the form for registering a daily site photo.
func NewPhotoForm(width, height int) Model {
	fb := &photoBindings{}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("URL or file path").
			Placeholder("Local image file or remote link").
			Value(&fb.url).
			Validate(validateRequired("URL")),
		huh.NewInput().
			Title("Phase").
			Placeholder("Timeline step label, optional").
			Value(&fb.phase),
		huh.NewConfirm().
			Title("Run AI analysis?").
			Description("Tags the photo with the detected construction activity").
			Value(&fb.analyze),
	)).WithWidth(formWidth(width)).WithHeight(formHeight(height))

	return Model{
		form:   form,
		title:  "New Daily Photo",
		width:  width,
		height: height,
		submit: func() tea.Msg {
			return PhotoSavedMsg{
				Photo: model.DailyPhoto{
					URL:   fb.url,
					Phase: fb.phase,
				},
				Analyze: fb.analyze,
			}
		},
	}
}
