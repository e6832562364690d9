package forms

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nhle/sitetrack/internal/model"
)

// DocumentSavedMsg is dispatched when a document form is submitted.
type DocumentSavedMsg struct {
	Document model.ProjectDocument
}

type documentBindings struct {
	name     string
	category string
	url      string
	fileSize string
	notes    string
}

// NewDocumentForm builds the form for registering a project document.
func NewDocumentForm(width, height int) Model {
	fb := &documentBindings{category: model.DocOther}

	categoryOpts := make([]huh.Option[string], len(model.DocumentCategories))
	for i, cat := range model.DocumentCategories {
		categoryOpts[i] = huh.NewOption(cat, cat)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Placeholder("Building permit, floor plan...").
			Value(&fb.name).
			Validate(validateRequired("Name")),
		huh.NewSelect[string]().
			Title("Category").
			Options(categoryOpts...).
			Value(&fb.category),
		huh.NewInput().
			Title("URL or file path").
			Placeholder("Optional").
			Value(&fb.url),
		huh.NewInput().
			Title("File size").
			Placeholder("Optional, e.g. 2.4 MB").
			Value(&fb.fileSize),
		huh.NewText().
			Title("Notes").
			Placeholder("Optional").
			Value(&fb.notes),
	)).WithWidth(formWidth(width)).WithHeight(formHeight(height))

	return Model{
		form:   form,
		title:  "New Document",
		width:  width,
		height: height,
		submit: func() tea.Msg {
			return DocumentSavedMsg{
				Document: model.ProjectDocument{
					Name:     fb.name,
					Category: fb.category,
					URL:      fb.url,
					FileSize: fb.fileSize,
					Notes:    fb.notes,
				},
			}
		},
	}
}
