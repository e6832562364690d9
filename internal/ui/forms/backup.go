package forms

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ExportRequestedMsg asks the app to write a backup file to Path.
type ExportRequestedMsg struct {
	Path string
}

// ImportRequestedMsg asks the app to apply the backup file at Path.
type ImportRequestedMsg struct {
	Path string
}

type backupBindings struct {
	path string
}

// NewExportForm builds the prompt for the backup destination path.
func NewExportForm(width, height int, defaultPath string) Model {
	fb := &backupBindings{path: defaultPath}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Export to").
			Value(&fb.path).
			Validate(validateRequired("Path")),
	)).WithWidth(formWidth(width)).WithHeight(formHeight(height))

	return Model{
		form:   form,
		title:  "Export Backup",
		width:  width,
		height: height,
		submit: func() tea.Msg {
			return ExportRequestedMsg{Path: fb.path}
		},
	}
}

// NewImportForm builds the prompt for the backup source path.
func NewImportForm(width, height int) Model {
	fb := &backupBindings{}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Import from").
			Placeholder("Path to a backup JSON file").
			Value(&fb.path).
			Validate(validateRequired("Path")),
	)).WithWidth(formWidth(width)).WithHeight(formHeight(height))

	return Model{
		form:   form,
		title:  "Import Backup",
		width:  width,
		height: height,
		submit: func() tea.Msg {
			return ImportRequestedMsg{Path: fb.path}
		},
	}
}
