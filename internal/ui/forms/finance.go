package forms

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nhle/sitetrack/internal/model"
)

// FinanceSavedMsg is dispatched when a finance item form is submitted.
type FinanceSavedMsg struct {
	Item model.FinanceItem
	Edit bool
}

type financeBindings struct {
	date      string
	name      string
	vendor    string
	quantity  string
	unitPrice string
	total     string
	status    string
}

// NewFinanceForm builds the create/edit form for an invoice or expense
// line. Pass a nil existing item for create mode.
func NewFinanceForm(width, height int, existing *model.FinanceItem) Model {
	fb := &financeBindings{status: model.FinancePending}
	title := "New Finance Item"
	editID := ""

	if existing != nil {
		title = "Edit Finance Item"
		editID = existing.ID
		fb.date = existing.Date
		fb.name = existing.Name
		fb.vendor = existing.Vendor
		fb.quantity = existing.Quantity
		fb.unitPrice = strconv.FormatFloat(existing.UnitPrice, 'f', -1, 64)
		fb.total = strconv.FormatFloat(existing.Total, 'f', -1, 64)
		fb.status = existing.Status
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Placeholder("Cement delivery, electrician labor...").
			Value(&fb.name).
			Validate(validateRequired("Name")),
		huh.NewInput().
			Title("Vendor").
			Placeholder("Supplier or contractor").
			Value(&fb.vendor),
		huh.NewInput().
			Title("Date").
			Placeholder("DD/MM/YYYY").
			Value(&fb.date),
		huh.NewInput().
			Title("Quantity").
			Placeholder("e.g. 20 bags").
			Value(&fb.quantity),
		huh.NewInput().
			Title("Unit price").
			Value(&fb.unitPrice).
			Validate(validateOptionalNumber),
		huh.NewInput().
			Title("Total").
			Description("Authoritative amount, not derived from quantity x unit price").
			Value(&fb.total).
			Validate(validateRequiredNumber("Total")),
		huh.NewSelect[string]().
			Title("Status").
			Options(
				huh.NewOption("Pending", model.FinancePending),
				huh.NewOption("Paid", model.FinancePaid),
				huh.NewOption("Overdue", model.FinanceOverdue),
			).
			Value(&fb.status),
	)).WithWidth(formWidth(width)).WithHeight(formHeight(height))

	return Model{
		form:   form,
		title:  title,
		width:  width,
		height: height,
		submit: func() tea.Msg {
			return FinanceSavedMsg{
				Item: model.FinanceItem{
					ID:        editID,
					Date:      fb.date,
					Name:      fb.name,
					Vendor:    fb.vendor,
					Quantity:  fb.quantity,
					UnitPrice: parseFloat(fb.unitPrice),
					Total:     parseFloat(fb.total),
					Status:    fb.status,
				},
				Edit: editID != "",
			}
		},
	}
}
