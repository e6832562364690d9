package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/nhle/sitetrack/internal/model"
	"github.com/nhle/sitetrack/internal/risk"
	"github.com/nhle/sitetrack/internal/stats"
)

// newReportCmd builds the non-interactive status report command.
func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a project status report",
		Long:  "Prints the timeline, budget summary, vendor breakdown, and risk alerts as plain tables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			snap, err := s.Snapshot(context.Background())
			if err != nil {
				return err
			}

			printReport(snap)
			return nil
		},
	}
}

func printReport(snap *model.Snapshot) {
	summary := stats.Compute(snap)
	alerts := risk.Evaluate(snap)

	if snap.Project.Name != "" {
		fmt.Printf("%s", snap.Project.Name)
		if snap.Project.Location != "" {
			fmt.Printf(" — %s", snap.Project.Location)
		}
		fmt.Println()
	}

	track := "on track"
	if !summary.OnTrack {
		track = "behind schedule"
	}
	fmt.Printf("Progress: %d%% (%d of %d steps), ~%d days remaining, %s\n",
		summary.ProgressPercent, summary.CompletedSteps, summary.TotalSteps,
		summary.RemainingDays, track)
	fmt.Printf("Budget: %s spent of %s (%d%%), %s pending, %d overdue invoices\n\n",
		stats.FormatCurrency(summary.SpentBudget),
		stats.FormatCurrency(summary.TotalBudget),
		summary.SpentPercent,
		stats.FormatCurrency(summary.PendingTotal),
		summary.OverdueCount)

	printTimelineTable(snap.TimelineSteps)
	printVendorTable(summary.Vendors)
	printAlertTable(alerts)
}

func printTimelineTable(steps []model.TimelineStep) {
	if len(steps) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Timeline")
	t.AppendHeader(table.Row{"#", "Phase", "Status", "Progress", "Date", "Contractor"})

	for i, step := range steps {
		progress := ""
		if step.Status == model.StepCurrent {
			progress = fmt.Sprintf("%d%%", step.Progress)
		}
		t.AppendRow(table.Row{i + 1, step.Label, step.Status, progress, step.Date, step.Contractor})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Println()
}

func printVendorTable(vendors []stats.VendorShare) {
	if len(vendors) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Top Vendors")
	t.AppendHeader(table.Row{"Vendor", "Amount", "Share"})

	for _, v := range vendors {
		name := v.Vendor
		if name == "" {
			name = "(no vendor)"
		}
		t.AppendRow(table.Row{name, stats.FormatCurrency(v.Amount), fmt.Sprintf("%d%%", v.Percent)})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Println()
}

func printAlertTable(alerts []risk.Alert) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Risk Alerts")
	t.AppendHeader(table.Row{"Severity", "Alert", "Detail"})

	for _, alert := range alerts {
		t.AppendRow(table.Row{alert.Severity, alert.Title, alert.Description})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}
