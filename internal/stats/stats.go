// Package stats computes derived project statistics from a store
// snapshot. Every function is pure: same snapshot in, same numbers
// out, with all divide-by-zero paths degrading to 0 instead of
// producing NaN or Inf.
package stats

import (
	"math"
	"sort"

	"github.com/nhle/sitetrack/internal/model"
)

// stepDurationDays is the rough per-step duration used by the
// remaining-days heuristic. There is no dependency graph or critical
// path behind it.
const stepDurationDays = 14

// onTrackThreshold is the minimum progress of the current step for the
// project to count as on track.
const onTrackThreshold = 30

// topVendorCount limits the vendor allocation breakdown. Vendors past
// the cut are dropped, not rolled into an "other" bucket.
const topVendorCount = 5

// VendorShare is one vendor's slice of the total spend.
type VendorShare struct {
	Vendor  string
	Amount  float64
	Percent int
}

// Summary bundles every derived figure the dashboard and report views
// need, computed once per snapshot.
type Summary struct {
	ProgressPercent int
	RemainingDays   int
	OnTrack         bool

	TotalBudget  float64
	SpentBudget  float64
	SpentPercent int
	PendingTotal float64
	OverdueCount int

	CompletedSteps int
	TotalSteps     int

	Vendors []VendorShare
}

// Progress returns the overall completion percentage. Completed steps
// count fully; each current step contributes its fractional progress.
// With multiple current steps the fractions add up, which can push the
// result past 100 — callers clamp for display, not here.
func Progress(steps []model.TimelineStep) int {
	if len(steps) == 0 {
		return 0
	}

	completed := 0
	currentFraction := 0.0
	for _, step := range steps {
		switch step.Status {
		case model.StepCompleted:
			completed++
		case model.StepCurrent:
			currentFraction += float64(step.Progress) / 100
		}
	}

	return round((float64(completed) + currentFraction) / float64(len(steps)) * 100)
}

// RemainingDays estimates days to completion as the count of
// non-completed steps times a fixed per-step duration.
func RemainingDays(steps []model.TimelineStep) int {
	remaining := 0
	for _, step := range steps {
		if step.Status != model.StepCompleted {
			remaining++
		}
	}
	return remaining * stepDurationDays
}

// OnTrack reports whether the schedule looks healthy: either there is
// no current step, or the first current step has made enough progress.
func OnTrack(steps []model.TimelineStep) bool {
	current := CurrentStep(steps)
	if current == nil {
		return true
	}
	return current.Progress >= onTrackThreshold
}

// CurrentStep returns the first step with status "current", or nil.
func CurrentStep(steps []model.TimelineStep) *model.TimelineStep {
	for i := range steps {
		if steps[i].Status == model.StepCurrent {
			return &steps[i]
		}
	}
	return nil
}

// SpentBudget sums the totals of paid finance items. Pending and
// overdue amounts are commitments, not spend, so they are excluded.
func SpentBudget(items []model.FinanceItem) float64 {
	sum := 0.0
	for _, item := range items {
		if item.Status == model.FinancePaid {
			sum += item.Total
		}
	}
	return sum
}

// SpentPercent returns spent as a percentage of budget. A zero budget
// yields 0. Values above 100 are returned as-is; only visual bar
// widths get clamped.
func SpentPercent(spent, budget float64) int {
	if budget == 0 {
		return 0
	}
	return round(spent / budget * 100)
}

// PendingTotal sums the totals of pending finance items.
func PendingTotal(items []model.FinanceItem) float64 {
	sum := 0.0
	for _, item := range items {
		if item.Status == model.FinancePending {
			sum += item.Total
		}
	}
	return sum
}

// OverdueCount counts overdue finance items.
func OverdueCount(items []model.FinanceItem) int {
	count := 0
	for _, item := range items {
		if item.Status == model.FinanceOverdue {
			count++
		}
	}
	return count
}

// VendorAllocation groups finance items by vendor, sums their totals,
// and returns the top vendors by amount with each one's share of the
// grand total. Items with an empty vendor are grouped together.
func VendorAllocation(items []model.FinanceItem) []VendorShare {
	totals := make(map[string]float64)
	grand := 0.0
	for _, item := range items {
		totals[item.Vendor] += item.Total
		grand += item.Total
	}

	shares := make([]VendorShare, 0, len(totals))
	for vendor, amount := range totals {
		percent := 0
		if grand != 0 {
			percent = round(amount / grand * 100)
		}
		shares = append(shares, VendorShare{Vendor: vendor, Amount: amount, Percent: percent})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Vendor < shares[j].Vendor
	})

	if len(shares) > topVendorCount {
		shares = shares[:topVendorCount]
	}
	return shares
}

// Compute derives the full summary for a snapshot.
func Compute(snap *model.Snapshot) Summary {
	spent := SpentBudget(snap.FinanceItems)

	completed := 0
	for _, step := range snap.TimelineSteps {
		if step.Status == model.StepCompleted {
			completed++
		}
	}

	return Summary{
		ProgressPercent: Progress(snap.TimelineSteps),
		RemainingDays:   RemainingDays(snap.TimelineSteps),
		OnTrack:         OnTrack(snap.TimelineSteps),
		TotalBudget:     snap.Project.Budget,
		SpentBudget:     spent,
		SpentPercent:    SpentPercent(spent, snap.Project.Budget),
		PendingTotal:    PendingTotal(snap.FinanceItems),
		OverdueCount:    OverdueCount(snap.FinanceItems),
		CompletedSteps:  completed,
		TotalSteps:      len(snap.TimelineSteps),
		Vendors:         VendorAllocation(snap.FinanceItems),
	}
}

// round rounds half away from zero to the nearest int.
func round(x float64) int {
	return int(math.Round(x))
}
