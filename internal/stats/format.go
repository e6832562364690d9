package stats

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatCurrency collapses a monetary amount into a compact display
// string: billions as "1.2B", millions as "45M", thousands as "750k",
// anything smaller as the raw integer. Display only — never feed the
// result back into arithmetic.
func FormatCurrency(amount float64) string {
	abs := math.Abs(amount)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.1fB", amount/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.0fM", amount/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.0fk", amount/1e3)
	default:
		return fmt.Sprintf("%.0f", amount)
	}
}

// ToISODate converts a DD/MM/YYYY display date to YYYY-MM-DD. Free
// text that does not parse (placeholders like "current" or estimate
// strings) passes through unchanged.
func ToISODate(display string) string {
	t, err := time.Parse("02/01/2006", strings.TrimSpace(display))
	if err != nil {
		return display
	}
	return t.Format("2006-01-02")
}

// ToDisplayDate converts a YYYY-MM-DD date to DD/MM/YYYY. Unparseable
// input passes through unchanged.
func ToDisplayDate(iso string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(iso))
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

// DisplayDate formats a time as the DD/MM/YYYY display convention used
// across the record dates.
func DisplayDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// DisplayTimestamp formats a time the way photo captures and AI journal
// entries are stamped.
func DisplayTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
