package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency_Boundaries(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1k"},
		{750000, "750k"},
		{999999, "1000k"},
		{1000000, "1M"},
		{45000000, "45M"},
		{999999999, "1000M"},
		{1000000000, "1.0B"},
		{1400000000, "1.4B"},
		{5000000000, "5.0B"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.amount), "amount %v", tc.amount)
	}
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2025-03-12", ToISODate("12/03/2025"))
	assert.Equal(t, "current", ToISODate("current"), "free text passes through")
	assert.Equal(t, "", ToISODate(""))
}

func TestToDisplayDate(t *testing.T) {
	assert.Equal(t, "12/03/2025", ToDisplayDate("2025-03-12"))
	assert.Equal(t, "~3 weeks", ToDisplayDate("~3 weeks"), "free text passes through")
}

func TestDisplayFormats(t *testing.T) {
	at := time.Date(2025, time.March, 12, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "12/03/2025", DisplayDate(at))
	assert.Equal(t, "12/03/2025 09:30", DisplayTimestamp(at))
}
