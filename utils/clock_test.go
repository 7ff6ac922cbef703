package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStart(t *testing.T) {
	ts := time.Date(2025, 6, 4, 23, 59, 59, 0, time.Local)
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.Local), DayStart(ts))
}

func TestWeekStart(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", time.Date(2025, 6, 2, 8, 0, 0, 0, time.Local)},
		{"midweek", time.Date(2025, 6, 4, 15, 30, 0, 0, time.Local)},
		{"sunday", time.Date(2025, 6, 8, 23, 0, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, monday, WeekStart(tc.in))
		})
	}
}

func TestParseISODate(t *testing.T) {
	ts, err := ParseISODate("2025-06-02T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2025, ts.Year())
	assert.Equal(t, 8, ts.Hour())

	ts, err = ParseISODate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, time.June, ts.Month())

	_, err = ParseISODate("yesterday")
	assert.Error(t, err)
}
