package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingTotal(t *testing.T) {
	tests := []struct {
		name        string
		pricePerDay float64
		from, to    string
		wantTotal   float64
		wantDays    int
		wantErr     bool
	}{
		{
			name:        "same day is one rental day",
			pricePerDay: 50,
			from:        "2026-09-01",
			to:          "2026-09-01",
			wantTotal:   50,
			wantDays:    1,
		},
		{
			name:        "range counts both ends",
			pricePerDay: 50,
			from:        "2026-09-01",
			to:          "2026-09-03",
			wantTotal:   150,
			wantDays:    3,
		},
		{
			name:        "range spanning a DST change",
			pricePerDay: 50,
			from:        "2026-03-07",
			to:          "2026-03-09",
			wantTotal:   150,
			wantDays:    3,
		},
		{
			name:        "drop-off before pick-up",
			pricePerDay: 50,
			from:        "2026-09-03",
			to:          "2026-09-01",
			wantErr:     true,
		},
		{
			name:        "free vehicle cannot be booked",
			pricePerDay: 0,
			from:        "2026-09-01",
			to:          "2026-09-03",
			wantErr:     true,
		},
		{
			name:        "garbage date",
			pricePerDay: 50,
			from:        "01/09/2026",
			to:          "2026-09-03",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, days, err := bookingTotal(tt.pricePerDay, tt.from, tt.to)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestRentalDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.Local)
	}

	assert.Equal(t, 1, rentalDays(day(1), day(1)))
	assert.Equal(t, 2, rentalDays(day(1), day(2)))
	assert.Equal(t, 7, rentalDays(day(1), day(7)))
}

func TestRentalDays_AcrossDSTTransitions(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	day := func(m time.Month, d int) time.Time {
		return time.Date(2026, m, d, 0, 0, 0, 0, ny)
	}

	// Spring forward on 2026-03-08: only 47h separate these midnights, but
	// the rental still covers three calendar days.
	assert.Equal(t, 3, rentalDays(day(time.March, 7), day(time.March, 9)))

	// Fall back on 2026-11-01: 49h between midnights, still three days.
	assert.Equal(t, 3, rentalDays(day(time.October, 31), day(time.November, 2)))
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.September, got.Month())
	assert.Equal(t, 15, got.Day())

	_, err = parseDate("next tuesday")
	require.Error(t, err)
}
