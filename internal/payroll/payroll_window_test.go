package payroll

import (
	"fmt"
	"testing"
	"time"

	payrollerrors "go-salon/internal/payroll/errors"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestGetPayrollWindow(t *testing.T) {
	t.Run("january 2024", func(t *testing.T) {
		w, err := GetPayrollWindow("2024-01")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), w.Start)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), w.End)
		assert.Equal(t, "2024-01-01", w.StartDate)
		assert.Equal(t, "2024-02-01", w.EndDate)
		assert.Equal(t, "2024-01", w.Month())
	})

	t.Run("december rolls into next year", func(t *testing.T) {
		w, err := GetPayrollWindow("2023-12")

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-01", w.EndDate)
	})

	t.Run("malformed months are rejected", func(t *testing.T) {
		for _, in := range []string{"", "2024", "2024-13", "2024-1", "01-2024", "2024/01", "abcd-ef"} {
			_, err := GetPayrollWindow(in)
			assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth, "input %q", in)
		}
	})
}

func TestGetPayrollWindow_CoversWholeMonths(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			token := fmt.Sprintf("%04d-%02d", year, month)
			w, err := GetPayrollWindow(token)
			assert.NoError(t, err)

			daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
			assert.Equal(t, float64(daysInMonth), w.Days(), token)

			next, err := GetPayrollWindow(w.End.Format(monthLayout))
			assert.NoError(t, err)
			assert.True(t, w.End.Equal(next.Start), "gap or overlap after %s", token)
		}
	}

	feb, _ := GetPayrollWindow("2024-02")
	assert.Equal(t, 29.0, feb.Days())
}

func TestActiveWorkdayRatio(t *testing.T) {
	w, _ := GetPayrollWindow("2024-01")

	tests := []struct {
		name     string
		start    *time.Time
		end      *time.Time
		expected float64
	}{
		{name: "no bounds", expected: 1},
		{name: "started mid month", start: date(2024, 1, 15), expected: 17.0 / 31.0},
		{name: "left mid month", end: date(2024, 1, 11), expected: 10.0 / 31.0},
		{name: "started before and still employed", start: date(2020, 6, 1), expected: 1},
		{name: "ended before window", end: date(2023, 12, 31), expected: 0},
		{name: "ended exactly at window start", end: date(2024, 1, 1), expected: 0},
		{name: "starts after window", start: date(2024, 3, 1), expected: 0},
		{name: "starts at window end", start: date(2024, 2, 1), expected: 0},
		{name: "inside window", start: date(2024, 1, 10), end: date(2024, 1, 20), expected: 10.0 / 31.0},
		{name: "inverted interval", start: date(2024, 1, 20), end: date(2024, 1, 10), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActiveWorkdayRatio(tt.start, tt.end, w.Start, w.End)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestActiveWorkdayRatio_StaysInUnitInterval(t *testing.T) {
	w, _ := GetPayrollWindow("2024-02")
	base := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 120; i += 3 {
		for j := 0; j < 120; j += 7 {
			start := base.AddDate(0, 0, i)
			end := base.AddDate(0, 0, j)

			got := ActiveWorkdayRatio(&start, &end, w.Start, w.End)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		}
	}

	assert.Equal(t, 0.0, ActiveWorkdayRatio(nil, nil, w.End, w.Start))
}

func TestIsActiveInWindow(t *testing.T) {
	w, _ := GetPayrollWindow("2024-01")

	assert.True(t, IsActiveInWindow(nil, nil, w))
	assert.True(t, IsActiveInWindow(date(2024, 1, 15), nil, w))
	assert.True(t, IsActiveInWindow(date(2024, 2, 1), nil, w), "start on window end is inclusive")
	assert.False(t, IsActiveInWindow(date(2024, 2, 2), nil, w))
	assert.True(t, IsActiveInWindow(nil, date(2024, 1, 2), w))
	assert.False(t, IsActiveInWindow(nil, date(2024, 1, 1), w), "end on window start is exclusive")
	assert.False(t, IsActiveInWindow(date(2022, 1, 1), date(2023, 6, 1), w))
}
