package leave_test

import (
	"testing"
	"time"

	"go-salon/internal/leave"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCalculateAccruedLeave(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start *time.Time
		quota float64
		want  float64
	}{
		{"no start date is fully accrued", nil, 21, 21},
		{"start in the future", date(2025, 4, 1), 21, 0},
		{"started earlier today", date(2025, 3, 10), 21, 0},
		{"same month ignores day of month", date(2025, 3, 1), 21, 0},
		{"one month", date(2025, 2, 28), 21, 1.75},
		{"exactly one year", date(2024, 3, 10), 21, 21},
		{"day of month is ignored", date(2024, 3, 31), 21, 21},
		{"beyond a year is not capped", date(2023, 9, 1), 21, 31.5},
		{"rounds to the nearest quarter", date(2025, 1, 15), 14, 2.25},
		{"quarter rounding of 1.6667", date(2025, 2, 1), 20, 1.75},
		{"zero quota", date(2020, 1, 1), 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, leave.CalculateAccruedLeave(tc.start, tc.quota, today))
		})
	}
}

func TestCalculateAccruedLeave_TwelveMonthsEqualsQuota(t *testing.T) {
	today := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	start := today.AddDate(-1, 0, 0)

	assert.Equal(t, 21.0, leave.CalculateAccruedLeave(&start, leave.DefaultAnnualLeaveQuota, today))
}

func TestCalculateAccruedLeave_MonotonicInTenure(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	for _, quota := range []float64{0, 7, 12, 14, 21, 30} {
		prev := -1.0
		// walk the start date backwards one month at a time
		for months := 0; months <= 60; months++ {
			start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -months, 0)
			got := leave.CalculateAccruedLeave(&start, quota, today)

			assert.GreaterOrEqual(t, got, prev, "quota %v months %d", quota, months)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Equal(t, 0.0, got*4-float64(int(got*4)), "not a quarter day: %v", got)
			prev = got
		}
	}
}

func TestNewLeaveBalance(t *testing.T) {
	t.Run("remaining days", func(t *testing.T) {
		b := leave.NewLeaveBalance(5, 10.5)

		assert.Equal(t, 5.0, b.DaysTaken)
		assert.Equal(t, 10.5, b.TotalAvailable)
		assert.Equal(t, 5.5, b.DaysRemaining)
	})

	t.Run("overdrawn balance stays negative", func(t *testing.T) {
		b := leave.NewLeaveBalance(12, 8.75)

		assert.Equal(t, -3.25, b.DaysRemaining)
	})
}
