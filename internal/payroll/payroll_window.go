package payroll

import (
	"strings"
	"time"

	payrollerrors "go-salon/internal/payroll/errors"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// PayrollWindow is one calendar month in UTC, half-open [Start, End).
type PayrollWindow struct {
	Start     time.Time
	End       time.Time
	StartDate string
	EndDate   string
}

// GetPayrollWindow resolves a YYYY-MM token. Malformed input is rejected
// with ErrInvalidMonth, it is never clamped to the current month.
func GetPayrollWindow(month string) (PayrollWindow, error) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(month))
	if err != nil {
		return PayrollWindow{}, payrollerrors.ErrInvalidMonth
	}

	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	return PayrollWindow{
		Start:     start,
		End:       end,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	}, nil
}

func (w PayrollWindow) Month() string {
	return w.Start.Format(monthLayout)
}

func (w PayrollWindow) Days() float64 {
	return w.End.Sub(w.Start).Hours() / 24
}

// IsActiveInWindow reports whether an employment interval touches the window.
// Nil bounds are open in that direction.
func IsActiveInWindow(start, end *time.Time, w PayrollWindow) bool {
	if start != nil && start.After(w.End) {
		return false
	}
	if end != nil && !end.After(w.Start) {
		return false
	}
	return true
}

// ActiveWorkdayRatio is the share of the window covered by [start, end),
// measured in days. The result is always within [0, 1].
func ActiveWorkdayRatio(start, end *time.Time, windowStart, windowEnd time.Time) float64 {
	windowDays := windowEnd.Sub(windowStart).Hours() / 24
	if windowDays <= 0 {
		return 0
	}

	from := windowStart
	if start != nil && start.After(from) {
		from = *start
	}
	to := windowEnd
	if end != nil && end.Before(to) {
		to = *end
	}
	if !to.After(from) {
		return 0
	}

	ratio := to.Sub(from).Hours() / 24 / windowDays
	if ratio > 1 {
		return 1
	}
	return ratio
}
