package leave

import (
	"math"
	"time"
)

// DefaultAnnualLeaveQuota applies to employees without a configured quota.
const DefaultAnnualLeaveQuota = 21.0

// CalculateAccruedLeave returns the leave days an employee has earned by today.
// Accrual is quota/12 per calendar month elapsed (day of month ignored),
// rounded to the nearest quarter day. It is not capped at the annual quota.
// A nil start date means fully accrued; a start date after today earns nothing.
func CalculateAccruedLeave(startDate *time.Time, annualQuota float64, today time.Time) float64 {
	if startDate == nil {
		return annualQuota
	}
	if startDate.After(today) {
		return 0
	}

	months := (today.Year()-startDate.Year())*12 + int(today.Month()) - int(startDate.Month())
	raw := annualQuota / 12 * float64(months)

	return math.Round(raw*4) / 4
}

// LeaveBalance is the accrued allowance against approved annual leave.
// DaysRemaining goes negative when the employee is overdrawn.
type LeaveBalance struct {
	DaysTaken      float64 `json:"days_taken"`
	TotalAvailable float64 `json:"total_available"`
	DaysRemaining  float64 `json:"days_remaining"`
}

func NewLeaveBalance(daysTaken, totalAvailable float64) LeaveBalance {
	return LeaveBalance{
		DaysTaken:      daysTaken,
		TotalAvailable: totalAvailable,
		DaysRemaining:  totalAvailable - daysTaken,
	}
}
