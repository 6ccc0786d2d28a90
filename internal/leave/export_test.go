package leave

import "time"

// SetClock pins "today" for accrual and approval timestamps.
func SetClock(s Service, now func() time.Time) {
	s.(*service).now = now
}
