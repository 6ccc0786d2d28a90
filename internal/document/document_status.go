package document

import "time"

const (
	StatusExpired      = "EXPIRED"
	StatusExpiringSoon = "EXPIRING_SOON"
	StatusValid        = "VALID"
	StatusNoExpiry     = "NO_EXPIRY"

	// ExpiringSoonDays is the look-ahead window for StatusExpiringSoon.
	ExpiringSoonDays = 30
)

// DaysUntilExpiry counts calendar days from today to the expiry date.
// Negative means overdue, nil means the document never expires.
func DaysUntilExpiry(expiresAt *time.Time, today time.Time) *int {
	if expiresAt == nil {
		return nil
	}
	days := int(truncateToDay(*expiresAt).Sub(truncateToDay(today)).Hours() / 24)
	return &days
}

// ExpiryStatus classifies a document against today. A document is no longer
// valid on its expiry date.
func ExpiryStatus(expiresAt *time.Time, today time.Time) string {
	days := DaysUntilExpiry(expiresAt, today)
	switch {
	case days == nil:
		return StatusNoExpiry
	case *days <= 0:
		return StatusExpired
	case *days <= ExpiringSoonDays:
		return StatusExpiringSoon
	default:
		return StatusValid
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
