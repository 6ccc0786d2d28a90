package events

import "time"

const (
	PayrollRecalculationRequestedTopic = "salon.payroll.recalculation.requested.v1"
	PayrollRecalculationRequestedType  = "payroll.recalculation.requested"
)

// PayrollRecalculationRequestedEvent asks the consumer to recalculate and
// persist salary records for one company month.
type PayrollRecalculationRequestedEvent struct {
	EventType  string    `json:"event_type"`
	CompanyID  string    `json:"company_id"`
	Month      string    `json:"month"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
