package events

import "time"

const (
	SalaryRecordsSavedTopic = "salon.payroll.salary-records.saved.v1"
	SalaryRecordsSavedType  = "payroll.salary_records.saved"
)

type SalaryRecordsSavedEvent struct {
	EventType   string    `json:"event_type"`
	CompanyID   string    `json:"company_id"`
	Month       string    `json:"month"`
	RunNumber   string    `json:"run_number"`
	RecordCount int       `json:"record_count"`
	TotalNet    int64     `json:"total_net"`
	OccurredAt  time.Time `json:"occurred_at"`
}
