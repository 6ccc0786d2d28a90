package payroll

import "go-salon/internal/adjustment"

// ManualEntry holds line items typed in the calculation form that are not
// persisted as adjustments yet.
type ManualEntry struct {
	EmployeeID string                    `json:"employee_id" binding:"required,uuid"`
	Deductions []adjustment.DynamicField `json:"deductions"`
	Bonuses    []adjustment.DynamicField `json:"bonuses"`
}

type CalculatePayrollRequest struct {
	Month  string        `json:"month" binding:"required"`
	Manual []ManualEntry `json:"manual"`
}

type RecalculationRequest struct {
	Month string `json:"month" binding:"required"`
}

type ListSalaryRecordsFilter struct {
	Month      string `form:"month"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
}

type SaveSalaryRecordsResponse struct {
	RunNumber string              `json:"run_number"`
	Month     string              `json:"month"`
	Count     int                 `json:"count"`
	TotalNet  int64               `json:"total_net"`
	Records   []SalaryCalculation `json:"records"`
}

type RecalculationResponse struct {
	Month     string `json:"month"`
	EventID   string `json:"event_id"`
	Status    string `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

type SalaryRecordResponse struct {
	ID             string  `json:"id" csv:"id"`
	RunNumber      string  `json:"run_number" csv:"run_number"`
	Month          string  `json:"month" csv:"month"`
	EmployeeID     string  `json:"employee_id" csv:"employee_id"`
	EmployeeName   string  `json:"employee_name" csv:"employee_name"`
	SalaryPlanName string  `json:"salary_plan_name" csv:"salary_plan"`
	ActiveRatio    float64 `json:"active_ratio" csv:"active_ratio"`
	Sales          int64   `json:"sales" csv:"sales"`
	BasicSalary    int64   `json:"basic_salary" csv:"basic_salary"`
	Commission     int64   `json:"commission" csv:"commission"`
	TargetBonus    int64   `json:"target_bonus" csv:"target_bonus"`
	ExtraBonuses   int64   `json:"extra_bonuses" csv:"extra_bonuses"`
	Deductions     int64   `json:"deductions" csv:"deductions"`
	Loans          int64   `json:"loans" csv:"loans"`
	GrossSalary    int64   `json:"gross_salary" csv:"gross_salary"`
	TotalSalary    int64   `json:"total_salary" csv:"total_salary"`
	NetSalary      int64   `json:"net_salary" csv:"net_salary"`
}
