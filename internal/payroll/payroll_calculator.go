package payroll

import (
	"math"

	"go-salon/internal/salaryplan"
)

// NettingInput carries everything needed to net one employee for one window.
// External totals come from persisted adjustments, manual totals from
// line items that have not been saved yet.
type NettingInput struct {
	EmployeeID     string
	EmployeeName   string
	SalaryPlanName string
	Sales          float64
	Components     salaryplan.Components
	ActiveRatio    float64

	ExternalDeductions float64
	ExternalBonuses    float64
	Loans              float64
	ManualDeductions   float64
	ManualBonuses      float64
}

type SalaryCalculation struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	SalaryPlanName string  `json:"salary_plan_name"`
	ActiveRatio    float64 `json:"active_ratio"`
	Sales          int64   `json:"sales"`
	BasicSalary    int64   `json:"basic_salary"`
	Commission     int64   `json:"commission"`
	TargetBonus    int64   `json:"target_bonus"`
	ExtraBonuses   int64   `json:"extra_bonuses"`
	Deductions     int64   `json:"deductions"`
	Loans          int64   `json:"loans"`
	GrossSalary    int64   `json:"gross_salary"`
	TotalSalary    int64   `json:"total_salary"`
	NetSalary      int64   `json:"net_salary"`
}

// Net prorates the basic salary, folds in bonuses, deductions and loans and
// rounds each component exactly once. Gross, total and net are derived from
// the rounded components so gross = basic + commission + target + extra holds.
func Net(in NettingInput) SalaryCalculation {
	basic := roundCurrency(in.Components.BasicSalary * in.ActiveRatio)
	commission := roundCurrency(in.Components.Commission)
	target := roundCurrency(in.Components.TargetBonus)
	extra := roundCurrency(in.ExternalBonuses + in.ManualBonuses)
	deductions := roundCurrency(in.ExternalDeductions + in.ManualDeductions)
	loans := roundCurrency(in.Loans)

	gross := basic + commission + target + extra
	total := gross - deductions

	return SalaryCalculation{
		EmployeeID:     in.EmployeeID,
		EmployeeName:   in.EmployeeName,
		SalaryPlanName: in.SalaryPlanName,
		ActiveRatio:    in.ActiveRatio,
		Sales:          roundCurrency(in.Sales),
		BasicSalary:    basic,
		Commission:     commission,
		TargetBonus:    target,
		ExtraBonuses:   extra,
		Deductions:     deductions,
		Loans:          loans,
		GrossSalary:    gross,
		TotalSalary:    total,
		NetSalary:      total - loans,
	}
}

// roundCurrency rounds half up to a whole currency unit.
func roundCurrency(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Floor(v + 0.5))
}
