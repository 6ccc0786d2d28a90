package payroll

import (
	"time"

	"go-salon/internal/salaryplan"

	"github.com/google/uuid"
)

// SalaryRecord is a persisted SalaryCalculation. A recalculation for the
// same employee and month replaces the previous row.
type SalaryRecord struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_salary_record_month,priority:1"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_salary_record_month,priority:2"`
	Month      time.Time        `gorm:"type:date;not null;uniqueIndex:uq_salary_record_month,priority:3"`
	Employee   *PayrollEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
	RunNumber  string           `gorm:"type:varchar(30);not null;index"`

	SalaryPlanName string  `gorm:"type:varchar(120)"`
	ActiveRatio    float64 `gorm:"type:numeric(6,4);not null;default:0"`

	// Whole currency units, rounded once at netting time.
	Sales        int64 `gorm:"type:bigint;not null;default:0"`
	BasicSalary  int64 `gorm:"type:bigint;not null;default:0"`
	Commission   int64 `gorm:"type:bigint;not null;default:0"`
	TargetBonus  int64 `gorm:"type:bigint;not null;default:0"`
	ExtraBonuses int64 `gorm:"type:bigint;not null;default:0"`
	Deductions   int64 `gorm:"type:bigint;not null;default:0"`
	Loans        int64 `gorm:"type:bigint;not null;default:0"`
	GrossSalary  int64 `gorm:"type:bigint;not null;default:0"`
	TotalSalary  int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary    int64 `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollEmployee is the read model of an employee used by the calculation.
type PayrollEmployee struct {
	ID           uuid.UUID              `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID              `gorm:"type:uuid"`
	FullName     string                 `gorm:"column:full_name"`
	StartDate    *time.Time             `gorm:"type:date"`
	EndDate      *time.Time             `gorm:"type:date"`
	SalaryPlanID *uuid.UUID             `gorm:"type:uuid"`
	SalaryPlan   *salaryplan.SalaryPlan `gorm:"foreignKey:SalaryPlanID;references:ID"`
}

func (PayrollEmployee) TableName() string {
	return "employees"
}

// PlanName is the assigned plan name, or "Default" when none is assigned.
func (e PayrollEmployee) PlanName() string {
	if e.SalaryPlan == nil {
		return "Default"
	}
	return e.SalaryPlan.Name
}

// Rules never returns nil.
func (e PayrollEmployee) Rules() salaryplan.Rules {
	if e.SalaryPlan == nil {
		return salaryplan.DefaultRules()
	}
	return e.SalaryPlan.Rules()
}

// FinancialTotals are persisted adjustment sums for one employee in a window.
type FinancialTotals struct {
	Deductions float64
	Bonuses    float64
	Loans      float64
}
