package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_number,priority:1"`
	EmployeeNumber   string     `gorm:"not null;uniqueIndex:uq_employee_number,priority:2"`
	FullName         string     `gorm:"not null"`
	Email            string     `gorm:"uniqueIndex:uq_employee_email,where:email <> ''"`
	Phone            string
	StartDate        *time.Time `gorm:"type:date"`
	EndDate          *time.Time `gorm:"type:date"`
	SalaryPlanID     *uuid.UUID `gorm:"type:uuid;index"`
	AnnualLeaveQuota *float64   `gorm:"type:numeric(5,2)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	SalaryPlan *EmployeeSalaryPlan `gorm:"foreignKey:SalaryPlanID;references:ID"`
}

// EmployeeSalaryPlan is the slice of salary_plans needed to label a roster row.
type EmployeeSalaryPlan struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Type string
}

func (EmployeeSalaryPlan) TableName() string {
	return "salary_plans"
}
