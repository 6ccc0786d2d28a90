package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySale is one employee's sales figure for a month. Month is always the
// first day of that month.
type MonthlySale struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_monthly_sale_employee_month,priority:1"`
	Month      time.Time       `gorm:"type:date;not null;uniqueIndex:uq_monthly_sale_employee_month,priority:2"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee *SaleEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (MonthlySale) TableName() string {
	return "monthly_sales"
}

type SaleEmployee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (SaleEmployee) TableName() string {
	return "employees"
}
