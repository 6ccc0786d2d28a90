package adjustment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindDeduction Kind = "DEDUCTION"
	KindBonus     Kind = "BONUS"
	KindLoan      Kind = "LOAN"
)

func (k Kind) Valid() bool {
	switch k {
	case KindDeduction, KindBonus, KindLoan:
		return true
	}
	return false
}

type Adjustment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_adjustment_company_date"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind        Kind            `gorm:"type:varchar(20);not null"`
	Description string          `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EntryDate   time.Time       `gorm:"type:date;not null;index:idx_adjustment_company_date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Employee *AdjustmentEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
}

type AdjustmentEmployee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (AdjustmentEmployee) TableName() string {
	return "employees"
}
