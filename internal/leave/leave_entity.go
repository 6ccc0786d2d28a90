package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_company_status"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType string    `gorm:"type:varchar(30);not null;default:'ANNUAL'"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text"`

	Status          string  `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leaves_company_status"`
	RejectionReason *string `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`

	Employee *LeaveEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
}

// LeaveEmployee carries the roster fields accrual depends on.
type LeaveEmployee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID  `gorm:"type:uuid"`
	FullName         string     `gorm:"column:full_name"`
	StartDate        *time.Time `gorm:"column:start_date"`
	AnnualLeaveQuota *float64   `gorm:"column:annual_leave_quota"`
}

func (LeaveEmployee) TableName() string {
	return "employees"
}

// Quota falls back to DefaultAnnualLeaveQuota when none is configured.
func (e LeaveEmployee) Quota() float64 {
	if e.AnnualLeaveQuota == nil {
		return DefaultAnnualLeaveQuota
	}
	return *e.AnnualLeaveQuota
}
