package salaryplan

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalaryPlan struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name      string     `gorm:"type:varchar(120);not null"`
	Type      PlanType   `gorm:"type:varchar(20);not null"`
	Config    PlanConfig `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Rules falls back to DefaultRules when the stored config no longer validates.
func (p SalaryPlan) Rules() Rules {
	rules, err := BuildRules(p.Type, p.Config)
	if err != nil {
		return DefaultRules()
	}
	return rules
}
