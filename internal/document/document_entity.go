package document

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_documents_company_expiry;uniqueIndex:uq_document_number"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_document_number"`

	DocumentType   string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_document_number"`
	DocumentNumber string     `gorm:"type:varchar(100);uniqueIndex:uq_document_number,where:document_number <> ''"`
	ExpiresAt      *time.Time `gorm:"type:date;index:idx_documents_company_expiry"`
	Notes          string     `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Employee *DocumentEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
}

type DocumentEmployee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (DocumentEmployee) TableName() string {
	return "employees"
}
