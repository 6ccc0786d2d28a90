package adjustment

import (
	"context"
	"database/sql"
	"time"

	"go-salon/internal/shared/txdb"
	"go-salon/internal/tenant"

	"gorm.io/gorm"
)

type QueryFilter struct {
	From       *time.Time
	To         *time.Time
	Kind       *Kind
	EmployeeID *string
}

//go:generate mockgen -source=adjustment_repo.go -destination=mock/adjustment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateBatch(ctx context.Context, rows []Adjustment) error
	FindAllByCompany(ctx context.Context, companyID string, filter QueryFilter) ([]Adjustment, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Adjustment, error)
	Delete(ctx context.Context, companyID, id string) error
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return txdb.Conn(ctx, r.db, r.tx)
}

func (r *repository) CreateBatch(ctx context.Context, rows []Adjustment) error {
	if len(rows) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&rows).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter QueryFilter) ([]Adjustment, error) {
	db := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID))

	if filter.From != nil {
		db = db.Where("entry_date >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("entry_date < ?", *filter.To)
	}
	if filter.Kind != nil {
		db = db.Where("kind = ?", *filter.Kind)
	}
	if filter.EmployeeID != nil {
		db = db.Where("employee_id = ?", *filter.EmployeeID)
	}

	var rows []Adjustment
	err := db.Order("entry_date DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Adjustment, error) {
	var row Adjustment
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Adjustment{}, "id = ?", id).Error
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
