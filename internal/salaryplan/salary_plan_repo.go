package salaryplan

import (
	"context"
	"database/sql"

	"go-salon/internal/shared/txdb"
	"go-salon/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_plan_repo.go -destination=mock/salary_plan_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, plan *SalaryPlan) error
	FindAllByCompany(ctx context.Context, companyID string) ([]SalaryPlan, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryPlan, error)
	Update(ctx context.Context, plan *SalaryPlan) error
	Delete(ctx context.Context, companyID, id string) error
	CountAssignedEmployees(ctx context.Context, companyID, id string) (int64, error)
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

func (r *repository) Create(ctx context.Context, plan *SalaryPlan) error {
	return r.conn(ctx).Create(plan).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]SalaryPlan, error) {
	var plans []SalaryPlan
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&plans).Error
	return plans, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryPlan, error) {
	var plan SalaryPlan
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *repository) Update(ctx context.Context, plan *SalaryPlan) error {
	return r.conn(ctx).Save(plan).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&SalaryPlan{}, "id = ?", id).Error
}

func (r *repository) CountAssignedEmployees(ctx context.Context, companyID, id string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("salary_plan_id = ?", id).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count, err
}
