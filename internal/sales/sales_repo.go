package sales

import (
	"context"
	"database/sql"
	"time"

	"go-salon/internal/shared/txdb"
	"go-salon/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=sales_repo.go -destination=mock/sales_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, rows []MonthlySale) error
	FindByMonth(ctx context.Context, companyID string, month time.Time) ([]MonthlySale, error)
	CountEmployeesInCompany(ctx context.Context, companyID string, employeeIDs []string) (int64, error)
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

func (r *repository) Upsert(ctx context.Context, rows []MonthlySale) error {
	if len(rows) == 0 {
		return nil
	}

	return r.conn(ctx).
		Omit("Employee").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(&rows).Error
}

func (r *repository) FindByMonth(ctx context.Context, companyID string, month time.Time) ([]MonthlySale, error) {
	var rows []MonthlySale
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		Where("month = ?", month.Format("2006-01-02")).
		Order("amount DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountEmployeesInCompany(ctx context.Context, companyID string, employeeIDs []string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Where("id IN ?", employeeIDs).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count, err
}
