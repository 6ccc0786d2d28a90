package leave

import (
	"context"
	"database/sql"
	"time"

	"go-salon/internal/shared/txdb"
	"go-salon/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAllByCompany(ctx context.Context, companyID string, filter ListLeavesFilter) ([]Leave, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, companyID, id string) error
	FindEmployee(ctx context.Context, companyID, employeeID string) (*LeaveEmployee, error)
	FindEmployees(ctx context.Context, companyID string) ([]LeaveEmployee, error)
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	SumApprovedDays(ctx context.Context, companyID string, employeeIDs []string, leaveType string) (map[string]float64, error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Omit("Employee").Create(l).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter ListLeavesFilter) ([]Leave, error) {
	q := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.LeaveType != "" {
		q = q.Where("leave_type = ?", filter.LeaveType)
	}

	var leaves []Leave
	err := q.Order("start_date DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error) {
	var l Leave
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Omit("Employee").Save(l).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Leave{}, "id = ?", id).Error
}

func (r *repository) FindEmployee(ctx context.Context, companyID, employeeID string) (*LeaveEmployee, error) {
	var e LeaveEmployee
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		First(&e, "id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindEmployees(ctx context.Context, companyID string) ([]LeaveEmployee, error) {
	var emps []LeaveEmployee
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Order("full_name ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.conn(ctx).
		Model(&Leave{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

// SumApprovedDays totals approved leave days per employee across all time.
func (r *repository) SumApprovedDays(ctx context.Context, companyID string, employeeIDs []string, leaveType string) (map[string]float64, error) {
	var rows []struct {
		EmployeeID string
		Days       float64
	}

	err := r.conn(ctx).
		Model(&Leave{}).
		Select("employee_id::text AS employee_id, COALESCE(SUM(total_days), 0) AS days").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id IN ?", employeeIDs).
		Where("status = ?", StatusApproved).
		Where("leave_type = ?", leaveType).
		Group("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	taken := make(map[string]float64, len(rows))
	for _, row := range rows {
		taken[row.EmployeeID] = row.Days
	}
	return taken, nil
}
