package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-salon/internal/adjustment"
	"go-salon/internal/shared/txdb"
	"go-salon/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FetchActiveEmployees(ctx context.Context, companyID string, window PayrollWindow) ([]PayrollEmployee, error)
	FetchFinancialTotals(ctx context.Context, companyID string, employeeIDs []string, window PayrollWindow) (map[string]FinancialTotals, error)
	FetchMonthlySales(ctx context.Context, companyID string, employeeIDs []string, window PayrollWindow) (map[string]float64, error)
	SaveSalaryCalculations(ctx context.Context, rows []SalaryRecord) error
	FindAllByCompany(ctx context.Context, companyID string, month *time.Time, employeeID *string) ([]SalaryRecord, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryRecord, error)
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

func (r *repository) FetchActiveEmployees(ctx context.Context, companyID string, window PayrollWindow) ([]PayrollEmployee, error) {
	var employees []PayrollEmployee
	err := r.conn(ctx).
		Preload("SalaryPlan").
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Where("(start_date IS NULL OR start_date <= ?)", window.EndDate).
		Where("(end_date IS NULL OR end_date > ?)", window.StartDate).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

type adjustmentTotalRow struct {
	EmployeeID string
	Kind       string
	Total      float64
}

func (r *repository) FetchFinancialTotals(
	ctx context.Context,
	companyID string,
	employeeIDs []string,
	window PayrollWindow,
) (map[string]FinancialTotals, error) {
	totals := make(map[string]FinancialTotals, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return totals, nil
	}

	var rows []adjustmentTotalRow
	err := r.conn(ctx).
		Table("adjustments").
		Select("employee_id::text AS employee_id, kind, COALESCE(SUM(amount), 0)::float8 AS total").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id IN ?", employeeIDs).
		Where("entry_date >= ? AND entry_date < ?", window.StartDate, window.EndDate).
		Group("employee_id, kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		t := totals[row.EmployeeID]
		switch adjustment.Kind(row.Kind) {
		case adjustment.KindDeduction:
			t.Deductions += row.Total
		case adjustment.KindBonus:
			t.Bonuses += row.Total
		case adjustment.KindLoan:
			t.Loans += row.Total
		}
		totals[row.EmployeeID] = t
	}

	return totals, nil
}

type salesTotalRow struct {
	EmployeeID string
	Total      float64
}

func (r *repository) FetchMonthlySales(
	ctx context.Context,
	companyID string,
	employeeIDs []string,
	window PayrollWindow,
) (map[string]float64, error) {
	sales := make(map[string]float64, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return sales, nil
	}

	var rows []salesTotalRow
	err := r.conn(ctx).
		Table("monthly_sales").
		Select("employee_id::text AS employee_id, COALESCE(SUM(amount), 0)::float8 AS total").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id IN ?", employeeIDs).
		Where("month >= ? AND month < ?", window.StartDate, window.EndDate).
		Group("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		sales[row.EmployeeID] = row.Total
	}
	return sales, nil
}

// SaveSalaryCalculations upserts on (company_id, employee_id, month).
func (r *repository) SaveSalaryCalculations(ctx context.Context, rows []SalaryRecord) error {
	if len(rows) == 0 {
		return nil
	}

	return r.conn(ctx).
		Omit("Employee").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}, {Name: "employee_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"run_number", "salary_plan_name", "active_ratio", "sales",
				"basic_salary", "commission", "target_bonus", "extra_bonuses",
				"deductions", "loans", "gross_salary", "total_salary", "net_salary",
				"updated_at",
			}),
		}).
		Create(&rows).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, month *time.Time, employeeID *string) ([]SalaryRecord, error) {
	db := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID))

	if month != nil {
		db = db.Where("month = ?", month.Format(dateLayout))
	}
	if employeeID != nil {
		db = db.Where("employee_id = ?", *employeeID)
	}

	var records []SalaryRecord
	err := db.Order("month DESC, created_at ASC").Find(&records).Error
	return records, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
