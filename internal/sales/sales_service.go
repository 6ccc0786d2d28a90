package sales

import (
	"context"
	"database/sql"
	"strings"

	"go-salon/internal/payroll"
	saleserrors "go-salon/internal/sales/errors"
	"go-salon/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=sales_service.go -destination=mock/sales_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, companyID string, req UpsertSalesRequest) (MonthlySalesResponse, error)
	GetByMonth(ctx context.Context, companyID, month string) (MonthlySalesResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("sales.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sales.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Upsert writes the month's sales for every entry, replacing earlier figures.
func (s *service) Upsert(ctx context.Context, companyID string, req UpsertSalesRequest) (MonthlySalesResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	window, err := payroll.GetPayrollWindow(req.Month)
	if err != nil {
		return MonthlySalesResponse{}, err
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return MonthlySalesResponse{}, saleserrors.ErrInvalidCompanyID
	}

	seen := make(map[string]struct{}, len(req.Entries))
	employeeIDs := make([]string, 0, len(req.Entries))
	rows := make([]MonthlySale, 0, len(req.Entries))
	for _, e := range req.Entries {
		employeeUUID, err := uuid.Parse(e.EmployeeID)
		if err != nil {
			return MonthlySalesResponse{}, saleserrors.ErrEmployeeNotInCompany
		}
		if _, dup := seen[employeeUUID.String()]; dup {
			return MonthlySalesResponse{}, saleserrors.ErrDuplicateEmployee
		}
		seen[employeeUUID.String()] = struct{}{}

		amount, err := parseAmount(e.Amount)
		if err != nil {
			return MonthlySalesResponse{}, err
		}

		employeeIDs = append(employeeIDs, employeeUUID.String())
		rows = append(rows, MonthlySale{
			ID:         uuid.New(),
			CompanyID:  companyUUID,
			EmployeeID: employeeUUID,
			Month:      window.Start,
			Amount:     amount,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MonthlySalesResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	count, err := qtx.CountEmployeesInCompany(ctx, companyID, employeeIDs)
	if err != nil {
		return MonthlySalesResponse{}, err
	}
	if count != int64(len(employeeIDs)) {
		return MonthlySalesResponse{}, saleserrors.ErrEmployeeNotInCompany
	}

	if err := qtx.Upsert(ctx, rows); err != nil {
		log.Error("upsert monthly sales failed", zap.String("month", window.Month()), zap.Error(err))
		return MonthlySalesResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return MonthlySalesResponse{}, err
	}

	log.Info("monthly sales saved", zap.String("month", window.Month()), zap.Int("entries", len(rows)))

	return mapToMonthlyResponse(window.Month(), rows), nil
}

func (s *service) GetByMonth(ctx context.Context, companyID, month string) (MonthlySalesResponse, error) {
	window, err := payroll.GetPayrollWindow(month)
	if err != nil {
		return MonthlySalesResponse{}, err
	}

	rows, err := s.repo.FindByMonth(ctx, companyID, window.Start)
	if err != nil {
		return MonthlySalesResponse{}, mapRepositoryError(err)
	}

	return mapToMonthlyResponse(window.Month(), rows), nil
}

// parseAmount accepts digits with optional thousands separators.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, saleserrors.ErrInvalidAmount
	}
	return amount.Round(2), nil
}

func mapToMonthlyResponse(month string, rows []MonthlySale) MonthlySalesResponse {
	total := decimal.Zero
	items := make([]SaleResponse, len(rows))
	for i, r := range rows {
		total = total.Add(r.Amount)
		items[i] = SaleResponse{
			ID:         r.ID.String(),
			EmployeeID: r.EmployeeID.String(),
			Month:      month,
			Amount:     r.Amount.StringFixed(2),
		}
		if r.Employee != nil {
			items[i].EmployeeName = r.Employee.FullName
		}
	}

	return MonthlySalesResponse{
		Month: month,
		Total: total.StringFixed(2),
		Items: items,
	}
}
