package sales_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	payrollerrors "go-salon/internal/payroll/errors"
	"go-salon/internal/sales"
	saleserrors "go-salon/internal/sales/errors"
	salesMock "go-salon/internal/sales/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service sales.Service
	repo    *salesMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := salesMock.NewMockRepository(ctrl)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: sales.NewService(db, repo),
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestSalesService_Upsert(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	empA := uuid.NewString()
	empB := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountEmployeesInCompany(ctx, companyID, []string{empA, empB}).Return(int64(2), nil)
		deps.repo.EXPECT().
			Upsert(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, rows []sales.MonthlySale) error {
				assert.Len(t, rows, 2)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rows[0].Month)
				assert.True(t, decimal.NewFromInt(12500).Equal(rows[0].Amount))
				assert.True(t, decimal.RequireFromString("980.25").Equal(rows[1].Amount))
				return nil
			})

		resp, err := deps.service.Upsert(ctx, companyID, sales.UpsertSalesRequest{
			Month: "2024-01",
			Entries: []sales.SaleEntry{
				{EmployeeID: empA, Amount: "12,500"},
				{EmployeeID: empB, Amount: "980.25"},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-01", resp.Month)
		assert.Equal(t, "13480.25", resp.Total)
		assert.Equal(t, "12500.00", resp.Items[0].Amount)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("foreign employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountEmployeesInCompany(ctx, companyID, gomock.Any()).Return(int64(1), nil)

		_, err := deps.service.Upsert(ctx, companyID, sales.UpsertSalesRequest{
			Month:   "2024-01",
			Entries: []sales.SaleEntry{{EmployeeID: empA, Amount: "1"}, {EmployeeID: empB, Amount: "2"}},
		})

		assert.ErrorIs(t, err, saleserrors.ErrEmployeeNotInCompany)
	})

	t.Run("rejected before any transaction", func(t *testing.T) {
		cases := []struct {
			name string
			req  sales.UpsertSalesRequest
			err  error
		}{
			{
				name: "negative amount",
				req:  sales.UpsertSalesRequest{Month: "2024-01", Entries: []sales.SaleEntry{{EmployeeID: empA, Amount: "-10"}}},
				err:  saleserrors.ErrInvalidAmount,
			},
			{
				name: "not a number",
				req:  sales.UpsertSalesRequest{Month: "2024-01", Entries: []sales.SaleEntry{{EmployeeID: empA, Amount: "12a"}}},
				err:  saleserrors.ErrInvalidAmount,
			},
			{
				name: "duplicate employee",
				req:  sales.UpsertSalesRequest{Month: "2024-01", Entries: []sales.SaleEntry{{EmployeeID: empA, Amount: "1"}, {EmployeeID: empA, Amount: "2"}}},
				err:  saleserrors.ErrDuplicateEmployee,
			},
			{
				name: "bad month",
				req:  sales.UpsertSalesRequest{Month: "2024-00", Entries: []sales.SaleEntry{{EmployeeID: empA, Amount: "1"}}},
				err:  payrollerrors.ErrInvalidMonth,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				deps := setupServiceTest(t)
				defer deps.db.Close()

				_, err := deps.service.Upsert(ctx, companyID, tc.req)

				assert.ErrorIs(t, err, tc.err)
				assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			})
		}
	})

	t.Run("unique violation is mapped", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountEmployeesInCompany(ctx, companyID, gomock.Any()).Return(int64(1), nil)
		deps.repo.EXPECT().
			Upsert(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_monthly_sale_employee_month"})

		_, err := deps.service.Upsert(ctx, companyID, sales.UpsertSalesRequest{
			Month:   "2024-01",
			Entries: []sales.SaleEntry{{EmployeeID: empA, Amount: "1"}},
		})

		assert.ErrorIs(t, err, saleserrors.ErrSaleAlreadyExists)
	})
}

func TestSalesService_GetByMonth(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.NewString()
	month := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	deps.repo.EXPECT().
		FindByMonth(ctx, companyID, month).
		Return([]sales.MonthlySale{
			{ID: uuid.New(), EmployeeID: uuid.New(), Amount: decimal.NewFromInt(100), Employee: &sales.SaleEmployee{FullName: "Rina"}},
			{ID: uuid.New(), EmployeeID: uuid.New(), Amount: decimal.RequireFromString("50.50")},
		}, nil)

	resp, err := deps.service.GetByMonth(ctx, companyID, "2024-02")

	assert.NoError(t, err)
	assert.Equal(t, "150.50", resp.Total)
	assert.Equal(t, "Rina", resp.Items[0].EmployeeName)
	assert.Equal(t, "2024-02", resp.Items[1].Month)
}
