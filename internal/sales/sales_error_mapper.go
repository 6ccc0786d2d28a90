package sales

import (
	"errors"

	saleserrors "go-salon/internal/sales/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_monthly_sale_employee_month":
			return saleserrors.ErrSaleAlreadyExists
		case pgErr.Code == "23503":
			return saleserrors.ErrEmployeeNotInCompany
		}
	}

	return err
}
