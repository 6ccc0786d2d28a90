package salaryplan

import (
	"errors"
	"strings"

	salaryplanerrors "go-salon/internal/salaryplan/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryplanerrors.ErrSalaryPlanNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_plan_name" {
		return salaryplanerrors.ErrSalaryPlanNameExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_plan_name") {
		return salaryplanerrors.ErrSalaryPlanNameExists
	}

	return err
}
