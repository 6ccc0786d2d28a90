package payroll

import (
	"errors"

	payrollerrors "go-salon/internal/payroll/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrSalaryRecordNotFound
	}

	return err
}
