package payrollerrors

import (
	"net/http"

	"go-salon/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidManualEntry = apperror.New(
		apperror.CodeInvalidInput,
		"manual entry references an employee that is not active in this month",
		http.StatusBadRequest,
	)
	ErrNegativeManualAmount = apperror.New(
		apperror.CodeInvalidInput,
		"manual deduction and bonus amounts cannot be negative",
		http.StatusBadRequest,
	)
	ErrSalaryRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrRecalculationUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"async recalculation is not configured",
		http.StatusServiceUnavailable,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to export salary records",
		http.StatusInternalServerError,
	)
)
