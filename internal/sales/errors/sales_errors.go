package saleserrors

import (
	"net/http"

	"go-salon/internal/shared/apperror"
)

var (
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"sales amount must be a non-negative number",
		http.StatusBadRequest,
	)
	ErrDuplicateEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"each employee may appear only once per sales entry",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrSaleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"sales for this employee and month already exist",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
)
