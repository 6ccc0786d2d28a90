package salaryplanerrors

import (
	"net/http"

	"go-salon/internal/shared/apperror"
)

var (
	ErrSalaryPlanNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary plan not found",
		http.StatusNotFound,
	)
	ErrSalaryPlanNameExists = apperror.New(
		apperror.CodeConflict,
		"salary plan with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidPlanType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salary plan type, expected FIXED, COMMISSION or TIERED",
		http.StatusBadRequest,
	)
	ErrInvalidPlanConfig = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salary plan config",
		http.StatusBadRequest,
	)
	ErrSalaryPlanInUse = apperror.New(
		apperror.CodeInvalidState,
		"salary plan is still assigned to employees",
		http.StatusConflict,
	)
)
