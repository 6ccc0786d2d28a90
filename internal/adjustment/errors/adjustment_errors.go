package adjustmenterrors

import (
	"net/http"

	"go-salon/internal/shared/apperror"
)

var (
	ErrAdjustmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"adjustment not found",
		http.StatusNotFound,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"invalid adjustment kind, expected DEDUCTION, BONUS or LOAN",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidEntryDate = apperror.New(
		apperror.CodeInvalidInput,
		"entry date must be YYYY-MM-DD inside the selected month",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment amount cannot be negative",
		http.StatusBadRequest,
	)
	ErrEmptyBatch = apperror.New(
		apperror.CodeInvalidInput,
		"batch has no rows with an amount",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrRowOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"row index out of range",
		http.StatusBadRequest,
	)
	ErrUnknownFieldKey = apperror.New(
		apperror.CodeInvalidInput,
		"unknown field, expected description, amount or date",
		http.StatusBadRequest,
	)
	ErrDraftUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"draft storage is unavailable",
		http.StatusServiceUnavailable,
	)
)
