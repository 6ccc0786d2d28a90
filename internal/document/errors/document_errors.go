package documenterrors

import (
	"net/http"

	"go-salon/internal/shared/apperror"
)

var (
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Document not found",
		http.StatusNotFound,
	)
	ErrDocumentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Document with the same type and number already exists for this employee",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidBulkAction = apperror.New(
		apperror.CodeInvalidInput,
		"Bulk action must be DELETE or RENEW",
		http.StatusBadRequest,
	)
	ErrExpiryRequired = apperror.New(
		apperror.CodeInvalidInput,
		"expires_at is required to renew documents",
		http.StatusBadRequest,
	)
	ErrBulkDocumentsMissing = apperror.New(
		apperror.CodeNotFound,
		"One or more documents were not found",
		http.StatusNotFound,
	)
)
