package document

import (
	"errors"
	"strings"

	documenterrors "go-salon/internal/document/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return documenterrors.ErrDocumentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return documenterrors.ErrDocumentAlreadyExists
		case "23503":
			return documenterrors.ErrEmployeeNotFound
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "uq_document_number") {
		return documenterrors.ErrDocumentAlreadyExists
	}

	return err
}
