package database

import (
	"errors"

	"github.com/lib/pq"

	apperrors "github.com/Prism-Clinical/prism-graphql-sub006/pkg/errors"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translateWriteError maps driver-level constraint failures onto the
// application error taxonomy so raw database text never reaches callers.
func translateWriteError(err error, what string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return apperrors.NewConflictError(what + " already exists")
		case pqForeignKeyViolation:
			return apperrors.NewValidationError(what + " references an invalid entity")
		}
	}
	return apperrors.NewInternalError("failed to write "+what, err)
}
