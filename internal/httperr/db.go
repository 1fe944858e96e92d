package httperr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// IsExclusionConflict detects a rejected row from an EXCLUDE constraint,
// e.g. two overlapping appointments for the same employee.
func IsExclusionConflict(err error) bool {
	return pgCode(err) == pgExclusionViolation
}

// FromDB translates a data-store error into the package taxonomy.
// notFoundCode is used when the query matched no row.
func FromDB(err error, notFoundCode string) error {
	if err == nil {
		return nil
	}

	var he *Error
	var be BusinessError
	if errors.As(err, &he) || errors.As(err, &be) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound(notFoundCode, "Registro no encontrado.")
	case IsUniqueViolation(err):
		return ErrConflict("duplicate_record", "El registro ya existe.")
	case IsExclusionConflict(err):
		return ErrConflict("time_conflict", "Conflicto de horario.")
	case pgCode(err) == pgForeignKeyViolation:
		return ErrValidation("invalid_reference", "El registro relacionado no existe.")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrTransient(err)
	case pgCode(err) != "":
		return &Error{Kind: KindInternal, Code: "database_error", Message: "Error en la base de datos.", Err: err}
	default:
		return ErrTransient(err)
	}
}
