package data

import (
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidTextRepr     = "22P02"
)

func pgErrorCode(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err)
}

// handleError maps driver errors onto errdefs for inserts, updates and reads.
func handleError(err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return errdefs.ErrNotFound
	}
	if pgErr, ok := pgErrorCode(err); ok {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", errdefs.ErrAlreadyExists, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", errdefs.ErrInvalidReference, pgErr.ConstraintName)
		case codeCheckViolation, codeNotNullViolation, codeInvalidTextRepr:
			return fmt.Errorf("%w: %s", errdefs.ErrValidation, pgErr.Message)
		}
	}
	return fmt.Errorf("repository error: %w", err)
}

// handleDeleteError differs from handleError in that a foreign-key violation
// on delete means some other row still points at the one being removed.
func handleDeleteError(err error) error {
	if pgErr, ok := pgErrorCode(err); ok && pgErr.Code == codeForeignKeyViolation {
		return fmt.Errorf("%w: %s", errdefs.ErrStillReferenced, pgErr.ConstraintName)
	}
	return handleError(err)
}
