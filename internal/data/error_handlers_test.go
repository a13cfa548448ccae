package data

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"NoRows", pgx.ErrNoRows, errdefs.ErrNotFound},
		{"WrappedNoRows", fmt.Errorf("scan: %w", pgx.ErrNoRows), errdefs.ErrNotFound},
		{"Unique", &pgconn.PgError{Code: "23505", ConstraintName: "teachers_user_id_key"}, errdefs.ErrAlreadyExists},
		{"ForeignKey", &pgconn.PgError{Code: "23503", ConstraintName: "lessons_student_id_fkey"}, errdefs.ErrInvalidReference},
		{"Check", &pgconn.PgError{Code: "23514", Message: "duration"}, errdefs.ErrValidation},
		{"BadEnum", &pgconn.PgError{Code: "22P02", Message: "invalid input value for enum"}, errdefs.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, handleError(tc.err), tc.expected)
		})
	}
}

func TestHandleError_Unknown(t *testing.T) {
	cause := errors.New("connection reset")
	err := handleError(cause)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, errdefs.ErrNotFound)
	assert.Nil(t, handleError(nil))
}

func TestHandleDeleteError(t *testing.T) {
	err := handleDeleteError(&pgconn.PgError{Code: "23503", ConstraintName: "students_teacher_id_fkey"})
	assert.ErrorIs(t, err, errdefs.ErrStillReferenced)
	assert.Contains(t, err.Error(), "students_teacher_id_fkey")

	assert.ErrorIs(t, handleDeleteError(pgx.ErrNoRows), errdefs.ErrNotFound)
}
