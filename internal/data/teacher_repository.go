package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type TeacherRepository struct {
	db Querier
}

func NewTeacherRepository(db Querier) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create fails with errdefs.ErrAlreadyExists when the user already has a
// teacher profile.
func (r *TeacherRepository) Create(ctx context.Context, input *model.RepositoryCreateTeacherInput) (*model.Teacher, error) {
	query := `
INSERT INTO teachers (id, user_id, hourly_rate)
VALUES ($1, $2, $3)
RETURNING ` + teacherColumns

	teacher := &model.Teacher{}
	if err := pgxscan.Get(ctx, r.db, teacher, query, input.Id, input.UserId, input.HourlyRate); err != nil {
		return nil, handleError(err)
	}
	return teacher, nil
}

// Upsert creates the profile or updates the hourly rate of the existing one.
func (r *TeacherRepository) Upsert(ctx context.Context, input *model.RepositoryCreateTeacherInput) (*model.Teacher, error) {
	query := `
INSERT INTO teachers (id, user_id, hourly_rate)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET hourly_rate = EXCLUDED.hourly_rate, edited_at = NOW()
RETURNING ` + teacherColumns

	teacher := &model.Teacher{}
	if err := pgxscan.Get(ctx, r.db, teacher, query, input.Id, input.UserId, input.HourlyRate); err != nil {
		return nil, handleError(err)
	}
	return teacher, nil
}

func (r *TeacherRepository) Get(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`

	teacher := &model.Teacher{}
	if err := pgxscan.Get(ctx, r.db, teacher, query, id); err != nil {
		return nil, handleError(err)
	}
	return teacher, nil
}

func (r *TeacherRepository) GetByUser(ctx context.Context, userId uuid.UUID) (*model.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE user_id = $1`

	teacher := &model.Teacher{}
	if err := pgxscan.Get(ctx, r.db, teacher, query, userId); err != nil {
		return nil, handleError(err)
	}
	return teacher, nil
}

func (r *TeacherRepository) Update(ctx context.Context, id uuid.UUID, input *model.UpdateTeacherInput) (*model.Teacher, error) {
	query, args, err := buildTeacherUpdateQuery(id, input)
	if err != nil {
		return nil, err
	}

	teacher := &model.Teacher{}
	if err := pgxscan.Get(ctx, r.db, teacher, query, args...); err != nil {
		return nil, handleError(err)
	}
	return teacher, nil
}

// Delete fails with errdefs.ErrStillReferenced while students or lessons
// point at the teacher.
func (r *TeacherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return handleDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
