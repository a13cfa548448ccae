package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type StudentRepository struct {
	db Querier
}

func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, input *model.RepositoryCreateStudentInput) (*model.Student, error) {
	query := `
INSERT INTO students (id, teacher_id, name, avatar, notes)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + studentColumns

	student := &model.Student{}
	err := pgxscan.Get(ctx, r.db, student, query,
		input.Id, input.TeacherId, input.Name, input.Avatar, input.Notes)
	if err != nil {
		return nil, handleError(err)
	}
	return student, nil
}

// CreateMany copies all students in one round trip. Either all rows are
// written or none.
func (r *StudentRepository) CreateMany(ctx context.Context, inputs []*model.RepositoryCreateStudentInput) ([]*model.Student, error) {
	if len(inputs) == 0 {
		return []*model.Student{}, nil
	}

	now := time.Now().UTC()
	students := make([]*model.Student, len(inputs))
	rows := make([][]any, len(inputs))
	for i, in := range inputs {
		students[i] = &model.Student{
			Id:        in.Id,
			TeacherId: in.TeacherId,
			Name:      in.Name,
			Avatar:    in.Avatar,
			Notes:     in.Notes,
			CreatedAt: now,
			EditedAt:  now,
		}
		rows[i] = []any{in.Id, in.TeacherId, in.Name, in.Avatar, in.Notes, now, now}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"students"},
		[]string{"id", "teacher_id", "name", "avatar", "notes", "created_at", "edited_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return nil, handleError(err)
	}
	return students, nil
}

func (r *StudentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student := &model.Student{}
	if err := pgxscan.Get(ctx, r.db, student, query, id); err != nil {
		return nil, handleError(err)
	}
	return student, nil
}

func (r *StudentRepository) List(ctx context.Context, filter *model.StudentFilter) ([]*model.Student, error) {
	query, args := buildStudentListQuery(filter)

	students := make([]*model.Student, 0)
	if err := pgxscan.Select(ctx, r.db, &students, query, args...); err != nil {
		return nil, handleError(err)
	}
	return students, nil
}

func (r *StudentRepository) Count(ctx context.Context, filter *model.StudentFilter) (int64, error) {
	query, args := buildStudentCountQuery(filter)

	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, handleError(err)
	}
	return n, nil
}

func (r *StudentRepository) Update(ctx context.Context, id uuid.UUID, input *model.UpdateStudentInput) (*model.Student, error) {
	query, args, err := buildStudentUpdateQuery(id, input)
	if err != nil {
		return nil, err
	}

	student := &model.Student{}
	if err := pgxscan.Get(ctx, r.db, student, query, args...); err != nil {
		return nil, handleError(err)
	}
	return student, nil
}

// Delete fails with errdefs.ErrStillReferenced while lessons point at the
// student.
func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return handleDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
