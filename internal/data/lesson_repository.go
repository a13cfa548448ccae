package data

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

// Lesson writes lock the teacher row first, so overlap checks for one teacher
// never race with each other.
type LessonRepository struct {
	db Querier
	tx *TxRunner
}

func NewLessonRepository(db Querier) *LessonRepository {
	return &LessonRepository{db: db, tx: NewTxRunner(db)}
}

const overlapQuery = `
SELECT EXISTS (
	SELECT 1 FROM lessons
	WHERE teacher_id = $1
	  AND id <> $2
	  AND status <> 'CANCELLED'
	  AND date < $3
	  AND date + duration * INTERVAL '1 minute' > $4
)`

const pairOverlapQuery = `
SELECT EXISTS (
	SELECT 1 FROM lessons a
	JOIN lessons b ON b.teacher_id = a.teacher_id AND a.id < b.id
	WHERE a.teacher_id = $1
	  AND a.status <> 'CANCELLED'
	  AND b.status <> 'CANCELLED'
	  AND a.date < b.date + b.duration * INTERVAL '1 minute'
	  AND b.date < a.date + a.duration * INTERVAL '1 minute'
)`

func lockTeacher(ctx context.Context, tx pgx.Tx, teacherId uuid.UUID) error {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM teachers WHERE id = $1 FOR UPDATE`, teacherId).Scan(&id)
	if isNotFound(err) {
		return fmt.Errorf("%w: teacher %s", errdefs.ErrInvalidReference, teacherId)
	}
	if err != nil {
		return handleError(err)
	}
	return nil
}

func checkOverlap(ctx context.Context, tx pgx.Tx, teacherId, excludeId uuid.UUID, start, end time.Time) error {
	var overlaps bool
	err := tx.QueryRow(ctx, overlapQuery, teacherId, excludeId, end.UTC(), start.UTC()).Scan(&overlaps)
	if err != nil {
		return handleError(err)
	}
	if overlaps {
		return fmt.Errorf("%w: teacher already has a lesson between %s and %s",
			errdefs.ErrConflict, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}

func checkNoOverlaps(ctx context.Context, tx pgx.Tx, teacherId uuid.UUID) error {
	var overlaps bool
	if err := tx.QueryRow(ctx, pairOverlapQuery, teacherId).Scan(&overlaps); err != nil {
		return handleError(err)
	}
	if overlaps {
		return fmt.Errorf("%w: lessons of teacher %s overlap", errdefs.ErrConflict, teacherId)
	}
	return nil
}

// Create inserts a lesson. A non-cancelled lesson that overlaps another
// non-cancelled lesson of the same teacher fails with errdefs.ErrConflict.
func (r *LessonRepository) Create(ctx context.Context, input *model.RepositoryCreateLessonInput) (*model.Lesson, error) {
	lesson := &model.Lesson{}
	err := r.tx.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if err := lockTeacher(ctx, tx, input.TeacherId); err != nil {
			return err
		}
		if input.Status != model.LessonStatusCancelled {
			if err := checkOverlap(ctx, tx, input.TeacherId, input.Id, input.Date, input.EndsAt()); err != nil {
				return err
			}
		}

		query := `
INSERT INTO lessons (id, student_id, teacher_id, piece_id, date, duration, status, cancel_reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + lessonColumns

		err := pgxscan.Get(ctx, tx, lesson, query,
			input.Id, input.StudentId, input.TeacherId, input.PieceId,
			input.Date.UTC(), input.Duration, string(input.Status), input.CancelReason)
		return handleError(err)
	})
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

// CreateMany inserts all lessons or none. The same overlap rule as Create
// applies, both against stored lessons and within the batch.
func (r *LessonRepository) CreateMany(ctx context.Context, inputs []*model.RepositoryCreateLessonInput) ([]*model.Lesson, error) {
	if len(inputs) == 0 {
		return []*model.Lesson{}, nil
	}

	var teacherIds []uuid.UUID
	now := time.Now().UTC()
	lessons := make([]*model.Lesson, len(inputs))
	rows := make([][]any, len(inputs))
	for i, in := range inputs {
		if !slices.Contains(teacherIds, in.TeacherId) {
			teacherIds = append(teacherIds, in.TeacherId)
		}
		lessons[i] = &model.Lesson{
			Id:           in.Id,
			StudentId:    in.StudentId,
			TeacherId:    in.TeacherId,
			PieceId:      in.PieceId,
			Date:         in.Date.UTC(),
			Duration:     in.Duration,
			Status:       in.Status,
			CancelReason: in.CancelReason,
			CreatedAt:    now,
			EditedAt:     now,
		}
		rows[i] = []any{
			in.Id, in.StudentId, in.TeacherId, in.PieceId, in.Date.UTC(),
			in.Duration, string(in.Status), in.CancelReason, now, now,
		}
	}
	// Fixed lock order keeps concurrent batches from deadlocking.
	slices.SortFunc(teacherIds, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })

	err := r.tx.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, id := range teacherIds {
			if err := lockTeacher(ctx, tx, id); err != nil {
				return err
			}
		}

		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"lessons"},
			[]string{"id", "student_id", "teacher_id", "piece_id", "date", "duration", "status", "cancel_reason", "created_at", "edited_at"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return handleError(err)
		}

		for _, id := range teacherIds {
			if err := checkNoOverlaps(ctx, tx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *LessonRepository) Get(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

	lesson := &model.Lesson{}
	if err := pgxscan.Get(ctx, r.db, lesson, query, id); err != nil {
		return nil, handleError(err)
	}
	return lesson, nil
}

// First returns the first lesson matching filter in its sort order.
func (r *LessonRepository) First(ctx context.Context, filter *model.LessonFilter) (*model.Lesson, error) {
	f := *filter
	f.Limit = 1
	query, args := buildLessonListQuery(&f)

	lesson := &model.Lesson{}
	if err := pgxscan.Get(ctx, r.db, lesson, query, args...); err != nil {
		return nil, handleError(err)
	}
	return lesson, nil
}

func (r *LessonRepository) List(ctx context.Context, filter *model.LessonFilter) ([]*model.Lesson, error) {
	query, args := buildLessonListQuery(filter)

	lessons := make([]*model.Lesson, 0)
	if err := pgxscan.Select(ctx, r.db, &lessons, query, args...); err != nil {
		return nil, handleError(err)
	}
	return lessons, nil
}

func (r *LessonRepository) Count(ctx context.Context, filter *model.LessonFilter) (int64, error) {
	query, args := buildLessonCountQuery(filter)

	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, handleError(err)
	}
	return n, nil
}

func (r *LessonRepository) Aggregate(ctx context.Context, filter *model.LessonFilter) (*model.LessonAggregate, error) {
	query, args := buildLessonAggregateQuery(filter)

	agg := &model.LessonAggregate{}
	if err := pgxscan.Get(ctx, r.db, agg, query, args...); err != nil {
		return nil, handleError(err)
	}
	return agg, nil
}

func (r *LessonRepository) GroupByStatus(ctx context.Context, filter *model.LessonFilter) ([]*model.LessonStatusGroup, error) {
	query, args := buildLessonGroupByStatusQuery(filter)

	groups := make([]*model.LessonStatusGroup, 0)
	if err := pgxscan.Select(ctx, r.db, &groups, query, args...); err != nil {
		return nil, handleError(err)
	}
	return groups, nil
}

// Update applies the non-nil fields of input. When the resulting lesson is
// not cancelled and its interval or status changed, it is checked for
// overlaps like a new lesson.
func (r *LessonRepository) Update(ctx context.Context, id uuid.UUID, input *model.UpdateLessonInput) (*model.Lesson, error) {
	query, args, err := buildLessonUpdateQuery(id, input)
	if err != nil {
		return nil, err
	}

	lesson := &model.Lesson{}
	err = r.tx.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var teacherId uuid.UUID
		err := tx.QueryRow(ctx, `
SELECT t.id FROM teachers t
JOIN lessons l ON l.teacher_id = t.id
WHERE l.id = $1
FOR UPDATE OF t`, id).Scan(&teacherId)
		if err != nil {
			return handleError(err)
		}

		current := &model.Lesson{}
		if err := pgxscan.Get(ctx, tx, current, `SELECT `+lessonColumns+` FROM lessons WHERE id = $1`, id); err != nil {
			return handleError(err)
		}

		next := *current
		if input.Date != nil {
			next.Date = *input.Date
		}
		if input.Duration != nil {
			next.Duration = *input.Duration
		}
		if input.Status != nil {
			next.Status = *input.Status
		}
		moved := input.Date != nil || input.Duration != nil || input.Status != nil
		if moved && next.Status != model.LessonStatusCancelled {
			if err := checkOverlap(ctx, tx, teacherId, id, next.Date, next.EndsAt()); err != nil {
				return err
			}
		}

		return handleError(pgxscan.Get(ctx, tx, lesson, query, args...))
	})
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

// UpdateMany sets status on every lesson of filter.TeacherId matching filter
// and returns how many rows changed. A reason is stored only with CANCELLED.
func (r *LessonRepository) UpdateMany(ctx context.Context, filter *model.LessonFilter, status model.LessonStatus, reason *string) (int64, error) {
	if filter.TeacherId == uuid.Nil {
		return 0, fmt.Errorf("%w: teacher is required for bulk updates", errdefs.ErrValidation)
	}
	query, args := buildLessonUpdateManyQuery(filter, status, reason)

	var affected int64
	err := r.tx.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if err := lockTeacher(ctx, tx, filter.TeacherId); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return handleError(err)
		}
		affected = tag.RowsAffected()
		if status != model.LessonStatusCancelled && affected > 0 {
			return checkNoOverlaps(ctx, tx, filter.TeacherId)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *LessonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return handleDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *LessonRepository) DeleteMany(ctx context.Context, filter *model.LessonFilter) (int64, error) {
	query, args := buildLessonDeleteManyQuery(filter)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, handleDeleteError(err)
	}
	return tag.RowsAffected(), nil
}
