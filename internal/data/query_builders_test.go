package data

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

func TestBuildUserUpdateQuery(t *testing.T) {
	id := uuid.New()
	name := "Clara"

	query, args, err := buildUserUpdateQuery(id, &model.UpdateUserInput{Name: &name})
	require.NoError(t, err)
	assert.Contains(t, query, "UPDATE users")
	assert.Contains(t, query, "SET name = $1, edited_at = NOW()")
	assert.Contains(t, query, "WHERE id = $2")
	assert.Equal(t, []any{&name, id}, args)
}

func TestBuildUpdateQuery_NoFields(t *testing.T) {
	id := uuid.New()

	_, _, err := buildUserUpdateQuery(id, &model.UpdateUserInput{})
	assert.ErrorIs(t, err, errdefs.ErrNoFieldsToUpdate)

	_, _, err = buildTeacherUpdateQuery(id, &model.UpdateTeacherInput{})
	assert.ErrorIs(t, err, errdefs.ErrNoFieldsToUpdate)

	_, _, err = buildStudentUpdateQuery(id, &model.UpdateStudentInput{})
	assert.ErrorIs(t, err, errdefs.ErrNoFieldsToUpdate)

	_, _, err = buildPieceUpdateQuery(id, &model.UpdatePieceInput{})
	assert.ErrorIs(t, err, errdefs.ErrNoFieldsToUpdate)

	_, _, err = buildLessonUpdateQuery(id, &model.UpdateLessonInput{})
	assert.ErrorIs(t, err, errdefs.ErrNoFieldsToUpdate)
}

func TestBuildLessonUpdateQuery(t *testing.T) {
	id := uuid.New()
	status := model.LessonStatusComplete
	duration := int32(45)

	t.Run("ClearsNullableColumns", func(t *testing.T) {
		query, args, err := buildLessonUpdateQuery(id, &model.UpdateLessonInput{
			ClearPiece:        true,
			Status:            &status,
			ClearCancelReason: true,
		})
		require.NoError(t, err)
		assert.Contains(t, query, "piece_id = NULL")
		assert.Contains(t, query, "status = $1")
		assert.Contains(t, query, "cancel_reason = NULL")
		assert.Contains(t, query, "WHERE id = $2")
		assert.Equal(t, []any{"COMPLETE", id}, args)
	})

	t.Run("SetsValues", func(t *testing.T) {
		date := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
		query, args, err := buildLessonUpdateQuery(id, &model.UpdateLessonInput{
			Date:     &date,
			Duration: &duration,
		})
		require.NoError(t, err)
		assert.Contains(t, query, "date = $1, duration = $2")
		assert.Len(t, args, 3)
		assert.Equal(t, id, args[2])
	})
}

func TestBuildLessonListQuery(t *testing.T) {
	teacherId := uuid.New()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query, args := buildLessonListQuery(&model.LessonFilter{
		TeacherId: teacherId,
		Statuses:  []model.LessonStatus{model.LessonStatusComplete, model.LessonStatusMakeup},
		From:      &from,
		To:        &to,
		Limit:     20,
		Offset:    40,
		Desc:      true,
	})

	assert.Contains(t, query, "FROM lessons WHERE teacher_id = $1 AND status = ANY($2::lesson_status[]) AND date >= $3 AND date < $4")
	assert.Contains(t, query, "ORDER BY date DESC, id DESC LIMIT $5 OFFSET $6")
	assert.Equal(t, []any{teacherId, []string{"COMPLETE", "MAKEUP"}, from, to, 20, 40}, args)
}

func TestBuildLessonListQuery_NoFilter(t *testing.T) {
	query, args := buildLessonListQuery(&model.LessonFilter{})
	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "LIMIT")
	assert.Empty(t, args)
}

func TestBuildLessonUpdateManyQuery(t *testing.T) {
	teacherId := uuid.New()
	reason := "sick"

	query, args := buildLessonUpdateManyQuery(&model.LessonFilter{TeacherId: teacherId}, model.LessonStatusCancelled, &reason)
	assert.Equal(t, "UPDATE lessons SET status = $2, cancel_reason = $3, edited_at = NOW() WHERE teacher_id = $1", query)
	assert.Equal(t, []any{teacherId, "CANCELLED", &reason}, args)

	query, args = buildLessonUpdateManyQuery(&model.LessonFilter{TeacherId: teacherId}, model.LessonStatusMakeup, &reason)
	assert.Contains(t, query, "cancel_reason = NULL")
	assert.Equal(t, []any{teacherId, "MAKEUP"}, args)
}

func TestBuildStudentListQuery_EscapesSearch(t *testing.T) {
	query, args := buildStudentListQuery(&model.StudentFilter{Search: "50%_off"})
	assert.Contains(t, query, "name ILIKE $1")
	assert.Equal(t, []any{`%50\%\_off%`}, args)
}

func TestBuildPieceListQuery(t *testing.T) {
	level := "beginner"
	query, args := buildPieceListQuery(&model.PieceFilter{Search: "bach", Level: &level, Limit: 10})
	assert.Contains(t, query, "WHERE title ILIKE $1 AND level = $2 ORDER BY title, id LIMIT $3")
	assert.Equal(t, []any{"%bach%", "beginner", 10}, args)
}
