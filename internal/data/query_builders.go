package data

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

const (
	userColumns    = "id, name, email, email_verified, image, password, created_at, edited_at"
	accountColumns = "id, user_id, type, provider, provider_account_id, refresh_token, access_token, " +
		"expires_at, token_type, scope, id_token, session_state"
	sessionColumns = "id, session_token, user_id, expires"
	teacherColumns = "id, user_id, hourly_rate, created_at, edited_at"
	studentColumns = "id, teacher_id, name, avatar, notes, created_at, edited_at"
	pieceColumns   = "id, title, description, level, created_at, edited_at"
	lessonColumns  = "id, student_id, teacher_id, piece_id, date, duration, status, cancel_reason, created_at, edited_at"
)

// setBuilder collects "column = $n" assignments for partial updates.
type setBuilder struct {
	set  []string
	args []any
}

func (b *setBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.set = append(b.set, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setBuilder) addRaw(expr string) {
	b.set = append(b.set, expr)
}

// build appends edited_at and the id predicate. An update that sets nothing
// but edited_at is rejected.
func (b *setBuilder) build(table string, id uuid.UUID, returning string) (string, []any, error) {
	if len(b.set) == 0 {
		return "", nil, errdefs.ErrNoFieldsToUpdate
	}
	b.set = append(b.set, "edited_at = NOW()")
	args := append(b.args, id)
	query := fmt.Sprintf(`
UPDATE %s
SET %s
WHERE id = $%d
RETURNING %s
`, table, strings.Join(b.set, ", "), len(args), returning)
	return query, args, nil
}

func buildUserUpdateQuery(id uuid.UUID, input *model.UpdateUserInput) (string, []any, error) {
	var b setBuilder
	if input.Name != nil {
		b.add("name", input.Name)
	}
	if input.Image != nil {
		b.add("image", input.Image)
	}
	return b.build("users", id, userColumns)
}

func buildTeacherUpdateQuery(id uuid.UUID, input *model.UpdateTeacherInput) (string, []any, error) {
	var b setBuilder
	if input.HourlyRate != nil {
		b.add("hourly_rate", input.HourlyRate)
	}
	return b.build("teachers", id, teacherColumns)
}

func buildStudentUpdateQuery(id uuid.UUID, input *model.UpdateStudentInput) (string, []any, error) {
	var b setBuilder
	if input.Name != nil {
		b.add("name", input.Name)
	}
	if input.Avatar != nil {
		b.add("avatar", input.Avatar)
	}
	if input.Notes != nil {
		b.add("notes", input.Notes)
	}
	return b.build("students", id, studentColumns)
}

func buildPieceUpdateQuery(id uuid.UUID, input *model.UpdatePieceInput) (string, []any, error) {
	var b setBuilder
	if input.Title != nil {
		b.add("title", input.Title)
	}
	if input.Description != nil {
		b.add("description", input.Description)
	}
	if input.Level != nil {
		b.add("level", input.Level)
	}
	return b.build("pieces", id, pieceColumns)
}

func buildLessonUpdateQuery(id uuid.UUID, input *model.UpdateLessonInput) (string, []any, error) {
	var b setBuilder
	if input.StudentId != nil {
		b.add("student_id", input.StudentId)
	}
	if input.ClearPiece {
		b.addRaw("piece_id = NULL")
	} else if input.PieceId != nil {
		b.add("piece_id", input.PieceId)
	}
	if input.Date != nil {
		b.add("date", input.Date.UTC())
	}
	if input.Duration != nil {
		b.add("duration", input.Duration)
	}
	if input.Status != nil {
		b.add("status", string(*input.Status))
	}
	if input.ClearCancelReason {
		b.addRaw("cancel_reason = NULL")
	} else if input.CancelReason != nil {
		b.add("cancel_reason", input.CancelReason)
	}
	return b.build("lessons", id, lessonColumns)
}

// whereBuilder collects AND-ed predicates with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add replaces every "?" in cond with the next positional placeholder.
func (w *whereBuilder) add(cond string, value any) {
	w.args = append(w.args, value)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (w *whereBuilder) page(limit, offset int) string {
	var s string
	if limit > 0 {
		w.args = append(w.args, limit)
		s += fmt.Sprintf(" LIMIT $%d", len(w.args))
	}
	if offset > 0 {
		w.args = append(w.args, offset)
		s += fmt.Sprintf(" OFFSET $%d", len(w.args))
	}
	return s
}

func studentWhere(f *model.StudentFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.TeacherId != uuid.Nil {
		w.add("teacher_id = ?", f.TeacherId)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		w.add("name ILIKE ?", "%"+escapeLike(s)+"%")
	}
	return w
}

func buildStudentListQuery(f *model.StudentFilter) (string, []any) {
	w := studentWhere(f)
	query := "SELECT " + studentColumns + " FROM students" + w.clause() + " ORDER BY name, id"
	query += w.page(f.Limit, f.Offset)
	return query, w.args
}

func buildStudentCountQuery(f *model.StudentFilter) (string, []any) {
	w := studentWhere(f)
	return "SELECT COUNT(*) FROM students" + w.clause(), w.args
}

func buildPieceListQuery(f *model.PieceFilter) (string, []any) {
	w := &whereBuilder{}
	if s := strings.TrimSpace(f.Search); s != "" {
		w.add("title ILIKE ?", "%"+escapeLike(s)+"%")
	}
	if f.Level != nil {
		w.add("level = ?", *f.Level)
	}
	query := "SELECT " + pieceColumns + " FROM pieces" + w.clause() + " ORDER BY title, id"
	query += w.page(f.Limit, f.Offset)
	return query, w.args
}

func lessonWhere(f *model.LessonFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.TeacherId != uuid.Nil {
		w.add("teacher_id = ?", f.TeacherId)
	}
	if f.StudentId != uuid.Nil {
		w.add("student_id = ?", f.StudentId)
	}
	if f.PieceId != uuid.Nil {
		w.add("piece_id = ?", f.PieceId)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		w.add("status = ANY(?::lesson_status[])", statuses)
	}
	if f.From != nil {
		w.add("date >= ?", f.From.UTC())
	}
	if f.To != nil {
		w.add("date < ?", f.To.UTC())
	}
	return w
}

func buildLessonListQuery(f *model.LessonFilter) (string, []any) {
	w := lessonWhere(f)
	order := " ORDER BY date, id"
	if f.Desc {
		order = " ORDER BY date DESC, id DESC"
	}
	query := "SELECT " + lessonColumns + " FROM lessons" + w.clause() + order
	query += w.page(f.Limit, f.Offset)
	return query, w.args
}

func buildLessonCountQuery(f *model.LessonFilter) (string, []any) {
	w := lessonWhere(f)
	return "SELECT COUNT(*) FROM lessons" + w.clause(), w.args
}

func buildLessonAggregateQuery(f *model.LessonFilter) (string, []any) {
	w := lessonWhere(f)
	return "SELECT COUNT(*) AS count, COALESCE(SUM(duration), 0) AS total_duration FROM lessons" + w.clause(), w.args
}

func buildLessonGroupByStatusQuery(f *model.LessonFilter) (string, []any) {
	w := lessonWhere(f)
	return "SELECT status, COUNT(*) AS count, COALESCE(SUM(duration), 0) AS total_duration FROM lessons" +
		w.clause() + " GROUP BY status ORDER BY status", w.args
}

// buildLessonUpdateManyQuery sets status (and the cancel reason that goes with
// it) on every lesson matching f.
func buildLessonUpdateManyQuery(f *model.LessonFilter, status model.LessonStatus, reason *string) (string, []any) {
	w := lessonWhere(f)
	w.args = append(w.args, string(status))
	set := fmt.Sprintf("status = $%d", len(w.args))
	if status == model.LessonStatusCancelled {
		w.args = append(w.args, reason)
		set += fmt.Sprintf(", cancel_reason = $%d", len(w.args))
	} else {
		set += ", cancel_reason = NULL"
	}
	return "UPDATE lessons SET " + set + ", edited_at = NOW()" + w.clause(), w.args
}

func buildLessonDeleteManyQuery(f *model.LessonFilter) (string, []any) {
	w := lessonWhere(f)
	return "DELETE FROM lessons" + w.clause(), w.args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
