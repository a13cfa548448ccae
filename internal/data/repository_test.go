package data

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type AnyTime struct{}

func (a AnyTime) Match(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return mockPool
}

var lessonRowColumns = []string{
	"id", "student_id", "teacher_id", "piece_id", "date", "duration",
	"status", "cancel_reason", "created_at", "edited_at",
}

// ── Teachers ──

func TestTeacherRepo_Create(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewTeacherRepository(mockPool)
	ctx := context.Background()
	now := time.Now()
	id, userId := uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockPool.ExpectQuery("INSERT INTO teachers").
			WithArgs(id, userId, int32(3000)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "hourly_rate", "created_at", "edited_at"}).
				AddRow(id, userId, int32(3000), now, now))

		teacher, err := repo.Create(ctx, &model.RepositoryCreateTeacherInput{Id: id, UserId: userId, HourlyRate: 3000})
		require.NoError(t, err)
		assert.Equal(t, id, teacher.Id)
		assert.Equal(t, int32(3000), teacher.HourlyRate)
	})

	t.Run("SecondProfileForUser", func(t *testing.T) {
		mockPool.ExpectQuery("INSERT INTO teachers").
			WithArgs(pgxmock.AnyArg(), userId, int32(1000)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "teachers_user_id_key"})

		_, err := repo.Create(ctx, &model.RepositoryCreateTeacherInput{Id: uuid.New(), UserId: userId, HourlyRate: 1000})
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestTeacherRepo_Delete(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewTeacherRepository(mockPool)
	ctx := context.Background()
	id := uuid.New()

	t.Run("StillOwnsStudents", func(t *testing.T) {
		mockPool.ExpectExec("DELETE FROM teachers WHERE id =").
			WithArgs(id).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "students_teacher_id_fkey"})

		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errdefs.ErrStillReferenced)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPool.ExpectExec("DELETE FROM teachers WHERE id =").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestTeacherRepo_GetByUser_NotFound(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewTeacherRepository(mockPool)
	userId := uuid.New()

	mockPool.ExpectQuery("SELECT .* FROM teachers WHERE user_id =").
		WithArgs(userId).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByUser(context.Background(), userId)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

// ── Accounts ──

func TestAccountRepo_CreateDuplicate(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewAccountRepository(mockPool)

	mockPool.ExpectQuery("INSERT INTO accounts").
		WithArgs(anyArgs(12)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_provider_provider_account_id_key"})

	_, err := repo.Create(context.Background(), &model.RepositoryUpsertAccountInput{
		Id:                uuid.New(),
		UserId:            uuid.New(),
		Type:              "oauth",
		Provider:          "google",
		ProviderAccountId: "1234",
	})
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestAccountRepo_Upsert(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewAccountRepository(mockPool)
	id, userId := uuid.New(), uuid.New()
	token := "new-access-token"

	mockPool.ExpectQuery("INSERT INTO accounts .* ON CONFLICT \\(provider, provider_account_id\\) DO UPDATE").
		WithArgs(anyArgs(12)...).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "type", "provider", "provider_account_id", "refresh_token", "access_token",
			"expires_at", "token_type", "scope", "id_token", "session_state",
		}).AddRow(id, userId, "oauth", "google", "1234", (*string)(nil), &token,
			(*int64)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil)))

	account, err := repo.Upsert(context.Background(), &model.RepositoryUpsertAccountInput{
		Id:                uuid.New(),
		UserId:            uuid.New(),
		Type:              "oauth",
		Provider:          "google",
		ProviderAccountId: "1234",
		AccessToken:       &token,
	})
	require.NoError(t, err)
	assert.Equal(t, id, account.Id)
	assert.Equal(t, userId, account.UserId)
	assert.Equal(t, token, *account.AccessToken)
}

// ── Sessions and verification tokens ──

func TestSessionRepo_UseVerificationToken(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewSessionRepository(mockPool)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	mockPool.ExpectQuery("DELETE FROM verification_tokens").
		WithArgs("a@example.com", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"identifier", "token", "expires"}).
			AddRow("a@example.com", "hash", expires))
	mockPool.ExpectQuery("DELETE FROM verification_tokens").
		WithArgs("a@example.com", "hash").
		WillReturnError(pgx.ErrNoRows)

	used, err := repo.UseVerificationToken(ctx, "a@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", used.Identifier)

	_, err = repo.UseVerificationToken(ctx, "a@example.com", "hash")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestSessionRepo_DeleteExpired(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewSessionRepository(mockPool)

	mockPool.ExpectExec("DELETE FROM sessions WHERE expires <=").
		WithArgs(AnyTime{}).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := repo.DeleteExpired(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

// ── Pieces ──

func TestPieceRepo_CreateMany(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewPieceRepository(mockPool)

	mockPool.ExpectCopyFrom(pgx.Identifier{"pieces"},
		[]string{"id", "title", "description", "level", "created_at", "edited_at"}).
		WillReturnResult(2)

	pieces, err := repo.CreateMany(context.Background(), []*model.RepositoryCreatePieceInput{
		{Id: uuid.New(), Title: "Für Elise"},
		{Id: uuid.New(), Title: "Gymnopédie No. 1"},
	})
	require.NoError(t, err)
	require.Len(t, pieces, 2)
	assert.Equal(t, "Für Elise", pieces[0].Title)
	assert.False(t, pieces[0].CreatedAt.IsZero())
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

// ── Lessons ──

func TestLessonRepo_Create(t *testing.T) {
	ctx := context.Background()
	teacherId, studentId := uuid.New(), uuid.New()
	date := time.Date(2024, 5, 6, 16, 0, 0, 0, time.UTC)

	input := func(status model.LessonStatus, reason *string) *model.RepositoryCreateLessonInput {
		return &model.RepositoryCreateLessonInput{
			Id:           uuid.New(),
			StudentId:    studentId,
			TeacherId:    teacherId,
			Date:         date,
			Duration:     60,
			Status:       status,
			CancelReason: reason,
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewLessonRepository(mockPool)
		in := input(model.LessonStatusComplete, nil)
		now := time.Now()

		mockPool.ExpectBegin()
		mockPool.ExpectQuery("SELECT id FROM teachers WHERE id = \\$1 FOR UPDATE").
			WithArgs(teacherId).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(teacherId))
		mockPool.ExpectQuery("SELECT EXISTS").
			WithArgs(teacherId, in.Id, date.Add(time.Hour), date).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mockPool.ExpectQuery("INSERT INTO lessons").
			WithArgs(in.Id, studentId, teacherId, pgxmock.AnyArg(), date, int32(60), "COMPLETE", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows(lessonRowColumns).
				AddRow(in.Id, studentId, teacherId, (*uuid.UUID)(nil), date, int32(60),
					model.LessonStatusComplete, (*string)(nil), now, now))
		mockPool.ExpectCommit()

		lesson, err := repo.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, in.Id, lesson.Id)
		assert.Nil(t, lesson.PieceId)
		assert.Equal(t, model.LessonStatusComplete, lesson.Status)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Overlap", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewLessonRepository(mockPool)
		in := input(model.LessonStatusMakeup, nil)

		mockPool.ExpectBegin()
		mockPool.ExpectQuery("SELECT id FROM teachers").
			WithArgs(teacherId).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(teacherId))
		mockPool.ExpectQuery("SELECT EXISTS").
			WithArgs(teacherId, in.Id, AnyTime{}, AnyTime{}).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mockPool.ExpectRollback()

		_, err := repo.Create(ctx, in)
		assert.ErrorIs(t, err, errdefs.ErrConflict)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("CancelledSkipsOverlapCheck", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewLessonRepository(mockPool)
		reason := "student was ill"
		in := input(model.LessonStatusCancelled, &reason)
		now := time.Now()

		mockPool.ExpectBegin()
		mockPool.ExpectQuery("SELECT id FROM teachers").
			WithArgs(teacherId).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(teacherId))
		mockPool.ExpectQuery("INSERT INTO lessons").
			WithArgs(in.Id, studentId, teacherId, pgxmock.AnyArg(), date, int32(60), "CANCELLED", &reason).
			WillReturnRows(pgxmock.NewRows(lessonRowColumns).
				AddRow(in.Id, studentId, teacherId, (*uuid.UUID)(nil), date, int32(60),
					model.LessonStatusCancelled, &reason, now, now))
		mockPool.ExpectCommit()

		lesson, err := repo.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, model.LessonStatusCancelled, lesson.Status)
		require.NotNil(t, lesson.CancelReason)
		assert.Equal(t, reason, *lesson.CancelReason)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("UnknownTeacher", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewLessonRepository(mockPool)

		mockPool.ExpectBegin()
		mockPool.ExpectQuery("SELECT id FROM teachers").
			WithArgs(teacherId).
			WillReturnError(pgx.ErrNoRows)
		mockPool.ExpectRollback()

		_, err := repo.Create(ctx, input(model.LessonStatusComplete, nil))
		assert.ErrorIs(t, err, errdefs.ErrInvalidReference)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("UnknownStudent", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewLessonRepository(mockPool)

		mockPool.ExpectBegin()
		mockPool.ExpectQuery("SELECT id FROM teachers").
			WithArgs(teacherId).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(teacherId))
		mockPool.ExpectQuery("SELECT EXISTS").
			WithArgs(anyArgs(4)...).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mockPool.ExpectQuery("INSERT INTO lessons").
			WithArgs(anyArgs(8)...).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "lessons_student_id_fkey"})
		mockPool.ExpectRollback()

		_, err := repo.Create(ctx, input(model.LessonStatusComplete, nil))
		assert.ErrorIs(t, err, errdefs.ErrInvalidReference)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestLessonRepo_CreateMany_Overlap(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewLessonRepository(mockPool)
	teacherId := uuid.New()
	date := time.Date(2024, 5, 6, 16, 0, 0, 0, time.UTC)

	mockPool.ExpectBegin()
	mockPool.ExpectQuery("SELECT id FROM teachers").
		WithArgs(teacherId).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(teacherId))
	mockPool.ExpectCopyFrom(pgx.Identifier{"lessons"}, []string{
		"id", "student_id", "teacher_id", "piece_id", "date", "duration", "status", "cancel_reason", "created_at", "edited_at",
	}).WillReturnResult(2)
	mockPool.ExpectQuery("SELECT EXISTS").
		WithArgs(teacherId).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mockPool.ExpectRollback()

	_, err := repo.CreateMany(context.Background(), []*model.RepositoryCreateLessonInput{
		{Id: uuid.New(), StudentId: uuid.New(), TeacherId: teacherId, Date: date, Duration: 60, Status: model.LessonStatusComplete},
		{Id: uuid.New(), StudentId: uuid.New(), TeacherId: teacherId, Date: date.Add(30 * time.Minute), Duration: 60, Status: model.LessonStatusComplete},
	})
	assert.ErrorIs(t, err, errdefs.ErrConflict)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestLessonRepo_UpdateMany_RequiresTeacher(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewLessonRepository(mockPool)

	_, err := repo.UpdateMany(context.Background(), &model.LessonFilter{}, model.LessonStatusCancelled, nil)
	assert.ErrorIs(t, err, errdefs.ErrValidation)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestLessonRepo_GroupByStatus(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewLessonRepository(mockPool)
	teacherId := uuid.New()

	mockPool.ExpectQuery("SELECT status, COUNT\\(\\*\\) AS count").
		WithArgs(teacherId).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count", "total_duration"}).
			AddRow(model.LessonStatusCancelled, int64(1), int64(30)).
			AddRow(model.LessonStatusComplete, int64(4), int64(240)))

	groups, err := repo.GroupByStatus(context.Background(), &model.LessonFilter{TeacherId: teacherId})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, model.LessonStatusComplete, groups[1].Status)
	assert.Equal(t, int64(240), groups[1].TotalDuration)
}

func TestLessonRepo_Delete(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewLessonRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectExec("DELETE FROM lessons WHERE id =").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), id))
}

// ── Users ──

var userRowColumns = []string{"id", "name", "email", "email_verified", "image", "password", "created_at", "edited_at"}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)

	mockPool.ExpectQuery("SELECT (.+) FROM users WHERE email =").
		WithArgs("ada@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ada@example.com")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepo_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("NoFields", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewUserRepository(mockPool)

		_, err := repo.Update(ctx, id, &model.UpdateUserInput{})
		assert.ErrorIs(t, err, errdefs.ErrNoFieldsToUpdate)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Name", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewUserRepository(mockPool)
		name := "Ada"
		now := time.Now()

		mockPool.ExpectQuery("UPDATE users SET name = \\$1").
			WithArgs(pgxmock.AnyArg(), id).
			WillReturnRows(pgxmock.NewRows(userRowColumns).
				AddRow(id, &name, (*string)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil), now, now))

		user, err := repo.Update(ctx, id, &model.UpdateUserInput{Name: &name})
		require.NoError(t, err)
		require.NotNil(t, user.Name)
		assert.Equal(t, "Ada", *user.Name)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestUserRepo_CreateWithAccount_RollsBackOnDuplicateAccount(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)
	id := uuid.New()
	email := "ada@example.com"
	now := time.Now()

	mockPool.ExpectBegin()
	mockPool.ExpectQuery("INSERT INTO users").
		WithArgs(id, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(userRowColumns).
			AddRow(id, (*string)(nil), &email, (*time.Time)(nil), (*string)(nil), (*string)(nil), now, now))
	mockPool.ExpectQuery("INSERT INTO accounts").
		WithArgs(anyArgs(12)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_provider_provider_account_id_key"})
	mockPool.ExpectRollback()

	_, _, err := repo.CreateWithAccount(context.Background(),
		&model.RepositoryCreateUserInput{Id: id, Email: &email},
		&model.RepositoryUpsertAccountInput{Id: uuid.New(), Type: "oauth", Provider: "google", ProviderAccountId: "42"})
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

// ── Students ──

var studentRowColumns = []string{"id", "teacher_id", "name", "avatar", "notes", "created_at", "edited_at"}

func TestStudentRepo_Create_UnknownTeacher(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewStudentRepository(mockPool)
	in := &model.RepositoryCreateStudentInput{Id: uuid.New(), TeacherId: uuid.New(), Name: "Clara"}

	mockPool.ExpectQuery("INSERT INTO students").
		WithArgs(in.Id, in.TeacherId, "Clara", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "students_teacher_id_fkey"})

	_, err := repo.Create(context.Background(), in)
	assert.ErrorIs(t, err, errdefs.ErrInvalidReference)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestStudentRepo_List(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewStudentRepository(mockPool)
	teacherId := uuid.New()
	now := time.Now()

	mockPool.ExpectQuery("SELECT (.+) FROM students WHERE teacher_id = \\$1 AND name ILIKE \\$2 ORDER BY name, id").
		WithArgs(teacherId, "%cla%", 50).
		WillReturnRows(pgxmock.NewRows(studentRowColumns).
			AddRow(uuid.New(), teacherId, "Clara", (*string)(nil), (*string)(nil), now, now))

	students, err := repo.List(context.Background(), &model.StudentFilter{TeacherId: teacherId, Search: "cla", Limit: 50})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Clara", students[0].Name)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestStudentRepo_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("HasLessons", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewStudentRepository(mockPool)
		mockPool.ExpectExec("DELETE FROM students WHERE id =").
			WithArgs(id).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "lessons_student_id_fkey"})

		assert.ErrorIs(t, repo.Delete(ctx, id), errdefs.ErrStillReferenced)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewStudentRepository(mockPool)
		mockPool.ExpectExec("DELETE FROM students WHERE id =").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(ctx, id), errdefs.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

// ── Sessions ──

func TestSessionRepo_Tokens(t *testing.T) {
	ctx := context.Background()
	userId := uuid.New()
	expires := time.Now().Add(time.Hour).UTC()

	t.Run("GetByToken", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewSessionRepository(mockPool)
		id := uuid.New()
		mockPool.ExpectQuery("SELECT (.+) FROM sessions WHERE session_token =").
			WithArgs("hash").
			WillReturnRows(pgxmock.NewRows([]string{"id", "session_token", "user_id", "expires"}).
				AddRow(id, "hash", userId, expires))

		session, err := repo.GetByToken(ctx, "hash")
		require.NoError(t, err)
		assert.Equal(t, userId, session.UserId)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("UpdateExpiresUnknown", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewSessionRepository(mockPool)
		mockPool.ExpectQuery("UPDATE sessions SET expires").
			WithArgs(AnyTime{}, "gone").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.UpdateExpires(ctx, "gone", expires)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("DeleteByUser", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewSessionRepository(mockPool)
		mockPool.ExpectExec("DELETE FROM sessions WHERE user_id =").
			WithArgs(userId).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))

		n, err := repo.DeleteByUser(ctx, userId)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}
