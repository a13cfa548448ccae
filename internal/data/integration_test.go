package data

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/config"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/db"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

// livePool connects to TEST_POSTGRES_URL and applies the migrations. Tests
// using it are skipped when the variable is unset.
func livePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("TEST_POSTGRES_URL not set")
	}
	pool, err := db.New(context.Background(), &config.Config{
		PostgresURL:         url,
		PostgresMaxConn:     4,
		PostgresMinConn:     1,
		PostgresAutoMigrate: true,
		MigrationsPath:      "file://../../migrations",
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

type liveFixture struct {
	users    *UserRepository
	accounts *AccountRepository
	sessions *SessionRepository
	teachers *TeacherRepository
	students *StudentRepository
	lessons  *LessonRepository
}

func newLiveFixture(t *testing.T) *liveFixture {
	pool := livePool(t)
	return &liveFixture{
		users:    NewUserRepository(pool),
		accounts: NewAccountRepository(pool),
		sessions: NewSessionRepository(pool),
		teachers: NewTeacherRepository(pool),
		students: NewStudentRepository(pool),
		lessons:  NewLessonRepository(pool),
	}
}

func (f *liveFixture) teacher(t *testing.T, ctx context.Context) (*model.User, *model.Teacher) {
	t.Helper()
	email := uuid.NewString() + "@example.com"
	user, err := f.users.Create(ctx, &model.RepositoryCreateUserInput{Id: uuid.New(), Email: &email})
	require.NoError(t, err)
	teacher, err := f.teachers.Create(ctx, &model.RepositoryCreateTeacherInput{Id: uuid.New(), UserId: user.Id, HourlyRate: 3000})
	require.NoError(t, err)
	return user, teacher
}

func (f *liveFixture) student(t *testing.T, ctx context.Context, teacherId uuid.UUID) *model.Student {
	t.Helper()
	student, err := f.students.Create(ctx, &model.RepositoryCreateStudentInput{Id: uuid.New(), TeacherId: teacherId, Name: "Clara"})
	require.NoError(t, err)
	return student
}

func lessonInput(teacherId, studentId uuid.UUID, date time.Time, minutes int32, status model.LessonStatus) *model.RepositoryCreateLessonInput {
	return &model.RepositoryCreateLessonInput{
		Id:        uuid.New(),
		TeacherId: teacherId,
		StudentId: studentId,
		Date:      date,
		Duration:  minutes,
		Status:    status,
	}
}

func TestLive_TeacherProfileIsUniquePerUser(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()
	user, _ := f.teacher(t, ctx)

	_, err := f.teachers.Create(ctx, &model.RepositoryCreateTeacherInput{Id: uuid.New(), UserId: user.Id, HourlyRate: 1})
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
}

func TestLive_AccountProviderPairIsUnique(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()
	user, _ := f.teacher(t, ctx)
	providerId := uuid.NewString()

	in := &model.RepositoryUpsertAccountInput{
		Id: uuid.New(), UserId: user.Id, Type: "oauth", Provider: "google", ProviderAccountId: providerId,
	}
	_, err := f.accounts.Create(ctx, in)
	require.NoError(t, err)

	in.Id = uuid.New()
	_, err = f.accounts.Create(ctx, in)
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
}

func TestLive_LessonReferences(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()
	_, teacher := f.teacher(t, ctx)
	date := time.Date(2031, 1, 6, 15, 0, 0, 0, time.UTC)

	_, err := f.lessons.Create(ctx, lessonInput(teacher.Id, uuid.New(), date, 30, model.LessonStatusComplete))
	assert.ErrorIs(t, err, errdefs.ErrInvalidReference)

	student := f.student(t, ctx, teacher.Id)
	lesson, err := f.lessons.Create(ctx, lessonInput(teacher.Id, student.Id, date, 30, model.LessonStatusComplete))
	require.NoError(t, err)
	assert.Nil(t, lesson.PieceId)

	err = f.teachers.Delete(ctx, teacher.Id)
	assert.ErrorIs(t, err, errdefs.ErrStillReferenced)
}

func TestLive_CancelledLessonRoundTrip(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()
	_, teacher := f.teacher(t, ctx)
	student := f.student(t, ctx, teacher.Id)

	reason := "recital rehearsal"
	in := lessonInput(teacher.Id, student.Id, time.Date(2031, 2, 3, 10, 0, 0, 0, time.UTC), 45, model.LessonStatusCancelled)
	in.CancelReason = &reason
	created, err := f.lessons.Create(ctx, in)
	require.NoError(t, err)

	got, err := f.lessons.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, model.LessonStatusCancelled, got.Status)
	require.NotNil(t, got.CancelReason)
	assert.Equal(t, reason, *got.CancelReason)
}

func TestLive_LessonOverlap(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()
	_, teacher := f.teacher(t, ctx)
	student := f.student(t, ctx, teacher.Id)
	start := time.Date(2031, 3, 3, 16, 0, 0, 0, time.UTC)

	_, err := f.lessons.Create(ctx, lessonInput(teacher.Id, student.Id, start, 60, model.LessonStatusComplete))
	require.NoError(t, err)

	_, err = f.lessons.Create(ctx, lessonInput(teacher.Id, student.Id, start.Add(30*time.Minute), 60, model.LessonStatusMakeup))
	assert.ErrorIs(t, err, errdefs.ErrConflict)

	_, err = f.lessons.Create(ctx, lessonInput(teacher.Id, student.Id, start.Add(30*time.Minute), 60, model.LessonStatusCancelled))
	assert.NoError(t, err)

	_, err = f.lessons.Create(ctx, lessonInput(teacher.Id, student.Id, start.Add(time.Hour), 30, model.LessonStatusComplete))
	assert.NoError(t, err)
}

func TestLive_VerificationTokenIsSingleUse(t *testing.T) {
	f := newLiveFixture(t)
	ctx := context.Background()
	identifier := uuid.NewString() + "@example.com"
	token := uuid.NewString()

	_, err := f.sessions.CreateVerificationToken(ctx, &model.VerificationToken{
		Identifier: identifier,
		Token:      token,
		Expires:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = f.sessions.UseVerificationToken(ctx, identifier, token)
	require.NoError(t, err)
	_, err = f.sessions.UseVerificationToken(ctx, identifier, token)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}
