package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/ctxdata"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error)
	CreateWithAccount(ctx context.Context, user *model.RepositoryCreateUserInput, account *model.RepositoryUpsertAccountInput) (*model.User, *model.Account, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdateUserInput) (*model.User, error)
	MarkEmailVerified(ctx context.Context, email string) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AccountRepository interface {
	Create(ctx context.Context, input *model.RepositoryUpsertAccountInput) (*model.Account, error)
	Upsert(ctx context.Context, input *model.RepositoryUpsertAccountInput) (*model.Account, error)
	GetByProvider(ctx context.Context, provider, providerAccountId string) (*model.Account, error)
	ListByUser(ctx context.Context, userId uuid.UUID) ([]*model.Account, error)
	Delete(ctx context.Context, provider, providerAccountId string) error
}

// SessionRepository works on token hashes, never on raw tokens.
type SessionRepository interface {
	Create(ctx context.Context, input *model.RepositoryCreateSessionInput) (*model.Session, error)
	GetByToken(ctx context.Context, token string) (*model.Session, error)
	UpdateExpires(ctx context.Context, token string, expires time.Time) (*model.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userId uuid.UUID) (int64, error)
	CreateVerificationToken(ctx context.Context, token *model.VerificationToken) (*model.VerificationToken, error)
	UseVerificationToken(ctx context.Context, identifier, token string) (*model.VerificationToken, error)
}

type TeacherRepository interface {
	Create(ctx context.Context, input *model.RepositoryCreateTeacherInput) (*model.Teacher, error)
	Upsert(ctx context.Context, input *model.RepositoryCreateTeacherInput) (*model.Teacher, error)
	GetByUser(ctx context.Context, userId uuid.UUID) (*model.Teacher, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdateTeacherInput) (*model.Teacher, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type StudentRepository interface {
	Create(ctx context.Context, input *model.RepositoryCreateStudentInput) (*model.Student, error)
	CreateMany(ctx context.Context, inputs []*model.RepositoryCreateStudentInput) ([]*model.Student, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Student, error)
	List(ctx context.Context, filter *model.StudentFilter) ([]*model.Student, error)
	Count(ctx context.Context, filter *model.StudentFilter) (int64, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdateStudentInput) (*model.Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PieceRepository interface {
	Create(ctx context.Context, input *model.RepositoryCreatePieceInput) (*model.Piece, error)
	CreateMany(ctx context.Context, inputs []*model.RepositoryCreatePieceInput) ([]*model.Piece, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Piece, error)
	List(ctx context.Context, filter *model.PieceFilter) ([]*model.Piece, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdatePieceInput) (*model.Piece, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type LessonRepository interface {
	Create(ctx context.Context, input *model.RepositoryCreateLessonInput) (*model.Lesson, error)
	CreateMany(ctx context.Context, inputs []*model.RepositoryCreateLessonInput) ([]*model.Lesson, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	First(ctx context.Context, filter *model.LessonFilter) (*model.Lesson, error)
	List(ctx context.Context, filter *model.LessonFilter) ([]*model.Lesson, error)
	Count(ctx context.Context, filter *model.LessonFilter) (int64, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdateLessonInput) (*model.Lesson, error)
	UpdateMany(ctx context.Context, filter *model.LessonFilter, status model.LessonStatus, reason *string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, filter *model.LessonFilter) (int64, error)
	Aggregate(ctx context.Context, filter *model.LessonFilter) (*model.LessonAggregate, error)
	GroupByStatus(ctx context.Context, filter *model.LessonFilter) ([]*model.LessonStatusGroup, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

// EventSender publishes best effort and never fails the caller.
type EventSender interface {
	SendLessonEvent(ctx context.Context, event *model.LessonEvent)
	SendAuthEvent(ctx context.Context, event *model.AuthEvent)
}

type AvatarStore interface {
	PresignUpload(ctx context.Context, key string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// TeacherResolver finds the teacher profile of the calling user.
type TeacherResolver interface {
	CurrentTeacher(ctx context.Context) (*model.Teacher, error)
}

func currentUserId(ctx context.Context) (uuid.UUID, error) {
	raw, ok := ctxdata.GetUserID(ctx)
	if !ok {
		return uuid.Nil, errdefs.ErrAuthentication
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errdefs.ErrAuthentication
	}
	return id, nil
}
