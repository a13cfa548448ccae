package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, input *model.RegisterInput) (*model.AuthResult, error)
	Login(ctx context.Context, input *model.LoginInput) (*model.AuthResult, error)
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) (int64, error)
	RequestEmailVerification(ctx context.Context) (time.Time, error)
	ConfirmEmail(ctx context.Context, email, rawToken string) (*model.User, error)
	OAuthLogin(ctx context.Context, profile *model.OAuthProfile) (*model.AuthResult, error)
}

type UserService interface {
	GetMe(ctx context.Context) (*model.User, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*model.UserPublic, error)
	ListPublic(ctx context.Context, limit, offset int) ([]*model.UserPublic, int64, error)
	UpdateMe(ctx context.Context, input *model.UpdateUserInput) (*model.User, error)
	DeleteMe(ctx context.Context) error
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	UnlinkAccount(ctx context.Context, provider string) error
}

type TeacherService interface {
	CreateProfile(ctx context.Context, input *model.CreateTeacherInput) (*model.Teacher, error)
	PutProfile(ctx context.Context, input *model.CreateTeacherInput) (*model.Teacher, error)
	GetMine(ctx context.Context) (*model.Teacher, error)
	UpdateMine(ctx context.Context, input *model.UpdateTeacherInput) (*model.Teacher, error)
	DeleteMine(ctx context.Context) error
	Earnings(ctx context.Context, from, to *time.Time) (*model.Earnings, error)
}

type StudentService interface {
	Create(ctx context.Context, input *model.CreateStudentInput) (*model.Student, error)
	CreateMany(ctx context.Context, inputs []*model.CreateStudentInput) ([]*model.Student, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Student, error)
	List(ctx context.Context, filter *model.StudentFilter) ([]*model.Student, int64, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdateStudentInput) (*model.Student, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AvatarUploadURL(ctx context.Context, id uuid.UUID, filename string) (*model.AvatarUpload, error)
	AvatarDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
}

type PieceService interface {
	Create(ctx context.Context, input *model.CreatePieceInput) (*model.Piece, error)
	CreateMany(ctx context.Context, inputs []*model.CreatePieceInput) ([]*model.Piece, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Piece, error)
	List(ctx context.Context, filter *model.PieceFilter) ([]*model.Piece, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdatePieceInput) (*model.Piece, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type LessonService interface {
	Create(ctx context.Context, input *model.CreateLessonInput) (*model.Lesson, error)
	CreateMany(ctx context.Context, inputs []*model.CreateLessonInput) ([]*model.Lesson, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	List(ctx context.Context, filter *model.LessonFilter) ([]*model.Lesson, int64, error)
	Next(ctx context.Context) (*model.Lesson, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdateLessonInput) (*model.Lesson, error)
	Cancel(ctx context.Context, id uuid.UUID, reason *string) (*model.Lesson, error)
	CancelRange(ctx context.Context, from, to time.Time, reason *string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, filter *model.LessonFilter) (int64, error)
	Stats(ctx context.Context, filter *model.LessonFilter) (*model.LessonStats, error)
}
