package model

import (
	"time"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Name     *string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// OAuthProfile is what a provider tells us about the signed-in user.
type OAuthProfile struct {
	Provider          string
	ProviderAccountId string
	Email             *string
	EmailVerified     bool
	Name              *string
	Image             *string
	AccessToken       *string
	RefreshToken      *string
	ExpiresAt         *int64
	TokenType         *string
	Scope             *string
	IdToken           *string
}

// AuthResult carries the raw session token. Only its hash is stored.
type AuthResult struct {
	User    *User     `json:"user"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type UpdateUserInput struct {
	Name  *string
	Image *string
}

type CreateTeacherInput struct {
	HourlyRate int32
}

type UpdateTeacherInput struct {
	HourlyRate *int32
}

type CreateStudentInput struct {
	Name  string
	Notes *string
}

type UpdateStudentInput struct {
	Name   *string
	Avatar *string
	Notes  *string
}

type StudentFilter struct {
	TeacherId uuid.UUID
	Search    string
	Limit     int
	Offset    int
}

type CreatePieceInput struct {
	Title       string
	Description *string
	Level       *string
}

type UpdatePieceInput struct {
	Title       *string
	Description *string
	Level       *string
}

type PieceFilter struct {
	Search string
	Level  *string
	Limit  int
	Offset int
}

type CreateLessonInput struct {
	StudentId    uuid.UUID
	PieceId      *uuid.UUID
	Date         time.Time
	Duration     int32
	Status       LessonStatus
	CancelReason *string
}

// UpdateLessonInput leaves nil fields untouched. ClearPiece and ClearCancelReason
// set the column to NULL.
type UpdateLessonInput struct {
	StudentId         *uuid.UUID
	PieceId           *uuid.UUID
	ClearPiece        bool
	Date              *time.Time
	Duration          *int32
	Status            *LessonStatus
	CancelReason      *string
	ClearCancelReason bool
}

func (in *UpdateLessonInput) IsEmpty() bool {
	return in.StudentId == nil && in.PieceId == nil && !in.ClearPiece &&
		in.Date == nil && in.Duration == nil && in.Status == nil &&
		in.CancelReason == nil && !in.ClearCancelReason
}

type LessonFilter struct {
	TeacherId uuid.UUID
	StudentId uuid.UUID
	PieceId   uuid.UUID
	Statuses  []LessonStatus
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
	Desc      bool
}

type AvatarUpload struct {
	StudentId uuid.UUID `json:"studentId"`
	Key       string    `json:"key"`
	UploadURL string    `json:"uploadUrl"`
	Method    string    `json:"method"`
}
