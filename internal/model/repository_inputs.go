package model

import (
	"time"

	"github.com/google/uuid"
)

type RepositoryCreateUserInput struct {
	Id            uuid.UUID
	Name          *string
	Email         *string
	EmailVerified *time.Time
	Image         *string
	Password      *string
}

type RepositoryUpsertAccountInput struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	Type              string
	Provider          string
	ProviderAccountId string
	RefreshToken      *string
	AccessToken       *string
	ExpiresAt         *int64
	TokenType         *string
	Scope             *string
	IdToken           *string
	SessionState      *string
}

type RepositoryCreateSessionInput struct {
	Id           uuid.UUID
	SessionToken string
	UserId       uuid.UUID
	Expires      time.Time
}

type RepositoryCreateTeacherInput struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	HourlyRate int32
}

type RepositoryCreateStudentInput struct {
	Id        uuid.UUID
	TeacherId uuid.UUID
	Name      string
	Avatar    *string
	Notes     *string
}

type RepositoryCreatePieceInput struct {
	Id          uuid.UUID
	Title       string
	Description *string
	Level       *string
}

type RepositoryCreateLessonInput struct {
	Id           uuid.UUID
	StudentId    uuid.UUID
	TeacherId    uuid.UUID
	PieceId      *uuid.UUID
	Date         time.Time
	Duration     int32
	Status       LessonStatus
	CancelReason *string
}

func (in *RepositoryCreateLessonInput) EndsAt() time.Time {
	return in.Date.Add(time.Duration(in.Duration) * time.Minute)
}
