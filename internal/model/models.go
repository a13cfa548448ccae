package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID  `db:"id" json:"id"`
	Name          *string    `db:"name" json:"name"`
	Email         *string    `db:"email" json:"email"`
	EmailVerified *time.Time `db:"email_verified" json:"emailVerified"`
	Image         *string    `db:"image" json:"image"`
	Password      *string    `db:"password" json:"-"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	EditedAt      time.Time  `db:"edited_at" json:"editedAt"`
}

// Account links a user to an external auth provider.
type Account struct {
	Id                uuid.UUID `db:"id" json:"id"`
	UserId            uuid.UUID `db:"user_id" json:"userId"`
	Type              string    `db:"type" json:"type"`
	Provider          string    `db:"provider" json:"provider"`
	ProviderAccountId string    `db:"provider_account_id" json:"providerAccountId"`
	RefreshToken      *string   `db:"refresh_token" json:"-"`
	AccessToken       *string   `db:"access_token" json:"-"`
	ExpiresAt         *int64    `db:"expires_at" json:"expiresAt"`
	TokenType         *string   `db:"token_type" json:"tokenType"`
	Scope             *string   `db:"scope" json:"scope"`
	IdToken           *string   `db:"id_token" json:"-"`
	SessionState      *string   `db:"session_state" json:"sessionState"`
}

type Session struct {
	Id           uuid.UUID `db:"id" json:"id"`
	SessionToken string    `db:"session_token" json:"sessionToken"`
	UserId       uuid.UUID `db:"user_id" json:"userId"`
	Expires      time.Time `db:"expires" json:"expires"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.Expires)
}

type VerificationToken struct {
	Identifier string    `db:"identifier" json:"identifier"`
	Token      string    `db:"token" json:"-"`
	Expires    time.Time `db:"expires" json:"expires"`
}

type Teacher struct {
	Id         uuid.UUID `db:"id" json:"id"`
	UserId     uuid.UUID `db:"user_id" json:"userId"`
	HourlyRate int32     `db:"hourly_rate" json:"hourlyRate"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	EditedAt   time.Time `db:"edited_at" json:"editedAt"`
}

type Student struct {
	Id        uuid.UUID `db:"id" json:"id"`
	TeacherId uuid.UUID `db:"teacher_id" json:"teacherId"`
	Name      string    `db:"name" json:"name"`
	Avatar    *string   `db:"avatar" json:"avatar"`
	Notes     *string   `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	EditedAt  time.Time `db:"edited_at" json:"editedAt"`
}

type Piece struct {
	Id          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	Level       *string   `db:"level" json:"level"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	EditedAt    time.Time `db:"edited_at" json:"editedAt"`
}

type LessonStatus string

const (
	LessonStatusComplete  LessonStatus = "COMPLETE"
	LessonStatusMakeup    LessonStatus = "MAKEUP"
	LessonStatusCancelled LessonStatus = "CANCELLED"
)

func (s LessonStatus) String() string {
	return string(s)
}

func (s LessonStatus) IsValid() bool {
	switch s {
	case LessonStatusComplete, LessonStatusMakeup, LessonStatusCancelled:
		return true
	default:
		return false
	}
}

// IsBillable reports whether the teacher is paid for a lesson in this status.
func (s LessonStatus) IsBillable() bool {
	return s == LessonStatusComplete || s == LessonStatusMakeup
}

func LessonStatusFromString(s string) (LessonStatus, bool) {
	status := LessonStatus(s)
	return status, status.IsValid()
}

type Lesson struct {
	Id           uuid.UUID    `db:"id" json:"id"`
	StudentId    uuid.UUID    `db:"student_id" json:"studentId"`
	TeacherId    uuid.UUID    `db:"teacher_id" json:"teacherId"`
	PieceId      *uuid.UUID   `db:"piece_id" json:"pieceId"`
	Date         time.Time    `db:"date" json:"date"`
	Duration     int32        `db:"duration" json:"duration"`
	Status       LessonStatus `db:"status" json:"status"`
	CancelReason *string      `db:"cancel_reason" json:"cancelReason"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
	EditedAt     time.Time    `db:"edited_at" json:"editedAt"`
}

// EndsAt is the exclusive end of the lesson interval.
func (l *Lesson) EndsAt() time.Time {
	return l.Date.Add(time.Duration(l.Duration) * time.Minute)
}

// LessonAggregate is the result of count/sum aggregations over lessons.
type LessonAggregate struct {
	Count         int64 `db:"count" json:"count"`
	TotalDuration int64 `db:"total_duration" json:"totalDuration"`
}

type LessonStatusGroup struct {
	Status        LessonStatus `db:"status" json:"status"`
	Count         int64        `db:"count" json:"count"`
	TotalDuration int64        `db:"total_duration" json:"totalDuration"`
}

// StudentEarnings is the billed amount for one student over a period.
type StudentEarnings struct {
	StudentId       uuid.UUID `json:"studentId"`
	BillableLessons int       `json:"billableLessons"`
	BillableMinutes int64     `json:"billableMinutes"`
	Amount          int64     `json:"amount"`
}

type Earnings struct {
	TeacherId       uuid.UUID          `json:"teacherId"`
	HourlyRate      int32              `json:"hourlyRate"`
	From            *time.Time         `json:"from"`
	To              *time.Time         `json:"to"`
	BillableLessons int                `json:"billableLessons"`
	BillableMinutes int64              `json:"billableMinutes"`
	Total           int64              `json:"total"`
	ByStudent       []*StudentEarnings `json:"byStudent"`
}

// UserPublic is what other users may see.
type UserPublic struct {
	Id    uuid.UUID `json:"id"`
	Name  *string   `json:"name"`
	Image *string   `json:"image"`
}

type LessonStats struct {
	Total    *LessonAggregate     `json:"total"`
	ByStatus []*LessonStatusGroup `json:"byStatus"`
}
