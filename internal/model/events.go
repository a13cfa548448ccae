package model

import (
	"time"

	"github.com/google/uuid"
)

type LessonEventType string

const (
	LessonEventCreated   LessonEventType = "created"
	LessonEventUpdated   LessonEventType = "updated"
	LessonEventCancelled LessonEventType = "cancelled"
	LessonEventDeleted   LessonEventType = "deleted"
)

type LessonEvent struct {
	EventType    LessonEventType `json:"event_type"`
	LessonId     uuid.UUID       `json:"lesson_id"`
	TeacherId    uuid.UUID       `json:"teacher_id"`
	StudentId    uuid.UUID       `json:"student_id"`
	Date         time.Time       `json:"date"`
	Duration     int32           `json:"duration"`
	Status       LessonStatus    `json:"status"`
	CancelReason *string         `json:"cancel_reason,omitempty"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

func NewLessonEvent(eventType LessonEventType, l *Lesson) *LessonEvent {
	return &LessonEvent{
		EventType:    eventType,
		LessonId:     l.Id,
		TeacherId:    l.TeacherId,
		StudentId:    l.StudentId,
		Date:         l.Date,
		Duration:     l.Duration,
		Status:       l.Status,
		CancelReason: l.CancelReason,
		OccurredAt:   time.Now().UTC(),
	}
}

type AuthEventType string

const (
	AuthEventVerificationRequested AuthEventType = "verification_requested"
	AuthEventUserRegistered        AuthEventType = "user_registered"
)

// AuthEvent is consumed by whatever delivers mail. Token is the raw,
// unhashed verification token and is only set for verification requests.
type AuthEvent struct {
	EventType  AuthEventType `json:"event_type"`
	UserId     uuid.UUID     `json:"user_id"`
	Email      string        `json:"email"`
	Token      string        `json:"token,omitempty"`
	Expires    *time.Time    `json:"expires,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
