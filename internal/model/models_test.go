package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLessonStatus(t *testing.T) {
	tests := []struct {
		status   LessonStatus
		valid    bool
		billable bool
	}{
		{LessonStatusComplete, true, true},
		{LessonStatusMakeup, true, true},
		{LessonStatusCancelled, true, false},
		{LessonStatus("SCHEDULED"), false, false},
		{LessonStatus("complete"), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.status.IsValid())
			assert.Equal(t, tc.billable, tc.status.IsBillable())
		})
	}
}

func TestLessonEndsAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	l := &Lesson{Date: start, Duration: 45}
	assert.Equal(t, start.Add(45*time.Minute), l.EndsAt())
}

func TestSessionIsExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, (&Session{Expires: now}).IsExpired(now))
	assert.True(t, (&Session{Expires: now.Add(-time.Second)}).IsExpired(now))
	assert.False(t, (&Session{Expires: now.Add(time.Second)}).IsExpired(now))
}

func TestUpdateLessonInputIsEmpty(t *testing.T) {
	assert.True(t, (&UpdateLessonInput{}).IsEmpty())
	assert.False(t, (&UpdateLessonInput{ClearPiece: true}).IsEmpty())
	d := int32(30)
	assert.False(t, (&UpdateLessonInput{Duration: &d}).IsEmpty())
}
