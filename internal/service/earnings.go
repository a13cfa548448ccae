package service

import (
	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

// LessonAmount is hourlyRate * minutes / 60, rounded half up.
func LessonAmount(hourlyRate, minutes int32) int64 {
	return (int64(hourlyRate)*int64(minutes) + 30) / 60
}

// CalculateEarnings rounds each lesson on its own, then sums. Lessons that
// are not billable are skipped. Students appear in the order of their first
// billable lesson.
func CalculateEarnings(hourlyRate int32, lessons []*model.Lesson) *model.Earnings {
	earnings := &model.Earnings{
		HourlyRate: hourlyRate,
		ByStudent:  []*model.StudentEarnings{},
	}
	byStudent := make(map[uuid.UUID]*model.StudentEarnings)

	for _, l := range lessons {
		if !l.Status.IsBillable() {
			continue
		}
		amount := LessonAmount(hourlyRate, l.Duration)

		earnings.BillableLessons++
		earnings.BillableMinutes += int64(l.Duration)
		earnings.Total += amount

		se, ok := byStudent[l.StudentId]
		if !ok {
			se = &model.StudentEarnings{StudentId: l.StudentId}
			byStudent[l.StudentId] = se
			earnings.ByStudent = append(earnings.ByStudent, se)
		}
		se.BillableLessons++
		se.BillableMinutes += int64(l.Duration)
		se.Amount += amount
	}
	return earnings
}
