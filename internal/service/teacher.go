package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

const teacherCacheTTL = 5 * time.Minute

type TeacherService struct {
	teachers TeacherRepository
	lessons  LessonRepository
	cache    Cache
}

func NewTeacherService(teachers TeacherRepository, lessons LessonRepository, cache Cache) *TeacherService {
	return &TeacherService{teachers: teachers, lessons: lessons, cache: cache}
}

func teacherCacheKey(userId uuid.UUID) string {
	return "teacher:user:" + userId.String()
}

func validateHourlyRate(rate int32) error {
	if rate < 0 {
		return fmt.Errorf("%w: hourly rate must not be negative", errdefs.ErrValidation)
	}
	return nil
}

// CreateProfile makes the caller a teacher. Each user has at most one
// profile; a second attempt fails with errdefs.ErrAlreadyExists.
func (s *TeacherService) CreateProfile(ctx context.Context, input *model.CreateTeacherInput) (*model.Teacher, error) {
	userId, err := currentUserId(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateHourlyRate(input.HourlyRate); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	teacher, err := s.teachers.Create(ctx, &model.RepositoryCreateTeacherInput{
		Id:         id,
		UserId:     userId,
		HourlyRate: input.HourlyRate,
	})
	if err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, teacherCacheKey(userId))
	return teacher, nil
}

// PutProfile creates the caller's profile or replaces its hourly rate.
func (s *TeacherService) PutProfile(ctx context.Context, input *model.CreateTeacherInput) (*model.Teacher, error) {
	userId, err := currentUserId(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateHourlyRate(input.HourlyRate); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	teacher, err := s.teachers.Upsert(ctx, &model.RepositoryCreateTeacherInput{
		Id:         id,
		UserId:     userId,
		HourlyRate: input.HourlyRate,
	})
	if err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, teacherCacheKey(userId))
	return teacher, nil
}

// CurrentTeacher returns the caller's profile. Callers without one get
// errdefs.ErrPermissionDenied.
func (s *TeacherService) CurrentTeacher(ctx context.Context) (*model.Teacher, error) {
	teacher, err := s.GetMine(ctx)
	if errors.Is(err, errdefs.ErrNotFound) {
		return nil, fmt.Errorf("%w: teacher profile required", errdefs.ErrPermissionDenied)
	}
	return teacher, err
}

func (s *TeacherService) GetMine(ctx context.Context) (*model.Teacher, error) {
	userId, err := currentUserId(ctx)
	if err != nil {
		return nil, err
	}

	key := teacherCacheKey(userId)
	if data, ok := s.cache.Get(ctx, key); ok {
		teacher := &model.Teacher{}
		if json.Unmarshal(data, teacher) == nil {
			return teacher, nil
		}
	}

	teacher, err := s.teachers.GetByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(teacher); err == nil {
		s.cache.Set(ctx, key, data, teacherCacheTTL)
	}
	return teacher, nil
}

func (s *TeacherService) UpdateMine(ctx context.Context, input *model.UpdateTeacherInput) (*model.Teacher, error) {
	if input.HourlyRate != nil {
		if err := validateHourlyRate(*input.HourlyRate); err != nil {
			return nil, err
		}
	}
	current, err := s.GetMine(ctx)
	if err != nil {
		return nil, err
	}

	teacher, err := s.teachers.Update(ctx, current.Id, input)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, teacherCacheKey(current.UserId))
	return teacher, nil
}

// DeleteMine fails with errdefs.ErrStillReferenced while students or lessons
// belong to the caller.
func (s *TeacherService) DeleteMine(ctx context.Context) error {
	current, err := s.GetMine(ctx)
	if err != nil {
		return err
	}
	if err := s.teachers.Delete(ctx, current.Id); err != nil {
		return err
	}
	s.cache.Delete(ctx, teacherCacheKey(current.UserId))
	return nil
}

// Earnings totals billable lessons in [from, to). Either bound may be nil.
func (s *TeacherService) Earnings(ctx context.Context, from, to *time.Time) (*model.Earnings, error) {
	if from != nil && to != nil && !from.Before(*to) {
		return nil, fmt.Errorf("%w: from must be before to", errdefs.ErrValidation)
	}
	teacher, err := s.CurrentTeacher(ctx)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessons.List(ctx, &model.LessonFilter{
		TeacherId: teacher.Id,
		Statuses:  []model.LessonStatus{model.LessonStatusComplete, model.LessonStatusMakeup},
		From:      from,
		To:        to,
	})
	if err != nil {
		return nil, err
	}

	earnings := CalculateEarnings(teacher.HourlyRate, lessons)
	earnings.TeacherId = teacher.Id
	earnings.From = from
	earnings.To = to
	return earnings, nil
}
