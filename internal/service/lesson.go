package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

// LessonService logs lessons for the calling teacher. Overlap detection
// lives in the repository, inside the write transaction.
type LessonService struct {
	lessons  LessonRepository
	students StudentRepository
	pieces   PieceRepository
	teachers TeacherResolver
	events   EventSender
	now      func() time.Time
}

func NewLessonService(
	lessons LessonRepository,
	students StudentRepository,
	pieces PieceRepository,
	teachers TeacherResolver,
	events EventSender,
) *LessonService {
	return &LessonService{
		lessons:  lessons,
		students: students,
		pieces:   pieces,
		teachers: teachers,
		events:   events,
		now:      time.Now,
	}
}

func normalizeReason(reason *string) *string {
	return trimmedOrNil(reason)
}

func validateStatusReason(status model.LessonStatus, reason *string) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown lesson status %q", errdefs.ErrValidation, status)
	}
	if reason != nil && status != model.LessonStatusCancelled {
		return fmt.Errorf("%w: cancel reason is only allowed on cancelled lessons", errdefs.ErrValidation)
	}
	return nil
}

func validateDuration(minutes int32) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", errdefs.ErrValidation)
	}
	return nil
}

// checkStudent maps a missing student to errdefs.ErrInvalidReference.
func (s *LessonService) checkStudent(ctx context.Context, teacherId, studentId uuid.UUID) error {
	student, err := s.students.Get(ctx, studentId)
	if errors.Is(err, errdefs.ErrNotFound) {
		return fmt.Errorf("%w: student %s", errdefs.ErrInvalidReference, studentId)
	}
	if err != nil {
		return err
	}
	if student.TeacherId != teacherId {
		return fmt.Errorf("%w: student belongs to another teacher", errdefs.ErrPermissionDenied)
	}
	return nil
}

func (s *LessonService) checkPiece(ctx context.Context, pieceId *uuid.UUID) error {
	if pieceId == nil {
		return nil
	}
	_, err := s.pieces.Get(ctx, *pieceId)
	if errors.Is(err, errdefs.ErrNotFound) {
		return fmt.Errorf("%w: piece %s", errdefs.ErrInvalidReference, *pieceId)
	}
	return err
}

func (s *LessonService) newLessonInput(ctx context.Context, teacherId uuid.UUID, input *model.CreateLessonInput, checked map[uuid.UUID]bool) (*model.RepositoryCreateLessonInput, error) {
	status := input.Status
	if status == "" {
		status = model.LessonStatusComplete
	}
	reason := normalizeReason(input.CancelReason)
	if err := validateStatusReason(status, reason); err != nil {
		return nil, err
	}
	if err := validateDuration(input.Duration); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", errdefs.ErrValidation)
	}

	if !checked[input.StudentId] {
		if err := s.checkStudent(ctx, teacherId, input.StudentId); err != nil {
			return nil, err
		}
		checked[input.StudentId] = true
	}
	if input.PieceId != nil && !checked[*input.PieceId] {
		if err := s.checkPiece(ctx, input.PieceId); err != nil {
			return nil, err
		}
		checked[*input.PieceId] = true
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return &model.RepositoryCreateLessonInput{
		Id:           id,
		StudentId:    input.StudentId,
		TeacherId:    teacherId,
		PieceId:      input.PieceId,
		Date:         input.Date.UTC(),
		Duration:     input.Duration,
		Status:       status,
		CancelReason: reason,
	}, nil
}

// Create logs a lesson. Status defaults to COMPLETE.
func (s *LessonService) Create(ctx context.Context, input *model.CreateLessonInput) (*model.Lesson, error) {
	teacher, err := s.teachers.CurrentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	repoInput, err := s.newLessonInput(ctx, teacher.Id, input, map[uuid.UUID]bool{})
	if err != nil {
		return nil, err
	}

	lesson, err := s.lessons.Create(ctx, repoInput)
	if err != nil {
		return nil, err
	}
	s.events.SendLessonEvent(ctx, model.NewLessonEvent(model.LessonEventCreated, lesson))
	return lesson, nil
}

// CreateMany logs all lessons or none.
func (s *LessonService) CreateMany(ctx context.Context, inputs []*model.CreateLessonInput) ([]*model.Lesson, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no lessons given", errdefs.ErrValidation)
	}
	teacher, err := s.teachers.CurrentTeacher(ctx)
	if err != nil {
		return nil, err
	}

	checked := map[uuid.UUID]bool{}
	repoInputs := make([]*model.RepositoryCreateLessonInput, len(inputs))
	for i, in := range inputs {
		if repoInputs[i], err = s.newLessonInput(ctx, teacher.Id, in, checked); err != nil {
			return nil, fmt.Errorf("lesson %d: %w", i, err)
		}
	}

	lessons, err := s.lessons.CreateMany(ctx, repoInputs)
	if err != nil {
		return nil, err
	}
	for _, l := range lessons {
		s.events.SendLessonEvent(ctx, model.NewLessonEvent(model.LessonEventCreated, l))
	}
	return lessons, nil
}

func (s *LessonService) Get(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	teacher, err := s.teachers.CurrentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	return s.getOwned(ctx, teacher.Id, id)
}

func (s *LessonService) getOwned(ctx context.Context, teacherId, id uuid.UUID) (*model.Lesson, error) {
	lesson, err := s.lessons.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if lesson.TeacherId != teacherId {
		return nil, errdefs.ErrPermissionDenied
	}
	return lesson, nil
}

func (s *LessonService) scopedFilter(ctx context.Context, filter *model.LessonFilter) (*model.LessonFilter, error) {
	teacher, err := s.teachers.CurrentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range filter.Statuses {
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: unknown lesson status %q", errdefs.ErrValidation, st)
		}
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, fmt.Errorf("%w: from must be before to", errdefs.ErrValidation)
	}
	f := *filter
	f.TeacherId = teacher.Id
	return &f, nil
}

func (s *LessonService) List(ctx context.Context, filter *model.LessonFilter) ([]*model.Lesson, int64, error) {
	f, err := s.scopedFilter(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if f.Limit, f.Offset, err = normalizePage(f.Limit, f.Offset); err != nil {
		return nil, 0, err
	}

	lessons, err := s.lessons.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.lessons.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return lessons, total, nil
}

// Next returns the caller's earliest lesson that has not started yet and is
// not cancelled.
func (s *LessonService) Next(ctx context.Context) (*model.Lesson, error) {
	now := s.now().UTC()
	f, err := s.scopedFilter(ctx, &model.LessonFilter{
		Statuses: []model.LessonStatus{model.LessonStatusComplete, model.LessonStatusMakeup},
		From:     &now,
	})
	if err != nil {
		return nil, err
	}
	return s.lessons.First(ctx, f)
}

// Update applies a partial change. Leaving CANCELLED drops the cancel reason.
func (s *LessonService) Update(ctx context.Context, id uuid.UUID, input *model.UpdateLessonInput) (*model.Lesson, error) {
	if input.IsEmpty() {
		return nil, errdefs.ErrNoFieldsToUpdate
	}
	teacher, err := s.teachers.CurrentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	current, err := s.getOwned(ctx, teacher.Id, id)
	if err != nil {
		return nil, err
	}

	if input.Duration != nil {
		if err := validateDuration(*input.Duration); err != nil {
			return nil, err
		}
	}
	if input.Date != nil && input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date must not be empty", errdefs.ErrValidation)
	}

	status := current.Status
	if input.Status != nil {
		status = *input.Status
	}
	input.CancelReason = normalizeReason(input.CancelReason)
	if err := validateStatusReason(status, input.CancelReason); err != nil {
		return nil, err
	}
	if status != model.LessonStatusCancelled && current.CancelReason != nil {
		input.ClearCancelReason = true
	}

	if input.StudentId != nil && *input.StudentId != current.StudentId {
		if err := s.checkStudent(ctx, teacher.Id, *input.StudentId); err != nil {
			return nil, err
		}
	}
	if input.PieceId != nil && !input.ClearPiece {
		if err := s.checkPiece(ctx, input.PieceId); err != nil {
			return nil, err
		}
	}

	lesson, err := s.lessons.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	eventType := model.LessonEventUpdated
	if current.Status != model.LessonStatusCancelled && lesson.Status == model.LessonStatusCancelled {
		eventType = model.LessonEventCancelled
	}
	s.events.SendLessonEvent(ctx, model.NewLessonEvent(eventType, lesson))
	return lesson, nil
}

func (s *LessonService) Cancel(ctx context.Context, id uuid.UUID, reason *string) (*model.Lesson, error) {
	status := model.LessonStatusCancelled
	input := &model.UpdateLessonInput{Status: &status, CancelReason: reason}
	if normalizeReason(reason) == nil {
		input.ClearCancelReason = true
	}
	return s.Update(ctx, id, input)
}

// CancelRange cancels every non-cancelled lesson of the caller in
// [from, to), e.g. for a holiday, and returns how many changed.
func (s *LessonService) CancelRange(ctx context.Context, from, to time.Time, reason *string) (int64, error) {
	if from.IsZero() || to.IsZero() {
		return 0, fmt.Errorf("%w: from and to are required", errdefs.ErrValidation)
	}
	f, err := s.scopedFilter(ctx, &model.LessonFilter{
		Statuses: []model.LessonStatus{model.LessonStatusComplete, model.LessonStatusMakeup},
		From:     &from,
		To:       &to,
	})
	if err != nil {
		return 0, err
	}
	return s.lessons.UpdateMany(ctx, f, model.LessonStatusCancelled, normalizeReason(reason))
}

func (s *LessonService) Delete(ctx context.Context, id uuid.UUID) error {
	lesson, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.lessons.Delete(ctx, id); err != nil {
		return err
	}
	s.events.SendLessonEvent(ctx, model.NewLessonEvent(model.LessonEventDeleted, lesson))
	return nil
}

// DeleteMany removes the caller's lessons matching filter. A filter without
// a student or a date bound is refused.
func (s *LessonService) DeleteMany(ctx context.Context, filter *model.LessonFilter) (int64, error) {
	if filter.StudentId == uuid.Nil && filter.From == nil && filter.To == nil {
		return 0, fmt.Errorf("%w: narrow the deletion by student or date", errdefs.ErrValidation)
	}
	f, err := s.scopedFilter(ctx, filter)
	if err != nil {
		return 0, err
	}
	f.Limit, f.Offset = 0, 0
	return s.lessons.DeleteMany(ctx, f)
}

func (s *LessonService) Stats(ctx context.Context, filter *model.LessonFilter) (*model.LessonStats, error) {
	f, err := s.scopedFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	f.Limit, f.Offset = 0, 0

	total, err := s.lessons.Aggregate(ctx, f)
	if err != nil {
		return nil, err
	}
	groups, err := s.lessons.GroupByStatus(ctx, f)
	if err != nil {
		return nil, err
	}
	return &model.LessonStats{Total: total, ByStatus: groups}, nil
}
