package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/storage"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// StudentService scopes every operation to the calling teacher's students.
type StudentService struct {
	students StudentRepository
	teachers TeacherResolver
	avatars  AvatarStore
}

// NewStudentService accepts a nil avatars store; avatar operations then
// report errdefs.ErrNotFound.
func NewStudentService(students StudentRepository, teachers TeacherResolver, avatars AvatarStore) *StudentService {
	return &StudentService{students: students, teachers: teachers, avatars: avatars}
}

func normalizePage(limit, offset int) (int, int, error) {
	if limit < 0 || offset < 0 {
		return 0, 0, fmt.Errorf("%w: limit and offset must not be negative", errdefs.ErrValidation)
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return limit, offset, nil
}

func (s *StudentService) newStudentInput(teacherId uuid.UUID, input *model.CreateStudentInput) (*model.RepositoryCreateStudentInput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: student name is required", errdefs.ErrValidation)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return &model.RepositoryCreateStudentInput{
		Id:        id,
		TeacherId: teacherId,
		Name:      name,
		Notes:     input.Notes,
	}, nil
}

func (s *StudentService) Create(ctx context.Context, input *model.CreateStudentInput) (*model.Student, error) {
	teacher, err := s.teachers.CurrentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	repoInput, err := s.newStudentInput(teacher.Id, input)
	if err != nil {
		return nil, err
	}
	return s.students.Create(ctx, repoInput)
}

func (s *StudentService) CreateMany(ctx context.Context, inputs []*model.CreateStudentInput) ([]*model.Student, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no students given", errdefs.ErrValidation)
	}
	teacher, err := s.teachers.CurrentTeacher(ctx)
	if err != nil {
		return nil, err
	}

	repoInputs := make([]*model.RepositoryCreateStudentInput, len(inputs))
	for i, in := range inputs {
		if repoInputs[i], err = s.newStudentInput(teacher.Id, in); err != nil {
			return nil, fmt.Errorf("student %d: %w", i, err)
		}
	}
	return s.students.CreateMany(ctx, repoInputs)
}

// Get returns errdefs.ErrPermissionDenied for another teacher's student.
func (s *StudentService) Get(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	teacher, err := s.teachers.CurrentTeacher(ctx)
	if err != nil {
		return nil, err
	}
	return s.getOwned(ctx, teacher.Id, id)
}

func (s *StudentService) getOwned(ctx context.Context, teacherId, id uuid.UUID) (*model.Student, error) {
	student, err := s.students.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if student.TeacherId != teacherId {
		return nil, errdefs.ErrPermissionDenied
	}
	return student, nil
}

func (s *StudentService) List(ctx context.Context, filter *model.StudentFilter) ([]*model.Student, int64, error) {
	teacher, err := s.teachers.CurrentTeacher(ctx)
	if err != nil {
		return nil, 0, err
	}
	f := *filter
	f.TeacherId = teacher.Id
	if f.Limit, f.Offset, err = normalizePage(f.Limit, f.Offset); err != nil {
		return nil, 0, err
	}

	students, err := s.students.List(ctx, &f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.students.Count(ctx, &f)
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (s *StudentService) Update(ctx context.Context, id uuid.UUID, input *model.UpdateStudentInput) (*model.Student, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: student name must not be empty", errdefs.ErrValidation)
		}
		input.Name = &name
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.students.Update(ctx, id, input)
}

// Delete fails with errdefs.ErrStillReferenced while the student has lessons.
// The avatar object goes with the row; failing to remove it is only logged.
func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	student, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	if s.avatars != nil && student.Avatar != nil {
		if err := s.avatars.Delete(ctx, *student.Avatar); err != nil {
			logging.FromContext(ctx).Warn(ctx, "failed to delete avatar",
				zap.String("student_id", id.String()), zap.Error(err))
		}
	}
	return nil
}

// AvatarUploadURL points the student's avatar at a fresh object key and
// returns a presigned PUT URL for it.
func (s *StudentService) AvatarUploadURL(ctx context.Context, id uuid.UUID, filename string) (*model.AvatarUpload, error) {
	if s.avatars == nil {
		return nil, fmt.Errorf("%w: avatar storage is not configured", errdefs.ErrNotFound)
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	key, err := storage.AvatarKey(id, filename)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.PresignUpload(ctx, key)
	if err != nil {
		return nil, err
	}
	if _, err := s.students.Update(ctx, id, &model.UpdateStudentInput{Avatar: &key}); err != nil {
		return nil, err
	}
	return &model.AvatarUpload{StudentId: id, Key: key, UploadURL: url, Method: http.MethodPut}, nil
}

func (s *StudentService) AvatarDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	if s.avatars == nil {
		return "", fmt.Errorf("%w: avatar storage is not configured", errdefs.ErrNotFound)
	}
	student, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if student.Avatar == nil {
		return "", fmt.Errorf("%w: student has no avatar", errdefs.ErrNotFound)
	}
	return s.avatars.PresignDownload(ctx, *student.Avatar)
}
