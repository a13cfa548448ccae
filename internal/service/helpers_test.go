package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/ctxdata"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/service/mocks"
)

type deps struct {
	ctrl     *gomock.Controller
	users    *mocks.MockUserRepository
	accounts *mocks.MockAccountRepository
	sessions *mocks.MockSessionRepository
	teachers *mocks.MockTeacherRepository
	students *mocks.MockStudentRepository
	pieces   *mocks.MockPieceRepository
	lessons  *mocks.MockLessonRepository
	cache    *mocks.MockCache
	events   *mocks.MockEventSender
	avatars  *mocks.MockAvatarStore
	resolver *mocks.MockTeacherResolver
}

func newDeps(t *testing.T) *deps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &deps{
		ctrl:     ctrl,
		users:    mocks.NewMockUserRepository(ctrl),
		accounts: mocks.NewMockAccountRepository(ctrl),
		sessions: mocks.NewMockSessionRepository(ctrl),
		teachers: mocks.NewMockTeacherRepository(ctrl),
		students: mocks.NewMockStudentRepository(ctrl),
		pieces:   mocks.NewMockPieceRepository(ctrl),
		lessons:  mocks.NewMockLessonRepository(ctrl),
		cache:    mocks.NewMockCache(ctrl),
		events:   mocks.NewMockEventSender(ctrl),
		avatars:  mocks.NewMockAvatarStore(ctrl),
		resolver: mocks.NewMockTeacherResolver(ctrl),
	}
}

func userCtx(userID uuid.UUID) context.Context {
	return ctxdata.WithUserID(context.Background(), userID.String())
}

func ptr[T any](v T) *T {
	return &v
}

func teacherFixture() *model.Teacher {
	now := time.Now()
	return &model.Teacher{
		Id:         uuid.New(),
		UserId:     uuid.New(),
		HourlyRate: 3000,
		CreatedAt:  now,
		EditedAt:   now,
	}
}
