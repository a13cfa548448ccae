package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/ctxdata"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/service"
)

func TestGetMe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)
		userId := uuid.New()

		d.users.EXPECT().Get(gomock.Any(), userId).Return(&model.User{Id: userId}, nil)

		user, err := svc.GetMe(userCtx(userId))
		require.NoError(t, err)
		assert.Equal(t, userId, user.Id)
	})

	t.Run("InvalidUUIDInContext", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)

		_, err := svc.GetMe(ctxdata.WithUserID(context.Background(), "not-a-uuid"))
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})
}

func TestUpdateMe(t *testing.T) {
	t.Run("TrimsName", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)
		userId := uuid.New()

		d.users.EXPECT().Update(gomock.Any(), userId, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in *model.UpdateUserInput) (*model.User, error) {
				assert.Equal(t, "Clara", *in.Name)
				return &model.User{Id: userId, Name: in.Name}, nil
			})

		_, err := svc.UpdateMe(userCtx(userId), &model.UpdateUserInput{Name: ptr("  Clara ")})
		require.NoError(t, err)
	})

	t.Run("BlankName", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)

		_, err := svc.UpdateMe(userCtx(uuid.New()), &model.UpdateUserInput{Name: ptr("  ")})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})
}

func TestDeleteMe_TeacherOwnsData(t *testing.T) {
	d := newDeps(t)
	svc := service.NewUserService(d.users, d.accounts)
	userId := uuid.New()

	d.users.EXPECT().Delete(gomock.Any(), userId).Return(errdefs.ErrStillReferenced)

	assert.ErrorIs(t, svc.DeleteMe(userCtx(userId)), errdefs.ErrStillReferenced)
}

func TestUnlinkAccount(t *testing.T) {
	userId := uuid.New()
	google := &model.Account{UserId: userId, Provider: "google", ProviderAccountId: "g-1"}

	t.Run("OnlySignInMethod", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)

		d.users.EXPECT().Get(gomock.Any(), userId).Return(&model.User{Id: userId}, nil)
		d.accounts.EXPECT().ListByUser(gomock.Any(), userId).Return([]*model.Account{google}, nil)

		assert.ErrorIs(t, svc.UnlinkAccount(userCtx(userId), "google"), errdefs.ErrConflict)
	})

	t.Run("HasPassword", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)

		d.users.EXPECT().Get(gomock.Any(), userId).Return(&model.User{Id: userId, Password: ptr("hash")}, nil)
		d.accounts.EXPECT().ListByUser(gomock.Any(), userId).Return([]*model.Account{google}, nil)
		d.accounts.EXPECT().Delete(gomock.Any(), "google", "g-1").Return(nil)

		assert.NoError(t, svc.UnlinkAccount(userCtx(userId), "google"))
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)

		d.users.EXPECT().Get(gomock.Any(), userId).Return(&model.User{Id: userId}, nil)
		d.accounts.EXPECT().ListByUser(gomock.Any(), userId).Return([]*model.Account{google}, nil)

		assert.ErrorIs(t, svc.UnlinkAccount(userCtx(userId), "github"), errdefs.ErrNotFound)
	})
}

func TestListPublic(t *testing.T) {
	t.Run("PagesAndHidesPrivateFields", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)
		email := "clara@example.com"
		other := &model.User{Id: uuid.New(), Name: ptr("Clara"), Email: &email, Password: ptr("hash")}

		d.users.EXPECT().List(gomock.Any(), 50, 0).Return([]*model.User{other}, nil)
		d.users.EXPECT().Count(gomock.Any()).Return(int64(1), nil)

		users, total, err := svc.ListPublic(userCtx(uuid.New()), 0, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, other.Id, users[0].Id)
		assert.Equal(t, "Clara", *users[0].Name)
	})

	t.Run("CapsLimit", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)

		d.users.EXPECT().List(gomock.Any(), 200, 10).Return([]*model.User{}, nil)
		d.users.EXPECT().Count(gomock.Any()).Return(int64(0), nil)

		_, _, err := svc.ListPublic(userCtx(uuid.New()), 1000, 10)
		require.NoError(t, err)
	})

	t.Run("NegativeOffset", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)

		_, _, err := svc.ListPublic(userCtx(uuid.New()), 10, -1)
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewUserService(d.users, d.accounts)

		_, _, err := svc.ListPublic(context.Background(), 10, 0)
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})
}
