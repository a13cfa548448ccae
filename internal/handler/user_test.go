package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type fakeUsers struct {
	UserService
	listPublic func(ctx context.Context, limit, offset int) ([]*model.UserPublic, int64, error)
}

func (f *fakeUsers) ListPublic(ctx context.Context, limit, offset int) ([]*model.UserPublic, int64, error) {
	return f.listPublic(ctx, limit, offset)
}

func userRouter(s UserService) http.Handler {
	r := chi.NewRouter()
	NewUserHandler(s).RegisterRoutes(r, passAuth)
	return r
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		h := userRouter(&fakeUsers{listPublic: func(_ context.Context, limit, offset int) ([]*model.UserPublic, int64, error) {
			assert.Equal(t, 10, limit)
			assert.Equal(t, 30, offset)
			return []*model.UserPublic{{Id: id}}, 31, nil
		}})

		w := serve(h, http.MethodGet, "/users?limit=10&offset=30", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody[listResponse[model.UserPublic]](t, w)
		assert.Equal(t, int64(31), body.Total)
		require.Len(t, body.Items, 1)
		assert.Equal(t, id, body.Items[0].Id)
	})

	t.Run("BadLimit", func(t *testing.T) {
		h := userRouter(&fakeUsers{})
		w := serve(h, http.MethodGet, "/users?limit=ten", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ServiceValidation", func(t *testing.T) {
		h := userRouter(&fakeUsers{listPublic: func(context.Context, int, int) ([]*model.UserPublic, int64, error) {
			return nil, 0, errdefs.ErrValidation
		}})
		w := serve(h, http.MethodGet, "/users?offset=-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
