package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type UserHandler struct {
	s UserService
}

func NewUserHandler(s UserService) *UserHandler {
	return &UserHandler{s: s}
}

func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/users/me", h.GetMe)
		r.Patch("/users/me", h.UpdateMe)
		r.Delete("/users/me", h.DeleteMe)
		r.Get("/users/me/accounts", h.ListAccounts)
		r.Delete("/users/me/accounts/{provider}", h.UnlinkAccount)
		r.Get("/users", h.ListUsers)
		r.Get("/users/{id}", h.GetUser)
	})
}

type updateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Image *string `json:"image" validate:"omitempty,url"`
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, _ *empty) (*model.User, error) {
		return h.s.GetMe(ctx)
	}, nil, http.StatusOK)(w, r)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (*model.UserPublic, error) {
		return h.s.GetPublic(ctx, req.Id)
	}, idParser, http.StatusOK)(w, r)
}

type pageRequest struct {
	Limit  int
	Offset int
}

func pageParser(r *http.Request, req *pageRequest) (err error) {
	if req.Limit, err = queryInt(r, "limit"); err != nil {
		return err
	}
	req.Offset, err = queryInt(r, "offset")
	return err
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *pageRequest) (*listResponse[*model.UserPublic], error) {
		users, total, err := h.s.ListPublic(ctx, req.Limit, req.Offset)
		if err != nil {
			return nil, err
		}
		return &listResponse[*model.UserPublic]{Items: users, Total: total}, nil
	}, pageParser, http.StatusOK)(w, r)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *updateUserRequest) (*model.User, error) {
		return h.s.UpdateMe(ctx, &model.UpdateUserInput{Name: req.Name, Image: req.Image})
	}, bodyParser[updateUserRequest], http.StatusOK)(w, r)
}

func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, _ *empty) (*empty, error) {
		return nil, h.s.DeleteMe(ctx)
	}, nil, http.StatusNoContent)(w, r)
}

func (h *UserHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, _ *empty) ([]*model.Account, error) {
		return h.s.ListAccounts(ctx)
	}, nil, http.StatusOK)(w, r)
}

type providerRequest struct {
	Provider string
}

func (h *UserHandler) UnlinkAccount(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *providerRequest) (*empty, error) {
		return nil, h.s.UnlinkAccount(ctx, req.Provider)
	}, func(r *http.Request, req *providerRequest) (err error) {
		req.Provider, err = parsePathParam(r, "provider")
		return err
	}, http.StatusNoContent)(w, r)
}
