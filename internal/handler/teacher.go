package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type TeacherHandler struct {
	s TeacherService
}

func NewTeacherHandler(s TeacherService) *TeacherHandler {
	return &TeacherHandler{s: s}
}

func (h *TeacherHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/teachers", h.CreateProfile)
		r.Get("/teachers/me", h.GetMine)
		r.Put("/teachers/me", h.PutProfile)
		r.Patch("/teachers/me", h.UpdateMine)
		r.Delete("/teachers/me", h.DeleteMine)
		r.Get("/teachers/me/earnings", h.Earnings)
	})
}

type teacherRequest struct {
	HourlyRate *int32 `json:"hourlyRate" validate:"required,gte=0"`
}

type updateTeacherRequest struct {
	HourlyRate *int32 `json:"hourlyRate" validate:"omitempty,gte=0"`
}

type periodRequest struct {
	From *time.Time
	To   *time.Time
}

func periodParser(r *http.Request, req *periodRequest) (err error) {
	if req.From, err = queryTime(r, "from"); err != nil {
		return err
	}
	if req.To, err = queryTime(r, "to"); err != nil {
		return err
	}
	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		return fmt.Errorf("%w: from must be before to", ErrBadRequest)
	}
	return nil
}

func (h *TeacherHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *teacherRequest) (*model.Teacher, error) {
		return h.s.CreateProfile(ctx, &model.CreateTeacherInput{HourlyRate: *req.HourlyRate})
	}, bodyParser[teacherRequest], http.StatusCreated)(w, r)
}

func (h *TeacherHandler) PutProfile(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *teacherRequest) (*model.Teacher, error) {
		return h.s.PutProfile(ctx, &model.CreateTeacherInput{HourlyRate: *req.HourlyRate})
	}, bodyParser[teacherRequest], http.StatusOK)(w, r)
}

func (h *TeacherHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, _ *empty) (*model.Teacher, error) {
		return h.s.GetMine(ctx)
	}, nil, http.StatusOK)(w, r)
}

func (h *TeacherHandler) UpdateMine(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *updateTeacherRequest) (*model.Teacher, error) {
		return h.s.UpdateMine(ctx, &model.UpdateTeacherInput{HourlyRate: req.HourlyRate})
	}, bodyParser[updateTeacherRequest], http.StatusOK)(w, r)
}

func (h *TeacherHandler) DeleteMine(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, _ *empty) (*empty, error) {
		return nil, h.s.DeleteMine(ctx)
	}, nil, http.StatusNoContent)(w, r)
}

func (h *TeacherHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *periodRequest) (*model.Earnings, error) {
		return h.s.Earnings(ctx, req.From, req.To)
	}, periodParser, http.StatusOK)(w, r)
}
