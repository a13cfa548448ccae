package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type StudentHandler struct {
	s StudentService
}

func NewStudentHandler(s StudentService) *StudentHandler {
	return &StudentHandler{s: s}
}

func (h *StudentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Route("/students", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Post("/batch", h.CreateMany)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/avatar", h.AvatarUpload)
		r.Get("/{id}/avatar", h.AvatarDownload)
	})
}

type createStudentRequest struct {
	Name  string  `json:"name" validate:"required,max=200"`
	Notes *string `json:"notes" validate:"omitempty,max=4000"`
}

func (req *createStudentRequest) toInput() *model.CreateStudentInput {
	return &model.CreateStudentInput{Name: req.Name, Notes: req.Notes}
}

type updateStudentRequest struct {
	Id    uuid.UUID `json:"-"`
	Name  *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Notes *string   `json:"notes" validate:"omitempty,max=4000"`
}

type avatarUploadRequest struct {
	Id       uuid.UUID `json:"-"`
	Filename string    `json:"filename" validate:"required,max=255"`
}

type avatarURLResponse struct {
	URL string `json:"url"`
}

func studentListParser(r *http.Request, req *model.StudentFilter) (err error) {
	req.Search = r.URL.Query().Get("search")
	if req.Limit, err = queryInt(r, "limit"); err != nil {
		return err
	}
	req.Offset, err = queryInt(r, "offset")
	return err
}

func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *createStudentRequest) (*model.Student, error) {
		return h.s.Create(ctx, req.toInput())
	}, bodyParser[createStudentRequest], http.StatusCreated)(w, r)
}

func (h *StudentHandler) CreateMany(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *batchRequest[createStudentRequest]) ([]*model.Student, error) {
		return h.s.CreateMany(ctx, convertAll(req.Items, (*createStudentRequest).toInput))
	}, batchParser[createStudentRequest], http.StatusCreated)(w, r)
}

func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (*model.Student, error) {
		return h.s.Get(ctx, req.Id)
	}, idParser, http.StatusOK)(w, r)
}

func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *model.StudentFilter) (*listResponse[*model.Student], error) {
		students, total, err := h.s.List(ctx, req)
		if err != nil {
			return nil, err
		}
		return &listResponse[*model.Student]{Items: students, Total: total}, nil
	}, studentListParser, http.StatusOK)(w, r)
}

func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *updateStudentRequest) (*model.Student, error) {
		return h.s.Update(ctx, req.Id, &model.UpdateStudentInput{Name: req.Name, Notes: req.Notes})
	}, func(r *http.Request, req *updateStudentRequest) (err error) {
		if req.Id, err = parseUUIDParam(r, "id"); err != nil {
			return err
		}
		return decodeJSON(r, req)
	}, http.StatusOK)(w, r)
}

func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (*empty, error) {
		return nil, h.s.Delete(ctx, req.Id)
	}, idParser, http.StatusNoContent)(w, r)
}

func (h *StudentHandler) AvatarUpload(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *avatarUploadRequest) (*model.AvatarUpload, error) {
		return h.s.AvatarUploadURL(ctx, req.Id, req.Filename)
	}, func(r *http.Request, req *avatarUploadRequest) (err error) {
		if req.Id, err = parseUUIDParam(r, "id"); err != nil {
			return err
		}
		return decodeJSON(r, req)
	}, http.StatusOK)(w, r)
}

func (h *StudentHandler) AvatarDownload(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (*avatarURLResponse, error) {
		url, err := h.s.AvatarDownloadURL(ctx, req.Id)
		if err != nil {
			return nil, err
		}
		return &avatarURLResponse{URL: url}, nil
	}, idParser, http.StatusOK)(w, r)
}
