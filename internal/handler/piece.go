package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type PieceHandler struct {
	s PieceService
}

func NewPieceHandler(s PieceService) *PieceHandler {
	return &PieceHandler{s: s}
}

func (h *PieceHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Route("/pieces", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Post("/batch", h.CreateMany)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

type createPieceRequest struct {
	Title       string  `json:"title" validate:"required,max=300"`
	Description *string `json:"description" validate:"omitempty,max=4000"`
	Level       *string `json:"level" validate:"omitempty,max=50"`
}

func (req *createPieceRequest) toInput() *model.CreatePieceInput {
	return &model.CreatePieceInput{Title: req.Title, Description: req.Description, Level: req.Level}
}

type updatePieceRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       *string   `json:"title" validate:"omitempty,min=1,max=300"`
	Description *string   `json:"description" validate:"omitempty,max=4000"`
	Level       *string   `json:"level" validate:"omitempty,max=50"`
}

func pieceListParser(r *http.Request, req *model.PieceFilter) (err error) {
	q := r.URL.Query()
	req.Search = q.Get("search")
	if level := q.Get("level"); level != "" {
		req.Level = &level
	}
	if req.Limit, err = queryInt(r, "limit"); err != nil {
		return err
	}
	req.Offset, err = queryInt(r, "offset")
	return err
}

func (h *PieceHandler) Create(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *createPieceRequest) (*model.Piece, error) {
		return h.s.Create(ctx, req.toInput())
	}, bodyParser[createPieceRequest], http.StatusCreated)(w, r)
}

func (h *PieceHandler) CreateMany(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *batchRequest[createPieceRequest]) ([]*model.Piece, error) {
		return h.s.CreateMany(ctx, convertAll(req.Items, (*createPieceRequest).toInput))
	}, batchParser[createPieceRequest], http.StatusCreated)(w, r)
}

func (h *PieceHandler) Get(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (*model.Piece, error) {
		return h.s.Get(ctx, req.Id)
	}, idParser, http.StatusOK)(w, r)
}

func (h *PieceHandler) List(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *model.PieceFilter) ([]*model.Piece, error) {
		return h.s.List(ctx, req)
	}, pieceListParser, http.StatusOK)(w, r)
}

func (h *PieceHandler) Update(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *updatePieceRequest) (*model.Piece, error) {
		return h.s.Update(ctx, req.Id, &model.UpdatePieceInput{
			Title:       req.Title,
			Description: req.Description,
			Level:       req.Level,
		})
	}, func(r *http.Request, req *updatePieceRequest) (err error) {
		if req.Id, err = parseUUIDParam(r, "id"); err != nil {
			return err
		}
		return decodeJSON(r, req)
	}, http.StatusOK)(w, r)
}

func (h *PieceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (*empty, error) {
		return nil, h.s.Delete(ctx, req.Id)
	}, idParser, http.StatusNoContent)(w, r)
}
