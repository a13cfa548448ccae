package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type LessonHandler struct {
	s LessonService
}

func NewLessonHandler(s LessonService) *LessonHandler {
	return &LessonHandler{s: s}
}

func (h *LessonHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Route("/lessons", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Post("/batch", h.CreateMany)
		r.Get("/", h.List)
		r.Delete("/", h.DeleteMany)
		r.Get("/stats", h.Stats)
		r.Get("/next", h.Next)
		r.Post("/cancel-range", h.CancelRange)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/cancel", h.Cancel)
	})
}

type createLessonRequest struct {
	StudentId    uuid.UUID          `json:"studentId" validate:"required"`
	PieceId      *uuid.UUID         `json:"pieceId"`
	Date         time.Time          `json:"date" validate:"required"`
	Duration     int32              `json:"duration" validate:"required,gt=0,lte=1440"`
	Status       model.LessonStatus `json:"status" validate:"omitempty,oneof=COMPLETE MAKEUP CANCELLED"`
	CancelReason *string            `json:"cancelReason" validate:"omitempty,max=1000"`
}

func (req *createLessonRequest) toInput() *model.CreateLessonInput {
	return &model.CreateLessonInput{
		StudentId:    req.StudentId,
		PieceId:      req.PieceId,
		Date:         req.Date,
		Duration:     req.Duration,
		Status:       req.Status,
		CancelReason: req.CancelReason,
	}
}

type updateLessonRequest struct {
	Id           uuid.UUID           `json:"-"`
	StudentId    *uuid.UUID          `json:"studentId"`
	PieceId      *uuid.UUID          `json:"pieceId"`
	ClearPiece   bool                `json:"clearPiece"`
	Date         *time.Time          `json:"date"`
	Duration     *int32              `json:"duration" validate:"omitempty,gt=0,lte=1440"`
	Status       *model.LessonStatus `json:"status" validate:"omitempty,oneof=COMPLETE MAKEUP CANCELLED"`
	CancelReason *string             `json:"cancelReason" validate:"omitempty,max=1000"`
}

type cancelLessonRequest struct {
	Id     uuid.UUID `json:"-"`
	Reason *string   `json:"reason" validate:"omitempty,max=1000"`
}

type cancelRangeRequest struct {
	From   time.Time `json:"from" validate:"required"`
	To     time.Time `json:"to" validate:"required,gtfield=From"`
	Reason *string   `json:"reason" validate:"omitempty,max=1000"`
}

// lessonFilterParser reads studentId, pieceId, status (comma separated),
// from, to, limit, offset and order=desc from the query string.
func lessonFilterParser(r *http.Request, req *model.LessonFilter) (err error) {
	q := r.URL.Query()
	if req.StudentId, err = queryUUID(r, "studentId"); err != nil {
		return err
	}
	if req.PieceId, err = queryUUID(r, "pieceId"); err != nil {
		return err
	}
	for _, raw := range q["status"] {
		for _, s := range strings.Split(raw, ",") {
			status, ok := model.LessonStatusFromString(strings.ToUpper(strings.TrimSpace(s)))
			if !ok {
				return fmt.Errorf("%w: unknown status %q", ErrBadRequest, s)
			}
			req.Statuses = append(req.Statuses, status)
		}
	}
	if req.From, err = queryTime(r, "from"); err != nil {
		return err
	}
	if req.To, err = queryTime(r, "to"); err != nil {
		return err
	}
	if req.Limit, err = queryInt(r, "limit"); err != nil {
		return err
	}
	if req.Offset, err = queryInt(r, "offset"); err != nil {
		return err
	}
	req.Desc = strings.EqualFold(q.Get("order"), "desc")
	return nil
}

func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *createLessonRequest) (*model.Lesson, error) {
		return h.s.Create(ctx, req.toInput())
	}, bodyParser[createLessonRequest], http.StatusCreated)(w, r)
}

func (h *LessonHandler) CreateMany(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *batchRequest[createLessonRequest]) ([]*model.Lesson, error) {
		return h.s.CreateMany(ctx, convertAll(req.Items, (*createLessonRequest).toInput))
	}, batchParser[createLessonRequest], http.StatusCreated)(w, r)
}

func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (*model.Lesson, error) {
		return h.s.Get(ctx, req.Id)
	}, idParser, http.StatusOK)(w, r)
}

func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *model.LessonFilter) (*listResponse[*model.Lesson], error) {
		lessons, total, err := h.s.List(ctx, req)
		if err != nil {
			return nil, err
		}
		return &listResponse[*model.Lesson]{Items: lessons, Total: total}, nil
	}, lessonFilterParser, http.StatusOK)(w, r)
}

func (h *LessonHandler) Next(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, _ *empty) (*model.Lesson, error) {
		return h.s.Next(ctx)
	}, nil, http.StatusOK)(w, r)
}

func (h *LessonHandler) Stats(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *model.LessonFilter) (*model.LessonStats, error) {
		return h.s.Stats(ctx, req)
	}, lessonFilterParser, http.StatusOK)(w, r)
}

func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *updateLessonRequest) (*model.Lesson, error) {
		return h.s.Update(ctx, req.Id, &model.UpdateLessonInput{
			StudentId:    req.StudentId,
			PieceId:      req.PieceId,
			ClearPiece:   req.ClearPiece,
			Date:         req.Date,
			Duration:     req.Duration,
			Status:       req.Status,
			CancelReason: req.CancelReason,
		})
	}, func(r *http.Request, req *updateLessonRequest) (err error) {
		if req.Id, err = parseUUIDParam(r, "id"); err != nil {
			return err
		}
		if err = decodeJSON(r, req); err != nil {
			return err
		}
		if req.ClearPiece && req.PieceId != nil {
			return fmt.Errorf("%w: pieceId and clearPiece are exclusive", ErrBadRequest)
		}
		return nil
	}, http.StatusOK)(w, r)
}

func (h *LessonHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *cancelLessonRequest) (*model.Lesson, error) {
		return h.s.Cancel(ctx, req.Id, req.Reason)
	}, func(r *http.Request, req *cancelLessonRequest) (err error) {
		if req.Id, err = parseUUIDParam(r, "id"); err != nil {
			return err
		}
		return decodeOptionalJSON(r, req)
	}, http.StatusOK)(w, r)
}

func (h *LessonHandler) CancelRange(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *cancelRangeRequest) (*countResponse, error) {
		n, err := h.s.CancelRange(ctx, req.From, req.To, req.Reason)
		if err != nil {
			return nil, err
		}
		return &countResponse{Count: n}, nil
	}, bodyParser[cancelRangeRequest], http.StatusOK)(w, r)
}

func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (*empty, error) {
		return nil, h.s.Delete(ctx, req.Id)
	}, idParser, http.StatusNoContent)(w, r)
}

func (h *LessonHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *model.LessonFilter) (*countResponse, error) {
		n, err := h.s.DeleteMany(ctx, req)
		if err != nil {
			return nil, err
		}
		return &countResponse{Count: n}, nil
	}, lessonFilterParser, http.StatusOK)(w, r)
}
