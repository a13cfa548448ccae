package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
)

var ErrBadRequest = errors.New("bad request")

var validate = validator.New(validator.WithRequiredStructEnabled())

func mapErr(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, errdefs.ErrValidation),
		errors.Is(err, errdefs.ErrNoFieldsToUpdate):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists),
		errors.Is(err, errdefs.ErrConflict),
		errors.Is(err, errdefs.ErrStillReferenced),
		errors.Is(err, errdefs.ErrInvalidReference):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// errorMessage hides internal errors from clients.
func errorMessage(err error, statusCode int) string {
	if statusCode == http.StatusInternalServerError {
		return http.StatusText(statusCode)
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := mapErr(err)
	ctx := r.Context()
	if logger, ok := logging.GetFromContext(ctx); ok {
		if statusCode == http.StatusInternalServerError {
			logger.Error(ctx, "request failed", zap.String("path", r.URL.Path), zap.Error(err))
		} else {
			logger.Debug(ctx, "request rejected", zap.Int("status", statusCode), zap.Error(err))
		}
	}
	writeErrorJSON(w, statusCode, errorMessage(err, statusCode))
}

// decodeJSON reads a JSON body into dst and runs struct validation on it.
func decodeJSON(r *http.Request, dst any) error {
	return readJSON(r, dst, false)
}

// decodeOptionalJSON accepts an empty body, whether or not the request
// declares its length.
func decodeOptionalJSON(r *http.Request, dst any) error {
	return readJSON(r, dst, true)
}

func readJSON(r *http.Request, dst any, optional bool) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid request body: %v", ErrBadRequest, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", ErrBadRequest, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param: %s", ErrBadRequest, key)
	}
	return val, nil
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val, err := parsePathParam(r, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", ErrBadRequest, key)
	}
	return id, nil
}

func queryUUID(r *http.Request, key string) (uuid.UUID, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", ErrBadRequest, key)
	}
	return id, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", ErrBadRequest, key)
	}
	return n, nil
}

// queryTime accepts RFC 3339 timestamps and plain dates.
func queryTime(r *http.Request, key string) (*time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, val); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid %s", ErrBadRequest, key)
}

type listResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

// Handle adapts a service call taking a parsed request to an http.HandlerFunc.
// parse fills the request from the path, query and body; a nil parse means
// the call takes no request.
func Handle[Req any, Resp any](
	method func(context.Context, *Req) (Resp, error),
	parse func(*http.Request, *Req) error,
	statusCode int,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := new(Req)
		if parse != nil {
			if err := parse(r, req); err != nil {
				writeErr(w, r, err)
				return
			}
		}

		resp, err := method(r.Context(), req)
		if err != nil {
			writeErr(w, r, err)
			return
		}
		if statusCode == http.StatusNoContent {
			w.WriteHeader(statusCode)
			return
		}
		writeJSON(w, statusCode, resp)
	}
}

// bodyParser decodes and validates the JSON body.
func bodyParser[Req any](r *http.Request, req *Req) error {
	return decodeJSON(r, req)
}

type idRequest struct {
	Id uuid.UUID
}

func idParser(r *http.Request, req *idRequest) error {
	id, err := parseUUIDParam(r, "id")
	req.Id = id
	return err
}

type empty struct{}

const maxBatchSize = 500

type batchRequest[T any] struct {
	Items []*T
}

// batchParser decodes a JSON array body and validates every element.
func batchParser[T any](r *http.Request, req *batchRequest[T]) error {
	if err := json.NewDecoder(r.Body).Decode(&req.Items); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", ErrBadRequest, err)
	}
	if len(req.Items) == 0 || len(req.Items) > maxBatchSize {
		return fmt.Errorf("%w: batch must hold 1 to %d items", ErrBadRequest, maxBatchSize)
	}
	for i, item := range req.Items {
		if item == nil {
			return fmt.Errorf("%w: item %d is null", ErrBadRequest, i)
		}
		if err := validate.Struct(item); err != nil {
			return fmt.Errorf("%w: item %d: %s", ErrBadRequest, i, validationMessage(err))
		}
	}
	return nil
}

// convertAll maps every batch item to its service input.
func convertAll[T any, U any](items []*T, convert func(*T) *U) []*U {
	out := make([]*U, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return out
}
