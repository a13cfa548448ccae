package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/ctxdata"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

// ── helpers ─────────────────────────────────────────────────────────

type authFunc func(ctx context.Context, token string) (*model.User, error)

func (f authFunc) Authenticate(ctx context.Context, token string) (*model.User, error) {
	return f(ctx, token)
}

// ── logging ─────────────────────────────────────────────────────────

func TestLoggingMiddleware(t *testing.T) {
	mw := NewLoggingMiddleware(logging.NewNop())

	t.Run("GeneratesTraceID", func(t *testing.T) {
		var seen string
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = ctxdata.GetTraceID(r.Context())
			_, ok := logging.GetFromContext(r.Context())
			assert.True(t, ok)
			w.WriteHeader(http.StatusTeapot)
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, w.Code)
		id, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
		assert.Equal(t, seen, w.Header().Get(TraceHeader))
	})

	t.Run("KeepsIncomingTraceID", func(t *testing.T) {
		incoming := uuid.NewString()
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(TraceHeader, incoming)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, incoming, w.Header().Get(TraceHeader))
	})
}

// ── auth ────────────────────────────────────────────────────────────

func TestAuthMiddleware(t *testing.T) {
	userId := uuid.New()
	okAuth := authFunc(func(_ context.Context, token string) (*model.User, error) {
		if token != "good" {
			return nil, errdefs.ErrAuthentication
		}
		return &model.User{Id: userId}, nil
	})

	tests := []struct {
		name   string
		header string
		auth   Authenticator
		status int
	}{
		{"NoHeader", "", okAuth, http.StatusUnauthorized},
		{"WrongScheme", "Basic good", okAuth, http.StatusUnauthorized},
		{"EmptyToken", "Bearer ", okAuth, http.StatusUnauthorized},
		{"InvalidToken", "Bearer bad", okAuth, http.StatusUnauthorized},
		{"Success", "Bearer good", okAuth, http.StatusOK},
		{"LowercaseScheme", "bearer good", okAuth, http.StatusOK},
		{"BackendFailure", "Bearer good", authFunc(func(context.Context, string) (*model.User, error) {
			return nil, errors.New("db down")
		}), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthMiddleware(tc.auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := ctxdata.GetUserID(r.Context())
				require.True(t, ok)
				assert.Equal(t, userId.String(), id)
				token, ok := ctxdata.GetSessionToken(r.Context())
				require.True(t, ok)
				assert.Equal(t, "good", token)
			}))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

// ── metrics ─────────────────────────────────────────────────────────

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(NewMetricsMiddleware())
	r.Get("/lessons/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/lessons/{id}", "404")
	before := testutil.ToFloat64(counter)

	for range 2 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lessons/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpRequestsInFlight))
}
