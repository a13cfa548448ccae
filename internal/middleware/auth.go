package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/ctxdata"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*model.User, error)
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// NewAuthMiddleware resolves the bearer session token and stores the user id
// and the raw token in the request context.
func NewAuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no bearer token", zap.String("path", r.URL.Path))
				}
				writeUnauthorized(w)
				return
			}

			user, err := auth.Authenticate(ctx, token)
			if err != nil {
				if errors.Is(err, errdefs.ErrAuthentication) {
					if logger, ok := logging.GetFromContext(ctx); ok {
						logger.Info(ctx, "invalid session", zap.String("path", r.URL.Path))
					}
					writeUnauthorized(w)
					return
				}
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Error(ctx, "error while authenticating",
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Error(err),
					)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"Internal Server Error"}`))
				return
			}

			ctx = ctxdata.WithUserID(ctx, user.Id.String())
			ctx = ctxdata.WithSessionToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthenticated"}`))
}
