package handler

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/oauth"
)

const stateCookie = "oauth_state"

type OAuthProvider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*model.OAuthProfile, error)
}

// OAuthHandler sends the browser to the provider and, on the way back,
// signs the user in and redirects to the frontend with the session token.
type OAuthHandler struct {
	provider    OAuthProvider
	auth        AuthService
	frontendURL string
}

func NewOAuthHandler(provider OAuthProvider, auth AuthService, frontendURL string) *OAuthHandler {
	return &OAuthHandler{provider: provider, auth: auth, frontendURL: frontendURL}
}

func (h *OAuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/auth/"+h.provider.Name(), h.Start)
	r.Get("/auth/"+h.provider.Name()+"/callback", h.Callback)
}

func (h *OAuthHandler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := oauth.NewState()
	if err != nil {
		writeErr(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.provider.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *OAuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	saved, err := r.Cookie(stateCookie)
	if err != nil || saved.Value == "" || saved.Value != q.Get("state") {
		h.fail(w, r, "invalid_state")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	code := q.Get("code")
	if code == "" {
		h.fail(w, r, "no_code")
		return
	}

	profile, err := h.provider.Exchange(ctx, code)
	if err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "oauth exchange failed", zap.String("provider", h.provider.Name()), zap.Error(err))
		}
		h.fail(w, r, "exchange_failed")
		return
	}

	result, err := h.auth.OAuthLogin(ctx, profile)
	if err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "oauth login failed", zap.String("provider", h.provider.Name()), zap.Error(err))
		}
		h.fail(w, r, "login_failed")
		return
	}

	// The fragment never reaches servers, logs or Referer headers.
	params := url.Values{
		"token":   {result.Token},
		"expires": {strconv.FormatInt(result.Expires.Unix(), 10)},
	}
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, h.frontendURL+"#"+params.Encode(), http.StatusTemporaryRedirect)
}

func (h *OAuthHandler) fail(w http.ResponseWriter, r *http.Request, reason string) {
	params := url.Values{"error": {reason}}
	http.Redirect(w, r, h.frontendURL+"?"+params.Encode(), http.StatusTemporaryRedirect)
}
