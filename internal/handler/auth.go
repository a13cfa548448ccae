package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type AuthHandler struct {
	s AuthService
}

func NewAuthHandler(s AuthService) *AuthHandler {
	return &AuthHandler{s: s}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/verify/confirm", h.ConfirmEmail)

	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/auth/logout", h.Logout)
		r.Post("/auth/logout-all", h.LogoutAll)
		r.Post("/auth/verify/request", h.RequestEmailVerification)
	})
}

type registerRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type confirmEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

type verificationResponse struct {
	Expires time.Time `json:"expires"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *registerRequest) (*model.AuthResult, error) {
		return h.s.Register(ctx, &model.RegisterInput{Name: req.Name, Email: req.Email, Password: req.Password})
	}, bodyParser[registerRequest], http.StatusCreated)(w, r)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *loginRequest) (*model.AuthResult, error) {
		return h.s.Login(ctx, &model.LoginInput{Email: req.Email, Password: req.Password})
	}, bodyParser[loginRequest], http.StatusOK)(w, r)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, _ *empty) (*empty, error) {
		return nil, h.s.Logout(ctx)
	}, nil, http.StatusNoContent)(w, r)
}

func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, _ *empty) (*countResponse, error) {
		n, err := h.s.LogoutAll(ctx)
		if err != nil {
			return nil, err
		}
		return &countResponse{Count: n}, nil
	}, nil, http.StatusOK)(w, r)
}

func (h *AuthHandler) RequestEmailVerification(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, _ *empty) (*verificationResponse, error) {
		expires, err := h.s.RequestEmailVerification(ctx)
		if err != nil {
			return nil, err
		}
		return &verificationResponse{Expires: expires}, nil
	}, nil, http.StatusAccepted)(w, r)
}

func (h *AuthHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *confirmEmailRequest) (*model.User, error) {
		return h.s.ConfirmEmail(ctx, req.Email, req.Token)
	}, bodyParser[confirmEmailRequest], http.StatusOK)(w, r)
}
