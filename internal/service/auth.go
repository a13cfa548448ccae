package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/ctxdata"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72

	AccountTypeOAuth = "oauth"
)

type AuthService struct {
	users           UserRepository
	accounts        AccountRepository
	sessions        SessionRepository
	events          EventSender
	sessionTTL      time.Duration
	verificationTTL time.Duration
	now             func() time.Time
}

func NewAuthService(
	users UserRepository,
	accounts AccountRepository,
	sessions SessionRepository,
	events EventSender,
	sessionTTL time.Duration,
	verificationTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:           users,
		accounts:        accounts,
		sessions:        sessions,
		events:          events,
		sessionTTL:      sessionTTL,
		verificationTTL: verificationTTL,
		now:             time.Now,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email", errdefs.ErrValidation)
	}
	return email, nil
}

func (s *AuthService) Register(ctx context.Context, input *model.RegisterInput) (*model.AuthResult, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if n := len(input.Password); n < minPasswordLength || n > maxPasswordLength {
		return nil, fmt.Errorf("%w: password must be %d to %d characters", errdefs.ErrValidation, minPasswordLength, maxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.RepositoryCreateUserInput{
		Id:       id,
		Name:     trimmedOrNil(input.Name),
		Email:    &email,
		Password: &hashed,
	})
	if err != nil {
		return nil, err
	}

	s.events.SendAuthEvent(ctx, &model.AuthEvent{
		EventType:  model.AuthEventUserRegistered,
		UserId:     user.Id,
		Email:      email,
		OccurredAt: s.now().UTC(),
	})

	return s.startSession(ctx, user)
}

// Login answers every failure with the same error so callers cannot probe
// which emails are registered.
func (s *AuthService) Login(ctx context.Context, input *model.LoginInput) (*model.AuthResult, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, errdefs.ErrAuthentication
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, errdefs.ErrNotFound) {
		return nil, errdefs.ErrAuthentication
	}
	if err != nil {
		return nil, err
	}
	if user.Password == nil {
		return nil, errdefs.ErrAuthentication
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)); err != nil {
		return nil, errdefs.ErrAuthentication
	}

	return s.startSession(ctx, user)
}

func (s *AuthService) startSession(ctx context.Context, user *model.User) (*model.AuthResult, error) {
	raw, hashed, err := newToken()
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Create(ctx, &model.RepositoryCreateSessionInput{
		Id:           id,
		SessionToken: hashed,
		UserId:       user.Id,
		Expires:      s.now().Add(s.sessionTTL),
	})
	if err != nil {
		return nil, err
	}

	return &model.AuthResult{User: user, Token: raw, Expires: session.Expires}, nil
}

// Authenticate resolves a bearer token to its user. Expired sessions are
// deleted. A session past half of its lifetime is extended by a full TTL.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*model.User, error) {
	if rawToken == "" {
		return nil, errdefs.ErrAuthentication
	}
	hashed := hashToken(rawToken)

	session, err := s.sessions.GetByToken(ctx, hashed)
	if errors.Is(err, errdefs.ErrNotFound) {
		return nil, errdefs.ErrAuthentication
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	if session.IsExpired(now) {
		if err := s.sessions.DeleteByToken(ctx, hashed); err != nil && !errors.Is(err, errdefs.ErrNotFound) {
			logging.FromContext(ctx).Warn(ctx, "failed to delete expired session", zap.Error(err))
		}
		return nil, errdefs.ErrAuthentication
	}

	if session.Expires.Sub(now) < s.sessionTTL/2 {
		if _, err := s.sessions.UpdateExpires(ctx, hashed, now.Add(s.sessionTTL)); err != nil {
			logging.FromContext(ctx).Warn(ctx, "failed to extend session", zap.Error(err))
		}
	}

	user, err := s.users.Get(ctx, session.UserId)
	if errors.Is(err, errdefs.ErrNotFound) {
		return nil, errdefs.ErrAuthentication
	}
	return user, err
}

// Logout ends the session the request was authenticated with. Ending an
// already gone session is not an error.
func (s *AuthService) Logout(ctx context.Context) error {
	raw, ok := ctxdata.GetSessionToken(ctx)
	if !ok {
		return errdefs.ErrAuthentication
	}
	err := s.sessions.DeleteByToken(ctx, hashToken(raw))
	if err != nil && !errors.Is(err, errdefs.ErrNotFound) {
		return err
	}
	return nil
}

func (s *AuthService) LogoutAll(ctx context.Context) (int64, error) {
	userId, err := currentUserId(ctx)
	if err != nil {
		return 0, err
	}
	return s.sessions.DeleteByUser(ctx, userId)
}

// RequestEmailVerification issues a verification token for the caller's
// email. The raw token leaves the service only inside the published event.
func (s *AuthService) RequestEmailVerification(ctx context.Context) (time.Time, error) {
	userId, err := currentUserId(ctx)
	if err != nil {
		return time.Time{}, err
	}
	user, err := s.users.Get(ctx, userId)
	if err != nil {
		return time.Time{}, err
	}
	if user.Email == nil {
		return time.Time{}, fmt.Errorf("%w: user has no email", errdefs.ErrValidation)
	}
	if user.EmailVerified != nil {
		return time.Time{}, fmt.Errorf("%w: email already verified", errdefs.ErrConflict)
	}

	raw, hashed, err := newToken()
	if err != nil {
		return time.Time{}, err
	}
	token, err := s.sessions.CreateVerificationToken(ctx, &model.VerificationToken{
		Identifier: *user.Email,
		Token:      hashed,
		Expires:    s.now().Add(s.verificationTTL),
	})
	if err != nil {
		return time.Time{}, err
	}

	s.events.SendAuthEvent(ctx, &model.AuthEvent{
		EventType:  model.AuthEventVerificationRequested,
		UserId:     user.Id,
		Email:      *user.Email,
		Token:      raw,
		Expires:    &token.Expires,
		OccurredAt: s.now().UTC(),
	})
	return token.Expires, nil
}

// ConfirmEmail consumes the token. A token works once, and an expired token
// is consumed without verifying anything.
func (s *AuthService) ConfirmEmail(ctx context.Context, email, rawToken string) (*model.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.UseVerificationToken(ctx, email, hashToken(rawToken))
	if errors.Is(err, errdefs.ErrNotFound) {
		return nil, fmt.Errorf("%w: invalid verification token", errdefs.ErrAuthentication)
	}
	if err != nil {
		return nil, err
	}
	if !s.now().Before(token.Expires) {
		return nil, fmt.Errorf("%w: verification token expired", errdefs.ErrAuthentication)
	}

	return s.users.MarkEmailVerified(ctx, email)
}

// OAuthLogin signs in through an external provider. An existing link is
// refreshed; otherwise a verified email joins the matching user, and anything
// else creates a new user.
func (s *AuthService) OAuthLogin(ctx context.Context, profile *model.OAuthProfile) (*model.AuthResult, error) {
	if profile.Provider == "" || profile.ProviderAccountId == "" {
		return nil, fmt.Errorf("%w: incomplete provider profile", errdefs.ErrValidation)
	}

	accountId, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	accountInput := &model.RepositoryUpsertAccountInput{
		Id:                accountId,
		Type:              AccountTypeOAuth,
		Provider:          profile.Provider,
		ProviderAccountId: profile.ProviderAccountId,
		RefreshToken:      profile.RefreshToken,
		AccessToken:       profile.AccessToken,
		ExpiresAt:         profile.ExpiresAt,
		TokenType:         profile.TokenType,
		Scope:             profile.Scope,
		IdToken:           profile.IdToken,
	}

	account, err := s.accounts.GetByProvider(ctx, profile.Provider, profile.ProviderAccountId)
	switch {
	case err == nil:
		accountInput.UserId = account.UserId
		if _, err := s.accounts.Upsert(ctx, accountInput); err != nil {
			return nil, err
		}
		user, err := s.users.Get(ctx, account.UserId)
		if err != nil {
			return nil, err
		}
		return s.startSession(ctx, user)
	case !errors.Is(err, errdefs.ErrNotFound):
		return nil, err
	}

	var email *string
	if profile.Email != nil {
		normalized, err := normalizeEmail(*profile.Email)
		if err == nil {
			email = &normalized
		}
	}

	if email != nil && profile.EmailVerified {
		user, err := s.users.GetByEmail(ctx, *email)
		if err == nil {
			accountInput.UserId = user.Id
			if _, err := s.accounts.Create(ctx, accountInput); err != nil {
				return nil, err
			}
			return s.startSession(ctx, user)
		}
		if !errors.Is(err, errdefs.ErrNotFound) {
			return nil, err
		}
	}

	userId, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	userInput := &model.RepositoryCreateUserInput{
		Id:    userId,
		Name:  trimmedOrNil(profile.Name),
		Email: email,
		Image: profile.Image,
	}
	if email != nil && profile.EmailVerified {
		verified := s.now().UTC()
		userInput.EmailVerified = &verified
	}

	user, _, err := s.users.CreateWithAccount(ctx, userInput, accountInput)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, user)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
