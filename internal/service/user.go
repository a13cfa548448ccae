package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type UserService struct {
	users    UserRepository
	accounts AccountRepository
}

func NewUserService(users UserRepository, accounts AccountRepository) *UserService {
	return &UserService{users: users, accounts: accounts}
}

func (s *UserService) GetMe(ctx context.Context) (*model.User, error) {
	userId, err := currentUserId(ctx)
	if err != nil {
		return nil, err
	}
	return s.users.Get(ctx, userId)
}

func (s *UserService) GetPublic(ctx context.Context, id uuid.UUID) (*model.UserPublic, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.UserPublic{Id: user.Id, Name: user.Name, Image: user.Image}, nil
}

// ListPublic pages through the user directory. Only public fields leave the
// service.
func (s *UserService) ListPublic(ctx context.Context, limit, offset int) ([]*model.UserPublic, int64, error) {
	if _, err := currentUserId(ctx); err != nil {
		return nil, 0, err
	}
	limit, offset, err := normalizePage(limit, offset)
	if err != nil {
		return nil, 0, err
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	public := make([]*model.UserPublic, 0, len(users))
	for _, u := range users {
		public = append(public, &model.UserPublic{Id: u.Id, Name: u.Name, Image: u.Image})
	}
	return public, total, nil
}

func (s *UserService) UpdateMe(ctx context.Context, input *model.UpdateUserInput) (*model.User, error) {
	userId, err := currentUserId(ctx)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", errdefs.ErrValidation)
		}
		input.Name = &name
	}
	return s.users.Update(ctx, userId, input)
}

// DeleteMe removes the caller with their accounts and sessions. It fails with
// errdefs.ErrStillReferenced while their teacher profile owns students or
// lessons.
func (s *UserService) DeleteMe(ctx context.Context) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, userId)
}

func (s *UserService) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	userId, err := currentUserId(ctx)
	if err != nil {
		return nil, err
	}
	return s.accounts.ListByUser(ctx, userId)
}

// UnlinkAccount removes a provider link. The last way to sign in cannot be
// removed.
func (s *UserService) UnlinkAccount(ctx context.Context, provider string) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	user, err := s.users.Get(ctx, userId)
	if err != nil {
		return err
	}
	accounts, err := s.accounts.ListByUser(ctx, userId)
	if err != nil {
		return err
	}

	var target *model.Account
	for _, a := range accounts {
		if a.Provider == provider {
			target = a
			break
		}
	}
	if target == nil {
		return errdefs.ErrNotFound
	}
	if user.Password == nil && len(accounts) == 1 {
		return fmt.Errorf("%w: cannot unlink the only sign-in method", errdefs.ErrConflict)
	}
	return s.accounts.Delete(ctx, target.Provider, target.ProviderAccountId)
}
