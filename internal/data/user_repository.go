package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type UserRepository struct {
	db Querier
	tx *TxRunner
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db, tx: NewTxRunner(db)}
}

func (r *UserRepository) Create(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error) {
	return createUser(ctx, r.db, input)
}

func createUser(ctx context.Context, db Querier, input *model.RepositoryCreateUserInput) (*model.User, error) {
	query := `
INSERT INTO users (id, name, email, email_verified, image, password)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

	user := &model.User{}
	err := pgxscan.Get(ctx, db, user, query,
		input.Id, input.Name, input.Email, input.EmailVerified, input.Image, input.Password)
	if err != nil {
		return nil, handleError(err)
	}
	return user, nil
}

// CreateWithAccount creates a user and links the provider account to it in
// one transaction.
func (r *UserRepository) CreateWithAccount(
	ctx context.Context,
	userInput *model.RepositoryCreateUserInput,
	accountInput *model.RepositoryUpsertAccountInput,
) (*model.User, *model.Account, error) {
	var (
		user    *model.User
		account *model.Account
	)
	err := r.tx.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var err error
		if user, err = createUser(ctx, tx, userInput); err != nil {
			return err
		}
		accountInput.UserId = user.Id
		account, err = upsertAccount(ctx, tx, accountInput)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return user, account, nil
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user := &model.User{}
	if err := pgxscan.Get(ctx, r.db, user, query, id); err != nil {
		return nil, handleError(err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user := &model.User{}
	if err := pgxscan.Get(ctx, r.db, user, query, email); err != nil {
		return nil, handleError(err)
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id LIMIT $1 OFFSET $2`

	var users []*model.User
	if err := pgxscan.Select(ctx, r.db, &users, query, limit, offset); err != nil {
		return nil, handleError(err)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, handleError(err)
	}
	return n, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, input *model.UpdateUserInput) (*model.User, error) {
	query, args, err := buildUserUpdateQuery(id, input)
	if err != nil {
		return nil, err
	}

	user := &model.User{}
	if err := pgxscan.Get(ctx, r.db, user, query, args...); err != nil {
		return nil, handleError(err)
	}
	return user, nil
}

// MarkEmailVerified stamps email_verified on the user owning email.
func (r *UserRepository) MarkEmailVerified(ctx context.Context, email string) (*model.User, error) {
	query := `
UPDATE users SET email_verified = NOW(), edited_at = NOW()
WHERE email = $1
RETURNING ` + userColumns

	user := &model.User{}
	if err := pgxscan.Get(ctx, r.db, user, query, email); err != nil {
		return nil, handleError(err)
	}
	return user, nil
}

// Delete removes the user. Accounts, sessions and a teacher profile without
// students or lessons go with it.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return handleDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
