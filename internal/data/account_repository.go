package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type AccountRepository struct {
	db Querier
}

func NewAccountRepository(db Querier) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create links a provider account. A second link of the same
// (provider, provider_account_id) fails with errdefs.ErrAlreadyExists.
func (r *AccountRepository) Create(ctx context.Context, input *model.RepositoryUpsertAccountInput) (*model.Account, error) {
	query := `
INSERT INTO accounts (` + accountColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + accountColumns

	account := &model.Account{}
	if err := pgxscan.Get(ctx, r.db, account, query, accountArgs(input)...); err != nil {
		return nil, handleError(err)
	}
	return account, nil
}

// Upsert inserts the account or refreshes the tokens of an existing link. The
// owning user of an existing link never changes.
func (r *AccountRepository) Upsert(ctx context.Context, input *model.RepositoryUpsertAccountInput) (*model.Account, error) {
	return upsertAccount(ctx, r.db, input)
}

func upsertAccount(ctx context.Context, db Querier, input *model.RepositoryUpsertAccountInput) (*model.Account, error) {
	query := `
INSERT INTO accounts (` + accountColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (provider, provider_account_id) DO UPDATE SET
	type = EXCLUDED.type,
	refresh_token = COALESCE(EXCLUDED.refresh_token, accounts.refresh_token),
	access_token = EXCLUDED.access_token,
	expires_at = EXCLUDED.expires_at,
	token_type = EXCLUDED.token_type,
	scope = EXCLUDED.scope,
	id_token = EXCLUDED.id_token,
	session_state = EXCLUDED.session_state
RETURNING ` + accountColumns

	account := &model.Account{}
	if err := pgxscan.Get(ctx, db, account, query, accountArgs(input)...); err != nil {
		return nil, handleError(err)
	}
	return account, nil
}

func accountArgs(in *model.RepositoryUpsertAccountInput) []any {
	return []any{
		in.Id, in.UserId, in.Type, in.Provider, in.ProviderAccountId,
		in.RefreshToken, in.AccessToken, in.ExpiresAt, in.TokenType,
		in.Scope, in.IdToken, in.SessionState,
	}
}

func (r *AccountRepository) GetByProvider(ctx context.Context, provider, providerAccountId string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE provider = $1 AND provider_account_id = $2`

	account := &model.Account{}
	if err := pgxscan.Get(ctx, r.db, account, query, provider, providerAccountId); err != nil {
		return nil, handleError(err)
	}
	return account, nil
}

func (r *AccountRepository) ListByUser(ctx context.Context, userId uuid.UUID) ([]*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY provider`

	var accounts []*model.Account
	if err := pgxscan.Select(ctx, r.db, &accounts, query, userId); err != nil {
		return nil, handleError(err)
	}
	return accounts, nil
}

func (r *AccountRepository) Delete(ctx context.Context, provider, providerAccountId string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM accounts WHERE provider = $1 AND provider_account_id = $2`,
		provider, providerAccountId)
	if err != nil {
		return handleDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
