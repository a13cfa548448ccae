package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

// SessionRepository stores sessions and verification tokens. Tokens are
// stored as hashes; callers hash before calling.
type SessionRepository struct {
	db Querier
}

func NewSessionRepository(db Querier) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, input *model.RepositoryCreateSessionInput) (*model.Session, error) {
	query := `
INSERT INTO sessions (id, session_token, user_id, expires)
VALUES ($1, $2, $3, $4)
RETURNING ` + sessionColumns

	session := &model.Session{}
	err := pgxscan.Get(ctx, r.db, session, query,
		input.Id, input.SessionToken, input.UserId, input.Expires.UTC())
	if err != nil {
		return nil, handleError(err)
	}
	return session, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE session_token = $1`

	session := &model.Session{}
	if err := pgxscan.Get(ctx, r.db, session, query, token); err != nil {
		return nil, handleError(err)
	}
	return session, nil
}

func (r *SessionRepository) UpdateExpires(ctx context.Context, token string, expires time.Time) (*model.Session, error) {
	query := `
UPDATE sessions SET expires = $1
WHERE session_token = $2
RETURNING ` + sessionColumns

	session := &model.Session{}
	if err := pgxscan.Get(ctx, r.db, session, query, expires.UTC(), token); err != nil {
		return nil, handleError(err)
	}
	return session, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE session_token = $1`, token)
	if err != nil {
		return handleDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) DeleteByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userId)
	if err != nil {
		return 0, handleDeleteError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires <= $1`, now.UTC())
	if err != nil {
		return 0, handleDeleteError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *SessionRepository) CreateVerificationToken(ctx context.Context, token *model.VerificationToken) (*model.VerificationToken, error) {
	query := `
INSERT INTO verification_tokens (identifier, token, expires)
VALUES ($1, $2, $3)
RETURNING identifier, token, expires`

	created := &model.VerificationToken{}
	err := pgxscan.Get(ctx, r.db, created, query, token.Identifier, token.Token, token.Expires.UTC())
	if err != nil {
		return nil, handleError(err)
	}
	return created, nil
}

// UseVerificationToken deletes and returns the token, so each token can be
// used once. Expiry is checked by the caller.
func (r *SessionRepository) UseVerificationToken(ctx context.Context, identifier, token string) (*model.VerificationToken, error) {
	query := `
DELETE FROM verification_tokens
WHERE identifier = $1 AND token = $2
RETURNING identifier, token, expires`

	used := &model.VerificationToken{}
	if err := pgxscan.Get(ctx, r.db, used, query, identifier, token); err != nil {
		return nil, handleError(err)
	}
	return used, nil
}

func (r *SessionRepository) DeleteExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM verification_tokens WHERE expires <= $1`, now.UTC())
	if err != nil {
		return 0, handleDeleteError(err)
	}
	return tag.RowsAffected(), nil
}
