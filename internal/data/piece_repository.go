package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

type PieceRepository struct {
	db Querier
}

func NewPieceRepository(db Querier) *PieceRepository {
	return &PieceRepository{db: db}
}

func (r *PieceRepository) Create(ctx context.Context, input *model.RepositoryCreatePieceInput) (*model.Piece, error) {
	query := `
INSERT INTO pieces (id, title, description, level)
VALUES ($1, $2, $3, $4)
RETURNING ` + pieceColumns

	piece := &model.Piece{}
	err := pgxscan.Get(ctx, r.db, piece, query, input.Id, input.Title, input.Description, input.Level)
	if err != nil {
		return nil, handleError(err)
	}
	return piece, nil
}

func (r *PieceRepository) CreateMany(ctx context.Context, inputs []*model.RepositoryCreatePieceInput) ([]*model.Piece, error) {
	if len(inputs) == 0 {
		return []*model.Piece{}, nil
	}

	now := time.Now().UTC()
	pieces := make([]*model.Piece, len(inputs))
	rows := make([][]any, len(inputs))
	for i, in := range inputs {
		pieces[i] = &model.Piece{
			Id:          in.Id,
			Title:       in.Title,
			Description: in.Description,
			Level:       in.Level,
			CreatedAt:   now,
			EditedAt:    now,
		}
		rows[i] = []any{in.Id, in.Title, in.Description, in.Level, now, now}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"pieces"},
		[]string{"id", "title", "description", "level", "created_at", "edited_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return nil, handleError(err)
	}
	return pieces, nil
}

func (r *PieceRepository) Get(ctx context.Context, id uuid.UUID) (*model.Piece, error) {
	query := `SELECT ` + pieceColumns + ` FROM pieces WHERE id = $1`

	piece := &model.Piece{}
	if err := pgxscan.Get(ctx, r.db, piece, query, id); err != nil {
		return nil, handleError(err)
	}
	return piece, nil
}

func (r *PieceRepository) List(ctx context.Context, filter *model.PieceFilter) ([]*model.Piece, error) {
	query, args := buildPieceListQuery(filter)

	pieces := make([]*model.Piece, 0)
	if err := pgxscan.Select(ctx, r.db, &pieces, query, args...); err != nil {
		return nil, handleError(err)
	}
	return pieces, nil
}

func (r *PieceRepository) Update(ctx context.Context, id uuid.UUID, input *model.UpdatePieceInput) (*model.Piece, error) {
	query, args, err := buildPieceUpdateQuery(id, input)
	if err != nil {
		return nil, err
	}

	piece := &model.Piece{}
	if err := pgxscan.Get(ctx, r.db, piece, query, args...); err != nil {
		return nil, handleError(err)
	}
	return piece, nil
}

// Delete detaches the piece from any lessons that used it.
func (r *PieceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pieces WHERE id = $1`, id)
	if err != nil {
		return handleDeleteError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
