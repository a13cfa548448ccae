package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

const pieceCacheTTL = 10 * time.Minute

// PieceService manages the shared repertoire catalog.
type PieceService struct {
	pieces PieceRepository
	cache  Cache
}

func NewPieceService(pieces PieceRepository, cache Cache) *PieceService {
	return &PieceService{pieces: pieces, cache: cache}
}

func pieceCacheKey(id uuid.UUID) string {
	return "piece:" + id.String()
}

func newPieceInput(input *model.CreatePieceInput) (*model.RepositoryCreatePieceInput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: piece title is required", errdefs.ErrValidation)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return &model.RepositoryCreatePieceInput{
		Id:          id,
		Title:       title,
		Description: input.Description,
		Level:       trimmedOrNil(input.Level),
	}, nil
}

func (s *PieceService) Create(ctx context.Context, input *model.CreatePieceInput) (*model.Piece, error) {
	repoInput, err := newPieceInput(input)
	if err != nil {
		return nil, err
	}
	return s.pieces.Create(ctx, repoInput)
}

func (s *PieceService) CreateMany(ctx context.Context, inputs []*model.CreatePieceInput) ([]*model.Piece, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no pieces given", errdefs.ErrValidation)
	}
	repoInputs := make([]*model.RepositoryCreatePieceInput, len(inputs))
	for i, in := range inputs {
		var err error
		if repoInputs[i], err = newPieceInput(in); err != nil {
			return nil, fmt.Errorf("piece %d: %w", i, err)
		}
	}
	return s.pieces.CreateMany(ctx, repoInputs)
}

func (s *PieceService) Get(ctx context.Context, id uuid.UUID) (*model.Piece, error) {
	key := pieceCacheKey(id)
	if data, ok := s.cache.Get(ctx, key); ok {
		piece := &model.Piece{}
		if json.Unmarshal(data, piece) == nil {
			return piece, nil
		}
	}

	piece, err := s.pieces.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(piece); err == nil {
		s.cache.Set(ctx, key, data, pieceCacheTTL)
	}
	return piece, nil
}

func (s *PieceService) List(ctx context.Context, filter *model.PieceFilter) ([]*model.Piece, error) {
	f := *filter
	var err error
	if f.Limit, f.Offset, err = normalizePage(f.Limit, f.Offset); err != nil {
		return nil, err
	}
	return s.pieces.List(ctx, &f)
}

func (s *PieceService) Update(ctx context.Context, id uuid.UUID, input *model.UpdatePieceInput) (*model.Piece, error) {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: piece title must not be empty", errdefs.ErrValidation)
		}
		input.Title = &title
	}
	piece, err := s.pieces.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, pieceCacheKey(id))
	return piece, nil
}

// Delete detaches the piece from lessons that used it.
func (s *PieceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.pieces.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, pieceCacheKey(id))
	return nil
}
