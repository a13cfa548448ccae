package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/service"
)

func TestPieceGet_Cache(t *testing.T) {
	id := uuid.New()
	piece := &model.Piece{Id: id, Title: "Für Elise"}

	t.Run("Hit", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewPieceService(d.pieces, d.cache)
		data, err := json.Marshal(piece)
		require.NoError(t, err)

		d.cache.EXPECT().Get(gomock.Any(), "piece:"+id.String()).Return(data, true)

		got, err := svc.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Für Elise", got.Title)
	})

	t.Run("Miss", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewPieceService(d.pieces, d.cache)

		d.cache.EXPECT().Get(gomock.Any(), "piece:"+id.String()).Return(nil, false)
		d.pieces.EXPECT().Get(gomock.Any(), id).Return(piece, nil)
		d.cache.EXPECT().Set(gomock.Any(), "piece:"+id.String(), gomock.Any(), gomock.Any())

		got, err := svc.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, got.Id)
	})

	t.Run("NotFoundIsNotCached", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewPieceService(d.pieces, d.cache)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
		d.pieces.EXPECT().Get(gomock.Any(), id).Return(nil, errdefs.ErrNotFound)

		_, err := svc.Get(context.Background(), id)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

func TestPieceUpdate_Invalidates(t *testing.T) {
	d := newDeps(t)
	svc := service.NewPieceService(d.pieces, d.cache)
	id := uuid.New()

	d.pieces.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(&model.Piece{Id: id, Title: "Nocturne"}, nil)
	d.cache.EXPECT().Delete(gomock.Any(), "piece:"+id.String())

	_, err := svc.Update(context.Background(), id, &model.UpdatePieceInput{Title: ptr("Nocturne")})
	require.NoError(t, err)
}

func TestPieceCreateMany(t *testing.T) {
	d := newDeps(t)
	svc := service.NewPieceService(d.pieces, d.cache)

	d.pieces.EXPECT().CreateMany(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, in []*model.RepositoryCreatePieceInput) ([]*model.Piece, error) {
			assert.Nil(t, in[1].Level)
			return []*model.Piece{{Id: in[0].Id}, {Id: in[1].Id}}, nil
		})

	pieces, err := svc.CreateMany(context.Background(), []*model.CreatePieceInput{
		{Title: "Prelude in C", Level: ptr("beginner")},
		{Title: "Invention No. 8", Level: ptr(" ")},
	})
	require.NoError(t, err)
	assert.Len(t, pieces, 2)
}
