package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
)

type fakeStore struct {
	sessionCalls atomic.Int32
	tokenCalls   atomic.Int32
	sessionErr   error
	lastNow      atomic.Value
}

func (f *fakeStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.sessionCalls.Add(1)
	f.lastNow.Store(now)
	return 3, f.sessionErr
}

func (f *fakeStore) DeleteExpiredVerificationTokens(context.Context, time.Time) (int64, error) {
	f.tokenCalls.Add(1)
	return 1, nil
}

func TestJanitor_RunOnce(t *testing.T) {
	store := &fakeStore{}
	j := NewJanitor(store, logging.NewNop())
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	j.now = func() time.Time { return fixed }

	j.RunOnce(context.Background())

	assert.Equal(t, int32(1), store.sessionCalls.Load())
	assert.Equal(t, int32(1), store.tokenCalls.Load())
	assert.Equal(t, fixed.UTC(), store.lastNow.Load())
}

func TestJanitor_SessionFailureStillCleansTokens(t *testing.T) {
	store := &fakeStore{sessionErr: errors.New("db down")}
	j := NewJanitor(store, logging.NewNop())

	j.RunOnce(context.Background())

	assert.Equal(t, int32(1), store.tokenCalls.Load())
}

func TestJanitor_Start(t *testing.T) {
	t.Run("InvalidSchedule", func(t *testing.T) {
		j := NewJanitor(&fakeStore{}, logging.NewNop())
		assert.Error(t, j.Start(context.Background(), "not a schedule"))
	})

	t.Run("RunsOnSchedule", func(t *testing.T) {
		store := &fakeStore{}
		j := NewJanitor(store, logging.NewNop())
		require.NoError(t, j.Start(context.Background(), "@every 1s"))

		assert.Eventually(t, func() bool {
			return store.sessionCalls.Load() > 0
		}, 3*time.Second, 50*time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		j.Stop(ctx)
	})
}
