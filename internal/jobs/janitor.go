package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
)

const runTimeout = 2 * time.Minute

type ExpiredSessionStore interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error)
}

// Janitor removes expired sessions and verification tokens on a cron
// schedule. Overlapping runs are skipped.
type Janitor struct {
	store  ExpiredSessionStore
	logger *logging.Logger
	cron   *cron.Cron
	now    func() time.Time
}

func NewJanitor(store ExpiredSessionStore, logger *logging.Logger) *Janitor {
	return &Janitor{
		store:  store,
		logger: logger,
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger))),
		now:    time.Now,
	}
}

// Start schedules the janitor with a standard cron spec or a descriptor such
// as "@every 15m".
func (j *Janitor) Start(ctx context.Context, schedule string) error {
	if _, err := j.cron.AddFunc(schedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, runTimeout)
		defer cancel()
		j.RunOnce(runCtx)
	}); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info(ctx, "janitor started", zap.String("schedule", schedule))
	return nil
}

// Stop waits for a running cleanup to finish or ctx to expire.
func (j *Janitor) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (j *Janitor) RunOnce(ctx context.Context) {
	now := j.now().UTC()

	sessions, err := j.store.DeleteExpired(ctx, now)
	if err != nil {
		j.logger.Error(ctx, "failed to delete expired sessions", zap.Error(err))
	}
	tokens, err := j.store.DeleteExpiredVerificationTokens(ctx, now)
	if err != nil {
		j.logger.Error(ctx, "failed to delete expired verification tokens", zap.Error(err))
	}

	j.logger.Info(ctx, "janitor run finished",
		zap.Int64("sessions_deleted", sessions),
		zap.Int64("verification_tokens_deleted", tokens),
	)
}
