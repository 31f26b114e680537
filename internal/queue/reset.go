package queue

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/metrics"
)

var ErrQueueReset = errors.New("queue reset failed")

// ResetQueue asks the server to drop the user's queue. With reload the local
// queue is rebuilt through the reload hook. A reset already in flight makes
// this a no-op.
func (q *Queue) ResetQueue(ctx context.Context, reload bool) error {
	if !q.resetting.begin() {
		return nil
	}
	defer q.resetting.end()

	settings := q.Settings()
	if err := q.remote.ResetQueue(ctx, settings.UserID, settings.Lang); err != nil {
		metrics.QueueResets.WithLabelValues("failure").Inc()
		return fmt.Errorf("%w: %w", ErrQueueReset, err)
	}
	metrics.QueueResets.WithLabelValues("success").Inc()

	q.mu.Lock()
	q.possiblyStale = false
	q.mu.Unlock()

	q.logger.Info("queue reset", zap.String("user", settings.UserID), zap.String("lang", settings.Lang), zap.Bool("reload", reload))

	if reload {
		if err := q.onReload(ctx); err != nil {
			return fmt.Errorf("reload after reset: %w", err)
		}
	}
	return nil
}
