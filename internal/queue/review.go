package queue

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/metrics"
	"github.com/example/srsqueue/internal/spaced_repetition"
	"github.com/example/srsqueue/pkg/models"
)

// ReviewInput is what the study session reports for one answered prompt
type ReviewInput struct {
	ItemID       string
	Grade        models.Grade
	ReviewTime   time.Duration
	ThinkingTime time.Duration
	// GroupID ties together the parts of one prompt; generated when empty
	GroupID string
}

// CompleteReview schedules the item's next review and retires it from the
// working queue. The review is handed to the outbox before the item changes,
// so an item never re-enters the queue ahead of its submission.
func (q *Queue) CompleteReview(ctx context.Context, in ReviewInput) (models.GradedReview, error) {
	if !in.Grade.Valid() {
		return models.GradedReview{}, fmt.Errorf("grade %d: %w", in.Grade, spaced_repetition.ErrInvalidGrade)
	}

	item, ok := q.Item(in.ItemID)
	if !ok {
		return models.GradedReview{}, fmt.Errorf("%s: %w", in.ItemID, ErrItemNotFound)
	}

	now := q.now()
	updated, interval, err := q.quantifier.Review(item, in.Grade, now)
	if err != nil {
		return models.GradedReview{}, fmt.Errorf("schedule %s: %w", item.ID, err)
	}

	group := in.GroupID
	if group == "" {
		group = models.GroupID(now, item.ID)
	}
	review := models.NewGradedReview(item, in.Grade, in.ReviewTime, in.ThinkingTime, now, group)
	review.PreviousInterval = item.Interval
	review.NewInterval = interval
	if item.Reviewed() {
		review.ActualInterval = now.Unix() - item.Last
	}
	review.WasDue = spaced_repetition.IsDue(item, now)

	if err := q.outbox.Enqueue(ctx, review); err != nil {
		return models.GradedReview{}, fmt.Errorf("queue review %s: %w", item.ID, err)
	}

	q.mu.Lock()
	if e, ok := q.entries[item.ID]; ok {
		e.item = updated.Clone()
		e.queued = false
	}
	q.mu.Unlock()

	metrics.Reviews.WithLabelValues(in.Grade.String()).Inc()
	q.logger.Debug("review completed",
		zap.String("item", item.ID),
		zap.Stringer("grade", in.Grade),
		zap.Int64("interval", interval),
	)

	if err := q.store.SaveItems(ctx, []models.StudyItem{updated}); err != nil {
		q.logger.Warn("failed to save reviewed item", zap.String("item", item.ID), zap.Error(err))
	}

	if review.WasDue {
		q.due.RecordReviewed(1)
		if _, err := q.due.Update(ctx, true); err != nil {
			q.logger.Warn("due count update after review failed", zap.Error(err))
		}
	}

	return review, nil
}
