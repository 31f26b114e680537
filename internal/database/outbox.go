package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/srsqueue/pkg/models"
)

// Outbox holds graded reviews until the server has accepted them
type Outbox struct {
	db *sqlx.DB
}

func NewOutbox(db *sqlx.DB) *Outbox {
	return &Outbox{db: db}
}

// Enqueue stores a review for later submission
func (o *Outbox) Enqueue(ctx context.Context, r models.GradedReview) error {
	_, err := o.db.ExecContext(ctx, o.db.Rebind(`
		INSERT INTO pending_reviews (item_id, grade, review_duration, thinking_duration, submitted_at,
			group_id, previous_interval, new_interval, actual_interval, was_due)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), r.ItemID, int(r.Grade), r.ReviewDuration, r.ThinkingDuration, r.SubmittedAt,
		r.GroupID, r.PreviousInterval, r.NewInterval, r.ActualInterval, r.WasDue)
	if err != nil {
		return fmt.Errorf("failed to enqueue review for %s: %w", r.ItemID, err)
	}
	return nil
}

// Pending returns up to limit reviews in the order they were queued
func (o *Outbox) Pending(ctx context.Context, limit int) ([]PendingReview, error) {
	var reviews []PendingReview
	err := o.db.SelectContext(ctx, &reviews, o.db.Rebind(`
		SELECT id, item_id, grade, review_duration, thinking_duration, submitted_at,
			group_id, previous_interval, new_interval, actual_interval, was_due
		FROM pending_reviews ORDER BY id LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending reviews: %w", err)
	}
	return reviews, nil
}

// Delete removes submitted reviews
func (o *Outbox) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM pending_reviews WHERE id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}
	if _, err := o.db.ExecContext(ctx, o.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to delete pending reviews: %w", err)
	}
	return nil
}

// Count returns the number of reviews waiting
func (o *Outbox) Count(ctx context.Context) (int, error) {
	var n int
	if err := o.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM pending_reviews`); err != nil {
		return 0, fmt.Errorf("failed to count pending reviews: %w", err)
	}
	return n, nil
}
