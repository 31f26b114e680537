package submission

//go:generate mockgen -source=submitter.go -destination=mock/submitter_mock.go -package=mock_submission

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/database"
	"github.com/example/srsqueue/internal/metrics"
	"github.com/example/srsqueue/pkg/models"
)

const defaultBatchSize = 100

// ReviewSenderI posts reviews to the server
type ReviewSenderI interface {
	SubmitReviews(ctx context.Context, reviews []models.GradedReview) error
}

// PendingStoreI is the outbox the submitter drains
type PendingStoreI interface {
	Pending(ctx context.Context, limit int) ([]database.PendingReview, error)
	Delete(ctx context.Context, ids []int64) error
}

// SettlerI is told how many reviews the server has accepted
type SettlerI interface {
	Settle(n int)
}

// Submitter drains the review outbox to the server
type Submitter struct {
	sender    ReviewSenderI
	pending   PendingStoreI
	settler   SettlerI
	batchSize int
	logger    *zap.Logger
}

func NewSubmitter(sender ReviewSenderI, pending PendingStoreI, settler SettlerI, batchSize int, logger *zap.Logger) *Submitter {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		sender:    sender,
		pending:   pending,
		settler:   settler,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Flush submits one batch of pending reviews and returns how many were sent.
// Reviews stay in the outbox if the server call fails.
func (s *Submitter) Flush(ctx context.Context) (int, error) {
	pending, err := s.pending.Pending(ctx, s.batchSize)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	reviews := make([]models.GradedReview, len(pending))
	ids := make([]int64, len(pending))
	due := 0
	for i, p := range pending {
		reviews[i] = p.GradedReview
		ids[i] = p.ID
		if p.WasDue {
			due++
		}
	}

	if err := s.sender.SubmitReviews(ctx, reviews); err != nil {
		metrics.Submissions.WithLabelValues("failure").Add(float64(len(reviews)))
		return 0, fmt.Errorf("submit %d reviews: %w", len(reviews), err)
	}
	metrics.Submissions.WithLabelValues("success").Add(float64(len(reviews)))

	if err := s.pending.Delete(ctx, ids); err != nil {
		s.logger.Error("submitted reviews could not be removed from outbox", zap.Int("count", len(ids)), zap.Error(err))
		return len(reviews), err
	}
	if s.settler != nil && due > 0 {
		s.settler.Settle(due)
	}

	s.logger.Info("submitted reviews", zap.Int("count", len(reviews)))
	return len(reviews), nil
}
