package database

import (
	"context"
	"fmt"

	"github.com/example/srsqueue/pkg/models"
)

// PartStats summarizes stored items of one part
type PartStats struct {
	Part      models.Part `db:"part"`
	Items     int         `db:"items"`
	Studied   int         `db:"studied"` // reviewed at least once
	Due       int         `db:"due"`
	Reviews   int         `db:"reviews"`
	Successes int         `db:"successes"`
}

// Accuracy is the share of successful reviews, 0 when nothing was reviewed
func (p PartStats) Accuracy() float64 {
	if p.Reviews == 0 {
		return 0
	}
	return float64(p.Successes) / float64(p.Reviews)
}

// Statistics returns per part totals for lang from the local store. An item
// counts as due when it has been reviewed and its due time is not after now.
func (s *Store) Statistics(ctx context.Context, lang string, now int64) ([]PartStats, error) {
	query := s.db.Rebind(`
		SELECT part,
		       COUNT(*) AS items,
		       COALESCE(SUM(CASE WHEN last_reviewed > 0 THEN 1 ELSE 0 END), 0) AS studied,
		       COALESCE(SUM(CASE WHEN last_reviewed > 0 AND next_due <= ? THEN 1 ELSE 0 END), 0) AS due,
		       COALESCE(SUM(reviews), 0) AS reviews,
		       COALESCE(SUM(successes), 0) AS successes
		FROM study_items
		WHERE lang = ?
		GROUP BY part
		ORDER BY part
	`)

	var stats []PartStats
	if err := s.db.SelectContext(ctx, &stats, query, now, lang); err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}
	return stats, nil
}
