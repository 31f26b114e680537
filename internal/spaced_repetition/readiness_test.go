package spaced_repetition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/srsqueue/pkg/models"
)

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item models.StudyItem
		want float64
	}{
		{"never reviewed", models.StudyItem{}, MaxReadiness},
		{"half way", reviewedItem(43200, 86400, 3, 3), 0.5},
		{"exactly due", reviewedItem(86400, 86400, 3, 3), 1},
		{"overdue is not clamped", reviewedItem(864000, 86400, 3, 3), 10},
		{"zero scheduled interval", models.StudyItem{Last: t0.Unix() - 10, Next: t0.Unix() - 10}, MaxReadiness},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Readiness(tt.item, t0), 1e-9)
		})
	}
}

func TestIsDue(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDue(models.StudyItem{}, t0))
	assert.True(t, IsDue(reviewedItem(86400, 86400, 1, 1), t0))
	assert.False(t, IsDue(reviewedItem(86399, 86400, 1, 1), t0))
}
