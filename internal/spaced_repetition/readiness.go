package spaced_repetition

import (
	"time"

	"github.com/example/srsqueue/pkg/models"
)

// MaxReadiness is the readiness of an item that has never been reviewed
const MaxReadiness = 9999.0

// Readiness is the ratio of time since the last review to the scheduled interval.
// Values at or above 1 mean the item is due. The ratio is not clamped.
func Readiness(item models.StudyItem, now time.Time) float64 {
	if !item.Reviewed() {
		return MaxReadiness
	}

	scheduled := item.Next - item.Last
	if scheduled <= 0 {
		return MaxReadiness
	}

	return float64(now.Unix()-item.Last) / float64(scheduled)
}

// IsDue reports whether the item is at or past its scheduled review time
func IsDue(item models.StudyItem, now time.Time) bool {
	return Readiness(item, now) >= 1
}
