package models

import (
	"fmt"
	"time"
)

// Grade is the 1-4 rating given after a review
type Grade int

const (
	GradeForgot Grade = 1
	GradeHard   Grade = 2
	GradeGood   Grade = 3
	GradeEasy   Grade = 4
)

// Valid reports whether g is in 1-4
func (g Grade) Valid() bool {
	return g >= GradeForgot && g <= GradeEasy
}

// Passed reports whether the grade counts as a success for the item's history
func (g Grade) Passed() bool {
	return g > GradeForgot
}

func (g Grade) String() string {
	switch g {
	case GradeForgot:
		return "forgot"
	case GradeHard:
		return "hard"
	case GradeGood:
		return "good"
	case GradeEasy:
		return "easy"
	}
	return fmt.Sprintf("grade(%d)", int(g))
}

// GradedReview is one completed study interaction waiting to be submitted
type GradedReview struct {
	ItemID           string  `json:"itemId" db:"item_id"`
	Grade            Grade   `json:"score" db:"grade"`
	ReviewDuration   float64 `json:"reviewTime" db:"review_duration"`
	ThinkingDuration float64 `json:"thinkingTime" db:"thinking_duration"`
	SubmittedAt      int64   `json:"submitTime" db:"submitted_at"`
	GroupID          string  `json:"wordGroup" db:"group_id"`
	PreviousInterval int64   `json:"previousInterval" db:"previous_interval"`
	NewInterval      int64   `json:"newInterval" db:"new_interval"`
	ActualInterval   int64   `json:"actualInterval" db:"actual_interval"`
	WasDue           bool    `json:"-" db:"was_due"` // Counted against the local due count until submitted
}

// Duration caps in seconds; tone prompts are answered faster
const (
	maxReviewSeconds       = 30
	maxThinkingSeconds     = 15
	maxToneReviewSeconds   = 15
	maxToneThinkingSeconds = 10
)

// NewGradedReview builds a review for item with durations clamped to the caps for its part
func NewGradedReview(item StudyItem, grade Grade, review, thinking time.Duration, submittedAt time.Time, group string) GradedReview {
	maxReview, maxThinking := float64(maxReviewSeconds), float64(maxThinkingSeconds)
	if item.Part == PartTone {
		maxReview, maxThinking = maxToneReviewSeconds, maxToneThinkingSeconds
	}

	return GradedReview{
		ItemID:           item.ID,
		Grade:            grade,
		ReviewDuration:   clampSeconds(review.Seconds(), maxReview),
		ThinkingDuration: clampSeconds(thinking.Seconds(), maxThinking),
		SubmittedAt:      submittedAt.Unix(),
		GroupID:          group,
	}
}

// GroupID correlates the parts of one prompt
func GroupID(created time.Time, itemID string) string {
	return fmt.Sprintf("%d_%s", created.UnixMilli(), itemID)
}

func clampSeconds(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
