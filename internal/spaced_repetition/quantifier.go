package spaced_repetition

import (
	"fmt"
	"math"
	"time"

	"github.com/example/srsqueue/pkg/models"
)

// Quantifier computes review intervals. Apart from the injected jitter source it
// is a pure function of its inputs.
type Quantifier struct {
	policy Policy
	source Source
}

// NewQuantifier builds a Quantifier. A nil source means no jitter.
func NewQuantifier(policy Policy, source Source) (*Quantifier, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		source = NoJitter
	}
	return &Quantifier{policy: policy, source: source}, nil
}

// Policy returns the policy the quantifier was built with
func (q *Quantifier) Policy() Policy {
	return q.policy
}

// Quantify returns the next interval in seconds for item reviewed with grade at now
func (q *Quantifier) Quantify(item models.StudyItem, grade models.Grade, now time.Time) (int64, error) {
	if !grade.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidGrade, grade)
	}

	p := q.policy

	if !item.Reviewed() {
		var interval float64
		switch grade {
		case models.GradeForgot:
			interval = float64(p.InitialWrongInterval)
		case models.GradeHard:
			interval = float64(p.InitialRightInterval) / 5
		case models.GradeGood:
			interval = float64(p.InitialRightInterval)
		case models.GradeEasy:
			interval = float64(p.InitialRightInterval) * 4
		}
		return q.randomize(interval), nil
	}

	actual := float64(now.Unix() - item.Last)
	scheduled := float64(item.Next - item.Last)
	ratio := 1.0
	if scheduled > 0 {
		ratio = actual / scheduled
	}

	var factor float64
	switch grade {
	case models.GradeHard:
		factor = p.HardFactor
	case models.GradeEasy:
		factor = p.EasyFactor
	case models.GradeForgot:
		factor = p.WrongFactors[bucket(item.Interval)]
	default:
		factor = p.RightFactors[bucket(item.Interval)]
	}

	// reviewing early moderates the boost, reviewing late amplifies it
	if grade > models.GradeHard {
		factor = 1 + (factor-1)*ratio
	}

	// new items that appear to be known
	if item.Reviews < accelerateBelowReviews && item.Successes == item.Reviews {
		factor *= accelerateFactor
	}

	// leeches
	if item.Reviews > decelerateAboveReviews {
		rate := float64(item.Successes) / float64(item.Reviews)
		if rate < decelerateBelowRate {
			factor *= math.Pow(rate, decelerateExponent)
		}
	}

	var interval int64
	if grade > models.GradeHard && scheduled < shortFuseInterval {
		interval = q.randomize(shortFuseBase * factor)
	} else {
		interval = q.randomize(float64(item.Interval) * factor)
	}

	return p.bound(interval, grade == models.GradeForgot, grade == models.GradeHard), nil
}

// Review applies a graded review to item and returns the updated copy along with
// the new interval. item itself is not modified.
func (q *Quantifier) Review(item models.StudyItem, grade models.Grade, now time.Time) (models.StudyItem, int64, error) {
	interval, err := q.Quantify(item, grade, now)
	if err != nil {
		return item, 0, err
	}

	updated := item.Clone()
	updated.Last = now.Unix()
	updated.Next = updated.Last + interval
	updated.Interval = interval
	updated.Reviews++
	if grade.Passed() {
		updated.Successes++
	}

	return updated, interval, nil
}

// randomize scales value by a uniform multiplier in [1-Jitter, 1+Jitter] and rounds
// to the nearest second
func (q *Quantifier) randomize(value float64) int64 {
	j := q.policy.Jitter
	multiplier := 1 - j + q.source.Float64()*2*j
	return int64(math.Round(value * multiplier))
}
