package spaced_repetition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Policy holds the scheduling constants for a session. It is never mutated after
// the Quantifier is built.
type Policy struct {
	InitialWrongInterval int64      `json:"initial_wrong_interval" mapstructure:"initial_wrong_interval" validate:"min=1"`
	InitialRightInterval int64      `json:"initial_right_interval" mapstructure:"initial_right_interval" validate:"min=1"`
	RightFactors         [4]float64 `json:"right_factors" mapstructure:"right_factors" validate:"dive,gt=0"`
	WrongFactors         [4]float64 `json:"wrong_factors" mapstructure:"wrong_factors" validate:"dive,gt=0"`
	HardFactor           float64    `json:"hard_factor" mapstructure:"hard_factor" validate:"gt=0"`
	EasyFactor           float64    `json:"easy_factor" mapstructure:"easy_factor" validate:"gt=0"`
	MinInterval          int64      `json:"min_interval" mapstructure:"min_interval" validate:"min=1"`
	MinHardInterval      int64      `json:"min_hard_interval" mapstructure:"min_hard_interval" validate:"gtefield=MinInterval"`
	MaxWrongInterval     int64      `json:"max_wrong_interval" mapstructure:"max_wrong_interval" validate:"gtefield=MinInterval"`
	MaxInterval          int64      `json:"max_interval" mapstructure:"max_interval" validate:"gtefield=MaxWrongInterval"`
	Jitter               float64    `json:"jitter" mapstructure:"jitter" validate:"min=0,lt=1"`
}

// Interval thresholds in seconds that pick the factor bucket for an item's
// current interval.
var bucketThresholds = [4]int64{2, 1200, 18000, 691200}

const (
	// shortFuseInterval: items last scheduled closer than this get the 12 hour override
	shortFuseInterval = 2 * 60 * 60
	shortFuseBase     = 12 * 60 * 60

	accelerateBelowReviews = 5
	accelerateFactor       = 1.5

	decelerateAboveReviews = 8
	decelerateBelowRate    = 0.5
	decelerateExponent     = 0.7
)

// DefaultPolicy returns the stock scheduling constants
func DefaultPolicy() Policy {
	return Policy{
		InitialWrongInterval: 600,
		InitialRightInterval: 604800,
		RightFactors:         [4]float64{2.2, 2.2, 2.2, 2.2},
		WrongFactors:         [4]float64{0.25, 0.25, 0.25, 0.25},
		HardFactor:           0.9,
		EasyFactor:           3.5,
		MinInterval:          30,
		MinHardInterval:      300,
		MaxWrongInterval:     604800,
		MaxInterval:          315569260,
		Jitter:               0.075,
	}
}

var validate = validator.New()

// Validate checks the policy's bounds are consistent
func (p Policy) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("invalid policy: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", e.Namespace(), e.Tag(), e.Param()))
		}
		return fmt.Errorf("invalid policy: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// bucket returns the index of the last threshold the interval strictly exceeds.
// Intervals at or below the first threshold use bucket 0.
func bucket(interval int64) int {
	index := 0
	for i, threshold := range bucketThresholds {
		if interval > threshold {
			index = i
		}
	}
	return index
}

// bound clamps an interval into the range allowed for the grade
func (p Policy) bound(interval int64, failed, hard bool) int64 {
	if failed {
		return clamp(interval, p.MinInterval, p.MaxWrongInterval)
	}
	floor := p.MinInterval
	if hard {
		floor = p.MinHardInterval
	}
	return clamp(interval, floor, p.MaxInterval)
}

func clamp(v, lo, hi int64) int64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}
