package spaced_repetition

import "errors"

// ErrInvalidGrade is returned for grades outside 1-4
var ErrInvalidGrade = errors.New("spaced_repetition: grade out of range 1-4")
