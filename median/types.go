// Package median defines the numeric constraint and error surface for the
// running-median tracker.
package median

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Numeric bounds the value types a Tracker can hold: any integer or float
// type. The median itself is always reported as float64, because an even
// number of active values averages the two middle elements.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// ErrBadWindow is returned by SlidingMedians when the window size is not a
// positive integer.
var ErrBadWindow = errors.New("median: window size must be positive")
