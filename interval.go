package pydrawer

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var (
	// ErrIntervalNotFinite is reported when an interval bound or step is NaN
	// or infinite.
	ErrIntervalNotFinite = errors.New("interval bounds and step must be finite")
	// ErrIntervalStep is reported when an interval step is zero or negative.
	ErrIntervalStep = errors.New("interval step must be positive")
	// ErrIntervalBounds is reported when an interval's end precedes its start.
	ErrIntervalBounds = errors.New("interval end must not precede start")
)

// Interval describes the numeric range [Start, End], sampled every Step.
//
// An Interval is an immutable value. Its samples are computed from the three
// parameters on every traversal, so iterating it any number of times yields
// the same sequence. A zero-length interval (Start == End) yields exactly one
// sample.
type Interval struct {
	Start float64
	End   float64
	Step  float64
}

// NewInterval returns the interval [start, end] sampled at the given step.
func NewInterval(start, end, step float64) (Interval, error) {
	switch {
	case math.IsNaN(start) || math.IsInf(start, 0) ||
		math.IsNaN(end) || math.IsInf(end, 0) ||
		math.IsNaN(step) || math.IsInf(step, 0):
		return Interval{}, ErrIntervalNotFinite
	case step <= 0:
		return Interval{}, ErrIntervalStep
	case end < start:
		return Interval{}, ErrIntervalBounds
	}
	return Interval{Start: start, End: end, Step: step}, nil
}

// Forgives representation error in (End-Start)/Step, so that an End lying on
// the step grid is not dropped. E.g. (0.3-0)/0.1 evaluates to just under 3.
const gridEpsilon = 1e-9

// Count returns the number of samples the interval yields.
func (iv Interval) Count() int {
	if iv.Step <= 0 || iv.End < iv.Start {
		return 0
	}
	return int(math.Floor((iv.End-iv.Start)/iv.Step+gridEpsilon)) + 1
}

// Values returns the interval's samples, in increasing order.
//
// The i-th sample is Start + i·Step, so traversals are free of accumulated
// rounding error. The sequence is finite and restartable; ranging over it
// does not mutate the interval, and breaking out of a traversal does not
// affect later ones.
func (iv Interval) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range iv.Count() {
			if !yield(iv.Start + float64(i)*iv.Step) {
				return
			}
		}
	}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g; %g]", iv.Start, iv.End, iv.Step)
}
