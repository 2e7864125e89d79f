package pydrawer

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestIntervalCount(t *testing.T) {
	cases := []struct {
		iv   Interval
		want int
	}{
		{Interval{Start: 1, End: 3, Step: 1}, 3},
		{Interval{Start: 0, End: 1, Step: 0.25}, 5},
		// (0.3-0)/0.1 is slightly below 3 in float arithmetic; the on-grid
		// endpoint must still be counted.
		{Interval{Start: 0, End: 0.3, Step: 0.1}, 4},
		{Interval{Start: 0, End: 1, Step: 0.3}, 4},
		{Interval{Start: -1, End: 1, Step: 1}, 3},
		{Interval{Start: 0, End: 0, Step: 1}, 1},
		{Interval{Start: 0, End: 10, Step: 20}, 1},
	}
	for _, c := range cases {
		if got := c.iv.Count(); got != c.want {
			t.Errorf("%s: got %d samples, want %d", c.iv, got, c.want)
		}
	}
}

func TestIntervalValues(t *testing.T) {
	iv := Interval{Start: -1, End: 1, Step: 0.5}
	got := slices.Collect(iv.Values())
	diff(t, []float64{-1, -0.5, 0, 0.5, 1}, got)

	if len(got) != iv.Count() {
		t.Errorf("got %d values, Count reports %d", len(got), iv.Count())
	}
}

func TestIntervalRestartable(t *testing.T) {
	iv := Interval{Start: 0, End: 2, Step: 0.25}

	first := slices.Collect(iv.Values())
	second := slices.Collect(iv.Values())
	diff(t, first, second)

	// An abandoned traversal must not affect later ones.
	for range iv.Values() {
		break
	}
	diff(t, first, slices.Collect(iv.Values()))
}

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval(0, 1, 0.1)
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}
	diff(t, Interval{Start: 0, End: 1, Step: 0.1}, iv)

	cases := []struct {
		start, end, step float64
		want             error
	}{
		{math.NaN(), 1, 1, ErrIntervalNotFinite},
		{0, math.Inf(1), 1, ErrIntervalNotFinite},
		{0, 1, math.NaN(), ErrIntervalNotFinite},
		{0, 1, 0, ErrIntervalStep},
		{0, 1, -0.5, ErrIntervalStep},
		{1, 0, 1, ErrIntervalBounds},
	}
	for _, c := range cases {
		if _, err := NewInterval(c.start, c.end, c.step); !errors.Is(err, c.want) {
			t.Errorf("NewInterval(%g, %g, %g): got error %v, want %v",
				c.start, c.end, c.step, err, c.want)
		}
	}
}
