package pydrawer

import "errors"

// ErrNoFunc is reported when a curve was constructed without a callable.
var ErrNoFunc = errors.New("curve has no function")

// ErrNoCurve is reported when a transformed curve wraps no curve.
var ErrNoCurve = errors.New("transformed curve wraps no curve")

// Func is a scalar function y = f(x).
//
// Returning an error marks x as lying outside the function's domain; sampling
// stops there. Use [Fn] to adapt functions that cannot fail.
type Func func(x float64) (float64, error)

// VecFunc is a vector-valued function f(t) = (x(t), y(t)).
//
// It has the same error contract as [Func]. Use [ParamFn] to adapt functions
// that cannot fail.
type VecFunc func(t float64) (Point, error)

// Fn adapts an infallible scalar function to a [Func].
func Fn(f func(x float64) float64) Func {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// ParamFn adapts an infallible parametric function to a [VecFunc].
func ParamFn(f func(t float64) (float64, float64)) VecFunc {
	return func(t float64) (Point, error) {
		x, y := f(t)
		return Pt(x, y), nil
	}
}

// Curve describes a source of sampled 2D points.
//
// Points returns one point per interval sample, in sample order, in a freshly
// allocated slice owned by the caller. Implementations must not mutate the
// interval or retain it beyond the call. If evaluation fails for some sample,
// the error is returned as-is and no points are returned; samples preceding
// the failure are discarded.
//
// Curves are immutable after construction. A curve may be reused across
// intervals and shared between goroutines without synchronization, provided
// the user-supplied callable is itself safe for concurrent invocation.
type Curve interface {
	Points(iv Interval) ([]Point, error)
}

// Function samples a scalar function, emitting (x, f(x)) for each interval
// sample x.
type Function struct {
	F Func
}

var _ Curve = Function{}

func (fn Function) Points(iv Interval) ([]Point, error) {
	if fn.F == nil {
		return nil, ErrNoFunc
	}
	pts := make([]Point, 0, iv.Count())
	for x := range iv.Values() {
		y, err := fn.F(x)
		if err != nil {
			return nil, err
		}
		pts = append(pts, Pt(x, y))
	}
	return pts, nil
}

// ParametricFunction samples a vector-valued function, emitting f(t) for each
// interval sample t. Unlike [Function], the first coordinate of an emitted
// point is whatever f returns, not the sample itself.
type ParametricFunction struct {
	F VecFunc
}

var _ Curve = ParametricFunction{}

func (fn ParametricFunction) Points(iv Interval) ([]Point, error) {
	if fn.F == nil {
		return nil, ErrNoFunc
	}
	pts := make([]Point, 0, iv.Count())
	for t := range iv.Values() {
		pt, err := fn.F(t)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

// TransformedCurve applies a 2×2 linear map to every point of the curve it
// wraps.
//
// Transformed curves nest: wrapping a TransformedCurve in another is
// observably equivalent to a single TransformedCurve whose matrix is the
// product of the two, outer times inner.
type TransformedCurve struct {
	mat   Mat2
	curve Curve
}

var _ Curve = TransformedCurve{}

// Transformed returns c with the linear map m applied to each of its points.
func Transformed(m Mat2, c Curve) TransformedCurve {
	return TransformedCurve{mat: m, curve: c}
}

func (tc TransformedCurve) Points(iv Interval) ([]Point, error) {
	if tc.curve == nil {
		return nil, ErrNoCurve
	}
	pts, err := tc.curve.Points(iv)
	if err != nil {
		return nil, err
	}
	for i, pt := range pts {
		pts[i] = pt.Transform(tc.mat)
	}
	return pts, nil
}
