// Package pydrawer converts mathematical curve definitions into ordered
// sequences of 2D points, suitable for handing to a renderer.
//
// # Curves
//
// [Curve] describes sources of sampled points. Given an [Interval], a curve
// produces one [Point] per interval sample, in sample order. The package
// provides three curve variants:
//
//   - [Function] samples a scalar function y = f(x), emitting (x, f(x)).
//   - [ParametricFunction] samples a vector-valued function
//     f(t) = (x(t), y(t)), emitting f(t) directly.
//   - [TransformedCurve] wraps another curve and applies a 2×2 linear map
//     ([Mat2]) to each of its points. Transformed curves nest to arbitrary
//     depth.
//
// Curve definitions are user-supplied callables ([Func], [VecFunc]). A
// callable may fail for individual samples, for example when a sample falls
// outside the function's domain; the error aborts the Points call and is
// returned to the caller unmodified. Callables that cannot fail are adapted
// with [Fn] and [ParamFn].
//
// Curves are immutable after construction. Sampling the same curve twice over
// equal intervals yields equal output, as long as the supplied callable is
// itself deterministic.
//
// # Intervals
//
// [Interval] describes the numeric range [Start, End] sampled at a fixed
// step. Its samples form a finite, restartable sequence: every traversal
// yields the same values, so repeated Points calls see identical samples.
//
// # Rendering
//
// This package computes points, it does not draw them. The point sequences it
// returns carry no assumptions about display; any renderer that accepts
// ordered 2D coordinates can consume them.
package pydrawer
