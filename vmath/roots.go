package vmath

import (
	"math"
	"slices"
)

const (
	// rootEpsilon is the relative magnitude under which a leading coefficient counts as zero
	rootEpsilon = 1e-12
	// rootMerge collapses polished roots closer than this (relative) into one
	rootMerge = 1e-9
	// rootPolishIterations bounds Newton refinement per root
	rootPolishIterations = 4
)

// SolveLinear returns the root of a·x + b = 0, nil when a vanishes
func SolveLinear(a, b float64) []float64 {
	if a == 0 || !isFinite(a) || !isFinite(b) {
		return nil
	}
	return []float64{-b / a}
}

// SolveQuadratic returns the real roots of a·x² + b·x + c = 0 in ascending order
// Degrades to SolveLinear when a is negligible relative to b and c
// A double root is reported once
func SolveQuadratic(a, b, c float64) []float64 {
	scale := math.Max(math.Abs(b), math.Abs(c))
	if a == 0 || math.Abs(a) <= rootEpsilon*scale {
		return SolveLinear(b, c)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		// Rounding can push a double root slightly negative
		if -disc > rootEpsilon*(b*b+math.Abs(4*a*c)) {
			return nil
		}
		disc = 0
	}
	if disc == 0 {
		return []float64{-b / (2 * a)}
	}

	// Numerically stable form, avoids cancellation between b and sqrt(disc)
	sq := math.Sqrt(disc)
	q := -0.5 * (b + math.Copysign(sq, b))
	r1, r2 := q/a, c/q
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return mergeRoots([]float64{r1, r2})
}

// SolveCubic returns the real roots of a·x³ + b·x² + c·x + d = 0 in ascending order
// Degrades to SolveQuadratic when a is negligible; repeated roots are reported once
// Every returned root is finite; an all-zero polynomial yields nil
func SolveCubic(a, b, c, d float64) []float64 {
	scale := math.Max(math.Abs(b), math.Max(math.Abs(c), math.Abs(d)))
	if a == 0 || math.Abs(a) <= rootEpsilon*scale {
		return SolveQuadratic(b, c, d)
	}

	// Monic form x³ + B·x² + C·x + D
	B, C, D := b/a, c/a, d/a
	shift := B / 3

	// Depressed cubic t³ + p·t + q with x = t - B/3
	p := C - B*B/3
	q := 2*B*B*B/27 - B*C/3 + D

	var roots []float64
	halfQ := q / 2
	cubeP := p * p * p / 27
	disc := halfQ*halfQ + cubeP
	tol := rootEpsilon * (halfQ*halfQ + math.Abs(cubeP))

	switch {
	case p == 0 && q == 0:
		// Triple root
		roots = []float64{-shift}

	case disc > tol:
		// One real root, two complex
		s := math.Sqrt(disc)
		u := math.Cbrt(-halfQ + s)
		v := math.Cbrt(-halfQ - s)
		roots = []float64{u + v - shift}

	case disc >= -tol:
		// Double root plus simple root
		u := math.Cbrt(-halfQ)
		roots = []float64{2*u - shift, -u - shift}

	default:
		// Three distinct real roots, p < 0 here
		r := math.Sqrt(-p / 3)
		phi := math.Acos(Clamp(3*q/(2*p)*math.Sqrt(-3/p), -1, 1)) / 3
		for k := 0; k < 3; k++ {
			roots = append(roots, 2*r*math.Cos(phi-2*math.Pi*float64(k)/3)-shift)
		}
	}

	for i, x := range roots {
		roots[i] = polishCubic(x, B, C, D)
	}
	slices.Sort(roots)
	return mergeRoots(roots)
}

// polishCubic refines x with Newton steps on x³ + B·x² + C·x + D, keeping only improving steps
func polishCubic(x, B, C, D float64) float64 {
	eval := func(x float64) float64 { return ((x+B)*x+C)*x + D }
	fx := eval(x)
	for i := 0; i < rootPolishIterations && fx != 0; i++ {
		df := (3*x+2*B)*x + C
		if df == 0 || !isFinite(df) {
			break
		}
		next := x - fx/df
		fn := eval(next)
		if !isFinite(next) || math.Abs(fn) >= math.Abs(fx) {
			break
		}
		x, fx = next, fn
	}
	return x
}

// mergeRoots drops non-finite values and collapses near-equal neighbours of a sorted slice
func mergeRoots(roots []float64) []float64 {
	out := roots[:0]
	for _, r := range roots {
		if !isFinite(r) {
			continue
		}
		if n := len(out); n > 0 && math.Abs(r-out[n-1]) <= rootMerge*math.Max(1, math.Abs(r)) {
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
