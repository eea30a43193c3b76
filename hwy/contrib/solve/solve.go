// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package solve provides closed-form quadratic and cubic equation solvers
// over lane vectors.
//
// Each solver computes every candidate root unconditionally and returns,
// per lane, the one lying in a caller-supplied interval [x1, x2]. When no
// candidate lies in the interval the one closest to it is returned, and a
// lane without real roots yields NaN.
package solve

import (
	stdmath "math"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

// epsilon is the machine epsilon of T.
func epsilon[T hwy.Floats]() T {
	return T(stdmath.Ldexp(1, -int(hwy.LayoutOf[T]().MantissaBits)))
}

// distance is how far each lane of c lies outside [lo, hi]; zero inside.
func distance[T hwy.Floats](c, lo, hi hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Max(hwy.Max(hwy.Sub(lo, c), hwy.Sub(c, hi)), hwy.Zero[T]())
}

// selectRoot returns, per lane, the first candidate inside [x1, x2], or the
// candidate nearest the interval when none is inside. NaN candidates lose
// to any number.
func selectRoot[T hwy.Floats](x1, x2 hwy.Vec[T], cands ...hwy.Vec[T]) hwy.Vec[T] {
	lo := hwy.Min(x1, x2)
	hi := hwy.Max(x1, x2)

	best := cands[0]
	bestDist := distance(best, lo, hi)
	for _, c := range cands[1:] {
		d := distance(c, lo, hi)
		better := hwy.MaskOr(hwy.Less(d, bestDist),
			hwy.MaskAndNot(hwy.IsNaN(d), hwy.IsNaN(bestDist)))
		best = hwy.Merge(c, best, better)
		bestDist = hwy.Merge(d, bestDist, better)
	}
	return best
}

// degenerate reports lanes whose leading coefficient lead is negligible
// against the sum of the magnitudes of rest.
func degenerate[T hwy.Floats](lead hwy.Vec[T], rest ...hwy.Vec[T]) hwy.Mask[T] {
	sum := hwy.Zero[T]()
	for _, r := range rest {
		sum = hwy.Add(sum, hwy.Abs(r))
	}
	return hwy.LessEqual(hwy.Abs(lead), hwy.Mul(sum, hwy.Set(epsilon[T]())))
}

// QuadraticReduced solves x² + a·x + b = 0 and returns the root in
// [x1, x2].
//
// Algorithm: with h = a/2 and s = sqrt(h² - b), the root of larger
// magnitude is q = -(h + sign(h)·s) and the other is b/q, which avoids
// cancellation between -h and s. The larger root is tried first.
//
// Special cases:
//   - negative discriminant: NaN
//   - a = b = 0: 0
func QuadraticReduced[T hwy.Floats](a, b, x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	h := hwy.Mul(a, hwy.Set[T](0.5))
	s := hwy.Sqrt(hwy.MulAdd(h, h, hwy.Neg(b)))

	q := hwy.Neg(hwy.Add(h, hwy.CopySign(s, h)))
	p := hwy.Div(b, q)
	p = hwy.Merge(q, p, hwy.Equal(q, hwy.Zero[T]()))

	return selectRoot(x1, x2, hwy.Max(p, q), hwy.Min(p, q))
}

// Quadratic solves a·x² + b·x + c = 0 and returns the root in [x1, x2].
//
// Lanes where a is negligible against |b| + |c| are solved as the linear
// equation b·x + c = 0.
func Quadratic[T hwy.Floats](a, b, c, x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	quad := QuadraticReduced(hwy.Div(b, a), hwy.Div(c, a), x1, x2)
	linear := hwy.Neg(hwy.Div(c, b))
	return hwy.Merge(linear, quad, degenerate(a, b, c))
}

// CubicReduced solves x³ + a·x² + b·x + c = 0 and returns the root in
// [x1, x2].
//
// Algorithm: the substitution x = y - a/3 gives y³ + p·y + q = 0 with
// p = b - a²/3 and q = 2a³/27 - ab/3 + c. When Δ = (q/2)² + (p/3)³ <= 0
// there are three real roots
//
//	y_k = 2·sqrt(-p/3)·cos(acos((3q/2p)·sqrt(-3/p))/3 - 2πk/3),  k = 0, 1, 2
//
// tried in that order. Otherwise the single real root comes from Cardano's
// formula y = u - p/(3u) with u = cbrt(-q/2 - sign(q)·sqrt(Δ)).
func CubicReduced[T hwy.Floats](a, b, c, x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	zero := hwy.Zero[T]()
	third := hwy.Mul(a, hwy.Set(T(1.0/3.0)))

	p := hwy.NegMulAdd(a, third, b)
	q := hwy.MulAdd(third, hwy.MulAdd(hwy.Add(third, third), third, hwy.Neg(b)), c)

	hq := hwy.Mul(q, hwy.Set[T](0.5))
	p3 := hwy.Mul(p, hwy.Set(T(1.0/3.0)))
	disc := hwy.MulAdd(hq, hq, hwy.Mul(hwy.Mul(p3, p3), p3))

	// Three real roots.
	m := hwy.Mul(hwy.Set[T](2), hwy.Sqrt(hwy.Neg(p3)))
	arg := hwy.Mul(hwy.Div(hwy.Mul(q, hwy.Set[T](1.5)), p), hwy.Sqrt(hwy.Div(hwy.Set[T](-3), p)))
	theta := hwy.Mul(math.Acos(hwy.Clamp(arg, hwy.Neg(one), one)), hwy.Set(T(1.0/3.0)))
	turn := hwy.Set(T(2 * stdmath.Pi / 3))
	y0 := hwy.Mul(m, math.Cos(theta))
	y1 := hwy.Mul(m, math.Cos(hwy.Sub(theta, turn)))
	y2 := hwy.Mul(m, math.Cos(hwy.Sub(theta, hwy.Add(turn, turn))))

	// p = 0 leaves y³ = -q.
	flat := hwy.Equal(p, zero)
	triple := math.Cbrt(hwy.Neg(q))
	y0 = hwy.Merge(triple, y0, flat)
	y1 = hwy.Merge(triple, y1, flat)
	y2 = hwy.Merge(triple, y2, flat)

	// One real root.
	u := math.Cbrt(hwy.Sub(hwy.Neg(hq), hwy.CopySign(hwy.Sqrt(disc), q)))
	yc := hwy.Sub(u, hwy.Div(p3, u))

	single := hwy.Greater(disc, zero)
	y0 = hwy.Merge(yc, y0, single)
	y1 = hwy.Merge(yc, y1, single)
	y2 = hwy.Merge(yc, y2, single)

	return selectRoot(x1, x2, hwy.Sub(y0, third), hwy.Sub(y1, third), hwy.Sub(y2, third))
}

// Cubic solves a·x³ + b·x² + c·x + d = 0 and returns the root in [x1, x2].
//
// Lanes where a is negligible against |b| + |c| + |d| are solved as the
// quadratic b·x² + c·x + d = 0.
func Cubic[T hwy.Floats](a, b, c, d, x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	cubic := CubicReduced(hwy.Div(b, a), hwy.Div(c, a), hwy.Div(d, a), x1, x2)
	quad := Quadratic(b, c, d, x1, x2)
	return hwy.Merge(quad, cubic, degenerate(a, b, c, d))
}
