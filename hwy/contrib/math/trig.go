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

package math

import (
	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/poly"
)

// sinwc evaluates sin(u) for u in [-π/4, π/4].
func sinwc[T hwy.Floats](u hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Mul(u, poly.Polynomial(hwy.Mul(u, u), coeffs[T](sinCoeffs_f32, sinCoeffs_f64)))
}

// coswc evaluates cos(u) for u in [-π/4, π/4].
func coswc[T hwy.Floats](u hwy.Vec[T]) hwy.Vec[T] {
	return poly.Polynomial(hwy.Mul(u, u), coeffs[T](cosCoeffs_f32, cosCoeffs_f64))
}

// Sincos computes sin(x) and cos(x) for each lane from one reduction.
//
// Algorithm:
//  1. t = x - floor(x/2π)*2π in [0, 2π), with 2π split in two parts
//  2. j = number of quarter turns nearest t, from the π/4, 3π/4, 5π/4
//     and 7π/4 thresholds; u = t - j*π/2 lies in [-π/4, π/4]
//  3. sin and cos of u by polynomial, then swapped and negated by j
//
// Special cases:
//   - Sincos(±Inf) = NaN, NaN
//   - Sincos(NaN) = NaN, NaN
func Sincos[T hwy.Floats](x hwy.Vec[T]) (sin, cos hwy.Vec[T]) {
	one := hwy.Set[T](1)
	k := hwy.Floor(hwy.Mul(x, hwy.Set(T(invTwoPi))))
	t := hwy.NegMulAdd(k, hwy.Set(pick[T](twoPiHi_f32, twoPiHi_f64)), x)
	t = hwy.NegMulAdd(k, hwy.Set(pick[T](twoPiLo_f32, twoPiLo_f64)), t)

	q1 := hwy.GreaterEqual(t, hwy.Set(T(piOver4)))
	q2 := hwy.GreaterEqual(t, hwy.Set(T(3*piOver4)))
	q3 := hwy.GreaterEqual(t, hwy.Set(T(5*piOver4)))
	q4 := hwy.GreaterEqual(t, hwy.Set(T(7*piOver4)))

	j := hwy.IfThenElseZero(q1, one)
	j = hwy.Add(j, hwy.IfThenElseZero(q2, one))
	j = hwy.Add(j, hwy.IfThenElseZero(q3, one))
	j = hwy.Add(j, hwy.IfThenElseZero(q4, one))

	u := hwy.NegMulAdd(j, hwy.Set(pick[T](piOver2Hi_f32, piOver2Hi_f64)), t)
	u = hwy.NegMulAdd(j, hwy.Set(pick[T](piOver2Lo_f32, piOver2Lo_f64)), u)

	sw := sinwc(u)
	cw := coswc(u)

	// Quarter turn 4 is a full turn and matches quarter turn 0.
	odd := hwy.MaskAndNot(q2, q1)                 // j == 1
	odd = hwy.MaskOr(odd, hwy.MaskAndNot(q4, q3)) // j == 3
	sin = hwy.Merge(cw, sw, odd)
	cos = hwy.Merge(sw, cw, odd)

	negSin := hwy.MaskAndNot(q4, q2) // j == 2 or 3
	negCos := hwy.MaskAndNot(q3, q1) // j == 1 or 2
	sin = hwy.Merge(hwy.Neg(sin), sin, negSin)
	cos = hwy.Merge(hwy.Neg(cos), cos, negCos)
	return sin, cos
}

// Sin computes the sine of each lane. See Sincos.
func Sin[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	s, _ := Sincos(x)
	return s
}

// Cos computes the cosine of each lane. See Sincos.
func Cos[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	_, c := Sincos(x)
	return c
}

// Tan computes the tangent of each lane as sin(x)/cos(x).
//
// Special cases:
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
func Tan[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	s, c := Sincos(x)
	return hwy.Div(s, c)
}
