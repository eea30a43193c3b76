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
	stdmath "math"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/poly"
)

// xatan evaluates atan(x) for x in [-0.66, 0.66] as x + x*z*R(z), z = x².
func xatan[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	z := hwy.Mul(x, x)
	r := poly.Rational(z, poly.Convert[T](atanNum_f64), poly.Convert[T](atanDen_f64))
	return hwy.MulAdd(hwy.Mul(x, z), r, x)
}

// Atan computes the arc tangent of each lane.
//
// Algorithm: reduce a = |x| into [0, 0.66] using
//   - atan(a) = π/2 + atan(-1/a) for a > tan(3π/8)
//   - atan(a) = π/4 + atan((a-1)/(a+1)) for 0.66 < a <= tan(3π/8)
//
// evaluate the rational approximation on the reduced argument, add the
// offset (with its low-order part) and reattach the sign of x.
//
// Special cases:
//   - Atan(±0) = ±0
//   - Atan(±Inf) = ±π/2
//   - Atan(NaN) = NaN
func Atan[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	zero := hwy.Zero[T]()
	a := hwy.Abs(x)

	big := hwy.Greater(a, hwy.Set(T(tan3pio8)))
	mid := hwy.MaskAndNot(big, hwy.Greater(a, hwy.Set(T(atanLow))))

	r := hwy.Merge(hwy.Div(hwy.Sub(a, one), hwy.Add(a, one)), a, mid)
	r = hwy.Merge(hwy.Div(hwy.Neg(one), a), r, big)

	lo := pick[T](piOver2Lo_f32, piOver2Lo_f64)
	off := hwy.Merge(hwy.Set(T(piOver4)), zero, mid)
	off = hwy.Merge(hwy.Set(T(piOver2)), off, big)
	offLo := hwy.Merge(hwy.Set(lo/2), zero, mid)
	offLo = hwy.Merge(hwy.Set(lo), offLo, big)

	y := hwy.Add(off, hwy.Add(xatan(r), offLo))
	return hwy.CopySign(y, x)
}

// Atan2 computes the arc tangent of y/x for each pair of lanes, using the
// signs of both arguments to determine the quadrant of the return value.
//
// Algorithm: atan(y/x), shifted by ±π (sign of y) when x < 0. The
// zero/zero and infinite/infinite lanes, where y/x is NaN, are selected
// explicitly.
//
// Special cases:
//   - Atan2(y, NaN) = Atan2(NaN, x) = NaN
//   - Atan2(±0, x >= +0) = ±0
//   - Atan2(±0, x <= -0) = ±π
//   - Atan2(y > 0, ±0) = +π/2
//   - Atan2(y < 0, ±0) = -π/2
//   - Atan2(±Inf, +Inf) = ±π/4
//   - Atan2(±Inf, -Inf) = ±3π/4
//   - Atan2(y, +Inf) = ±0
//   - Atan2(y, -Inf) = ±π
//   - Atan2(±Inf, x) = ±π/2
func Atan2[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] {
	zero := hwy.Zero[T]()
	l := hwy.LayoutOf[T]()
	piV := hwy.Set(T(pi))
	piLo := hwy.Set(2 * pick[T](piOver2Lo_f32, piOver2Lo_f64))

	r := Atan(hwy.Div(y, x))
	shift := hwy.Add(hwy.CopySign(piV, y), hwy.CopySign(piLo, y))
	r = hwy.Merge(hwy.Add(r, shift), r, hwy.Less(x, zero))

	// y/±0 is an infinity whose sign depends on the sign of the zero.
	r = hwy.Merge(hwy.CopySign(hwy.Set(T(piOver2)), y), r, hwy.Equal(x, zero))

	xNeg := hwy.BitCast(x).And(l.SignMask).EqualConst(l.SignMask)

	bothZero := hwy.MaskAnd(hwy.Equal(x, zero), hwy.Equal(y, zero))
	zeroCase := hwy.Merge(hwy.CopySign(piV, y), hwy.CopySign(zero, y), xNeg)
	r = hwy.Merge(zeroCase, r, bothZero)

	bothInf := hwy.MaskAnd(hwy.IsInf(x, 0), hwy.IsInf(y, 0))
	infCase := hwy.Merge(hwy.Set(T(3*piOver4)), hwy.Set(T(piOver4)), xNeg)
	r = hwy.Merge(hwy.CopySign(infCase, y), r, bothInf)
	return hwy.Merge(hwy.Set(T(stdmath.NaN())), r, hwy.MaskOr(hwy.IsNaN(x), hwy.IsNaN(y)))
}

// outsideUnit reports lanes with |x| > 1.
func outsideUnit[T hwy.Floats](x hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Greater(hwy.Abs(x), hwy.Set[T](1))
}

// Asin computes the arc sine of each lane as atan(x / sqrt((1-x)(1+x))).
//
// Special cases:
//   - Asin(±0) = ±0
//   - Asin(±1) = ±π/2
//   - Asin(x) = NaN for |x| > 1, selected explicitly
//   - Asin(NaN) = NaN
func Asin[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	c := hwy.Sqrt(hwy.Mul(hwy.Sub(one, x), hwy.Add(one, x)))
	r := Atan(hwy.Div(x, c))
	return hwy.Merge(hwy.Set(T(stdmath.NaN())), r, outsideUnit(x))
}

// Acos computes the arc cosine of each lane as
// atan(sqrt((1-x)(1+x)) / x), plus π when x < 0.
//
// Special cases:
//   - Acos(1) = 0
//   - Acos(-1) = π
//   - Acos(±0) = π/2
//   - Acos(x) = NaN for |x| > 1, selected explicitly
//   - Acos(NaN) = NaN
func Acos[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	zero := hwy.Zero[T]()
	s := hwy.Sqrt(hwy.Mul(hwy.Sub(one, x), hwy.Add(one, x)))
	r := Atan(hwy.Div(s, x))

	piLo := 2 * pick[T](piOver2Lo_f32, piOver2Lo_f64)
	r = hwy.Merge(hwy.Add(hwy.Set(T(pi)), hwy.Add(r, hwy.Set(piLo))), r, hwy.Less(x, zero))
	r = hwy.Merge(hwy.Set(T(piOver2)), r, hwy.Equal(x, zero))
	return hwy.Merge(hwy.Set(T(stdmath.NaN())), r, outsideUnit(x))
}
