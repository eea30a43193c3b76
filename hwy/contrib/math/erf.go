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

// erfcCutoff returns the argument beyond which erfc underflows to zero.
func erfcCutoff[T hwy.Floats]() T {
	return pick[T](10.06, 27.3)
}

// expNegSquare computes e^(-x²), correcting for the rounding error of x²
// so that large arguments keep full relative accuracy.
func expNegSquare[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	x2 := hwy.Mul(x, x)
	d := hwy.FMA(x, x, hwy.Neg(x2))
	return hwy.Mul(Exp(hwy.Neg(x2)), hwy.NegMulAdd(d, hwy.Set[T](1), hwy.Set[T](1)))
}

// erfwc evaluates erf(x) for |x| <= 1.
func erfwc[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Mul(x, poly.Polynomial(hwy.Mul(x, x), coeffs[T](erfCoeffs_f32, erfCoeffs_f64)))
}

// erfcwc evaluates erfc(x) for x >= 1, returning 0 past the underflow
// cutoff.
//
// float32 uses t*exp(-x² + R(t)), t = 1/(1 + x/2). float64 uses 1 - erf
// from an extended series below 2 and the Laplace continued fraction
// erfc(x) = e^(-x²) / (√π (x + (1/2)/(x + 1/(x + (3/2)/(x + ...)))))
// from 2 up.
func erfcwc[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	var r hwy.Vec[T]
	if is32[T]() {
		t := hwy.Div(one, hwy.MulAdd(x, hwy.Set[T](0.5), one))
		p := poly.Polynomial(t, coeffs[T](erfcCoeffs_f32, nil))
		r = hwy.Mul(t, hwy.Mul(expNegSquare(x), Exp(p)))
	} else {
		mid := hwy.Sub(one, hwy.Mul(x, poly.Polynomial(hwy.Mul(x, x), poly.Convert[T](erfMidCoeffs_f64))))

		t := x
		for k := erfcTerms_f64; k > 0; k-- {
			t = hwy.Add(x, hwy.Div(hwy.Set(T(k)/2), t))
		}
		far := hwy.Div(expNegSquare(x), hwy.Mul(t, hwy.Set(T(sqrtPi))))

		r = hwy.Merge(mid, far, hwy.Less(x, hwy.Set[T](2)))
	}
	return hwy.Merge(hwy.Zero[T](), r, hwy.Greater(x, hwy.Set(erfcCutoff[T]())))
}

// Erf computes the error function of each lane.
//
// Algorithm: the Maclaurin series for |x| <= 1; for larger |x|,
// erf(x) = ±(1 - erfc(|x|)).
//
// Special cases:
//   - Erf(±0) = ±0
//   - Erf(±Inf) = ±1
//   - Erf(NaN) = NaN
func Erf[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	a := hwy.Abs(x)
	tail := hwy.CopySign(hwy.Sub(one, erfcwc(hwy.Max(a, one))), x)
	r := hwy.Merge(erfwc(x), tail, hwy.LessEqual(a, one))
	return hwy.Merge(x, r, hwy.IsNaN(x))
}

// Erfc computes the complementary error function 1 - erf(x) of each lane.
//
// Algorithm: 1 - erf(x) for |x| <= 1, the tail approximation for x > 1
// and 2 - erfc(-x) for x < -1.
//
// Special cases:
//   - Erfc(+Inf) = 0
//   - Erfc(-Inf) = 2
//   - Erfc(NaN) = NaN
func Erfc[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set[T](1)
	a := hwy.Abs(x)
	tail := erfcwc(hwy.Max(a, one))

	r := hwy.Merge(hwy.Sub(hwy.Set[T](2), tail), tail, hwy.Less(x, hwy.Zero[T]()))
	r = hwy.Merge(hwy.Sub(one, erfwc(x)), r, hwy.LessEqual(a, one))
	return hwy.Merge(x, r, hwy.IsNaN(x))
}
