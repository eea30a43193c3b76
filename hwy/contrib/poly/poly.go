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

// Package poly evaluates polynomials and rational functions over lane vectors.
//
// A single Horner routine serves every degree: the degree is the length of
// the coefficient slice, so fixed-degree variants are never needed.
//
// Coefficients are given in ascending order of power:
//
//	c := []float64{1, 2, 3} // 1 + 2x + 3x²
//	y := poly.Polynomial(x, c)
package poly

import "github.com/ajroetker/hwymath/hwy"

// Polynomial evaluates c[0] + c[1]*x + ... + c[d]*x^d using Horner's method,
// right to left, with one fused multiply-add per coefficient.
// An empty coefficient slice evaluates to zero.
func Polynomial[T hwy.Floats](x hwy.Vec[T], c []T) hwy.Vec[T] {
	if len(c) == 0 {
		return hwy.Zero[T]()
	}
	result := hwy.Set(c[len(c)-1])
	for i := len(c) - 2; i >= 0; i-- {
		result = hwy.MulAdd(result, x, hwy.Set(c[i]))
	}
	return result
}

// Rational evaluates num(x) / (1 + x*den(x)), where num and den are
// polynomials in ascending order. The denominator's constant term is
// implicitly 1, so den[0] is the coefficient of x.
//
// The denominator is not guarded: lanes where it vanishes produce ±Inf or
// NaN following IEEE 754 division.
func Rational[T hwy.Floats](x hwy.Vec[T], num, den []T) hwy.Vec[T] {
	q := hwy.MulAdd(x, Polynomial(x, den), hwy.Set[T](1))
	return hwy.Div(Polynomial(x, num), q)
}

// Scalar evaluates the polynomial for a single value with the same
// Horner order as Polynomial.
func Scalar[T hwy.Floats](x T, c []T) T {
	var r T
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}

// Convert converts a coefficient table to the lane type T.
func Convert[T hwy.Floats](c []float64) []T {
	out := make([]T, len(c))
	for i, v := range c {
		out[i] = T(v)
	}
	return out
}
