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

package hwy

import "math"

// This file provides the pure Go implementations of the lane operations.
// Every operation works lane by lane over the vector's slice and returns a
// new vector; operands are never modified.

// Load creates a vector by loading up to MaxLanes[T]() elements from src.
// Lanes past the end of src are zero.
func Load[T Lanes](src []T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota creates a vector with lane i set to i.
func Iota[T Lanes]() Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

func mapUnary[T Lanes](v Vec[T], f func(T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = f(x)
	}
	return Vec[T]{data: result}
}

func mapBinary[T Lanes](a, b Vec[T], f func(T, T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = f(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func compare[T Lanes](a, b Vec[T], f func(T, T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = f(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs element-wise division following IEEE 754: a nonzero value
// divided by zero is a signed infinity and 0/0 is NaN.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// Neg negates each lane.
func Neg[T Floats](v Vec[T]) Vec[T] {
	return mapUnary(v, func(x T) T { return -x })
}

// Abs computes the absolute value of each lane by clearing the sign bit.
func Abs[T Floats](v Vec[T]) Vec[T] {
	return mapUnary(v, func(x T) T { return T(math.Abs(float64(x))) })
}

// Min returns the element-wise minimum.
// When either lane is NaN the result is b's lane.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return mapBinary(a, b, func(x, y T) T {
		if x < y {
			return x
		}
		return y
	})
}

// Max returns the element-wise maximum.
// When either lane is NaN the result is b's lane.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return mapBinary(a, b, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	})
}

// Clamp limits each lane of v to [lo, hi].
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	return Min(Max(v, lo), hi)
}

// Sqrt computes the correctly rounded square root of each lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return mapUnary(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// FMA performs fused multiply-add: a*b + c with a single rounding.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data), len(c.data))
	result := make([]T, n)
	for i := range n {
		result[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return Vec[T]{data: result}
}

// MulAdd performs fused multiply-add: a*b + c.
// This is an alias for FMA with the common a.MulAdd(b, c) semantics.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

// NegMulAdd computes c - a*b with a single rounding.
func NegMulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(Neg(a), b, c)
}

// CopySign returns lanes with the magnitude of mag and the sign of sign.
func CopySign[T Floats](mag, sign Vec[T]) Vec[T] {
	return mapBinary(mag, sign, func(m, s T) T {
		return T(math.Copysign(float64(m), float64(s)))
	})
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// Greater performs element-wise greater-than comparison.
// Alias for GreaterThan for compatibility with SIMD method naming.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	return GreaterThan(a, b)
}

// Less performs element-wise less-than comparison.
// Alias for LessThan for compatibility with SIMD method naming.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	return LessThan(a, b)
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = x != x
	}
	return Mask[T]{bits: bits}
}

// IsInf returns a mask indicating which lanes contain infinity.
// The sign parameter: 0 = either, > 0 = +Inf only, < 0 = -Inf only.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = math.IsInf(float64(x), sign)
	}
	return Mask[T]{bits: bits}
}

// IsFinite returns a mask of lanes that are neither infinite nor NaN.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		f := float64(x)
		bits[i] = !math.IsInf(f, 0) && !math.IsNaN(f)
	}
	return Mask[T]{bits: bits}
}

// IfThenElse performs conditional selection: a where mask is true, b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data), len(mask.bits))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	n := min(len(a.data), len(mask.bits))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

// IfThenZeroElse returns zero where mask is true, b otherwise.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	n := min(len(b.data), len(mask.bits))
	result := make([]T, n)
	for i := range n {
		if !mask.bits[i] {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Merge selects elements from a where mask is true, from b otherwise.
// This is equivalent to IfThenElse(mask, a, b).
func Merge[T Lanes](a, b Vec[T], mask Mask[T]) Vec[T] {
	return IfThenElse(mask, a, b)
}

func combine[T Lanes](a, b Mask[T], f func(x, y bool) bool) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = f(a.bits[i], b.bits[i])
	}
	return Mask[T]{bits: bits}
}

// MaskAnd returns the lane-wise conjunction of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return combine(a, b, func(x, y bool) bool { return x && y })
}

// MaskOr returns the lane-wise disjunction of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return combine(a, b, func(x, y bool) bool { return x || y })
}

// MaskAndNot returns lanes active in b but not in a (Highway operand order).
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	return combine(a, b, func(x, y bool) bool { return !x && y })
}

// MaskNot inverts a mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, b := range m.bits {
		bits[i] = !b
	}
	return Mask[T]{bits: bits}
}
