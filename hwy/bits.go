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

import (
	"math"
	"unsafe"
)

// Layout describes the IEEE-754 bit fields of a float lane type.
type Layout struct {
	// MantissaBits is the number of explicit fraction bits (23 or 52).
	MantissaBits uint
	// ExponentBits is the width of the biased exponent field (8 or 11).
	ExponentBits uint
	// Bias is the exponent bias (127 or 1023).
	Bias int

	SignMask     uint64
	ExponentMask uint64
	MantissaMask uint64
}

var (
	layout32 = Layout{
		MantissaBits: 23,
		ExponentBits: 8,
		Bias:         127,
		SignMask:     0x80000000,
		ExponentMask: 0x7f800000,
		MantissaMask: 0x007fffff,
	}
	layout64 = Layout{
		MantissaBits: 52,
		ExponentBits: 11,
		Bias:         1023,
		SignMask:     0x8000000000000000,
		ExponentMask: 0x7ff0000000000000,
		MantissaMask: 0x000fffffffffffff,
	}
)

// LayoutOf returns the bit layout of T.
func LayoutOf[T Floats]() Layout {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return layout32
	}
	return layout64
}

// Bits is the unsigned-integer view of a Vec[T]: lane i holds the IEEE-754
// bit pattern of the float in lane i, zero-extended to 64 bits.
//
// Bits is a transient value used to read and build exponent and mantissa
// fields. It keeps the lane count of the float vector it came from, so
// masks produced by its comparisons apply directly to Vec[T].
type Bits[T Floats] struct {
	data []uint64
}

// NumLanes returns the number of lanes in the view.
func (b Bits[T]) NumLanes() int {
	return len(b.data)
}

// Data returns a copy of the lane bit patterns.
func (b Bits[T]) Data() []uint64 {
	out := make([]uint64, len(b.data))
	copy(out, b.data)
	return out
}

func toBits[T Floats](x T) uint64 {
	switch f := any(x).(type) {
	case float32:
		return uint64(math.Float32bits(f))
	case float64:
		return math.Float64bits(f)
	}
	// Named float types fall back on their underlying size.
	if unsafe.Sizeof(x) == 4 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

func fromBits[T Floats](u uint64) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Float32frombits(uint32(u)))
	}
	return T(math.Float64frombits(u))
}

// BitCast reinterprets the lanes of v as their IEEE-754 bit patterns.
func BitCast[T Floats](v Vec[T]) Bits[T] {
	data := make([]uint64, len(v.data))
	for i, x := range v.data {
		data[i] = toBits(x)
	}
	return Bits[T]{data: data}
}

// FromBits reinterprets bit patterns as float lanes. Bits above the width
// of T are ignored.
func FromBits[T Floats](b Bits[T]) Vec[T] {
	data := make([]T, len(b.data))
	for i, u := range b.data {
		data[i] = fromBits[T](u)
	}
	return Vec[T]{data: data}
}

// ConvertToBits converts lanes holding non-negative integral values to the
// same unsigned integers. Negative, NaN or fractional lanes are undefined.
func ConvertToBits[T Floats](v Vec[T]) Bits[T] {
	data := make([]uint64, len(v.data))
	for i, x := range v.data {
		data[i] = uint64(x)
	}
	return Bits[T]{data: data}
}

// ConvertToFloat converts each unsigned lane to the nearest float value.
func (b Bits[T]) ConvertToFloat() Vec[T] {
	data := make([]T, len(b.data))
	for i, u := range b.data {
		data[i] = T(u)
	}
	return Vec[T]{data: data}
}

func (b Bits[T]) apply(f func(uint64) uint64) Bits[T] {
	data := make([]uint64, len(b.data))
	for i, u := range b.data {
		data[i] = f(u)
	}
	return Bits[T]{data: data}
}

// And clears every bit not set in m.
func (b Bits[T]) And(m uint64) Bits[T] {
	return b.apply(func(u uint64) uint64 { return u & m })
}

// AndNot clears every bit set in m.
func (b Bits[T]) AndNot(m uint64) Bits[T] {
	return b.apply(func(u uint64) uint64 { return u &^ m })
}

// OrConst sets every bit set in m.
func (b Bits[T]) OrConst(m uint64) Bits[T] {
	return b.apply(func(u uint64) uint64 { return u | m })
}

// Or returns the lane-wise union of two views.
func (b Bits[T]) Or(c Bits[T]) Bits[T] {
	n := min(len(b.data), len(c.data))
	data := make([]uint64, n)
	for i := range n {
		data[i] = b.data[i] | c.data[i]
	}
	return Bits[T]{data: data}
}

// ShiftLeft shifts every lane left by n bits.
func (b Bits[T]) ShiftLeft(n uint) Bits[T] {
	return b.apply(func(u uint64) uint64 { return u << n })
}

// ShiftRight shifts every lane right by n bits, filling with zeros.
func (b Bits[T]) ShiftRight(n uint) Bits[T] {
	return b.apply(func(u uint64) uint64 { return u >> n })
}

// ShiftRightLanes shifts lane i right by counts[i] bits. Counts of 64 or
// more yield zero.
func (b Bits[T]) ShiftRightLanes(counts Bits[T]) Bits[T] {
	n := min(len(b.data), len(counts.data))
	data := make([]uint64, n)
	for i := range n {
		data[i] = b.data[i] >> counts.data[i]
	}
	return Bits[T]{data: data}
}

// EqualConst returns the lanes whose pattern equals m.
func (b Bits[T]) EqualConst(m uint64) Mask[T] {
	bits := make([]bool, len(b.data))
	for i, u := range b.data {
		bits[i] = u == m
	}
	return Mask[T]{bits: bits}
}

// Trunc rounds each lane toward zero by clearing the fraction bits below
// the binary point. Lanes with no fraction bits (large, infinite or NaN)
// pass through; lanes with magnitude below one become a signed zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	l := LayoutOf[T]()
	data := make([]T, len(v.data))
	for i, x := range v.data {
		u := toBits(x)
		e := int((u&l.ExponentMask)>>l.MantissaBits) - l.Bias
		switch {
		case e < 0:
			u &= l.SignMask
		case e < int(l.MantissaBits):
			u &^= l.MantissaMask >> uint(e)
		}
		data[i] = fromBits[T](u)
	}
	return Vec[T]{data: data}
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	t := Trunc(v)
	return IfThenElse(GreaterThan(t, v), Sub(t, Set[T](1)), t)
}

// Ceil rounds each lane toward positive infinity.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	t := Trunc(v)
	return IfThenElse(LessThan(t, v), Add(t, Set[T](1)), t)
}

// RoundToEven rounds to the nearest integer, ties to even.
// This is the default IEEE 754 rounding mode.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	return mapUnary(v, func(x T) T { return T(math.RoundToEven(float64(x))) })
}
