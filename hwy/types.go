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

// Package hwy provides the lane-vector core used by the hwymath kernels.
//
// A Vec holds MaxLanes[T]() lanes of float32 or float64, where the lane count
// follows the vector register width detected at startup. Every kernel is
// written with lane-wise arithmetic, comparisons that produce a Mask, and
// masked selection; no kernel branches on an individual lane.
//
// Basic usage:
//
//	import "github.com/ajroetker/hwymath/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	sum := hwy.Add(a, b)
//	big := hwy.GreaterThan(sum, hwy.Set[float32](10))
//	out := hwy.IfThenElse(big, hwy.Set[float32](10), sum)
//	hwy.Store(out, output)
//
// The unsigned-integer view of the same lanes is available through BitCast
// and FromBits; see Bits.
package hwy

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// UnsignedInts is a constraint for the unsigned lane types that mirror
// the float widths.
type UnsignedInts interface {
	~uint32 | ~uint64
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | UnsignedInts
}

// Vec is a portable vector handle of N lanes.
//
// Vec values are immutable: every operation returns a freshly allocated
// vector and never writes into its operands. Vec instances should not be
// created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns a copy of the lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It is consumed by IfThenElse, Merge and the Mask* combinators.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterThan instead.
type Mask[T Lanes] struct {
	// bits[i] is true if lane i is active.
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

