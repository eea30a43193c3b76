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

// TailMask returns a mask whose first count lanes are active, clamped to
// [0, MaxLanes]. It selects the partial vector at the end of a slice.
//
//	mask := hwy.TailMask[float64](len(xs) - off)
//	hwy.MaskStore(mask, math.Exp(hwy.MaskLoad(mask, xs[off:])), ys[off:])
func TailMask[T Lanes](count int) Mask[T] {
	lanes := MaxLanes[T]()
	bits := make([]bool, lanes)
	for i := range max(0, min(count, lanes)) {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskLoad reads src into the active lanes of mask and zeroes the rest.
// src may be shorter than the vector.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	data := make([]T, len(mask.bits))
	for i := range min(len(src), len(mask.bits)) {
		if mask.bits[i] {
			data[i] = src[i]
		}
	}
	return Vec[T]{data: data}
}

// MaskStore writes the active lanes of v to dst, leaving every other
// element of dst untouched.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	for i := range min(len(dst), len(v.data), len(mask.bits)) {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// ProcessWithTail walks [0, size) one vector at a time: body(offset) runs
// for every full vector and tail(offset, count) runs once for the final
// count < MaxLanes elements, if any.
func ProcessWithTail[T Lanes](size int, body func(offset int), tail func(offset, count int)) {
	lanes := MaxLanes[T]()
	full := size - size%lanes
	for off := 0; off < full; off += lanes {
		body(off)
	}
	if full < size {
		tail(full, size-full)
	}
}
