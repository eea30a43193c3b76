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

package algo

import "github.com/ajroetker/hwymath/hwy"

// Apply transforms in to out using fn one vector at a time. The tail is
// loaded through a tail mask, so its inactive lanes are zero and are never
// stored. Only min(len(in), len(out)) elements are processed.
//
// Example usage:
//
//	Apply(input, output, math.Exp[float32])
func Apply[T hwy.Floats](in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(in), len(out))
	hwy.ProcessWithTail[T](n,
		func(i int) {
			hwy.Store(fn(hwy.Load(in[i:])), out[i:])
		},
		func(i, count int) {
			mask := hwy.TailMask[T](count)
			hwy.MaskStore(mask, fn(hwy.MaskLoad(mask, in[i:n])), out[i:n])
		},
	)
}

// Apply2 transforms the pairs (a[i], b[i]) to out using fn one vector at a
// time. Only the shortest length of a, b and out is processed.
func Apply2[T hwy.Floats](a, b, out []T, fn func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(a), len(b), len(out))
	hwy.ProcessWithTail[T](n,
		func(i int) {
			hwy.Store(fn(hwy.Load(a[i:]), hwy.Load(b[i:])), out[i:])
		},
		func(i, count int) {
			mask := hwy.TailMask[T](count)
			x, y := hwy.MaskLoad(mask, a[i:n]), hwy.MaskLoad(mask, b[i:n])
			hwy.MaskStore(mask, fn(x, y), out[i:n])
		},
	)
}
