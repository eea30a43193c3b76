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

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/hwymath/hwy"
)

// ErrLengthMismatch is returned when input and output slices differ in
// length.
var ErrLengthMismatch = errors.New("slice length mismatch")

// ChunkSize is the number of elements each goroutine of ParallelApply
// processes at a time, rounded down to a multiple of the vector width.
var ChunkSize = 16 << 10

// chunks splits [0, n) into ranges whose lengths are multiples of lanes,
// except possibly the last.
func chunks(n, lanes int) [][2]int {
	size := max(ChunkSize/lanes, 1) * lanes
	var out [][2]int
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}

// run evaluates body over every chunk of [0, n) with at most GOMAXPROCS
// goroutines, stopping early when ctx is cancelled.
func run(ctx context.Context, n, lanes int, body func(start, end int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, c := range chunks(n, lanes) {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			body(c[0], c[1])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ParallelApply is Apply with the slice split across goroutines. It
// returns ErrLengthMismatch when len(in) != len(out) and ctx.Err() when ctx
// is cancelled before every chunk has run; out is then partially written.
func ParallelApply[T hwy.Floats](ctx context.Context, in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) error {
	if len(in) != len(out) {
		return fmt.Errorf("algo: %w: in %d, out %d", ErrLengthMismatch, len(in), len(out))
	}
	return run(ctx, len(in), hwy.MaxLanes[T](), func(start, end int) {
		Apply(in[start:end], out[start:end], fn)
	})
}

// ParallelApply2 is Apply2 with the slices split across goroutines.
func ParallelApply2[T hwy.Floats](ctx context.Context, a, b, out []T, fn func(x, y hwy.Vec[T]) hwy.Vec[T]) error {
	if len(a) != len(out) || len(b) != len(out) {
		return fmt.Errorf("algo: %w: a %d, b %d, out %d", ErrLengthMismatch, len(a), len(b), len(out))
	}
	return run(ctx, len(out), hwy.MaxLanes[T](), func(start, end int) {
		Apply2(a[start:end], b[start:end], out[start:end], fn)
	})
}
