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

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/algo"
	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

type sweep struct {
	min, max float64
	samples  int
}

func (s sweep) validate() error {
	if s.samples < 1 {
		return fmt.Errorf("--samples must be positive, got %d", s.samples)
	}
	if !(s.min <= s.max) {
		return fmt.Errorf("empty range [%v, %v]", s.min, s.max)
	}
	return nil
}

// points returns samples evenly spaced arguments covering [min, max].
func points[T hwy.Floats](s sweep) []T {
	xs := make([]T, s.samples)
	if s.samples == 1 {
		xs[0] = T(s.min)
		return xs
	}
	lo := hwy.Set(T(s.min))
	step := hwy.Set(T((s.max - s.min) / float64(s.samples-1)))
	index := func(off int) hwy.Vec[T] {
		return hwy.Add(hwy.Iota[T](), hwy.Set(T(off)))
	}
	hwy.ProcessWithTail[T](len(xs),
		func(off int) {
			hwy.Store(hwy.MulAdd(index(off), step, lo), xs[off:])
		},
		func(off, count int) {
			hwy.MaskStore(hwy.TailMask[T](count), hwy.MulAdd(index(off), step, lo), xs[off:])
		},
	)
	xs[len(xs)-1] = T(s.max)
	return xs
}

// nanCount returns the number of NaN elements of xs.
func nanCount[T hwy.Floats](xs []T) int {
	n := 0
	for i := 0; i < len(xs); i += hwy.MaxLanes[T]() {
		n += hwy.IsNaN(hwy.Load(xs[i:])).CountTrue()
	}
	return n
}

func newAccuracyCmd(opts *options) *cobra.Command {
	s := sweep{}
	cmd := &cobra.Command{
		Use:   "accuracy FUNC",
		Short: "Compare a unary function against the float64 standard library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.validate(); err != nil {
				return err
			}
			if opts.f32() {
				return runAccuracy[float32](cmd.Context(), opts.logger, cmd.OutOrStdout(), args[0], s)
			}
			return runAccuracy[float64](cmd.Context(), opts.logger, cmd.OutOrStdout(), args[0], s)
		},
	}
	cmd.Flags().Float64Var(&s.min, "min", -10, "lower end of the sampled range")
	cmd.Flags().Float64Var(&s.max, "max", 10, "upper end of the sampled range")
	cmd.Flags().IntVar(&s.samples, "samples", 100_000, "number of evenly spaced samples")
	return cmd
}

func runAccuracy[T hwy.Floats](ctx context.Context, log *slog.Logger, w io.Writer, name string, s sweep) error {
	f, err := math.LookupUnary[T](name)
	if err != nil {
		return err
	}
	ref, err := oracle(name)
	if err != nil {
		return err
	}

	xs := points[T](s)
	got := make([]T, len(xs))
	start := time.Now()
	if err := algo.ParallelApply(ctx, xs, got, f); err != nil {
		return err
	}
	log.Debug("sweep evaluated", "function", name, "samples", len(xs), "elapsed", time.Since(start))

	var r report
	for i, x := range xs {
		r.add(float64(x), float64(got[i]), ref(float64(x)))
	}

	bits := bitSize[T]()
	printer.Fprintf(w, "function:    %s (f%d)\n", name, bits)
	printer.Fprintf(w, "range:       [%s, %s]\n", formatFloat(T(s.min)), formatFloat(T(s.max)))
	printer.Fprintf(w, "samples:     %d\n", r.samples)
	printer.Fprintf(w, "nan results: %d\n", nanCount(got))
	printer.Fprintf(w, "mismatches:  %d\n", r.mismatches)
	printer.Fprintf(w, "max abs err: %s at x = %s\n", sci(r.maxAbs), formatFloat(T(r.maxAbsAt)))
	printer.Fprintf(w, "max rel err: %s at x = %s\n", sci(r.maxRel), formatFloat(T(r.maxRelAt)))
	if r.mismatches > 0 {
		log.Warn("special values disagree with reference", "function", name, "count", r.mismatches)
	}
	return nil
}

func sci(v float64) string {
	return strconv.FormatFloat(v, 'e', 3, 64)
}
