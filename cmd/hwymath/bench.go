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
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/algo"
	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

type benchConfig struct {
	samples  int
	rounds   int
	parallel bool
}

func newBenchCmd(opts *options) *cobra.Command {
	c := benchConfig{}
	cmd := &cobra.Command{
		Use:   "bench FUNC",
		Short: "Measure the throughput of a unary function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.samples < 1 || c.rounds < 1 {
				return fmt.Errorf("--samples and --rounds must be positive")
			}
			if opts.f32() {
				return runBench[float32](cmd.Context(), opts.logger, cmd.OutOrStdout(), args[0], c)
			}
			return runBench[float64](cmd.Context(), opts.logger, cmd.OutOrStdout(), args[0], c)
		},
	}
	cmd.Flags().IntVar(&c.samples, "samples", 1<<20, "elements per round")
	cmd.Flags().IntVar(&c.rounds, "rounds", 10, "number of timed rounds")
	cmd.Flags().BoolVar(&c.parallel, "parallel", false, "split each round across GOMAXPROCS workers")
	return cmd
}

func runBench[T hwy.Floats](ctx context.Context, log *slog.Logger, w io.Writer, name string, c benchConfig) error {
	f, err := math.LookupUnary[T](name)
	if err != nil {
		return err
	}

	xs := points[T](sweep{min: 0.01, max: 0.99, samples: c.samples})
	out := make([]T, len(xs))

	start := time.Now()
	for round := range c.rounds {
		if c.parallel {
			if err := algo.ParallelApply(ctx, xs, out, f); err != nil {
				return err
			}
		} else {
			if err := ctx.Err(); err != nil {
				return err
			}
			algo.Apply(xs, out, f)
		}
		log.Debug("round done", "round", round)
	}
	elapsed := time.Since(start)

	total := c.samples * c.rounds
	nsPerElem := float64(elapsed.Nanoseconds()) / float64(total)
	printer.Fprintf(w, "function:   %s (f%d, %s)\n", name, bitSize[T](), hwy.CurrentName())
	printer.Fprintf(w, "elements:   %d\n", total)
	printer.Fprintf(w, "elapsed:    %v\n", elapsed.Round(time.Microsecond))
	printer.Fprintf(w, "ns/element: %.3f\n", nsPerElem)
	printer.Fprintf(w, "elements/s: %.0f\n", float64(total)/elapsed.Seconds())
	printer.Fprintf(w, "checksum:   %s\n", formatFloat(checksum(out)))
	return nil
}

// checksum sums the results of the last round so they are observably used.
func checksum[T hwy.Floats](xs []T) T {
	var sum T
	for i := 0; i < len(xs); i += hwy.MaxLanes[T]() {
		sum += hwy.ReduceSum(hwy.Load(xs[i:]))
	}
	return sum
}
