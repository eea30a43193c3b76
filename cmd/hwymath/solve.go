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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/solve"
)

type interval struct {
	lo, hi float64
}

func newSolveCmd(opts *options) *cobra.Command {
	iv := interval{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a real root of a quadratic or cubic inside an interval",
		Long: `Find a real root of a quadratic or cubic inside [--lo, --hi].

Coefficients are listed from the highest power down. Two quadratic
coefficients (A B) or three cubic coefficients (A B C) select the reduced
forms x^2 + Ax + B and x^3 + Ax^2 + Bx + C. When no root lies inside the
interval the closest one is printed. Separate negative coefficients with
"--".`,
	}
	cmd.PersistentFlags().Float64Var(&iv.lo, "lo", -1e6, "lower end of the search interval")
	cmd.PersistentFlags().Float64Var(&iv.hi, "hi", 1e6, "upper end of the search interval")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "quadratic [A] B C",
			Short: "Solve Ax^2 + Bx + C = 0",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				if opts.f32() {
					return runSolve[float32](cmd.OutOrStdout(), 2, args, iv)
				}
				return runSolve[float64](cmd.OutOrStdout(), 2, args, iv)
			},
		},
		&cobra.Command{
			Use:   "cubic [A] B C D",
			Short: "Solve Ax^3 + Bx^2 + Cx + D = 0",
			Args:  cobra.RangeArgs(3, 4),
			RunE: func(cmd *cobra.Command, args []string) error {
				if opts.f32() {
					return runSolve[float32](cmd.OutOrStdout(), 3, args, iv)
				}
				return runSolve[float64](cmd.OutOrStdout(), 3, args, iv)
			},
		},
	)
	return cmd
}

// runSolve solves a polynomial of the given degree. With degree
// coefficients the leading one is taken as 1.
func runSolve[T hwy.Floats](w io.Writer, degree int, args []string, iv interval) error {
	cs, err := parseFloats[T](args)
	if err != nil {
		return err
	}
	v := make([]hwy.Vec[T], len(cs))
	for i, c := range cs {
		v[i] = hwy.Set(c)
	}
	x1, x2 := hwy.Set(T(iv.lo)), hwy.Set(T(iv.hi))

	var x hwy.Vec[T]
	reduced := len(v) == degree
	switch {
	case degree == 2 && reduced:
		x = solve.QuadraticReduced(v[0], v[1], x1, x2)
	case degree == 2:
		x = solve.Quadratic(v[0], v[1], v[2], x1, x2)
	case reduced:
		x = solve.CubicReduced(v[0], v[1], v[2], x1, x2)
	default:
		x = solve.Cubic(v[0], v[1], v[2], v[3], x1, x2)
	}
	fmt.Fprintf(w, "x = %s\n", formatFloat(x.Data()[0]))
	return nil
}
