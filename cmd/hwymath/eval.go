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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/algo"
	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval FUNC X...",
		Short: "Evaluate a function at the given arguments",
		Long: `Evaluate a registered function lane-wise at the given arguments.

Binary functions (` + strings.Join(math.BinaryNames(), ", ") + `) take
A:B pairs; for atan2 A is y. Unary functions:
` + strings.Join(math.UnaryNames(), ", ") + `.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.f32() {
				return runEval[float32](cmd.OutOrStdout(), args[0], args[1:])
			}
			return runEval[float64](cmd.OutOrStdout(), args[0], args[1:])
		},
	}
}

func runEval[T hwy.Floats](w io.Writer, name string, args []string) error {
	f, err := math.LookupUnary[T](name)
	if err == nil {
		xs, err := parseFloats[T](args)
		if err != nil {
			return err
		}
		out := make([]T, len(xs))
		algo.Apply(xs, out, f)
		for i, x := range xs {
			fmt.Fprintf(w, "%s(%s) = %s\n", name, formatFloat(x), formatFloat(out[i]))
		}
		return nil
	}
	if !errors.Is(err, math.ErrUnknownFunction) {
		return err
	}

	g, err := math.LookupBinary[T](name)
	if err != nil {
		return err
	}
	as := make([]T, len(args))
	bs := make([]T, len(args))
	for i, arg := range args {
		sa, sb, ok := strings.Cut(arg, ":")
		if !ok {
			return fmt.Errorf("%s takes A:B pairs, got %q", name, arg)
		}
		if as[i], err = parseFloat[T](sa); err != nil {
			return err
		}
		if bs[i], err = parseFloat[T](sb); err != nil {
			return err
		}
	}
	out := make([]T, len(args))
	algo.Apply2(as, bs, out, g)
	for i := range args {
		fmt.Fprintf(w, "%s(%s, %s) = %s\n", name, formatFloat(as[i]), formatFloat(bs[i]), formatFloat(out[i]))
	}
	return nil
}
