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
	"github.com/ajroetker/hwymath/hwy/contrib/math"
	"github.com/ajroetker/hwymath/hwy/contrib/quad"
)

type integration struct {
	from, to float64
	order    int
}

func newIntegrateCmd(opts *options) *cobra.Command {
	in := integration{}
	cmd := &cobra.Command{
		Use:   "integrate FUNC",
		Short: "Integrate a unary function with a Gauss-Legendre rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := quad.NewOrder(in.order)
			if err != nil {
				return err
			}
			if opts.f32() {
				return runIntegrate[float32](cmd.OutOrStdout(), args[0], o, in)
			}
			return runIntegrate[float64](cmd.OutOrStdout(), args[0], o, in)
		},
	}
	cmd.Flags().Float64Var(&in.from, "from", 0, "lower integration limit")
	cmd.Flags().Float64Var(&in.to, "to", 1, "upper integration limit")
	cmd.Flags().IntVar(&in.order, "order", int(quad.MaxOrder), "number of Gauss-Legendre points (1-4)")
	return cmd
}

func runIntegrate[T hwy.Floats](w io.Writer, name string, o quad.Order, in integration) error {
	f, err := math.LookupUnary[T](name)
	if err != nil {
		return err
	}
	v := quad.Integral(o, quad.Integrand[T](f), hwy.Set(T(in.from)), hwy.Set(T(in.to)))
	fmt.Fprintf(w, "integral of %s over [%s, %s] (%d points) = %s\n",
		name, formatFloat(T(in.from)), formatFloat(T(in.to)), int(o), formatFloat(v.Data()[0]))
	return nil
}
