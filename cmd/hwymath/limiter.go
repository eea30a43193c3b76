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
	"github.com/ajroetker/hwymath/hwy/contrib/limiter"
)

func newLimiterCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limiter KIND D1 D2",
		Short: "Evaluate a flux limiter for two consecutive differences",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := limiter.ParseKind(args[0])
			if err != nil {
				return err
			}
			if opts.f32() {
				return runLimiter[float32](cmd.OutOrStdout(), k, args[1], args[2])
			}
			return runLimiter[float64](cmd.OutOrStdout(), k, args[1], args[2])
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the limiter names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range limiter.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	})
	return cmd
}

func runLimiter[T hwy.Floats](w io.Writer, k limiter.Kind, s1, s2 string) error {
	d1, err := parseFloat[T](s1)
	if err != nil {
		return err
	}
	d2, err := parseFloat[T](s2)
	if err != nil {
		return err
	}
	f, err := limiter.For[T](k)
	if err != nil {
		return err
	}
	psi := f(hwy.Set(d1), hwy.Set(d2))
	fmt.Fprintf(w, "%s(%s, %s) = %s\n", k, formatFloat(d1), formatFloat(d2), formatFloat(psi.Data()[0]))
	return nil
}
