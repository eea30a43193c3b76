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
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwymath/hwy"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch target and lane counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			printer.Fprintf(w, "target:     %s\n", hwy.CurrentName())
			printer.Fprintf(w, "width:      %d bytes\n", hwy.CurrentWidth())
			printer.Fprintf(w, "lanes f32:  %d\n", hwy.MaxLanes[float32]())
			printer.Fprintf(w, "lanes f64:  %d\n", hwy.MaxLanes[float64]())
			printer.Fprintf(w, "fma:        %t\n", hwy.HasFMA())
			printer.Fprintf(w, "precision:  %s\n", opts.precision)
			return nil
		},
	}
}
