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
	"log/slog"
	"os"
	"strconv"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwymath/hwy"
)

// errPrecision is returned for a --precision value other than f32 or f64.
var errPrecision = errors.New("invalid precision")

// options holds the persistent flags shared by every command.
type options struct {
	logLevel  string
	noColor   bool
	precision string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "hwymath",
		Short:         "Evaluate, check and benchmark vectorized math kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	f.BoolVar(&opts.noColor, "no-color", os.Getenv("NO_COLOR") != "", "disable colored log output")
	f.StringVar(&opts.precision, "precision", "f64", "lane precision: f32 or f64")

	root.AddCommand(
		newInfoCmd(opts),
		newEvalCmd(opts),
		newAccuracyCmd(opts),
		newBenchCmd(opts),
		newSolveCmd(opts),
		newLimiterCmd(opts),
		newIntegrateCmd(opts),
	)
	return root
}

// setup validates the persistent flags and installs the logger.
func (o *options) setup(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if o.precision != "f32" && o.precision != "f64" {
		return fmt.Errorf("--precision %q: %w: want f32 or f64", o.precision, errPrecision)
	}

	o.logger = slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    o.noColor,
	}))
	slog.SetDefault(o.logger)

	o.logger.Debug("dispatch",
		"target", hwy.CurrentName(),
		"width", hwy.CurrentWidth(),
		"lanes_f32", hwy.MaxLanes[float32](),
		"lanes_f64", hwy.MaxLanes[float64](),
	)
	return nil
}

func (o *options) f32() bool {
	return o.precision == "f32"
}

// bitSize is 32 or 64 for T.
func bitSize[T hwy.Floats]() int {
	if hwy.LayoutOf[T]().MantissaBits == 23 {
		return 32
	}
	return 64
}

// parseFloat parses s at the precision of T.
func parseFloat[T hwy.Floats](s string) (T, error) {
	v, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return T(v), nil
}

func parseFloats[T hwy.Floats](args []string) ([]T, error) {
	xs := make([]T, len(args))
	for i, s := range args {
		v, err := parseFloat[T](s)
		if err != nil {
			return nil, err
		}
		xs[i] = v
	}
	return xs, nil
}

// formatFloat prints v with the shortest representation at its precision.
func formatFloat[T hwy.Floats](v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, bitSize[T]())
}
