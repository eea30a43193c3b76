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

// Command hwymath evaluates, checks and benchmarks the vectorized math
// kernels from the command line.
//
// Usage:
//
//	hwymath info
//	hwymath eval exp 0 1 2.5
//	hwymath eval atan2 1:-1
//	hwymath accuracy erfc --min 0 --max 10 --samples 1000000
//	hwymath bench sin --samples 1048576
//	hwymath solve quadratic --lo 0 --hi 10 -- 0 -4
//	hwymath limiter superbee 1 2
//	hwymath integrate exp --from 0 --to 1 --order 4
//
// Negative positional values must follow "--" so they are not read as
// flags. The global --precision flag selects float32 or float64 lanes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lmittmann/tint"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
			NoColor:    os.Getenv("NO_COLOR") != "",
		}),
	))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("hwymath failed", "err", err)
		stop()
		os.Exit(1)
	}
}
