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
	stdmath "math"
)

// oracles are float64 reference implementations for the unary functions.
var oracles = map[string]func(float64) float64{
	"exp2":  stdmath.Exp2,
	"exp":   stdmath.Exp,
	"exp10": func(x float64) float64 { return stdmath.Pow(10, x) },
	"expm1": stdmath.Expm1,
	"log2":  stdmath.Log2,
	"log":   stdmath.Log,
	"log10": stdmath.Log10,
	"log1p": stdmath.Log1p,
	"cbrt":  stdmath.Cbrt,
	"sin":   stdmath.Sin,
	"cos":   stdmath.Cos,
	"tan":   stdmath.Tan,
	"atan":  stdmath.Atan,
	"asin":  stdmath.Asin,
	"acos":  stdmath.Acos,
	"sinh":  stdmath.Sinh,
	"cosh":  stdmath.Cosh,
	"tanh":  stdmath.Tanh,
	"asinh": stdmath.Asinh,
	"acosh": stdmath.Acosh,
	"atanh": stdmath.Atanh,
	"erf":   stdmath.Erf,
	"erfc":  stdmath.Erfc,
}

func oracle(name string) (func(float64) float64, error) {
	f, ok := oracles[name]
	if !ok {
		return nil, fmt.Errorf("no reference for %q", name)
	}
	return f, nil
}

// report accumulates error statistics of a sweep.
type report struct {
	samples    int
	mismatches int
	maxAbs     float64
	maxAbsAt   float64
	maxRel     float64
	maxRelAt   float64
}

// add records the result got for argument x against the reference want.
// Results that disagree on NaN or infinity count as mismatches.
func (r *report) add(x, got, want float64) {
	r.samples++
	switch {
	case stdmath.IsNaN(got) || stdmath.IsNaN(want):
		if stdmath.IsNaN(got) != stdmath.IsNaN(want) {
			r.mismatches++
		}
		return
	case stdmath.IsInf(got, 0) || stdmath.IsInf(want, 0):
		if got != want {
			r.mismatches++
		}
		return
	}
	abs := stdmath.Abs(got - want)
	if abs > r.maxAbs {
		r.maxAbs, r.maxAbsAt = abs, x
	}
	if want != 0 {
		if rel := abs / stdmath.Abs(want); rel > r.maxRel {
			r.maxRel, r.maxRelAt = rel, x
		}
	}
}
