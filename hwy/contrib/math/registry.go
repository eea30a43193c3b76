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

package math

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ajroetker/hwymath/hwy"
)

// ErrUnknownFunction is returned by the lookup functions for names that
// are not registered.
var ErrUnknownFunction = errors.New("unknown function")

// Unary is a lane-wise function of one vector.
type Unary[T hwy.Floats] func(x hwy.Vec[T]) hwy.Vec[T]

// Binary is a lane-wise function of two vectors.
type Binary[T hwy.Floats] func(a, b hwy.Vec[T]) hwy.Vec[T]

func unaryTable[T hwy.Floats]() map[string]Unary[T] {
	return map[string]Unary[T]{
		"exp2":  Exp2[T],
		"exp":   Exp[T],
		"exp10": Exp10[T],
		"expm1": Expm1[T],
		"log2":  Log2[T],
		"log":   Log[T],
		"log10": Log10[T],
		"log1p": Log1p[T],
		"cbrt":  Cbrt[T],
		"sin":   Sin[T],
		"cos":   Cos[T],
		"tan":   Tan[T],
		"atan":  Atan[T],
		"asin":  Asin[T],
		"acos":  Acos[T],
		"sinh":  Sinh[T],
		"cosh":  Cosh[T],
		"tanh":  Tanh[T],
		"asinh": Asinh[T],
		"acosh": Acosh[T],
		"atanh": Atanh[T],
		"erf":   Erf[T],
		"erfc":  Erfc[T],
	}
}

func binaryTable[T hwy.Floats]() map[string]Binary[T] {
	return map[string]Binary[T]{
		"pow":   Pow[T],
		"pown":  Pown[T],
		"atan2": Atan2[T],
		"hypot": Hypot[T],
		"ldexp": Ldexp[T],
	}
}

// LookupUnary returns the unary function registered under name.
func LookupUnary[T hwy.Floats](name string) (Unary[T], error) {
	if f, ok := unaryTable[T]()[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("math: %w %q", ErrUnknownFunction, name)
}

// LookupBinary returns the binary function registered under name. The
// first argument of atan2 is y.
func LookupBinary[T hwy.Floats](name string) (Binary[T], error) {
	if f, ok := binaryTable[T]()[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("math: %w %q", ErrUnknownFunction, name)
}

// UnaryNames returns the registered unary function names, sorted.
func UnaryNames() []string {
	return sortedKeys(unaryTable[float64]())
}

// BinaryNames returns the registered binary function names, sorted.
func BinaryNames() []string {
	return sortedKeys(binaryTable[float64]())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
