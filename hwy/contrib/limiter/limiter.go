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

// Package limiter provides flux limiter functions for TVD upwind schemes.
//
// Each limiter maps two consecutive solution differences d1 and d2 to a
// weight ψ(r), r = d1/d2, that blends a low-order and a high-order flux.
// Every ratio-based limiter returns exactly 0 in lanes where d1*d2 does
// not exceed the machine epsilon, so opposite-signed or vanishing
// differences never divide.
package limiter

import (
	"errors"
	"fmt"
	stdmath "math"
	"strings"

	"github.com/ajroetker/hwymath/hwy"
)

// ErrUnknownKind is returned when a limiter name or Kind is not recognized.
var ErrUnknownKind = errors.New("unknown limiter")

// Kind selects a flux limiter.
type Kind int

const (
	Total Kind = iota
	Null
	Centred
	Superbee
	Minmod
	VanLeer
	VanAlbada
	Minsuper
	Supermin
	MonotonizedCentral
	Mean
)

var kindNames = [...]string{
	Total:              "total",
	Null:               "null",
	Centred:            "centred",
	Superbee:           "superbee",
	Minmod:             "minmod",
	VanLeer:            "vanleer",
	VanAlbada:          "vanalbada",
	Minsuper:           "minsuper",
	Supermin:           "supermin",
	MonotonizedCentral: "mc",
	Mean:               "mean",
}

// String returns the lower-case name of the limiter.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every limiter in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind returns the Kind named s, ignoring case, '-' and '_'.
func ParseKind(s string) (Kind, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	switch norm {
	case "centered":
		return Centred, nil
	case "monotonizedcentral":
		return MonotonizedCentral, nil
	}
	for i, name := range kindNames {
		if name == norm {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("limiter: %w %q", ErrUnknownKind, s)
}

// Limiter is a flux limiter over lane vectors.
type Limiter[T hwy.Floats] func(d1, d2 hwy.Vec[T]) hwy.Vec[T]

// For returns the limiter function for k.
func For[T hwy.Floats](k Kind) (Limiter[T], error) {
	switch k {
	case Total:
		return TotalLimiter[T], nil
	case Null:
		return NullLimiter[T], nil
	case Centred:
		return CentredLimiter[T], nil
	case Superbee:
		return SuperbeeLimiter[T], nil
	case Minmod:
		return MinmodLimiter[T], nil
	case VanLeer:
		return VanLeerLimiter[T], nil
	case VanAlbada:
		return VanAlbadaLimiter[T], nil
	case Minsuper:
		return MinsuperLimiter[T], nil
	case Supermin:
		return SuperminLimiter[T], nil
	case MonotonizedCentral:
		return MonotonizedCentralLimiter[T], nil
	case Mean:
		return MeanLimiter[T], nil
	}
	return nil, fmt.Errorf("limiter: %w %v", ErrUnknownKind, k)
}

// Apply evaluates the limiter k. An unknown k yields NaN lanes.
func Apply[T hwy.Floats](k Kind, d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	f, err := For[T](k)
	if err != nil {
		return hwy.Set(T(stdmath.NaN()))
	}
	return f(d1, d2)
}

// epsilon is the machine epsilon of T.
func epsilon[T hwy.Floats]() T {
	return T(stdmath.Ldexp(1, -int(hwy.LayoutOf[T]().MantissaBits)))
}

// ratio returns r = d1/d2 and the lanes where d1*d2 exceeds epsilon.
func ratio[T hwy.Floats](d1, d2 hwy.Vec[T]) (r hwy.Vec[T], ok hwy.Mask[T]) {
	ok = hwy.Greater(hwy.Mul(d1, d2), hwy.Set(epsilon[T]()))
	return hwy.Div(d1, d2), ok
}

// TotalLimiter is ψ = 0: first-order upwind everywhere.
func TotalLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Zero[T]()
}

// NullLimiter is ψ = 1: the unlimited high-order flux.
func NullLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Set[T](1)
}

// CentredLimiter is ψ = r, or 0 where |d2| does not exceed epsilon.
func CentredLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	small := hwy.LessEqual(hwy.Abs(d2), hwy.Set(epsilon[T]()))
	return hwy.IfThenZeroElse(small, hwy.Div(d1, d2))
}

// SuperbeeLimiter is ψ = max(0, min(2r, 1), min(r, 2)).
func SuperbeeLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	r, ok := ratio(d1, d2)
	one, two := hwy.Set[T](1), hwy.Set[T](2)
	psi := hwy.Max(hwy.Min(hwy.Add(r, r), one), hwy.Min(r, two))
	return hwy.IfThenElseZero(ok, hwy.Max(psi, hwy.Zero[T]()))
}

// MinmodLimiter is ψ = max(0, min(r, 1)).
func MinmodLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	r, ok := ratio(d1, d2)
	psi := hwy.Max(hwy.Min(r, hwy.Set[T](1)), hwy.Zero[T]())
	return hwy.IfThenElseZero(ok, psi)
}

// VanLeerLimiter is ψ = (r + |r|) / (1 + |r|).
func VanLeerLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	r, ok := ratio(d1, d2)
	a := hwy.Abs(r)
	psi := hwy.Div(hwy.Add(r, a), hwy.Add(hwy.Set[T](1), a))
	return hwy.IfThenElseZero(ok, psi)
}

// VanAlbadaLimiter is ψ = (r + r²) / (1 + r²).
func VanAlbadaLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	r, ok := ratio(d1, d2)
	r2 := hwy.Mul(r, r)
	psi := hwy.Div(hwy.Add(r, r2), hwy.Add(hwy.Set[T](1), r2))
	return hwy.IfThenElseZero(ok, psi)
}

// MinsuperLimiter is ψ = max(0, min(r, 2)).
func MinsuperLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	r, ok := ratio(d1, d2)
	psi := hwy.Max(hwy.Min(r, hwy.Set[T](2)), hwy.Zero[T]())
	return hwy.IfThenElseZero(ok, psi)
}

// SuperminLimiter is ψ = max(0, min(2r, 1)).
func SuperminLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	r, ok := ratio(d1, d2)
	psi := hwy.Max(hwy.Min(hwy.Add(r, r), hwy.Set[T](1)), hwy.Zero[T]())
	return hwy.IfThenElseZero(ok, psi)
}

// MonotonizedCentralLimiter is ψ = max(0, min(2, (1+r)/2, 2r)).
func MonotonizedCentralLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	r, ok := ratio(d1, d2)
	half := hwy.Set[T](0.5)
	avg := hwy.MulAdd(r, half, half)
	psi := hwy.Min(hwy.Min(hwy.Set[T](2), avg), hwy.Add(r, r))
	return hwy.IfThenElseZero(ok, hwy.Max(psi, hwy.Zero[T]()))
}

// MeanLimiter is ψ = max(0, (1+r)/2).
func MeanLimiter[T hwy.Floats](d1, d2 hwy.Vec[T]) hwy.Vec[T] {
	r, ok := ratio(d1, d2)
	half := hwy.Set[T](0.5)
	psi := hwy.Max(hwy.MulAdd(r, half, half), hwy.Zero[T]())
	return hwy.IfThenElseZero(ok, psi)
}
