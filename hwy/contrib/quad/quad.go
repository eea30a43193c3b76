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

// Package quad provides fixed-order Gauss-Legendre quadrature of lane
// vector functions.
package quad

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/ajroetker/hwymath/hwy"
)

// ErrInvalidOrder is returned for a rule order outside 1..4.
var ErrInvalidOrder = errors.New("invalid Gauss-Legendre order")

// Order is the number of Gauss-Legendre points, 1 to 4. A rule of order n
// integrates polynomials of degree up to 2n-1 exactly.
type Order int

// MaxOrder is the highest supported order.
const MaxOrder Order = 4

// NewOrder validates n as a rule order.
func NewOrder(n int) (Order, error) {
	if n < 1 || n > int(MaxOrder) {
		return 0, fmt.Errorf("quad: %w: %d", ErrInvalidOrder, n)
	}
	return Order(n), nil
}

// Valid reports whether o is a supported order.
func (o Order) Valid() bool {
	return o >= 1 && o <= MaxOrder
}

// Integrand is a function evaluated at lane-wise abscissas.
type Integrand[T hwy.Floats] func(x hwy.Vec[T]) hwy.Vec[T]

// pair is a node ±x on [-1, 1] and its weight.
type pair struct {
	x, w float64
}

// rule holds the weight of the centre node (zero for even orders) and the
// symmetric node pairs.
type rule struct {
	centre float64
	pairs  []pair
}

var rules = [...]rule{
	1: {centre: 2},
	2: {pairs: []pair{
		{0.5773502691896257645091488, 1},
	}},
	3: {centre: 8.0 / 9.0, pairs: []pair{
		{0.7745966692414833770358531, 5.0 / 9.0},
	}},
	4: {pairs: []pair{
		{0.3399810435848562648026658, 0.6521451548625461426269361},
		{0.8611363115940525752239465, 0.3478548451374538573730639},
	}},
}

// Nodes returns the nodes on [-1, 1] in ascending order with their
// weights, or nil slices for an invalid order.
func Nodes(o Order) (nodes, weights []float64) {
	if !o.Valid() {
		return nil, nil
	}
	r := rules[o]
	for i := len(r.pairs) - 1; i >= 0; i-- {
		nodes = append(nodes, -r.pairs[i].x)
		weights = append(weights, r.pairs[i].w)
	}
	if r.centre != 0 {
		nodes = append(nodes, 0)
		weights = append(weights, r.centre)
	}
	for _, p := range r.pairs {
		nodes = append(nodes, p.x)
		weights = append(weights, p.w)
	}
	return nodes, weights
}

// Integral approximates the integral of f over [x1, x2] per lane with the
// rule of order o. The nodes are mapped by x = m + h·ξ with m = (x1+x2)/2
// and h = (x2-x1)/2; each symmetric pair costs one call per node and one
// weight multiply. An invalid order yields NaN lanes.
func Integral[T hwy.Floats](o Order, f Integrand[T], x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	if !o.Valid() {
		return hwy.Set(T(stdmath.NaN()))
	}
	r := rules[o]
	half := hwy.Set[T](0.5)
	m := hwy.Mul(hwy.Add(x1, x2), half)
	h := hwy.Mul(hwy.Sub(x2, x1), half)

	sum := hwy.Zero[T]()
	if r.centre != 0 {
		sum = hwy.Mul(hwy.Set(T(r.centre)), f(m))
	}
	for _, p := range r.pairs {
		dx := hwy.Mul(h, hwy.Set(T(p.x)))
		fp := hwy.Add(f(hwy.Add(m, dx)), f(hwy.Sub(m, dx)))
		sum = hwy.MulAdd(hwy.Set(T(p.w)), fp, sum)
	}
	return hwy.Mul(h, sum)
}

// Integral1 is the midpoint rule.
func Integral1[T hwy.Floats](f Integrand[T], x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	return Integral(1, f, x1, x2)
}

// Integral2 is the two-point rule.
func Integral2[T hwy.Floats](f Integrand[T], x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	return Integral(2, f, x1, x2)
}

// Integral3 is the three-point rule.
func Integral3[T hwy.Floats](f Integrand[T], x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	return Integral(3, f, x1, x2)
}

// Integral4 is the four-point rule.
func Integral4[T hwy.Floats](f Integrand[T], x1, x2 hwy.Vec[T]) hwy.Vec[T] {
	return Integral(4, f, x1, x2)
}
