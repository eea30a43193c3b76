package quad

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

func integrate(o Order, f Integrand[float64], x1, x2 float64) float64 {
	return Integral(o, f, hwy.Set(x1), hwy.Set(x2)).Data()[0]
}

func constant(v float64) Integrand[float64] {
	return func(x hwy.Vec[float64]) hwy.Vec[float64] { return hwy.Set(v) }
}

// monomial returns x^k.
func monomial(k int) Integrand[float64] {
	return func(x hwy.Vec[float64]) hwy.Vec[float64] {
		y := hwy.Set(1.0)
		for range k {
			y = hwy.Mul(y, x)
		}
		return y
	}
}

func TestZeroWidth(t *testing.T) {
	for o := Order(1); o <= MaxOrder; o++ {
		if got := integrate(o, math.Exp[float64], 1.7, 1.7); got != 0 {
			t.Errorf("order %d: integral over [1.7, 1.7] = %v, want 0", o, got)
		}
	}
}

func TestConstant(t *testing.T) {
	for o := Order(1); o <= MaxOrder; o++ {
		if got := integrate(o, constant(1), 0, 5); stdmath.Abs(got-5) > 1e-14 {
			t.Errorf("order %d: integral of 1 over [0, 5] = %v, want 5", o, got)
		}
	}
}

func TestPolynomialExactness(t *testing.T) {
	const x1, x2 = -1.0, 2.0
	for o := Order(1); o <= MaxOrder; o++ {
		for k := 0; k <= 2*int(o)-1; k++ {
			want := (stdmath.Pow(x2, float64(k+1)) - stdmath.Pow(x1, float64(k+1))) / float64(k+1)
			if got := integrate(o, monomial(k), x1, x2); stdmath.Abs(got-want) > 1e-13 {
				t.Errorf("order %d: integral of x^%d = %v, want %v", o, k, got, want)
			}
		}
	}
}

func TestConvergence(t *testing.T) {
	prev := stdmath.Inf(1)
	for o := Order(1); o <= MaxOrder; o++ {
		err := stdmath.Abs(integrate(o, math.Sin[float64], 0, stdmath.Pi) - 2)
		if err >= prev {
			t.Errorf("order %d error %v not below order %d error %v", o, err, o-1, prev)
		}
		prev = err
	}
	if prev > 1e-4 {
		t.Errorf("four-point error for sin over [0, π] = %v", prev)
	}
}

func TestReversedInterval(t *testing.T) {
	f := monomial(2)
	if got, want := integrate(3, f, 3, 0), -9.0; stdmath.Abs(got-want) > 1e-13 {
		t.Errorf("integral of x² over [3, 0] = %v, want %v", got, want)
	}
}

func TestShortcuts(t *testing.T) {
	f := Integrand[float64](math.Exp[float64])
	x1, x2 := hwy.Set(0.0), hwy.Set(1.0)
	shortcuts := []func(Integrand[float64], hwy.Vec[float64], hwy.Vec[float64]) hwy.Vec[float64]{
		Integral1[float64], Integral2[float64], Integral3[float64], Integral4[float64],
	}
	for i, s := range shortcuts {
		got := s(f, x1, x2).Data()[0]
		if want := Integral(Order(i+1), f, x1, x2).Data()[0]; got != want {
			t.Errorf("Integral%d = %v, want %v", i+1, got, want)
		}
	}
}

func TestPerLaneIntervals(t *testing.T) {
	lanes := hwy.MaxLanes[float32]()
	hi := make([]float32, lanes)
	for i := range hi {
		hi[i] = float32(i + 1)
	}
	// ∫₀ᵇ 3x² dx = b³.
	f := func(x hwy.Vec[float32]) hwy.Vec[float32] { return hwy.Mul(hwy.Set[float32](3), hwy.Mul(x, x)) }
	got := Integral2(f, hwy.Zero[float32](), hwy.Load(hi)).Data()
	for i, b := range hi {
		want := b * b * b
		if stdmath.Abs(float64(got[i]-want)) > 1e-5*float64(want) {
			t.Errorf("lane %d: integral = %v, want %v", i, got[i], want)
		}
	}
}

func TestNodes(t *testing.T) {
	for o := Order(1); o <= MaxOrder; o++ {
		nodes, weights := Nodes(o)
		if len(nodes) != int(o) || len(weights) != int(o) {
			t.Fatalf("order %d: %d nodes, %d weights", o, len(nodes), len(weights))
		}
		sum := 0.0
		for i, w := range weights {
			sum += w
			if i > 0 && nodes[i] <= nodes[i-1] {
				t.Errorf("order %d: nodes not ascending: %v", o, nodes)
			}
		}
		if stdmath.Abs(sum-2) > 1e-15 {
			t.Errorf("order %d: weights sum to %v, want 2", o, sum)
		}
	}
	if n, w := Nodes(0); n != nil || w != nil {
		t.Errorf("Nodes(0) = %v, %v", n, w)
	}
}

func TestNewOrder(t *testing.T) {
	for n := 1; n <= 4; n++ {
		if o, err := NewOrder(n); err != nil || int(o) != n {
			t.Errorf("NewOrder(%d) = %v, %v", n, o, err)
		}
	}
	for _, n := range []int{0, 5, -1} {
		if _, err := NewOrder(n); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("NewOrder(%d) error = %v, want ErrInvalidOrder", n, err)
		}
	}
	if got := integrate(7, constant(1), 0, 1); !stdmath.IsNaN(got) {
		t.Errorf("Integral with order 7 = %v, want NaN", got)
	}
}
