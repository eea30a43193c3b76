package math

import (
	stdmath "math"
	"testing"
	"time"

	"github.com/ajroetker/hwymath/hwy"
)

func two64(f func(a, b hwy.Vec[float64]) hwy.Vec[float64], a, b float64) float64 {
	return f(hwy.Set(a), hwy.Set(b)).Data()[0]
}

func TestPown(t *testing.T) {
	tests := []struct {
		name string
		x, n float64
		want float64
	}{
		{"square", 3, 2, 9},
		{"power of two", 2, 10, 1024},
		{"negative exponent", 2, -2, 0.25},
		{"odd negative base", -3, 3, -27},
		{"even negative base", -3, 4, 81},
		{"fraction", 1.5, 7, 17.0859375},
		{"zero exponent", 123, 0, 1},
		{"zero exponent nan", nan, 0, 1},
		{"zero base negative", 0, -1, inf},
		{"negative zero odd", negZ, -3, -inf},
		{"negative zero even", negZ, -2, inf},
		{"large", 2, 1023, stdmath.Ldexp(1, 1023)},
		{"overflow", 10, 400, inf},
		{"nan base", nan, 3, nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := two64(Pown[float64], tt.x, tt.n); !sameFloat(got, tt.want) {
				t.Errorf("Pown(%v, %v) = %v, want %v", tt.x, tt.n, got, tt.want)
			}
		})
	}
}

func TestPownMixedLanes(t *testing.T) {
	lanes := hwy.MaxLanes[float64]()
	xs := make([]float64, lanes)
	ns := make([]float64, lanes)
	for i := range xs {
		xs[i] = 1.1 + float64(i)*0.3
		ns[i] = float64(i*7 - 10)
	}
	got := Pown(hwy.Load(xs), hwy.Load(ns)).Data()
	for i := range xs {
		if want := stdmath.Pow(xs[i], ns[i]); ratioErr(got[i], want) > 1e-13 {
			t.Errorf("Pown(%v, %v) = %v, want %v", xs[i], ns[i], got[i], want)
		}
	}
}

func TestPownNonFiniteExponent(t *testing.T) {
	tests := []struct {
		name string
		x, n float64
		want float64
	}{
		{"large base inf", 2, inf, inf},
		{"negative large base inf", -2, inf, inf},
		{"small base inf", 0.5, inf, 0},
		{"zero base inf", 0, inf, 0},
		{"large base negative inf", 2, -inf, 0},
		{"small base negative inf", 0.5, -inf, inf},
		{"zero base negative inf", 0, -inf, inf},
		{"inf base inf", inf, inf, inf},
		{"inf base negative inf", inf, -inf, 0},
		{"unit base inf", 1, inf, 1},
		{"negative unit base negative inf", -1, -inf, 1},
		{"nan exponent", 2, nan, nan},
		{"unit base nan exponent", 1, nan, nan},
		{"nan base inf", nan, inf, nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan float64, 1)
			go func() { done <- two64(Pown[float64], tt.x, tt.n) }()
			select {
			case got := <-done:
				if !sameFloat(got, tt.want) {
					t.Errorf("Pown(%v, %v) = %v, want %v", tt.x, tt.n, got, tt.want)
				}
			case <-time.After(5 * time.Second):
				t.Fatalf("Pown(%v, %v) did not return", tt.x, tt.n)
			}
		})
	}
}

func TestPownNonFiniteLanesKeepFiniteResults(t *testing.T) {
	lanes := hwy.MaxLanes[float32]()
	xs := make([]float32, lanes)
	ns := make([]float32, lanes)
	for i := range xs {
		xs[i] = 3
		ns[i] = float32(i % 5)
	}
	ns[0] = float32(inf)
	got := Pown(hwy.Load(xs), hwy.Load(ns)).Data()
	if !stdmath.IsInf(float64(got[0]), 1) {
		t.Errorf("Pown(3, +Inf) = %v, want +Inf", got[0])
	}
	for i := 1; i < lanes; i++ {
		if want := float32(stdmath.Pow(3, float64(ns[i]))); got[i] != want {
			t.Errorf("lane %d: Pown(3, %v) = %v, want %v", i, ns[i], got[i], want)
		}
	}
}

func TestPownHugeFiniteExponent(t *testing.T) {
	if got := two64(Pown[float64], 1, stdmath.MaxFloat64); got != 1 {
		t.Errorf("Pown(1, MaxFloat64) = %v, want 1", got)
	}
	if got := two64(Pown[float64], 0.5, stdmath.MaxFloat64); got != 0 {
		t.Errorf("Pown(0.5, MaxFloat64) = %v, want 0", got)
	}
}

func TestPowSpecialCases(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"zero exponent", 5, 0, 1},
		{"zero exponent nan base", nan, 0, 1},
		{"unit base nan exponent", 1, nan, 1},
		{"unit base inf exponent", 1, inf, 1},
		{"integral exponent", -2, 3, -8},
		{"negative base fraction", -8, 1.0 / 3, nan},
		{"negative base half", -2, 0.5, nan},
		{"zero base negative", 0, -1, inf},
		{"negative zero odd", negZ, -1, -inf},
		{"zero base fraction", 0, 0.5, 0},
		{"zero base negative fraction", 0, -0.5, inf},
		{"inf exponent", 2, inf, inf},
		{"inf exponent small base", 0.5, inf, 0},
		{"negative inf exponent", 2, -inf, 0},
		{"inf base", inf, 2, inf},
		{"inf base negative", inf, -1, 0},
		{"negative inf base odd", -inf, 3, -inf},
		{"huge integral exponent", 2, 3e9, inf},
		{"nan exponent", 2, nan, nan},
		{"nan base", nan, 2, nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := two64(Pow[float64], tt.x, tt.y); !sameFloat(got, tt.want) {
				t.Errorf("Pow(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPowSweep(t *testing.T) {
	xs := linspace(0.1, 10, 101)
	ys := linspace(-20.05, 19.95, 101)
	for _, y := range ys {
		got := eval64(func(v hwy.Vec[float64]) hwy.Vec[float64] {
			return Pow(v, hwy.Set(y))
		}, xs)
		for i, x := range xs {
			if want := stdmath.Pow(x, y); ratioErr(got[i], want) > 1e-13 {
				t.Errorf("Pow(%v, %v) = %v, want %v", x, y, got[i], want)
			}
		}

		y32 := float32(y)
		x32 := to32(xs)
		got32 := eval32(func(v hwy.Vec[float32]) hwy.Vec[float32] {
			return Pow(v, hwy.Set(y32))
		}, x32)
		for i, x := range x32 {
			if want := stdmath.Pow(float64(x), float64(y32)); ratioErr(float64(got32[i]), want) > 2e-5 {
				t.Errorf("float32 Pow(%v, %v) = %v, want %v", x, y32, got32[i], want)
			}
		}
	}
}

func TestCbrt(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{27, 3},
		{-8, -2},
		{1, 1},
		{0.125, 0.5},
		{0, 0},
		{negZ, negZ},
		{inf, inf},
		{-inf, -inf},
		{nan, nan},
	}
	for _, tt := range tests {
		if got := one64(Cbrt[float64], tt.x); !sameFloat(got, tt.want) {
			t.Errorf("Cbrt(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestCbrtSweeps(t *testing.T) {
	runSweeps(t, []sweepCase{
		{name: "Cbrt", f64: Cbrt[float64], f32: Cbrt[float32], ref: stdmath.Cbrt, lo: -1000, hi: 1000, tol64: 1e-15, tol32: 1e-6, errFn: ratioErr},
	})
	for _, x := range []float64{5e-324, 1e-310, 1e-200, 1e200, 1e308, stdmath.MaxFloat64} {
		if got, want := one64(Cbrt[float64], x), stdmath.Cbrt(x); ratioErr(got, want) > 1e-15 {
			t.Errorf("Cbrt(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestHypot(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"pythagorean", 3, 4, 5},
		{"negative", -3, -4, 5},
		{"zero", 0, 0, 0},
		{"one zero", 0, -7, 7},
		{"inf with nan", inf, nan, inf},
		{"nan with inf", nan, -inf, inf},
		{"nan", nan, 1, nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := two64(Hypot[float64], tt.x, tt.y); !sameFloat(got, tt.want) {
				t.Errorf("Hypot(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHypotNoOverflow(t *testing.T) {
	pairs := [][2]float64{{1e300, 1e300}, {1e-300, 1e-300}, {1e200, 1}, {3e-160, 4e-160}}
	for _, p := range pairs {
		if got, want := two64(Hypot[float64], p[0], p[1]), stdmath.Hypot(p[0], p[1]); ratioErr(got, want) > 1e-15 {
			t.Errorf("Hypot(%v, %v) = %v, want %v", p[0], p[1], got, want)
		}
	}
}
