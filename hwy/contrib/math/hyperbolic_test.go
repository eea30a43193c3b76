package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/hwymath/hwy"
)

func TestHyperbolicSweeps(t *testing.T) {
	runSweeps(t, []sweepCase{
		{name: "Sinh", f64: Sinh[float64], f32: Sinh[float32], ref: stdmath.Sinh, lo: -30, hi: 30, tol64: 4e-15, tol32: 5e-6, errFn: ratioErr},
		{name: "Sinh small", f64: Sinh[float64], f32: Sinh[float32], ref: stdmath.Sinh, lo: -0.5, hi: 0.5, tol64: 4e-15, tol32: 5e-6, errFn: ratioErr},
		{name: "Cosh", f64: Cosh[float64], f32: Cosh[float32], ref: stdmath.Cosh, lo: -30, hi: 30, tol64: 4e-15, tol32: 5e-6, errFn: ratioErr},
		{name: "Tanh", f64: Tanh[float64], f32: Tanh[float32], ref: stdmath.Tanh, lo: -25, hi: 25, tol64: 4e-15, tol32: 5e-6, errFn: ratioErr},
		{name: "Asinh", f64: Asinh[float64], f32: Asinh[float32], ref: stdmath.Asinh, lo: -100, hi: 100, tol64: 4e-15, tol32: 5e-6, errFn: ratioErr},
		{name: "Acosh", f64: Acosh[float64], f32: Acosh[float32], ref: stdmath.Acosh, lo: 1, hi: 100, tol64: 4e-15, tol32: 5e-6, errFn: ratioErr},
		{name: "Atanh", f64: Atanh[float64], f32: Atanh[float32], ref: stdmath.Atanh, lo: -0.99, hi: 0.99, tol64: 4e-15, tol32: 5e-6, errFn: ratioErr},
	})
}

func TestHyperbolicLargeArguments(t *testing.T) {
	tests := []struct {
		name string
		f    func(hwy.Vec[float64]) hwy.Vec[float64]
		ref  func(float64) float64
		x    float64
	}{
		{"Sinh", Sinh[float64], stdmath.Sinh, 700},
		{"Sinh negative", Sinh[float64], stdmath.Sinh, -700},
		{"Cosh", Cosh[float64], stdmath.Cosh, 710},
		{"Asinh", Asinh[float64], stdmath.Asinh, 1e10},
		{"Asinh huge", Asinh[float64], stdmath.Asinh, 1e300},
		{"Acosh", Acosh[float64], stdmath.Acosh, 1e10},
		{"Acosh huge", Acosh[float64], stdmath.Acosh, 1e300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := one64(tt.f, tt.x), tt.ref(tt.x); ratioErr(got, want) > 4e-15 {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestHyperbolicSpecialCases(t *testing.T) {
	tests := []struct {
		name string
		f    func(hwy.Vec[float64]) hwy.Vec[float64]
		x    float64
		want float64
	}{
		{"Sinh(0)", Sinh[float64], 0, 0},
		{"Sinh(+Inf)", Sinh[float64], inf, inf},
		{"Sinh(-Inf)", Sinh[float64], -inf, -inf},
		{"Sinh(NaN)", Sinh[float64], nan, nan},
		{"Cosh(0)", Cosh[float64], 0, 1},
		{"Cosh(-Inf)", Cosh[float64], -inf, inf},
		{"Cosh(NaN)", Cosh[float64], nan, nan},
		{"Tanh(0)", Tanh[float64], 0, 0},
		{"Tanh(+Inf)", Tanh[float64], inf, 1},
		{"Tanh(-Inf)", Tanh[float64], -inf, -1},
		{"Tanh(NaN)", Tanh[float64], nan, nan},
		{"Asinh(0)", Asinh[float64], 0, 0},
		{"Asinh(-0)", Asinh[float64], negZ, negZ},
		{"Asinh(-Inf)", Asinh[float64], -inf, -inf},
		{"Asinh(NaN)", Asinh[float64], nan, nan},
		{"Acosh(1)", Acosh[float64], 1, 0},
		{"Acosh(+Inf)", Acosh[float64], inf, inf},
		{"Acosh(NaN)", Acosh[float64], nan, nan},
		{"Atanh(0)", Atanh[float64], 0, 0},
		{"Atanh(1)", Atanh[float64], 1, inf},
		{"Atanh(-1)", Atanh[float64], -1, -inf},
		{"Atanh(NaN)", Atanh[float64], nan, nan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := one64(tt.f, tt.x); !sameFloat(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInverseHyperbolicOutsideDomain(t *testing.T) {
	for _, x := range []float64{0.999999, 0, -1, -inf} {
		if got := one64(Acosh[float64], x); !stdmath.IsNaN(got) {
			t.Errorf("Acosh(%v) = %v, want NaN", x, got)
		}
	}
	for _, x := range []float64{1.000001, -1.5, inf, -inf} {
		if got := one64(Atanh[float64], x); !stdmath.IsNaN(got) {
			t.Errorf("Atanh(%v) = %v, want NaN", x, got)
		}
	}
}
