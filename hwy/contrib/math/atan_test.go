package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/hwymath/hwy"
)

func TestInverseTrigSweeps(t *testing.T) {
	runSweeps(t, []sweepCase{
		{name: "Atan", f64: Atan[float64], f32: Atan[float32], ref: stdmath.Atan, lo: -50, hi: 50, tol64: 1e-15, tol32: 1e-6},
		{name: "Atan unit", f64: Atan[float64], f32: Atan[float32], ref: stdmath.Atan, lo: -3, hi: 3, tol64: 1e-15, tol32: 1e-6},
		{name: "Asin", f64: Asin[float64], f32: Asin[float32], ref: stdmath.Asin, lo: -1, hi: 1, tol64: 2e-15, tol32: 1e-6},
		{name: "Acos", f64: Acos[float64], f32: Acos[float32], ref: stdmath.Acos, lo: -1, hi: 1, tol64: 2e-15, tol32: 1e-6},
	})
}

func TestAtanReductionThresholds(t *testing.T) {
	for _, c := range []float64{atanLow, tan3pio8} {
		for _, x := range []float64{c * (1 - 1e-12), c, c * (1 + 1e-12)} {
			if got, want := one64(Atan[float64], x), stdmath.Atan(x); relErr(got, want) > 1e-15 {
				t.Errorf("Atan(%v) = %v, want %v", x, got, want)
			}
		}
	}
}

func TestAtanOfTan(t *testing.T) {
	xs := linspace(-1.5, 1.5, 601)
	got := eval64(func(v hwy.Vec[float64]) hwy.Vec[float64] {
		return Atan(Tan(v))
	}, xs)
	for i, x := range xs {
		if stdmath.Abs(got[i]-x) > 1e-14 {
			t.Errorf("Atan(Tan(%v)) = %v", x, got[i])
		}
	}
}

func TestAtanSpecialCases(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0},
		{negZ, negZ},
		{inf, stdmath.Pi / 2},
		{-inf, -stdmath.Pi / 2},
		{nan, nan},
	}
	for _, tt := range tests {
		if got := one64(Atan[float64], tt.x); !sameFloat(got, tt.want) {
			t.Errorf("Atan(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestAtan2SpecialCases(t *testing.T) {
	values := []float64{0, negZ, 1, -1, 2.5, -0.3, inf, -inf, nan}
	finite := func(v float64) bool { return v != 0 && !stdmath.IsInf(v, 0) && !stdmath.IsNaN(v) }
	for _, y := range values {
		for _, x := range values {
			got := two64(Atan2[float64], y, x)
			want := stdmath.Atan2(y, x)
			if finite(y) && finite(x) {
				if relErr(got, want) > 2e-15 {
					t.Errorf("Atan2(%v, %v) = %v, want %v", y, x, got, want)
				}
				continue
			}
			if !sameFloat(got, want) {
				t.Errorf("Atan2(%v, %v) = %v, want %v", y, x, got, want)
			}
		}
	}
}

func TestAtan2Quadrants(t *testing.T) {
	vals := linspace(-5, 5, 41)
	for _, y := range vals {
		for _, x := range vals {
			got := two64(Atan2[float64], y, x)
			if want := stdmath.Atan2(y, x); relErr(got, want) > 2e-15 {
				t.Errorf("Atan2(%v, %v) = %v, want %v", y, x, got, want)
			}
		}
	}
}

func TestArcSinCosRoundTrip(t *testing.T) {
	xs := linspace(-1, 1, 401)
	s := eval64(func(v hwy.Vec[float64]) hwy.Vec[float64] { return Sin(Asin(v)) }, xs)
	c := eval64(func(v hwy.Vec[float64]) hwy.Vec[float64] { return Cos(Acos(v)) }, xs)
	for i, x := range xs {
		if stdmath.Abs(s[i]-x) > 3e-15 {
			t.Errorf("Sin(Asin(%v)) = %v", x, s[i])
		}
		if stdmath.Abs(c[i]-x) > 3e-15 {
			t.Errorf("Cos(Acos(%v)) = %v", x, c[i])
		}
	}
}

func TestArcSinCosOutsideDomain(t *testing.T) {
	for _, x := range []float64{1 + 1e-15, -1 - 1e-15, 1.5, -2, inf, -inf, nan} {
		if got := one64(Asin[float64], x); !stdmath.IsNaN(got) {
			t.Errorf("Asin(%v) = %v, want NaN", x, got)
		}
		if got := one64(Acos[float64], x); !stdmath.IsNaN(got) {
			t.Errorf("Acos(%v) = %v, want NaN", x, got)
		}
	}
	if got := one32(Asin[float32], 1.0000001); !stdmath.IsNaN(float64(got)) {
		t.Errorf("float32 Asin(1.0000001) = %v, want NaN", got)
	}
}

func TestArcSinCosEndpoints(t *testing.T) {
	tests := []struct {
		name string
		f    func(hwy.Vec[float64]) hwy.Vec[float64]
		x    float64
		want float64
	}{
		{"Asin(1)", Asin[float64], 1, stdmath.Pi / 2},
		{"Asin(-1)", Asin[float64], -1, -stdmath.Pi / 2},
		{"Asin(0)", Asin[float64], 0, 0},
		{"Asin(-0)", Asin[float64], negZ, negZ},
		{"Acos(1)", Acos[float64], 1, 0},
		{"Acos(-1)", Acos[float64], -1, stdmath.Pi},
		{"Acos(0)", Acos[float64], 0, stdmath.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := one64(tt.f, tt.x); !sameFloat(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
