package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/hwymath/hwy"
)

// eval64 applies f to xs one vector at a time.
func eval64(f func(hwy.Vec[float64]) hwy.Vec[float64], xs []float64) []float64 {
	out := make([]float64, len(xs))
	lanes := hwy.MaxLanes[float64]()
	for i := 0; i < len(xs); i += lanes {
		hwy.Store(f(hwy.Load(xs[i:])), out[i:])
	}
	return out
}

// eval32 applies f to xs one vector at a time.
func eval32(f func(hwy.Vec[float32]) hwy.Vec[float32], xs []float32) []float32 {
	out := make([]float32, len(xs))
	lanes := hwy.MaxLanes[float32]()
	for i := 0; i < len(xs); i += lanes {
		hwy.Store(f(hwy.Load(xs[i:])), out[i:])
	}
	return out
}

// one64 evaluates f at a single point.
func one64(f func(hwy.Vec[float64]) hwy.Vec[float64], x float64) float64 {
	return f(hwy.Set(x)).Data()[0]
}

// one32 evaluates f at a single point.
func one32(f func(hwy.Vec[float32]) hwy.Vec[float32], x float32) float32 {
	return f(hwy.Set(x)).Data()[0]
}

// linspace returns n evenly spaced points covering [lo, hi].
func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return xs
}

// to32 rounds every point to float32.
func to32(xs []float64) []float32 {
	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = float32(x)
	}
	return out
}

// relErr is |got-want| relative to |want|, or absolute below 1.
func relErr(got, want float64) float64 {
	if got == want {
		return 0
	}
	return stdmath.Abs(got-want) / stdmath.Max(1, stdmath.Abs(want))
}

// ratioErr is |got-want| relative to |want|.
func ratioErr(got, want float64) float64 {
	if got == want {
		return 0
	}
	return stdmath.Abs(got-want) / stdmath.Abs(want)
}

// sweepCase compares a function against its stdlib reference over a range.
type sweepCase struct {
	name   string
	f64    func(hwy.Vec[float64]) hwy.Vec[float64]
	f32    func(hwy.Vec[float32]) hwy.Vec[float32]
	ref    func(float64) float64
	lo, hi float64
	// tol64 and tol32 bound errFn at each precision.
	tol64, tol32 float64
	errFn        func(got, want float64) float64
}

func runSweeps(t *testing.T, cases []sweepCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			errFn := tt.errFn
			if errFn == nil {
				errFn = relErr
			}
			xs := linspace(tt.lo, tt.hi, 1001)
			got := eval64(tt.f64, xs)
			for i, x := range xs {
				if e := errFn(got[i], tt.ref(x)); e > tt.tol64 {
					t.Errorf("float64 %s(%v) = %v, want %v (err %.3g)", tt.name, x, got[i], tt.ref(x), e)
				}
			}
			x32 := to32(xs)
			got32 := eval32(tt.f32, x32)
			for i, x := range x32 {
				want := tt.ref(float64(x))
				if e := errFn(float64(got32[i]), want); e > tt.tol32 {
					t.Errorf("float32 %s(%v) = %v, want %v (err %.3g)", tt.name, x, got32[i], want, e)
				}
			}
		})
	}
}

// sameFloat reports whether got matches want, treating NaNs as equal and
// distinguishing signed zeros.
func sameFloat(got, want float64) bool {
	if stdmath.IsNaN(want) {
		return stdmath.IsNaN(got)
	}
	if want == 0 {
		return got == 0 && stdmath.Signbit(got) == stdmath.Signbit(want)
	}
	return got == want
}

var (
	inf  = stdmath.Inf(1)
	nan  = stdmath.NaN()
	negZ = stdmath.Copysign(0, -1)
)
