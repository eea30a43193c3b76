package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3}
	v := Load(data)

	if v.NumLanes() != MaxLanes[float32]() {
		t.Fatalf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[float32]())
	}
	for i := 0; i < v.NumLanes(); i++ {
		want := float32(0)
		if i < len(data) {
			want = data[i]
		}
		if v.data[i] != want {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], want)
		}
	}
}

func TestSet(t *testing.T) {
	v := Set[float64](42.0)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestDataIsCopy(t *testing.T) {
	v := Set[float32](1)
	d := v.Data()
	d[0] = 7
	if v.data[0] != 1 {
		t.Error("Data: mutating the returned slice changed the vector")
	}
}

func TestArithmetic(t *testing.T) {
	a := Set[float64](10)
	b := Set[float64](4)

	tests := []struct {
		name string
		got  Vec[float64]
		want float64
	}{
		{"Add", Add(a, b), 14},
		{"Sub", Sub(a, b), 6},
		{"Mul", Mul(a, b), 40},
		{"Div", Div(a, b), 2.5},
		{"Neg", Neg(a), -10},
		{"Abs", Abs(Neg(b)), 4},
		{"Min", Min(a, b), 4},
		{"Max", Max(a, b), 10},
		{"Sqrt", Sqrt(b), 2},
		{"FMA", FMA(a, b, Set[float64](1)), 41},
		{"NegMulAdd", NegMulAdd(a, b, Set[float64](1)), -39},
		{"CopySign", CopySign(b, Set[float64](-1)), -4},
		{"Clamp", Clamp(a, Set[float64](0), b), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.NumLanes() != MaxLanes[float64]() {
				t.Fatalf("got %d lanes, want %d", tt.got.NumLanes(), MaxLanes[float64]())
			}
			for i, x := range tt.got.data {
				if x != tt.want {
					t.Errorf("lane %d: got %v, want %v", i, x, tt.want)
				}
			}
		})
	}
}

// lane reports whether lane i of m is active.
func lane[T Lanes](m Mask[T], i int) bool {
	return i >= 0 && i < len(m.bits) && m.bits[i]
}

func allTrue[T Lanes](m Mask[T]) bool {
	return !MaskNot(m).AnyTrue()
}

func TestOperandsUnchanged(t *testing.T) {
	a := Iota[float32]()
	b := Set[float32](2)
	_ = Add(a, b)
	_ = FMA(a, b, b)
	for i, x := range a.data {
		if x != float32(i) {
			t.Errorf("lane %d modified: got %v", i, x)
		}
	}
}

func TestDivSpecialCases(t *testing.T) {
	r := Div(Load([]float64{1, -1, 0}), Zero[float64]())
	if !math.IsInf(r.data[0], 1) || !math.IsInf(r.data[1], -1) || !math.IsNaN(r.data[2]) {
		t.Errorf("Div by zero: got %v", r.data[:3])
	}
}

func TestReduceSum(t *testing.T) {
	v := Iota[float32]()
	n := v.NumLanes()
	if got, want := ReduceSum(v), float32(n*(n-1)/2); got != want {
		t.Errorf("ReduceSum: got %v, want %v", got, want)
	}
	if got := ReduceSum(Load([]float64{1.5, -0.5})); got != 1 {
		t.Errorf("ReduceSum of a zero-filled load: got %v, want 1", got)
	}
}

func TestComparisons(t *testing.T) {
	a := Load([]float64{1, 2})
	b := Load([]float64{2, 2})

	tests := []struct {
		name         string
		mask         Mask[float64]
		lane0, lane1 bool
	}{
		{"Equal", Equal(a, b), false, true},
		{"NotEqual", NotEqual(a, b), true, false},
		{"LessThan", LessThan(a, b), true, false},
		{"LessEqual", LessEqual(a, b), true, true},
		{"GreaterThan", GreaterThan(a, b), false, false},
		{"GreaterEqual", GreaterEqual(a, b), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if lane(tt.mask, 0) != tt.lane0 || lane(tt.mask, 1) != tt.lane1 {
				t.Errorf("got [%v %v], want [%v %v]", lane(tt.mask, 0), lane(tt.mask, 1), tt.lane0, tt.lane1)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	v := Load([]float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1)), 1})

	nan := IsNaN(v)
	if !lane(nan, 0) || lane(nan, 1) || lane(nan, 3) {
		t.Error("IsNaN: wrong lanes")
	}
	if pos := IsInf(v, 1); !lane(pos, 1) || lane(pos, 2) {
		t.Error("IsInf(+1): wrong lanes")
	}
	if neg := IsInf(v, -1); lane(neg, 1) || !lane(neg, 2) {
		t.Error("IsInf(-1): wrong lanes")
	}
	fin := IsFinite(v)
	if lane(fin, 0) || lane(fin, 1) || lane(fin, 2) || !lane(fin, 3) {
		t.Error("IsFinite: wrong lanes")
	}
}

func TestIfThenElse(t *testing.T) {
	a := Set[float32](1)
	b := Set[float32](2)
	mask := LessThan(Iota[float32](), Set[float32](2))

	r := IfThenElse(mask, a, b)
	m := Merge(a, b, mask)
	z := IfThenElseZero(mask, a)
	zc := IfThenZeroElse(mask, b)
	for i := range r.data {
		want, wantZ, wantZc := float32(2), float32(0), float32(2)
		if i < 2 {
			want, wantZ, wantZc = 1, 1, 0
		}
		if r.data[i] != want || m.data[i] != want {
			t.Errorf("IfThenElse lane %d: got %v/%v, want %v", i, r.data[i], m.data[i], want)
		}
		if z.data[i] != wantZ || zc.data[i] != wantZc {
			t.Errorf("zero selects lane %d: got %v/%v", i, z.data[i], zc.data[i])
		}
	}
}

func TestMaskCombinators(t *testing.T) {
	i := Iota[float64]()
	lo := LessThan(i, Set[float64](1))
	hi := GreaterEqual(i, Set[float64](1))

	if MaskAnd(lo, hi).AnyTrue() {
		t.Error("MaskAnd: disjoint masks overlap")
	}
	if !allTrue(MaskOr(lo, hi)) {
		t.Error("MaskOr: union should cover all lanes")
	}
	if got := MaskAndNot(lo, hi).CountTrue(); got != i.NumLanes()-1 {
		t.Errorf("MaskAndNot: got %d lanes", got)
	}
	if !lane(MaskNot(lo), 1) || lane(MaskNot(lo), 0) {
		t.Error("MaskNot: wrong lanes")
	}
}
