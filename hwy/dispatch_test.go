package hwy

import "testing"

func TestDispatch(t *testing.T) {
	level := CurrentLevel()
	width := CurrentWidth()
	name := CurrentName()

	t.Logf("Dispatch level: %v (%s), width: %d bytes", level, name, width)

	if width <= 0 {
		t.Error("CurrentWidth should be positive")
	}
	if name == "" || name == "unknown" {
		t.Errorf("CurrentName = %q", name)
	}
}

func TestMaxLanes(t *testing.T) {
	maxF32 := MaxLanes[float32]()
	maxF64 := MaxLanes[float64]()

	t.Logf("MaxLanes: float32=%d, float64=%d", maxF32, maxF64)

	if maxF64 <= 0 {
		t.Error("MaxLanes[float64] should be positive")
	}
	// float64 uses twice as much space, so should have half the lanes
	if maxF64*2 != maxF32 {
		t.Errorf("MaxLanes: expected float64 lanes (%d) to be half of float32 lanes (%d)", maxF64, maxF32)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestWidthEnv(t *testing.T) {
	tests := []struct {
		val  string
		want int
	}{
		{"", 0},
		{"16", 16},
		{"32", 32},
		{"64", 64},
		{"24", 0},
		{"wide", 0},
	}
	for _, tt := range tests {
		t.Setenv("HWY_WIDTH", tt.val)
		if got := WidthEnv(); got != tt.want {
			t.Errorf("HWY_WIDTH=%q: got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestSetLevelOverrides(t *testing.T) {
	level, width := currentLevel, currentWidth
	defer func() { currentLevel, currentWidth = level, width }()

	t.Setenv("HWY_NO_SIMD", "1")
	t.Setenv("HWY_WIDTH", "")
	setLevel(DispatchAVX512, 64)
	if CurrentLevel() != DispatchScalar || CurrentWidth() != 16 {
		t.Errorf("HWY_NO_SIMD: got %v/%d", CurrentLevel(), CurrentWidth())
	}

	t.Setenv("HWY_NO_SIMD", "")
	t.Setenv("HWY_WIDTH", "32")
	setLevel(DispatchSSE2, 16)
	if CurrentLevel() != DispatchSSE2 || MaxLanes[float64]() != 4 {
		t.Errorf("HWY_WIDTH=32: got %v with %d float64 lanes", CurrentLevel(), MaxLanes[float64]())
	}
}

func TestDispatchLevelString(t *testing.T) {
	if DispatchAVX2.String() != "avx2" || DispatchLevel(99).String() != "unknown" {
		t.Error("DispatchLevel.String mismatch")
	}
}
