package geometry

import (
	"math"
	"testing"
)

func TestSizeScale_KeepsFractions(t *testing.T) {
	got := NewSize(1000, 800).Scale(1.5)
	if got.Width != 1500 || got.Height != 1200 {
		t.Fatalf("expected 1500×1200, got %v", got)
	}
}

func TestToPhysical(t *testing.T) {
	tests := []struct {
		logical float32
		scale   float64
		want    int
	}{
		{100, 1, 100},
		{100, 0.5, 200},
		{150, 1.5, 100},
		{99.6, 1, 100},
		{100, 0, 100},
		{100, -2, 100},
		{float32(math.NaN()), 1, 0},
		{100, math.NaN(), 100},
		{float32(math.Inf(1)), 1, math.MaxInt32},
		{float32(math.Inf(-1)), 1, math.MinInt32},
		{1e30, 1, math.MaxInt32},
	}
	for _, tt := range tests {
		if got := ToPhysical(tt.logical, tt.scale); got != tt.want {
			t.Errorf("ToPhysical(%v, %v) = %d, want %d", tt.logical, tt.scale, got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		v    float32
		want bool
	}{
		{0, true},
		{-1e30, true},
		{float32(math.NaN()), false},
		{float32(math.Inf(1)), false},
		{float32(math.Inf(-1)), false},
	}
	for _, tt := range tests {
		if got := IsFinite(tt.v); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRectContainsAndCenter(t *testing.T) {
	r := Rect{X: 1920, Y: 0, Width: 2560, Height: 1440}
	cx, cy := r.Center()
	if cx != 3200 || cy != 720 {
		t.Fatalf("expected center (3200,720), got (%d,%d)", cx, cy)
	}
	if !r.Contains(cx, cy) {
		t.Fatalf("expected rect to contain its center")
	}
	if r.Contains(1919, 10) {
		t.Fatalf("expected x=1919 to be outside")
	}
	if r.Contains(1920+2560, 10) {
		t.Fatalf("expected right edge to be exclusive")
	}
}

func TestSizeMinMax(t *testing.T) {
	a := NewSize(100, 300)
	b := NewSize(200, 150)
	if got := a.Max(b); got != NewSize(200, 300) {
		t.Fatalf("Max = %v", got)
	}
	if got := a.Min(b); got != NewSize(100, 150) {
		t.Fatalf("Min = %v", got)
	}
}
