package window

import (
	"testing"

	"github.com/1broseidon/winplace/internal/geometry"
)

func strPtr(s string) *string { return &s }
func u32Ptr(v uint32) *uint32 { return &v }

func TestMonitorInfoSize_AppliesScaleFactor(t *testing.T) {
	info := NewMonitorInfo(geometry.PhysicalSize{Width: 1000, Height: 800}, 1.5, nil, nil)
	got := info.Size()
	if got.Width != 1500.0 || got.Height != 1200.0 {
		t.Fatalf("expected 1500×1200, got %v", got)
	}
}

func TestMonitorInfoSize_NoIntegerTruncation(t *testing.T) {
	info := NewMonitorInfo(geometry.PhysicalSize{Width: 3, Height: 5}, 0.5, nil, nil)
	got := info.Size()
	if got.Width != 1.5 || got.Height != 2.5 {
		t.Fatalf("expected 1.5×2.5, got %v", got)
	}
}

func TestMonitorInfo_OptionalFields(t *testing.T) {
	bare := NewMonitorInfo(geometry.PhysicalSize{Width: 1, Height: 1}, 1, nil, nil)
	if _, ok := bare.Name(); ok {
		t.Fatalf("expected no name")
	}
	if _, ok := bare.RefreshRateMillihertz(); ok {
		t.Fatalf("expected no refresh rate")
	}

	full := NewMonitorInfo(geometry.PhysicalSize{Width: 2560, Height: 1440}, 1, strPtr("DP-1"), u32Ptr(144000))
	if name, ok := full.Name(); !ok || name != "DP-1" {
		t.Fatalf("expected name DP-1, got %q (%v)", name, ok)
	}
	if rate, ok := full.RefreshRateMillihertz(); !ok || rate != 144000 {
		t.Fatalf("expected 144000 mHz, got %d (%v)", rate, ok)
	}
	if full.PhysicalSize() != (geometry.PhysicalSize{Width: 2560, Height: 1440}) {
		t.Fatalf("unexpected physical size %v", full.PhysicalSize())
	}
}

func TestNewMonitorInfo_CopiesName(t *testing.T) {
	name := "HDMI-1"
	info := NewMonitorInfo(geometry.PhysicalSize{Width: 1, Height: 1}, 1, &name, nil)
	name = "changed"
	if got, _ := info.Name(); got != "HDMI-1" {
		t.Fatalf("expected descriptor to keep HDMI-1, got %q", got)
	}
}

func TestClampScaleFactor(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{1.25, 1.25},
		{0, 1},
		{-3, 1},
		{0.1, MinScaleFactor},
		{20, MaxScaleFactor},
	}
	for _, tt := range tests {
		if got := ClampScaleFactor(tt.in); got != tt.want {
			t.Errorf("ClampScaleFactor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
