//go:build linux

package platform

import (
	"errors"
	"testing"

	"github.com/1broseidon/winplace/internal/x11"
)

func TestScaleFromEnv(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 1},
		{"1", 1},
		{"2", 0.5},
		{" 4 ", 0.25},
		{"0", 1},
		{"-1", 1},
		{"abc", 1},
		{"10", 0.25},
	}
	for _, tt := range tests {
		if got := scaleFromEnv(tt.in); got != tt.want {
			t.Errorf("scaleFromEnv(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDisplayFromMonitor(t *testing.T) {
	d := displayFromMonitor(x11.Monitor{
		ID: 2, Name: "HDMI-1", X: 1920, Y: 0, Width: 1280, Height: 1024,
		RefreshMillihertz: 75025, Primary: true,
	}, 0.5)
	if d.Bounds.X != 1920 || d.Bounds.Width != 1280 {
		t.Fatalf("unexpected bounds %+v", d.Bounds)
	}
	if d.Usable != d.Bounds {
		t.Fatalf("expected usable to default to bounds")
	}
	if !d.Primary || d.RefreshRateMillihertz != 75025 || d.ScaleFactor != 0.5 {
		t.Fatalf("unexpected display %+v", d)
	}
}

func TestLinuxBackend_NilConnection(t *testing.T) {
	var b *LinuxBackend
	if _, err := b.Displays(); !errors.Is(err, ErrNoConnection) {
		t.Fatalf("expected ErrNoConnection, got %v", err)
	}
	if err := NewLinuxBackend(nil, 0).Resize(1, 10, 10); !errors.Is(err, ErrNoConnection) {
		t.Fatalf("expected ErrNoConnection, got %v", err)
	}
}

func TestLinuxBackend_ScaleOverrideWins(t *testing.T) {
	t.Setenv("GDK_SCALE", "2")
	b := NewLinuxBackend(nil, 1.25)
	if got := b.scaleFactor(); got != 1.25 {
		t.Fatalf("expected override 1.25, got %v", got)
	}
	b = NewLinuxBackend(nil, 0)
	if got := b.scaleFactor(); got != 0.5 {
		t.Fatalf("expected env-derived 0.5, got %v", got)
	}
}
