package window

import "github.com/1broseidon/winplace/internal/geometry"

// Default window dimensions in logical pixels.
const (
	DefaultWindowWidth  float32 = 1024
	DefaultWindowHeight float32 = 768
)

// Bounds accepted for a monitor scale factor. Values reported by a platform
// or set in configuration are clamped into this range.
const (
	MinScaleFactor float64 = 0.25
	MaxScaleFactor float64 = 8
)

// MaxWindowExtent bounds logical window sizes and offsets. It matches the
// largest coordinate the X11 protocol can carry.
const MaxWindowExtent float32 = 32767

// DefaultWindowSize returns the logical size used by DefaultSize.
func DefaultWindowSize() geometry.Size {
	return geometry.NewSize(DefaultWindowWidth, DefaultWindowHeight)
}

// ClampScaleFactor limits f to [MinScaleFactor, MaxScaleFactor]. Zero, negative
// and NaN values collapse to 1.
func ClampScaleFactor(f float64) float64 {
	if !(f > 0) {
		return 1
	}
	if f < MinScaleFactor {
		return MinScaleFactor
	}
	if f > MaxScaleFactor {
		return MaxScaleFactor
	}
	return f
}
