// Package geometry holds the small value types shared by the monitor model,
// the placement resolver and the platform backends.
//
// Logical quantities (Point, Size) are float32 and scale-independent.
// Physical quantities (PhysicalSize, Rect) are device pixels.
package geometry

import (
	"fmt"
	"math"
)

// Point is a position in logical pixels.
type Point struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// Add offsets p by dx, dy.
func (p Point) Add(dx, dy float32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Size is a width and height in logical pixels.
type Size struct {
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// NewSize returns a logical size.
func NewSize(width, height float32) Size {
	return Size{Width: width, Height: height}
}

// Scale multiplies both dimensions by factor.
func (s Size) Scale(factor float64) Size {
	return Size{
		Width:  float32(float64(s.Width) * factor),
		Height: float32(float64(s.Height) * factor),
	}
}

// Max returns the component-wise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// Min returns the component-wise minimum of s and o.
func (s Size) Min(o Size) Size {
	return Size{Width: min(s.Width, o.Width), Height: min(s.Height, o.Height)}
}

func (s Size) String() string {
	return fmt.Sprintf("%g×%g", s.Width, s.Height)
}

// PhysicalSize is a width and height in device pixels as reported by the platform.
type PhysicalSize struct {
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

func (s PhysicalSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect describes a rectangular region in physical screen coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the center of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ToPhysical converts a logical length back to whole device pixels given a
// physical-to-logical scale factor. A non-positive or NaN factor is treated as
// 1. NaN lengths convert to 0 and the result saturates at the int32 range.
func ToPhysical(logical float32, scaleFactor float64) int {
	if !(scaleFactor > 0) {
		scaleFactor = 1
	}
	v := math.Round(float64(logical) / scaleFactor)
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
