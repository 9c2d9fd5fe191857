package window

import (
	"fmt"

	"github.com/1broseidon/winplace/internal/geometry"
)

// ScreenSizer computes a window size from the logical size of the monitor the
// window will open on.
//
// Backends may call SizeFor lazily, more than once, and from any goroutine.
// Implementations must be pure: no side effects and no dependence on mutable
// state outside the receiver.
type ScreenSizer interface {
	SizeFor(monitor geometry.Size) geometry.Size
}

// SizeFunc adapts an ordinary function to a ScreenSizer. The function must not
// capture mutable state.
type SizeFunc func(monitor geometry.Size) geometry.Size

// SizeFor calls f(monitor).
func (f SizeFunc) SizeFor(monitor geometry.Size) geometry.Size {
	return f(monitor)
}

// ScreenFraction sizes a window as a fraction of the monitor, e.g.
// ScreenFraction{Width: 0.5, Height: 0.6}.
type ScreenFraction struct {
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// SizeFor implements ScreenSizer.
func (f ScreenFraction) SizeFor(monitor geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  monitor.Width * f.Width,
		Height: monitor.Height * f.Height,
	}
}

// SizeKind selects how a new window is sized.
type SizeKind int

const (
	// SizeFixed uses an exact logical size.
	SizeFixed SizeKind = iota
	// SizeFromScreen derives the size from the target monitor.
	SizeFromScreen
)

func (k SizeKind) String() string {
	switch k {
	case SizeFixed:
		return "fixed"
	case SizeFromScreen:
		return "from-screen"
	default:
		return fmt.Sprintf("SizeKind(%d)", int(k))
	}
}

// Size is the size of a window upon creation.
//
// The zero Size is the default size, like the zero Position is the default
// position.
type Size struct {
	kind  SizeKind
	fixed geometry.Size
	// explicit is set by Fixed; without it a fixed size means the default.
	explicit bool
	sizer    ScreenSizer
}

// Fixed requests an exact logical window size.
func Fixed(size geometry.Size) Size {
	return Size{kind: SizeFixed, fixed: size, explicit: true}
}

// FromScreenSize requests a size computed from the target monitor's logical
// size when the window is created. A nil sizer falls back to the default size.
func FromScreenSize(sizer ScreenSizer) Size {
	if sizer == nil {
		return DefaultSize()
	}
	return Size{kind: SizeFromScreen, sizer: sizer}
}

// DefaultSize returns Fixed(DefaultWindowSize()).
func DefaultSize() Size {
	return Fixed(DefaultWindowSize())
}

// Kind returns which variant s holds. The zero Size reports SizeFixed.
func (s Size) Kind() SizeKind {
	return s.kind
}

// Fixed returns the exact size when Kind is SizeFixed.
func (s Size) Fixed() (geometry.Size, bool) {
	if s.kind != SizeFixed {
		return geometry.Size{}, false
	}
	return s.fixedSize(), true
}

func (s Size) fixedSize() geometry.Size {
	if !s.explicit {
		return DefaultWindowSize()
	}
	return s.fixed
}

// Sizer returns the strategy when Kind is SizeFromScreen.
func (s Size) Sizer() (ScreenSizer, bool) {
	if s.kind != SizeFromScreen {
		return nil, false
	}
	return s.sizer, true
}

// Resolve evaluates s against the logical size of the target monitor.
func (s Size) Resolve(monitor geometry.Size) geometry.Size {
	if s.kind == SizeFromScreen && s.sizer != nil {
		return s.sizer.SizeFor(monitor)
	}
	return s.fixedSize()
}

func (s Size) String() string {
	if s.kind == SizeFromScreen {
		if f, ok := s.sizer.(ScreenFraction); ok {
			return fmt.Sprintf("%g%%×%g%% of screen", f.Width*100, f.Height*100)
		}
		return "from screen"
	}
	return s.fixedSize().String()
}
