package window

import (
	"fmt"

	"github.com/1broseidon/winplace/internal/geometry"
)

// PositionKind selects how a new window is placed.
type PositionKind int

const (
	// PositionDefault leaves placement to the platform.
	PositionDefault PositionKind = iota
	// PositionCentered centers the window on the default screen.
	PositionCentered
	// PositionSpecific places the window at explicit coordinates.
	PositionSpecific
)

func (k PositionKind) String() string {
	switch k {
	case PositionDefault:
		return "default"
	case PositionCentered:
		return "centered"
	case PositionSpecific:
		return "specific"
	default:
		return fmt.Sprintf("PositionKind(%d)", int(k))
	}
}

// PositionOnMonitor is an explicit window position, optionally on a given monitor.
type PositionOnMonitor struct {
	// MonitorIndex selects the monitor. When nil the window goes on the default screen.
	MonitorIndex *MonitorIndex
	// Position is the top-left corner in logical pixels, relative to the
	// monitor's origin.
	//
	// On some platforms decorations add invisible padding that is included in
	// the position, so (0, 0) may not be flush with the screen edge.
	Position geometry.Point
}

// ToPosition wraps p as a specific window position.
func (p PositionOnMonitor) ToPosition() Position {
	return SpecificPosition(p)
}

// Equal reports whether p and o request the same monitor and coordinates.
func (p PositionOnMonitor) Equal(o PositionOnMonitor) bool {
	if p.Position != o.Position {
		return false
	}
	if p.MonitorIndex == nil || o.MonitorIndex == nil {
		return p.MonitorIndex == nil && o.MonitorIndex == nil
	}
	return *p.MonitorIndex == *o.MonitorIndex
}

// Position details how a new window should be positioned. The zero value is
// the platform default.
type Position struct {
	kind     PositionKind
	specific PositionOnMonitor
}

// DefaultPosition returns the platform-specific default position.
func DefaultPosition() Position {
	return Position{kind: PositionDefault}
}

// CenteredPosition centers the window on the default screen.
func CenteredPosition() Position {
	return Position{kind: PositionCentered}
}

// SpecificPosition places the window as described by p.
func SpecificPosition(p PositionOnMonitor) Position {
	return Position{kind: PositionSpecific, specific: p}
}

// PositionAt places the window at point on the default screen.
func PositionAt(point geometry.Point) Position {
	return SpecificPosition(PositionOnMonitor{Position: point})
}

// OnMonitor places the window at point relative to the given monitor.
func OnMonitor(index MonitorIndex, point geometry.Point) Position {
	return SpecificPosition(PositionOnMonitor{MonitorIndex: &index, Position: point})
}

// Kind returns which variant p holds.
func (p Position) Kind() PositionKind {
	return p.kind
}

// Specific returns the explicit position when Kind is PositionSpecific.
func (p Position) Specific() (PositionOnMonitor, bool) {
	if p.kind != PositionSpecific {
		return PositionOnMonitor{}, false
	}
	return p.specific, true
}

// Equal reports whether p and o describe the same placement.
func (p Position) Equal(o Position) bool {
	if p.kind != o.kind {
		return false
	}
	if p.kind != PositionSpecific {
		return true
	}
	return p.specific.Equal(o.specific)
}

func (p Position) String() string {
	if p.kind != PositionSpecific {
		return p.kind.String()
	}
	if p.specific.MonitorIndex == nil {
		return fmt.Sprintf("at %s", p.specific.Position)
	}
	return fmt.Sprintf("at %s on %s", p.specific.Position, *p.specific.MonitorIndex)
}
