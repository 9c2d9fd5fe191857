package platform

import (
	"errors"

	"github.com/1broseidon/winplace/internal/geometry"
	"github.com/1broseidon/winplace/internal/window"
)

// ErrNoConnection is returned when a backend is used without a live display connection.
var ErrNoConnection = errors.New("display connection is not available")

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Display describes a physical display as reported by one enumeration.
type Display struct {
	ID   int
	Name string
	// Bounds and Usable are in physical screen coordinates.
	Bounds geometry.Rect
	Usable geometry.Rect
	// ScaleFactor is the physical-to-logical ratio.
	ScaleFactor float64
	// RefreshRateMillihertz is 0 when unknown.
	RefreshRateMillihertz uint32
	Primary               bool
}

// Info converts d into a monitor descriptor. The display origin is not carried
// over; it stays with the backend's live display set.
func (d Display) Info() window.MonitorInfo {
	var name *string
	if d.Name != "" {
		n := d.Name
		name = &n
	}
	var refresh *uint32
	if d.RefreshRateMillihertz > 0 {
		r := d.RefreshRateMillihertz
		refresh = &r
	}
	return window.NewMonitorInfo(
		geometry.PhysicalSize{Width: uint32(max(d.Bounds.Width, 0)), Height: uint32(max(d.Bounds.Height, 0))},
		d.ScaleFactor,
		name,
		refresh,
	)
}

// Snapshot folds displays into a MonitorList. Index assignment follows the
// order of displays, so MonitorIndex(i) refers to displays[i].
func Snapshot(displays []Display) *window.MonitorList {
	list := window.NewMonitorList()
	for _, d := range displays {
		list.AddMonitor(d.Primary, d.Info())
	}
	return list
}

// Backend abstracts window-system operations across platforms.
type Backend interface {
	// Displays enumerates the live display set. Order is stable for a given
	// topology but may change when monitors are added or removed.
	Displays() ([]Display, error)
	ActiveWindow() (WindowID, error)
	FindWindow(title string) (WindowID, error)
	MoveResize(windowID WindowID, bounds geometry.Rect) error
	Resize(windowID WindowID, width, height int) error
}
