// Package window describes the monitors of a machine and how a new window
// should be placed and sized on them.
//
// A MonitorList is a frozen snapshot built from one enumeration pass. Monitor
// values are read-only views into that snapshot. Position and Size are
// declarative requests that a windowing backend resolves at creation time.
package window

import "github.com/1broseidon/winplace/internal/geometry"

// MonitorInfo describes one physical monitor. It is immutable once constructed.
type MonitorInfo struct {
	physicalSize          geometry.PhysicalSize
	scaleFactor           float64
	name                  string
	hasName               bool
	refreshRateMillihertz uint32
	hasRefreshRate        bool
}

// NewMonitorInfo creates a MonitorInfo. Pass nil for an unknown name or
// refresh rate.
func NewMonitorInfo(physicalSize geometry.PhysicalSize, scaleFactor float64, name *string, refreshRateMillihertz *uint32) MonitorInfo {
	info := MonitorInfo{
		physicalSize: physicalSize,
		scaleFactor:  scaleFactor,
	}
	if name != nil {
		info.name = *name
		info.hasName = true
	}
	if refreshRateMillihertz != nil {
		info.refreshRateMillihertz = *refreshRateMillihertz
		info.hasRefreshRate = true
	}
	return info
}

// Size returns the size of the monitor in logical pixels.
//
// This ignores any scale factor applied to an individual window.
func (m MonitorInfo) Size() geometry.Size {
	return geometry.Size{
		Width:  float32(float64(m.physicalSize.Width) * m.scaleFactor),
		Height: float32(float64(m.physicalSize.Height) * m.scaleFactor),
	}
}

// PhysicalSize returns the size of the monitor in device pixels.
func (m MonitorInfo) PhysicalSize() geometry.PhysicalSize {
	return m.physicalSize
}

// ScaleFactor returns the physical-to-logical ratio of the monitor.
func (m MonitorInfo) ScaleFactor() float64 {
	return m.scaleFactor
}

// Name returns the monitor name, if the platform reported one.
func (m MonitorInfo) Name() (string, bool) {
	return m.name, m.hasName
}

// RefreshRateMillihertz returns the refresh rate in millihertz, if known.
func (m MonitorInfo) RefreshRateMillihertz() (uint32, bool) {
	return m.refreshRateMillihertz, m.hasRefreshRate
}
