package window

import (
	"fmt"
	"iter"

	"github.com/1broseidon/winplace/internal/geometry"
)

// MonitorIndex identifies a monitor within the MonitorList that issued it.
//
// An index is only meaningful against that exact list. Indices are assigned in
// enumeration order, which is not guaranteed to be stable across enumerations,
// so an index taken from an older snapshot may point at a different monitor
// (or none) on the live display set.
type MonitorIndex int

func (i MonitorIndex) String() string {
	return fmt.Sprintf("monitor#%d", int(i))
}

// MonitorList is a snapshot of the monitors found by one enumeration pass.
//
// The list is built by sequential AddMonitor calls and must not be modified
// after it has been shared. Refreshing monitor data means building a new list.
// A built list may be read from any number of goroutines without locking.
type MonitorList struct {
	monitors   []MonitorInfo
	primary    MonitorIndex
	hasPrimary bool
}

// NewMonitorList returns an empty list with no primary monitor.
func NewMonitorList() *MonitorList {
	return &MonitorList{}
}

// AddMonitor appends info at the next index and returns that index. When
// isPrimary is set the new entry becomes the primary monitor, replacing any
// entry flagged earlier.
func (l *MonitorList) AddMonitor(isPrimary bool, info MonitorInfo) MonitorIndex {
	index := MonitorIndex(len(l.monitors))
	l.monitors = append(l.monitors, info)
	if isPrimary {
		l.primary = index
		l.hasPrimary = true
	}
	return index
}

// Len returns the number of monitors in the list.
func (l *MonitorList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.monitors)
}

// Get returns the monitor at index, or false if index is out of bounds.
func (l *MonitorList) Get(index MonitorIndex) (Monitor, bool) {
	if !l.inBounds(index) {
		return Monitor{}, false
	}
	return Monitor{list: l, index: index}, true
}

// All yields every monitor in insertion order. The sequence can be ranged over
// any number of times.
func (l *MonitorList) All() iter.Seq[Monitor] {
	return func(yield func(Monitor) bool) {
		for i := 0; i < l.Len(); i++ {
			if !yield(Monitor{list: l, index: MonitorIndex(i)}) {
				return
			}
		}
	}
}

// Primary returns the monitor flagged as primary, if any.
func (l *MonitorList) Primary() (Monitor, bool) {
	if l == nil || !l.hasPrimary {
		return Monitor{}, false
	}
	return l.Get(l.primary)
}

// PrimaryOrFirst returns the primary monitor, falling back to the first one.
// It reports false only when the list is empty.
func (l *MonitorList) PrimaryOrFirst() (Monitor, bool) {
	if m, ok := l.Primary(); ok {
		return m, true
	}
	return l.Get(0)
}

// Clone returns an independent copy of the list. Views taken from the copy
// can be handed to another goroutine without sharing the original.
func (l *MonitorList) Clone() *MonitorList {
	if l == nil {
		return NewMonitorList()
	}
	monitors := make([]MonitorInfo, len(l.monitors))
	copy(monitors, l.monitors)
	return &MonitorList{
		monitors:   monitors,
		primary:    l.primary,
		hasPrimary: l.hasPrimary,
	}
}

func (l *MonitorList) inBounds(index MonitorIndex) bool {
	return l != nil && index >= 0 && int(index) < len(l.monitors)
}

// Monitor is a read-only view of one entry in a MonitorList.
//
// Monitors are only obtained from a MonitorList (Get, All, Primary,
// PrimaryOrFirst); the zero value reports zero values from every accessor. A
// Monitor must not
// outlive the list it came from, and its accessors return copies so callers
// never alias list storage.
type Monitor struct {
	list  *MonitorList
	index MonitorIndex
}

func (m Monitor) info() MonitorInfo {
	if !m.list.inBounds(m.index) {
		return MonitorInfo{}
	}
	return m.list.monitors[m.index]
}

// Index returns the position of this monitor in its list.
func (m Monitor) Index() MonitorIndex {
	return m.index
}

// IsPrimary reports whether this monitor is the list's primary monitor.
func (m Monitor) IsPrimary() bool {
	return m.list != nil && m.list.hasPrimary && m.list.primary == m.index
}

// Info returns a copy of the underlying descriptor.
func (m Monitor) Info() MonitorInfo {
	return m.info()
}

// Size returns the monitor size in logical pixels.
func (m Monitor) Size() geometry.Size {
	return m.info().Size()
}

// PhysicalSize returns the monitor size in device pixels.
func (m Monitor) PhysicalSize() geometry.PhysicalSize {
	return m.info().PhysicalSize()
}

// ScaleFactor returns the monitor's physical-to-logical ratio.
func (m Monitor) ScaleFactor() float64 {
	return m.info().ScaleFactor()
}

// Name returns the monitor name, if known.
func (m Monitor) Name() (string, bool) {
	return m.info().Name()
}

// RefreshRateMillihertz returns the refresh rate in millihertz, if known.
func (m Monitor) RefreshRateMillihertz() (uint32, bool) {
	return m.info().RefreshRateMillihertz()
}

// DisplayName returns the monitor name or a generic label when unnamed.
func (m Monitor) DisplayName() string {
	if name, ok := m.Name(); ok && name != "" {
		return name
	}
	return "Unknown Monitor"
}
