package window

import "github.com/1broseidon/winplace/internal/geometry"

// Settings is the window-creation payload handed to a windowing backend.
type Settings struct {
	Size     Size
	Position Position
	// Monitor selects the target monitor when Position does not name one.
	// With a default position the window is centered on it, since the window
	// manager would otherwise pick the monitor.
	Monitor *MonitorIndex
	// MinSize and MaxSize bound the resolved logical size when set.
	MinSize     *geometry.Size
	MaxSize     *geometry.Size
	Resizable   bool
	Decorations bool
}

// DefaultSettings returns a resizable, decorated window of the default size at
// the platform default position.
func DefaultSettings() Settings {
	return Settings{
		Size:        DefaultSize(),
		Position:    DefaultPosition(),
		Resizable:   true,
		Decorations: true,
	}
}

// ClampSize bounds size by MinSize and MaxSize. MaxSize is applied last, so it
// wins when the two conflict.
func (s Settings) ClampSize(size geometry.Size) geometry.Size {
	if s.MinSize != nil {
		size = size.Max(*s.MinSize)
	}
	if s.MaxSize != nil {
		size = size.Min(*s.MaxSize)
	}
	return size
}

// ResolveSize evaluates the size request for a monitor of the given logical
// size and applies the min/max bounds.
func (s Settings) ResolveSize(monitor geometry.Size) geometry.Size {
	return s.ClampSize(s.Size.Resolve(monitor))
}
