package config

import (
	"fmt"

	"github.com/1broseidon/winplace/internal/window"
)

// Overrides are per-request changes layered over the configured window
// settings. Empty fields keep the configured value.
type Overrides struct {
	Preset   string
	Size     string
	Position string
	// Monitor retargets the window to a monitor index. Specific positions
	// keep their offset; default and centered positions center on it.
	Monitor *int
}

// ResolveSettings builds window settings from the `window` section, then the
// named preset, then the explicit overrides. Invalid overrides are reported
// as *ValidationError keyed by the override name.
func (c *Config) ResolveSettings(o Overrides) (window.Settings, error) {
	settings := c.Settings()
	if o.Preset != "" {
		p, ok := c.Preset(o.Preset)
		if !ok {
			return window.Settings{}, &ValidationError{
				Path: "preset",
				Err:  fmt.Errorf("unknown preset %q (available: %v)", o.Preset, c.PresetNames()),
			}
		}
		settings = p.Settings()
	}
	if o.Size != "" {
		size, err := ParseSize(o.Size)
		if err != nil {
			return window.Settings{}, &ValidationError{Path: "size", Err: err}
		}
		settings.Size = size
	}
	if o.Position != "" {
		pos, err := ParsePosition(o.Position)
		if err != nil {
			return window.Settings{}, &ValidationError{Path: "position", Err: err}
		}
		settings.Position = pos
	}
	if o.Monitor != nil {
		if *o.Monitor < 0 {
			return window.Settings{}, &ValidationError{Path: "monitor", Err: fmt.Errorf("monitor must be >= 0, got %d", *o.Monitor)}
		}
		index := window.MonitorIndex(*o.Monitor)
		settings.Monitor = &index
		if spec, ok := settings.Position.Specific(); ok {
			settings.Position = window.OnMonitor(index, spec.Position)
		}
	}
	return settings, nil
}
