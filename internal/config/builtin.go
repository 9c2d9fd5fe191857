package config

import (
	"github.com/1broseidon/winplace/internal/geometry"
	"github.com/1broseidon/winplace/internal/window"
)

// BuiltinPresets returns the built-in placement presets.
//
// These are always available without defining them in YAML. A user preset with
// the same name replaces the built-in one.
func BuiltinPresets() map[string]WindowConfig {
	return map[string]WindowConfig{
		"default": {
			Size:     NewSizeSpec(window.DefaultSize()),
			Position: NewPositionSpec(window.DefaultPosition()),
		},
		"centered": {
			Size:     NewSizeSpec(window.DefaultSize()),
			Position: NewPositionSpec(window.CenteredPosition()),
		},
		"large": {
			Size:     NewSizeSpec(window.FromScreenSize(window.ScreenFraction{Width: 0.8, Height: 0.8})),
			Position: NewPositionSpec(window.CenteredPosition()),
		},
		"left-half": {
			Size:     NewSizeSpec(window.FromScreenSize(window.ScreenFraction{Width: 0.5, Height: 1})),
			Position: NewPositionSpec(window.PositionAt(geometry.Point{})),
		},
		"small": {
			Size:     NewSizeSpec(window.Fixed(geometry.NewSize(640, 480))),
			Position: NewPositionSpec(window.CenteredPosition()),
		},
	}
}
