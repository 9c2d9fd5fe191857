package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/1broseidon/winplace/internal/geometry"
	"github.com/1broseidon/winplace/internal/window"
)

// ValidationError reports an invalid config value by its YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// WindowConfig describes how a window should be sized and placed.
type WindowConfig struct {
	Size        SizeSpec       `yaml:"size"`
	Position    PositionSpec   `yaml:"position"`
	MinSize     *geometry.Size `yaml:"min_size,omitempty"`
	MaxSize     *geometry.Size `yaml:"max_size,omitempty"`
	Resizable   *bool          `yaml:"resizable,omitempty"`
	Decorations *bool          `yaml:"decorations,omitempty"`
}

// Settings converts the config into a window-creation payload.
func (w WindowConfig) Settings() window.Settings {
	s := window.DefaultSettings()
	s.Size = w.Size.Value()
	s.Position = w.Position.Value()
	if w.MinSize != nil {
		minSize := *w.MinSize
		s.MinSize = &minSize
	}
	if w.MaxSize != nil {
		maxSize := *w.MaxSize
		s.MaxSize = &maxSize
	}
	if w.Resizable != nil {
		s.Resizable = *w.Resizable
	}
	if w.Decorations != nil {
		s.Decorations = *w.Decorations
	}
	return s
}

func (w WindowConfig) validate(path string) error {
	if err := w.Size.validate(); err != nil {
		return &ValidationError{Path: path + ".size", Err: err}
	}
	if err := w.Position.validate(); err != nil {
		return &ValidationError{Path: path + ".position", Err: err}
	}
	if w.MinSize != nil && (!inRange(w.MinSize.Width, 0, window.MaxWindowExtent) || !inRange(w.MinSize.Height, 0, window.MaxWindowExtent)) {
		return &ValidationError{Path: path + ".min_size", Err: fmt.Errorf("min_size must be in [0, %g]", window.MaxWindowExtent)}
	}
	if w.MaxSize != nil && (!inRange(w.MaxSize.Width, 0, window.MaxWindowExtent) || !inRange(w.MaxSize.Height, 0, window.MaxWindowExtent) ||
		w.MaxSize.Width == 0 || w.MaxSize.Height == 0) {
		return &ValidationError{Path: path + ".max_size", Err: fmt.Errorf("max_size must be in (0, %g]", window.MaxWindowExtent)}
	}
	if w.MinSize != nil && w.MaxSize != nil &&
		(w.MinSize.Width > w.MaxSize.Width || w.MinSize.Height > w.MaxSize.Height) {
		return &ValidationError{Path: path, Err: fmt.Errorf("min_size must not exceed max_size")}
	}
	return nil
}

// Config holds the application configuration.
type Config struct {
	// Display is the X display to connect to; empty uses $DISPLAY.
	Display string `yaml:"display,omitempty"`
	// ScaleFactor overrides the physical-to-logical ratio of every monitor.
	// 0 derives it from the environment.
	ScaleFactor float64                 `yaml:"scale_factor,omitempty"`
	LogLevel    string                  `yaml:"log_level"`
	Window      WindowConfig            `yaml:"window"`
	Presets     map[string]WindowConfig `yaml:"presets,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Size:     NewSizeSpec(window.DefaultSize()),
			Position: NewPositionSpec(window.DefaultPosition()),
		},
		Presets: map[string]WindowConfig{},
	}
}

// Validate checks the config for values the placement code cannot use.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	if c.ScaleFactor != 0 && (c.ScaleFactor < window.MinScaleFactor || c.ScaleFactor > window.MaxScaleFactor) {
		return &ValidationError{
			Path: "scale_factor",
			Err:  fmt.Errorf("scale_factor must be 0 (auto) or between %g and %g", window.MinScaleFactor, window.MaxScaleFactor),
		}
	}
	if err := c.Window.validate("window"); err != nil {
		return err
	}
	for _, name := range sortedKeys(c.Presets) {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Path: "presets", Err: fmt.Errorf("preset name must not be empty")}
		}
		if err := c.Presets[name].validate("presets." + name); err != nil {
			return err
		}
	}
	return nil
}

// Settings returns the default window settings from the `window` section.
func (c *Config) Settings() window.Settings {
	return c.Window.Settings()
}

// Preset looks up a named window config. User presets shadow built-ins.
func (c *Config) Preset(name string) (WindowConfig, bool) {
	if p, ok := c.Presets[name]; ok {
		return p, true
	}
	p, ok := BuiltinPresets()[name]
	return p, ok
}

// PresetNames returns user and built-in preset names, sorted.
func (c *Config) PresetNames() []string {
	all := BuiltinPresets()
	for name, p := range c.Presets {
		all[name] = p
	}
	return sortedKeys(all)
}

// SlogLevel maps log_level onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func sortedKeys(m map[string]WindowConfig) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
