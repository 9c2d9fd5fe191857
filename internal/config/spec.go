package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winplace/internal/geometry"
	"github.com/1broseidon/winplace/internal/window"
)

// SizeSpec is a window.Size as written in YAML. It accepts either:
//
//	size: 1280x720
//	size: 50%x80%
//
// or:
//
//	size:
//	  width: 1280
//	  height: 720
//
//	size:
//	  screen_fraction: {width: 0.5, height: 0.8}
//
// An unset SizeSpec resolves to the default window size.
type SizeSpec struct {
	value window.Size
	set   bool
}

// NewSizeSpec wraps a window.Size.
func NewSizeSpec(size window.Size) SizeSpec {
	return SizeSpec{value: size, set: true}
}

// Value returns the configured size.
func (s SizeSpec) Value() window.Size {
	if !s.set {
		return window.DefaultSize()
	}
	return s.value
}

func (s SizeSpec) String() string {
	return FormatSize(s.Value())
}

func (s *SizeSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		size, err := parseSize(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*s = NewSizeSpec(size)
		return nil
	case yaml.MappingNode:
		var raw struct {
			Width          *float32                `yaml:"width"`
			Height         *float32                `yaml:"height"`
			ScreenFraction *window.ScreenFraction `yaml:"screen_fraction"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		switch {
		case raw.ScreenFraction != nil && (raw.Width != nil || raw.Height != nil):
			return fmt.Errorf("line %d: size takes either width/height or screen_fraction, not both", value.Line)
		case raw.ScreenFraction != nil:
			*s = NewSizeSpec(window.FromScreenSize(*raw.ScreenFraction))
		case raw.Width != nil && raw.Height != nil:
			*s = NewSizeSpec(window.Fixed(geometry.NewSize(*raw.Width, *raw.Height)))
		default:
			return fmt.Errorf("line %d: size needs both width and height", value.Line)
		}
		return nil
	default:
		return fmt.Errorf("line %d: size must be a string or mapping", value.Line)
	}
}

func (s SizeSpec) MarshalYAML() (interface{}, error) {
	return FormatSize(s.Value()), nil
}

func (s SizeSpec) validate() error {
	if !s.set {
		return nil
	}
	return validateSize(s.value)
}

func validateSize(size window.Size) error {
	if fixed, ok := size.Fixed(); ok {
		if !inRange(fixed.Width, 0, window.MaxWindowExtent) || !inRange(fixed.Height, 0, window.MaxWindowExtent) ||
			fixed.Width == 0 || fixed.Height == 0 {
			return fmt.Errorf("width and height must be in (0, %g]", window.MaxWindowExtent)
		}
		return nil
	}
	sizer, _ := size.Sizer()
	if f, ok := sizer.(window.ScreenFraction); ok {
		if !inRange(f.Width, 0, 1) || !inRange(f.Height, 0, 1) || f.Width == 0 || f.Height == 0 {
			return fmt.Errorf("screen_fraction values must be in (0, 1]")
		}
	}
	return nil
}

func validatePoint(p geometry.Point) error {
	if !inRange(p.X, -window.MaxWindowExtent, window.MaxWindowExtent) ||
		!inRange(p.Y, -window.MaxWindowExtent, window.MaxWindowExtent) {
		return fmt.Errorf("x and y must be finite and within ±%g", window.MaxWindowExtent)
	}
	return nil
}

// inRange reports lo <= v <= hi; NaN is never in range.
func inRange(v, lo, hi float32) bool {
	return v >= lo && v <= hi
}

// ParseSize parses "WxH" (logical pixels), "W%xH%" (fraction of the target
// monitor) or "default". Non-finite, non-positive and oversized values are
// rejected.
func ParseSize(text string) (window.Size, error) {
	size, err := parseSize(text)
	if err != nil {
		return window.Size{}, err
	}
	if err := validateSize(size); err != nil {
		return window.Size{}, fmt.Errorf("invalid size %q: %w", text, err)
	}
	return size, nil
}

// parseSize only checks syntax; YAML values are range-checked by Validate so
// errors carry their config path.
func parseSize(text string) (window.Size, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, "×", "x")
	if s == "" || s == "default" {
		return window.DefaultSize(), nil
	}

	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return window.Size{}, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", text)
	}
	ws, hs = strings.TrimSpace(ws), strings.TrimSpace(hs)
	wPct, hPct := strings.HasSuffix(ws, "%"), strings.HasSuffix(hs, "%")
	if wPct != hPct {
		return window.Size{}, fmt.Errorf("invalid size %q: use percentages for both dimensions or neither", text)
	}

	w, err := strconv.ParseFloat(strings.TrimSuffix(ws, "%"), 32)
	if err != nil {
		return window.Size{}, fmt.Errorf("invalid size %q: bad width: %w", text, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(hs, "%"), 32)
	if err != nil {
		return window.Size{}, fmt.Errorf("invalid size %q: bad height: %w", text, err)
	}

	if wPct {
		return window.FromScreenSize(window.ScreenFraction{Width: float32(w / 100), Height: float32(h / 100)}), nil
	}
	return window.Fixed(geometry.NewSize(float32(w), float32(h))), nil
}

// FormatSize renders a size in the form accepted by ParseSize. Sizes computed
// by arbitrary functions have no text form and render as "from-screen".
func FormatSize(size window.Size) string {
	if fixed, ok := size.Fixed(); ok {
		return fmt.Sprintf("%gx%g", fixed.Width, fixed.Height)
	}
	sizer, _ := size.Sizer()
	if f, ok := sizer.(window.ScreenFraction); ok {
		return fmt.Sprintf("%g%%x%g%%", f.Width*100, f.Height*100)
	}
	return "from-screen"
}

// PositionSpec is a window.Position as written in YAML:
//
//	position: default
//	position: centered
//	position: 100,50
//	position: 100,50@1
//
// or:
//
//	position:
//	  monitor: 1
//	  x: 100
//	  y: 50
type PositionSpec struct {
	value window.Position
}

// NewPositionSpec wraps a window.Position.
func NewPositionSpec(p window.Position) PositionSpec {
	return PositionSpec{value: p}
}

// Value returns the configured position.
func (p PositionSpec) Value() window.Position {
	return p.value
}

func (p PositionSpec) String() string {
	return FormatPosition(p.value)
}

func (p *PositionSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		pos, err := parsePosition(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		p.value = pos
		return nil
	case yaml.MappingNode:
		var raw struct {
			Monitor *int    `yaml:"monitor"`
			X       float32 `yaml:"x"`
			Y       float32 `yaml:"y"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		point := geometry.Point{X: raw.X, Y: raw.Y}
		if raw.Monitor == nil {
			p.value = window.PositionAt(point)
			return nil
		}
		if *raw.Monitor < 0 {
			return fmt.Errorf("line %d: monitor must be >= 0", value.Line)
		}
		p.value = window.OnMonitor(window.MonitorIndex(*raw.Monitor), point)
		return nil
	default:
		return fmt.Errorf("line %d: position must be a string or mapping", value.Line)
	}
}

func (p PositionSpec) MarshalYAML() (interface{}, error) {
	return FormatPosition(p.value), nil
}

func (p PositionSpec) validate() error {
	spec, ok := p.value.Specific()
	if !ok {
		return nil
	}
	if spec.MonitorIndex != nil && *spec.MonitorIndex < 0 {
		return fmt.Errorf("monitor must be >= 0")
	}
	return validatePoint(spec.Position)
}

// ParsePosition parses "default", "centered", "X,Y" or "X,Y@MONITOR".
// Offsets must be finite and within ±window.MaxWindowExtent.
func ParsePosition(text string) (window.Position, error) {
	pos, err := parsePosition(text)
	if err != nil {
		return window.Position{}, err
	}
	if err := NewPositionSpec(pos).validate(); err != nil {
		return window.Position{}, fmt.Errorf("invalid position %q: %w", text, err)
	}
	return pos, nil
}

func parsePosition(text string) (window.Position, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch s {
	case "", "default":
		return window.DefaultPosition(), nil
	case "centered", "center":
		return window.CenteredPosition(), nil
	}

	coords, monitor, hasMonitor := strings.Cut(s, "@")
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return window.Position{}, fmt.Errorf("invalid position %q: expected default, centered, X,Y or X,Y@MONITOR", text)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return window.Position{}, fmt.Errorf("invalid position %q: bad x: %w", text, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return window.Position{}, fmt.Errorf("invalid position %q: bad y: %w", text, err)
	}
	point := geometry.Point{X: float32(x), Y: float32(y)}
	if !hasMonitor {
		return window.PositionAt(point), nil
	}

	idx, err := strconv.Atoi(strings.TrimSpace(monitor))
	if err != nil || idx < 0 {
		return window.Position{}, fmt.Errorf("invalid position %q: monitor must be a non-negative integer", text)
	}
	return window.OnMonitor(window.MonitorIndex(idx), point), nil
}

// FormatPosition renders a position in the form accepted by ParsePosition.
func FormatPosition(p window.Position) string {
	switch p.Kind() {
	case window.PositionCentered:
		return "centered"
	case window.PositionSpecific:
		spec, _ := p.Specific()
		coords := fmt.Sprintf("%g,%g", spec.Position.X, spec.Position.Y)
		if spec.MonitorIndex != nil {
			return fmt.Sprintf("%s@%d", coords, int(*spec.MonitorIndex))
		}
		return coords
	default:
		return "default"
	}
}
