// Package placement turns a window.Settings request into concrete physical
// geometry against the live display set, the way a windowing backend does at
// window-creation time.
package placement

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/1broseidon/winplace/internal/geometry"
	"github.com/1broseidon/winplace/internal/platform"
	"github.com/1broseidon/winplace/internal/window"
)

// ErrNoDisplays is returned when the live display set is empty.
var ErrNoDisplays = errors.New("no displays available")

// ErrInvalidGeometry is returned when a size or offset is not finite, is
// negative, or exceeds window.MaxWindowExtent.
var ErrInvalidGeometry = errors.New("invalid window geometry")

// Result is a resolved placement.
type Result struct {
	// MonitorIndex is the index of the target display in the live set.
	MonitorIndex window.MonitorIndex
	Display      platform.Display
	// LogicalSize is the requested size after min/max bounds.
	LogicalSize geometry.Size
	// Bounds is in physical pixels. X and Y are only meaningful when Positioned.
	Bounds     geometry.Rect
	Positioned bool
	// Fallback is set when the requested monitor index did not exist in the
	// live set and the default monitor was used instead.
	Fallback bool
}

// Resolve resolves settings against displays. Any MonitorIndex in the
// position (or in settings.Monitor) is looked up in displays as they are now;
// an index from an older snapshot that no longer resolves falls back to the
// primary (or first) display.
func Resolve(settings window.Settings, displays []platform.Display) (Result, error) {
	live := platform.Snapshot(displays)
	target, ok := live.PrimaryOrFirst()
	if !ok {
		return Result{}, ErrNoDisplays
	}

	var res Result
	spec, specific := settings.Position.Specific()
	requested := settings.Monitor
	if specific && spec.MonitorIndex != nil {
		requested = spec.MonitorIndex
	}
	if requested != nil {
		if m, ok := live.Get(*requested); ok {
			target = m
		} else {
			res.Fallback = true
		}
	}

	d := displays[target.Index()]
	res.MonitorIndex = target.Index()
	res.Display = d
	res.LogicalSize = settings.ResolveSize(target.Size())
	if !validExtent(res.LogicalSize.Width, false) || !validExtent(res.LogicalSize.Height, false) {
		return Result{}, fmt.Errorf("%w: size %v", ErrInvalidGeometry, res.LogicalSize)
	}

	width := max(geometry.ToPhysical(res.LogicalSize.Width, d.ScaleFactor), 1)
	height := max(geometry.ToPhysical(res.LogicalSize.Height, d.ScaleFactor), 1)
	res.Bounds = geometry.Rect{Width: width, Height: height}

	kind := settings.Position.Kind()
	if kind == window.PositionDefault && settings.Monitor != nil && !res.Fallback {
		kind = window.PositionCentered
	}

	switch kind {
	case window.PositionCentered:
		area := d.Usable
		if area.Width <= 0 || area.Height <= 0 {
			area = d.Bounds
		}
		res.Bounds.X = area.X + (area.Width-width)/2
		res.Bounds.Y = area.Y + (area.Height-height)/2
		res.Positioned = true
	case window.PositionSpecific:
		if !validExtent(spec.Position.X, true) || !validExtent(spec.Position.Y, true) {
			return Result{}, fmt.Errorf("%w: position %v", ErrInvalidGeometry, spec.Position)
		}
		res.Bounds.X = d.Bounds.X + geometry.ToPhysical(spec.Position.X, d.ScaleFactor)
		res.Bounds.Y = d.Bounds.Y + geometry.ToPhysical(spec.Position.Y, d.ScaleFactor)
		res.Positioned = true
	}

	return res, nil
}

// validExtent reports whether v is a usable logical length or offset.
func validExtent(v float32, allowNegative bool) bool {
	if !geometry.IsFinite(v) {
		return false
	}
	if v < 0 {
		return allowNegative && v >= -window.MaxWindowExtent
	}
	return v <= window.MaxWindowExtent
}

// Placer applies settings to existing windows through a platform backend.
type Placer struct {
	backend platform.Backend
	logger  *slog.Logger
}

// NewPlacer creates a Placer. A nil logger discards log output.
func NewPlacer(backend platform.Backend, logger *slog.Logger) *Placer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Placer{backend: backend, logger: logger}
}

// Place enumerates the live displays, resolves settings and moves/resizes the
// window. A default position only resizes and leaves the position to the
// window manager.
func (p *Placer) Place(windowID platform.WindowID, settings window.Settings) (Result, error) {
	displays, err := p.backend.Displays()
	if err != nil {
		return Result{}, fmt.Errorf("failed to enumerate displays: %w", err)
	}

	res, err := Resolve(settings, displays)
	if err != nil {
		return Result{}, err
	}
	if res.Fallback {
		p.logger.Warn("monitor index not in live display set, using default monitor",
			"requested", settings.Position.String(),
			"display", res.Display.Name)
	}

	if res.Positioned {
		err = p.backend.MoveResize(windowID, res.Bounds)
	} else {
		err = p.backend.Resize(windowID, res.Bounds.Width, res.Bounds.Height)
	}
	if err != nil {
		return res, fmt.Errorf("failed to place window %d: %w", windowID, err)
	}

	p.logger.Debug("window placed",
		"window", windowID,
		"display", res.Display.Name,
		"bounds", fmt.Sprintf("%dx%d+%d+%d", res.Bounds.Width, res.Bounds.Height, res.Bounds.X, res.Bounds.Y),
		"positioned", res.Positioned)
	return res, nil
}
