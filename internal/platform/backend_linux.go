//go:build linux

package platform

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/winplace/internal/geometry"
	"github.com/1broseidon/winplace/internal/window"
	"github.com/1broseidon/winplace/internal/x11"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
	// scaleOverride is the physical-to-logical ratio applied to every display.
	// Zero means derive it from the environment.
	scaleOverride float64
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection, scaleOverride float64) *LinuxBackend {
	return &LinuxBackend{conn: conn, scaleOverride: scaleOverride}
}

// NewLinuxBackendFromDisplay opens a fresh X11 connection to display
// (empty for $DISPLAY).
func NewLinuxBackendFromDisplay(display string, scaleOverride float64) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return NewLinuxBackend(conn, scaleOverride), nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Displays returns all active displays in RandR CRTC order.
func (b *LinuxBackend) Displays() ([]Display, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	scale := b.scaleFactor()
	displays := make([]Display, 0, len(monitors))
	for _, m := range monitors {
		d := displayFromMonitor(m, scale)
		ux, uy, uw, uh := conn.WorkArea(m)
		d.Usable = geometry.Rect{X: ux, Y: uy, Width: uw, Height: uh}
		displays = append(displays, d)
	}
	return displays, nil
}

// ActiveWindow returns the currently active/focused window ID.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	wid, err := conn.GetActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

// FindWindow returns the first client window whose title contains title.
func (b *LinuxBackend) FindWindow(title string) (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}
	wid, err := conn.FindWindowByTitle(title)
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

// MoveResize moves and resizes a window to the specified bounds.
func (b *LinuxBackend) MoveResize(windowID WindowID, bounds geometry.Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}

	return conn.MoveResizeWindow(
		xproto.Window(windowID),
		bounds.X,
		bounds.Y,
		bounds.Width,
		bounds.Height,
	)
}

// Resize changes a window's size without moving it.
func (b *LinuxBackend) Resize(windowID WindowID, width, height int) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.ResizeWindow(xproto.Window(windowID), width, height)
}

// Focus raises and activates a window.
func (b *LinuxBackend) Focus(windowID WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.FocusWindow(xproto.Window(windowID))
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, ErrNoConnection
	}
	return b.conn, nil
}

func (b *LinuxBackend) scaleFactor() float64 {
	if b.scaleOverride > 0 {
		return window.ClampScaleFactor(b.scaleOverride)
	}
	return scaleFromEnv(os.Getenv("GDK_SCALE"))
}

// scaleFromEnv turns an integer GDK_SCALE (device pixels per logical pixel)
// into a physical-to-logical ratio.
func scaleFromEnv(value string) float64 {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 1
	}
	return window.ClampScaleFactor(1 / float64(n))
}

func displayFromMonitor(m x11.Monitor, scale float64) Display {
	bounds := geometry.Rect{
		X:      m.X,
		Y:      m.Y,
		Width:  m.Width,
		Height: m.Height,
	}
	return Display{
		ID:                    m.ID,
		Name:                  m.Name,
		Bounds:                bounds,
		Usable:                bounds,
		ScaleFactor:           scale,
		RefreshRateMillihertz: m.RefreshMillihertz,
		Primary:               m.Primary,
	}
}
