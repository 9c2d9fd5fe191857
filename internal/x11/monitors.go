package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil/ewmh"
)

const (
	modeFlagInterlace  = 1 << 4
	modeFlagDoubleScan = 1 << 5
)

// Monitor is one active CRTC as reported by RandR.
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
	// RefreshMillihertz is 0 when the mode timings are unavailable.
	RefreshMillihertz uint32
	Primary           bool
}

// GetMonitors retrieves all active monitors using XRandR, in CRTC order.
func (c *Connection) GetMonitors() ([]Monitor, error) {
	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	modes := make(map[randr.Mode]randr.ModeInfo, len(resources.Modes))
	for _, mode := range resources.Modes {
		modes[randr.Mode(mode.Id)] = mode
	}

	var primaryOutput randr.Output
	if reply, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		primaryOutput = reply.Output
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		isPrimary := false
		for _, out := range crtcInfo.Outputs {
			if primaryOutput != 0 && out == primaryOutput {
				isPrimary = true
				break
			}
		}

		var refresh uint32
		if mode, ok := modes[crtcInfo.Mode]; ok {
			refresh = refreshMillihertz(mode)
		}

		monitors = append(monitors, Monitor{
			ID:                i,
			Name:              outputName,
			X:                 int(crtcInfo.X),
			Y:                 int(crtcInfo.Y),
			Width:             int(crtcInfo.Width),
			Height:            int(crtcInfo.Height),
			RefreshMillihertz: refresh,
			Primary:           isPrimary,
		})
	}

	return monitors, nil
}

// refreshMillihertz derives the vertical refresh rate from RandR mode timings.
func refreshMillihertz(mode randr.ModeInfo) uint32 {
	if mode.Htotal == 0 || mode.Vtotal == 0 {
		return 0
	}
	clock := uint64(mode.DotClock) * 1000
	pixels := uint64(mode.Htotal) * uint64(mode.Vtotal)
	if mode.ModeFlags&modeFlagInterlace != 0 {
		clock *= 2
	}
	if mode.ModeFlags&modeFlagDoubleScan != 0 {
		pixels *= 2
	}
	return uint32((clock + pixels/2) / pixels)
}

// WorkArea returns the part of the monitor not covered by panels and docks,
// based on _NET_WORKAREA for the current desktop. The full monitor bounds are
// returned when the work area is unavailable or does not overlap.
func (c *Connection) WorkArea(m Monitor) (x, y, width, height int) {
	x, y, width, height = m.X, m.Y, m.Width, m.Height

	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return
	}
	desktopIndex := 0
	if current, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(current) < len(workArea) {
		desktopIndex = int(current)
	}
	wa := workArea[desktopIndex]

	waX, waY := int(wa.X), int(wa.Y)
	x1 := max(m.X, waX)
	y1 := max(m.Y, waY)
	x2 := min(m.X+m.Width, waX+int(wa.Width))
	y2 := min(m.Y+m.Height, waY+int(wa.Height))
	if x2 > x1 && y2 > y1 {
		return x1, y1, x2 - x1, y2 - y1
	}
	return
}
