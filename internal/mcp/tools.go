package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winplace/internal/config"
	"github.com/1broseidon/winplace/internal/placement"
	"github.com/1broseidon/winplace/internal/platform"
	"github.com/1broseidon/winplace/internal/window"
)

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	displays, err := s.backend.Displays()
	if err != nil {
		return nil, ListMonitorsOutput{}, fmt.Errorf("failed to enumerate displays: %w", err)
	}
	list := platform.Snapshot(displays)

	out := ListMonitorsOutput{Monitors: DescribeMonitors(list)}
	if m, ok := list.PrimaryOrFirst(); ok {
		idx := int(m.Index())
		out.Primary = &idx
	}
	s.logger.Debug("list_monitors", "count", len(out.Monitors))
	return nil, out, nil
}

func (s *Server) handleResolvePlacement(_ context.Context, _ *mcpsdk.CallToolRequest, args ResolvePlacementInput) (*mcpsdk.CallToolResult, PlacementOutput, error) {
	settings, err := s.settingsFor(args.Preset, args.Size, args.Position, args.Monitor)
	if err != nil {
		return nil, PlacementOutput{}, err
	}
	displays, err := s.backend.Displays()
	if err != nil {
		return nil, PlacementOutput{}, fmt.Errorf("failed to enumerate displays: %w", err)
	}
	res, err := placement.Resolve(settings, displays)
	if err != nil {
		return nil, PlacementOutput{}, err
	}
	return nil, placementOutput(settings, res), nil
}

func (s *Server) handlePlaceWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args PlaceWindowInput) (*mcpsdk.CallToolResult, PlaceWindowOutput, error) {
	settings, err := s.settingsFor(args.Preset, args.Size, args.Position, args.Monitor)
	if err != nil {
		return nil, PlaceWindowOutput{}, err
	}
	id, err := s.targetWindow(args.WindowID, args.Title)
	if err != nil {
		return nil, PlaceWindowOutput{}, err
	}
	res, err := s.placer.Place(id, settings)
	if err != nil {
		return nil, PlaceWindowOutput{}, err
	}
	s.logger.Info("window placed", "window", id, "monitor", res.Display.Name)
	return nil, PlaceWindowOutput{WindowID: uint32(id), Placement: placementOutput(settings, res)}, nil
}

func (s *Server) settingsFor(preset, size, position string, monitor *int) (window.Settings, error) {
	return s.config.ResolveSettings(config.Overrides{
		Preset:   preset,
		Size:     size,
		Position: position,
		Monitor:  monitor,
	})
}

func (s *Server) targetWindow(id uint32, title string) (platform.WindowID, error) {
	switch {
	case id != 0:
		return platform.WindowID(id), nil
	case title != "":
		found, err := s.backend.FindWindow(title)
		if err != nil {
			return 0, fmt.Errorf("no window matching %q: %w", title, err)
		}
		return found, nil
	default:
		active, err := s.backend.ActiveWindow()
		if err != nil {
			return 0, fmt.Errorf("failed to get active window: %w", err)
		}
		return active, nil
	}
}

// DescribeMonitors converts a snapshot into its JSON form, in index order.
func DescribeMonitors(list *window.MonitorList) []MonitorInfo {
	out := make([]MonitorInfo, 0, list.Len())
	for m := range list.All() {
		phys := m.PhysicalSize()
		logical := m.Size()
		info := MonitorInfo{
			Index:          int(m.Index()),
			PhysicalWidth:  phys.Width,
			PhysicalHeight: phys.Height,
			LogicalWidth:   logical.Width,
			LogicalHeight:  logical.Height,
			ScaleFactor:    m.ScaleFactor(),
			Primary:        m.IsPrimary(),
		}
		if name, ok := m.Name(); ok {
			info.Name = name
		}
		if rate, ok := m.RefreshRateMillihertz(); ok {
			info.RefreshRateMillihertz = &rate
		}
		out = append(out, info)
	}
	return out
}

func placementOutput(settings window.Settings, res placement.Result) PlacementOutput {
	return PlacementOutput{
		Monitor:       int(res.MonitorIndex),
		MonitorName:   res.Display.Name,
		LogicalWidth:  res.LogicalSize.Width,
		LogicalHeight: res.LogicalSize.Height,
		X:             res.Bounds.X,
		Y:             res.Bounds.Y,
		Width:         res.Bounds.Width,
		Height:        res.Bounds.Height,
		Positioned:    res.Positioned,
		Fallback:      res.Fallback,
		Size:          config.FormatSize(settings.Size),
		Position:      config.FormatPosition(settings.Position),
	}
}
