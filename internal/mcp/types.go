package mcp

// MonitorInfo describes one monitor in a snapshot.
type MonitorInfo struct {
	Index                 int     `json:"index"`
	Name                  string  `json:"name,omitempty"`
	PhysicalWidth         uint32  `json:"physical_width"`
	PhysicalHeight        uint32  `json:"physical_height"`
	LogicalWidth          float32 `json:"logical_width"`
	LogicalHeight         float32 `json:"logical_height"`
	ScaleFactor           float64 `json:"scale_factor"`
	RefreshRateMillihertz *uint32 `json:"refresh_rate_millihertz,omitempty"`
	Primary               bool    `json:"primary"`
}

// ListMonitorsInput is the input for the list_monitors tool.
type ListMonitorsInput struct{}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors []MonitorInfo `json:"monitors"`
	// Primary is the primary (or first) monitor index, nil when there are no monitors.
	Primary *int `json:"primary,omitempty"`
}

// ResolvePlacementInput is the input for the resolve_placement tool.
type ResolvePlacementInput struct {
	Preset   string `json:"preset,omitempty" jsonschema:"Named preset from config or built-in (default, centered, large, left-half, small)"`
	Size     string `json:"size,omitempty" jsonschema:"Window size: WIDTHxHEIGHT in logical pixels, W%xH% of the monitor, or default"`
	Position string `json:"position,omitempty" jsonschema:"Window position: default, centered, X,Y or X,Y@MONITOR in logical pixels"`
	Monitor  *int   `json:"monitor,omitempty" jsonschema:"Monitor index from list_monitors. Unknown indices fall back to the primary monitor."`
}

// PlacementOutput describes a resolved placement.
type PlacementOutput struct {
	Monitor       int     `json:"monitor"`
	MonitorName   string  `json:"monitor_name,omitempty"`
	LogicalWidth  float32 `json:"logical_width"`
	LogicalHeight float32 `json:"logical_height"`
	X             int     `json:"x"`
	Y             int     `json:"y"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Positioned    bool    `json:"positioned"`
	Fallback      bool    `json:"fallback"`
	Size          string  `json:"size"`
	Position      string  `json:"position"`
}

// PlaceWindowInput is the input for the place_window tool.
type PlaceWindowInput struct {
	Preset   string `json:"preset,omitempty" jsonschema:"Named preset from config or built-in (default, centered, large, left-half, small)"`
	Size     string `json:"size,omitempty" jsonschema:"Window size: WIDTHxHEIGHT in logical pixels, W%xH% of the monitor, or default"`
	Position string `json:"position,omitempty" jsonschema:"Window position: default, centered, X,Y or X,Y@MONITOR in logical pixels"`
	Monitor  *int   `json:"monitor,omitempty" jsonschema:"Monitor index from list_monitors. Unknown indices fall back to the primary monitor."`
	WindowID uint32 `json:"window_id,omitempty" jsonschema:"X11 window ID. When omitted, title is used, then the active window."`
	Title    string `json:"title,omitempty" jsonschema:"Window title substring to match when window_id is not set"`
}

// PlaceWindowOutput is the output for the place_window tool.
type PlaceWindowOutput struct {
	WindowID  uint32          `json:"window_id"`
	Placement PlacementOutput `json:"placement"`
}
