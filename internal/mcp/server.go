// Package mcp exposes monitor enumeration and window placement as MCP tools.
package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winplace/internal/config"
	"github.com/1broseidon/winplace/internal/placement"
	"github.com/1broseidon/winplace/internal/platform"
)

const (
	ServerName    = "winplace"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for monitor queries and window placement.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	backend   platform.Backend
	placer    *placement.Placer
	logger    *slog.Logger
}

// NewServer creates a new MCP server backed by backend. A nil logger discards
// log output.
func NewServer(backend platform.Backend, cfg *config.Config, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "mcp")

	s := &Server{
		config:  cfg,
		backend: backend,
		placer:  placement.NewPlacer(backend, logger),
		logger:  logger,
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting", "transport", "stdio")
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List the connected monitors as a snapshot: index, name, physical and logical size, scale factor, refresh rate and the primary flag. Indices are only valid until monitors are added or removed.",
	}, s.handleListMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resolve_placement",
		Description: "Compute where a window would be placed for the given preset, size, position and monitor without touching any window. Returns physical pixel bounds.",
	}, s.handleResolvePlacement)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "place_window",
		Description: "Move and resize an existing window (by window_id, title match, or the active window) according to the given preset, size, position and monitor.",
	}, s.handlePlaceWindow)
}
