package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/winplace/internal/mcp"
)

func runMCP(args []string) int {
	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "serve":
		return runMCPServe(args[1:])
	case "help", "-h", "--help":
		writeMCPHelp(os.Stdout)
		return 0
	case "":
		writeMCPHelp(os.Stderr)
		return 2
	}
	fmt.Fprintf(os.Stderr, "winplace mcp: unknown subcommand %q\n\n", sub)
	writeMCPHelp(os.Stderr)
	return 2
}

func writeMCPHelp(w io.Writer) {
	fmt.Fprint(w, `Usage: winplace mcp serve [--config PATH] [--display DISPLAY]

Serve monitor and placement tools to an MCP client over stdin/stdout:
  list_monitors       snapshot of connected monitors
  resolve_placement   compute window bounds without moving anything
  place_window        move/resize a window by id, title or focus
`)
}

func runMCPServe(args []string) int {
	var common commonFlags
	fs := flag.NewFlagSet("mcp serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	common.register(fs)
	fs.Usage = func() {
		writeMCPHelp(os.Stderr)
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, err := common.loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "winplace mcp: %v\n", err)
		return 1
	}
	backend, err := common.openBackend(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "winplace mcp: %v\n", err)
		return 1
	}
	defer backend.Disconnect()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout carries the protocol; logs go to stderr.
	logger := newLogger(cfg)
	if err := mcp.NewServer(backend, cfg, logger).Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("mcp server stopped", "err", err)
		return 1
	}
	return 0
}
