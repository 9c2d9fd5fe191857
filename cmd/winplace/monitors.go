package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/winplace/internal/mcp"
	"github.com/1broseidon/winplace/internal/platform"
	"github.com/1broseidon/winplace/internal/tui"
)

func runMonitors(args []string) int {
	var common commonFlags
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	common.register(fs)
	asJSON := fs.Bool("json", false, "Print monitors as JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winplace monitors [--json] [--config PATH] [--display DISPLAY]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List connected monitors. Indices are valid until the monitor setup changes.")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, err := common.loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	backend, err := common.openBackend(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	displays, err := backend.Displays()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enumerate displays: %v\n", err)
		return 1
	}
	list := platform.Snapshot(displays)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(mcp.DescribeMonitors(list)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	fmt.Print(tui.RenderMonitors(list, stdoutIsTerminal()))
	return 0
}
