package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/1broseidon/winplace/internal/config"
	"github.com/1broseidon/winplace/internal/platform"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "place":
		os.Exit(runPlace(os.Args[2:]))
	case "pick":
		os.Exit(runPick(os.Args[2:]))
	case "preview":
		os.Exit(runPreview(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winplace <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  monitors            List connected monitors")
	fmt.Fprintln(w, "  place               Move/resize a window onto a monitor")
	fmt.Fprintln(w, "  pick                Choose a monitor interactively")
	fmt.Fprintln(w, "  preview             Show where a window would be placed")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config init         Write the default configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winplace <command> --help' for command-specific options.")
}

// commonFlags are accepted by every command that talks to the display.
type commonFlags struct {
	configPath string
	display    string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "Config file path (default: ~/.config/winplace/config.yaml)")
	fs.StringVar(&c.display, "display", "", "X display to connect to (default: config, then $DISPLAY)")
}

func (c *commonFlags) loadConfig() (*config.Config, error) {
	if c.configPath == "" {
		return config.Load()
	}
	return config.LoadFromPath(c.configPath)
}

func (c *commonFlags) openBackend(cfg *config.Config) (*platform.LinuxBackend, error) {
	display := c.display
	if display == "" {
		display = cfg.Display
	}
	return platform.NewLinuxBackendFromDisplay(display, cfg.ScaleFactor)
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func parseFlags(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, false
		}
		return 2, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n\n", fs.Args())
		fs.Usage()
		return 2, false
	}
	return 0, true
}
