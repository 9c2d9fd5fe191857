package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/1broseidon/winplace/internal/config"
	"github.com/1broseidon/winplace/internal/placement"
	"github.com/1broseidon/winplace/internal/platform"
	"github.com/1broseidon/winplace/internal/tui"
)

// placementFlags select the settings for a placement.
type placementFlags struct {
	preset   string
	size     string
	position string
	monitor  int
	pick     bool
}

func (p *placementFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.preset, "preset", "", "Named preset (see 'winplace config print')")
	fs.StringVar(&p.size, "size", "", "Size: WIDTHxHEIGHT, W%xH% of the monitor, or default")
	fs.StringVar(&p.position, "position", "", "Position: default, centered, X,Y or X,Y@MONITOR")
	fs.IntVar(&p.monitor, "monitor", -1, "Monitor index (see 'winplace monitors')")
	fs.BoolVar(&p.pick, "pick", false, "Choose the monitor interactively")
}

// overrides converts the flags into config overrides, running the picker
// against displays when requested.
func (p *placementFlags) overrides(displays []platform.Display) (config.Overrides, error) {
	o := config.Overrides{Preset: p.preset, Size: p.size, Position: p.position}
	if p.pick && p.monitor >= 0 {
		return o, errors.New("--pick and --monitor are mutually exclusive")
	}
	if p.monitor >= 0 {
		idx := p.monitor
		o.Monitor = &idx
	}
	if p.pick {
		index, err := tui.PickMonitor(platform.Snapshot(displays), "Place window on which monitor?")
		if err != nil {
			return o, err
		}
		idx := int(index)
		o.Monitor = &idx
	}
	return o, nil
}

func formatResult(res placement.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "monitor:  %d (%s)\n", int(res.MonitorIndex), displayName(res.Display))
	fmt.Fprintf(&b, "size:     %s logical, %dx%d physical\n", res.LogicalSize, res.Bounds.Width, res.Bounds.Height)
	if res.Positioned {
		fmt.Fprintf(&b, "position: %d,%d\n", res.Bounds.X, res.Bounds.Y)
	} else {
		fmt.Fprintln(&b, "position: chosen by window manager")
	}
	if res.Fallback {
		fmt.Fprintln(&b, "note:     requested monitor not found, used default monitor")
	}
	return b.String()
}

func displayName(d platform.Display) string {
	if d.Name == "" {
		return "Unknown Monitor"
	}
	return d.Name
}

func runPlace(args []string) int {
	var common commonFlags
	var pf placementFlags
	fs := flag.NewFlagSet("place", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	common.register(fs)
	pf.register(fs)
	windowID := fs.Uint("window", 0, "X11 window ID (default: active window)")
	title := fs.String("title", "", "Place the first window whose title contains this text")
	focus := fs.Bool("focus", false, "Focus the window after placing it")
	dryRun := fs.Bool("dry-run", false, "Print the resolved placement without moving anything")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winplace place [--window ID | --title TEXT] [--preset NAME] [--size SIZE]")
		fmt.Fprintln(os.Stderr, "                      [--position POS] [--monitor N | --pick] [--focus] [--dry-run]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move and resize a window. Settings come from the config 'window' section,")
		fmt.Fprintln(os.Stderr, "then the preset, then the explicit flags.")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if *windowID != 0 && *title != "" {
		fmt.Fprintln(os.Stderr, "--window and --title are mutually exclusive")
		return 2
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
	overrides, err := pf.overrides(displays)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	settings, err := cfg.ResolveSettings(overrides)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if *dryRun {
		res, err := placement.Resolve(settings, displays)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(formatResult(res))
		return 0
	}

	var target platform.WindowID
	switch {
	case *windowID != 0:
		target = platform.WindowID(*windowID)
	case *title != "":
		target, err = backend.FindWindow(*title)
	default:
		target, err = backend.ActiveWindow()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to find window: %v\n", err)
		return 1
	}

	placer := placement.NewPlacer(backend, newLogger(cfg))
	res, err := placer.Place(target, settings)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *focus {
		if err := backend.Focus(target); err != nil {
			log.Printf("Warning: failed to focus window %d: %v", target, err)
		}
	}
	fmt.Print(formatResult(res))
	return 0
}

func runPick(args []string) int {
	var common commonFlags
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winplace pick [--config PATH] [--display DISPLAY]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Choose a monitor interactively and print its index.")
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
	index, err := tui.PickMonitor(platform.Snapshot(displays), "Select a monitor")
	if err != nil {
		if !errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	fmt.Println(int(index))
	return 0
}

func runPreview(args []string) int {
	var common commonFlags
	var pf placementFlags
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	common.register(fs)
	pf.register(fs)
	width := fs.Int("width", 72, "Preview width in characters")
	height := fs.Int("height", 18, "Preview height in lines")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winplace preview [--preset NAME] [--size SIZE] [--position POS] [--monitor N | --pick]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Draw the monitor layout and where a window would be placed.")
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
	overrides, err := pf.overrides(displays)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	settings, err := cfg.ResolveSettings(overrides)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	res, err := placement.Resolve(settings, displays)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	win := res.Bounds
	if !res.Positioned {
		// The window manager decides; show it centered on the target.
		win.X = res.Display.Bounds.X + (res.Display.Bounds.Width-win.Width)/2
		win.Y = res.Display.Bounds.Y + (res.Display.Bounds.Height-win.Height)/2
	}
	for _, line := range tui.RenderPlacement(displays, &win, *width, *height) {
		fmt.Println(line)
	}
	fmt.Print(formatResult(res))
	return 0
}
