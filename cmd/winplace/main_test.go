package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/1broseidon/winplace/internal/geometry"
	"github.com/1broseidon/winplace/internal/placement"
	"github.com/1broseidon/winplace/internal/platform"
)

func TestPrintMainUsageListsCommands(t *testing.T) {
	var buf bytes.Buffer
	printMainUsage(&buf)
	for _, cmd := range []string{"monitors", "place", "pick", "preview", "config validate", "mcp serve"} {
		if !strings.Contains(buf.String(), cmd) {
			t.Errorf("usage missing %q", cmd)
		}
	}
}

func TestWriteMCPHelpListsTools(t *testing.T) {
	var buf bytes.Buffer
	writeMCPHelp(&buf)
	for _, want := range []string{"--config", "--display", "list_monitors", "resolve_placement", "place_window"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("mcp help missing %q", want)
		}
	}
}

func TestRunMCPExitCodes(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{nil, 2},
		{[]string{"bogus"}, 2},
		{[]string{"--help"}, 0},
		{[]string{"serve", "--help"}, 0},
		{[]string{"serve", "extra"}, 2},
	}
	for _, tt := range tests {
		if got := runMCP(tt.args); got != tt.want {
			t.Errorf("runMCP(%q) = %d, want %d", tt.args, got, tt.want)
		}
	}
}

func TestPlacementFlagsOverrides(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantMonitor *int
		wantErr     bool
	}{
		{name: "no monitor", args: []string{"--size", "800x600"}},
		{name: "explicit monitor", args: []string{"--monitor", "1"}, wantMonitor: intPtr(1)},
		{name: "pick and monitor conflict", args: []string{"--monitor", "0", "--pick"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pf placementFlags
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			pf.register(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			o, err := pf.overrides(nil)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("overrides() error = %v", err)
			}
			switch {
			case tt.wantMonitor == nil && o.Monitor != nil:
				t.Errorf("Monitor = %d, want nil", *o.Monitor)
			case tt.wantMonitor != nil && (o.Monitor == nil || *o.Monitor != *tt.wantMonitor):
				t.Errorf("Monitor = %v, want %d", o.Monitor, *tt.wantMonitor)
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	res := placement.Result{
		MonitorIndex: 1,
		Display:      platform.Display{Name: "DP-1"},
		LogicalSize:  geometry.NewSize(800, 600),
		Bounds:       geometry.Rect{X: 100, Y: 50, Width: 800, Height: 600},
		Positioned:   true,
		Fallback:     true,
	}
	got := formatResult(res)
	for _, want := range []string{"monitor:  1 (DP-1)", "800x600 physical", "position: 100,50", "not found"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatResult() missing %q:\n%s", want, got)
		}
	}

	res.Positioned, res.Fallback, res.Display.Name = false, false, ""
	got = formatResult(res)
	if !strings.Contains(got, "window manager") || !strings.Contains(got, "Unknown Monitor") {
		t.Errorf("formatResult() = %q", got)
	}
}

func intPtr(v int) *int { return &v }
