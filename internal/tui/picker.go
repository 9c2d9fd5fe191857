// Package tui renders monitor snapshots for the terminal and lets the user
// pick a monitor interactively.
package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/1broseidon/winplace/internal/window"
)

// ErrNoMonitors is returned when there is nothing to pick from.
var ErrNoMonitors = errors.New("no monitors to choose from")

// ErrAborted is returned when the user cancels the picker.
var ErrAborted = errors.New("monitor selection aborted")

// Options builds one select option per monitor, in snapshot order.
func Options(list *window.MonitorList) []huh.Option[window.MonitorIndex] {
	opts := make([]huh.Option[window.MonitorIndex], 0, list.Len())
	for m := range list.All() {
		opts = append(opts, huh.NewOption(MonitorLabel(m), m.Index()))
	}
	return opts
}

// PickMonitor asks the user to choose a monitor from list. The primary (or
// first) monitor is preselected. The returned index is only valid for list.
func PickMonitor(list *window.MonitorList, title string) (window.MonitorIndex, error) {
	initial, ok := list.PrimaryOrFirst()
	if !ok {
		return 0, ErrNoMonitors
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stderr.Fd())) {
		return 0, fmt.Errorf("monitor picker requires an interactive terminal (stdin/stderr must be TTYs)")
	}

	selected := initial.Index()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[window.MonitorIndex]().
				Key("monitor").
				Title(title).
				Description("Window will open relative to this monitor").
				Options(Options(list)...).
				Value(&selected),
		),
	).WithShowHelp(true).WithProgramOptions(tea.WithOutput(os.Stderr))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, ErrAborted
		}
		return 0, err
	}
	return selected, nil
}
