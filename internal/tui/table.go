package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/winplace/internal/window"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// FormatRefresh renders a refresh rate given in millihertz, e.g. "59.94 Hz".
func FormatRefresh(m window.Monitor) string {
	rate, ok := m.RefreshRateMillihertz()
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%.2f Hz", float64(rate)/1000)
}

// MonitorLabel is a one-line description used by the picker.
func MonitorLabel(m window.Monitor) string {
	label := fmt.Sprintf("%d: %s  %s (%s logical) @ %s",
		int(m.Index()), m.DisplayName(), m.PhysicalSize(), m.Size(), FormatRefresh(m))
	if m.IsPrimary() {
		label += "  (primary)"
	}
	return label
}

// RenderMonitors renders the snapshot as an aligned table. When styled is false
// the output is plain text suitable for pipes.
func RenderMonitors(list *window.MonitorList, styled bool) string {
	if list.Len() == 0 {
		return "No monitors found.\n"
	}

	header := []string{"INDEX", "NAME", "PHYSICAL", "LOGICAL", "SCALE", "REFRESH", ""}
	rows := [][]string{header}
	for m := range list.All() {
		primary := ""
		if m.IsPrimary() {
			primary = "primary"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", int(m.Index())),
			m.DisplayName(),
			m.PhysicalSize().String(),
			m.Size().String(),
			fmt.Sprintf("%g", m.ScaleFactor()),
			FormatRefresh(m),
			primary,
		})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			padded := cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if styled {
				switch {
				case r == 0:
					padded = headerStyle.Render(padded)
				case i == len(row)-1 && cell != "":
					padded = primaryStyle.Render(padded)
				case i == 4 || i == 5:
					padded = dimStyle.Render(padded)
				}
			}
			cells[i] = padded
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}
	return b.String()
}
