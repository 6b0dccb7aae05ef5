package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tableTitleStyle  = lipgloss.NewStyle().Bold(true)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})
)

// TableConfig describes a table for console rendering.
type TableConfig struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a table with aligned columns. Output is plain text so
// it stays readable in CI logs and when piped.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}

	widths := make([]int, len(config.Headers))
	for i, h := range config.Headers {
		widths[i] = len(h)
	}
	for _, row := range config.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder

	if config.Title != "" {
		title := config.Title
		if isColorEnabled() {
			title = tableTitleStyle.Render(title)
		}
		sb.WriteString(title)
		sb.WriteString("\n\n")
	}

	header := formatRow(config.Headers, widths)
	if isColorEnabled() {
		header = tableHeaderStyle.Render(header)
	}
	sb.WriteString(header)
	sb.WriteString("\n")

	for i, w := range widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")

	for _, row := range config.Rows {
		sb.WriteString(formatRow(row, widths))
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatRow(cells []string, widths []int) string {
	var sb strings.Builder
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(cell)
		if pad := w - len(cell); pad > 0 && i < len(widths)-1 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
