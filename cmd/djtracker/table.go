package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

// table renders rows under headers with columns sized to the widest cell.
type table struct {
	title   string
	headers []string
	rows    [][]string
	muted   bool
}

func newTable(title string, headers ...string) *table {
	return &table{
		title:   title,
		headers: headers,
	}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) error {
	var sb strings.Builder

	if t.title != "" {
		sb.WriteString(titleStyle.Render(t.title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	total := len(widths) - 1
	for i := range widths {
		widths[i] += 2
		total += widths[i]
	}

	t.line(&sb, headerStyle, widths, t.headers)
	sb.WriteString(mutedStyle.Render(strings.Repeat("-", max(total, 0))))
	sb.WriteString("\n")

	style := cellStyle
	if t.muted {
		style = style.Faint(true)
	}

	for _, row := range t.rows {
		t.line(&sb, style, widths, row)
	}

	_, err := io.WriteString(w, sb.String())

	return err //nolint:wrapcheck
}

func (t *table) line(sb *strings.Builder, style lipgloss.Style, widths []int, cells []string) {
	for i := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}

		sb.WriteString(style.Width(widths[i]).Render(cell))

		if i < len(widths)-1 {
			sb.WriteString(mutedStyle.Render("|"))
		}
	}

	sb.WriteString("\n")
}
