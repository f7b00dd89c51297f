package render

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type terminalStyles struct {
	header lipgloss.Style
	cell   lipgloss.Style
	text   lipgloss.Style
	err    lipgloss.Style
	plot   lipgloss.Style
}

func newTerminalStyles(styled bool) terminalStyles {
	s := terminalStyles{
		header: lipgloss.NewStyle(),
		cell:   lipgloss.NewStyle(),
		text:   lipgloss.NewStyle(),
		err:    lipgloss.NewStyle(),
		plot:   lipgloss.NewStyle(),
	}
	if styled {
		s.header = s.header.Bold(true).Foreground(lipgloss.Color("12"))
		s.err = s.err.Bold(true).Foreground(lipgloss.Color("9"))
		s.plot = s.plot.Italic(true).Foreground(lipgloss.Color("10"))
	}
	return s
}

// WriteTerminal prints the visible regions of d to w. Colors are only used
// when styled is set, which callers derive from whether w is a TTY.
func WriteTerminal(w io.Writer, d *Display, styled bool) error {
	styles := newTerminalStyles(styled)
	var b strings.Builder

	if d.Text.Visible {
		if d.Text.IsError {
			b.WriteString(styles.err.Render(d.Text.Content))
		} else {
			b.WriteString(styles.text.Render(d.Text.Content))
		}
		b.WriteString("\n")
	}

	if d.Table.Visible {
		b.WriteString(renderTable(d.Table, styles))
	}

	if d.Plot.Visible {
		for _, img := range d.Plot.Images {
			line := "[plot] PNG image"
			if data, err := PlotBytes(img); err == nil {
				line = fmt.Sprintf("[plot] PNG image, %d bytes", len(data))
			}
			b.WriteString(styles.plot.Render(line))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// PlotBytes decodes the PNG carried by an image's data URI. Line breaks,
// missing padding and the URL-safe alphabet are tolerated.
func PlotBytes(img Image) ([]byte, error) {
	encoded, ok := strings.CutPrefix(img.Src, PNGDataURIPrefix)
	if !ok {
		return nil, fmt.Errorf("not a png data uri")
	}
	encoded = strings.TrimRight(strings.Join(strings.Fields(encoded), ""), "=")

	var lastErr error
	for _, enc := range []*base64.Encoding{base64.RawStdEncoding, base64.RawURLEncoding} {
		data, err := enc.DecodeString(encoded)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func renderTable(t TableRegion, styles terminalStyles) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(flatten(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := lipgloss.Width(flatten(cell)); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Width(widths[i]).Render(flatten(cell))
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteString("\n")
	}

	writeRow(t.Headers, styles.header)
	for _, row := range t.Rows {
		writeRow(row, styles.cell)
	}
	return b.String()
}

// flatten keeps a cell on one line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
