package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kirides/dxcaps/fields"
)

const (
	colorLabel   = "#BD93F9"
	colorName    = "#8BE9FD"
	colorMuted   = "#6272A4"
	colorPresent = "#50FA7B"
)

// NoDevices is printed in place of an empty tree.
const NoDevices = "no devices found"

type styles struct {
	title, label, name, value, muted, present lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(colorLabel)).Padding(0, 1),
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorLabel)),
		name:    r.NewStyle().Foreground(lipgloss.Color(colorName)),
		value:   r.NewStyle(),
		muted:   r.NewStyle().Foreground(lipgloss.Color(colorMuted)),
		present: r.NewStyle().Foreground(lipgloss.Color(colorPresent)),
	}
}

// WriteText prints the report as an indented outline. Colors are only
// used when w is a terminal.
func WriteText(w io.Writer, r *Report) error {
	s := newStyles(lipgloss.NewRenderer(w))
	var b strings.Builder

	b.WriteString(s.title.Render(header(r.Header)))
	b.WriteString("\n\n")
	if r.Empty() {
		b.WriteString(s.muted.Render(NoDevices))
		b.WriteString("\n")
	} else {
		writeEntry(&b, s, r.Root, 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func header(h Header) string {
	lines := []string{"Report " + h.ID, "Generated " + h.Generated.Format("2006-01-02 15:04:05 MST") + " (" + h.View + " fields)"}
	if h.Hostname != "" {
		lines = append(lines, "Host "+h.Hostname)
	}
	if h.Platform != "" || h.OS != "" {
		sys := strings.TrimSpace(fmt.Sprintf("%s %s %s", h.OS, h.Platform, h.PlatformVersion))
		if h.KernelVersion != "" {
			sys += " (kernel " + h.KernelVersion + ")"
		}
		lines = append(lines, sys)
	}
	if h.CPU != "" {
		lines = append(lines, "CPU "+h.CPU)
	}
	if h.MemoryTotal > 0 {
		lines = append(lines, fmt.Sprintf("Memory %d MB", h.MemoryTotal/(1024*1024)))
	}
	return strings.Join(lines, "\n")
}

func writeEntry(b *strings.Builder, s styles, e Entry, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent + s.label.Render(e.Label) + "\n")
	if e.Table != nil {
		writeTable(b, s, *e.Table, indent+"  ")
	}
	for _, c := range e.Children {
		writeEntry(b, s, c, depth+1)
	}
}

func writeTable(b *strings.Builder, s styles, t fields.Table, indent string) {
	lines := t.Lines()
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.Name))
	}
	name := s.name.Width(width + 2)
	for i, l := range lines {
		v := s.value
		switch t.Rows[i].Class {
		case fields.OptionalPresent:
			v = s.present
		case fields.OptionalAbsent, fields.NotApplicable:
			v = s.muted
		}
		b.WriteString(indent + name.Render(l.Name+":") + v.Render(l.Value) + "\n")
	}
}
