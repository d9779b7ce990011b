package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box is the chrome around one roster slot. Slots shorter than three lines
// get a one-column marker instead of a border; taller ones carry Title in
// the top edge.
type Box struct {
	Title    string
	Content  string
	Selected bool
	Focused  bool
	Dim      bool
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	content := b.Content
	if b.Dim {
		content = MutedStyle.Render(content)
	}
	if height < 3 || width < 6 {
		lines := strings.Split(content, "\n")
		for i := range lines {
			prefix := "  "
			if i == 0 {
				prefix = b.marker() + " "
			}
			lines[i] = prefix + lines[i]
		}
		return Fit(strings.Join(lines, "\n"), width, height)
	}

	border := ColorBorder
	switch {
	case b.Focused:
		border = ColorFocus
	case b.Selected:
		border = ColorAccent
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2)
	out := style.Render(Fit(content, width-4, height-2))
	if b.Title == "" {
		return out
	}
	lines := strings.SplitN(out, "\n", 2)
	lines[0] = b.topEdge(width, border)
	return strings.Join(lines, "\n")
}

func (b Box) topEdge(width int, color lipgloss.TerminalColor) string {
	edge := lipgloss.NewStyle().Foreground(color)
	rb := lipgloss.RoundedBorder()
	inner := width - 2
	label := ansi.Truncate(" "+b.Title+" ", inner-1, "…")
	fill := inner - 1 - ansi.StringWidth(label)
	return edge.Render(rb.TopLeft+rb.Top) + TitleStyle.Render(label) + edge.Render(strings.Repeat(rb.Top, fill)+rb.TopRight)
}

func (b Box) marker() string {
	switch {
	case b.Focused:
		return lipgloss.NewStyle().Foreground(ColorFocus).Render("●")
	case b.Selected:
		return lipgloss.NewStyle().Foreground(ColorAccent).Render("▸")
	default:
		return " "
	}
}
