package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centres popup in a bordered card over base.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(1, 2).
		Render(popup)
	overlay := Fit(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), width, height)
	baseLines := fitLines(base, height)
	overlayLines := strings.Split(overlay, "\n")
	out := make([]string, height)
	for i := 0; i < height; i++ {
		baseLine := PadRight(baseLines[i], width)
		start, end, ok := segmentBounds(overlayLines[i], width)
		if !ok {
			out[i] = baseLine
			continue
		}
		left := ansi.Truncate(baseLine, start, "")
		segment := ansi.Truncate(dropColumns(overlayLines[i], start), end-start, "")
		right := dropColumns(baseLine, end)
		out[i] = PadRight(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

func segmentBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	for start < len(trimmed) && trimmed[start] == ' ' {
		start++
	}
	end = ansi.StringWidth(trimmed)
	return start, end, start < end
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
