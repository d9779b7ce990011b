package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func requireCanvas(t *testing.T, s string, width, height int) {
	t.Helper()
	lines := strings.Split(s, "\n")
	require.Len(t, lines, height)
	for i, l := range lines {
		require.Equal(t, width, ansi.StringWidth(l), "line %d: %q", i, l)
	}
}

func TestFitPadsAndClips(t *testing.T) {
	out := Fit("abcdef\nxy\nthird\nfourth", 4, 3)
	require.Equal(t, "abcd\nxy  \nthir", ansi.Strip(out))
	requireCanvas(t, Fit("", 5, 2), 5, 2)
	require.Equal(t, "", PadRight("abc", 0))
}

func TestBoxRendersExactSlot(t *testing.T) {
	for _, h := range []int{1, 2, 3, 7} {
		out := Box{Title: "Calculator", Content: "0\n7 8 9 /", Selected: true}.Render(30, h)
		requireCanvas(t, out, 30, h)
	}
	require.Equal(t, "", Box{}.Render(0, 4))
}

func TestBoxTitleSitsInTopEdge(t *testing.T) {
	out := ansi.Strip(Box{Title: "Calculator", Content: "0"}.Render(20, 3))
	lines := strings.Split(out, "\n")
	require.Equal(t, "╭─ Calculator ─────╮", lines[0])
	require.Equal(t, "│ 0                │", lines[1])

	narrow := ansi.Strip(Box{Title: "Guess the Number", Content: "x"}.Render(10, 3))
	requireCanvas(t, narrow, 10, 3)
	require.True(t, strings.HasSuffix(strings.Split(narrow, "\n")[0], "…╮"))
}

func TestBoxCompactMarker(t *testing.T) {
	sel := ansi.Strip(Box{Content: "# Calculator", Selected: true}.Render(20, 1))
	require.True(t, strings.HasPrefix(sel, "▸ # Calculator"), sel)
	plain := ansi.Strip(Box{Content: "# Calculator"}.Render(20, 1))
	require.True(t, strings.HasPrefix(plain, "  # Calculator"), plain)
}

func TestHStackSplitsWidth(t *testing.T) {
	out := HStack{Widgets: []Widget{Text("left"), Text("right")}, Gap: 1}.Render(11, 1)
	require.Equal(t, "left  right", ansi.Strip(out))
	require.Equal(t, []int{4, 6}, splitWidths(10, 2, []float64{1, 2}))
	require.Equal(t, []int{4, 3, 3}, splitWidths(10, 3, nil))
}

func TestRenderPopupKeepsCanvasSize(t *testing.T) {
	base := Fit("background", 40, 10)
	out := RenderPopup(base, "Clear history? y/n", 40, 10)
	requireCanvas(t, out, 40, 10)
	require.Contains(t, ansi.Strip(out), "Clear history? y/n")
	require.True(t, strings.HasPrefix(ansi.Strip(out), "background"))
}
