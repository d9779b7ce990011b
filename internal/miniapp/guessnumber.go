package miniapp

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/miniapps/internal/guessnumber"
	"github.com/jask/miniapps/internal/widgets"
)

var guessPolicy = policy{
	Compact: {ElemIcon, ElemTitle},
	Medium:  {ElemHint, ElemResult, ElemSlider, ElemGuessButton, ElemAttempts},
	Full:    {ElemHint, ElemResult, ElemSlider, ElemGuessButton, ElemAttempts, ElemWins},
}

// GuessNumber wraps the guessing engine behind a slider.
type GuessNumber struct {
	base
	engine *guessnumber.Engine
	banner string
}

// NewGuessNumber takes the target source; nil draws uniformly.
func NewGuessNumber(draw func() int) *GuessNumber {
	return &GuessNumber{
		base:   newBase(KindGuessNumber, "Guess the Number", guessPolicy),
		engine: guessnumber.New(draw),
	}
}

func (g *GuessNumber) Engine() *guessnumber.Engine { return g.engine }

func (g *GuessNumber) Init() tea.Cmd { return nil }

func (g *GuessNumber) Update(msg tea.Msg) (MiniApp, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !g.interactive {
		return g, nil
	}
	switch km.String() {
	case "left", "h":
		g.engine.Adjust(-1)
	case "right", "l":
		g.engine.Adjust(1)
	case "down", "j", "pgdown":
		g.engine.Adjust(-10)
	case "up", "k", "pgup":
		g.engine.Adjust(10)
	case "home":
		g.engine.SetGuess(guessnumber.Min)
	case "end":
		g.engine.SetGuess(guessnumber.Max)
	case "enter", " ":
		return g, g.submit()
	}
	return g, nil
}

func (g *GuessNumber) submit() tea.Cmd {
	res := g.engine.Submit()
	if !res.Won() {
		g.banner = ""
		return nil
	}
	g.banner = fmt.Sprintf("Correct! It was %d, found after %d misses.", res.Guess, res.Attempts)
	return emit(RoundFinishedMsg{AppID: g.id, Game: string(g.kind), Outcome: "win", Attempts: res.Attempts})
}

func (g *GuessNumber) Help() string {
	return "←/→ ±1 • ↑/↓ ±10 • enter guess"
}

func (g *GuessNumber) View(width, height int) string {
	if g.shows(ElemTitle) {
		return identity("?", g.title)
	}
	lines := make([]string, 0, 6)
	if g.shows(ElemHint) {
		hint := g.engine.Hint()
		style := widgets.InfoStyle
		if g.banner != "" && g.engine.Attempts() == 0 {
			hint, style = g.banner, widgets.GoodStyle
		}
		lines = append(lines, style.Render(hint))
	}
	if g.shows(ElemResult) {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", g.engine.Guess())))
	}
	if g.shows(ElemSlider) {
		lines = append(lines, slider(g.engine.Guess(), max(10, width-8)))
	}
	if g.shows(ElemGuessButton) {
		button := "[ Guess ]"
		if g.interactive {
			button = lipgloss.NewStyle().Foreground(widgets.ColorAccent).Render(button)
		}
		lines = append(lines, button)
	}
	if g.shows(ElemAttempts) {
		lines = append(lines, fmt.Sprintf("Attempts: %d", g.engine.Attempts()))
	}
	if g.shows(ElemWins) {
		lines = append(lines, widgets.MutedStyle.Render(fmt.Sprintf("Rounds won: %d", g.engine.Wins())))
	}
	return strings.Join(lines, "\n")
}

// slider draws value on a track of width cells between the range labels.
func slider(value, width int) string {
	span := guessnumber.Max - guessnumber.Min
	pos := (value - guessnumber.Min) * (width - 1) / span
	track := []rune(strings.Repeat("─", width))
	track[pos] = '●'
	return fmt.Sprintf("%d %s %d", guessnumber.Min, string(track), guessnumber.Max)
}
