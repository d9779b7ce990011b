package miniapp

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/miniapps/internal/calculator"
	"github.com/jask/miniapps/internal/widgets"
)

var calculatorPolicy = policy{
	Compact: {ElemIcon, ElemTitle},
	Medium:  {ElemDisplay, ElemKeypad},
	Full:    {ElemDisplay, ElemKeypad, ElemPending},
}

var keypad = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
}

// Calculator wraps the accumulator engine.
type Calculator struct {
	base
	engine  *calculator.Engine
	pressed string
}

func NewCalculator() *Calculator {
	return &Calculator{
		base:   newBase(KindCalculator, "Calculator", calculatorPolicy),
		engine: calculator.New(),
	}
}

// Engine exposes the underlying state machine for read-only inspection.
func (c *Calculator) Engine() *calculator.Engine { return c.engine }

func (c *Calculator) Init() tea.Cmd { return nil }

func (c *Calculator) Update(msg tea.Msg) (MiniApp, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !c.interactive {
		return c, nil
	}
	key := km.String()
	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		c.engine.InputDigitOrDot(key)
	case "+", "-", "*", "/":
		c.engine.InputOperator(calculator.ParseOperator(key))
	case "=", "enter":
		// Missing operands leave the display untouched.
		_ = c.engine.Evaluate()
		key = "="
	case "backspace":
		c.engine.Backspace()
	case "c", "C", "delete":
		c.engine.Clear()
		key = "C"
	default:
		return c, nil
	}
	c.pressed = key
	return c, nil
}

func (c *Calculator) Help() string {
	return "0-9 . digits • + - * / op • enter = • backspace • c clear"
}

func (c *Calculator) View(width, height int) string {
	if c.shows(ElemTitle) {
		return identity("±", c.title)
	}
	var b strings.Builder
	if c.shows(ElemPending) {
		pending := c.engine.Pending()
		if pending == "" {
			pending = " "
		}
		b.WriteString(widgets.MutedStyle.Render(alignRight(pending, width)) + "\n")
	}
	if c.shows(ElemDisplay) {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(alignRight(c.engine.Current(), width)) + "\n")
	}
	if c.shows(ElemKeypad) {
		b.WriteString(c.renderKeypad())
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *Calculator) renderKeypad() string {
	hot := lipgloss.NewStyle().Foreground(widgets.ColorAccent).Bold(true)
	rows := make([]string, 0, len(keypad)+1)
	for _, row := range keypad {
		cells := make([]string, len(row))
		for i, k := range row {
			cell := "[" + k + "]"
			if k == c.pressed {
				cell = hot.Render(cell)
			}
			cells[i] = cell
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	reset := "[C]"
	if c.pressed == "C" {
		reset = hot.Render(reset)
	}
	rows = append(rows, reset)
	return strings.Join(rows, "\n")
}

func identity(icon, title string) string {
	return widgets.TitleStyle.Render(icon + " " + title)
}

func alignRight(s string, width int) string {
	if width <= len(s) {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
