// Package miniapp defines the contract every hosted widget implements and
// the four widgets themselves.
package miniapp

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DisplayModeUpdatable reacts to density changes. Calls are idempotent and
// unknown modes are treated as Compact.
type DisplayModeUpdatable interface {
	UpdateDisplayMode(mode DisplayMode)
}

// MiniApp is one hosted widget. Implementations own their state exclusively
// and are only touched from the program's update loop.
type MiniApp interface {
	DisplayModeUpdatable
	ID() string
	Kind() Kind
	Title() string
	Mode() DisplayMode
	Init() tea.Cmd
	Update(msg tea.Msg) (MiniApp, tea.Cmd)
	View(width, height int) string
	SetInteractive(enabled bool)
	Interactive() bool
	VisibleElements() []Element
	Help() string
	OnFocus() tea.Cmd
	OnBlur()
}

// Element names a sub-view a widget may show.
type Element string

const (
	ElemIcon        Element = "icon"
	ElemTitle       Element = "title"
	ElemDisplay     Element = "display"
	ElemKeypad      Element = "keypad"
	ElemPending     Element = "pending"
	ElemHint        Element = "hint"
	ElemResult      Element = "result"
	ElemSlider      Element = "slider"
	ElemGuessButton Element = "guessButton"
	ElemAttempts    Element = "attempts"
	ElemWins        Element = "wins"
	ElemTurn        Element = "turn"
	ElemBoard       Element = "board"
	ElemScore       Element = "score"
	ElemTemperature Element = "temperature"
	ElemCoordinates Element = "coordinates"
	ElemSearch      Element = "search"
	ElemDetails     Element = "details"
)

// policy maps each known mode to the elements shown in it.
type policy map[DisplayMode][]Element

// base carries the bookkeeping shared by every widget.
type base struct {
	id          string
	kind        Kind
	title       string
	mode        DisplayMode
	interactive bool
	policy      policy
	visible     []Element
}

func newBase(kind Kind, title string, p policy) base {
	b := base{id: uuid.NewString(), kind: kind, title: title, policy: p}
	b.UpdateDisplayMode(Compact)
	return b
}

func (b *base) ID() string        { return b.id }
func (b *base) Kind() Kind        { return b.kind }
func (b *base) Title() string     { return b.title }
func (b *base) Mode() DisplayMode { return b.mode }

// UpdateDisplayMode replaces the visible set wholesale.
func (b *base) UpdateDisplayMode(mode DisplayMode) {
	if !mode.Known() {
		mode = Compact
	}
	b.mode = mode
	b.visible = append(b.visible[:0], b.policy[mode]...)
}

func (b *base) SetInteractive(enabled bool) { b.interactive = enabled }
func (b *base) Interactive() bool           { return b.interactive }

func (b *base) VisibleElements() []Element {
	out := make([]Element, len(b.visible))
	copy(out, b.visible)
	return out
}

func (b *base) shows(e Element) bool {
	for _, v := range b.visible {
		if v == e {
			return true
		}
	}
	return false
}

func (b *base) OnFocus() tea.Cmd { return nil }
func (b *base) OnBlur()          {}
