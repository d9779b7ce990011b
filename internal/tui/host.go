package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/miniapps/internal/miniapp"
	"github.com/jask/miniapps/internal/widgets"
)

// Host owns the fixed roster and the current display mode. It sizes slots,
// tracks selection and focus, and routes messages to entries.
type Host struct {
	apps      []miniapp.MiniApp
	keys      keyMap
	mode      miniapp.DisplayMode
	available int
	slot      int
	selected  int
	focused   int
}

// NewHost applies mode to every entry before the first render.
func NewHost(apps []miniapp.MiniApp, mode miniapp.DisplayMode) *Host {
	h := &Host{apps: apps, keys: newKeyMap(), focused: -1, available: 1}
	h.SetDisplayMode(mode)
	return h
}

func (h *Host) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(h.apps))
	for _, app := range h.apps {
		if cmd := app.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Apps returns the roster in slot order.
func (h *Host) Apps() []miniapp.MiniApp {
	out := make([]miniapp.MiniApp, len(h.apps))
	copy(out, h.apps)
	return out
}

func (h *Host) Mode() miniapp.DisplayMode { return h.mode }
func (h *Host) Selected() int             { return h.selected }
func (h *Host) Focused() int              { return h.focused }

// SlotHeight is floor(available × fraction), at least one line.
func (h *Host) SlotHeight(mode miniapp.DisplayMode) int {
	return max(1, int(math.Floor(float64(h.available)*mode.Fraction())))
}

// CurrentSlotHeight is the height every slot is rendered at right now.
func (h *Host) CurrentSlotHeight() int { return h.slot }

// Resize records the height left for slots and recomputes slot size.
func (h *Host) Resize(available int) {
	h.available = max(1, available)
	h.slot = h.SlotHeight(h.mode)
}

// SetDisplayMode broadcasts mode to every entry and toggles interactivity.
// Compact drops keyboard focus.
func (h *Host) SetDisplayMode(mode miniapp.DisplayMode) {
	if !mode.Known() {
		mode = miniapp.Compact
	}
	h.mode = mode
	h.slot = h.SlotHeight(mode)
	interactive := mode != miniapp.Compact
	for _, app := range h.apps {
		app.UpdateDisplayMode(mode)
		app.SetInteractive(interactive)
	}
	if !interactive {
		h.unfocus()
	}
}

// HandleKey deals with navigation. It reports false for keys that belong to
// the focused entry or to the app.
func (h *Host) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.apps) == 0 {
		return false, nil
	}
	if h.focused >= 0 {
		if key.Matches(msg, h.keys.Unfocus) {
			h.unfocus()
			return true, nil
		}
		return false, nil
	}
	switch {
	case key.Matches(msg, h.keys.Up):
		h.move(-1)
		return true, nil
	case key.Matches(msg, h.keys.Down):
		h.move(1)
		return true, nil
	case key.Matches(msg, h.keys.Focus):
		return true, h.focusSelected()
	default:
		return false, nil
	}
}

// UpdateActive passes msg to the focused entry, if any.
func (h *Host) UpdateActive(msg tea.Msg) tea.Cmd {
	if h.focused < 0 || h.focused >= len(h.apps) {
		return nil
	}
	return h.updateAt(h.focused, msg)
}

// Route delivers targeted messages to the entry with the matching id.
func (h *Host) Route(msg tea.Msg) (bool, tea.Cmd) {
	t, ok := msg.(miniapp.Targeted)
	if !ok {
		return false, nil
	}
	for i, app := range h.apps {
		if app.ID() == t.TargetID() {
			return true, h.updateAt(i, msg)
		}
	}
	return true, nil
}

func (h *Host) updateAt(i int, msg tea.Msg) tea.Cmd {
	next, cmd := h.apps[i].Update(msg)
	if next != nil {
		h.apps[i] = next
	}
	return cmd
}

func (h *Host) move(delta int) {
	if len(h.apps) <= 1 {
		return
	}
	h.selected = (h.selected + delta + len(h.apps)) % len(h.apps)
}

func (h *Host) focusSelected() tea.Cmd {
	if h.selected < 0 || h.selected >= len(h.apps) {
		return nil
	}
	app := h.apps[h.selected]
	if !app.Interactive() {
		return nil
	}
	h.focused = h.selected
	return app.OnFocus()
}

func (h *Host) unfocus() {
	if h.focused < 0 || h.focused >= len(h.apps) {
		h.focused = -1
		return
	}
	h.apps[h.focused].OnBlur()
	h.focused = -1
}

// ActiveHelp is the focused entry's key hint.
func (h *Host) ActiveHelp() string {
	if h.focused < 0 || h.focused >= len(h.apps) {
		return ""
	}
	return h.apps[h.focused].Help()
}

// SelectedTitle names the selected entry.
func (h *Host) SelectedTitle() string {
	if h.selected < 0 || h.selected >= len(h.apps) {
		return ""
	}
	return h.apps[h.selected].Title()
}

// SlotOffset is the first line of slot i in the rendered list.
func (h *Host) SlotOffset(i int) int { return i * h.slot }

// View renders each entry once into its slot, top to bottom.
func (h *Host) View(width int) string {
	if width <= 0 || len(h.apps) == 0 {
		return ""
	}
	innerW, innerH := width-4, h.slot-2
	if h.slot < 3 || width < 6 {
		innerW, innerH = width-2, h.slot
	}
	parts := make([]string, len(h.apps))
	for i, app := range h.apps {
		parts[i] = widgets.Box{
			Title:    h.slotTitle(app),
			Content:  app.View(max(1, innerW), max(1, innerH)),
			Selected: i == h.selected,
			Focused:  i == h.focused,
			Dim:      h.focused >= 0 && i != h.focused,
		}.Render(width, h.slot)
	}
	return strings.Join(parts, "\n")
}

// slotTitle labels the border of entries that do not draw their own title.
// Compact slots have no border to carry it.
func (h *Host) slotTitle(app miniapp.MiniApp) string {
	if h.mode == miniapp.Compact {
		return ""
	}
	for _, e := range app.VisibleElements() {
		if e == miniapp.ElemTitle {
			return ""
		}
	}
	return app.Title()
}
