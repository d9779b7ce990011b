package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/miniapps/internal/miniapp"
	"github.com/jask/miniapps/internal/prefs"
	"github.com/jask/miniapps/internal/service"
	"github.com/jask/miniapps/internal/widgets"
)

// header takes one line, the footer two (status and help).
const chromeHeight = 3

// App is the bubbletea model hosting the roster.
type App struct {
	ctx      context.Context
	services Services
	prefs    prefs.Prefs
	host     *Host
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
	totals   service.Totals
	status   string
	modal    modalState
}

// Services are optional; a nil member disables its feature.
type Services struct {
	Results     *service.ResultsService
	Maintenance *service.MaintenanceService
	Prefs       *prefs.Store
}

type modalState string

const (
	modalNone         modalState = ""
	modalConfirmReset modalState = "confirmReset"
)

func New(ctx context.Context, roster []miniapp.MiniApp, services Services, p prefs.Prefs) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	mode := miniapp.ParseDisplayMode(p.DisplayMode)
	p.DisplayMode = mode.String()
	return &App{
		ctx:      ctx,
		services: services,
		prefs:    p,
		host:     NewHost(roster, mode),
		keys:     newKeyMap(),
		help:     help.New(),
		viewport: viewport.New(0, 0),
	}
}

// Host exposes the roster container.
func (a *App) Host() *Host { return a.host }

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.host.Init(), a.loadTotals())
}

func (a *App) loadTotals() tea.Cmd {
	if a.services.Results == nil {
		return nil
	}
	return func() tea.Msg {
		t, err := a.services.Results.Totals(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return totalsMsg{totals: t}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.host.Resize(m.Height - chromeHeight)
		a.viewport.Width = m.Width
		a.viewport.Height = max(1, m.Height-chromeHeight)
		a.help.Width = m.Width
	case tea.KeyMsg:
		cmd = a.handleKey(m)
	case miniapp.RoundFinishedMsg:
		cmd = a.recordCmd(m)
	case miniapp.LocationChangedMsg:
		a.prefs.LastCity = m.City
		a.status = "weather: " + m.City
		cmd = a.savePrefsCmd("weather: " + m.City + " (remembered)")
	case totalsMsg:
		a.totals = m.totals
		if m.status != "" {
			a.status = m.status
		}
	case statusMsg:
		a.status = string(m)
	case errMsg:
		log.Printf("error: %v", m.error)
		a.status = "error: " + m.Error()
	default:
		if routed, c := a.host.Route(msg); routed {
			cmd = c
		} else {
			cmd = a.host.UpdateActive(msg)
		}
	}
	a.refresh()
	return a, cmd
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if key.Matches(m, a.keys.ForceQ) {
		return tea.Quit
	}
	if a.modal != modalNone {
		return a.handleModalKey(m)
	}
	if handled, cmd := a.host.HandleKey(m); handled {
		a.status = ""
		if a.host.Focused() >= 0 {
			a.status = "using " + a.host.SelectedTitle()
		}
		return cmd
	}
	if a.host.Focused() >= 0 {
		return a.host.UpdateActive(m)
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.Compact):
		return a.setMode(miniapp.Compact)
	case key.Matches(m, a.keys.Medium):
		return a.setMode(miniapp.Medium)
	case key.Matches(m, a.keys.Full):
		return a.setMode(miniapp.Full)
	case key.Matches(m, a.keys.Cycle):
		return a.setMode(a.host.Mode().Next())
	case key.Matches(m, a.keys.Reset):
		if a.services.Maintenance != nil {
			a.modal = modalConfirmReset
		}
	}
	return nil
}

func (a *App) handleModalKey(m tea.KeyMsg) tea.Cmd {
	switch a.modal {
	case modalConfirmReset:
		switch {
		case key.Matches(m, a.keys.Confirm):
			a.modal = modalNone
			return a.resetCmd()
		case key.Matches(m, a.keys.Cancel):
			a.modal = modalNone
		}
	}
	return nil
}

func (a *App) setMode(mode miniapp.DisplayMode) tea.Cmd {
	if mode == a.host.Mode() {
		return nil
	}
	a.host.SetDisplayMode(mode)
	a.prefs.DisplayMode = mode.String()
	a.status = "display mode: " + mode.String()
	return a.savePrefsCmd("display mode: " + mode.String() + " (saved)")
}

// commands
func (a *App) recordCmd(m miniapp.RoundFinishedMsg) tea.Cmd {
	if a.services.Results == nil {
		return nil
	}
	return func() tea.Msg {
		err := a.services.Results.Record(a.ctx, service.RoundFinished{
			AppID:    m.AppID,
			Game:     m.Game,
			Outcome:  m.Outcome,
			Attempts: m.Attempts,
		})
		if err != nil {
			return errMsg{err}
		}
		t, err := a.services.Results.Totals(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return totalsMsg{totals: t, status: fmt.Sprintf("%s: %s", m.Game, m.Outcome)}
	}
}

func (a *App) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if a.services.Maintenance == nil {
			return errMsg{fmt.Errorf("maintenance not configured")}
		}
		cleared, err := a.services.Maintenance.Reset(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return totalsMsg{status: cleared.String()}
	}
}

// savePrefsCmd writes the current prefs and reports done once they are on disk.
func (a *App) savePrefsCmd(done string) tea.Cmd {
	if a.services.Prefs == nil {
		return nil
	}
	p := a.prefs
	store := a.services.Prefs
	return func() tea.Msg {
		if err := store.Save(p); err != nil {
			return errMsg{fmt.Errorf("save prefs: %w", err)}
		}
		return statusMsg(done)
	}
}

// refresh re-renders the slot list and keeps the selection on screen.
func (a *App) refresh() {
	if a.width <= 0 {
		return
	}
	a.viewport.SetContent(a.host.View(a.width))
	top := a.host.SlotOffset(a.host.Selected())
	bottom := top + a.host.CurrentSlotHeight()
	switch {
	case top < a.viewport.YOffset:
		a.viewport.SetYOffset(top)
	case bottom > a.viewport.YOffset+a.viewport.Height:
		a.viewport.SetYOffset(bottom - a.viewport.Height)
	}
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "loading…"
	}
	body := a.viewport.View()
	if a.modal == modalConfirmReset {
		body = widgets.RenderPopup(body, "Clear the results history and weather cache?\n\ny confirm • n cancel", a.width, a.viewport.Height)
	}
	return strings.Join([]string{a.renderHeader(), body, a.renderStatus(), a.renderHelp()}, "\n")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(widgets.ColorAccent)

func (a *App) renderHeader() string {
	left := headerStyle.Render("Mini Apps")
	mode := widgets.InfoStyle.Render("[" + a.host.Mode().String() + "]")
	tally := widgets.MutedStyle.Render(a.totals.Summary())
	if latest := a.totals.Latest(); latest != "" && a.host.Mode() == miniapp.Full {
		tally += "  " + widgets.InfoStyle.Render(latest)
	}
	return widgets.PadRight(left+" "+mode+"  "+tally, a.width)
}

func (a *App) renderStatus() string {
	if strings.HasPrefix(a.status, "error:") {
		return widgets.PadRight(widgets.ErrorStyle.Render(a.status), a.width)
	}
	return widgets.PadRight(a.status, a.width)
}

func (a *App) renderHelp() string {
	if h := a.host.ActiveHelp(); h != "" {
		return widgets.PadRight(widgets.MutedStyle.Render(h+" • esc back"), a.width)
	}
	return widgets.PadRight(a.help.View(a.keys), a.width)
}

type totalsMsg struct {
	totals service.Totals
	status string
}

type statusMsg string

type errMsg struct{ error }
