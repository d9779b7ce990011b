package miniapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/miniapps/internal/service"
	"github.com/jask/miniapps/internal/widgets"
)

var weatherPolicy = policy{
	Compact: {ElemIcon, ElemTemperature},
	Medium:  {ElemTitle, ElemIcon, ElemTemperature, ElemCoordinates, ElemSearch},
	Full:    {ElemTitle, ElemIcon, ElemTemperature, ElemCoordinates, ElemSearch, ElemDetails},
}

// WeatherLookup is satisfied by service.ForecastService.
type WeatherLookup interface {
	Lookup(ctx context.Context, query string) (service.Report, error)
}

type weatherMsg struct {
	id     string
	seq    int
	query  string
	typed  bool
	report service.Report
	err    error
}

func (m weatherMsg) TargetID() string { return m.id }

// Weather shows the current temperature for one place.
type Weather struct {
	base
	ctx     context.Context
	lookup  WeatherLookup
	city    string
	seq     int
	loading bool
	report  *service.Report
	err     error
	search  textinput.Model
}

func NewWeather(ctx context.Context, lookup WeatherLookup, city string) *Weather {
	if ctx == nil {
		ctx = context.Background()
	}
	in := textinput.New()
	in.Placeholder = "city or lat,lon"
	in.Prompt = "/ "
	in.CharLimit = 64
	return &Weather{
		base:   newBase(KindWeather, "Weather", weatherPolicy),
		ctx:    ctx,
		lookup: lookup,
		city:   strings.TrimSpace(city),
		search: in,
	}
}

// City is the query shown, typed or configured.
func (w *Weather) City() string { return w.city }

// Report returns the last successful lookup, if any.
func (w *Weather) Report() *service.Report { return w.report }

func (w *Weather) Err() error { return w.err }

func (w *Weather) Loading() bool { return w.loading }

// Suggest offers names for tab completion in the search field.
func (w *Weather) Suggest(names []string) {
	w.search.ShowSuggestions = len(names) > 0
	w.search.SetSuggestions(names)
}

func (w *Weather) Init() tea.Cmd {
	return w.fetch(w.city, false)
}

// UpdateDisplayMode also drops the search field's focus when it is hidden.
func (w *Weather) UpdateDisplayMode(mode DisplayMode) {
	w.base.UpdateDisplayMode(mode)
	if !w.shows(ElemSearch) {
		w.search.Blur()
	}
}

func (w *Weather) OnBlur() { w.search.Blur() }

func (w *Weather) fetch(query string, typed bool) tea.Cmd {
	if w.lookup == nil || strings.TrimSpace(query) == "" {
		return nil
	}
	w.seq++
	w.loading = true
	id, seq, ctx, lookup := w.id, w.seq, w.ctx, w.lookup
	return func() tea.Msg {
		rep, err := lookup.Lookup(ctx, query)
		return weatherMsg{id: id, seq: seq, query: query, typed: typed, report: rep, err: err}
	}
}

func (w *Weather) Update(msg tea.Msg) (MiniApp, tea.Cmd) {
	switch m := msg.(type) {
	case weatherMsg:
		if m.id != w.id || m.seq != w.seq {
			return w, nil
		}
		w.loading = false
		if m.err != nil {
			w.err = m.err
			return w, nil
		}
		w.err = nil
		rep := m.report
		w.report = &rep
		if rep.Place.Name != "" {
			w.city = rep.Place.Name
		}
		if m.typed {
			return w, emit(LocationChangedMsg{AppID: w.id, City: w.city})
		}
		return w, nil
	case tea.KeyMsg:
		if !w.interactive {
			return w, nil
		}
		if w.search.Focused() {
			if m.Type == tea.KeyEnter {
				query := strings.TrimSpace(w.search.Value())
				w.search.Blur()
				w.search.SetValue("")
				return w, w.fetch(query, true)
			}
			var cmd tea.Cmd
			w.search, cmd = w.search.Update(m)
			return w, cmd
		}
		switch m.String() {
		case "/", "s":
			if w.shows(ElemSearch) {
				return w, w.search.Focus()
			}
		case "r":
			return w, w.fetch(w.city, false)
		}
	}
	return w, nil
}

func (w *Weather) Help() string {
	if w.search.Focused() {
		if w.search.ShowSuggestions {
			return "type a city • tab complete • enter search • esc leave"
		}
		return "type a city • enter search • esc leave"
	}
	return "/ search • r refresh"
}

func (w *Weather) icon() string {
	switch {
	case w.report == nil:
		return "☼"
	case w.report.Reading.TemperatureC <= 0:
		return "❄"
	case w.report.Reading.TemperatureC >= 20:
		return "☀"
	default:
		return "☁"
	}
}

func (w *Weather) temperature() string {
	switch {
	case w.loading:
		return "loading…"
	case w.err != nil:
		return widgets.ErrorStyle.Render("Error")
	case w.report == nil:
		return "--"
	default:
		return w.report.Reading.Temperature()
	}
}

func (w *Weather) View(width, height int) string {
	if w.mode == Compact {
		return widgets.HStack{
			Widgets: []widgets.Widget{widgets.Text(w.icon()), widgets.Text(w.temperature() + "  " + w.city)},
			Ratios:  []float64{1, 9},
			Gap:     1,
		}.Render(max(10, width), 1)
	}
	lines := make([]string, 0, 10)
	if w.shows(ElemTitle) {
		lines = append(lines, widgets.TitleStyle.Render(w.title))
	}
	if w.shows(ElemIcon) && w.shows(ElemTemperature) {
		lines = append(lines, w.icon()+"  "+w.temperature())
	}
	if w.shows(ElemCoordinates) {
		lines = append(lines, widgets.MutedStyle.Render(w.coordinates()))
	}
	if w.err != nil {
		lines = append(lines, widgets.ErrorStyle.Render(w.err.Error()))
	}
	if w.shows(ElemDetails) && w.report != nil {
		r := w.report.Reading
		source := "live"
		if w.report.Cached {
			source = "cached"
		}
		lines = append(lines,
			fmt.Sprintf("Timezone: %s", r.Timezone),
			fmt.Sprintf("Elevation: %.0f m", r.Elevation),
			fmt.Sprintf("Observed: %s (%s)", r.ObservedAt, source),
		)
	}
	if w.shows(ElemSearch) {
		lines = append(lines, w.search.View())
	}
	return strings.Join(lines, "\n")
}

func (w *Weather) coordinates() string {
	if w.report == nil {
		return w.city
	}
	return fmt.Sprintf("%s (%s)", w.report.Place.Name, w.report.Reading.At.String())
}
