package miniapp

import (
	"context"
	"fmt"
	"strings"
)

// Kind names a widget variant.
type Kind string

const (
	KindCalculator  Kind = "calculator"
	KindGuessNumber Kind = "guessnumber"
	KindTicTacToe   Kind = "tictactoe"
	KindWeather     Kind = "weather"
)

// ParseKind accepts the roster names used in config files.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCalculator, KindGuessNumber, KindTicTacToe, KindWeather:
		return k, nil
	default:
		return "", fmt.Errorf("unknown mini-app %q", s)
	}
}

// Deps are the collaborators widgets may need.
type Deps struct {
	Ctx     context.Context
	Weather WeatherLookup
	City    string
	Places  []string // search suggestions for weather
	Draw    func() int
}

// New builds one widget of the given kind.
func New(kind Kind, deps Deps) (MiniApp, error) {
	switch kind {
	case KindCalculator:
		return NewCalculator(), nil
	case KindGuessNumber:
		return NewGuessNumber(deps.Draw), nil
	case KindTicTacToe:
		return NewTicTacToe(), nil
	case KindWeather:
		w := NewWeather(deps.Ctx, deps.Weather, deps.City)
		w.Suggest(deps.Places)
		return w, nil
	default:
		return nil, fmt.Errorf("unknown mini-app %q", kind)
	}
}

// NewRoster builds the ordered, fixed list of widgets named by kinds.
func NewRoster(kinds []string, deps Deps) ([]MiniApp, error) {
	out := make([]MiniApp, 0, len(kinds))
	for i, name := range kinds {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		app, err := New(kind, deps)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, nil
}
