package miniapp

import tea "github.com/charmbracelet/bubbletea"

// Targeted messages are delivered only to the roster entry whose ID matches.
type Targeted interface {
	TargetID() string
}

// RoundFinishedMsg is emitted by the games when a round ends. The host
// records it in the results journal.
type RoundFinishedMsg struct {
	AppID    string
	Game     string
	Outcome  string
	Attempts int
}

// LocationChangedMsg is emitted after a successful weather lookup for a
// place the user typed.
type LocationChangedMsg struct {
	AppID string
	City  string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
