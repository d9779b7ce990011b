package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/miniapps/internal/database"
	"github.com/jask/miniapps/internal/database/repository"
)

// RoundFinished describes a completed round reported by a widget.
type RoundFinished struct {
	AppID    string
	Game     string
	Outcome  string
	Attempts int
}

// recentRounds is how many rounds Totals carries for the full-mode header.
const recentRounds = 3

// Totals summarises the journal for the header line.
type Totals struct {
	Rounds int
	ByGame map[string]map[string]int // game -> outcome -> count
	Recent []RoundFinished           // newest first
}

// Summary renders totals compactly, e.g. "12 rounds (guessnumber 3, tictactoe 9)".
func (t Totals) Summary() string {
	if t.Rounds == 0 {
		return "no rounds yet"
	}
	games := make([]string, 0, len(t.ByGame))
	for g := range t.ByGame {
		games = append(games, g)
	}
	sort.Strings(games)
	parts := make([]string, 0, len(games))
	for _, g := range games {
		n := 0
		for _, c := range t.ByGame[g] {
			n += c
		}
		parts = append(parts, fmt.Sprintf("%s %d", g, n))
	}
	return fmt.Sprintf("%d rounds (%s)", t.Rounds, strings.Join(parts, ", "))
}

// Latest renders the newest rounds, e.g. "last: guessnumber win in 4, tictactoe X".
func (t Totals) Latest() string {
	if len(t.Recent) == 0 {
		return ""
	}
	parts := make([]string, 0, len(t.Recent))
	for _, r := range t.Recent {
		p := r.Game + " " + r.Outcome
		if r.Attempts > 0 {
			p += fmt.Sprintf(" in %d", r.Attempts)
		}
		parts = append(parts, p)
	}
	return "last: " + strings.Join(parts, ", ")
}

// ResultsService appends finished rounds to the journal.
type ResultsService struct {
	Results *repository.ResultRepo
	Now     func() time.Time
}

func (s *ResultsService) Record(ctx context.Context, r RoundFinished) error {
	if s.Results == nil {
		return fmt.Errorf("results: repo not configured")
	}
	if strings.TrimSpace(r.Game) == "" || strings.TrimSpace(r.Outcome) == "" {
		return fmt.Errorf("results: game and outcome required")
	}
	now := database.Now
	if s.Now != nil {
		now = s.Now
	}
	row := repository.RoundResult{
		ID:        uuid.NewString(),
		AppID:     r.AppID,
		Game:      r.Game,
		Outcome:   r.Outcome,
		Attempts:  r.Attempts,
		CreatedAt: now().UTC().Truncate(time.Second),
	}
	if err := s.Results.Insert(ctx, row); err != nil {
		return fmt.Errorf("record %s result: %w", r.Game, err)
	}
	return nil
}

func (s *ResultsService) Totals(ctx context.Context) (Totals, error) {
	if s.Results == nil {
		return Totals{}, fmt.Errorf("results: repo not configured")
	}
	counts, err := s.Results.Counts(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("load totals: %w", err)
	}
	t := Totals{ByGame: map[string]map[string]int{}}
	for _, c := range counts {
		if t.ByGame[c.Game] == nil {
			t.ByGame[c.Game] = map[string]int{}
		}
		t.ByGame[c.Game][c.Outcome] += c.Count
		t.Rounds += c.Count
	}
	recent, err := s.Results.Recent(ctx, recentRounds)
	if err != nil {
		return Totals{}, fmt.Errorf("load recent rounds: %w", err)
	}
	for _, r := range recent {
		t.Recent = append(t.Recent, RoundFinished{AppID: r.AppID, Game: r.Game, Outcome: r.Outcome, Attempts: r.Attempts})
	}
	return t, nil
}
