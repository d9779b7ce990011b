package miniapp

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/miniapps/internal/tictactoe"
	"github.com/jask/miniapps/internal/widgets"
)

var ticTacToePolicy = policy{
	Compact: {ElemIcon, ElemTitle},
	Medium:  {ElemTurn, ElemBoard},
	Full:    {ElemTurn, ElemBoard, ElemScore},
}

// TicTacToe drives a 3x3 board with a cursor or the 1-9 keys.
type TicTacToe struct {
	base
	engine *tictactoe.Engine
	row    int
	col    int
}

func NewTicTacToe() *TicTacToe {
	return &TicTacToe{
		base:   newBase(KindTicTacToe, "Tic-Tac-Toe", ticTacToePolicy),
		engine: tictactoe.New(tictactoe.Cross),
		row:    1,
		col:    1,
	}
}

func (t *TicTacToe) Engine() *tictactoe.Engine { return t.engine }

// Cursor returns the highlighted cell.
func (t *TicTacToe) Cursor() (row, col int) { return t.row, t.col }

func (t *TicTacToe) Init() tea.Cmd { return nil }

func (t *TicTacToe) Update(msg tea.Msg) (MiniApp, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !t.interactive {
		return t, nil
	}
	key := km.String()
	switch key {
	case "up", "k":
		t.row = (t.row + tictactoe.Size - 1) % tictactoe.Size
	case "down", "j":
		t.row = (t.row + 1) % tictactoe.Size
	case "left", "h":
		t.col = (t.col + tictactoe.Size - 1) % tictactoe.Size
	case "right", "l":
		t.col = (t.col + 1) % tictactoe.Size
	case "enter", " ":
		return t, t.place(t.row*tictactoe.Size + t.col)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		t.row, t.col = idx/tictactoe.Size, idx%tictactoe.Size
		return t, t.place(idx)
	case "r":
		t.engine.Reset()
	}
	return t, nil
}

// place ignores rejected moves; only a finished round produces a command.
func (t *TicTacToe) place(index int) tea.Cmd {
	status, err := t.engine.Place(index)
	if err != nil {
		return nil
	}
	switch status {
	case tictactoe.Won:
		return emit(RoundFinishedMsg{AppID: t.id, Game: string(t.kind), Outcome: t.engine.Winner().String()})
	case tictactoe.Draw:
		return emit(RoundFinishedMsg{AppID: t.id, Game: string(t.kind), Outcome: "draw"})
	default:
		return nil
	}
}

func (t *TicTacToe) Help() string {
	return "arrows move • enter/1-9 place • r new round"
}

func (t *TicTacToe) View(width, height int) string {
	if t.shows(ElemTitle) {
		return identity("#", t.title)
	}
	lines := make([]string, 0, 8)
	if t.shows(ElemTurn) {
		lines = append(lines, t.turnLine())
	}
	if t.shows(ElemBoard) {
		lines = append(lines, t.renderBoard()...)
	}
	if t.shows(ElemScore) {
		lines = append(lines, widgets.MutedStyle.Render(fmt.Sprintf("X %d : %d O",
			t.engine.Score(tictactoe.Cross), t.engine.Score(tictactoe.Nought))))
	}
	return strings.Join(lines, "\n")
}

func (t *TicTacToe) turnLine() string {
	switch t.engine.Status() {
	case tictactoe.Won:
		return widgets.GoodStyle.Render(t.engine.Winner().String() + " wins! r for a new round")
	case tictactoe.Draw:
		return widgets.InfoStyle.Render("Draw! r for a new round")
	default:
		return "Turn: " + t.engine.Turn().String()
	}
}

func (t *TicTacToe) renderBoard() []string {
	cursor := lipgloss.NewStyle().Reverse(true)
	rows := make([]string, 0, tictactoe.Size*2-1)
	for r := 0; r < tictactoe.Size; r++ {
		cells := make([]string, tictactoe.Size)
		for c := 0; c < tictactoe.Size; c++ {
			mark := t.engine.Cell(r, c).String()
			if mark == "" {
				mark = "·"
			}
			cell := " " + mark + " "
			if t.interactive && r == t.row && c == t.col {
				cell = cursor.Render(cell)
			}
			cells[c] = cell
		}
		rows = append(rows, strings.Join(cells, "│"))
		if r < tictactoe.Size-1 {
			rows = append(rows, "───┼───┼───")
		}
	}
	return rows
}
