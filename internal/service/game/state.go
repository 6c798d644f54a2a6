package game

import (
	"github.com/Rayou-Ryan/Puissance-4/internal/domain"
	"github.com/Rayou-Ryan/Puissance-4/internal/locale"
)

type PlayerView struct {
	ID    domain.PlayerID `json:"id"`
	Color string          `json:"color"`
	Label string          `json:"label"`
	Score int             `json:"score"`
}

// State is everything a renderer needs after a mutating call. Adapters draw
// from it instead of re-deriving anything from the raw board.
type State struct {
	TableID       string            `json:"tableId"`
	Rows          int               `json:"rows"`
	Cols          int               `json:"cols"`
	Board         [][]int           `json:"board"`
	Players       []PlayerView      `json:"players"`
	CurrentPlayer domain.PlayerID   `json:"currentPlayer"`
	Status        domain.GameStatus `json:"status"`
	Winner        domain.PlayerID   `json:"winner,omitempty"`
	LastMove      *domain.Move      `json:"lastMove,omitempty"`
	WinningLine   []domain.Move     `json:"winningLine,omitempty"`
	MoveCount     int               `json:"moveCount"`
	ValidMoves    []int             `json:"validMoves"`
	CanUndo       bool              `json:"canUndo"`
	Configuring   bool              `json:"configuring"`
	Message       string            `json:"message"`
	ScoreLine     string            `json:"scoreLine"`
	Locale        string            `json:"locale"`
}

func buildState(tableID string, g *domain.Game, configuring bool, tr *locale.Translator) State {
	players := g.Players()
	scores := g.Scores()
	p1, p2 := players.Get(domain.Player1), players.Get(domain.Player2)

	state := State{
		TableID: tableID,
		Rows:    g.Rows(),
		Cols:    g.Cols(),
		Board:   g.Board().Ints(),
		Players: []PlayerView{
			{ID: domain.Player1, Color: p1.Color, Label: p1.Label, Score: scores.Wins(domain.Player1)},
			{ID: domain.Player2, Color: p2.Color, Label: p2.Label, Score: scores.Wins(domain.Player2)},
		},
		CurrentPlayer: g.CurrentPlayer(),
		Status:        g.Status(),
		Winner:        g.Winner(),
		WinningLine:   g.WinningLine(),
		MoveCount:     g.MoveCount(),
		ValidMoves:    g.ValidMoves(),
		CanUndo:       g.MoveCount() > 0 && !configuring,
		Configuring:   configuring,
		ScoreLine:     tr.Score(p1.Label, scores.Wins(domain.Player1), p2.Label, scores.Wins(domain.Player2)),
		Locale:        tr.Tag().String(),
	}
	if last, ok := g.LastMove(); ok {
		state.LastMove = &last
	}

	switch {
	case configuring:
		state.Message = tr.Configuring()
		state.ValidMoves = []int{}
	case g.Status() == domain.StatusWon:
		state.Message = tr.Victory(players.Get(g.Winner()).Label)
	case g.Status() == domain.StatusDraw:
		state.Message = tr.Draw()
	default:
		state.Message = tr.TurnPrompt(players.Get(g.CurrentPlayer()).Label)
	}
	return state
}
