package domain

import "fmt"

// Game is the rules engine of one table. It is not safe for concurrent use;
// hosts that share it between goroutines hold one lock around every call.
type Game struct {
	config        GameConfig
	board         *Board
	currentPlayer PlayerID
	status        GameStatus
	winner        PlayerID
	winningLine   []Move
	history       []Move
	scores        ScoreBoard
}

// NewGame fills zero values with defaults, validates the result and returns
// a fresh game. No game is produced when the configuration is rejected.
func NewGame(config GameConfig) (*Game, error) {
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Game{
		config:        config,
		board:         NewBoard(config.Rows, config.Cols),
		currentPlayer: Player1,
		status:        StatusActive,
		winner:        Empty,
	}, nil
}

// ApplyMove drops the current player's disk in column. Every error leaves
// the game exactly as it was.
func (g *Game) ApplyMove(column int) (MoveResult, error) {
	if column < 0 || column >= g.board.Cols() {
		return MoveResult{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidColumn, column, g.board.Cols())
	}

	if g.status != StatusActive {
		return MoveResult{}, ErrGameOver
	}

	player := g.currentPlayer
	row, err := g.board.DropDisk(column, player)
	if err != nil {
		return MoveResult{}, err
	}

	move := Move{Row: row, Col: column, Player: player}
	g.history = append(g.history, move)

	if line := WinningLine(g.board, row, column); line != nil {
		g.status = StatusWon
		g.winner = player
		g.winningLine = line
		g.scores.increment(player)
	} else if g.board.IsFull() {
		g.status = StatusDraw
	} else {
		g.currentPlayer = player.Opponent()
	}

	return MoveResult{
		Move:        move,
		Status:      g.status,
		Winner:      g.winner,
		NextPlayer:  g.currentPlayer,
		WinningLine: g.WinningLine(),
	}, nil
}

// UndoLastMove takes back the most recent move and gives the turn back to
// its author. Undoing the winning move also takes back the point it scored.
func (g *Game) UndoLastMove() (Move, error) {
	if len(g.history) == 0 {
		return Move{}, ErrNoHistory
	}

	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.board.Clear(last.Row, last.Col)

	if g.status == StatusWon {
		g.scores.decrement(g.winner)
	}

	g.currentPlayer = last.Player
	g.status = StatusActive
	g.winner = Empty
	g.winningLine = nil

	return last, nil
}

// Reset starts a new round on the same configuration. Scores are kept.
func (g *Game) Reset() {
	g.board.Reset()
	g.history = nil
	g.currentPlayer = Player1
	g.status = StatusActive
	g.winner = Empty
	g.winningLine = nil
}

func (g *Game) Config() GameConfig { return g.config }

func (g *Game) Players() Players { return g.config.Players }

func (g *Game) Rows() int { return g.board.Rows() }

func (g *Game) Cols() int { return g.board.Cols() }

func (g *Game) Cell(row, col int) PlayerID { return g.board.At(row, col) }

func (g *Game) Cells() [][]PlayerID { return g.board.Cells() }

// Board returns a copy; mutating it does not affect the game.
func (g *Game) Board() *Board { return g.board.Copy() }

func (g *Game) CurrentPlayer() PlayerID { return g.currentPlayer }

func (g *Game) Status() GameStatus { return g.status }

func (g *Game) Winner() PlayerID { return g.winner }

func (g *Game) IsFinished() bool {
	return g.status == StatusWon || g.status == StatusDraw
}

func (g *Game) WinningLine() []Move {
	if g.winningLine == nil {
		return nil
	}
	line := make([]Move, len(g.winningLine))
	copy(line, g.winningLine)
	return line
}

func (g *Game) History() []Move {
	history := make([]Move, len(g.history))
	copy(history, g.history)
	return history
}

func (g *Game) LastMove() (Move, bool) {
	if len(g.history) == 0 {
		return Move{}, false
	}
	return g.history[len(g.history)-1], true
}

func (g *Game) MoveCount() int { return len(g.history) }

func (g *Game) Scores() ScoreBoard { return g.scores }

// ValidMoves lists the columns that still accept a disk. It is empty once the game is over.
func (g *Game) ValidMoves() []int {
	if g.IsFinished() {
		return []int{}
	}
	return g.board.ValidMoves()
}
