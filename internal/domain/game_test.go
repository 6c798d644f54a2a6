package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, rows, cols int) *Game {
	t.Helper()
	cfg := DefaultGameConfig()
	cfg.Rows, cfg.Cols = rows, cols
	g, err := NewGame(cfg)
	require.NoError(t, err)
	return g
}

func playAll(t *testing.T, g *Game, columns ...int) MoveResult {
	t.Helper()
	var res MoveResult
	for i, col := range columns {
		var err error
		res, err = g.ApplyMove(col)
		require.NoErrorf(t, err, "move %d in column %d", i, col)
	}
	return res
}

type gameSnapshot struct {
	cells   [][]PlayerID
	history []Move
	current PlayerID
	status  GameStatus
	winner  PlayerID
	scores  ScoreBoard
}

func snapshot(g *Game) gameSnapshot {
	return gameSnapshot{
		cells:   g.Cells(),
		history: g.History(),
		current: g.CurrentPlayer(),
		status:  g.Status(),
		winner:  g.Winner(),
		scores:  g.Scores(),
	}
}

func TestNewGameDefaults(t *testing.T) {
	g, err := NewGame(GameConfig{})
	require.NoError(t, err)

	assert.Equal(t, DefaultRows, g.Rows())
	assert.Equal(t, DefaultColumns, g.Cols())
	assert.Equal(t, Player1, g.CurrentPlayer())
	assert.Equal(t, StatusActive, g.Status())
	assert.Equal(t, Empty, g.Winner())
	assert.Empty(t, g.History())
	assert.Equal(t, 0, g.Scores().Total())
	assert.Equal(t, "red", g.Players().Get(Player1).Color)
	assert.Equal(t, "yellow", g.Players().Get(Player2).Color)
	assert.Equal(t, DefaultPlayer1Label, g.Players().Get(Player1).Label)
}

func TestNewGameRejectsDuplicateColors(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Players[1].Color = cfg.Players[0].Color

	g, err := NewGame(cfg)
	require.Error(t, err)
	assert.Nil(t, g)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "duplicate player colors", cfgErr.Reason)
}

func TestNewGameRejectsDuplicateColorsIgnoringCase(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Players[0].Color = "Blue"
	cfg.Players[1].Color = " blue "

	_, err := NewGame(cfg)
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestNewGameRejectsNegativeDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{-1, 7}, {6, -3}} {
		cfg := DefaultGameConfig()
		cfg.Rows, cfg.Cols = tc.rows, tc.cols
		_, err := NewGame(cfg)
		var cfgErr *ConfigError
		assert.Truef(t, errors.As(err, &cfgErr), "rows=%d cols=%d", tc.rows, tc.cols)
	}
}

func TestApplyMoveStacksFromTheBottom(t *testing.T) {
	g := newTestGame(t, 6, 7)

	prev := g.Rows()
	for i := 0; i < g.Rows(); i++ {
		res, err := g.ApplyMove(3)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Move.Col)
		assert.Less(t, res.Move.Row, prev)
		assert.Equal(t, prev-1, res.Move.Row)
		prev = res.Move.Row
	}
	assert.Equal(t, 0, prev)
}

func TestApplyMoveInvalidColumn(t *testing.T) {
	g := newTestGame(t, 6, 7)
	before := snapshot(g)

	for _, col := range []int{-1, 7, 100} {
		_, err := g.ApplyMove(col)
		assert.ErrorIs(t, err, ErrInvalidColumn)
	}
	assert.Equal(t, before, snapshot(g))
}

func TestApplyMoveFullColumnChangesNothing(t *testing.T) {
	g := newTestGame(t, 6, 7)
	playAll(t, g, 0, 0, 0, 0, 0, 0)
	before := snapshot(g)

	_, err := g.ApplyMove(0)
	require.ErrorIs(t, err, ErrColumnFull)
	assert.Equal(t, before, snapshot(g))
	assert.Equal(t, Player1, g.CurrentPlayer())
}

func TestTurnParity(t *testing.T) {
	g := newTestGame(t, 6, 7)
	columns := []int{0, 1, 2, 3, 4, 5, 6, 0, 1, 2, 3}
	for n, col := range columns {
		assert.Equalf(t, n%2 == 0, g.CurrentPlayer() == Player1, "after %d moves", n)
		_, err := g.ApplyMove(col)
		require.NoError(t, err)
	}
	assert.Equal(t, Player2, g.CurrentPlayer())
	assert.Equal(t, len(columns), g.MoveCount())
	assert.Equal(t, g.MoveCount(), g.Board().Occupied())
}

func TestVerticalWin(t *testing.T) {
	g := newTestGame(t, 6, 7)

	res := playAll(t, g, 0, 6, 0, 6, 0, 6)
	assert.Equal(t, StatusActive, res.Status)

	res = playAll(t, g, 0)
	assert.Equal(t, StatusWon, res.Status)
	assert.Equal(t, Player1, res.Winner)
	assert.Equal(t, Player1, g.Winner())
	assert.Equal(t, 1, g.Scores().Wins(Player1))
	assert.Equal(t, 0, g.Scores().Wins(Player2))
	assert.Len(t, res.WinningLine, 4)
	assert.True(t, g.IsFinished())
	// the winner keeps the turn, the round is over
	assert.Equal(t, Player1, g.CurrentPlayer())
}

func TestHorizontalWin(t *testing.T) {
	g := newTestGame(t, 6, 7)
	res := playAll(t, g, 0, 0, 1, 1, 2, 2, 3)
	assert.Equal(t, StatusWon, res.Status)
	assert.Equal(t, Player1, res.Winner)
	assert.Equal(t, []Move{
		{Row: 5, Col: 0, Player: Player1},
		{Row: 5, Col: 1, Player: Player1},
		{Row: 5, Col: 2, Player: Player1},
		{Row: 5, Col: 3, Player: Player1},
	}, res.WinningLine)
}

func TestDiagonalWins(t *testing.T) {
	tests := []struct {
		name    string
		columns []int
	}{
		{"rising", []int{0, 1, 1, 2, 3, 2, 2, 3, 6, 3, 3}},
		{"falling", []int{6, 5, 5, 4, 3, 4, 4, 3, 0, 3, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 6, 7)
			res := playAll(t, g, tc.columns[:len(tc.columns)-1]...)
			require.Equal(t, StatusActive, res.Status)

			res = playAll(t, g, tc.columns[len(tc.columns)-1])
			assert.Equal(t, StatusWon, res.Status)
			assert.Equal(t, Player1, res.Winner)
			assert.Len(t, res.WinningLine, 4)
		})
	}
}

func TestPlayerTwoCanWin(t *testing.T) {
	g := newTestGame(t, 6, 7)
	res := playAll(t, g, 0, 6, 1, 6, 0, 6, 1, 6)
	assert.Equal(t, StatusWon, res.Status)
	assert.Equal(t, Player2, res.Winner)
	assert.Equal(t, 1, g.Scores().Wins(Player2))
}

func TestMoveAfterGameOver(t *testing.T) {
	g := newTestGame(t, 6, 7)
	playAll(t, g, 0, 6, 0, 6, 0, 6, 0)
	before := snapshot(g)

	_, err := g.ApplyMove(3)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, before, snapshot(g))
}

func TestSingleCellBoardIsDraw(t *testing.T) {
	g := newTestGame(t, 1, 1)
	res, err := g.ApplyMove(0)
	require.NoError(t, err)
	assert.Equal(t, StatusDraw, res.Status)
	assert.Equal(t, Empty, res.Winner)
	assert.Equal(t, 0, g.Scores().Total())

	_, err = g.ApplyMove(0)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestFullBoardWithoutLineIsDraw(t *testing.T) {
	g := newTestGame(t, 3, 3)
	res := playAll(t, g, 0, 1, 2, 0, 1, 2, 0, 1, 2)
	assert.Equal(t, StatusDraw, res.Status)
	assert.True(t, g.Board().IsFull())
}

func TestWinOnLastCellBeatsDraw(t *testing.T) {
	g := newTestGame(t, 1, 7)
	res := playAll(t, g, 0, 4, 1, 5, 2, 6, 3)
	assert.True(t, g.Board().IsFull())
	assert.Equal(t, StatusWon, res.Status)
	assert.Equal(t, Player1, res.Winner)
}

func TestUndoRoundTrip(t *testing.T) {
	g := newTestGame(t, 6, 7)
	playAll(t, g, 3, 4, 3)
	before := snapshot(g)

	res, err := g.ApplyMove(2)
	require.NoError(t, err)

	undone, err := g.UndoLastMove()
	require.NoError(t, err)
	assert.Equal(t, res.Move, undone)
	assert.Equal(t, before, snapshot(g))
}

func TestUndoWinningMoveRestoresScore(t *testing.T) {
	g := newTestGame(t, 6, 7)
	playAll(t, g, 0, 6, 0, 6, 0, 6)
	before := snapshot(g)

	res := playAll(t, g, 0)
	require.Equal(t, StatusWon, res.Status)
	require.Equal(t, 1, g.Scores().Wins(Player1))

	undone, err := g.UndoLastMove()
	require.NoError(t, err)
	assert.Equal(t, Move{Row: 2, Col: 0, Player: Player1}, undone)
	assert.Equal(t, StatusActive, g.Status())
	assert.Equal(t, Player1, g.CurrentPlayer())
	assert.Equal(t, Empty, g.Cell(2, 0))
	assert.Equal(t, 0, g.Scores().Wins(Player1))
	assert.Nil(t, g.WinningLine())
	assert.Equal(t, before, snapshot(g))
}

func TestUndoDrawClearsTerminalStatus(t *testing.T) {
	g := newTestGame(t, 1, 1)
	playAll(t, g, 0)

	_, err := g.UndoLastMove()
	require.NoError(t, err)
	assert.Equal(t, StatusActive, g.Status())
	assert.Equal(t, Player1, g.CurrentPlayer())
	assert.Equal(t, 0, g.Board().Occupied())
}

func TestUndoRepeatedly(t *testing.T) {
	g := newTestGame(t, 6, 7)
	playAll(t, g, 1, 2, 3)

	for i := 3; i > 0; i-- {
		_, err := g.UndoLastMove()
		require.NoError(t, err)
		assert.Equal(t, i-1, g.MoveCount())
	}
	assert.Equal(t, Player1, g.CurrentPlayer())

	_, err := g.UndoLastMove()
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestUndoEmptyHistory(t *testing.T) {
	g := newTestGame(t, 6, 7)
	before := snapshot(g)

	_, err := g.UndoLastMove()
	assert.ErrorIs(t, err, ErrNoHistory)
	assert.Equal(t, before, snapshot(g))
}

func TestResetKeepsScores(t *testing.T) {
	g := newTestGame(t, 6, 7)
	playAll(t, g, 0, 6, 0, 6, 0, 6, 0)
	require.Equal(t, 1, g.Scores().Wins(Player1))

	g.Reset()
	assert.Equal(t, StatusActive, g.Status())
	assert.Equal(t, Player1, g.CurrentPlayer())
	assert.Empty(t, g.History())
	assert.Equal(t, 0, g.Board().Occupied())
	assert.Equal(t, 1, g.Scores().Wins(Player1))

	_, err := g.UndoLastMove()
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestBoardAccessorReturnsCopy(t *testing.T) {
	g := newTestGame(t, 6, 7)
	playAll(t, g, 0)

	b := g.Board()
	b.Reset()
	assert.Equal(t, Player1, g.Cell(5, 0))

	cells := g.Cells()
	cells[5][0] = Player2
	assert.Equal(t, Player1, g.Cell(5, 0))
}

func TestValidMovesEmptyWhenFinished(t *testing.T) {
	g := newTestGame(t, 6, 7)
	assert.Len(t, g.ValidMoves(), 7)
	playAll(t, g, 0, 6, 0, 6, 0, 6, 0)
	assert.Empty(t, g.ValidMoves())
}
