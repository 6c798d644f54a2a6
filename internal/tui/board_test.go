package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rayou-Ryan/Puissance-4/internal/domain"
	"github.com/Rayou-Ryan/Puissance-4/internal/locale"
	"github.com/Rayou-Ryan/Puissance-4/internal/service/game"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

type boardFixture struct {
	board        *BoardUI
	hint         *tview.TextView
	reconfigured int
	quit         int
}

func newBoardFixture(t *testing.T, cfg domain.GameConfig) *boardFixture {
	t.Helper()
	table, err := game.NewTable("tui", cfg, locale.New("en"), nil, nil)
	require.NoError(t, err)

	f := &boardFixture{hint: tview.NewTextView()}
	f.board = NewBoardUI(f.hint, func() { f.reconfigured++ }, func() { f.quit++ }, nil)
	f.board.Attach(table)
	return f
}

func TestBoardCursorMovement(t *testing.T) {
	f := newBoardFixture(t, domain.DefaultGameConfig())
	b := f.board
	require.Equal(t, 3, b.Cursor())

	assert.True(t, b.HandleKey(key(tcell.KeyLeft)))
	assert.True(t, b.HandleKey(runeKey('h')))
	assert.Equal(t, 1, b.Cursor())

	for i := 0; i < 10; i++ {
		b.HandleKey(runeKey('l'))
	}
	assert.Equal(t, 6, b.Cursor(), "cursor stays on the board")

	for i := 0; i < 10; i++ {
		b.HandleKey(key(tcell.KeyLeft))
	}
	assert.Equal(t, 0, b.Cursor())
}

func TestBoardDropsDisks(t *testing.T) {
	f := newBoardFixture(t, domain.DefaultGameConfig())
	b := f.board

	b.HandleKey(key(tcell.KeyEnter))
	assert.Equal(t, 1, b.State().Board[5][3])

	b.HandleKey(runeKey(' '))
	assert.Equal(t, 2, b.State().Board[4][3])

	b.HandleKey(runeKey('7'))
	assert.Equal(t, 1, b.State().Board[5][6])
	assert.Equal(t, 6, b.Cursor(), "number keys move the cursor too")

	assert.Equal(t, 3, b.State().MoveCount)
	assert.Contains(t, f.hint.GetText(true), "Player Yellow, your turn!")
}

func TestBoardShowsRejectedMoves(t *testing.T) {
	f := newBoardFixture(t, domain.GameConfig{Rows: 1, Cols: 3})
	b := f.board

	b.HandleKey(runeKey('9'))
	assert.Contains(t, b.Notice(), domain.ErrInvalidColumn.Error())
	assert.Equal(t, 0, b.State().MoveCount)

	b.HandleKey(runeKey('1'))
	require.Empty(t, b.Notice())
	b.HandleKey(runeKey('1'))
	assert.Contains(t, b.Notice(), domain.ErrColumnFull.Error())
	assert.Contains(t, f.hint.GetText(true), domain.ErrColumnFull.Error())

	b.HandleKey(runeKey('2'))
	assert.Empty(t, b.Notice())
}

func TestBoardUndoAndNewRound(t *testing.T) {
	f := newBoardFixture(t, domain.DefaultGameConfig())
	b := f.board

	b.HandleKey(runeKey('u'))
	assert.Contains(t, b.Notice(), domain.ErrNoHistory.Error())

	for _, r := range "1717171" {
		b.HandleKey(runeKey(r))
	}
	require.Equal(t, domain.StatusWon, b.State().Status)
	assert.Equal(t, 1, b.State().Players[0].Score)
	assert.Len(t, b.State().WinningLine, 4)

	b.HandleKey(runeKey('u'))
	assert.Equal(t, domain.StatusActive, b.State().Status)
	assert.Equal(t, 0, b.State().Players[0].Score)

	b.HandleKey(runeKey('1'))
	require.Equal(t, domain.StatusWon, b.State().Status)

	b.HandleKey(runeKey('r'))
	assert.Equal(t, 0, b.State().MoveCount)
	assert.Equal(t, 1, b.State().Players[0].Score, "a new round keeps the score")
}

func TestBoardReconfigureAndQuit(t *testing.T) {
	f := newBoardFixture(t, domain.DefaultGameConfig())
	b := f.board

	assert.True(t, b.HandleKey(runeKey('c')))
	assert.Equal(t, 1, f.reconfigured)
	assert.True(t, b.State().Configuring)

	b.HandleKey(key(tcell.KeyEnter))
	assert.Contains(t, b.Notice(), game.ErrConfiguring.Error())

	assert.True(t, b.HandleKey(runeKey('q')))
	assert.Equal(t, 1, f.quit)
}

func TestBoardIgnoresOtherKeys(t *testing.T) {
	f := newBoardFixture(t, domain.DefaultGameConfig())

	assert.False(t, f.board.HandleKey(runeKey('z')))
	assert.False(t, f.board.HandleKey(key(tcell.KeyTab)))

	empty := NewBoardUI(nil, nil, nil, nil)
	assert.False(t, empty.HandleKey(key(tcell.KeyEnter)))
}

func TestBoardDraw(t *testing.T) {
	f := newBoardFixture(t, domain.DefaultGameConfig())
	f.board.HandleKey(key(tcell.KeyEnter))

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 12)

	f.board.Box.SetRect(0, 0, 40, 12)
	f.board.Box.Draw(screen)
	screen.Show()

	// Bottom row, middle column.
	mainc, _, style, _ := screen.GetContent(1+3*cellWidth+1, 2+5)
	assert.Equal(t, diskRune, mainc)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)

	mainc, _, _, _ = screen.GetContent(1+0*cellWidth+1, 2+5)
	assert.Equal(t, emptyRune, mainc)

	mainc, _, _, _ = screen.GetContent(1+3*cellWidth+1, 1)
	assert.Equal(t, cursorRune, mainc)
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, tcell.ColorRed, resolveColor(" Red "))
	assert.Equal(t, tcell.NewHexColor(0x00ff00), resolveColor("#00ff00"))
	assert.Equal(t, tcell.ColorDefault, resolveColor("not-a-color"))
}
