package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/Rayou-Ryan/Puissance-4/internal/domain"
	"github.com/Rayou-Ryan/Puissance-4/internal/service/game"
)

const (
	cellWidth  = 3
	diskRune   = '●'
	emptyRune  = '·'
	cursorRune = '▼'
)

const controlsLine = `
  ←→/hl move   ⏎/space drop   1-9 column
  u undo   r new round   c setup   q quit`

// BoardUI draws a table and turns key presses into table operations. It
// only ever shows the State returned by the table.
type BoardUI struct {
	Box    *tview.Box
	hint   *tview.TextView
	table  *game.Table
	state  game.State
	cursor int
	notice string
	colors [2]tcell.Color
	logger *zap.Logger

	onReconfigure func()
	onQuit        func()
}

func NewBoardUI(hint *tview.TextView, onReconfigure, onQuit func(), logger *zap.Logger) *BoardUI {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &BoardUI{
		Box:           tview.NewBox(),
		hint:          hint,
		logger:        logger,
		onReconfigure: onReconfigure,
		onQuit:        onQuit,
	}
	b.Box.SetDrawFunc(b.draw)
	return b
}

// Attach shows table and resets the cursor to the middle column.
func (b *BoardUI) Attach(table *game.Table) {
	b.table = table
	b.cursor = table.Columns() / 2
	b.notice = ""
	b.setState(table.State())
}

func (b *BoardUI) State() game.State { return b.state }

func (b *BoardUI) Cursor() int { return b.cursor }

// Notice is the last rejected command, cleared by the next accepted one.
func (b *BoardUI) Notice() string { return b.notice }

// HandleKey applies one key press and reports whether it was consumed.
func (b *BoardUI) HandleKey(event *tcell.EventKey) bool {
	if b.table == nil {
		return false
	}

	switch event.Key() {
	case tcell.KeyLeft:
		b.moveCursor(-1)
		return true
	case tcell.KeyRight:
		b.moveCursor(1)
		return true
	case tcell.KeyEnter:
		b.drop(b.cursor)
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := event.Rune(); {
	case r == 'h':
		b.moveCursor(-1)
	case r == 'l':
		b.moveCursor(1)
	case r == ' ':
		b.drop(b.cursor)
	case r >= '1' && r <= '9':
		col := int(r - '1')
		if col < b.state.Cols {
			b.cursor = col
		}
		b.drop(col)
	case r == 'u':
		b.apply(b.table.Undo())
	case r == 'r':
		b.apply(b.table.Reset())
	case r == 'c':
		b.setState(b.table.RequestReconfigure())
		if b.onReconfigure != nil {
			b.onReconfigure()
		}
	case r == 'q':
		if b.onQuit != nil {
			b.onQuit()
		}
	default:
		return false
	}
	return true
}

func (b *BoardUI) moveCursor(delta int) {
	next := b.cursor + delta
	if next < 0 || next >= b.state.Cols {
		return
	}
	b.cursor = next
}

func (b *BoardUI) drop(col int) {
	b.apply(b.table.Play(col))
}

func (b *BoardUI) apply(state game.State, err error) {
	if err != nil {
		b.logger.Debug("command rejected", zap.Error(err))
		b.notice = err.Error()
		b.refreshHint()
		return
	}
	b.notice = ""
	b.setState(state)
}

func (b *BoardUI) setState(state game.State) {
	b.state = state
	for i, p := range state.Players {
		if i < len(b.colors) {
			b.colors[i] = resolveColor(p.Color)
		}
	}
	if b.cursor >= state.Cols {
		b.cursor = state.Cols - 1
	}
	b.refreshHint()
}

func (b *BoardUI) refreshHint() {
	if b.hint == nil {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %s\n\n  %s\n", b.state.Message, b.state.ScoreLine)
	if b.notice != "" {
		fmt.Fprintf(&sb, "\n  ! %s\n", b.notice)
	}
	sb.WriteString(controlsLine)
	b.hint.SetText(sb.String())
}

// resolveColor accepts tcell color names and #rrggbb. Unknown names fall
// back to the terminal default; the player labels still tell disks apart.
func resolveColor(name string) tcell.Color {
	return tcell.GetColor(strings.ToLower(strings.TrimSpace(name)))
}

func (b *BoardUI) colorOf(player int) tcell.Color {
	if player < 1 || player > len(b.colors) {
		return tcell.ColorDefault
	}
	return b.colors[player-1]
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	s := b.state
	if s.Rows == 0 || s.Cols == 0 {
		return x, y, width, height
	}

	winning := make(map[[2]int]bool, len(s.WinningLine))
	for _, m := range s.WinningLine {
		winning[[2]int{m.Row, m.Col}] = true
	}

	left := x + 1
	base := tcell.StyleDefault

	// Column numbers, then the cursor in the color of the player to move.
	for col := 0; col < s.Cols; col++ {
		label := strconv.Itoa(col + 1)
		for i, r := range label {
			screen.SetContent(left+col*cellWidth+1+i, y, r, nil, base.Foreground(tcell.ColorGray))
		}
	}
	if s.Status == domain.StatusActive && !s.Configuring {
		style := base.Foreground(b.colorOf(int(s.CurrentPlayer)))
		screen.SetContent(left+b.cursor*cellWidth+1, y+1, cursorRune, nil, style)
	}

	for row := 0; row < s.Rows; row++ {
		top := y + 2 + row
		for col := 0; col < s.Cols; col++ {
			cx := left + col*cellWidth
			owner := s.Board[row][col]
			style := base
			r := emptyRune
			if owner != int(domain.Empty) {
				r = diskRune
				style = style.Foreground(b.colorOf(owner))
			} else {
				style = style.Foreground(tcell.ColorGray)
			}
			if winning[[2]int{row, col}] {
				style = style.Reverse(true)
			}
			screen.SetContent(cx, top, ' ', nil, style)
			screen.SetContent(cx+1, top, r, nil, style)
			screen.SetContent(cx+2, top, ' ', nil, style)
		}
	}

	return x, y, s.Cols*cellWidth + 2, s.Rows + 2
}
