package game

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Rayou-Ryan/Puissance-4/internal/domain"
	"github.com/Rayou-Ryan/Puissance-4/internal/locale"
)

const (
	ErrConfiguring   domain.Error = "table is waiting for a new configuration"
	ErrTableNotFound domain.Error = "table not found"
)

// Notifier receives the state of a table after every change.
type Notifier interface {
	Publish(tableID string, state State)
	CloseTable(tableID string)
}

// Table owns exactly one game engine at a time. Reconfiguring replaces the
// engine wholesale; nothing carries over from the previous one.
type Table struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	game         *domain.Game
	configuring  bool
	lastActivity time.Time
	tr           *locale.Translator
	notifier     Notifier
	logger       *zap.Logger
	now          func() time.Time
}

func NewTable(id string, cfg domain.GameConfig, tr *locale.Translator, notifier Notifier, logger *zap.Logger) (*Table, error) {
	return newTable(id, cfg, tr, notifier, logger, time.Now)
}

func newTable(id string, cfg domain.GameConfig, tr *locale.Translator, notifier Notifier, logger *zap.Logger, now func() time.Time) (*Table, error) {
	g, err := domain.NewGame(cfg)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		tr = locale.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	created := now()
	return &Table{
		ID:           id,
		CreatedAt:    created,
		game:         g,
		lastActivity: created,
		tr:           tr,
		notifier:     notifier,
		logger:       logger.With(zap.String("table_id", id)),
		now:          now,
	}, nil
}

// Play drops a disk for the current player. Columns outside the board are
// filtered here and never reach the engine.
func (t *Table) Play(column int) (State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.configuring {
		return State{}, ErrConfiguring
	}
	if column < 0 || column >= t.game.Cols() {
		return State{}, fmt.Errorf("%w: %d", domain.ErrInvalidColumn, column)
	}

	res, err := t.game.ApplyMove(column)
	if err != nil {
		t.logger.Debug("move rejected", zap.Int("column", column), zap.Error(err))
		return State{}, err
	}

	fields := []zap.Field{
		zap.Int("player", int(res.Move.Player)),
		zap.Int("row", res.Move.Row),
		zap.Int("column", res.Move.Col),
		zap.String("status", string(res.Status)),
	}
	if res.Status == domain.StatusWon {
		t.logger.Info("round won", fields...)
	} else {
		t.logger.Debug("move played", fields...)
	}

	return t.changedLocked(), nil
}

func (t *Table) Undo() (State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.configuring {
		return State{}, ErrConfiguring
	}

	move, err := t.game.UndoLastMove()
	if err != nil {
		return State{}, err
	}
	t.logger.Debug("move undone", zap.Int("row", move.Row), zap.Int("column", move.Col))

	return t.changedLocked(), nil
}

// Reset starts a new round and keeps the scores.
func (t *Table) Reset() (State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.configuring {
		return State{}, ErrConfiguring
	}

	t.game.Reset()
	t.logger.Debug("new round")
	return t.changedLocked(), nil
}

// RequestReconfigure tells the renderers to show the setup form. The current
// engine stays in place until Configure supplies new values.
func (t *Table) RequestReconfigure() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.configuring = true
	t.logger.Debug("reconfiguration requested")
	return t.changedLocked()
}

// Configure replaces the engine with a fresh one built from cfg. On a
// configuration error the table is left as it was.
func (t *Table) Configure(cfg domain.GameConfig) (State, error) {
	g, err := domain.NewGame(cfg)
	if err != nil {
		return State{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.game = g
	t.configuring = false
	t.logger.Info("table reconfigured",
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
	)
	return t.changedLocked(), nil
}

func (t *Table) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

func (t *Table) Config() domain.GameConfig {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Config()
}

func (t *Table) Columns() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Cols()
}

func (t *Table) Translator() *locale.Translator {
	return t.tr
}

func (t *Table) LastActivity() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastActivity
}

func (t *Table) stateLocked() State {
	return buildState(t.ID, t.game, t.configuring, t.tr)
}

// changedLocked records activity and publishes the new state. Caller must hold t.mu,
// which keeps the published states in the order the changes happened.
func (t *Table) changedLocked() State {
	t.lastActivity = t.now()
	state := t.stateLocked()
	if t.notifier != nil {
		t.notifier.Publish(t.ID, state)
	}
	return state
}
