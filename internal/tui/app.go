// Package tui plays a table in the terminal, both players sharing the keyboard.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/Rayou-Ryan/Puissance-4/internal/domain"
	"github.com/Rayou-Ryan/Puissance-4/internal/locale"
	"github.com/Rayou-Ryan/Puissance-4/internal/service/game"
	"github.com/Rayou-Ryan/Puissance-4/pkg/uid"
)

const (
	pageSetup = "setup"
	pageGame  = "game"
)

type Options struct {
	Defaults   domain.GameConfig
	Translator *locale.Translator
	Logger     *zap.Logger
	// SkipSetup starts playing with Defaults right away.
	SkipSetup bool
}

type App struct {
	app    *tview.Application
	pages  *tview.Pages
	setup  *SetupForm
	board  *BoardUI
	table  *game.Table
	opts   Options
	logger *zap.Logger
}

func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Translator == nil {
		opts.Translator = locale.New()
	}

	a := &App{
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		opts:   opts,
		logger: opts.Logger.Named("tui"),
	}
	a.pages.SetBorder(true).SetTitle(" Puissance 4 ")

	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)

	a.board = NewBoardUI(hint, a.showSetup, a.app.Stop, a.logger)
	a.board.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if a.board.HandleKey(event) {
			return nil
		}
		return event
	})

	a.setup = NewSetupForm(opts.Defaults, a.start, a.app.Stop)

	gameFrame := tview.NewFlex().
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(a.board.Box, 0, 2, true).
		AddItem(hint, 46, 0, false).
		AddItem(tview.NewBox(), 0, 1, false)

	a.pages.AddPage(pageSetup, a.setup.Primitive(), true, true)
	a.pages.AddPage(pageGame, gameFrame, true, false)
	return a
}

// Run blocks until the players quit.
func (a *App) Run() error {
	if a.opts.SkipSetup {
		if err := a.setup.Submit(); err != nil {
			a.logger.Warn("default setup rejected", zap.Error(err))
		}
	}
	return a.app.SetRoot(a.pages, true).EnableMouse(false).Run()
}

// start opens the table on the first submission and reconfigures it on the
// following ones.
func (a *App) start(cfg domain.GameConfig) error {
	if a.table == nil {
		table, err := game.NewTable(uid.GenerateTableID(), cfg, a.opts.Translator, nil, a.logger)
		if err != nil {
			return err
		}
		a.table = table
	} else if _, err := a.table.Configure(cfg); err != nil {
		return err
	}

	a.board.Attach(a.table)
	a.pages.SwitchToPage(pageGame)
	a.app.SetFocus(a.board.Box)
	return nil
}

func (a *App) showSetup() {
	a.setup.Fill(a.table.Config())
	a.pages.SwitchToPage(pageSetup)
	a.app.SetFocus(a.setup.Primitive())
}
