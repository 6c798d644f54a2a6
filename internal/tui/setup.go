package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/Rayou-Ryan/Puissance-4/internal/domain"
)

const (
	labelRows    = "Rows"
	labelCols    = "Columns"
	labelColor1  = "Player 1 color"
	labelLabel1  = "Player 1 name"
	labelColor2  = "Player 2 color"
	labelLabel2  = "Player 2 name"
	fieldWidth   = 20
	numericWidth = 4
)

// setupValues is the raw content of the form. Blank fields stand for the defaults.
type setupValues struct {
	rows, cols     string
	color1, label1 string
	color2, label2 string
}

func valuesFromConfig(cfg domain.GameConfig) setupValues {
	return setupValues{
		rows:   strconv.Itoa(cfg.Rows),
		cols:   strconv.Itoa(cfg.Cols),
		color1: cfg.Players[0].Color,
		label1: cfg.Players[0].Label,
		color2: cfg.Players[1].Color,
		label2: cfg.Players[1].Label,
	}
}

// config converts the form into an engine configuration. Only the parsing is
// checked here; the engine validates the values themselves.
func (v setupValues) config() (domain.GameConfig, error) {
	rows, err := parseDimension(labelRows, v.rows)
	if err != nil {
		return domain.GameConfig{}, err
	}
	cols, err := parseDimension(labelCols, v.cols)
	if err != nil {
		return domain.GameConfig{}, err
	}
	return domain.GameConfig{
		Rows: rows,
		Cols: cols,
		Players: domain.Players{
			{Color: strings.TrimSpace(v.color1), Label: strings.TrimSpace(v.label1)},
			{Color: strings.TrimSpace(v.color2), Label: strings.TrimSpace(v.label2)},
		},
	}, nil
}

func parseDimension(name, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", strings.ToLower(name))
	}
	return n, nil
}

// SetupForm asks for the board size and the two players.
type SetupForm struct {
	form    *tview.Form
	flex    *tview.Flex
	errText *tview.TextView
	values  setupValues
	onStart func(domain.GameConfig) error
}

// NewSetupForm builds the form. onStart receives the parsed configuration;
// an error it returns is shown under the form and keeps the form open.
func NewSetupForm(initial domain.GameConfig, onStart func(domain.GameConfig) error, onQuit func()) *SetupForm {
	setup := &SetupForm{
		values:  valuesFromConfig(initial),
		onStart: onStart,
	}

	form := tview.NewForm()
	form.AddInputField(labelRows, setup.values.rows, numericWidth, tview.InputFieldInteger, func(text string) {
		setup.values.rows = text
	})
	form.AddInputField(labelCols, setup.values.cols, numericWidth, tview.InputFieldInteger, func(text string) {
		setup.values.cols = text
	})
	form.AddInputField(labelColor1, setup.values.color1, fieldWidth, nil, func(text string) {
		setup.values.color1 = text
	})
	form.AddInputField(labelLabel1, setup.values.label1, fieldWidth, nil, func(text string) {
		setup.values.label1 = text
	})
	form.AddInputField(labelColor2, setup.values.color2, fieldWidth, nil, func(text string) {
		setup.values.color2 = text
	})
	form.AddInputField(labelLabel2, setup.values.label2, fieldWidth, nil, func(text string) {
		setup.values.label2 = text
	})

	form.AddButton("Start", func() {
		setup.Submit()
	})
	form.AddButton("Quit", func() {
		if onQuit != nil {
			onQuit()
		}
	})

	form.SetBorder(true)
	form.SetTitle(" Puissance 4 ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(tcell.ColorDarkCyan)
	form.SetButtonTextColor(tcell.ColorWhite)

	errText := tview.NewTextView().SetTextAlign(tview.AlignCenter)
	errText.SetTextColor(tcell.ColorRed)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Enter: confirm  |  colors: names or #rrggbb").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	setup.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(errText, 1, 0, false).
		AddItem(helpText, 1, 0, false)
	setup.form = form
	setup.errText = errText
	return setup
}

// Primitive returns the layout holding the form.
func (s *SetupForm) Primitive() tview.Primitive {
	return s.flex
}

// Fill replaces the field contents with cfg, used when reconfiguring a table.
func (s *SetupForm) Fill(cfg domain.GameConfig) {
	s.values = valuesFromConfig(cfg)
	texts := map[string]string{
		labelRows:   s.values.rows,
		labelCols:   s.values.cols,
		labelColor1: s.values.color1,
		labelLabel1: s.values.label1,
		labelColor2: s.values.color2,
		labelLabel2: s.values.label2,
	}
	for label, text := range texts {
		if field, ok := s.form.GetFormItemByLabel(label).(*tview.InputField); ok {
			field.SetText(text)
		}
	}
	s.errText.SetText("")
	s.form.SetFocus(0)
}

// Submit parses the form and hands it to onStart.
func (s *SetupForm) Submit() error {
	cfg, err := s.values.config()
	if err == nil {
		err = s.onStart(cfg)
	}
	if err != nil {
		s.errText.SetText(err.Error())
		return err
	}
	s.errText.SetText("")
	return nil
}

// Error returns the message currently shown under the form.
func (s *SetupForm) Error() string {
	return s.errText.GetText(true)
}
