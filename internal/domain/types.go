package domain

import "strings"

// to represent the players in the game
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other player. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

func (p PlayerID) index() int {
	return int(p) - 1
}

const (
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4
)

const (
	DefaultPlayer1Color = "red"
	DefaultPlayer2Color = "yellow"
	DefaultPlayer1Label = "Red"
	DefaultPlayer2Label = "Yellow"
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Move is the resolved landing cell of a dropped disk, not the chosen column alone.
type Move struct {
	Row    int      `json:"row"`
	Col    int      `json:"col"`
	Player PlayerID `json:"player"`
}

type MoveResult struct {
	Move        Move
	Status      GameStatus
	Winner      PlayerID
	NextPlayer  PlayerID
	WinningLine []Move
}

type PlayerConfig struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// Players is indexed by PlayerID through Get, the pair is fixed at two.
type Players [2]PlayerConfig

func (p Players) Get(player PlayerID) PlayerConfig {
	if !player.Valid() {
		return PlayerConfig{}
	}
	return p[player.index()]
}

type GameConfig struct {
	Rows    int     `json:"rows"`
	Cols    int     `json:"cols"`
	Players Players `json:"players"`
}

func DefaultGameConfig() GameConfig {
	return GameConfig{
		Rows: DefaultRows,
		Cols: DefaultColumns,
		Players: Players{
			{Color: DefaultPlayer1Color, Label: DefaultPlayer1Label},
			{Color: DefaultPlayer2Color, Label: DefaultPlayer2Label},
		},
	}
}

// WithDefaults fills zero values the same way a blank setup form would.
func (c GameConfig) WithDefaults() GameConfig {
	def := DefaultGameConfig()
	if c.Rows == 0 {
		c.Rows = def.Rows
	}
	if c.Cols == 0 {
		c.Cols = def.Cols
	}
	for i := range c.Players {
		c.Players[i].Color = strings.TrimSpace(c.Players[i].Color)
		c.Players[i].Label = strings.TrimSpace(c.Players[i].Label)
		if c.Players[i].Color == "" {
			c.Players[i].Color = def.Players[i].Color
		}
		if c.Players[i].Label == "" {
			c.Players[i].Label = def.Players[i].Label
		}
	}
	return c
}

func (c GameConfig) Validate() error {
	if c.Rows <= 0 {
		return &ConfigError{Reason: "rows must be positive"}
	}
	if c.Cols <= 0 {
		return &ConfigError{Reason: "columns must be positive"}
	}
	if strings.EqualFold(strings.TrimSpace(c.Players[0].Color), strings.TrimSpace(c.Players[1].Color)) {
		return &ConfigError{Reason: "duplicate player colors"}
	}
	return nil
}

// ConfigError reports a configuration that cannot produce a game.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid game configuration: " + e.Reason
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is over"
	ErrNoHistory     Error = "no move to undo"
)
