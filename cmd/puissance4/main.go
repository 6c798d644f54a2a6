package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/Rayou-Ryan/Puissance-4/internal/config"
	"github.com/Rayou-Ryan/Puissance-4/internal/locale"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "puissance4:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "puissance4",
		Usage:   "Connect Four for two players sharing a screen",
		Version: Version,
		Flags:   gameFlags(),
		Commands: []*cli.Command{
			serveCommand(),
			playCommand(),
		},
		DefaultCommand: "play",
	}
}

// gameFlags override the preference file and the GAME_* variables.
func gameFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "rows", Usage: "number of rows on the board"},
		&cli.IntFlag{Name: "cols", Usage: "number of columns on the board"},
		&cli.StringFlag{Name: "player1-color", Usage: "disk color of the first player"},
		&cli.StringFlag{Name: "player2-color", Usage: "disk color of the second player"},
		&cli.StringFlag{Name: "player1-label", Usage: "name shown for the first player"},
		&cli.StringFlag{Name: "player2-label", Usage: "name shown for the second player"},
		&cli.StringFlag{Name: "locale", Usage: "display language (en, fr)"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
	}
}

// loadEnv loads .env from the working directory or its parent. It reports
// whether a file was found so the caller can log it once a logger exists.
func loadEnv() bool {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			return false
		}
	}
	return true
}

// loadConfig reads the environment, then applies the flags that were set.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)

	tr := locale.New(cfg.Locale)
	if err := cfg.GameConfig(tr).Validate(); err != nil {
		return nil, fmt.Errorf("default game setup: %w", err)
	}
	return cfg, nil
}

func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("rows") {
		cfg.Game.Rows = int(cmd.Int("rows"))
	}
	if cmd.IsSet("cols") {
		cfg.Game.Cols = int(cmd.Int("cols"))
	}
	if cmd.IsSet("player1-color") {
		cfg.Game.Player1Color = cmd.String("player1-color")
	}
	if cmd.IsSet("player2-color") {
		cfg.Game.Player2Color = cmd.String("player2-color")
	}
	if cmd.IsSet("player1-label") {
		cfg.Game.Player1Label = cmd.String("player1-label")
	}
	if cmd.IsSet("player2-label") {
		cfg.Game.Player2Label = cmd.String("player2-label")
	}
	if cmd.IsSet("locale") {
		cfg.Locale = cmd.String("locale")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
}
