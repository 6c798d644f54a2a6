package main

import (
	"context"
	"fmt"

	"github.com/adrg/xdg"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Rayou-Ryan/Puissance-4/internal/locale"
	"github.com/Rayou-Ryan/Puissance-4/internal/logging"
	"github.com/Rayou-Ryan/Puissance-4/internal/tui"
)

const playLogFile = "puissance4/play.log"

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play in this terminal",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quick", Usage: "skip the setup form and start with the defaults"},
			&cli.StringFlag{Name: "log-file", Usage: "log file (default: in $XDG_STATE_HOME)", TakesFile: true},
		},
		Action: runPlay,
	}
}

func runPlay(ctx context.Context, cmd *cli.Command) error {
	envLoaded := loadEnv()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logPath := cmd.String("log-file")
	if logPath == "" {
		if logPath, err = xdg.StateFile(playLogFile); err != nil {
			return fmt.Errorf("locate log file: %w", err)
		}
	}
	logger, err := logging.NewFile(logPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !envLoaded {
		logger.Debug("no .env file found")
	}
	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	tr := locale.New(cfg.Locale)
	logger.Info("terminal session started", zap.String("locale", tr.Tag().String()))

	app := tui.New(tui.Options{
		Defaults:   cfg.GameConfig(tr),
		Translator: tr,
		Logger:     logger,
		SkipSetup:  cmd.Bool("quick"),
	})
	return app.Run()
}
