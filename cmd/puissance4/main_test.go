package main

import (
	"context"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/Rayou-Ryan/Puissance-4/internal/config"
)

// runWithFlags parses args with the game flags and returns the loaded config.
func runWithFlags(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	var (
		cfg     *config.Config
		loadErr error
	)
	cmd := &cli.Command{
		Name:  "puissance4",
		Flags: gameFlags(),
		Commands: []*cli.Command{{
			Name: "probe",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, loadErr = loadConfig(cmd)
				return nil
			},
		}},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"puissance4"}, args...)))
	return cfg, loadErr
}

func TestFlagsOverrideConfig(t *testing.T) {
	t.Setenv("GAME_ROWS", "9")
	t.Setenv("GAME_PLAYER1_COLOR", "blue")

	cfg, err := runWithFlags(t, "--rows", "5", "--player2-label", "Bob", "--locale", "fr", "probe")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Game.Rows, "flag wins over the environment")
	assert.Equal(t, "blue", cfg.Game.Player1Color, "unset flags keep the environment")
	assert.Equal(t, "Bob", cfg.Game.Player2Label)
	assert.Equal(t, "fr", cfg.Locale)
}

func TestFlagsAreValidated(t *testing.T) {
	_, err := runWithFlags(t, "--player1-color", "red", "--player2-color", "RED", "probe")
	assert.ErrorContains(t, err, "duplicate player colors")

	_, err = runWithFlags(t, "--cols=-3", "probe")
	assert.ErrorContains(t, err, "columns must be positive")
}

func TestCommandLayout(t *testing.T) {
	cmd := newCommand()
	assert.Equal(t, "play", cmd.DefaultCommand)

	names := make([]string, 0, len(cmd.Commands))
	for _, sub := range cmd.Commands {
		names = append(names, sub.Name)
	}
	assert.ElementsMatch(t, []string{"serve", "play"}, names)
}
