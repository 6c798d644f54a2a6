package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
)

var prefsFile = "puissance4/config.json"

// GameDefaults is the setup a new table starts from. Zero values fall back
// to the engine defaults.
type GameDefaults struct {
	Rows         int    `json:"rows"`
	Cols         int    `json:"cols"`
	Player1Color string `json:"player1_color"`
	Player2Color string `json:"player2_color"`
	Player1Label string `json:"player1_label"`
	Player2Label string `json:"player2_label"`
}

type Preferences struct {
	Locale string       `json:"locale"`
	Game   GameDefaults `json:"game"`
}

// LoadPreferences reads $XDG_CONFIG_HOME/puissance4/config.json (or the
// first match in $XDG_CONFIG_DIRS). A missing file is not an error.
func LoadPreferences() (Preferences, error) {
	var prefs Preferences
	absPath, err := xdg.SearchConfigFile(prefsFile)
	if err != nil {
		return prefs, nil
	}
	if err := readPrefsFile(absPath, &prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

func readPrefsFile(filePath string, prefs *Preferences) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read preferences %s: %w", filePath, err)
	}
	if err := json.Unmarshal(data, prefs); err != nil {
		return fmt.Errorf("parse preferences %s: %w", filePath, err)
	}
	return nil
}
