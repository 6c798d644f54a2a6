package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rayou-Ryan/Puissance-4/internal/domain"
	"github.com/Rayou-Ryan/Puissance-4/internal/locale"
)

type Config struct {
	Host             string
	Port             string
	Environment      string
	LogLevel         string
	AllowedOrigins   []string
	FrontendURL      string
	TableSecret      string
	TableTokenTTL    time.Duration
	TableIdleTimeout time.Duration
	CleanupInterval  time.Duration
	MaxBoardSize     int
	Locale           string
	Game             GameDefaults

	// Warnings collects the values that were ignored while loading, so they can
	// be logged once a logger exists.
	Warnings []string
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// GameConfig builds the engine configuration, using the translated labels
// when none were configured.
func (c *Config) GameConfig(tr *locale.Translator) domain.GameConfig {
	label1, label2 := tr.DefaultLabels()
	if c.Game.Player1Label != "" {
		label1 = c.Game.Player1Label
	}
	if c.Game.Player2Label != "" {
		label2 = c.Game.Player2Label
	}
	game := domain.GameConfig{
		Rows: c.Game.Rows,
		Cols: c.Game.Cols,
		Players: domain.Players{
			{Color: c.Game.Player1Color, Label: label1},
			{Color: c.Game.Player2Color, Label: label2},
		},
	}
	return game.WithDefaults()
}

// LoadConfig reads the preference file first, then lets the environment
// override it. godotenv has already populated the environment at this point.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	prefs, err := LoadPreferences()
	if err != nil {
		return nil, err
	}

	cfg.Host = GetEnv("HOST", "localhost")
	cfg.Port = GetEnv("PORT", "8080")
	cfg.Environment = GetEnv("ENVIRONMENT", "development")
	cfg.LogLevel = GetEnv("LOG_LEVEL", "info")

	// Frontend & CORS
	cfg.FrontendURL = GetEnv("FRONTEND_URL", "http://localhost:8080")
	cfg.AllowedOrigins = []string{
		cfg.FrontendURL,
		"http://localhost:5173", // Local development
	}
	if extra := GetEnv("ALLOWED_ORIGINS", ""); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	// Tables
	cfg.TableSecret = GetEnv("TABLE_SECRET", "change-this-table-secret")
	cfg.TableTokenTTL = cfg.getEnvAsDuration("TABLE_TOKEN_TTL", 24*time.Hour)
	cfg.TableIdleTimeout = cfg.getEnvAsDuration("TABLE_IDLE_TIMEOUT", 2*time.Hour)
	cfg.CleanupInterval = cfg.getEnvAsDuration("CLEANUP_INTERVAL", 10*time.Minute)
	cfg.MaxBoardSize = cfg.getEnvAsInt("MAX_BOARD_SIZE", 20)

	// Default game setup
	cfg.Locale = GetEnv("GAME_LOCALE", prefs.Locale)
	cfg.Game = GameDefaults{
		Rows:         cfg.getEnvAsInt("GAME_ROWS", prefs.Game.Rows),
		Cols:         cfg.getEnvAsInt("GAME_COLS", prefs.Game.Cols),
		Player1Color: GetEnv("GAME_PLAYER1_COLOR", prefs.Game.Player1Color),
		Player2Color: GetEnv("GAME_PLAYER2_COLOR", prefs.Game.Player2Color),
		Player1Label: GetEnv("GAME_PLAYER1_LABEL", prefs.Game.Player1Label),
		Player2Label: GetEnv("GAME_PLAYER2_LABEL", prefs.Game.Player2Label),
	}

	if cfg.IsProduction() && cfg.TableSecret == "change-this-table-secret" {
		return nil, fmt.Errorf("TABLE_SECRET must be set in production")
	}
	if cfg.MaxBoardSize <= 0 {
		return nil, fmt.Errorf("MAX_BOARD_SIZE must be positive, got %d", cfg.MaxBoardSize)
	}

	return cfg, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid integer value for %s: %q, using default: %d", key, valueStr, defaultValue))
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid duration value for %s: %q, using default: %s", key, valueStr, defaultValue))
		return defaultValue
	}
	return value
}
