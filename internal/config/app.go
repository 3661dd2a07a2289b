// Package config loads sideline settings through viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/sideline/internal/common"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SIDELINE_API_KEY.
const EnvPrefix = "SIDELINE"

// Viper keys.
const (
	KeyAPIBaseURL    = "api.base_url"
	KeyAPIKey        = "api.key"
	KeyAPITimeout    = "api.timeout"
	KeyAPIRetryMax   = "api.retry_max"
	KeyDataDir       = "data.dir"
	KeyDatabasePath  = "database.path"
	KeyLoggingLevel  = "logging.level"
	KeyLoggingFormat = "logging.format"
	KeyLoggingFile   = "logging.file"
)

const (
	defaultBaseURL  = "https://v3.football.api-sports.io/"
	defaultTimeout  = 30 * time.Second
	databaseName    = "sideline.db"
	logFileName     = "sideline.log"
	defaultLogLevel = "info"
)

// APIConfig configures the sports API client.
type APIConfig struct {
	BaseURL  string
	Key      string
	Timeout  time.Duration
	RetryMax int
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  string
	Format string
	// File is where logs go while the full-screen UI owns the terminal.
	File string
}

// AppConfig is the resolved application configuration.
type AppConfig struct {
	Logging      LoggingConfig
	API          APIConfig
	DataDir      string
	DatabasePath string
}

// EnvKeyReplacer maps dotted keys onto environment names: api.key reads SIDELINE_API_KEY.
func EnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// ExpandPath resolves a leading ~ to the home directory and then expands
// $VAR references. A ~user prefix is left as written.
func ExpandPath(path string) string {
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	return os.ExpandEnv(path)
}

// DefaultDataDir returns $HOME/.local/share/sideline.
func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".", ".sideline")
	}
	return filepath.Join(home, ".local", "share", "sideline")
}

// DefaultConfigDir returns $HOME/.config/sideline.
func DefaultConfigDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "sideline"), nil
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIBaseURL, defaultBaseURL)
	v.SetDefault(KeyAPITimeout, defaultTimeout)
	v.SetDefault(KeyAPIRetryMax, 0)
	v.SetDefault(KeyDataDir, DefaultDataDir())
	v.SetDefault(KeyLoggingLevel, defaultLogLevel)
	v.SetDefault(KeyLoggingFormat, "console")
}

// Load resolves the configuration held by v. Paths are expanded, and paths
// left empty are derived from the data directory.
func Load(v *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		API: APIConfig{
			BaseURL:  v.GetString(KeyAPIBaseURL),
			Key:      v.GetString(KeyAPIKey),
			Timeout:  v.GetDuration(KeyAPITimeout),
			RetryMax: v.GetInt(KeyAPIRetryMax),
		},
		Logging: LoggingConfig{
			Level:  v.GetString(KeyLoggingLevel),
			Format: v.GetString(KeyLoggingFormat),
			File:   ExpandPath(v.GetString(KeyLoggingFile)),
		},
		DataDir:      ExpandPath(v.GetString(KeyDataDir)),
		DatabasePath: ExpandPath(v.GetString(KeyDatabasePath)),
	}

	if cfg.DataDir == "" {
		return AppConfig{}, fmt.Errorf("%w: %s is empty", common.ErrInvalidConfig, KeyDataDir)
	}
	if cfg.API.Timeout < 0 {
		return AppConfig{}, fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyAPITimeout)
	}
	if cfg.API.RetryMax < 0 {
		return AppConfig{}, fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyAPIRetryMax)
	}
	if _, err := common.ParseLevel(cfg.Logging.Level); err != nil {
		return AppConfig{}, err
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(cfg.DataDir, databaseName)
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(cfg.DataDir, logFileName)
	}

	return cfg, nil
}
