package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	UIConsole  = "console"
	UITerminal = "terminal"

	FormatJSON = "json"
	FormatText = "text"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"T3_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"T3_LOG_FORMAT" env-default:"json"`
	BoardSize int    `yaml:"board-size" env:"T3_BOARD_SIZE" env-default:"3"`
	UI        string `yaml:"ui" env:"T3_UI" env-default:"console"`
	LogFile   string `yaml:"log-file" env:"T3_LOG_FILE"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path and overlays the environment. A missing file means environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)

	switch {
	case path != "" && statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case path == "" || errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, statErr)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.UI {
	case UIConsole, UITerminal:
	default:
		return fmt.Errorf("%w: unknown ui %q", ErrInvalidConfig, that.UI)
	}

	switch that.LogFormat {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, that.LogFormat)
	}

	return nil
}

// SlogLevel maps log-level to a slog level, defaulting to info.
func (that *Config) SlogLevel() slog.Level {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
