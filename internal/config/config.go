package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	StopWordsPath    string `toml:"stopwords_path"`
	MediaPlaceholder string `toml:"media_placeholder" validate:"required"`
	TopWords         int    `toml:"top_words"         validate:"min=1,max=1000"`
	TopParticipants  int    `toml:"top_participants"  validate:"min=1,max=100"`
	ExportsRoot      string `toml:"exports_root"`
	Workers          int    `toml:"workers"           validate:"min=1,max=64"`
	LogLevel         string `toml:"log_level"         validate:"oneof=debug info warn error"`
	LogFormat        string `toml:"log_format"        validate:"oneof=console json"`

	// Path is the file the config was read from, empty when none existed.
	Path string `toml:"-"`
}

// DefaultPath returns ~/.config/wca/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wca", "config.toml"), nil
}

// Load reads the config at cfgPath, or DefaultPath when cfgPath is empty.
// A missing file leaves the defaults in place.
func Load(cfgPath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		StopWordsPath:    filepath.Join(home, ".config", "wca", "stopwords.txt"),
		MediaPlaceholder: "<Media omitted>",
		TopWords:         20,
		TopParticipants:  5,
		ExportsRoot:      filepath.Join(home, "Downloads"),
		Workers:          4,
		LogLevel:         "warn",
		LogFormat:        "console",
	}

	if cfgPath == "" {
		cfgPath = filepath.Join(home, ".config", "wca", "config.toml")
	}
	cfgPath = expandHome(cfgPath, home)
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
		cfg.Path = cfgPath
	}

	// expand ~ in paths
	cfg.StopWordsPath = expandHome(cfg.StopWordsPath, home)
	cfg.ExportsRoot = expandHome(cfg.ExportsRoot, home)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
