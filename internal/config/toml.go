// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quiz    QuizConfig    `toml:"quiz"`
	Stats   StatsConfig   `toml:"stats"`
	Storage StorageConfig `toml:"storage"`
}

// QuizConfig maps quiz-related settings.
type QuizConfig struct {
	Topic *string `toml:"topic"`
	Seed  *int64  `toml:"seed"`
}

// StatsConfig maps stats rendering settings.
type StatsConfig struct {
	TrendWindow *int `toml:"trend-window"`
}

// StorageConfig maps activity archive settings.
type StorageConfig struct {
	DBPath  *string `toml:"db"`
	Archive *bool   `toml:"archive"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
