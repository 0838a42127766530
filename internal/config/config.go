// Package config loads and saves the clipr configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/clipr/internal/application"
	"github.com/inovacc/clipr/internal/model"
	"gopkg.in/ini.v1"
)

const fileName = "clipr.ini"

// Path returns the configuration file path inside the application directory.
func Path() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, fileName), nil
}

// Load reads the configuration file, falling back to defaults when the
// file does not exist.
func Load() (model.Config, error) {
	cfg := model.DefaultConfig()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}

	if err := file.Section("clipr").MapTo(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.PollIntervalMS <= 0 {
		cfg.PollIntervalMS = model.DefaultConfig().PollIntervalMS
	}

	if cfg.MaxEntries < 0 {
		cfg.MaxEntries = 0
	}

	return cfg, nil
}

// Save writes the configuration to the application directory.
func Save(cfg model.Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to an explicit path.
func SaveTo(cfg model.Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	file := ini.Empty()

	if err := file.Section("clipr").ReflectFrom(&cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
