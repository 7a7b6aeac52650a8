// Package config loads the lox settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Defaults applied to unset or out of range settings.
const (
	DefaultPrompt      = "lox> "
	DefaultParallel    = 1
	DefaultReportsDir  = ".lox-reports"
	DefaultHistorySize = 100
	settingsFileName   = "settings.toml"
	configDirEnv       = "LOX_CONFIG_DIR"
)

// Settings holds the user preferences read from settings.toml.
type Settings struct {
	Prompt      string   `toml:"prompt"`
	Parallel    int      `toml:"parallel"`
	Reports     string   `toml:"reports"`
	HistorySize int      `toml:"history_size"`
	Exclude     []string `toml:"exclude"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Prompt:      DefaultPrompt,
		Parallel:    DefaultParallel,
		Reports:     DefaultReportsDir,
		HistorySize: DefaultHistorySize,
	}
}

// Dir returns the configuration directory: $LOX_CONFIG_DIR when set,
// otherwise lox under the user configuration directory.
func Dir() string {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".lox")
	}

	return filepath.Join(base, "lox")
}

// DefaultPath returns the settings file looked up when no path is given.
func DefaultPath() string {
	return filepath.Join(Dir(), settingsFileName)
}

// LoadSettings reads the settings at path, or at DefaultPath when path is
// empty. A missing file yields the defaults; unreadable or malformed files
// fail.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}

	if err != nil {
		return Settings{}, fmt.Errorf("read settings %q: %w", path, err)
	}

	settings, err := decodeSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("parse settings %q: %w", path, err)
	}

	return NormaliseSettings(settings), nil
}

func decodeSettings(data []byte) (Settings, error) {
	var settings Settings

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// NormaliseSettings replaces unset and out of range values with defaults.
func NormaliseSettings(in Settings) Settings {
	out := in
	defaults := DefaultSettings()

	if out.Prompt == "" {
		out.Prompt = defaults.Prompt
	}

	if out.Parallel <= 0 {
		out.Parallel = defaults.Parallel
	}

	if out.Reports == "" {
		out.Reports = defaults.Reports
	}

	if out.HistorySize <= 0 {
		out.HistorySize = defaults.HistorySize
	}

	return out
}
