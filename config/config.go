package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/byte4ever/songstatus/keyword"
)

// Config holds the status writer settings.
type Config struct {
	StatusPath    string   `yaml:"status_path"`
	TemplatePath  string   `yaml:"template_path"`
	MenuScenes    []string `yaml:"menu_scenes"`
	Match         string   `yaml:"match"`
	WatchTemplate bool     `yaml:"watch_template"`
	Debounce      string   `yaml:"debounce"`
	LogLevel      string   `yaml:"log_level"`
}

// Default returns the settings used when no file or key
// overrides them. Paths are relative to the game
// directory.
func Default() Config {
	return Config{
		StatusPath:    "UserData/songStatus.txt",
		TemplatePath:  "UserData/songStatusTemplate.txt",
		MenuScenes:    []string{"Menu"},
		Match:         keyword.MatchContains.String(),
		WatchTemplate: true,
		Debounce:      "250ms",
		LogLevel:      "info",
	}
}

// Load reads a YAML file over the defaults. A missing
// file is not an error.
func Load(path string) (Config, error) {
	const errCtx = "loading config"

	cfg := Default()

	content, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("config file not found, using defaults", "path", path)

		return cfg, nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf(
			"%s: decoding %s: %w", errCtx, path, err,
		)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	const errCtx = "validating config"

	if strings.TrimSpace(c.StatusPath) == "" {
		return fmt.Errorf("%s: status_path is empty", errCtx)
	}

	if strings.TrimSpace(c.TemplatePath) == "" {
		return fmt.Errorf("%s: template_path is empty", errCtx)
	}

	if c.StatusPath == c.TemplatePath {
		return fmt.Errorf(
			"%s: status_path and template_path are both %s",
			errCtx, c.StatusPath,
		)
	}

	if _, err := c.Matcher(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := c.DebounceDuration(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Matcher parses the match setting.
func (c Config) Matcher() (keyword.Matcher, error) {
	return keyword.ParseMatcher(c.Match)
}

// DebounceDuration parses the debounce setting. An empty
// value disables debouncing.
func (c Config) DebounceDuration() (time.Duration, error) {
	if c.Debounce == "" {
		return 0, nil
	}

	du, err := time.ParseDuration(c.Debounce)
	if err != nil {
		return 0, fmt.Errorf("parsing debounce: %w", err)
	}

	if du < 0 {
		return 0, fmt.Errorf(
			"parsing debounce: negative duration %s", c.Debounce,
		)
	}

	return du, nil
}

// SlogLevel parses the log_level setting.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level

	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf(
			"parsing log level: %w", err,
		)
	}

	return lvl, nil
}
