package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/songstatus/config"
	"github.com/byte4ever/songstatus/keyword"
)

func writeTemp(
	tb testing.TB,
	dir string,
	name string,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(dir, name)
	require.NoError(
		tb,
		os.WriteFile(pa, []byte(content), 0o600),
	)

	return pa
}

func TestDefault_is_valid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "UserData/songStatus.txt", cfg.StatusPath)
	assert.Equal(
		t, "UserData/songStatusTemplate.txt", cfg.TemplatePath,
	)
	assert.Equal(t, []string{"Menu"}, cfg.MenuScenes)
	assert.True(t, cfg.WatchTemplate)
}

func TestLoad_missing_file_returns_defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(
		filepath.Join(t.TempDir(), "nope.yaml"),
	)

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_overrides_defaults(t *testing.T) {
	t.Parallel()

	pa := writeTemp(t, t.TempDir(), "songstatus.yaml", `
status_path: /tmp/obs/now-playing.txt
menu_scenes:
  - MainMenu
  - HealthWarning
match: exact
watch_template: false
debounce: 1s
log_level: debug
`)

	cfg, err := config.Load(pa)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/obs/now-playing.txt", cfg.StatusPath)
	assert.Equal(
		t, "UserData/songStatusTemplate.txt", cfg.TemplatePath,
	)
	assert.Equal(
		t, []string{"MainMenu", "HealthWarning"}, cfg.MenuScenes,
	)
	assert.False(t, cfg.WatchTemplate)

	ma, err := cfg.Matcher()
	require.NoError(t, err)
	assert.Equal(t, keyword.MatchExact, ma)

	du, err := cfg.DebounceDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, du)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_invalid_yaml(t *testing.T) {
	t.Parallel()

	pa := writeTemp(
		t, t.TempDir(), "bad.yaml", "menu_scenes: [unclosed\n",
	)

	_, err := config.Load(pa)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestLoad_rejects_invalid_values(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"matcher":    "match: fuzzy\n",
		"debounce":   "debounce: soon\n",
		"negative":   "debounce: -1s\n",
		"log level":  "log_level: loud\n",
		"empty path": "status_path: \"\"\n",
		"same paths": "status_path: a.txt\ntemplate_path: a.txt\n",
	}

	for name, body := range tests {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pa := writeTemp(t, t.TempDir(), "c.yaml", body)

			_, err := config.Load(pa)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validating config")
		})
	}
}

func TestDebounceDuration_empty_disables(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Debounce = ""

	du, err := cfg.DebounceDuration()

	require.NoError(t, err)
	assert.Zero(t, du)
}
