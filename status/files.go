package status

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer owns the status output file.
type Writer struct {
	Path string
}

// Write replaces the status file content with text,
// creating parent directories as needed.
func (wr Writer) Write(text string) error {
	const errCtx = "writing status"

	if err := writeFile(wr.Path, text); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Clear empties the status file.
func (wr Writer) Clear() error {
	const errCtx = "clearing status"

	if err := writeFile(wr.Path, ""); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// TemplateStore owns the user-editable template file.
type TemplateStore struct {
	Path    string
	Default string
}

// Ensure writes the default template when the file does
// not exist. An existing file is never touched.
func (ts TemplateStore) Ensure() error {
	const errCtx = "ensuring template"

	_, err := os.Stat(ts.Path)
	if err == nil {
		return nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := ts.recreate(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Load reads the template. A missing file is recreated
// from the default and the default is returned.
func (ts TemplateStore) Load() (string, error) {
	const errCtx = "loading template"

	content, err := os.ReadFile(ts.Path) //nolint:gosec // path from config
	if err == nil {
		return string(content), nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := ts.recreate(); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return ts.Default, nil
}

func (ts TemplateStore) recreate() error {
	slog.Info("writing default template", "path", ts.Path)

	return writeFile(ts.Path, ts.Default)
}

func writeFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // user data dir
			return err
		}
	}

	return os.WriteFile( //nolint:gosec // path from config
		path, []byte(content), 0o666,
	)
}
