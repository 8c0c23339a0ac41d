package bridge

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TemplateWatcher signals when the template file is
// written or replaced.
type TemplateWatcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	onChange  chan struct{}
	done      chan struct{}
}

// NewTemplateWatcher creates a watcher for path. Bursts of
// writes closer together than debounce produce a single
// signal.
func NewTemplateWatcher(
	path string,
	debounce time.Duration,
) (*TemplateWatcher, error) {
	const errCtx = "creating template watcher"

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return &TemplateWatcher{
		fsWatcher: fsw,
		path:      abs,
		debounce:  debounce,
		onChange:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start watches the directory holding the template, so
// editors that save by renaming are still seen.
func (tw *TemplateWatcher) Start() (<-chan struct{}, error) {
	const errCtx = "starting template watcher"

	dir := filepath.Dir(tw.path)
	if err := tw.fsWatcher.Add(dir); err != nil {
		return nil, fmt.Errorf(
			"%s: watching %s: %w", errCtx, dir, err,
		)
	}

	go tw.loop()

	slog.Info("watching template", "path", tw.path)

	return tw.onChange, nil
}

// Stop ends the watch.
func (tw *TemplateWatcher) Stop() error {
	close(tw.done)

	return tw.fsWatcher.Close()
}

func (tw *TemplateWatcher) loop() {
	var timer *time.Timer

	// timerC is nil until a relevant event arms the timer.
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-tw.fsWatcher.Events:
			if !ok {
				return
			}

			if !tw.isRelevant(ev) {
				continue
			}

			if tw.debounce <= 0 {
				tw.signal()

				continue
			}

			if timer == nil {
				timer = time.NewTimer(tw.debounce)
			} else {
				timer.Reset(tw.debounce)
			}

			timerC = timer.C
		case <-timerC:
			timerC = nil
			tw.signal()
		case err, ok := <-tw.fsWatcher.Errors:
			if !ok {
				return
			}

			slog.Warn("template watcher", "error", err)
		case <-tw.done:
			if timer != nil {
				timer.Stop()
			}

			return
		}
	}
}

// signal never blocks; a pending signal already covers
// this change.
func (tw *TemplateWatcher) signal() {
	select {
	case tw.onChange <- struct{}{}:
	default:
	}
}

func (tw *TemplateWatcher) isRelevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}

	return filepath.Clean(ev.Name) == tw.path
}
