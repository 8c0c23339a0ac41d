package bridge

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/byte4ever/songstatus/host"
)

const maxLineSize = 1 << 20

// Bridge drives a host.Local from a feed.
type Bridge struct {
	Host *host.Local

	// Changes signals template edits. May be nil.
	Changes <-chan struct{}

	// OnChange runs on the event goroutine for every
	// signal received on Changes.
	OnChange func() error
}

// Run applies feed events until r is exhausted, reading r
// fails or ctx is done. Malformed lines are logged and
// skipped. Reaching the end of r returns nil.
func (br *Bridge) Run(ctx context.Context, r io.Reader) error {
	const errCtx = "running bridge"

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan []byte)
	readErr := make(chan error, 1)

	go readLines(ctx, r, lines, readErr)

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("%s: %w", errCtx, err)
				}

				slog.Info("feed closed")

				return nil
			}

			br.handleLine(line)
		case _, ok := <-br.Changes:
			if !ok {
				br.Changes = nil

				continue
			}

			br.handleChange()
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", errCtx, ctx.Err())
		}
	}
}

func (br *Bridge) handleLine(line []byte) {
	ev, err := ParseEvent(line)
	if err != nil {
		slog.Warn("skipping feed line", "error", err)

		return
	}

	slog.Debug("event", "type", ev.Type, "name", ev.Name)

	if err := Apply(br.Host, ev); err != nil {
		slog.Warn("skipping event", "error", err)
	}
}

func (br *Bridge) handleChange() {
	if br.OnChange == nil {
		return
	}

	slog.Debug("template changed")

	if err := br.OnChange(); err != nil {
		slog.Error("applying template change", "error", err)
	}
}

// readLines sends every non-blank line of r on lines, then
// closes it after storing the read error, if any.
func readLines(
	ctx context.Context,
	r io.Reader,
	lines chan<- []byte,
	readErr chan<- error,
) {
	defer close(lines)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		select {
		case lines <- bytes.Clone(line):
		case <-ctx.Done():
			readErr <- nil

			return
		}
	}

	readErr <- sc.Err()
}
