// Package main provides the songstatus daemon. It reads
// host events as line-delimited JSON from stdin or a file
// and keeps the status file up to date until the feed
// ends or the process is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/byte4ever/songstatus/bridge"
	"github.com/byte4ever/songstatus/config"
	"github.com/byte4ever/songstatus/host"
	"github.com/byte4ever/songstatus/keyword"
	"github.com/byte4ever/songstatus/status"
)

func run() (retErr error) {
	const errCtx = "songstatus"

	var (
		configPath   string
		feedPath     string
		statusPath   string
		templatePath string
		match        string
	)

	flag.StringVar(
		&configPath, "config", "UserData/songStatus.yaml",
		"YAML configuration file",
	)

	flag.StringVar(
		&feedPath, "feed", "",
		"event feed file or pipe (default: stdin)",
	)

	flag.StringVar(
		&statusPath, "status", "",
		"status output file (overrides config)",
	)

	flag.StringVar(
		&templatePath, "template", "",
		"template file (overrides config)",
	)

	flag.StringVar(
		&match, "match", "",
		"placeholder matcher: contains or exact (overrides config)",
	)

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if statusPath != "" {
		cfg.StatusPath = statusPath
	}

	if templatePath != "" {
		cfg.TemplatePath = templatePath
	}

	if match != "" {
		cfg.Match = match
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	// Validate has already parsed every setting below.
	level, _ := cfg.SlogLevel()           //nolint:errcheck // validated
	matcher, _ := cfg.Matcher()           //nolint:errcheck // validated
	debounce, _ := cfg.DebounceDuration() //nolint:errcheck // validated

	slog.SetDefault(slog.New(slog.NewTextHandler(
		os.Stderr, &slog.HandlerOptions{Level: level},
	)))

	in, closeIn, err := openFeed(feedPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer closeIn()

	lo := host.NewLocal()
	pl := status.New(status.Options{
		StatusPath:   cfg.StatusPath,
		TemplatePath: cfg.TemplatePath,
		MenuScenes:   cfg.MenuScenes,
		Engine:       keyword.Engine{Matcher: matcher},
	})

	if err := pl.Start(lo); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if err := pl.Stop(); err != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, err)
		}
	}()

	br := bridge.Bridge{Host: lo, OnChange: pl.Refresh}

	if cfg.WatchTemplate {
		tw, err := bridge.NewTemplateWatcher(
			cfg.TemplatePath, debounce,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		changes, err := tw.Start()
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		defer tw.Stop() //nolint:errcheck // best-effort close

		br.Changes = changes
	}

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	err = br.Run(ctx, in)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// openFeed returns stdin when path is empty.
func openFeed(path string) (io.Reader, func(), error) {
	const errCtx = "opening feed"

	if path == "" {
		return os.Stdin, func() {}, nil
	}

	fi, err := os.Open(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return fi, func() {
		_ = fi.Close() //nolint:errcheck // best-effort close
	}, nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
