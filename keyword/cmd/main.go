// Package main provides the songstatus-render CLI that
// substitutes {keyword} placeholders in a template string
// or file and prints or writes the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/byte4ever/songstatus/keyword"
)

// bindingFlags keeps -set values in command-line order,
// which is the substitution order.
type bindingFlags []keyword.Binding

func (bf *bindingFlags) String() string {
	return fmt.Sprintf("%v", *bf)
}

func (bf *bindingFlags) Set(value string) error {
	parts := strings.SplitN(value, "=", 2)
	if len(parts) != 2 {
		return errors.New(
			"binding must be keyword=value",
		)
	}

	*bf = append(*bf, keyword.Binding{
		Keyword: strings.TrimSpace(parts[0]),
		Value:   parts[1],
	})

	return nil
}

func run() error {
	const errCtx = "songstatus-render"

	var bindings bindingFlags

	var (
		output       string
		format       string
		templateFile string
		match        string
	)

	flag.Var(
		&bindings, "set",
		"keyword=value binding (repeatable, applied in order)",
	)

	flag.StringVar(
		&output, "output", "",
		"output file path (default: stdout)",
	)

	flag.StringVar(
		&templateFile, "template", "",
		"file containing {keyword} placeholders",
	)

	flag.StringVar(
		&format, "format", "",
		"template string containing {keyword} placeholders",
	)

	flag.StringVar(
		&match, "match", "contains",
		"placeholder matcher: contains or exact",
	)

	flag.Parse()

	if templateFile != "" && format != "" {
		return fmt.Errorf(
			"%s: only one of --format or"+
				" --template may be specified",
			errCtx,
		)
	}

	if templateFile != "" {
		content, err := os.ReadFile( //nolint:gosec // path from CLI flag
			templateFile,
		)
		if err != nil {
			return fmt.Errorf(
				"%s: reading template: %w",
				errCtx, err,
			)
		}

		format = string(content)
	}

	matcher, err := keyword.ParseMatcher(match)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	en := keyword.Engine{Matcher: matcher}
	result := en.Substitute(format, bindings)

	if output != "" {
		err = os.WriteFile( //nolint:gosec // path from CLI flag
			output, []byte(result), 0o666,
		)
		if err != nil {
			return fmt.Errorf(
				"%s: writing output: %w",
				errCtx, err,
			)
		}

		return nil
	}

	_, err = os.Stdout.WriteString(result)
	if err != nil {
		return fmt.Errorf(
			"%s: writing to stdout: %w",
			errCtx, err,
		)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
