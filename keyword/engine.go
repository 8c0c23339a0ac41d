package keyword

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/valyala/fasttemplate"
)

// Matcher selects how placeholders are matched to
// keywords.
type Matcher int

const (
	// MatchContains claims every placeholder whose text
	// contains the keyword. {song} and {songName} both
	// match keyword "song".
	MatchContains Matcher = iota

	// MatchExact claims a placeholder only when its
	// identifier, with surrounding decoration removed,
	// equals the keyword.
	MatchExact
)

// ParseMatcher maps a configuration value to a Matcher.
// The empty string selects MatchContains.
func ParseMatcher(s string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "contains":
		return MatchContains, nil
	case "exact":
		return MatchExact, nil
	default:
		return MatchContains, fmt.Errorf(
			"parsing matcher: unknown matcher %q", s,
		)
	}
}

// String returns the configuration name of the matcher.
func (m Matcher) String() string {
	switch m {
	case MatchContains:
		return "contains"
	case MatchExact:
		return "exact"
	default:
		return fmt.Sprintf("Matcher(%d)", int(m))
	}
}

// Engine substitutes bindings using the configured
// matcher. The zero value uses MatchContains.
type Engine struct {
	Matcher Matcher
}

// Substitute applies bindings to template.
func (en Engine) Substitute(
	template string,
	bindings []Binding,
) string {
	if en.Matcher == MatchExact {
		return substituteExact(template, bindings)
	}

	return Substitute(template, bindings)
}

// substituteExact expands single-brace placeholders in one
// pass. The first binding for a keyword wins and values
// are never expanded again. Placeholders without a binding
// are written back untouched.
func substituteExact(
	template string,
	bindings []Binding,
) string {
	values := make(map[string]string, len(bindings))

	for _, bi := range bindings {
		if bi.Keyword == "" {
			continue
		}

		if _, dup := values[bi.Keyword]; !dup {
			values[bi.Keyword] = bi.Value
		}
	}

	return fasttemplate.ExecuteFuncString(
		template, "{", "}",
		func(w io.Writer, tag string) (int, error) {
			lead, core, trail := splitDecoration(tag)

			val, ok := values[core]
			if !ok {
				return io.WriteString(w, "{"+tag+"}")
			}

			if val == "" {
				return 0, nil
			}

			return io.WriteString(w, lead+val+trail)
		},
	)
}

// splitDecoration separates the identifier core of a
// placeholder from leading and trailing decoration, so
// "[isNoFail]" yields "[", "isNoFail", "]".
func splitDecoration(tag string) (string, string, string) {
	first := strings.IndexFunc(tag, isIdent)
	if first < 0 {
		return tag, "", ""
	}

	last := strings.LastIndexFunc(tag, isIdent)
	_, size := utf8.DecodeRuneInString(tag[last:])
	end := last + size

	return tag[:first], tag[first:end], tag[end:]
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
