package keyword

import "strings"

// Keywords recognised by the status template.
const (
	SongName       = "songName"
	SongSubName    = "songSubName"
	AuthorName     = "authorName"
	GameMode       = "gamemode"
	Difficulty     = "difficulty"
	IsNoFail       = "isNoFail"
	Modifiers      = "modifiers"
	BeatsPerMinute = "beatsPerMinute"
	NotesCount     = "notesCount"
	ObstaclesCount = "obstaclesCount"
)

// Order is the sequence in which status bindings are
// applied. A replacement value that happens to contain a
// later keyword is substituted again, so the order is
// part of the output format.
var Order = []string{
	SongName,
	SongSubName,
	AuthorName,
	GameMode,
	Difficulty,
	IsNoFail,
	Modifiers,
	BeatsPerMinute,
	NotesCount,
	ObstaclesCount,
}

// Binding associates a keyword with its replacement
// value. An empty value removes the placeholder.
type Binding struct {
	Keyword string
	Value   string
}

// Candidates splits text on every '{' and '}' and returns
// all segments, including text outside braces and empty
// segments between adjacent braces.
func Candidates(text string) []string {
	var (
		segs  []string
		start int
	)

	for i := 0; i < len(text); i++ {
		if text[i] == '{' || text[i] == '}' {
			segs = append(segs, text[start:i])
			start = i + 1
		}
	}

	return append(segs, text[start:])
}

// ReplaceKeyword substitutes a single keyword in text.
//
// Every candidate containing keyword is treated as one of
// its placeholders. With an empty value each "{candidate}"
// is deleted. Otherwise the braces are stripped, keeping
// any decoration, and every occurrence of keyword in the
// whole text is replaced by value. When no candidate
// contains keyword the text is returned unchanged.
func ReplaceKeyword(
	keyword string,
	value string,
	candidates []string,
	text string,
) string {
	if keyword == "" {
		return text
	}

	var matches []string

	for _, ca := range candidates {
		if strings.Contains(ca, keyword) {
			matches = append(matches, ca)
		}
	}

	if len(matches) == 0 {
		return text
	}

	if value == "" {
		for _, ma := range matches {
			text = strings.ReplaceAll(text, "{"+ma+"}", "")
		}

		return text
	}

	for _, ma := range matches {
		text = strings.ReplaceAll(text, "{"+ma+"}", ma)
	}

	return strings.ReplaceAll(text, keyword, value)
}

// Substitute applies bindings to template in slice order
// with containment matching. Candidates are taken from the
// raw template once, before any binding is applied.
func Substitute(template string, bindings []Binding) string {
	candidates := Candidates(template)

	for _, bi := range bindings {
		template = ReplaceKeyword(
			bi.Keyword, bi.Value, candidates, template,
		)
	}

	return template
}
