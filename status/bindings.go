package status

import (
	"strconv"
	"strings"

	"github.com/byte4ever/songstatus/host"
	"github.com/byte4ever/songstatus/keyword"
)

// DefaultTemplate is written when the template file is
// missing.
const DefaultTemplate = "Playing: {songName} {songSubName} - {authorName}\n" +
	"{gamemode} {difficulty} | BPM: {beatsPerMinute}\n" +
	"{[isNoFail]} {[modifiers]}"

// Bindings returns the keyword bindings for a level in
// keyword.Order.
func Bindings(lv host.Level, mode GameMode) []keyword.Binding {
	noFail := ""
	if lv.Modifiers.NoFail {
		noFail = "No Fail"
	}

	return []keyword.Binding{
		{Keyword: keyword.SongName, Value: lv.SongName},
		{Keyword: keyword.SongSubName, Value: lv.SongSubName},
		{Keyword: keyword.AuthorName, Value: lv.AuthorName},
		{Keyword: keyword.GameMode, Value: mode.Label()},
		{Keyword: keyword.Difficulty, Value: lv.Difficulty.Name()},
		{Keyword: keyword.IsNoFail, Value: noFail},
		{Keyword: keyword.Modifiers, Value: FormatModifiers(lv.Modifiers)},
		{Keyword: keyword.BeatsPerMinute, Value: formatNumber(lv.BeatsPerMinute)},
		{Keyword: keyword.NotesCount, Value: strconv.Itoa(lv.NotesCount)},
		{Keyword: keyword.ObstaclesCount, Value: strconv.Itoa(lv.ObstaclesCount)},
	}
}

// FormatModifiers lists active modifiers separated by
// ", ". No fail is excluded; it has its own keyword.
func FormatModifiers(m host.Modifiers) string {
	if m.IsWithoutModifiers() {
		return ""
	}

	var names []string

	if m.InstaFail {
		names = append(names, "Instant Fail")
	}

	if m.BatteryEnergy {
		names = append(names, "Battery Energy")
	}

	if m.DisappearingArrows {
		names = append(names, "Disappearing Arrows")
	}

	if m.NoBombs {
		names = append(names, "No Bombs")
	}

	if m.NoObstacles {
		names = append(names, "No Walls")
	}

	if mul := m.SpeedMultiplier(); mul != 1 {
		names = append(names, "Speed "+formatNumber(mul)+"x")
	}

	return strings.Join(names, ", ")
}

// formatNumber prints the shortest exact decimal form,
// "128" rather than "128.000000".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
