package host

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLevelUnavailable is returned by a LevelProvider when
// the gameplay objects describing the current level
// cannot be found.
var ErrLevelUnavailable = errors.New("level data unavailable")

// Scene identifies a loaded scene.
type Scene struct {
	Name string `json:"name"`
}

// SceneSource notifies listeners when a scene finishes
// loading.
type SceneSource interface {
	OnSceneLoaded(fn func(Scene)) (unsubscribe func())
}

// CharacteristicSource notifies listeners when the player
// picks a beatmap characteristic such as "One Saber".
type CharacteristicSource interface {
	OnCharacteristicSelected(
		fn func(name string),
	) (unsubscribe func())
}

// LevelProvider returns the level currently being played.
type LevelProvider interface {
	CurrentLevel() (Level, error)
}

// Host groups every collaborator the status writer uses.
type Host interface {
	SceneSource
	CharacteristicSource
	LevelProvider
}

// Level is a snapshot of the song and gameplay setup for
// the level being played.
type Level struct {
	SongName       string     `json:"songName"`
	SongSubName    string     `json:"songSubName"`
	AuthorName     string     `json:"authorName"`
	Difficulty     Difficulty `json:"difficulty"`
	BeatsPerMinute float64    `json:"beatsPerMinute"`
	NotesCount     int        `json:"notesCount"`
	ObstaclesCount int        `json:"obstaclesCount"`
	Modifiers      Modifiers  `json:"modifiers"`
}

// Modifiers are the gameplay options active for a level.
// A zero SongSpeedMul is read as normal speed.
type Modifiers struct {
	NoFail             bool    `json:"noFail"`
	InstaFail          bool    `json:"instaFail"`
	BatteryEnergy      bool    `json:"batteryEnergy"`
	DisappearingArrows bool    `json:"disappearingArrows"`
	NoBombs            bool    `json:"noBombs"`
	NoObstacles        bool    `json:"noObstacles"`
	SongSpeedMul       float64 `json:"songSpeedMul"`
}

// SpeedMultiplier returns the song speed multiplier,
// defaulting to 1.
func (m Modifiers) SpeedMultiplier() float64 {
	if m.SongSpeedMul == 0 {
		return 1
	}

	return m.SongSpeedMul
}

// IsWithoutModifiers reports whether the level is played
// with default options.
func (m Modifiers) IsWithoutModifiers() bool {
	return !m.NoFail &&
		!m.InstaFail &&
		!m.BatteryEnergy &&
		!m.DisappearingArrows &&
		!m.NoBombs &&
		!m.NoObstacles &&
		m.SpeedMultiplier() == 1
}

// Difficulty is a beatmap difficulty rank.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
	Expert
	ExpertPlus
)

var difficultyNames = [...]string{
	Easy:       "Easy",
	Normal:     "Normal",
	Hard:       "Hard",
	Expert:     "Expert",
	ExpertPlus: "ExpertPlus",
}

// Name returns the label shown to players, "Expert+" for
// ExpertPlus.
func (d Difficulty) Name() string {
	if d == ExpertPlus {
		return "Expert+"
	}

	return d.String()
}

// String returns the identifier of the difficulty.
func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}

	return difficultyNames[d]
}

// ParseDifficulty accepts identifiers and display labels,
// case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "expert+" {
		return ExpertPlus, nil
	}

	for i, dn := range difficultyNames {
		if strings.ToLower(dn) == name {
			return Difficulty(i), nil
		}
	}

	return Easy, fmt.Errorf(
		"parsing difficulty: unknown difficulty %q", s,
	)
}

// MarshalText encodes the difficulty identifier.
func (d Difficulty) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(difficultyNames) {
		return nil, fmt.Errorf(
			"marshaling difficulty: invalid value %d", int(d),
		)
	}

	return []byte(d.String()), nil
}

// UnmarshalText decodes an identifier or display label.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
