package status

import "fmt"

// GameMode is the play mode picked in the menu.
type GameMode int

const (
	Standard GameMode = iota
	OneSaber
	NoArrows
)

// Characteristic names reported by the host.
const (
	CharacteristicOneSaber = "One Saber"
	CharacteristicNoArrows = "No Arrows"
)

// ModeFromCharacteristic maps a beatmap characteristic to
// a GameMode. Unknown names select Standard.
func ModeFromCharacteristic(name string) GameMode {
	switch name {
	case CharacteristicNoArrows:
		return NoArrows
	case CharacteristicOneSaber:
		return OneSaber
	default:
		return Standard
	}
}

// Label returns the text bound to the gamemode keyword.
func (g GameMode) Label() string {
	switch g {
	case OneSaber:
		return "One Saber"
	case NoArrows:
		return "No Arrow"
	default:
		return "Standard"
	}
}

// String implements fmt.Stringer.
func (g GameMode) String() string {
	switch g {
	case Standard:
		return "Standard"
	case OneSaber:
		return "OneSaber"
	case NoArrows:
		return "NoArrows"
	default:
		return fmt.Sprintf("GameMode(%d)", int(g))
	}
}
