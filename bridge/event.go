package bridge

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/songstatus/host"
)

// Event types accepted on the feed.
const (
	EventScene          = "scene"
	EventLevel          = "level"
	EventCharacteristic = "characteristic"
)

// ErrUnknownEvent is returned for an event type the bridge
// does not handle.
var ErrUnknownEvent = errors.New("unknown event type")

// Event is one line of the feed.
type Event struct {
	Type  string      `json:"type"`
	Name  string      `json:"name,omitempty"`
	Level *host.Level `json:"level,omitempty"`
}

// ParseEvent decodes a single feed line.
func ParseEvent(line []byte) (Event, error) {
	const errCtx = "parsing event"

	var ev Event

	if err := json.Unmarshal(line, &ev); err != nil {
		return Event{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return ev, nil
}

// Apply forwards ev to lo. Listeners run before Apply
// returns.
func Apply(lo *host.Local, ev Event) error {
	const errCtx = "applying event"

	switch ev.Type {
	case EventScene:
		if ev.Name == "" {
			return fmt.Errorf(
				"%s: scene event without name", errCtx,
			)
		}

		if ev.Level != nil {
			lo.SetLevel(*ev.Level)
		}

		lo.LoadScene(ev.Name)
	case EventLevel:
		if ev.Level == nil {
			lo.ClearLevel()

			return nil
		}

		lo.SetLevel(*ev.Level)
	case EventCharacteristic:
		lo.SelectCharacteristic(ev.Name)
	default:
		return fmt.Errorf(
			"%s: %w %q", errCtx, ErrUnknownEvent, ev.Type,
		)
	}

	return nil
}
