package piewheel

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an event script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Key    string  `json:"key,omitempty"`
}

// scriptFile is the top-level JSON structure for an event script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a pre-parsed sequence of events for driving a session without a
// window, used for automated interaction testing. Each step maps to exactly
// one [Event].
type Script struct {
	events []Event
}

// LoadScript parses a JSON event script.
//
// Supported actions: "expose", "move", "press", "release", "click" (press
// plus release at the same point), "key" (key of "escape" or "q"), "resize",
// and "close".
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("piewheel: parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("piewheel: parse script: no steps")
	}

	events := make([]Event, 0, len(file.Steps))
	for i, st := range file.Steps {
		switch st.Action {
		case "expose":
			events = append(events, Expose{})
		case "move":
			events = append(events, PointerMove{X: st.X, Y: st.Y})
		case "press":
			events = append(events, ButtonPress{Button: MouseButtonLeft, X: st.X, Y: st.Y})
		case "release":
			events = append(events, ButtonRelease{Button: MouseButtonLeft, X: st.X, Y: st.Y})
		case "click":
			events = append(events,
				ButtonPress{Button: MouseButtonLeft, X: st.X, Y: st.Y},
				ButtonRelease{Button: MouseButtonLeft, X: st.X, Y: st.Y},
			)
		case "key":
			key, err := parseScriptKey(st.Key)
			if err != nil {
				return nil, fmt.Errorf("piewheel: parse script: step %d: %w", i, err)
			}
			events = append(events, KeyPress{Key: key})
		case "resize":
			events = append(events, Resize{Width: st.Width, Height: st.Height})
		case "close":
			events = append(events, CloseRequested{})
		default:
			return nil, fmt.Errorf("piewheel: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{events: events}, nil
}

func parseScriptKey(name string) (Key, error) {
	switch name {
	case "escape", "esc":
		return KeyEscape, nil
	case "q":
		return KeyQ, nil
	default:
		return KeyOther, fmt.Errorf("unknown key %q", name)
	}
}

// Events returns the parsed event sequence.
func (sc *Script) Events() []Event {
	return sc.events
}

// Play applies every event to the session in order. Events past a terminal
// state are still delivered and ignored there, same as a live queue draining
// after selection.
func (sc *Script) Play(s *Session) {
	for _, ev := range sc.events {
		s.HandleEvent(ev)
	}
}
