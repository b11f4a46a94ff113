// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
}

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionGUp
	ActionGDown
	ActionMoreSamples
	ActionFewerSamples
	ActionSelectHG
	ActionSelectHGInverse
	ActionSelectRayleigh
	ActionAlphaUp
	ActionAlphaDown
	ActionLengthUp
	ActionLengthDown
	ActionTogglePhaseCurve
	ActionScreenshot
)

var keyActions = map[sdl.Scancode]Action{
	sdl.SCANCODE_ESCAPE:       ActionQuit,
	sdl.SCANCODE_UP:           ActionGUp,
	sdl.SCANCODE_DOWN:         ActionGDown,
	sdl.SCANCODE_RIGHT:        ActionMoreSamples,
	sdl.SCANCODE_LEFT:         ActionFewerSamples,
	sdl.SCANCODE_1:            ActionSelectHG,
	sdl.SCANCODE_2:            ActionSelectHGInverse,
	sdl.SCANCODE_3:            ActionSelectRayleigh,
	sdl.SCANCODE_RIGHTBRACKET: ActionAlphaUp,
	sdl.SCANCODE_LEFTBRACKET:  ActionAlphaDown,
	sdl.SCANCODE_EQUALS:       ActionLengthUp,
	sdl.SCANCODE_MINUS:        ActionLengthDown,
	sdl.SCANCODE_P:            ActionTogglePhaseCurve,
	sdl.SCANCODE_F12:          ActionScreenshot,
}

// ActionForKey returns the action bound to a key, or ActionNone.
func ActionForKey(key sdl.Scancode) Action {
	return keyActions[key]
}

// Input handles all input processing.
type Input struct {
	events []Event
	mouseX int
	mouseY int
	hasPos bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events. Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			return true
		}
	}

	return false
}

func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			i.events = append(i.events, Event{
				Type: EventKeyDown,
				Key:  e.Keysym.Scancode,
			})
		}

	case *sdl.MouseMotionEvent:
		i.mouseX, i.mouseY, i.hasPos = int(e.X), int(e.Y), true
		i.events = append(i.events, Event{
			Type:   EventMouseMove,
			MouseX: i.mouseX,
			MouseY: i.mouseY,
		})
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Actions returns the actions triggered by key presses in the last Update,
// in the order they happened.
func (i *Input) Actions() []Action {
	var actions []Action
	for _, e := range i.events {
		if e.Type != EventKeyDown {
			continue
		}
		if a := ActionForKey(e.Key); a != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

// MousePos returns the last known cursor position. ok is false until the
// cursor has moved over the window.
func (i *Input) MousePos() (x, y int, ok bool) {
	return i.mouseX, i.mouseY, i.hasPos
}
