package render

// InputManager handles input from the user (keyboard, mouse, window).
type InputManager interface {
	// PollEvents drains every event queued since the previous call.
	// It never blocks; an empty slice means nothing happened.
	PollEvents() []Event

	// GetCursorPosition returns the pointer in screen coordinates.
	GetCursorPosition() (x, y int)
}

// EventType identifies a discrete input event.
type EventType int

const (
	EventQuit EventType = iota
	EventKeyDown
	EventKeyUp
	EventMouseDown
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "key_down"
	case EventKeyUp:
		return "key_up"
	case EventMouseDown:
		return "mouse_down"
	default:
		return "unknown"
	}
}

// Event is a single input occurrence.
type Event struct {
	Type   EventType
	Key    Key         // EventKeyDown, EventKeyUp
	Button MouseButton // EventMouseDown
	Repeat bool        // OS key repeat
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reacts to
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}
