package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/blorp/internal/render"
)

var polledButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Input is the render.InputManager of the Ebiten backend.
// Ebiten exposes per-tick key state, so the transitions of the current tick
// are turned into events. Held keys produce none and Repeat is never set.
type Input struct {
	keys   []ebiten.Key
	events []render.Event
}

func NewInputManager() *Input { return &Input{} }

// PollEvents returns this tick's transitions: quit first, then mouse presses,
// then key presses and releases.
func (m *Input) PollEvents() []render.Event {
	m.events = m.events[:0]

	if ebiten.IsWindowBeingClosed() {
		m.events = append(m.events, render.Event{Type: render.EventQuit})
	}

	for _, b := range polledButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			m.events = append(m.events, render.Event{Type: render.EventMouseDown, Button: mouseButtonFromEbiten(b)})
		}
	}

	m.keys = inpututil.AppendJustPressedKeys(m.keys[:0])
	for _, k := range m.keys {
		if key := keyFromEbiten(k); key != render.KeyUnknown {
			m.events = append(m.events, render.Event{Type: render.EventKeyDown, Key: key})
		}
	}

	m.keys = inpututil.AppendJustReleasedKeys(m.keys[:0])
	for _, k := range m.keys {
		if key := keyFromEbiten(k); key != render.KeyUnknown {
			m.events = append(m.events, render.Event{Type: render.EventKeyUp, Key: key})
		}
	}

	return m.events
}

func (m *Input) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

func keyFromEbiten(key ebiten.Key) render.Key {
	switch key {
	case ebiten.KeyW:
		return render.KeyW
	case ebiten.KeyA:
		return render.KeyA
	case ebiten.KeyS:
		return render.KeyS
	case ebiten.KeyD:
		return render.KeyD
	case ebiten.KeyEscape:
		return render.KeyEscape
	default:
		return render.KeyUnknown
	}
}

func mouseButtonFromEbiten(button ebiten.MouseButton) render.MouseButton {
	switch button {
	case ebiten.MouseButtonRight:
		return render.MouseButtonRight
	case ebiten.MouseButtonMiddle:
		return render.MouseButtonMiddle
	default:
		return render.MouseButtonLeft
	}
}
