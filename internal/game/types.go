package game

import (
	"chosenoffset.com/blorp/internal/entity/player"
	"chosenoffset.com/blorp/internal/render"
)

// State is the frame driver state.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Sprites is the sprite set the game draws with.
type Sprites interface {
	Animations() player.Animations
	Bullet() render.Image
	MuzzleFlash() render.Image
	Reticle() render.Image
	Dispose()
}
