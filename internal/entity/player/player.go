// Package player implements the player character: directional intents,
// sliding movement, aiming at the pointer, firing and the animation pose.
package player

import (
	"chosenoffset.com/blorp/internal/core/geometry"
	"chosenoffset.com/blorp/internal/entity/projectile"
	"chosenoffset.com/blorp/internal/render"
)

// Tuning holds the movement constants, in units per tick.
type Tuning struct {
	MaxSpeed     float64
	Deceleration float64
}

// Animations are the sprites the pose is chosen from. WalkBody and WalkFeet
// share the walking counter and must have the same length.
type Animations struct {
	IdleBody []render.Image
	IdleFeet render.Image
	WalkBody []render.Image
	WalkFeet []render.Image
}

// Pose is everything needed to draw the player for one frame.
type Pose struct {
	X, Y  int
	Angle float64
	Body  render.Image
	Feet  render.Image
	State MovementState
	Frame int // index into the animation set that was used
}

// Player is the single player character. It is owned by the frame driver and
// is not safe for concurrent use.
type Player struct {
	X, Y    int
	Angle   float64
	Intents Intents
	State   MovementState
	Gun     FireState

	x, y   axis
	tuning Tuning
	anim   Animations

	idleFrame int
	walkFrame int
	body      render.Image
	feet      render.Image
}

// New creates an idle player at (x, y) wearing the first idle frame.
func New(x, y int, tuning Tuning, anim Animations) *Player {
	p := &Player{
		X:      x,
		Y:      y,
		tuning: tuning,
		anim:   anim,
		feet:   anim.IdleFeet,
	}
	if len(anim.IdleBody) > 0 {
		p.body = anim.IdleBody[0]
	}
	return p
}

// Speed returns the stored x and y speeds.
func (p *Player) Speed() (x, y float64) {
	return p.x.speed, p.y.speed
}

// Pos returns the player position.
func (p *Player) Pos() geometry.Point {
	return geometry.Pt(p.X, p.Y)
}

// ApplyKey handles a key transition and reports whether it was a movement
// key. Repeats are ignored. Any movement key transition puts the player in
// Walking, even a release; AdvanceMotion drops back to Idle once both axes
// have stopped.
func (p *Player) ApplyKey(key render.Key, pressed, repeat bool) bool {
	if repeat {
		return false
	}

	switch key {
	case render.KeyW:
		p.Intents.Up = pressed
	case render.KeyS:
		p.Intents.Down = pressed
	case render.KeyA:
		p.Intents.Left = pressed
	case render.KeyD:
		p.Intents.Right = pressed
	default:
		return false
	}

	p.State = Walking
	return true
}

// AdvanceMotion runs one tick of movement and re-aims at pointer.
//
// For each axis a held latch sets the speed to the maximum and moves a full
// step; both latches of an axis may apply in the same tick. While the speed
// is positive one decay step then follows in the last pushed direction.
func (p *Player) AdvanceMotion(pointer geometry.Point) {
	p.Y += p.y.step(p.Intents.Up, p.Intents.Down, p.tuning)
	p.X += p.x.step(p.Intents.Left, p.Intents.Right, p.tuning)

	if p.x.speed <= 0 && p.y.speed == 0 {
		p.State = Idle
	}

	p.Angle = geometry.FacingAngle(p.Pos(), pointer, p.bodyHeight())
}

func (p *Player) bodyHeight() float64 {
	if p.body == nil {
		return 0
	}
	_, h := p.body.Size()
	return float64(h)
}

// Fire spawns a projectile along the current facing angle and returns its
// slot. There is no cooldown or ammunition.
func (p *Player) Fire(pool *projectile.Pool) int {
	slot := pool.Spawn(p.X, p.Y, p.Angle)
	p.Gun = Discharged
	return slot
}

// MuzzleFlashed marks the muzzle flash of the last shot as drawn.
func (p *Player) MuzzleFlashed() {
	p.Gun = Ready
}

// RenderPose picks the sprites for this frame and advances the animation
// counter of the current state. Only one counter moves per call. While idle
// the feet keep whatever sprite they last had.
func (p *Player) RenderPose() Pose {
	frame := 0
	switch p.State {
	case Idle:
		if n := len(p.anim.IdleBody); n > 0 {
			if p.idleFrame >= n {
				p.idleFrame = 0
			}
			frame = p.idleFrame
			p.body = p.anim.IdleBody[frame]
			p.idleFrame++
		}
	case Walking:
		if n := len(p.anim.WalkBody); n > 0 {
			if p.walkFrame >= n {
				p.walkFrame = 0
			}
			frame = p.walkFrame
			p.body = p.anim.WalkBody[frame]
			if frame < len(p.anim.WalkFeet) {
				p.feet = p.anim.WalkFeet[frame]
			}
			p.walkFrame++
		}
	}

	return Pose{
		X:     p.X,
		Y:     p.Y,
		Angle: p.Angle,
		Body:  p.body,
		Feet:  p.feet,
		State: p.State,
		Frame: frame,
	}
}

// Frames returns the idle and walking animation counters.
func (p *Player) Frames() (idle, walk int) {
	return p.idleFrame, p.walkFrame
}
