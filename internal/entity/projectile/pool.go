// Package projectile implements the fixed-capacity pool of shots in flight.
//
// Shots are never destroyed; they travel in a straight line forever and a
// slot is only reused when the spawn cursor comes round to it again.
package projectile

import (
	"chosenoffset.com/blorp/internal/core/geometry"
)

// Projectile is a single shot.
type Projectile struct {
	Slot  int
	X, Y  float64
	Angle float64 // degrees, frozen at spawn
	Fired bool    // false for a slot that has never been written
}

// Pos returns the projectile position.
func (p Projectile) Pos() geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

// Config describes the pool and the shots it creates.
type Config struct {
	Capacity int
	Speed    float64 // units per tick

	// Spawn offset relative to the shooter, in the shooter's frame.
	SpawnForward float64
	SpawnLateral float64
}

// Pool is a bounded ring buffer of projectiles.
//
// The cursor is pre-incremented and only wraps once it equals the capacity,
// so spawns land in slots 1..capacity: slot 0 is never written, and slot
// capacity is an overflow slot that takes every capacity-th shot but lies
// outside the advanced and drawn range. The capacity+1-th spawn overwrites
// slot 1.
type Pool struct {
	cfg    Config
	slots  []Projectile
	cursor int
}

// NewPool creates a pool with every slot zero-valued.
func NewPool(cfg Config) *Pool {
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	return &Pool{
		cfg:   cfg,
		slots: make([]Projectile, cfg.Capacity+1),
	}
}

// Capacity returns the number of advanced slots.
func (p *Pool) Capacity() int {
	return p.cfg.Capacity
}

// Cursor returns the slot written by the most recent spawn (0 before any).
func (p *Pool) Cursor() int {
	return p.cursor
}

// Spawn fires a projectile from a shooter at (x, y) facing angle degrees and
// returns the slot it was written to. The rotated spawn offset is truncated
// to whole pixels before being added to the shooter position.
func (p *Pool) Spawn(x, y int, angle float64) int {
	if p.cursor == p.cfg.Capacity {
		p.cursor = 0
	}
	p.cursor++

	dx, dy := geometry.RotateOffset(p.cfg.SpawnForward, p.cfg.SpawnLateral, angle)
	p.slots[p.cursor] = Projectile{
		Slot:  p.cursor,
		X:     float64(x + int(dx)),
		Y:     float64(y + int(dy)),
		Angle: angle,
		Fired: true,
	}
	return p.cursor
}

// AdvanceAll moves every slot in [0, capacity), fired or not, by the pool
// speed along its frozen angle and passes the updated slot to visit.
// visit may be nil.
func (p *Pool) AdvanceAll(visit func(Projectile)) {
	for i := 0; i < p.cfg.Capacity; i++ {
		pr := p.slots[i]
		pos := geometry.Advance(pr.Pos(), pr.Angle, p.cfg.Speed)
		pr.X, pr.Y = pos.X, pos.Y
		p.slots[i] = pr

		if visit != nil {
			visit(pr)
		}
	}
}

// ForEachLive calls fn for every fired slot in the advanced range.
func (p *Pool) ForEachLive(fn func(Projectile)) {
	for i := 0; i < p.cfg.Capacity; i++ {
		if p.slots[i].Fired {
			fn(p.slots[i])
		}
	}
}

// Slot returns a copy of slot i, including the overflow slot at Capacity().
func (p *Pool) Slot(i int) Projectile {
	return p.slots[i]
}
