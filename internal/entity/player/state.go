package player

// MovementState is the animation-driving movement state.
type MovementState int

const (
	Idle MovementState = iota
	Walking
)

// String returns the state name.
func (s MovementState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	default:
		return "unknown"
	}
}

// FireState tracks whether a shot still needs its muzzle flash drawn.
type FireState int

const (
	Ready FireState = iota
	Discharged
)

// String returns the state name.
func (s FireState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Discharged:
		return "discharged"
	default:
		return "unknown"
	}
}

// Intents are the four directional latches. A latch is set by key-down and
// cleared by key-up, independent of actual motion.
type Intents struct {
	Up, Down, Left, Right bool
}

// Any reports whether any latch is set.
func (i Intents) Any() bool {
	return i.Up || i.Down || i.Left || i.Right
}

// axis is one direction of travel along x or y. It remembers which way the
// player last pushed so a released key keeps sliding the same way.
type axis struct {
	speed float64
	dir   int // -1, 0 or +1
}

// step applies the latches and one decay step, returning the position delta.
func (a *axis) step(neg, pos bool, t Tuning) int {
	delta := 0
	if neg {
		a.dir = -1
		a.speed = t.MaxSpeed
		delta -= int(t.MaxSpeed)
	}
	if pos {
		a.dir = 1
		a.speed = t.MaxSpeed
		delta += int(t.MaxSpeed)
	}

	if a.speed <= 0 {
		a.dir = 0
	}
	if a.dir != 0 {
		// The position uses speed minus one deceleration step, the stored
		// speed loses two.
		current := a.speed - t.Deceleration
		a.speed = current - t.Deceleration
		delta += a.dir * int(current)
	}
	return delta
}
