// Package geometry holds the aiming and placement maths shared by the player
// and its projectiles. Angles crossing this package's API are in degrees,
// clockwise-positive in screen space (y grows downwards).
package geometry

import "math"

// Point represents a 2D point in screen space
type Point struct {
	X, Y float64
}

// Pt builds a Point from integer screen coordinates.
func Pt(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// spriteHeightDivisor scales the sprite height down to the distance between
// the sprite centre and the gun barrel.
const spriteHeightDivisor = 3.75

// barrelSine is sin(90) with 90 taken as radians (≈0.894), not 1.
var barrelSine = math.Sin(90)

// FacingAngle returns the rotation, in degrees, that points a sprite of the
// given height standing at from so its gun barrel lines up with to.
//
// The barrel sits off the sprite's centre line, so the straight bearing is
// corrected by asin(barrel offset / distance). The result is not normalised.
// It is NaN when from equals to, or when to is closer than the barrel offset.
func FacingAngle(from, to Point, height float64) float64 {
	d := Distance(from, to)
	correction := math.Asin((height / spriteHeightDivisor) * (barrelSine / d))
	bearing := math.Atan2(to.Y-from.Y, to.X-from.X)
	return (bearing - correction) * (180 / math.Pi)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// RotateOffset rotates a sprite-local offset (forward along the facing
// direction, lateral to its right) by angle degrees and returns the screen
// space displacement.
func RotateOffset(forward, lateral, angle float64) (dx, dy float64) {
	a := Radians(angle)
	dx = forward*math.Cos(a) - lateral*math.Sin(a)
	dy = forward*math.Sin(a) + lateral*math.Cos(a)
	return dx, dy
}

// Advance moves p by distance along angle degrees.
func Advance(p Point, angle, distance float64) Point {
	a := Radians(angle)
	return Point{
		X: p.X + math.Cos(a)*distance,
		Y: p.Y + math.Sin(a)*distance,
	}
}
