package render

import "math"

// Canvas is what the game draws a frame onto. Angles are in degrees,
// clockwise-positive, and any real value is accepted.
type Canvas interface {
	// DrawCentered draws img unrotated with its centre on (x, y).
	DrawCentered(img Image, x, y int)

	// DrawRotated draws img with its centre on (x, y), rotated about its own
	// centre by angle degrees.
	DrawRotated(img Image, x, y int, angle float64, blend Blend)

	// DrawText draws a line of debug text with its top-left corner at (x, y).
	DrawText(text string, x, y int)
}

// ImageCanvas draws onto a destination Image using the backend GeoM.
type ImageCanvas struct {
	renderer Renderer
	dst      Image
}

// NewImageCanvas creates a canvas targeting dst. The renderer is only used for
// text and may be nil.
func NewImageCanvas(r Renderer, dst Image) *ImageCanvas {
	return &ImageCanvas{renderer: r, dst: dst}
}

// DrawCentered draws img unrotated with its centre on (x, y).
// A nil image (a sprite that never loaded) draws nothing.
func (c *ImageCanvas) DrawCentered(img Image, x, y int) {
	if img == nil {
		return
	}
	w, h := img.Size()

	opts := &DrawImageOptions{GeoM: NewGeoM()}
	opts.GeoM.Translate(float64(x-w/2), float64(y-h/2))
	c.dst.DrawImage(img, opts)
}

// DrawRotated draws img centred on (x, y) and rotated about its centre.
// The destination rectangle is placed with integer half extents so odd-sized
// sprites land on the same pixels at every angle. A non-finite angle is drawn
// unrotated.
func (c *ImageCanvas) DrawRotated(img Image, x, y int, angle float64, blend Blend) {
	if img == nil {
		return
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		angle = 0
	}
	w, h := img.Size()
	cx, cy := float64(w)/2, float64(h)/2

	opts := &DrawImageOptions{GeoM: NewGeoM(), Blend: blend}
	opts.GeoM.Translate(-cx, -cy)
	opts.GeoM.Rotate(math.Mod(angle, 360) * math.Pi / 180)
	opts.GeoM.Translate(float64(x-w/2)+cx, float64(y-h/2)+cy)
	c.dst.DrawImage(img, opts)
}

// DrawText draws debug text through the renderer.
func (c *ImageCanvas) DrawText(text string, x, y int) {
	if c.renderer == nil {
		return
	}
	c.renderer.DrawText(c.dst, text, x, y)
}
