// Package placeholders draws stand-in sprites: the "missing texture" used when
// an asset fails to load, and placeholder art for every asset in the manifest
// so the game runs without the real artwork.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"chosenoffset.com/blorp/internal/simulation"
)

// Sprite sizes, matching the survivor artwork so aiming and offsets line up.
var (
	BodySize    = image.Pt(253, 216)
	FeetSize    = image.Pt(172, 124)
	BulletSize  = image.Pt(20, 5)
	MuzzleSize  = image.Pt(64, 48)
	ReticleSize = image.Pt(48, 48)
)

// MissingSize is the size of the missing-texture checkerboard.
const MissingSize = 32

// ColorPalette defines colors for the placeholder sprites
var ColorPalette = struct {
	MissingA color.RGBA
	MissingB color.RGBA

	Body     color.RGBA
	BodyWalk color.RGBA
	Gun      color.RGBA
	Feet     color.RGBA
	Bullet   color.RGBA
	Muzzle   color.RGBA
	Reticle  color.RGBA
	FrameBar color.RGBA
}{
	MissingA: color.RGBA{255, 0, 255, 255}, // Magenta
	MissingB: color.RGBA{0, 0, 0, 255},

	Body:     color.RGBA{0, 200, 100, 255},  // Green
	BodyWalk: color.RGBA{0, 160, 200, 255},  // Teal while walking
	Gun:      color.RGBA{60, 60, 60, 255},   // Gunmetal
	Feet:     color.RGBA{90, 70, 50, 255},   // Boots
	Bullet:   color.RGBA{255, 215, 0, 255},  // Gold
	Muzzle:   color.RGBA{255, 160, 40, 255}, // Flash orange
	Reticle:  color.RGBA{255, 50, 50, 255},  // Red
	FrameBar: color.RGBA{255, 255, 255, 255},
}

var transparent = color.RGBA{0, 0, 0, 0}

// newCanvas creates a transparent image of the given size
func newCanvas(size image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), &image.Uniform{transparent}, image.Point{}, draw.Src)
	return img
}

// fillRect fills r with col
func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Src)
}

// fillEllipse fills the ellipse inscribed in r
func fillEllipse(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, col)
			}
		}
	}
}

// MissingTexture creates the checkerboard drawn in place of an asset that
// could not be loaded
func MissingTexture(w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		w, h = MissingSize, MissingSize
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cell := max(w, h) / 4
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, ColorPalette.MissingA)
			} else {
				img.Set(x, y, ColorPalette.MissingB)
			}
		}
	}
	return img
}

// frameBar draws a bar whose length shows frame out of frames along the top edge
func frameBar(img *image.RGBA, frame, frames int) {
	if frames <= 0 {
		return
	}
	w := img.Bounds().Dx() * (frame + 1) / frames
	fillRect(img, image.Rect(0, 0, w, 4), ColorPalette.FrameBar)
}

// Body creates a body frame: a torso facing +x with the gun held to the right
// (towards +y), so rotating it by the facing angle points the gun along it.
func Body(frame, frames int, walking bool) *image.RGBA {
	img := newCanvas(BodySize)
	col := ColorPalette.Body
	if walking {
		col = ColorPalette.BodyWalk
	}

	w, h := BodySize.X, BodySize.Y
	// Torso breathes a little over the cycle
	inset := 30 + (frame%5)*2
	fillEllipse(img, image.Rect(inset, inset, w/2+40-inset/2, h-inset), Darken(col, 0.8))
	fillEllipse(img, image.Rect(w/4, h/3, w/2+10, 2*h/3), col)
	// Gun arm along the facing direction, offset to the right
	gunY := h/2 + 56/2
	fillRect(img, image.Rect(w/2, gunY-6, w-4, gunY+6), ColorPalette.Gun)

	frameBar(img, frame, frames)
	return img
}

// Feet creates a feet frame; the feet alternate over the cycle
func Feet(frame, frames int) *image.RGBA {
	img := newCanvas(FeetSize)
	w, h := FeetSize.X, FeetSize.Y

	stride := 0
	if frames > 0 {
		// -20..20 and back over one cycle
		phase := frame * 4 * 20 / frames
		stride = phase
		if phase > 20 && phase <= 60 {
			stride = 40 - phase
		} else if phase > 60 {
			stride = phase - 80
		}
	}

	left := image.Rect(w/2-30+stride, h/4-12, w/2+30+stride, h/4+12)
	right := image.Rect(w/2-30-stride, 3*h/4-12, w/2+30-stride, 3*h/4+12)
	fillEllipse(img, left, ColorPalette.Feet)
	fillEllipse(img, right, ColorPalette.Feet)
	return img
}

// Bullet creates the projectile sprite
func Bullet() *image.RGBA {
	img := newCanvas(BulletSize)
	fillRect(img, img.Bounds(), ColorPalette.Bullet)
	fillRect(img, image.Rect(BulletSize.X-4, 0, BulletSize.X, BulletSize.Y), Lighten(ColorPalette.Bullet, 0.6))
	return img
}

// MuzzleFlash creates the flash sprite; black is left transparent for the
// additive blend.
func MuzzleFlash() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: MuzzleSize})
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 255}}, image.Point{}, draw.Src)
	fillEllipse(img, img.Bounds(), Darken(ColorPalette.Muzzle, 0.6))
	inner := img.Bounds().Inset(MuzzleSize.Y / 4)
	fillEllipse(img, inner, ColorPalette.Muzzle)
	return img
}

// Reticle creates the crosshair drawn at the pointer
func Reticle() *image.RGBA {
	img := newCanvas(ReticleSize)
	w, h := ReticleSize.X, ReticleSize.Y
	col := ColorPalette.Reticle

	// Ring
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := x - w/2
			dy := y - h/2
			d := dx*dx + dy*dy
			r := w/2 - 2
			if d <= r*r && d >= (r-3)*(r-3) {
				img.Set(x, y, col)
			}
		}
	}
	// Cross hairs
	fillRect(img, image.Rect(w/2-1, 0, w/2+1, h), col)
	fillRect(img, image.Rect(0, h/2-1, w, h/2+1), col)
	return img
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

// SavePNG saves an image to a PNG file, creating parent directories
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Asset is one file of the placeholder set
type Asset struct {
	Path  string
	Image image.Image
}

// ForManifest builds a placeholder for every file named by the manifest
func ForManifest(m simulation.AssetsConfig) []Asset {
	var out []Asset
	add := func(rel string, img image.Image) {
		out = append(out, Asset{Path: filepath.Join(m.Root, rel), Image: img})
	}

	for i := 0; i < m.IdleBody.Frames; i++ {
		add(fmt.Sprintf(m.IdleBody.Pattern, i), Body(i, m.IdleBody.Frames, false))
	}
	add(m.IdleFeet, Feet(0, 0))
	for i := 0; i < m.WalkBody.Frames; i++ {
		add(fmt.Sprintf(m.WalkBody.Pattern, i), Body(i, m.WalkBody.Frames, true))
	}
	for i := 0; i < m.WalkFeet.Frames; i++ {
		add(fmt.Sprintf(m.WalkFeet.Pattern, i), Feet(i, m.WalkFeet.Frames))
	}
	add(m.Bullet, Bullet())
	add(m.MuzzleFlash, MuzzleFlash())
	add(m.Reticle, Reticle())
	return out
}

// GenerateAndSave writes the placeholder set for the manifest. Existing files
// are kept unless overwrite is set. It returns the paths written.
func GenerateAndSave(m simulation.AssetsConfig, overwrite bool) ([]string, error) {
	var written []string
	for _, a := range ForManifest(m) {
		if !overwrite {
			if _, err := os.Stat(a.Path); err == nil {
				continue
			}
		}
		if err := SavePNG(a.Image, a.Path); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", a.Path, err)
		}
		written = append(written, a.Path)
	}
	return written, nil
}
