// Package rendertest provides in-memory render doubles for tests.
package rendertest

import (
	"image/color"

	"chosenoffset.com/blorp/internal/render"
)

// Image is a fixed-size render.Image that records what was drawn onto it.
type Image struct {
	Name     string
	W, H     int
	Filled   color.Color
	Draws    []Draw
	Disposed bool
}

// Draw is one DrawImage call received by an Image.
type Draw struct {
	Src  render.Image
	Opts *render.DrawImageOptions
}

// NewImage creates a named image of the given size.
func NewImage(name string, w, h int) *Image {
	return &Image{Name: name, W: w, H: h}
}

func (i *Image) Size() (int, int) { return i.W, i.H }

func (i *Image) Fill(clr color.Color) { i.Filled = clr }

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.Draws = append(i.Draws, Draw{Src: src, Opts: opts})
}

func (i *Image) Dispose() { i.Disposed = true }

// GeoM records the operations applied to it.
type GeoM struct {
	Ops []GeoMOp
}

// GeoMOp is one recorded GeoM operation.
type GeoMOp struct {
	Kind string // "translate", "rotate", "reset"
	A, B float64
}

func (g *GeoM) Translate(tx, ty float64) { g.Ops = append(g.Ops, GeoMOp{Kind: "translate", A: tx, B: ty}) }

func (g *GeoM) Rotate(angle float64) { g.Ops = append(g.Ops, GeoMOp{Kind: "rotate", A: angle}) }

func (g *GeoM) Reset() { g.Ops = append(g.Ops, GeoMOp{Kind: "reset"}) }

// InstallGeoM points render.NewGeoM at the recording GeoM and returns a
// function restoring the previous constructor.
func InstallGeoM() func() {
	prev := render.NewGeoM
	render.NewGeoM = func() render.GeoM { return &GeoM{} }
	return func() { render.NewGeoM = prev }
}

// Renderer records debug text and creates Images.
type Renderer struct {
	Texts []string
}

func (r *Renderer) NewImage(w, h int) render.Image { return NewImage("", w, h) }

func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	r.Texts = append(r.Texts, text)
}
