// Package ebiten is the Ebitengine backend of the render interfaces.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/blorp/internal/render"
)

func init() {
	render.NewGeoM = func() render.GeoM { return &GeoM{} }
}

// Image is a render.Image backed by an *ebiten.Image.
type Image struct {
	img *ebiten.Image
}

func (i *Image) Size() (int, int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) Fill(clr color.Color) { i.img.Fill(clr) }

// DrawImage draws src onto i. src must come from this backend.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	var eo ebiten.DrawImageOptions
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			eo.GeoM = g.m
		}
		eo.Blend = toBlend(opts.Blend)
	}
	i.img.DrawImage(src.(*Image).img, &eo)
}

func (i *Image) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// toBlend maps a render blend mode onto Ebiten's. Additive is BlendLighter.
func toBlend(b render.Blend) ebiten.Blend {
	if b == render.BlendAdditive {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

// GeoM is a render.GeoM backed by ebiten.GeoM.
type GeoM struct {
	m ebiten.GeoM
}

func (g *GeoM) Translate(tx, ty float64) { g.m.Translate(tx, ty) }

func (g *GeoM) Rotate(theta float64) { g.m.Rotate(theta) }

func (g *GeoM) Reset() { g.m.Reset() }
