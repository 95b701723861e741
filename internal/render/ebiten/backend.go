package ebiten

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"chosenoffset.com/blorp/internal/render"
)

var (
	_ render.Renderer       = (*Renderer)(nil)
	_ render.ResourceLoader = (*Loader)(nil)
	_ render.InputManager   = (*Input)(nil)
	_ render.Engine         = (*Engine)(nil)
	_ render.Image          = (*Image)(nil)
)

// Renderer creates Ebiten images and prints debug text.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{img: ebiten.NewImage(width, height)}
}

// DrawText prints text with Ebiten's debug font.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(dst.(*Image).img, text, x, y)
}

// Loader loads sprites from disk.
type Loader struct{}

func NewResourceLoader() *Loader { return &Loader{} }

// LoadImage decodes a PNG (or any registered format) from path.
func (l *Loader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return &Image{img: img}, nil
}

func (l *Loader) NewImageFromImage(img image.Image) render.Image {
	return &Image{img: ebiten.NewImageFromImage(img)}
}
