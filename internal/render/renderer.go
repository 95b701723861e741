// Package render is the seam between the game and the graphics backend.
// The game only sees these interfaces; internal/render/ebiten implements them.
package render

import (
	"errors"
	"image"
	"image/color"
)

//go:generate go tool mockgen -destination=mock_render/mock_render.go -package=mock_render . InputManager,ResourceLoader

// ErrTerminated ends the game loop after an orderly shutdown.
var ErrTerminated = errors.New("render: game terminated")

// Image is a backend texture. Sprites and the screen are both Images.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	DrawImage(src Image, opts *DrawImageOptions)
	Dispose()
}

// Renderer creates images and draws debug text.
type Renderer interface {
	NewImage(width, height int) Image
	DrawText(dst Image, text string, x, y int)
}

// Blend is the blend mode of a draw.
type Blend int

const (
	BlendNormal   Blend = iota // source over destination
	BlendAdditive              // source added to destination
)

func (b Blend) String() string {
	switch b {
	case BlendNormal:
		return "normal"
	case BlendAdditive:
		return "additive"
	default:
		return "unknown"
	}
}

// GeoM is an affine transform applied to a draw, in the order the calls are
// made. Rotate takes radians.
type GeoM interface {
	Translate(tx, ty float64)
	Rotate(theta float64)
	Reset()
}

// NewGeoM returns an identity transform. The backend sets it on import.
var NewGeoM func() GeoM

// DrawImageOptions configures one DrawImage call.
type DrawImageOptions struct {
	GeoM  GeoM
	Blend Blend
}

// ResourceLoader turns files and in-memory pictures into Images.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
	NewImageFromImage(img image.Image) Image
}

// Game is driven by an Engine: Update once per tick, Draw once per frame.
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetCursorHidden(hidden bool)
	SetTPS(tps int)

	// SetWindowClosingHandled turns a window close into an EventQuit.
	SetWindowClosingHandled(handled bool)

	// RunGame blocks until the game ends. Ending with ErrTerminated is not
	// an error.
	RunGame(game Game) error
}
