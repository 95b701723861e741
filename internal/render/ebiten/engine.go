package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/blorp/internal/render"
)

// Engine runs a render.Game in an Ebiten window.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) SetWindowSize(width, height int) { ebiten.SetWindowSize(width, height) }

func (e *Engine) SetWindowTitle(title string) { ebiten.SetWindowTitle(title) }

func (e *Engine) SetCursorHidden(hidden bool) {
	mode := ebiten.CursorModeVisible
	if hidden {
		mode = ebiten.CursorModeHidden
	}
	ebiten.SetCursorMode(mode)
}

func (e *Engine) SetTPS(tps int) { ebiten.SetTPS(tps) }

func (e *Engine) SetWindowClosingHandled(handled bool) { ebiten.SetWindowClosingHandled(handled) }

// RunGame blocks until the window closes or the game terminates.
func (e *Engine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&loop{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// loop is the ebiten.Game driving a render.Game.
type loop struct {
	game render.Game
}

func (l *loop) Update() error {
	if err := l.game.Update(); err != nil {
		if errors.Is(err, render.ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (l *loop) Draw(screen *ebiten.Image) {
	l.game.Draw(&Image{img: screen})
}

func (l *loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return l.game.Layout(outsideWidth, outsideHeight)
}
