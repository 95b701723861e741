package game

import (
	"github.com/rs/zerolog"

	"chosenoffset.com/blorp/internal/core/geometry"
	"chosenoffset.com/blorp/internal/entity/player"
	"chosenoffset.com/blorp/internal/entity/projectile"
	"chosenoffset.com/blorp/internal/render"
	"chosenoffset.com/blorp/internal/simulation"
)

// Game holds all game state and logic. Everything is owned by the frame
// driver and only touched from Tick.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	State        State
	Player       *player.Player
	Pool         *projectile.Pool

	// Pointer position, refreshed once per tick
	PointerX int
	PointerY int

	Renderer render.Renderer
	InputMgr render.InputManager

	// Ticks counts completed ticks
	Ticks uint64

	cfg     *simulation.Config
	sprites Sprites
	logger  zerolog.Logger
	frame   render.DrawList
}

// New creates a running game with the player at the configured start.
func New(cfg *simulation.Config, sprites Sprites, input render.InputManager, r render.Renderer, logger zerolog.Logger) *Game {
	x, y := cfg.Start()
	tuning := player.Tuning{
		MaxSpeed:     cfg.Player.MaxSpeed,
		Deceleration: cfg.Player.Deceleration,
	}

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		State:        Running,
		Player:       player.New(x, y, tuning, sprites.Animations()),
		Pool: projectile.NewPool(projectile.Config{
			Capacity:     cfg.Projectile.Capacity,
			Speed:        cfg.Projectile.Speed,
			SpawnForward: cfg.Projectile.SpawnForward,
			SpawnLateral: cfg.Projectile.SpawnLateral,
		}),
		PointerX: x,
		PointerY: y,
		Renderer: r,
		InputMgr: input,
		cfg:      cfg,
		sprites:  sprites,
		logger:   logger,
	}

	logger.Info().
		Int("x", x).
		Int("y", y).
		Int("capacity", g.Pool.Capacity()).
		Msg("Game started")
	return g
}

// Update advances one tick, recording its draw calls for the next Draw.
func (g *Game) Update() error {
	g.frame.Reset()
	return g.Tick(&g.frame)
}

// Tick runs one iteration of the frame loop, issuing its draws on c.
// It returns render.ErrTerminated once the game has ended.
func (g *Game) Tick(c render.Canvas) error {
	if g.State == Terminated {
		return render.ErrTerminated
	}

	// Input
	g.handleInput()
	if g.State == Terminated {
		return render.ErrTerminated
	}
	g.PointerX, g.PointerY = g.InputMgr.GetCursorPosition()

	// Effects and projectiles
	if g.Player.Gun == player.Discharged {
		g.drawMuzzleFlash(c)
		g.Player.MuzzleFlashed()
	}
	g.advanceProjectiles(c)

	// Motion
	g.Player.AdvanceMotion(geometry.Pt(g.PointerX, g.PointerY))

	// Player and pointer
	g.drawPlayer(c)
	g.drawReticle(c)
	if g.cfg.Debug.Overlay {
		g.drawDebug(c)
	}

	g.Ticks++
	return nil
}

// handleInput drains the pending events. Events after a quit are dropped.
func (g *Game) handleInput() {
	for _, ev := range g.InputMgr.PollEvents() {
		if g.State == Terminated {
			return
		}
		switch ev.Type {
		case render.EventQuit:
			g.terminate("quit")
		case render.EventMouseDown:
			slot := g.Player.Fire(g.Pool)
			g.logger.Debug().
				Int("slot", slot).
				Float64("angle", g.Player.Angle).
				Stringer("button", ev.Button).
				Msg("Fired")
		case render.EventKeyDown:
			if ev.Key == render.KeyEscape {
				g.terminate("escape")
				continue
			}
			g.Player.ApplyKey(ev.Key, true, ev.Repeat)
		case render.EventKeyUp:
			g.Player.ApplyKey(ev.Key, false, ev.Repeat)
		}
	}
}

// terminate ends the game and releases the sprites.
func (g *Game) terminate(reason string) {
	if g.State == Terminated {
		return
	}
	g.State = Terminated
	if g.sprites != nil {
		g.sprites.Dispose()
	}
	g.frame.Reset()
	g.logger.Info().
		Str("reason", reason).
		Uint64("ticks", g.Ticks).
		Msg("Game terminated")
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
