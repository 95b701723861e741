package game

import (
	"fmt"

	"chosenoffset.com/blorp/internal/core/geometry"
	"chosenoffset.com/blorp/internal/entity/projectile"
	"chosenoffset.com/blorp/internal/render"
)

// Draw renders the last tick to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.cfg.Window.Background.Color())
	g.frame.Replay(render.NewImageCanvas(g.Renderer, screen))
}

// drawMuzzleFlash draws the one-frame flash at the gun barrel.
func (g *Game) drawMuzzleFlash(c render.Canvas) {
	p := g.Player
	dx, dy := geometry.RotateOffset(g.cfg.Muzzle.Forward, g.cfg.Muzzle.Lateral, p.Angle)
	x := int(dx + float64(p.X))
	y := int(dy + float64(p.Y))
	c.DrawRotated(g.sprites.MuzzleFlash(), x, y, p.Angle, render.BlendAdditive)
}

// advanceProjectiles moves every projectile and draws the fired ones.
func (g *Game) advanceProjectiles(c render.Canvas) {
	bullet := g.sprites.Bullet()
	g.Pool.AdvanceAll(func(pr projectile.Projectile) {
		if !pr.Fired {
			return
		}
		c.DrawRotated(bullet, int(pr.X), int(pr.Y), pr.Angle, render.BlendNormal)
	})
}

// drawPlayer draws the feet under the body, both facing the pointer.
func (g *Game) drawPlayer(c render.Canvas) {
	pose := g.Player.RenderPose()
	c.DrawRotated(pose.Feet, pose.X, pose.Y, pose.Angle, render.BlendNormal)
	c.DrawRotated(pose.Body, pose.X, pose.Y, pose.Angle, render.BlendNormal)
}

func (g *Game) drawReticle(c render.Canvas) {
	c.DrawCentered(g.sprites.Reticle(), g.PointerX, g.PointerY)
}

// drawDebug prints the overlay line in the top-left corner.
func (g *Game) drawDebug(c render.Canvas) {
	sx, sy := g.Player.Speed()
	c.DrawText(fmt.Sprintf("tps %d  tick %d  %s/%s  speed %.2f,%.2f  angle %.1f  cursor %d",
		g.cfg.Window.TPS, g.Ticks,
		g.Player.State, g.Player.Gun,
		sx, sy, g.Player.Angle,
		g.Pool.Cursor(),
	), 4, 4)
}
