package game

import (
	"bytes"
	"fmt"
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chosenoffset.com/blorp/internal/entity/player"
	"chosenoffset.com/blorp/internal/render"
	"chosenoffset.com/blorp/internal/render/mock_render"
	"chosenoffset.com/blorp/internal/render/rendertest"
	"chosenoffset.com/blorp/internal/simulation"
)

// fakeSprites is a sprite set of tiny named images. The body is two pixels
// tall so aiming is close to the plain bearing.
type fakeSprites struct {
	anim     player.Animations
	bullet   *rendertest.Image
	flash    *rendertest.Image
	reticle  *rendertest.Image
	disposed int
}

func newFakeSprites() *fakeSprites {
	s := &fakeSprites{
		bullet:  rendertest.NewImage("bullet", 20, 5),
		flash:   rendertest.NewImage("flash", 8, 8),
		reticle: rendertest.NewImage("reticle", 8, 8),
	}
	s.anim.IdleFeet = rendertest.NewImage("idle_feet", 4, 2)
	for i := 0; i < 20; i++ {
		s.anim.IdleBody = append(s.anim.IdleBody, rendertest.NewImage(fmt.Sprintf("idle_body_%d", i), 4, 2))
		s.anim.WalkBody = append(s.anim.WalkBody, rendertest.NewImage(fmt.Sprintf("walk_body_%d", i), 4, 2))
		s.anim.WalkFeet = append(s.anim.WalkFeet, rendertest.NewImage(fmt.Sprintf("walk_feet_%d", i), 4, 2))
	}
	return s
}

func (s *fakeSprites) Animations() player.Animations { return s.anim }
func (s *fakeSprites) Bullet() render.Image          { return s.bullet }
func (s *fakeSprites) MuzzleFlash() render.Image     { return s.flash }
func (s *fakeSprites) Reticle() render.Image         { return s.reticle }
func (s *fakeSprites) Dispose()                      { s.disposed++ }

type fixture struct {
	game    *Game
	input   *mock_render.MockInputManager
	sprites *fakeSprites
	list    *render.DrawList
}

func newFixture(t *testing.T, cfg *simulation.Config) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	input := mock_render.NewMockInputManager(ctrl)
	sprites := newFakeSprites()
	return &fixture{
		game:    New(cfg, sprites, input, &rendertest.Renderer{}, zerolog.Nop()),
		input:   input,
		sprites: sprites,
		list:    &render.DrawList{},
	}
}

// expectTicks queues one batch of events per tick, then no events.
func (f *fixture) expectTicks(cursorX, cursorY int, batches ...[]render.Event) {
	for _, b := range batches {
		f.input.EXPECT().PollEvents().Return(b).Times(1)
	}
	f.input.EXPECT().PollEvents().Return(nil).AnyTimes()
	f.input.EXPECT().GetCursorPosition().Return(cursorX, cursorY).AnyTimes()
}

func (f *fixture) tick(t *testing.T) []render.DrawCommand {
	t.Helper()
	f.list.Reset()
	require.NoError(t, f.game.Tick(f.list))
	return f.list.Commands()
}

func names(cmds []render.DrawCommand) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		if c.Op == render.OpText {
			out = append(out, "text")
			continue
		}
		out = append(out, c.Image.(*rendertest.Image).Name)
	}
	return out
}

func keyDown(k render.Key) render.Event { return render.Event{Type: render.EventKeyDown, Key: k} }
func keyUp(k render.Key) render.Event   { return render.Event{Type: render.EventKeyUp, Key: k} }

func TestNewStartsAtScreenCentre(t *testing.T) {
	f := newFixture(t, simulation.DefaultConfig())

	assert.Equal(t, Running, f.game.State)
	assert.Equal(t, 900, f.game.Player.X)
	assert.Equal(t, 500, f.game.Player.Y)
	assert.Equal(t, player.Idle, f.game.Player.State)
	assert.Equal(t, 15, f.game.Pool.Capacity())
}

func TestIdleAimAndPose(t *testing.T) {
	f := newFixture(t, simulation.DefaultConfig())
	f.expectTicks(1000, 500)

	cmds := f.tick(t)
	assert.Equal(t, []string{"idle_feet", "idle_body_0", "reticle"}, names(cmds))
	assert.InDelta(t, 0, f.game.Player.Angle, 1)

	// Feet and body are rotated about the player, the reticle is centred on the pointer
	assert.Equal(t, render.OpRotated, cmds[0].Op)
	assert.Equal(t, 900, cmds[1].X)
	assert.Equal(t, 500, cmds[1].Y)
	assert.Equal(t, f.game.Player.Angle, cmds[1].Angle)
	assert.Equal(t, render.DrawCommand{Op: render.OpCentered, Image: f.sprites.reticle, X: 1000, Y: 500}, cmds[2])

	cmds = f.tick(t)
	assert.Equal(t, []string{"idle_feet", "idle_body_1", "reticle"}, names(cmds))
}

func TestFireSpawnsAndAdvancesProjectile(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Player.StartX, cfg.Player.StartY = 500, 500
	f := newFixture(t, cfg)
	f.expectTicks(600, 500, []render.Event{{Type: render.EventMouseDown, Button: render.MouseButtonLeft}})

	cmds := f.tick(t)
	require.Equal(t, []string{"flash", "bullet", "idle_feet", "idle_body_0", "reticle"}, names(cmds))

	// Muzzle flash at (500+130, 500+56), additive
	assert.Equal(t, render.DrawCommand{
		Op: render.OpRotated, Image: f.sprites.flash, X: 630, Y: 556, Angle: 0, Blend: render.BlendAdditive,
	}, cmds[0])

	// Spawned at (580, 556) and advanced once
	assert.Equal(t, 615, cmds[1].X)
	assert.Equal(t, 556, cmds[1].Y)
	assert.Equal(t, render.BlendNormal, cmds[1].Blend)

	shot := f.game.Pool.Slot(1)
	assert.True(t, shot.Fired)
	assert.Equal(t, 615.0, shot.X)
	assert.Equal(t, 0.0, shot.Angle)
	assert.Equal(t, player.Ready, f.game.Player.Gun)

	// The flash lasts one frame, the bullet keeps flying
	cmds = f.tick(t)
	assert.Equal(t, []string{"bullet", "idle_feet", "idle_body_1", "reticle"}, names(cmds))
	assert.Equal(t, 650, cmds[0].X)
}

func TestAnyMouseButtonFires(t *testing.T) {
	f := newFixture(t, simulation.DefaultConfig())
	f.expectTicks(1000, 500, []render.Event{
		{Type: render.EventMouseDown, Button: render.MouseButtonRight},
		{Type: render.EventMouseDown, Button: render.MouseButtonMiddle},
	})

	f.tick(t)
	assert.Equal(t, 2, f.game.Pool.Cursor())
}

func TestTapUpSlidesToAStop(t *testing.T) {
	f := newFixture(t, simulation.DefaultConfig())
	f.expectTicks(1000, 500,
		[]render.Event{keyDown(render.KeyW)},
		[]render.Event{keyUp(render.KeyW)},
	)

	f.tick(t)
	assert.Equal(t, 489, f.game.Player.Y)
	assert.Equal(t, player.Walking, f.game.Player.State)

	// Latch released, still sliding up
	cmds := f.tick(t)
	assert.Equal(t, 484, f.game.Player.Y)
	assert.Equal(t, "walk_body_1", names(cmds)[1])

	for i := 0; i < 15; i++ {
		f.tick(t)
	}
	assert.Equal(t, 464, f.game.Player.Y)
	assert.Equal(t, 900, f.game.Player.X)
	assert.Equal(t, player.Idle, f.game.Player.State)
}

func TestRepeatedKeyDownIsIgnored(t *testing.T) {
	f := newFixture(t, simulation.DefaultConfig())
	f.expectTicks(1000, 500, []render.Event{{Type: render.EventKeyDown, Key: render.KeyD, Repeat: true}})

	f.tick(t)
	assert.Equal(t, 900, f.game.Player.X)
	assert.Equal(t, player.Idle, f.game.Player.State)
}

func TestTermination(t *testing.T) {
	tests := []struct {
		name   string
		events []render.Event
	}{
		{"escape", []render.Event{keyDown(render.KeyEscape), {Type: render.EventMouseDown}}},
		{"quit", []render.Event{{Type: render.EventQuit}, keyDown(render.KeyW)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			input := mock_render.NewMockInputManager(ctrl)
			sprites := newFakeSprites()

			var buf bytes.Buffer
			g := New(simulation.DefaultConfig(), sprites, input, nil, zerolog.New(&buf))

			// The pointer is never read once the game has ended
			input.EXPECT().PollEvents().Return(tt.events).Times(1)

			var list render.DrawList
			err := g.Tick(&list)
			require.ErrorIs(t, err, render.ErrTerminated)
			assert.Equal(t, Terminated, g.State)
			assert.Equal(t, 1, sprites.disposed)
			assert.Equal(t, 0, list.Len())

			// Events after the exit are dropped
			assert.Equal(t, 0, g.Pool.Cursor())
			assert.False(t, g.Player.Intents.Any())
			assert.Contains(t, buf.String(), fmt.Sprintf(`"reason":%q`, tt.name))

			// Further ticks do nothing
			require.ErrorIs(t, g.Tick(&list), render.ErrTerminated)
			require.ErrorIs(t, g.Update(), render.ErrTerminated)
			assert.Equal(t, 1, sprites.disposed)
		})
	}
}

func TestUpdateAndDraw(t *testing.T) {
	defer rendertest.InstallGeoM()()

	f := newFixture(t, simulation.DefaultConfig())
	f.expectTicks(1000, 500)

	require.NoError(t, f.game.Update())
	assert.Equal(t, uint64(1), f.game.Ticks)

	screen := rendertest.NewImage("screen", 1800, 1000)
	f.game.Draw(screen)

	assert.Equal(t, color.RGBA{120, 144, 156, 255}, screen.Filled)
	require.Len(t, screen.Draws, 3)
	assert.Same(t, f.sprites.anim.IdleFeet, screen.Draws[0].Src)
	assert.Same(t, f.sprites.reticle, screen.Draws[2].Src)

	// Draw only replays, it does not tick
	f.game.Draw(screen)
	assert.Len(t, screen.Draws, 6)
	assert.Equal(t, uint64(1), f.game.Ticks)
}

func TestDebugOverlay(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Debug.Overlay = true
	f := newFixture(t, cfg)
	f.expectTicks(1000, 500)

	cmds := f.tick(t)
	require.Len(t, cmds, 4)
	last := cmds[3]
	assert.Equal(t, render.OpText, last.Op)
	assert.Contains(t, last.Text, "tps 60")
	assert.Contains(t, last.Text, "idle/ready")
}

func TestLayout(t *testing.T) {
	f := newFixture(t, simulation.DefaultConfig())
	w, h := f.game.Layout(640, 480)
	assert.Equal(t, 1800, w)
	assert.Equal(t, 1000, h)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "terminated", Terminated.String())
}
