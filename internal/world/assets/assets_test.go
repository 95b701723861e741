package assets

import (
	"bytes"
	"errors"
	"image"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chosenoffset.com/blorp/internal/placeholders"
	"chosenoffset.com/blorp/internal/render"
	"chosenoffset.com/blorp/internal/render/mock_render"
	"chosenoffset.com/blorp/internal/render/rendertest"
	"chosenoffset.com/blorp/internal/simulation"
)

func testManifest() simulation.AssetsConfig {
	m := simulation.DefaultConfig().Assets
	m.Root = "res"
	return m
}

func TestResolve(t *testing.T) {
	m := testManifest()

	tests := []struct {
		name  string
		set   Set
		frame int
		want  string
	}{
		{"first idle body frame", IdleBody, 0, "gfx/idlebody/survivor-idle_handgun_0.png"},
		{"last walk body frame", WalkBody, 19, "gfx/movebody/survivor-move_handgun_19.png"},
		{"wraps past the end", WalkFeet, 23, "gfx/movefeet/survivor-walk_3.png"},
		{"wraps negative", IdleBody, -1, "gfx/idlebody/survivor-idle_handgun_19.png"},
		{"single ignores frame", IdleFeet, 7, "gfx/idlefeet/survivor-idle_0.png"},
		{"bullet", Bullet, 0, "gfx/bullet20x5.png"},
		{"muzzle flash", MuzzleFlash, 0, "gfx/shoot/muzzle_flash_01.png"},
		{"reticle", Reticle, 0, "gfx/reticle.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(m, tt.set, tt.frame)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join("res", tt.want), got)
		})
	}
}

func TestResolveIsCyclic(t *testing.T) {
	m := testManifest()
	for f := 0; f < 100; f++ {
		a, err := Resolve(m, WalkBody, f)
		require.NoError(t, err)
		b, err := Resolve(m, WalkBody, f+m.WalkBody.Frames)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestResolveUnknownSet(t *testing.T) {
	_, err := Resolve(testManifest(), Set("hat"), 0)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*simulation.AssetsConfig)
		wantErr string
	}{
		{"defaults", func(*simulation.AssetsConfig) {}, ""},
		{"missing verb", func(m *simulation.AssetsConfig) { m.IdleBody.Pattern = "idle.png" }, "idle_body.pattern"},
		{"extra verb", func(m *simulation.AssetsConfig) { m.WalkBody.Pattern = "%s_%d.png" }, "walk_body.pattern"},
		{"no frames", func(m *simulation.AssetsConfig) { m.IdleBody.Frames = 0 }, "idle_body.frames"},
		{"empty single", func(m *simulation.AssetsConfig) { m.Reticle = "" }, "reticle is empty"},
		{"walk mismatch", func(m *simulation.AssetsConfig) { m.WalkFeet.Frames = 19 }, "walk_feet has 19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testManifest()
			tt.mutate(&m)
			err := Validate(m)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid asset manifest")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// expectLoads answers every LoadImage with an image named after the path,
// failing for the paths in fail.
func expectLoads(loader *mock_render.MockResourceLoader, fail map[string]bool) {
	loader.EXPECT().LoadImage(gomock.Any()).DoAndReturn(func(path string) (render.Image, error) {
		if fail[path] {
			return nil, errors.New("file not found")
		}
		return rendertest.NewImage(path, 10, 10), nil
	}).AnyTimes()
}

func TestLoadAllSprites(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock_render.NewMockResourceLoader(ctrl)
	expectLoads(loader, nil)

	m := testManifest()
	lib, err := Load(m, loader, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, lib.Missing())

	anim := lib.Animations()
	require.Len(t, anim.IdleBody, 20)
	require.Len(t, anim.WalkBody, 20)
	require.Len(t, anim.WalkFeet, 20)

	name := func(img render.Image) string { return img.(*rendertest.Image).Name }
	assert.Equal(t, filepath.Join("res", "gfx/idlebody/survivor-idle_handgun_4.png"), name(anim.IdleBody[4]))
	assert.Equal(t, filepath.Join("res", "gfx/idlefeet/survivor-idle_0.png"), name(anim.IdleFeet))
	assert.Equal(t, filepath.Join("res", "gfx/movefeet/survivor-walk_19.png"), name(anim.WalkFeet[19]))
	assert.Equal(t, filepath.Join("res", "gfx/bullet20x5.png"), name(lib.Bullet()))
	assert.Equal(t, filepath.Join("res", "gfx/shoot/muzzle_flash_01.png"), name(lib.MuzzleFlash()))
	assert.Equal(t, filepath.Join("res", "gfx/reticle.png"), name(lib.Reticle()))
	assert.Equal(t, filepath.Join("res", "gfx/movebody/survivor-move_handgun_1.png"), name(lib.Frame(WalkBody, 21)))
}

func TestLoadSubstitutesPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock_render.NewMockResourceLoader(ctrl)

	m := testManifest()
	bad, err := Resolve(m, WalkBody, 3)
	require.NoError(t, err)
	expectLoads(loader, map[string]bool{bad: true})

	var got image.Image
	loader.EXPECT().NewImageFromImage(gomock.Any()).DoAndReturn(func(img image.Image) render.Image {
		got = img
		return rendertest.NewImage("placeholder", img.Bounds().Dx(), img.Bounds().Dy())
	}).Times(1)

	var buf bytes.Buffer
	lib, err := Load(m, loader, zerolog.New(&buf))
	require.NoError(t, err)

	assert.Equal(t, []string{bad}, lib.Missing())
	assert.Equal(t, "placeholder", lib.Animations().WalkBody[3].(*rendertest.Image).Name)
	require.NotNil(t, got)
	assert.Equal(t, placeholders.BodySize, got.Bounds().Size())

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"set":"walk_body"`)
	assert.Contains(t, out, "file not found")
	assert.Equal(t, 1, strings.Count(out, `"level":"warn"`))
}

func TestLoadRejectsInvalidManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock_render.NewMockResourceLoader(ctrl)

	m := testManifest()
	m.WalkFeet.Frames = 10

	lib, err := Load(m, loader, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, lib)
}

func TestDispose(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock_render.NewMockResourceLoader(ctrl)
	expectLoads(loader, nil)

	lib, err := Load(testManifest(), loader, zerolog.Nop())
	require.NoError(t, err)

	bullet := lib.Bullet().(*rendertest.Image)
	walk := lib.Animations().WalkBody[7].(*rendertest.Image)
	lib.Dispose()

	assert.True(t, bullet.Disposed)
	assert.True(t, walk.Disposed)
	assert.Nil(t, lib.Bullet())
	assert.Nil(t, lib.Frame(WalkBody, 0))
}
