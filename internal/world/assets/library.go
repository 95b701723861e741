package assets

import (
	"github.com/rs/zerolog"

	"chosenoffset.com/blorp/internal/entity/player"
	"chosenoffset.com/blorp/internal/placeholders"
	"chosenoffset.com/blorp/internal/render"
	"chosenoffset.com/blorp/internal/simulation"
)

// Library holds every sprite named by the manifest.
type Library struct {
	sprites map[Set][]render.Image
	missing []string
}

// Load validates the manifest and loads every sprite through loader. A sprite
// that fails to load is logged and replaced by the missing texture; only an
// invalid manifest is an error.
func Load(m simulation.AssetsConfig, loader render.ResourceLoader, logger zerolog.Logger) (*Library, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}

	lib := &Library{sprites: make(map[Set][]render.Image, len(Sets))}
	for _, s := range Sets {
		n := Frames(m, s)
		frames := make([]render.Image, n)
		for i := range n {
			path, err := Resolve(m, s, i)
			if err != nil {
				return nil, err
			}
			img, err := loader.LoadImage(path)
			if err != nil || img == nil {
				logger.Warn().Err(err).Str("set", string(s)).Str("path", path).Msg("Failed to load sprite, using placeholder")
				size := s.placeholderSize()
				img = loader.NewImageFromImage(placeholders.MissingTexture(size.X, size.Y))
				lib.missing = append(lib.missing, path)
			}
			frames[i] = img
		}
		lib.sprites[s] = frames
	}

	logger.Info().
		Int("sprites", lib.count()).
		Int("missing", len(lib.missing)).
		Str("root", m.Root).
		Msg("Loaded sprites")
	return lib, nil
}

func (l *Library) count() int {
	n := 0
	for _, frames := range l.sprites {
		n += len(frames)
	}
	return n
}

func (l *Library) first(s Set) render.Image {
	if frames := l.sprites[s]; len(frames) > 0 {
		return frames[0]
	}
	return nil
}

// Frame returns a frame of the set, wrapping around its length.
func (l *Library) Frame(s Set, frame int) render.Image {
	frames := l.sprites[s]
	if len(frames) == 0 {
		return nil
	}
	frame %= len(frames)
	if frame < 0 {
		frame += len(frames)
	}
	return frames[frame]
}

// Animations returns the player's animation frames.
func (l *Library) Animations() player.Animations {
	return player.Animations{
		IdleBody: l.sprites[IdleBody],
		IdleFeet: l.first(IdleFeet),
		WalkBody: l.sprites[WalkBody],
		WalkFeet: l.sprites[WalkFeet],
	}
}

func (l *Library) Bullet() render.Image { return l.first(Bullet) }

func (l *Library) MuzzleFlash() render.Image { return l.first(MuzzleFlash) }

func (l *Library) Reticle() render.Image { return l.first(Reticle) }

// Missing returns the paths that were replaced by placeholders.
func (l *Library) Missing() []string { return l.missing }

// Dispose releases every sprite. The library is empty afterwards.
func (l *Library) Dispose() {
	for s, frames := range l.sprites {
		for _, img := range frames {
			if img != nil {
				img.Dispose()
			}
		}
		delete(l.sprites, s)
	}
}
