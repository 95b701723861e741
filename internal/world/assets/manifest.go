// Package assets turns the asset manifest into the sprite library used by the
// game. Every sprite is loaded once at startup.
package assets

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"chosenoffset.com/blorp/internal/placeholders"
	"chosenoffset.com/blorp/internal/simulation"
)

// Set names one entry of the manifest.
type Set string

const (
	IdleBody    Set = "idle_body"
	IdleFeet    Set = "idle_feet"
	WalkBody    Set = "walk_body"
	WalkFeet    Set = "walk_feet"
	Bullet      Set = "bullet"
	MuzzleFlash Set = "muzzle_flash"
	Reticle     Set = "reticle"
)

// Sets lists every set in load order.
var Sets = []Set{IdleBody, IdleFeet, WalkBody, WalkFeet, Bullet, MuzzleFlash, Reticle}

// Animated reports whether the set is a numbered frame sequence.
func (s Set) Animated() bool {
	switch s {
	case IdleBody, WalkBody, WalkFeet:
		return true
	}
	return false
}

// placeholderSize is the size of the stand-in used when a sprite of the set
// cannot be loaded.
func (s Set) placeholderSize() image.Point {
	switch s {
	case IdleBody, WalkBody:
		return placeholders.BodySize
	case IdleFeet, WalkFeet:
		return placeholders.FeetSize
	case Bullet:
		return placeholders.BulletSize
	case MuzzleFlash:
		return placeholders.MuzzleSize
	case Reticle:
		return placeholders.ReticleSize
	}
	return image.Pt(placeholders.MissingSize, placeholders.MissingSize)
}

func animation(m simulation.AssetsConfig, s Set) (simulation.AnimationAsset, bool) {
	switch s {
	case IdleBody:
		return m.IdleBody, true
	case WalkBody:
		return m.WalkBody, true
	case WalkFeet:
		return m.WalkFeet, true
	}
	return simulation.AnimationAsset{}, false
}

func single(m simulation.AssetsConfig, s Set) (string, bool) {
	switch s {
	case IdleFeet:
		return m.IdleFeet, true
	case Bullet:
		return m.Bullet, true
	case MuzzleFlash:
		return m.MuzzleFlash, true
	case Reticle:
		return m.Reticle, true
	}
	return "", false
}

// Frames returns the number of frames of the set; single sprites have one.
func Frames(m simulation.AssetsConfig, s Set) int {
	if a, ok := animation(m, s); ok {
		return a.Frames
	}
	return 1
}

// Resolve returns the file path of a frame of the set. Frame indices wrap
// around the length of the sequence; single sprites ignore the frame.
func Resolve(m simulation.AssetsConfig, s Set, frame int) (string, error) {
	if a, ok := animation(m, s); ok {
		if a.Frames <= 0 {
			return "", fmt.Errorf("%s has no frames", s)
		}
		frame %= a.Frames
		if frame < 0 {
			frame += a.Frames
		}
		return filepath.Join(m.Root, fmt.Sprintf(a.Pattern, frame)), nil
	}
	if p, ok := single(m, s); ok {
		return filepath.Join(m.Root, p), nil
	}
	return "", fmt.Errorf("unknown asset set: %q", s)
}

// Validate checks that every set resolves and that the walking body and feet
// animate in step.
func Validate(m simulation.AssetsConfig) error {
	var errs []error
	for _, s := range Sets {
		if a, ok := animation(m, s); ok {
			if strings.Count(a.Pattern, "%d") != 1 || strings.Count(a.Pattern, "%") != 1 {
				errs = append(errs, fmt.Errorf("%s.pattern must contain a single %%d, got %q", s, a.Pattern))
			}
			if a.Frames <= 0 {
				errs = append(errs, fmt.Errorf("%s.frames must be positive, got %d", s, a.Frames))
			}
			continue
		}
		if p, _ := single(m, s); p == "" {
			errs = append(errs, fmt.Errorf("%s is empty", s))
		}
	}
	if m.WalkBody.Frames != m.WalkFeet.Frames {
		errs = append(errs, fmt.Errorf("walk_body has %d frames but walk_feet has %d", m.WalkBody.Frames, m.WalkFeet.Frames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid asset manifest: %w", errors.Join(errs...))
	}
	return nil
}
