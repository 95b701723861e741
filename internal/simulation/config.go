// Package simulation provides configuration for the game: window, movement
// and projectile tuning, asset manifest and logging. Every value has a
// default so the game runs without a config file.
package simulation

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. BLORP_PLAYER_MAX_SPEED.
const EnvPrefix = "BLORP"

// Config holds all settings for a game
type Config struct {
	Window     WindowConfig     `mapstructure:"window"`
	Player     PlayerConfig     `mapstructure:"player"`
	Projectile ProjectileConfig `mapstructure:"projectile"`
	Muzzle     MuzzleConfig     `mapstructure:"muzzle"`
	Assets     AssetsConfig     `mapstructure:"assets"`
	Log        LogConfig        `mapstructure:"log"`
	Debug      DebugConfig      `mapstructure:"debug"`
}

// WindowConfig defines the window and frame pacing
type WindowConfig struct {
	Title      string `mapstructure:"title"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	TPS        int    `mapstructure:"tps"`        // Ticks per second (60 ≈ 16 ms per frame)
	Background RGB    `mapstructure:"background"` // Clear colour
	HideCursor bool   `mapstructure:"hide_cursor"`
}

// RGB is an opaque colour.
type RGB struct {
	R uint8 `mapstructure:"r"`
	G uint8 `mapstructure:"g"`
	B uint8 `mapstructure:"b"`
}

// Color returns the colour as a color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// PlayerConfig defines movement. Speeds are units per tick, not per second.
type PlayerConfig struct {
	MaxSpeed     float64 `mapstructure:"max_speed"`    // Speed set while a direction is held
	Deceleration float64 `mapstructure:"deceleration"` // Per-tick speed loss once released
	StartX       int     `mapstructure:"start_x"`      // Negative means window centre
	StartY       int     `mapstructure:"start_y"`
}

// ProjectileConfig defines the projectile pool
type ProjectileConfig struct {
	Capacity     int     `mapstructure:"capacity"`
	Speed        float64 `mapstructure:"speed"`         // Units per tick
	SpawnForward float64 `mapstructure:"spawn_forward"` // Spawn offset along the facing direction
	SpawnLateral float64 `mapstructure:"spawn_lateral"` // Spawn offset to the right of it
}

// MuzzleConfig defines where the muzzle flash appears
type MuzzleConfig struct {
	Forward float64 `mapstructure:"forward"`
	Lateral float64 `mapstructure:"lateral"`
}

// AssetsConfig is the asset manifest. Animated sets use a pattern with a
// single %d that is replaced with the frame index.
type AssetsConfig struct {
	Root        string         `mapstructure:"root"`
	IdleBody    AnimationAsset `mapstructure:"idle_body"`
	IdleFeet    string         `mapstructure:"idle_feet"`
	WalkBody    AnimationAsset `mapstructure:"walk_body"`
	WalkFeet    AnimationAsset `mapstructure:"walk_feet"`
	Bullet      string         `mapstructure:"bullet"`
	MuzzleFlash string         `mapstructure:"muzzle_flash"`
	Reticle     string         `mapstructure:"reticle"`
}

// AnimationAsset is a numbered sequence of sprite files.
type AnimationAsset struct {
	Pattern string `mapstructure:"pattern"`
	Frames  int    `mapstructure:"frames"`
}

// LogConfig defines logging
type LogConfig struct {
	Level  string `mapstructure:"level"`  // zerolog level name
	Format string `mapstructure:"format"` // "console" or "json"
}

// DebugConfig toggles development aids
type DebugConfig struct {
	Overlay bool `mapstructure:"overlay"` // Draw a line of state information
}

// DefaultConfig returns the settings the game was tuned with
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Blorp is going to F U UP!",
			Width:      1800,
			Height:     1000,
			TPS:        60,
			Background: RGB{R: 120, G: 144, B: 156},
			HideCursor: true,
		},
		Player: PlayerConfig{
			MaxSpeed:     6.0,
			Deceleration: 0.25,
			StartX:       -1,
			StartY:       -1,
		},
		Projectile: ProjectileConfig{
			Capacity:     15,
			Speed:        35,
			SpawnForward: 80,
			SpawnLateral: 56,
		},
		Muzzle: MuzzleConfig{
			Forward: 130,
			Lateral: 56,
		},
		Assets: AssetsConfig{
			Root:        ".",
			IdleBody:    AnimationAsset{Pattern: "gfx/idlebody/survivor-idle_handgun_%d.png", Frames: 20},
			IdleFeet:    "gfx/idlefeet/survivor-idle_0.png",
			WalkBody:    AnimationAsset{Pattern: "gfx/movebody/survivor-move_handgun_%d.png", Frames: 20},
			WalkFeet:    AnimationAsset{Pattern: "gfx/movefeet/survivor-walk_%d.png", Frames: 20},
			Bullet:      "gfx/bullet20x5.png",
			MuzzleFlash: "gfx/shoot/muzzle_flash_01.png",
			Reticle:     "gfx/reticle.png",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Start returns the player start position, defaulting to the window centre.
func (c *Config) Start() (x, y int) {
	x, y = c.Player.StartX, c.Player.StartY
	if x < 0 {
		x = c.Window.Width / 2
	}
	if y < 0 {
		y = c.Window.Height / 2
	}
	return x, y
}

// NewViper creates a viper instance with every default registered, reading
// environment overrides. Command-line flags can be bound onto it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers every field of d as a viper default.
func SetDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.tps", d.Window.TPS)
	v.SetDefault("window.background.r", d.Window.Background.R)
	v.SetDefault("window.background.g", d.Window.Background.G)
	v.SetDefault("window.background.b", d.Window.Background.B)
	v.SetDefault("window.hide_cursor", d.Window.HideCursor)

	v.SetDefault("player.max_speed", d.Player.MaxSpeed)
	v.SetDefault("player.deceleration", d.Player.Deceleration)
	v.SetDefault("player.start_x", d.Player.StartX)
	v.SetDefault("player.start_y", d.Player.StartY)

	v.SetDefault("projectile.capacity", d.Projectile.Capacity)
	v.SetDefault("projectile.speed", d.Projectile.Speed)
	v.SetDefault("projectile.spawn_forward", d.Projectile.SpawnForward)
	v.SetDefault("projectile.spawn_lateral", d.Projectile.SpawnLateral)

	v.SetDefault("muzzle.forward", d.Muzzle.Forward)
	v.SetDefault("muzzle.lateral", d.Muzzle.Lateral)

	v.SetDefault("assets.root", d.Assets.Root)
	v.SetDefault("assets.idle_body.pattern", d.Assets.IdleBody.Pattern)
	v.SetDefault("assets.idle_body.frames", d.Assets.IdleBody.Frames)
	v.SetDefault("assets.idle_feet", d.Assets.IdleFeet)
	v.SetDefault("assets.walk_body.pattern", d.Assets.WalkBody.Pattern)
	v.SetDefault("assets.walk_body.frames", d.Assets.WalkBody.Frames)
	v.SetDefault("assets.walk_feet.pattern", d.Assets.WalkFeet.Pattern)
	v.SetDefault("assets.walk_feet.frames", d.Assets.WalkFeet.Frames)
	v.SetDefault("assets.bullet", d.Assets.Bullet)
	v.SetDefault("assets.muzzle_flash", d.Assets.MuzzleFlash)
	v.SetDefault("assets.reticle", d.Assets.Reticle)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("debug.overlay", d.Debug.Overlay)
}

// Load reads the config file at path on top of the defaults. An empty path
// uses defaults and environment overrides only. The file format follows its
// extension (json, yaml, toml).
func Load(path string) (*Config, error) {
	return LoadWith(NewViper(), path)
}

// LoadWith is Load on a caller-prepared viper instance.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
			v.SetConfigType("json")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Title == "" {
		errs = append(errs, errors.New("window.title is empty"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS))
	}
	if c.Player.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("player.max_speed must not be negative, got %v", c.Player.MaxSpeed))
	}
	if c.Player.Deceleration < 0 {
		errs = append(errs, fmt.Errorf("player.deceleration must not be negative, got %v", c.Player.Deceleration))
	}
	if c.Projectile.Capacity < 1 {
		errs = append(errs, fmt.Errorf("projectile.capacity must be at least 1, got %d", c.Projectile.Capacity))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
