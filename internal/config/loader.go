package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "tankjump.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Load loads the game configuration.
// Search order: customPath -> ~/.tankjump/configs/tankjump.yaml -> ./configs/tankjump.yaml -> embedded default
//
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken files in the search directories are skipped, not fatal
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable by the simulation.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Physics.MaxVelocityX > 0, "physics.max_velocity_x"},
		{c.Physics.MaxVelocityY > 0, "physics.max_velocity_y"},
		{c.Physics.Gravity >= 0, "physics.gravity"},
		{c.Physics.MoveImpulse > 0, "physics.move_impulse"},
		{c.Physics.ReleaseImpulse > 0, "physics.release_impulse"},
		{c.Physics.SurfaceBuffer >= 0, "physics.surface_buffer"},
		{c.Player.Width > 0, "player.width"},
		{c.Player.Height > 0, "player.height"},
		{c.Layout.ScreenWidth > 0, "layout.screen_width"},
		{c.Layout.ScreenHeight > 0, "layout.screen_height"},
		{c.Layout.TileSize > 0, "layout.tile_size"},
		{c.Layout.ControlBandTiles >= 0, "layout.control_band_tiles"},
		{c.Loop.TickRate > 0, "loop.tick_rate"},
		{c.Controls.ReleaseAfterTicks > 0, "controls.release_after_ticks"},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, check.name)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tankjump", "configs", filename)
}
