// Package config provides YAML-based configuration loading for Tank Jump.
package config

// Config contains all tunable parameters of the game.
type Config struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Layout   LayoutConfig   `yaml:"layout"`
	Loop     LoopConfig     `yaml:"loop"`
	Controls ControlsConfig `yaml:"controls"`
}

// PhysicsConfig defines the per-tick physics constants, in world units.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`            // Added to VY while below the vertical cap
	MoveImpulse      float64 `yaml:"move_impulse"`       // Velocity added per tick a direction is held
	ReleaseImpulse   float64 `yaml:"release_impulse"`    // Braking delta applied after release
	MaxVelocityX     float64 `yaml:"max_velocity_x"`
	MaxVelocityY     float64 `yaml:"max_velocity_y"`
	InitialFallSpeed float64 `yaml:"initial_fall_speed"` // VY at spawn
	SpringImpulse    float64 `yaml:"spring_impulse"`     // VY set by a spring (negative is up)
	SurfaceBuffer    float64 `yaml:"surface_buffer"`     // Gap left between player and a solid after a snap
}

// PlayerConfig defines the player's spawn point and size.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LayoutConfig defines the play area used to compute the classic level.
type LayoutConfig struct {
	ScreenWidth      float64 `yaml:"screen_width"`
	ScreenHeight     float64 `yaml:"screen_height"`
	TileSize         float64 `yaml:"tile_size"`
	ControlBandTiles int     `yaml:"control_band_tiles"` // Rows reserved below the play area
}

// LoopConfig defines the simulation cadence.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// ControlsConfig defines how terminal key presses map to held controls.
type ControlsConfig struct {
	// ReleaseAfterTicks is how many ticks without a direction key count
	// as a release. Terminals report presses only, never key-ups.
	ReleaseAfterTicks int `yaml:"release_after_ticks"`
}
