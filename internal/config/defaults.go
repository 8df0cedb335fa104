package config

import (
	_ "embed"
)

//go:embed defaults/tankjump.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:          10,
			MoveImpulse:      10,
			ReleaseImpulse:   10,
			MaxVelocityX:     50,
			MaxVelocityY:     50,
			InitialFallSpeed: 10,
			SpringImpulse:    -60,
			SurfaceBuffer:    1,
		},
		Player: PlayerConfig{
			SpawnX: 150,
			SpawnY: 50,
			Width:  40,
			Height: 60,
		},
		Layout: LayoutConfig{
			ScreenWidth:      1280,
			ScreenHeight:     720,
			TileSize:         40,
			ControlBandTiles: 3,
		},
		Loop: LoopConfig{
			TickRate: 24,
		},
		Controls: ControlsConfig{
			ReleaseAfterTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
