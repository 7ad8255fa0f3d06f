package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

// DefaultPacmanConfig returns the default maze chase configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Board: PacmanBoard{
			PixelsPerColumn: 8,
			MinTileSize:     4,
		},
		Gameplay: PacmanGameplay{
			Lives:        3,
			FoodPoints:   10,
			CherryPoints: 100,
		},
		Timing: PacmanTiming{
			TickMillis: 50,
		},
	}
}

// DefaultFlappyConfig returns the default pipe flyer configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Surface: SurfaceConfig{
			PixelsPerColumn: 8,
			PixelsPerRow:    16,
		},
		Physics: FlappyPhysics{
			Gravity:         0.4,
			FlapVelocity:    -6,
			PipeVelocity:    -2,
			SpawnEveryTicks: 90,
		},
		Layout: FlappyLayout{
			BirdWidth:    0.09,
			BirdAspect:   0.7,
			BirdX:        0.125,
			PipeWidth:    0.18,
			PipeHeight:   0.8,
			OpeningSpace: 0.25,
		},
	}
}

// DefaultDoodleConfig returns the default platform jumper configuration.
func DefaultDoodleConfig() DoodleConfig {
	return DoodleConfig{
		Surface: SurfaceConfig{
			PixelsPerColumn: 8,
			PixelsPerRow:    16,
		},
		Physics: DoodlePhysics{
			Gravity:       0.4,
			JumpVelocity:  -8,
			StrafeSpeed:   4,
			MaxScoreBurst: 30,
		},
		Layout: DoodleLayout{
			DoodlerWidth:    0.12,
			PlatformWidth:   0.15,
			PlatformHeight:  0.035,
			PlatformCount:   6,
			PlatformSpacing: 75,
			StartOffset:     50,
			FirstOffset:     150,
		},
	}
}
