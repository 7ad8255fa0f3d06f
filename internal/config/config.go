// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// SurfaceConfig maps terminal cells to the pixel space a game simulates in.
type SurfaceConfig struct {
	PixelsPerColumn float64 `yaml:"pixels_per_column"`
	PixelsPerRow    float64 `yaml:"pixels_per_row"`
}

// PacmanConfig contains all configuration for the maze chase game.
type PacmanConfig struct {
	Board    PacmanBoard    `yaml:"board"`
	Gameplay PacmanGameplay `yaml:"gameplay"`
	Timing   PacmanTiming   `yaml:"timing"`
}

// PacmanBoard controls how the tile size is derived from the viewport.
type PacmanBoard struct {
	PixelsPerColumn float64 `yaml:"pixels_per_column"` // Viewport pixels per terminal column
	MinTileSize     float64 `yaml:"min_tile_size"`     // Floor for the computed tile size
}

// PacmanGameplay defines lives and scoring.
type PacmanGameplay struct {
	Lives        int `yaml:"lives"`
	FoodPoints   int `yaml:"food_points"`
	CherryPoints int `yaml:"cherry_points"`
}

// PacmanTiming defines the fixed tick cadence.
type PacmanTiming struct {
	TickMillis int `yaml:"tick_ms"`
}

// TickRate converts the tick interval to ticks per second.
func (t PacmanTiming) TickRate() int {
	if t.TickMillis <= 0 {
		return 20
	}
	return 1000 / t.TickMillis
}

// FlappyConfig contains all configuration for the pipe flyer.
type FlappyConfig struct {
	Surface SurfaceConfig `yaml:"surface"`
	Physics FlappyPhysics `yaml:"physics"`
	Layout  FlappyLayout  `yaml:"layout"`
}

// FlappyPhysics defines physics parameters in pixels per tick.
type FlappyPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	FlapVelocity    float64 `yaml:"flap_velocity"`
	PipeVelocity    float64 `yaml:"pipe_velocity"`
	SpawnEveryTicks int     `yaml:"spawn_every_ticks"`
}

// FlappyLayout defines sizes as fractions of the board.
type FlappyLayout struct {
	BirdWidth    float64 `yaml:"bird_width"`    // Fraction of board width
	BirdAspect   float64 `yaml:"bird_aspect"`   // Height as a fraction of bird width
	BirdX        float64 `yaml:"bird_x"`        // Fraction of board width
	PipeWidth    float64 `yaml:"pipe_width"`    // Fraction of board width
	PipeHeight   float64 `yaml:"pipe_height"`   // Fraction of board height
	OpeningSpace float64 `yaml:"opening_space"` // Fraction of board height
}

// DoodleConfig contains all configuration for the platform jumper.
type DoodleConfig struct {
	Surface SurfaceConfig `yaml:"surface"`
	Physics DoodlePhysics `yaml:"physics"`
	Layout  DoodleLayout  `yaml:"layout"`
}

// DoodlePhysics defines physics parameters in pixels per tick.
type DoodlePhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	StrafeSpeed   float64 `yaml:"strafe_speed"`
	MaxScoreBurst int     `yaml:"max_score_burst"` // Upper bound (exclusive) of points per rising tick
}

// DoodleLayout defines sizes and platform placement.
type DoodleLayout struct {
	DoodlerWidth    float64 `yaml:"doodler_width"`    // Fraction of board width
	PlatformWidth   float64 `yaml:"platform_width"`   // Fraction of board width
	PlatformHeight  float64 `yaml:"platform_height"`  // Fraction of board height
	PlatformCount   int     `yaml:"platform_count"`   // Platforms placed above the start platform
	PlatformSpacing float64 `yaml:"platform_spacing"` // Vertical pixels between initial platforms
	StartOffset     float64 `yaml:"start_offset"`     // Start platform distance from the bottom
	FirstOffset     float64 `yaml:"first_offset"`     // First random platform distance from the bottom
}
