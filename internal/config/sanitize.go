package config

// Values a game cannot run with are replaced by their defaults. Zero is
// what yaml leaves behind for keys written without a value.

func (c *PacmanConfig) sanitize() {
	def := DefaultPacmanConfig()
	positiveF(&c.Board.PixelsPerColumn, def.Board.PixelsPerColumn)
	positiveF(&c.Board.MinTileSize, def.Board.MinTileSize)
	positive(&c.Gameplay.Lives, def.Gameplay.Lives)
	if c.Gameplay.FoodPoints < 0 {
		c.Gameplay.FoodPoints = def.Gameplay.FoodPoints
	}
	if c.Gameplay.CherryPoints < 0 {
		c.Gameplay.CherryPoints = def.Gameplay.CherryPoints
	}
	positive(&c.Timing.TickMillis, def.Timing.TickMillis)
}

func (c *FlappyConfig) sanitize() {
	def := DefaultFlappyConfig()
	c.Surface.sanitize()
	positive(&c.Physics.SpawnEveryTicks, def.Physics.SpawnEveryTicks)
	fraction(&c.Layout.BirdWidth, def.Layout.BirdWidth)
	positiveF(&c.Layout.BirdAspect, def.Layout.BirdAspect)
	fraction(&c.Layout.BirdX, def.Layout.BirdX)
	fraction(&c.Layout.PipeWidth, def.Layout.PipeWidth)
	fraction(&c.Layout.PipeHeight, def.Layout.PipeHeight)
	fraction(&c.Layout.OpeningSpace, def.Layout.OpeningSpace)
}

func (c *DoodleConfig) sanitize() {
	def := DefaultDoodleConfig()
	c.Surface.sanitize()
	if c.Physics.MaxScoreBurst < 0 {
		c.Physics.MaxScoreBurst = def.Physics.MaxScoreBurst
	}
	fraction(&c.Layout.DoodlerWidth, def.Layout.DoodlerWidth)
	fraction(&c.Layout.PlatformWidth, def.Layout.PlatformWidth)
	fraction(&c.Layout.PlatformHeight, def.Layout.PlatformHeight)
	if c.Layout.PlatformCount < 0 {
		c.Layout.PlatformCount = def.Layout.PlatformCount
	}
	positiveF(&c.Layout.PlatformSpacing, def.Layout.PlatformSpacing)
}

func (s *SurfaceConfig) sanitize() {
	positiveF(&s.PixelsPerColumn, 8)
	positiveF(&s.PixelsPerRow, 16)
}

func positive(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func positiveF(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}

// fraction keeps v inside (0, 1].
func fraction(v *float64, def float64) {
	if *v <= 0 || *v > 1 {
		*v = def
	}
}
