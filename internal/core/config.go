package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score known to the game (persisted or beaten this session)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// ScoreStore persists a single best score per game.
// A missing record reads as zero with a nil error.
type ScoreStore interface {
	ReadBest(gameKey string) (int, error)
	WriteBest(gameKey string, score int) error
}

// ReadBestOrZero reads the best score, treating a nil store or any read
// failure as zero.
func ReadBestOrZero(store ScoreStore, gameKey string) int {
	if store == nil {
		return 0
	}
	best, err := store.ReadBest(gameKey)
	if err != nil {
		return 0
	}
	return best
}
