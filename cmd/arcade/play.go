package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trio-arcade/internal/core"
	"github.com/vovakirdan/trio-arcade/internal/games/doodle"
	"github.com/vovakirdan/trio-arcade/internal/games/flappy"
	"github.com/vovakirdan/trio-arcade/internal/games/pacman"
	"github.com/vovakirdan/trio-arcade/internal/platform/tui"
	"github.com/vovakirdan/trio-arcade/internal/registry"
	"github.com/vovakirdan/trio-arcade/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Steer (pacman, doodle)
  Space        - Flap / start
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (when paused or game over)
  Q/Ctrl+C     - Quit

Examples:
  arcade play pacman
  arcade play doodle --seed 42
  arcade play flappy --config ./my-flappy.yaml
  arcade play pacman --log-file ~/.arcade/arcade.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// applyConfigPath points the selected game at a custom config file.
func applyConfigPath(gameID, path string) {
	switch gameID {
	case pacman.GameKey:
		pacman.SetConfigPath(path)
	case flappy.GameKey:
		flappy.SetConfigPath(path)
	case doodle.GameKey:
		doodle.SetConfigPath(path)
	}
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newPlayLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	applyConfigPath(gameID, flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, terminalConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
