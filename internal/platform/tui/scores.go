package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trio-arcade/internal/core"
	"github.com/vovakirdan/trio-arcade/internal/storage"
)

// bestScores adapts the SQL store to core.ScoreStore for games.
// A missing store reads as zero and drops writes; write failures are
// logged and handed back to the game, which ignores them.
type bestScores struct {
	store  *storage.Store
	logger *log.Logger
}

func newBestScores(store *storage.Store, logger *log.Logger) *bestScores {
	return &bestScores{store: store, logger: logger}
}

func (b *bestScores) ReadBest(gameKey string) (int, error) {
	if b.store == nil {
		return 0, nil
	}
	best, err := b.store.ReadBest(gameKey)
	if err != nil {
		b.logger.Warn("could not read best score", "game", gameKey, "err", err)
		return 0, err
	}
	return best, nil
}

func (b *bestScores) WriteBest(gameKey string, score int) error {
	if b.store == nil {
		return nil
	}
	if err := b.store.WriteBest(gameKey, score); err != nil {
		b.logger.Warn("could not persist best score", "game", gameKey, "score", score, "err", err)
		return err
	}
	return nil
}

var _ core.ScoreStore = (*bestScores)(nil)
