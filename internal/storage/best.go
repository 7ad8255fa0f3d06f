package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/trio-arcade/internal/core"
)

// ReadBest returns the persisted best score for a game, or 0 if none was saved.
func (s *Store) ReadBest(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow(
		s.dialect.rebind("SELECT score FROM best_scores WHERE game_id = ?"),
		gameID,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best score: %w", err)
	}
	return score, nil
}

// WriteBest stores score as the best for a game. A lower score never
// replaces a higher stored one.
func (s *Store) WriteBest(gameID string, score int) error {
	_, err := s.db.Exec(s.dialect.rebind(
		`INSERT INTO best_scores (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > best_scores.score`),
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write best score: %w", err)
	}
	return nil
}

var _ core.ScoreStore = (*Store)(nil)
