package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trio-arcade/internal/registry"
	"github.com/vovakirdan/trio-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games with their best score and play count",
	Long: `Shows every registered game with its persisted best score and the
number of recorded runs. Without a readable scores database only the
games are listed.`,
	Run: runList,
}

// gameRow is one line of the game list.
type gameRow struct {
	ID     string
	Title  string
	Best   int
	Played int
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	rows := make([]gameRow, len(games))
	for i, g := range games {
		rows[i] = gameRow{ID: g.ID, Title: g.Title}
	}

	store, err := storage.Open(flagDBPath)
	if err == nil {
		defer store.Close()
		fillStats(rows, store)
	}

	writeGameList(os.Stdout, rows, err == nil)
}

// fillStats adds the best score and play count of each game. Games the
// store knows nothing about keep zeros.
func fillStats(rows []gameRow, store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		stats = nil
	}
	for i := range rows {
		if best, err := store.ReadBest(rows[i].ID); err == nil {
			rows[i].Best = best
		}
		if s, ok := stats[rows[i].ID]; ok {
			rows[i].Played = s.GamesCount
		}
	}
}

func writeGameList(w io.Writer, rows []gameRow, withStats bool) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idW, titleW := len("ID"), len("Title")
	for _, r := range rows {
		idW = max(idW, len(r.ID))
		titleW = max(titleW, len(r.Title))
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	if withStats {
		fmt.Fprintf(w, "  %-*s  %-*s  %6s  %6s\n", idW, "ID", titleW, "Title", "Best", "Played")
		for _, r := range rows {
			fmt.Fprintf(w, "  %-*s  %-*s  %6d  %6d\n", idW, r.ID, titleW, r.Title, r.Best, r.Played)
		}
	} else {
		fmt.Fprintf(w, "  %-*s  %s\n", idW, "ID", "Title")
		for _, r := range rows {
			fmt.Fprintf(w, "  %-*s  %s\n", idW, r.ID, r.Title)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game.")
}
