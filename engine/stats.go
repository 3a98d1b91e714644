package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fang/game"
)

// GameRecord is the per-game line item kept for statistics and export.
type GameRecord struct {
	ID      uuid.UUID
	Winner  int
	Turns   int
	Ranking []int
}

// Stats aggregates the outcomes of consecutive games on one state.
type Stats struct {
	Games    int
	Wins     []int
	MinTurns int
	MaxTurns int
	AvgTurns float64
	Records  []GameRecord
}

// Statistics plays nGames back to back, resetting the state between
// games, and aggregates wins and turn counts.
func Statistics(e *Engine, nGames int) (Stats, error) {
	if nGames <= 0 {
		return Stats{}, fmt.Errorf("invalid game count %d", nGames)
	}
	stats := Stats{
		Games:    nGames,
		Wins:     make([]int, e.State.NumPlayers()),
		MinTurns: game.MaxTurns + 1,
		Records:  make([]GameRecord, 0, nGames),
	}

	totalTurns := 0
	for i := 0; i < nGames; i++ {
		result, err := e.Run()
		if err != nil {
			return Stats{}, fmt.Errorf("game %d: %w", i+1, err)
		}
		if result.Winner != -1 {
			stats.Wins[result.Winner]++
		}
		if result.Turns < stats.MinTurns {
			stats.MinTurns = result.Turns
		}
		if result.Turns > stats.MaxTurns {
			stats.MaxTurns = result.Turns
		}
		totalTurns += result.Turns
		stats.Records = append(stats.Records, GameRecord{
			ID:      e.State.ID,
			Winner:  result.Winner,
			Turns:   result.Turns,
			Ranking: result.Ranking,
		})
		e.State.Reset()
	}
	stats.AvgTurns = float64(totalTurns) / float64(nGames)

	log.Info().Int("games", nGames).Msg("statistics complete")
	return stats, nil
}

// String formats the statistics the way the console reports them.
func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total games played: %d\n", s.Games)
	for player, wins := range s.Wins {
		fmt.Fprintf(&b, "Player %d: %d wins (%.2f%%)\n",
			player, wins, float64(wins)/float64(s.Games)*100)
	}
	fmt.Fprintf(&b, "Max. turns: %d\n", s.MaxTurns)
	fmt.Fprintf(&b, "Min. turns: %d\n", s.MinTurns)
	fmt.Fprintf(&b, "Avg. turns: %.2f\n", s.AvgTurns)
	return b.String()
}
