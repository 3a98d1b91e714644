// Package engine drives games to completion: it owns the round loop,
// the role hand-off when a player finishes, the finish-order ranking
// and the turn cap, plus multi-game statistics.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"fang/game"
	"fang/strategy"
)

// Renderer is a pull-based observer: the engine calls it after every
// mutating move and the implementation decides what to redraw. It must
// not mutate the state.
type Renderer interface {
	Render(gs *game.GameState)
}

// Result reports the outcome of one game.
type Result struct {
	// Winner is the first player to finish, or -1 when the turn cap
	// was reached with no winner.
	Winner int
	// Turns is the number of rounds played, at most game.MaxTurns.
	Turns int
	// Ranking lists players in finish order; the last remaining active
	// player is appended as last place.
	Ranking []int
}

// Engine runs games on one state with a fixed strategy assignment.
type Engine struct {
	State  *game.GameState
	Movers *strategy.Set

	// View, when set, is invoked after every move.
	View Renderer
}

func New(state *game.GameState, movers *strategy.Set) *Engine {
	return &Engine{State: state, Movers: movers}
}

// Run plays the game until only one active player remains or the turn
// cap is hit. Hitting the cap is an informational outcome, not an
// error; errors are reserved for broken configuration.
func (e *Engine) Run() (Result, error) {
	gs := e.State
	result := Result{Winner: -1}

	log.Info().Str("game", gs.ID.String()).Int("players", gs.NumPlayers()).Msg("game starting")

	for round := 1; round <= game.MaxTurns; round++ {
		result.Turns = round
		for _, player := range gs.Order {
			if !gs.IsActive(player) {
				continue
			}
			switch status := e.Movers.Move(gs, player); status {
			case strategy.Continue:
			case strategy.GameOver:
				if result.Winner == -1 {
					result.Winner = player
					log.Info().Str("game", gs.ID.String()).Int("player", player).
						Int("round", round).Msg("winner")
				}
				result.Ranking = append(result.Ranking, player)
				gs.ReleaseBoeg()
				gs.Deactivate(player)
				if gs.Active.Count() == 1 {
					for _, last := range gs.Order {
						if gs.IsActive(last) {
							result.Ranking = append(result.Ranking, last)
						}
					}
					return result, nil
				}
			case strategy.Invalid:
				return result, fmt.Errorf("player %d has an invalid strategy", player)
			}
			if e.View != nil {
				e.View.Render(gs)
			}
		}
	}

	log.Info().Str("game", gs.ID.String()).Int("winner", result.Winner).
		Msgf("reached maximum of %d rounds", game.MaxTurns)
	return result, nil
}
