package strategy

import (
	"math"

	"github.com/rs/zerolog/log"

	"fang/game"
)

// moveAvoidant plays like greedy as an ordinary player. As the Boeg it
// still grabs any reachable target, but on fallback it weighs distance
// to its targets against staying away from opponents.
func (s *Set) moveAvoidant(gs *game.GameState, player int) Status {
	for {
		roll := gs.RollDie()
		log.Debug().Str("game", gs.ID.String()).Int("player", player).Int("roll", roll).Msg("avoidant move")
		if !gs.HoldsBoeg(player) {
			if !chaseBoeg(gs, player, roll) {
				return Continue
			}
			continue
		}
		return s.avoidantBoeg(gs, player, roll)
	}
}

func (s *Set) avoidantBoeg(gs *game.GameState, player, roll int) Status {
	if moved, finished := reachTarget(gs, player, roll); moved {
		if finished {
			return GameOver
		}
		return Continue
	}

	// Minimize over everything reachable with the exact roll:
	// sum of distances to the remaining targets, plus an avoidance
	// penalty per opponent that fades with their distance to the
	// candidate. Opponents more than one roll away count half.
	landing := -1
	minObjective := math.Inf(1)
	reach := gs.Board.GraphBoeg.ReachableExactly(gs.Search, gs.BoegPos, roll, true)
	for pair := reach.Oldest(); pair != nil; pair = pair.Next() {
		candidate := pair.Key
		if gs.OpponentAt(candidate, player) {
			continue
		}
		objective := 0.0
		for slot := 0; slot < game.TargetsPerPlayer; slot++ {
			target := gs.TargetAt(player, slot)
			if target == game.TargetConsumed {
				continue
			}
			objective += float64(gs.Board.DistBoeg.At(candidate, target))
		}
		for opponent := 0; opponent < gs.NumPlayers(); opponent++ {
			if opponent == player || !gs.IsActive(opponent) {
				continue
			}
			oppDist := gs.Board.DistPlayer.At(gs.PlayerPos[opponent], candidate)
			if oppDist <= 0 {
				// Occupied candidates were excluded above, so a zero
				// distance cannot happen; an unreachable opponent
				// poses no threat.
				continue
			}
			denom := float64(oppDist)
			if oppDist > game.DieSize {
				denom *= 2
			}
			objective += s.avoidance / denom
		}
		if objective < minObjective {
			minObjective = objective
			landing = candidate
		}
	}

	if landing == -1 {
		log.Debug().Str("game", gs.ID.String()).Int("player", player).Msg("no free destination, skipping turn")
		return Continue
	}
	gs.BoegPos = landing
	return Continue
}
