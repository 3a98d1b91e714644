package strategy

import (
	"math"

	"github.com/rs/zerolog/log"

	"fang/game"
)

// moveGreedy chases the Boeg until it captures it, then heads for the
// closest remaining target. A capture continues the same turn with a
// fresh roll; the loop replaces the original recursive continuation and
// runs at most twice per turn.
func (s *Set) moveGreedy(gs *game.GameState, player int) Status {
	for {
		roll := gs.RollDie()
		log.Debug().Str("game", gs.ID.String()).Int("player", player).Int("roll", roll).Msg("greedy move")
		if !gs.HoldsBoeg(player) {
			if !chaseBoeg(gs, player, roll) {
				return Continue
			}
			continue
		}
		return s.greedyBoeg(gs, player, roll)
	}
}

func (s *Set) greedyBoeg(gs *game.GameState, player, roll int) Status {
	if moved, finished := reachTarget(gs, player, roll); moved {
		if finished {
			return GameOver
		}
		return Continue
	}

	// No target in reach: walk toward the closest remaining one.
	// Targets that were in reach but occupied do not count as closest.
	minDist := math.MaxInt
	minTarget := game.TargetConsumed
	for slot := 0; slot < game.TargetsPerPlayer; slot++ {
		target := gs.TargetAt(player, slot)
		if target == game.TargetConsumed {
			continue
		}
		dist := gs.Board.DistBoeg.At(gs.BoegPos, target)
		if dist > roll && dist < minDist {
			minDist = dist
			minTarget = target
		}
	}

	landing := -1
	if minTarget != game.TargetConsumed {
		landing = gs.Board.FollowPath(gs.Board.ParBoeg, gs.BoegPos, minTarget, roll)
	}
	if landing == -1 || gs.OpponentAt(landing, player) {
		// The projected vertex is taken (or there was no target to
		// head for): among everything reachable with the exact roll,
		// take the unoccupied vertex closest to the remaining targets
		// in sum, first found winning ties.
		landing = -1
		minSum := math.MaxInt
		reach := gs.Board.GraphBoeg.ReachableExactly(gs.Search, gs.BoegPos, roll, true)
		for pair := reach.Oldest(); pair != nil; pair = pair.Next() {
			candidate := pair.Key
			if gs.OpponentAt(candidate, player) {
				continue
			}
			sum := 0
			for slot := 0; slot < game.TargetsPerPlayer; slot++ {
				target := gs.TargetAt(player, slot)
				if target == game.TargetConsumed {
					continue
				}
				sum += gs.Board.DistBoeg.At(candidate, target)
			}
			if sum < minSum {
				minSum = sum
				landing = candidate
			}
		}
	}

	if landing == -1 {
		// Everything in reach is occupied: skip the turn.
		log.Debug().Str("game", gs.ID.String()).Int("player", player).Msg("no free destination, skipping turn")
		return Continue
	}
	gs.BoegPos = landing
	return Continue
}
