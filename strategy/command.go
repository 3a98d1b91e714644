package strategy

import (
	"fmt"
	"strings"

	"fang/game"
)

// moveCommand drives one turn through the line-based interactive
// protocol: one location name per prompt, resolved with the fuzzy
// lookup, re-prompted with a diagnostic until a legal destination comes
// in. Selecting the Boeg's vertex as an ordinary player captures it and
// continues the turn in the Boeg role with a fresh roll.
func (s *Set) moveCommand(gs *game.GameState, player int) Status {
	for {
		roll := gs.RollDie()
		if !gs.HoldsBoeg(player) {
			captured, status := s.commandOrdinary(gs, player, roll)
			if !captured {
				return status
			}
			continue
		}
		return s.commandBoeg(gs, player, roll)
	}
}

func (s *Set) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Set) commandOrdinary(gs *game.GameState, player, roll int) (captured bool, _ Status) {
	from := gs.PlayerPos[player]
	boegDist := gs.Board.DistPlayer.At(from, gs.BoegPos)
	// The capture destination needs the distance covered, not matched
	// exactly.
	canCapture := boegDist >= 0 && roll >= boegDist

	reach := gs.Board.GraphPlayer.ReachableExactly(gs.Search, from, roll, false)
	legal := canCapture
	for pair := reach.Oldest(); pair != nil && !legal; pair = pair.Next() {
		if !gs.OpponentAt(pair.Key, player) {
			legal = true
		}
	}
	if !legal {
		fmt.Fprintf(s.out, "Player %d rolled %d: no legal destination, skipping turn\n", player, roll)
		return false, Continue
	}

	for {
		fmt.Fprintf(s.out, "Player %d at %s rolled %d. Move to: ", player, gs.Board.Name(from), roll)
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintf(s.out, "\ninput closed, skipping turn\n")
			return false, Continue
		}
		vertex := gs.Board.FindLocation(line)
		name := gs.Board.Name(vertex)
		if vertex == gs.BoegPos && canCapture {
			fmt.Fprintf(s.out, "Player %d catches the Boeg at %s!\n", player, name)
			gs.CaptureBoeg(player)
			return true, Continue
		}
		if _, inReach := reach.Get(vertex); inReach {
			if gs.OpponentAt(vertex, player) {
				fmt.Fprintf(s.out, "%s is occupied by an opponent\n", name)
				continue
			}
			gs.PlayerPos[player] = vertex
			return false, Continue
		}
		fmt.Fprintf(s.out, "cannot reach %s with exactly %d steps (shortest distance %d)\n",
			name, roll, gs.Board.DistPlayer.At(from, vertex))
	}
}

func (s *Set) commandBoeg(gs *game.GameState, player, roll int) Status {
	reach := gs.Board.GraphBoeg.ReachableExactly(gs.Search, gs.BoegPos, roll, true)

	legal := false
	for pair := reach.Oldest(); pair != nil && !legal; pair = pair.Next() {
		if !gs.OpponentAt(pair.Key, player) {
			legal = true
		}
	}
	for slot := 0; slot < game.TargetsPerPlayer && !legal; slot++ {
		target := gs.TargetAt(player, slot)
		if target == game.TargetConsumed || gs.OpponentAt(target, player) {
			continue
		}
		dist := gs.Board.DistBoeg.At(gs.BoegPos, target)
		if dist >= 0 && dist <= roll {
			legal = true
		}
	}
	if !legal {
		fmt.Fprintf(s.out, "Boeg rolled %d: no legal destination, skipping turn\n", roll)
		return Continue
	}

	for {
		fmt.Fprintf(s.out, "Boeg (player %d) at %s rolled %d. Move to: ", player, gs.Board.Name(gs.BoegPos), roll)
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintf(s.out, "\ninput closed, skipping turn\n")
			return Continue
		}
		vertex := gs.Board.FindLocation(line)
		name := gs.Board.Name(vertex)
		if gs.OpponentAt(vertex, player) {
			fmt.Fprintf(s.out, "%s is occupied by an opponent\n", name)
			continue
		}
		// A remaining target only needs the distance covered by the
		// roll; everything else must match the roll exactly.
		if slot, isTarget := remainingTargetSlot(gs, player, vertex); isTarget &&
			withinRoll(gs.Board.DistBoeg.At(gs.BoegPos, vertex), roll) {
			gs.BoegPos = vertex
			if gs.ConsumeTarget(player, slot) == 0 {
				fmt.Fprintf(s.out, "Player %d reached their last target at %s!\n", player, name)
				return GameOver
			}
			fmt.Fprintf(s.out, "target %s reached, %d to go\n", name, gs.TargetsLeft[player])
			return Continue
		}
		if _, inReach := reach.Get(vertex); inReach {
			gs.BoegPos = vertex
			return Continue
		}
		fmt.Fprintf(s.out, "cannot reach %s with exactly %d steps (shortest distance %d)\n",
			name, roll, gs.Board.DistBoeg.At(gs.BoegPos, vertex))
	}
}

func remainingTargetSlot(gs *game.GameState, player, vertex int) (int, bool) {
	for slot := 0; slot < game.TargetsPerPlayer; slot++ {
		target := gs.TargetAt(player, slot)
		if target != game.TargetConsumed && target == vertex {
			return slot, true
		}
	}
	return 0, false
}

func withinRoll(dist, roll int) bool { return dist >= 0 && dist <= roll }
