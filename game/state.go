package game

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// PlayerSet tracks which players are still active, with O(1)
// membership tests.
type PlayerSet []bool

func (s PlayerSet) Add(player int)           { s[player] = true }
func (s PlayerSet) Remove(player int)        { s[player] = false }
func (s PlayerSet) Contains(player int) bool { return s[player] }

func (s PlayerSet) Count() int {
	count := 0
	for _, active := range s {
		if active {
			count++
		}
	}
	return count
}

// GameState is the mutable per-game data. The board it references is
// immutable and shared; everything here is re-randomized by Reset so a
// state can be replayed without reallocation. One game progresses
// strictly turn-by-turn, so none of this is safe for concurrent use.
type GameState struct {
	Board *BoardInfo

	// ID tags this game instance in logs and statistics records.
	ID uuid.UUID

	// Targets is the full pool of target vertices, reshuffled per game.
	Targets [NumTargets]int
	// PlayerPos holds each player's pawn vertex. A Boeg holder's pawn
	// stays parked at the capture vertex while the Boeg figure moves.
	PlayerPos []int
	// PlayerTargets holds TargetsPerPlayer slots per player; reached
	// slots carry TargetConsumed.
	PlayerTargets []int
	// TargetsLeft counts each player's unreached targets.
	TargetsLeft []int
	// Order is the turn order, a permutation of player ids fixed for
	// the game's duration.
	Order []int

	BoegPos int
	// BoegID is the player currently holding the Boeg role, or
	// BoegUnassigned.
	BoegID int

	// Active marks players that still have unreached targets.
	Active PlayerSet

	// Search is the scratch workspace for the exact-distance searches,
	// owned exclusively by this state.
	Search *Workspace

	// Dice draws one die roll; overridable in tests.
	Dice func() int

	rng *rand.Rand
}

// NewGameState deals a fresh game for nPlayers on the given board.
func NewGameState(board *BoardInfo, nPlayers int, rng *rand.Rand) (*GameState, error) {
	if nPlayers < MinPlayers || nPlayers > MaxPlayers {
		return nil, fmt.Errorf("player count %d outside [%d,%d]", nPlayers, MinPlayers, MaxPlayers)
	}
	if NumTargets < TargetsPerPlayer*nPlayers+1 {
		return nil, fmt.Errorf("target pool %d too small for %d players", NumTargets, nPlayers)
	}
	if board.NumPositions() <= NumTargets {
		return nil, fmt.Errorf("board has %d positions, need more than %d", board.NumPositions(), NumTargets)
	}

	gs := &GameState{
		Board:         board,
		PlayerPos:     make([]int, nPlayers),
		PlayerTargets: make([]int, nPlayers*TargetsPerPlayer),
		TargetsLeft:   make([]int, nPlayers),
		Order:         make([]int, nPlayers),
		Active:        make(PlayerSet, nPlayers),
		Search:        NewWorkspace(board.NumPositions()),
		rng:           rng,
	}
	gs.Dice = func() int { return rng.Intn(DieSize) + 1 }
	for i := range gs.Order {
		gs.Order[i] = i
	}
	gs.Reset()
	return gs, nil
}

// NumPlayers returns the number of players in this game.
func (gs *GameState) NumPlayers() int { return len(gs.PlayerPos) }

// Reset re-randomizes positions, targets, the Boeg spawn and the turn
// order for a fresh game on the same board.
func (gs *GameState) Reset() {
	gs.ID = uuid.New()

	// Restore the canonical pool before reshuffling.
	for i := range gs.Targets {
		gs.Targets[i] = i
	}
	gs.rng.Shuffle(NumTargets, func(i, j int) {
		gs.Targets[i], gs.Targets[j] = gs.Targets[j], gs.Targets[i]
	})

	dealt := 0
	for player := 0; player < gs.NumPlayers(); player++ {
		for slot := 0; slot < TargetsPerPlayer; slot++ {
			gs.PlayerTargets[player*TargetsPerPlayer+slot] = gs.Targets[dealt]
			dealt++
		}
		gs.TargetsLeft[player] = TargetsPerPlayer
		gs.Active.Add(player)
		// Pawns spawn on non-target vertices only, so they cannot
		// collide with the Boeg spawn.
		gs.PlayerPos[player] = gs.rng.Intn(gs.Board.NumPositions()-NumTargets) + NumTargets
	}
	gs.BoegPos = gs.Targets[dealt]
	gs.BoegID = BoegUnassigned

	gs.rng.Shuffle(len(gs.Order), func(i, j int) {
		gs.Order[i], gs.Order[j] = gs.Order[j], gs.Order[i]
	})
}

// RollDie draws a fresh uniform roll in 1..DieSize.
func (gs *GameState) RollDie() int { return gs.Dice() }

// IsActive reports whether the player still has unreached targets.
func (gs *GameState) IsActive(player int) bool { return gs.Active.Contains(player) }

// Deactivate removes a finished player from the active set. Terminal:
// players never rejoin.
func (gs *GameState) Deactivate(player int) { gs.Active.Remove(player) }

// HoldsBoeg reports whether the player currently holds the Boeg role.
func (gs *GameState) HoldsBoeg(player int) bool { return gs.BoegID == player }

// CaptureBoeg moves the player onto the Boeg and hands them the role.
func (gs *GameState) CaptureBoeg(player int) {
	gs.PlayerPos[player] = gs.BoegPos
	gs.BoegID = player
}

// ReleaseBoeg resets the role to unassigned; the Boeg figure stays put.
func (gs *GameState) ReleaseBoeg() { gs.BoegID = BoegUnassigned }

// OpponentAt reports whether an active player other than the given one
// has a pawn at the vertex.
func (gs *GameState) OpponentAt(vertex, player int) bool {
	for p := 0; p < gs.NumPlayers(); p++ {
		if p != player && gs.Active.Contains(p) && gs.PlayerPos[p] == vertex {
			return true
		}
	}
	return false
}

// TargetAt returns the target vertex in the given slot of the player's
// hand, or TargetConsumed if the slot has been reached.
func (gs *GameState) TargetAt(player, slot int) int {
	return gs.PlayerTargets[player*TargetsPerPlayer+slot]
}

// ConsumeTarget marks a target slot reached and returns the number of
// targets the player has left.
func (gs *GameState) ConsumeTarget(player, slot int) int {
	gs.PlayerTargets[player*TargetsPerPlayer+slot] = TargetConsumed
	gs.TargetsLeft[player]--
	return gs.TargetsLeft[player]
}
