// Package strategy implements the movement decision procedures: given
// the current game state and a fresh die roll, each strategy picks a
// destination and mutates the state. All three share the chase rule for
// ordinary players; they differ in how the Boeg picks its move.
package strategy

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"fang/game"
)

// Status is the outcome of one strategy invocation.
type Status int

const (
	// Continue ends the turn normally.
	Continue Status = iota
	// GameOver means the player consumed their last target while
	// holding the Boeg role.
	GameOver
	// Invalid flags an unrecognized strategy kind. A configuration
	// error, not a gameplay outcome.
	Invalid
)

// Kind tags one of the interchangeable decision procedures.
type Kind int

const (
	Greedy Kind = iota
	Avoidant
	Command
)

func (k Kind) String() string {
	switch k {
	case Greedy:
		return "greedy"
	case Avoidant:
		return "avoidant"
	case Command:
		return "command"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a strategy tag from configuration.
func ParseKind(tag string) (Kind, error) {
	switch tag {
	case "greedy":
		return Greedy, nil
	case "avoidant":
		return Avoidant, nil
	case "command":
		return Command, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", tag)
}

// DefaultAvoidance is the avoidance factor the avoidant strategy uses
// unless configured otherwise.
const DefaultAvoidance = 40.0

type Option func(*Set)

// WithAvoidance sets the avoidant strategy's opponent-penalty factor.
func WithAvoidance(factor float64) Option {
	return func(s *Set) { s.avoidance = factor }
}

// WithPrompter sets the line-based reader and writer the command
// strategy talks to. Defaults to stdin/stdout.
func WithPrompter(in io.Reader, out io.Writer) Option {
	return func(s *Set) {
		s.in = bufio.NewScanner(in)
		s.out = out
	}
}

// Set binds one strategy kind per player. The interactive strategy's
// line protocol is not reentrant, so at most one player may use it.
type Set struct {
	kinds     []Kind
	avoidance float64
	in        *bufio.Scanner
	out       io.Writer
}

func NewSet(kinds []Kind, options ...Option) (*Set, error) {
	s := &Set{
		kinds:     kinds,
		avoidance: DefaultAvoidance,
		in:        bufio.NewScanner(os.Stdin),
		out:       os.Stdout,
	}
	for _, option := range options {
		option(s)
	}
	interactive := 0
	for _, kind := range kinds {
		if kind == Command {
			interactive++
		}
	}
	if interactive > 1 {
		return nil, fmt.Errorf("%d interactive players, at most one supported", interactive)
	}
	return s, nil
}

// Kind returns the strategy assigned to the player.
func (s *Set) Kind(player int) Kind { return s.kinds[player] }

// Move draws a die roll and executes the player's strategy against the
// state. Returns Invalid for an unrecognized strategy kind.
func (s *Set) Move(gs *game.GameState, player int) Status {
	switch s.kinds[player] {
	case Greedy:
		return s.moveGreedy(gs, player)
	case Avoidant:
		return s.moveAvoidant(gs, player)
	case Command:
		return s.moveCommand(gs, player)
	}
	return Invalid
}

// chaseBoeg executes the role-transfer rule for an ordinary player: a
// roll covering the shortest distance to the Boeg captures it, anything
// less advances along the precomputed shortest path, capped at the
// roll. Reports whether the player captured the Boeg.
func chaseBoeg(gs *game.GameState, player, roll int) bool {
	from := gs.PlayerPos[player]
	dist := gs.Board.DistPlayer.At(from, gs.BoegPos)
	if dist >= 0 && roll >= dist {
		gs.CaptureBoeg(player)
		log.Debug().Str("game", gs.ID.String()).Int("player", player).
			Msgf("captured the Boeg at %s", gs.Board.Name(gs.BoegPos))
		return true
	}
	gs.PlayerPos[player] = gs.Board.FollowPath(gs.Board.ParPlayer, from, gs.BoegPos, roll)
	return false
}

// reachTarget scans the player's remaining targets for one whose
// shortest Boeg-graph distance is covered by the roll and that no
// opponent occupies. On success the Boeg moves there, the slot is
// consumed, and the second return reports whether that was the
// player's last target.
func reachTarget(gs *game.GameState, player, roll int) (moved, finished bool) {
	for slot := 0; slot < game.TargetsPerPlayer; slot++ {
		target := gs.TargetAt(player, slot)
		if target == game.TargetConsumed {
			continue
		}
		dist := gs.Board.DistBoeg.At(gs.BoegPos, target)
		if dist < 0 || roll < dist {
			continue
		}
		if gs.OpponentAt(target, player) {
			continue
		}
		gs.BoegPos = target
		return true, gs.ConsumeTarget(player, slot) == 0
	}
	return false, false
}
