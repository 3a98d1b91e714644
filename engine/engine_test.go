package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"fang/game"
	"fang/strategy"
)

const (
	linePlayerGraph = "u 8\n0 1\n1 2\n2 3\n3 4\n4 5\n5 6\n6 7\n"
	lineBoegGraph   = linePlayerGraph + "0 7 s\n"
	lineLocations   = "0 0 Harbor\n" +
		"1 0 Gate\n" +
		"2 0 Mill\n" +
		"3 0 Chapel\n" +
		"4 0 Square\n" +
		"5 0 Bridge\n" +
		"6 0 Tower\n" +
		"7 0 Well\n"
)

func lineBoard(t *testing.T) *game.BoardInfo {
	t.Helper()
	board, err := game.NewBoardInfo(game.BoardSource{
		PlayerGraph: strings.NewReader(linePlayerGraph),
		BoegGraph:   strings.NewReader(lineBoegGraph),
		Locations:   strings.NewReader(lineLocations),
	})
	require.NoError(t, err)
	return board
}

func greedySet(t *testing.T, players int) *strategy.Set {
	t.Helper()
	kinds := make([]strategy.Kind, players)
	set, err := strategy.NewSet(kinds)
	require.NoError(t, err)
	return set
}

type countingRenderer struct{ calls int }

func (r *countingRenderer) Render(gs *game.GameState) { r.calls++ }

// scriptedGame wires a handcrafted state on the line board so the
// finish order is fully determined by the queued rolls.
func scriptedGame(t *testing.T) *game.GameState {
	t.Helper()
	gs := &game.GameState{
		Board:         lineBoard(t),
		PlayerPos:     []int{0, 2, 6},
		PlayerTargets: make([]int, 3*game.TargetsPerPlayer),
		TargetsLeft:   []int{1, 1, 1},
		Order:         []int{0, 1, 2},
		BoegPos:       0,
		BoegID:        0,
		Active:        game.PlayerSet{true, true, true},
		Search:        game.NewWorkspace(8),
	}
	for i := range gs.PlayerTargets {
		gs.PlayerTargets[i] = game.TargetConsumed
	}
	gs.PlayerTargets[0*game.TargetsPerPlayer] = 1 // player 0, holding the Boeg
	gs.PlayerTargets[1*game.TargetsPerPlayer] = 2
	gs.PlayerTargets[2*game.TargetsPerPlayer] = 5
	return gs
}

func TestRun(t *testing.T) {
	t.Run("finish order becomes the ranking", func(t *testing.T) {
		gs := scriptedGame(t)
		// Player 0 grabs its last target, player 1 captures the released
		// Boeg and finishes too; player 2 is ranked last by elimination.
		rolls := []int{1, 1, 1}
		gs.Dice = func() int {
			roll := rolls[0]
			rolls = rolls[1:]
			return roll
		}

		result, err := New(gs, greedySet(t, 3)).Run()
		require.NoError(t, err)
		require.Equal(t, 0, result.Winner)
		require.Equal(t, 1, result.Turns)
		require.Equal(t, []int{0, 1, 2}, result.Ranking)
		require.False(t, gs.IsActive(0))
		require.False(t, gs.IsActive(1))
		require.True(t, gs.IsActive(2), "last place stays on the board")
		require.Equal(t, game.BoegUnassigned, gs.BoegID, "role is released on a finish")
	})

	t.Run("renderer sees every move", func(t *testing.T) {
		gs := scriptedGame(t)
		rolls := []int{1, 1, 1}
		gs.Dice = func() int {
			roll := rolls[0]
			rolls = rolls[1:]
			return roll
		}

		view := &countingRenderer{}
		e := New(gs, greedySet(t, 3))
		e.View = view
		_, err := e.Run()
		require.NoError(t, err)
		// The game-ending move returns before the render hook; callers
		// draw the final state themselves.
		require.Equal(t, 1, view.calls)
	})

	t.Run("invalid strategy kind is a configuration error", func(t *testing.T) {
		gs := scriptedGame(t)
		set, err := strategy.NewSet([]strategy.Kind{strategy.Kind(99), strategy.Greedy, strategy.Greedy})
		require.NoError(t, err)
		_, err = New(gs, set).Run()
		require.Error(t, err)
	})

	t.Run("full game on the default board terminates", func(t *testing.T) {
		board, err := game.DefaultBoard()
		require.NoError(t, err)
		gs, err := game.NewGameState(board, 3, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		result, err := New(gs, greedySet(t, 3)).Run()
		require.NoError(t, err)
		require.GreaterOrEqual(t, result.Turns, 1)
		require.LessOrEqual(t, result.Turns, game.MaxTurns)
		require.GreaterOrEqual(t, result.Winner, -1)
		require.Less(t, result.Winner, 3)
		seen := map[int]bool{}
		for _, player := range result.Ranking {
			require.False(t, seen[player], "ranking repeats player %d", player)
			seen[player] = true
		}
		if result.Winner != -1 {
			require.Equal(t, result.Winner, result.Ranking[0])
		}
	})
}
