// Package render prints game state to a terminal. It only reads state;
// the engine decides when a redraw happens.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"fang/game"
)

const colorReset = "\033[0m"

// One stable color per player seat.
var playerColors = [game.MaxPlayers]string{
	"\033[38;5;160m", // red
	"\033[38;5;40m",  // green
	"\033[38;5;68m",  // blue
	"\033[38;5;226m", // yellow
	"\033[38;5;202m", // orange
	"\033[38;5;134m", // purple
}

// Console renders positions, remaining targets and the Boeg location
// with per-player colors.
type Console struct {
	out     io.Writer
	colored bool
}

// NewConsole renders to stdout, with colors only when it is a TTY.
func NewConsole() *Console {
	return &Console{
		out:     colorable.NewColorableStdout(),
		colored: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewConsoleWriter renders to an arbitrary writer.
func NewConsoleWriter(w io.Writer, colored bool) *Console {
	return &Console{out: w, colored: colored}
}

func (c *Console) paint(text string, player int) string {
	if !c.colored {
		return text
	}
	return playerColors[player%len(playerColors)] + text + colorReset
}

// Render prints the full game state.
func (c *Console) Render(gs *game.GameState) {
	fmt.Fprintf(c.out, "\nPlayer positions:\n")
	for player, pos := range gs.PlayerPos {
		marker := ""
		if !gs.IsActive(player) {
			marker = " (finished)"
		} else if gs.HoldsBoeg(player) {
			marker = " (Boeg)"
		}
		fmt.Fprintf(c.out, "  %s%s\n", c.paint(fmt.Sprintf("Player %d: %s", player, gs.Board.Name(pos)), player), marker)
	}

	fmt.Fprintf(c.out, "Remaining targets:\n")
	for player := 0; player < gs.NumPlayers(); player++ {
		names := ""
		for slot := 0; slot < game.TargetsPerPlayer; slot++ {
			target := gs.TargetAt(player, slot)
			if target == game.TargetConsumed {
				continue
			}
			if names != "" {
				names += ", "
			}
			names += gs.Board.Name(target)
		}
		if names == "" {
			names = "(none)"
		}
		fmt.Fprintf(c.out, "  %s\n", c.paint(fmt.Sprintf("Player %d: %s", player, names), player))
	}

	fmt.Fprintf(c.out, "Boeg: %s\n", gs.Board.Name(gs.BoegPos))
}
