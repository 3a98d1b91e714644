// Command fang simulates the chase board game "Fang de Boeg": players
// race across a street graph after the Boeg while the Boeg works
// through its own target locations.
//
// Two modes:
//  1. "play" – run a single game with full console output; one player
//     may be interactive.
//  2. "stats" – run many games back to back and report win and turn
//     statistics, optionally exported as CSV.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/exp/rand"

	"fang/engine"
	"fang/game"
	"fang/render"
	"fang/strategy"
)

func main() {
	// Load .env if present; flags and env vars take over from there.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cmd := &cli.Command{
		Name:  "fang",
		Usage: "simulate the 'Fang de Boeg' chase board game",
		Commands: []*cli.Command{
			playCommand(),
			statsCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("fang failed")
	}
}

func gameFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "players",
			Value:   3,
			Usage:   fmt.Sprintf("number of players (%d-%d)", game.MinPlayers, game.MaxPlayers),
			Sources: cli.EnvVars("FANG_PLAYERS"),
		},
		&cli.StringFlag{
			Name:    "strategies",
			Value:   "greedy",
			Usage:   "comma-separated strategy per player (greedy|avoidant|command), or one tag for all",
			Sources: cli.EnvVars("FANG_STRATEGIES"),
		},
		&cli.IntFlag{
			Name:    "seed",
			Usage:   "random seed (0 seeds from the clock)",
			Sources: cli.EnvVars("FANG_SEED"),
		},
		&cli.Float64Flag{
			Name:    "avoidance",
			Value:   strategy.DefaultAvoidance,
			Usage:   "opponent-avoidance factor for avoidant players",
			Sources: cli.EnvVars("FANG_AVOIDANCE"),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
}

// setup builds the board, state and strategies shared by both modes.
func setup(cmd *cli.Command) (*game.GameState, *strategy.Set, error) {
	if cmd.Bool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	nPlayers := cmd.Int("players")
	kinds, err := parseKinds(cmd.String("strategies"), nPlayers)
	if err != nil {
		return nil, nil, err
	}

	seed := uint64(cmd.Int("seed"))
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	log.Debug().Uint64("seed", seed).Msg("rng seeded")

	board, err := game.DefaultBoard()
	if err != nil {
		return nil, nil, fmt.Errorf("loading board: %w", err)
	}
	gs, err := game.NewGameState(board, nPlayers, rng)
	if err != nil {
		return nil, nil, err
	}
	movers, err := strategy.NewSet(kinds, strategy.WithAvoidance(cmd.Float64("avoidance")))
	if err != nil {
		return nil, nil, err
	}
	return gs, movers, nil
}

func parseKinds(tags string, nPlayers int) ([]strategy.Kind, error) {
	parts := strings.Split(tags, ",")
	if len(parts) != 1 && len(parts) != nPlayers {
		return nil, fmt.Errorf("%d strategies for %d players", len(parts), nPlayers)
	}
	kinds := make([]strategy.Kind, nPlayers)
	for i := range kinds {
		tag := parts[0]
		if len(parts) == nPlayers {
			tag = parts[i]
		}
		kind, err := strategy.ParseKind(strings.TrimSpace(tag))
		if err != nil {
			return nil, err
		}
		kinds[i] = kind
	}
	return kinds, nil
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "run a single game with console output",
		Flags: gameFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gs, movers, err := setup(cmd)
			if err != nil {
				return err
			}
			eng := engine.New(gs, movers)
			console := render.NewConsole()
			eng.View = console
			console.Render(gs)

			result, err := eng.Run()
			if err != nil {
				return err
			}
			if result.Winner == -1 {
				fmt.Printf("No winner after %d rounds\n", result.Turns)
				return nil
			}
			fmt.Printf("Player %d wins after %d rounds; ranking %v\n",
				result.Winner, result.Turns, result.Ranking)
			return nil
		},
	}
}

func statsCommand() *cli.Command {
	flags := append(gameFlags(),
		&cli.IntFlag{
			Name:  "games",
			Value: 1024,
			Usage: "number of games to simulate",
		},
		&cli.StringFlag{
			Name:  "csv",
			Usage: "directory to export per-game CSV records to",
		},
	)
	return &cli.Command{
		Name:  "stats",
		Usage: "simulate many games and report statistics",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gs, movers, err := setup(cmd)
			if err != nil {
				return err
			}
			for player := 0; player < gs.NumPlayers(); player++ {
				if movers.Kind(player) == strategy.Command {
					return fmt.Errorf("interactive players cannot run in stats mode")
				}
			}

			stats, err := engine.Statistics(engine.New(gs, movers), cmd.Int("games"))
			if err != nil {
				return err
			}
			fmt.Print(stats)

			if dir := cmd.String("csv"); dir != "" {
				w, err := engine.NewCSVWriter(dir)
				if err != nil {
					return err
				}
				if err := w.WriteGames(stats.Records); err != nil {
					return err
				}
				fmt.Printf("Records written to %s\n", w.Dir())
			}
			return nil
		},
	}
}
