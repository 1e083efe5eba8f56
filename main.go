package main

import (
	"fmt"
	"os"
	"time"

	"skirmish/agent"
	"skirmish/config"
	"skirmish/engine"
	"skirmish/experiments"
	"skirmish/game"
	"skirmish/loader"
	"skirmish/random"
	"skirmish/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const errorPrefix = "Error, "

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorPrefix+err.Error())
		return 1
	}
	setupLogging(cfg.LogLevel)

	units, err := loader.LoadUnits(cfg.Units)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorPrefix+err.Error())
		return 1
	}
	deck, err := loader.LoadDeck(cfg.Deck)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorPrefix+err.Error())
		return 1
	}
	log.Info().Msgf("loaded %d units and a deck of %d cards", len(units), len(deck))

	if cfg.Mode == config.ModeSelfPlay {
		return selfPlay(cfg, units, deck)
	}
	return play(cfg, units, deck)
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

func play(cfg config.Config, units []game.Unit, deck []int) int {
	options := []game.Option{game.WithOutput(os.Stdout)}
	engineOptions := []engine.Option{engine.WithAgent(game.Opponent, agent.NewHeuristic())}
	if cfg.Verbosity == config.VerbosityCompact {
		engineOptions = append(engineOptions, engine.WithCompactOutput())
	} else {
		options = append(options, game.WithRenderer(ui.RenderBoard))
	}

	g, err := game.NewGame(random.New(cfg.Seed), units, deck, options...)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorPrefix+err.Error())
		return 1
	}

	winner, _ := engine.NewLocalEngine(g, os.Stdin, os.Stdout, os.Stderr, engineOptions...).Run()
	log.Info().Msgf("game finished, winner: %s", winner)
	return 0
}

func selfPlay(cfg config.Config, units []game.Unit, deck []int) int {
	summary, err := experiments.RunSelfPlay(experiments.SelfPlay{
		FirstSeed: cfg.Seed,
		Games:     cfg.SelfPlay.Games,
		MaxTurns:  cfg.SelfPlay.MaxTurns,
		OutputDir: cfg.SelfPlay.OutputDir,
		SQLite:    cfg.SelfPlay.SQLite,
		Catalog:   units,
		Blueprint: deck,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, errorPrefix+err.Error())
		return 1
	}

	fmt.Printf("%d games: Player %d, Enemy %d, undecided %d\n",
		summary.Games, summary.Wins[game.Self.String()], summary.Wins[game.Opponent.String()], summary.Wins[""])
	if summary.Recorded != nil {
		fmt.Printf("all recorded games in %s: Player %d, Enemy %d, undecided %d\n", cfg.SelfPlay.SQLite,
			summary.Recorded[game.Self.String()], summary.Recorded[game.Opponent.String()], summary.Recorded[""])
	}
	if summary.Dir != "" {
		fmt.Printf("results written to %s\n", summary.Dir)
	}
	return 0
}
