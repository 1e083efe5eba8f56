package experiments

import (
	"fmt"
	"io"
	"strings"
	"time"

	"skirmish/agent"
	"skirmish/engine"
	"skirmish/experiments/metrics"
	"skirmish/game"
	"skirmish/random"

	"github.com/rs/zerolog/log"
)

const SelfPlayName = "selfplay"

type SelfPlay struct {
	FirstSeed int64
	Games     int
	MaxTurns  int
	OutputDir string // CSV output root, skipped when empty
	SQLite    string // database path, skipped when empty
	Catalog   []game.Unit
	Blueprint []int
}

type Summary struct {
	Games    int
	Wins     map[string]int // keyed by side name, "" for games cut at the turn cap
	Recorded map[string]int // wins over every run stored in the database, nil without one
	Dir      string         // where the CSV files went
}

// RunSelfPlay plays heuristic against heuristic on consecutive seeds and
// stores per-game and per-turn records.
func RunSelfPlay(sp SelfPlay) (Summary, error) {
	var store *metrics.Store
	if sp.SQLite != "" {
		var err error
		store, err = metrics.OpenStore(sp.SQLite)
		if err != nil {
			return Summary{}, err
		}
		defer store.Close()
	}

	log.Info().Msgf("starting %s experiment with %d games...", SelfPlayName, sp.Games)

	summary := Summary{Games: sp.Games, Wins: map[string]int{}}
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}
	for i := 0; i < sp.Games; i++ {
		seed := sp.FirstSeed + int64(i)
		log.Info().Msgf("starting game %d of %d with seed %d...", i+1, sp.Games, seed)

		gameMetric, turnMetrics, err := runGame(sp, seed)
		if err != nil {
			return Summary{}, err
		}

		record := metrics.GameRecord{ID: i + 1, GameMetric: gameMetric}
		gameRecords = append(gameRecords, record)
		turns := make([]metrics.TurnRecord, 0, len(turnMetrics))
		for _, tm := range turnMetrics {
			turns = append(turns, metrics.TurnRecord{Game: record.ID, TurnMetric: tm})
		}
		turnRecords = append(turnRecords, turns...)
		summary.Wins[gameMetric.Winner]++

		if store != nil {
			if err := store.SaveGame(SelfPlayName, record, turns); err != nil {
				return Summary{}, err
			}
		}

		log.Info().Msgf("completed game %d of %d with winner: %q after %d turns", i+1, sp.Games, gameMetric.Winner, gameMetric.Turns)
	}

	log.Info().Msgf("completed %s experiment", SelfPlayName)

	if store != nil {
		recorded, err := store.Wins(SelfPlayName)
		if err != nil {
			return Summary{}, err
		}
		summary.Recorded = recorded
	}

	if sp.OutputDir == "" {
		return summary, nil
	}
	writer, err := metrics.NewWriter(sp.OutputDir, SelfPlayName)
	if err != nil {
		return Summary{}, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Summary{}, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return Summary{}, err
	}
	log.Info().Msg("stored turn records")

	summary.Dir = writer.Dir()
	return summary, nil
}

// runGame plays a single seeded game between two heuristic agents.
func runGame(sp SelfPlay, seed int64) (metrics.GameMetric, []metrics.TurnMetric, error) {
	g, err := game.NewGame(random.New(seed), sp.Catalog, sp.Blueprint)
	if err != nil {
		return metrics.GameMetric{}, nil, fmt.Errorf("cannot set up game with seed %d: %w", seed, err)
	}

	h := agent.NewHeuristic(agent.WithMetrics())
	e := engine.NewLocalEngine(g, strings.NewReader(""), io.Discard, io.Discard,
		engine.WithAgent(game.Self, h),
		engine.WithAgent(game.Opponent, h),
		engine.WithMaxTurns(sp.MaxTurns),
	)

	start := time.Now()
	winner, turnMetrics := e.Run()
	end := time.Now()

	gm := metrics.GameMetric{
		Seed:               seed,
		StartTime:          start,
		EndTime:            end,
		Duration:           end.Sub(start),
		Turns:              len(turnMetrics),
		SelfLifePoints:     g.Player(game.Self).LifePoints(),
		OpponentLifePoints: g.Player(game.Opponent).LifePoints(),
	}
	if winner != game.NoSide {
		gm.Winner = winner.String()
	}
	return gm, turnMetrics, nil
}
