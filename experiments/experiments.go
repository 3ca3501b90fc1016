package experiments

import (
	"context"
	"kikande/engine"
	"kikande/experiments/metrics"
	"kikande/game"
	"kikande/meta"
	"kikande/searcher"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	TimeBudget = 50 * time.Millisecond
	MaxDepth   = 20
)

var threadConfigs = []metrics.AgentConfig{
	{ID: 1, Threads: 1, MaxDepth: MaxDepth, MaxTime: TimeBudget},
	{ID: 2, Threads: 2, MaxDepth: MaxDepth, MaxTime: TimeBudget},
	{ID: 3, Threads: 4, MaxDepth: MaxDepth, MaxTime: TimeBudget},
	{ID: 4, Threads: 8, MaxDepth: MaxDepth, MaxTime: TimeBudget},
	{ID: 5, Threads: 16, MaxDepth: MaxDepth, MaxTime: TimeBudget},
}

// Records are the results of an experiment run and where they were stored.
type Records struct {
	Dir   string
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Experiment is a set of match ups, each played NumGames times. The agents of
// a match up take turns starting.
type Experiment struct {
	Name     string
	Root     string // Results go to Root/Name/<timestamp>
	NumGames int
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
}

// against pairs every config with the baseline.
func against(baseline metrics.AgentConfig, configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	return lo.Map(configs, func(config metrics.AgentConfig, _ int) [2]metrics.AgentConfig {
		return [2]metrics.AgentConfig{baseline, config}
	})
}

// RunThreadsExperiment plays searches with more workers against a single
// worker search with the same time budget.
func RunThreadsExperiment(ctx context.Context, root string) (Records, error) {
	baseline := metrics.AgentConfig{ID: 0, Threads: 1, MaxDepth: MaxDepth, MaxTime: TimeBudget}
	return Experiment{
		Name:     "threads",
		Root:     root,
		NumGames: meta.NUM_GAMES,
		Configs:  append([]metrics.AgentConfig{baseline}, threadConfigs...),
		MatchUps: against(baseline, threadConfigs),
	}.Run(ctx)
}

// RunDepthExperiment plays fixed depth searches without a deadline against a
// depth 2 search.
func RunDepthExperiment(ctx context.Context, root string) (Records, error) {
	baseline := metrics.AgentConfig{ID: 0, Threads: 1, MaxDepth: 2}
	configs := lo.Map([]int{2, 4, 6, 8}, func(depth int, i int) metrics.AgentConfig {
		return metrics.AgentConfig{ID: i + 1, Threads: 1, MaxDepth: depth}
	})
	return Experiment{
		Name:     "depth",
		Root:     root,
		NumGames: meta.NUM_GAMES,
		Configs:  append([]metrics.AgentConfig{baseline}, configs...),
		MatchUps: against(baseline, configs),
	}.Run(ctx)
}

var ErrUnknownExperiment = errors.New("unknown experiment")

// Runner runs a named experiment and stores its records under root.
type Runner func(ctx context.Context, root string) (Records, error)

// Lookup returns the experiment registered under name: threads, depth or
// throughput.
func Lookup(name string) (Runner, error) {
	run, ok := map[string]Runner{
		"threads":    RunThreadsExperiment,
		"depth":      RunDepthExperiment,
		"throughput": RunThroughputExperiment,
	}[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownExperiment, "%q", name)
	}
	return run, nil
}

// Run plays every match up and stores the records.
func (x Experiment) Run(ctx context.Context) (Records, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchUp := range x.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), matchUp[0], matchUp[1])

		for i := 0; i < x.NumGames; i++ {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			winner, gameMetric, moveMetrics, err := runGame(ctx, first, second)
			if err != nil {
				return Records{}, errors.Wrapf(err, "matchup %d game %d", mi+1, i+1)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(x.MatchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(x.Root, x.Name, meta.PARQUET_PARALLEL)
	if err != nil {
		return Records{}, err
	}
	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return Records{}, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Records{}, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Records{}, err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return Records{Dir: writer.Dir(), Games: gameRecords, Moves: moveRecords}, nil
}

// runGame plays a single game from the starting position and returns the
// winning seat.
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.NewLocalEngine(game.NewGame(),
		engine.NewSearchAgent(createSearcher(config1)),
		engine.NewSearchAgent(createSearcher(config2)),
	)
	return e.Run(ctx)
}

func createSearcher(config metrics.AgentConfig) *searcher.Searcher {
	return searcher.NewSearcher(searcher.Config{
		MaxDepth: config.MaxDepth,
		Threads:  config.Threads,
		MaxTime:  config.MaxTime,
	}, searcher.WithMetrics())
}
