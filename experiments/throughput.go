package experiments

import (
	"context"
	"kikande/experiments/metrics"
	"kikande/meta"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// RunThroughputExperiment plays every thread config against itself, for the
// same playing strength and similar game length, and logs the nodes searched
// per second by each.
func RunThroughputExperiment(ctx context.Context, root string) (Records, error) {
	x := Experiment{
		Name:     "throughput",
		Root:     root,
		NumGames: meta.NUM_GAMES,
		Configs:  threadConfigs,
		MatchUps: lo.Map(threadConfigs, func(config metrics.AgentConfig, _ int) [2]metrics.AgentConfig {
			return [2]metrics.AgentConfig{config, config}
		}),
	}
	records, err := x.Run(ctx)
	if err != nil {
		return records, err
	}
	Throughput(records.Games, records.Moves)
	return records, nil
}

// Throughput returns the nodes searched per second for every agent, keyed
// by AgentConfig.ID. Moves are credited to the agent in their seat.
func Throughput(games []metrics.GameRecord, moves []metrics.MoveRecord) map[int]float64 {
	seats := lo.SliceToMap(games, func(g metrics.GameRecord) (int, [2]int) {
		return g.ID, [2]int{g.Agent1, g.Agent2}
	})
	byAgent := lo.GroupBy(moves, func(m metrics.MoveRecord) int {
		return seats[m.Game][m.Player]
	})

	throughput := make(map[int]float64, len(byAgent))
	for id, records := range byAgent {
		nodes := lo.SumBy(records, func(m metrics.MoveRecord) int { return m.Nodes })
		seconds := lo.SumBy(records, func(m metrics.MoveRecord) float64 { return m.Duration.Seconds() })
		if seconds > 0 {
			throughput[id] = float64(nodes) / seconds
		}
		log.Info().Int("agent", id).Int("nodes", nodes).Float64("nps", throughput[id]).Msg("throughput")
	}
	return throughput
}
