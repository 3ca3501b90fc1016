package experiments

import (
	"context"
	"kikande/experiments/metrics"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExperimentRun(t *testing.T) {
	shallow := metrics.AgentConfig{ID: 1, Threads: 1, MaxDepth: 1}
	deeper := metrics.AgentConfig{ID: 2, Threads: 2, MaxDepth: 2}
	x := Experiment{
		Name:     "smoke",
		Root:     t.TempDir(),
		NumGames: 2,
		Configs:  []metrics.AgentConfig{shallow, deeper},
		MatchUps: against(shallow, []metrics.AgentConfig{deeper}),
	}

	records, err := x.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, records.Games, 2)
	require.Equal(t, []int{1, 2}, []int{records.Games[0].Agent1, records.Games[0].Agent2})
	require.Equal(t, []int{2, 1}, []int{records.Games[1].Agent1, records.Games[1].Agent2}, "Agents should take turns starting")
	moves := records.Games[0].TotalMoves + records.Games[1].TotalMoves
	require.Len(t, records.Moves, moves)
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.parquet"} {
		require.FileExists(t, filepath.Join(records.Dir, name))
	}
}

func TestAgainst(t *testing.T) {
	baseline := metrics.AgentConfig{ID: 0}
	configs := []metrics.AgentConfig{{ID: 1}, {ID: 2}}

	got := against(baseline, configs)

	require.Equal(t, [][2]metrics.AgentConfig{{baseline, configs[0]}, {baseline, configs[1]}}, got)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"threads", "depth", "throughput"} {
		run, err := Lookup(name)
		require.NoError(t, err, name)
		require.NotNil(t, run, name)
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := Lookup("speed")
		require.ErrorIs(t, err, ErrUnknownExperiment)
		require.Contains(t, err.Error(), `"speed"`)
	})
}

func TestThroughput(t *testing.T) {
	games := []metrics.GameRecord{
		{ID: 1, Agent1: 7, Agent2: 8},
		{ID: 2, Agent1: 8, Agent2: 7},
	}
	move := func(g, player, nodes int, d time.Duration) metrics.MoveRecord {
		r := metrics.MoveRecord{Game: g}
		r.Player = player
		r.Nodes = nodes
		r.Duration = d
		return r
	}
	moves := []metrics.MoveRecord{
		move(1, 0, 1000, time.Second),
		move(1, 1, 4000, time.Second),
		move(2, 0, 2000, time.Second),
		move(2, 1, 3000, 2*time.Second),
	}

	got := Throughput(games, moves)

	require.InDelta(t, 4000.0/3, got[7], 1e-9)
	require.InDelta(t, 3000.0, got[8], 1e-9)
}
