package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "threads", 2)
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Threads: 1, MaxDepth: 10, MaxTime: 50 * time.Millisecond},
			{ID: 2, Threads: 4, MaxDepth: 10, MaxTime: 50 * time.Millisecond},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "threads", "max_depth", "max_time"},
			{"1", "1", "10", "50ms"},
			{"2", "4", "10", "50ms"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				Winner:     -1,
				StartTime:  start,
				EndTime:    start.Add(3 * time.Second),
				Duration:   3 * time.Second,
				TotalMoves: 300,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "-1", "300", "2024-10-01T12:00:00Z", "2024-10-01T12:00:03Z", "3s"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 0, Move: "6L", SearchMetric: SearchMetric{
				Threads: 4, MaxDepth: 10, MaxTime: 50 * time.Millisecond, Duration: 48 * time.Millisecond,
				Nodes: 12000, Hits: 3000, Depth: 7, Lines: 25,
			}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: 1, Move: "5R"}},
		}

		err := w.WriteMoveRecords(records)
		require.NoError(t, err)

		fileReader, err := local.NewLocalFileReader(filepath.Join(w.Dir(), "move_records.parquet"))
		require.NoError(t, err)
		defer fileReader.Close()
		parquetReader, err := reader.NewParquetReader(fileReader, new(moveRow), 1)
		require.NoError(t, err)
		defer parquetReader.ReadStop()

		require.Equal(t, int64(2), parquetReader.GetNumRows())
		rows := make([]moveRow, 2)
		require.NoError(t, parquetReader.Read(&rows))
		require.Equal(t, []moveRow{newMoveRow(records[0]), newMoveRow(records[1])}, rows)
		require.Equal(t, int64(48000), rows[0].Duration, "Durations should be stored in microseconds")
	})
}

func TestCollector(t *testing.T) {
	t.Run("counts across workers", func(t *testing.T) {
		c := NewCollector()
		c.Start(2, 8, time.Second)

		c.AddNodes(10)
		c.AddNodes(5)
		c.AddHits(3)
		c.AddLine(2)
		c.AddLine(4)
		c.AddLine(3)
		got := c.Complete()

		require.Equal(t, 2, got.Threads)
		require.Equal(t, 8, got.MaxDepth)
		require.Equal(t, time.Second, got.MaxTime)
		require.Equal(t, 15, got.Nodes)
		require.Equal(t, 3, got.Hits)
		require.Equal(t, 4, got.Depth)
		require.Equal(t, 3, got.Lines)
	})

	t.Run("start resets", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1, 0)
		c.AddNodes(10)
		c.AddLine(1)

		c.Start(1, 1, 0)

		require.Equal(t, SearchMetric{Threads: 1, MaxDepth: 1}, withoutDuration(c.Complete()))
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4, 4, 0)
		c.AddNodes(10)

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func withoutDuration(m SearchMetric) SearchMetric {
	m.Duration = 0
	return m
}
