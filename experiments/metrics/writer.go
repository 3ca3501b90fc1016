package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// AgentConfig describes one engine taking part in an experiment.
type AgentConfig struct {
	ID       int
	Threads  int
	MaxDepth int
	MaxTime  time.Duration
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, plays first
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// moveRow is the parquet layout of a MoveRecord. Durations are stored in
// microseconds.
type moveRow struct {
	Game     int32  `parquet:"name=game, type=INT32"`
	Step     int32  `parquet:"name=step, type=INT32"`
	Player   int32  `parquet:"name=player, type=INT32"`
	Move     string `parquet:"name=move, type=BYTE_ARRAY, convertedtype=UTF8"`
	Threads  int32  `parquet:"name=threads, type=INT32"`
	MaxDepth int32  `parquet:"name=max_depth, type=INT32"`
	MaxTime  int64  `parquet:"name=max_time, type=INT64"`
	Duration int64  `parquet:"name=duration, type=INT64"`
	Nodes    int64  `parquet:"name=nodes, type=INT64"`
	Hits     int64  `parquet:"name=hits, type=INT64"`
	Depth    int32  `parquet:"name=depth, type=INT32"`
	Lines    int32  `parquet:"name=lines, type=INT32"`
}

func newMoveRow(r MoveRecord) moveRow {
	return moveRow{
		Game:     int32(r.Game),
		Step:     int32(r.Step),
		Player:   int32(r.Player),
		Move:     r.Move,
		Threads:  int32(r.Threads),
		MaxDepth: int32(r.MaxDepth),
		MaxTime:  r.MaxTime.Microseconds(),
		Duration: r.Duration.Microseconds(),
		Nodes:    int64(r.Nodes),
		Hits:     int64(r.Hits),
		Depth:    int32(r.Depth),
		Lines:    int32(r.Lines),
	}
}

type Writer struct {
	baseDir  string
	parallel int64
}

// NewWriter creates root/name/<timestamp> to hold the files of one
// experiment run.
func NewWriter(root, name string, parallel int64) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir:  baseDir,
		parallel: max(parallel, 1),
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Threads),
			strconv.Itoa(config.MaxDepth),
			config.MaxTime.String(),
		})
	}
	return w.writeCSV("agent_configs.csv", []string{"id", "threads", "max_depth", "max_time"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"id", "agent1", "agent2", "winner", "total_moves", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return f.Close()
}

// WriteMoveRecords stores one row per move, Snappy compressed, in
// move_records.parquet.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.parquet")
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(moveRow), w.parallel)
	if err != nil {
		return fmt.Errorf("failed to create move records writer: %w", err)
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, record := range records {
		if err := parquetWriter.Write(newMoveRow(record)); err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return fmt.Errorf("failed to finish move records: %w", err)
	}
	return fileWriter.Close()
}
