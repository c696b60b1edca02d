package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type PlyRecord struct {
	Game string // GameMetric.ID
	PlyMetric
}

// Writer appends game and ply records as CSV under a timestamped folder.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameMetric) error {
	header := []string{"id", "starting_player", "winner", "start_time", "end_time", "duration", "plies", "captures1", "captures2"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			record.ID,
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalPlies),
			strconv.Itoa(record.Captures[0]),
			strconv.Itoa(record.Captures[1]),
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WritePlyRecords(records []PlyRecord) error {
	header := []string{"game", "step", "player", "kind", "ply", "duration", "retries"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			record.Game,
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Kind.String(),
			record.Ply,
			record.Duration.String(),
			strconv.Itoa(record.Retries),
		}
	}
	return w.write("ply_records.csv", header, rows)
}

// write creates the file with a header, or appends rows if it already exists.
func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	_, statErr := os.Stat(path)
	exists := statErr == nil

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if !exists {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write %s header: %w", name, err)
		}
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
