package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// CSVWriter exports game records under a timestamped subdirectory, one
// file per run.
type CSVWriter struct {
	baseDir string
}

func NewCSVWriter(dir string) (*CSVWriter, error) {
	baseDir := filepath.Join(dir, time.Now().UTC().Format(time.RFC3339))
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &CSVWriter{baseDir: baseDir}, nil
}

// Dir returns the directory records are written to.
func (w *CSVWriter) Dir() string { return w.baseDir }

// WriteGames writes one row per game: id, winner, turns and the finish
// ranking as a space-separated list.
func (w *CSVWriter) WriteGames(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write([]string{"game", "winner", "turns", "ranking"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range records {
		ranking := make([]string, len(record.Ranking))
		for i, player := range record.Ranking {
			ranking[i] = strconv.Itoa(player)
		}
		row := []string{
			record.ID.String(),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Turns),
			strings.Join(ranking, " "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
