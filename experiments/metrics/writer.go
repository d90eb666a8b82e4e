package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type RollRecord struct {
	Dice     string
	NumRolls int
	Average  float64
}

type WinRateRecord struct {
	Strategy  string
	Baseline  string
	AsPlayer0 float64
	AsPlayer1 float64
	WinRate   float64
	StdError  float64
}

type GameRecord struct {
	ID      int
	Matchup string // WinRateRecord.Strategy
	GameMetric
}

type Setup struct {
	RunID     string        `json:"runId"`
	Seed      uint64        `json:"seed"`
	Config    any           `json:"config"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(config any, seed uint64, start, end time.Time) error {
	setup := Setup{
		RunID:     uuid.NewString(),
		Seed:      seed,
		Config:    config,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}

	f, err := os.Create(filepath.Join(w.baseDir, "setup.json"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteRollRecords(records []RollRecord) error {
	header := []string{"dice", "num_rolls", "average_score"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Dice,
			strconv.Itoa(record.NumRolls),
			formatFloat(record.Average),
		})
	}
	return w.writeCSV("roll_records.csv", header, rows)
}

func (w *Writer) WriteWinRateRecords(records []WinRateRecord) error {
	header := []string{"strategy", "baseline", "as_player0", "as_player1", "win_rate", "std_error"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Strategy,
			record.Baseline,
			formatFloat(record.AsPlayer0),
			formatFloat(record.AsPlayer1),
			formatFloat(record.WinRate),
			formatFloat(record.StdError),
		})
	}
	return w.writeCSV("win_rate_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "turns", "pork_chops", "free_bacon_turns", "hog_wild_turns", "mirrors", "score0", "score1", "winner", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Matchup,
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.PorkChops),
			strconv.Itoa(record.FreeBaconTurns),
			strconv.Itoa(record.HogWildTurns),
			strconv.Itoa(record.Mirrors),
			strconv.Itoa(record.Score0),
			strconv.Itoa(record.Score1),
			strconv.Itoa(record.Winner),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
