package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// SessionsFile is the csv written inside the output directory.
const SessionsFile = "sessions.csv"

// SessionRecord is one row of sessions.csv.
type SessionRecord struct {
	Session          int     `csv:"session"`
	Ticks            int     `csv:"ticks"`
	DurationMS       float64 `csv:"duration_ms"`
	MeanFrameMS      float64 `csv:"mean_frame_ms"`
	P50FrameMS       float64 `csv:"p50_frame_ms"`
	P95FrameMS       float64 `csv:"p95_frame_ms"`
	MaxFrameMS       float64 `csv:"max_frame_ms"`
	SalvageSpawned   int     `csv:"salvage_spawned"`
	SalvageCollected int     `csv:"salvage_collected"`
	Absorbed         int     `csv:"absorbed"`
	Bounces          int     `csv:"bounces"`
	TotalScore       int     `csv:"total_score"`
	Scores           string  `csv:"scores"`
}

// Output appends session rows to a csv file. A nil Output discards rows.
type Output struct {
	dir           string
	file          *os.File
	headerWritten bool
}

// NewOutput creates dir and sessions.csv inside it. An empty dir disables
// output and returns nil.
func NewOutput(dir string) (*Output, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, SessionsFile)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create %s: %w", path, err)
	}
	return &Output{dir: dir, file: f}, nil
}

// Write appends rec, with the header on the first row only.
func (o *Output) Write(rec SessionRecord) error {
	if o == nil {
		return nil
	}
	records := []SessionRecord{rec}
	if !o.headerWritten {
		if err := gocsv.Marshal(records, o.file); err != nil {
			return fmt.Errorf("telemetry: write session: %w", err)
		}
		o.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, o.file); err != nil {
		return fmt.Errorf("telemetry: write session: %w", err)
	}
	return nil
}

// Path is the csv location, or "" when output is disabled.
func (o *Output) Path() string {
	if o == nil {
		return ""
	}
	return filepath.Join(o.dir, SessionsFile)
}

func (o *Output) Close() error {
	if o == nil || o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	return err
}
