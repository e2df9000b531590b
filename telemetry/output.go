package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/pong/config"
)

// OutputManager writes the match log as CSV. A nil manager is valid and
// writes nothing.
type OutputManager struct {
	dir        string
	pointsFile *os.File
	gamesFile  *os.File

	pointsHeaderWritten bool
	gamesHeaderWritten  bool
}

// NewOutputManager creates the output directory and its CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "points.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating points.csv: %w", err)
	}
	om.pointsFile = f

	f, err = os.Create(filepath.Join(dir, "games.csv"))
	if err != nil {
		om.pointsFile.Close()
		return nil, fmt.Errorf("creating games.csv: %w", err)
	}
	om.gamesFile = f

	return om, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WritePoint appends a point to points.csv.
func (om *OutputManager) WritePoint(rec PointRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.pointsFile, []PointRecord{rec}, &om.pointsHeaderWritten); err != nil {
		return fmt.Errorf("writing point: %w", err)
	}
	return nil
}

// WriteGame appends a game summary to games.csv.
func (om *OutputManager) WriteGame(rec GameRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.gamesFile, []GameRecord{rec}, &om.gamesHeaderWritten); err != nil {
		return fmt.Errorf("writing game: %w", err)
	}
	return nil
}

// writeRecords writes the header only on the first call for a file.
func writeRecords(f *os.File, records any, headerWritten *bool) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(records, f)
	}
	if err := gocsv.Marshal(records, f); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.pointsFile, om.gamesFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ReadPoints loads a points.csv written by an OutputManager.
func ReadPoints(path string) ([]PointRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening points file: %w", err)
	}
	defer f.Close()

	var points []PointRecord
	if err := gocsv.UnmarshalFile(f, &points); err != nil {
		return nil, fmt.Errorf("parsing points file: %w", err)
	}
	return points, nil
}
