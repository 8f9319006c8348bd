package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/wallgrid/config"
	"github.com/pthm-cable/wallgrid/geom"
)

// EditRecord is one committed wall in edits.csv.
type EditRecord struct {
	Frame int64   `csv:"frame"`
	Time  string  `csv:"time"`
	PX    float64 `csv:"p_x"`
	PY    float64 `csv:"p_y"`
	QX    float64 `csv:"q_x"`
	QY    float64 `csv:"q_y"`
	Walls int     `csv:"walls"`
}

// NewEditRecord builds the record for a wall committed at the given frame.
func NewEditRecord(frame int64, at time.Time, wall geom.Line, walls int) EditRecord {
	return EditRecord{
		Frame: frame,
		Time:  at.UTC().Format(time.RFC3339Nano),
		PX:    wall.P.X,
		PY:    wall.P.Y,
		QX:    wall.Q.X,
		QY:    wall.Q.Y,
		Walls: walls,
	}
}

// OutputManager writes session output as CSV files.
type OutputManager struct {
	dir        string
	framesFile *os.File
	editsFile  *os.File

	framesHeaderWritten bool
	editsHeaderWritten  bool
}

// NewOutputManager creates the output directory and its files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	om.framesFile = f

	f, err = os.Create(filepath.Join(dir, "edits.csv"))
	if err != nil {
		om.framesFile.Close()
		return nil, fmt.Errorf("creating edits.csv: %w", err)
	}
	om.editsFile = f

	return om, nil
}

// WriteConfig saves the configuration in effect as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrames appends a frame stats record to frames.csv.
func (om *OutputManager) WriteFrames(rec FrameStatsCSV) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.framesFile, []FrameStatsCSV{rec}, &om.framesHeaderWritten); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}

// WriteEdit appends a committed wall to edits.csv.
func (om *OutputManager) WriteEdit(rec EditRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.editsFile, []EditRecord{rec}, &om.editsHeaderWritten); err != nil {
		return fmt.Errorf("writing edit: %w", err)
	}
	return nil
}

// writeRecords writes the CSV header only with the first batch.
func writeRecords[T any](f *os.File, records []T, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.framesFile != nil {
		if err := om.framesFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.editsFile != nil {
		if err := om.editsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
