// Package export renders a finished run as CSV, JSON or SVG for
// consumption outside the engine.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/ballista/internal/launch"
)

// CSVStream writes one row per sample as a flight progresses. Feed
// Observe to RunWithCallback and Flush once the run returns; rows
// written before an abort stand.
type CSVStream struct {
	cw  *csv.Writer
	err error
}

// NewCSVStream writes the header row and returns the stream.
func NewCSVStream(w io.Writer) (*CSVStream, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "x", "y", "vx", "vy"}); err != nil {
		return nil, err
	}
	return &CSVStream{cw: cw}, nil
}

// Observe appends one row. A write failure stops the run; Flush reports it.
func (c *CSVStream) Observe(s launch.TrajectorySample) bool {
	row := []string{
		strconv.FormatFloat(s.Time, 'f', 6, 64),
		strconv.FormatFloat(s.Position.X, 'f', 6, 64),
		strconv.FormatFloat(s.Position.Y, 'f', 6, 64),
		strconv.FormatFloat(s.Velocity.X, 'f', 6, 64),
		strconv.FormatFloat(s.Velocity.Y, 'f', 6, 64),
	}
	if err := c.cw.Write(row); err != nil {
		c.err = err
		return false
	}
	return true
}

func (c *CSVStream) Flush() error {
	c.cw.Flush()
	if c.err != nil {
		return c.err
	}
	return c.cw.Error()
}

// WriteCSV writes an already materialized flight. The landing sample is
// the final row.
func WriteCSV(w io.Writer, samples []launch.TrajectorySample) error {
	cs, err := NewCSVStream(w)
	if err != nil {
		return err
	}
	for _, s := range samples {
		if !cs.Observe(s) {
			break
		}
	}
	return cs.Flush()
}

func ExportCSV(path string, samples []launch.TrajectorySample) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, samples)
}
