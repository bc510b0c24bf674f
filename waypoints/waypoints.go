// Package waypoints loads ordered waypoint tables from CSV.
//
// A table has an x and y column and an optional forward column holding the
// distance to travel from that row to the next one. Rows without a forward
// value get their distance from the segment length times a unit scale.
package waypoints

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/turtlesoup/geometry"
)

//go:embed art.csv
var artCSV []byte

// ErrTooFewPoints is returned for tables that cannot describe a segment.
var ErrTooFewPoints = errors.New("waypoint table needs at least two points")

// Row is one CSV record.
type Row struct {
	X       int    `csv:"x"`
	Y       int    `csv:"y"`
	Forward string `csv:"forward"`
}

// Table is an ordered waypoint path.
type Table struct {
	Rows []Row
}

// Load parses a waypoint table from CSV.
func Load(r io.Reader) (*Table, error) {
	var rows []Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parsing waypoints: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrTooFewPoints
	}
	for i, row := range rows {
		if _, _, err := row.forward(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return &Table{Rows: rows}, nil
}

// LoadFile parses the waypoint table at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening waypoints: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// PersonalArt returns the built-in demo drawing.
func PersonalArt() *Table {
	t, err := Load(bytes.NewReader(artCSV))
	if err != nil {
		panic(fmt.Sprintf("waypoints: embedded art table: %v", err))
	}
	return t
}

// Points returns the waypoints in order.
func (t *Table) Points() []geometry.Point {
	points := make([]geometry.Point, len(t.Rows))
	for i, row := range t.Rows {
		points[i] = geometry.Point{X: row.X, Y: row.Y}
	}
	return points
}

// Lengths returns one forward distance per segment. Explicit forward values
// win; the rest are segment lengths scaled by unit.
func (t *Table) Lengths(unit float64) []int {
	lengths := geometry.SegmentLengths(t.Points(), unit)
	for i := range lengths {
		if v, ok, _ := t.Rows[i].forward(); ok {
			lengths[i] = v
		}
	}
	return lengths
}

// Write encodes the table as CSV.
func (t *Table) Write(w io.Writer) error {
	return gocsv.Marshal(t.Rows, w)
}

func (r Row) forward() (int, bool, error) {
	s := strings.TrimSpace(r.Forward)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("invalid forward %q: %w", r.Forward, err)
	}
	if v < 0 {
		return 0, false, fmt.Errorf("negative forward %d", v)
	}
	return v, true, nil
}
