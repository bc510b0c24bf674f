// Command headings prints the turn table for a waypoint path: for every
// segment the turn the turtle makes, the heading it ends up on and how far
// it moves.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/turtlesoup/config"
	"github.com/pthm-cable/turtlesoup/geometry"
	"github.com/pthm-cable/turtlesoup/waypoints"
)

// Step is one row of the turn table.
type Step struct {
	FromX   int     `csv:"from_x"`
	FromY   int     `csv:"from_y"`
	ToX     int     `csv:"to_x"`
	ToY     int     `csv:"to_y"`
	Turn    float64 `csv:"turn"`
	Heading float64 `csv:"heading"`
	Forward int     `csv:"forward"`
}

// Steps pairs every segment of table with its turn, resulting heading and
// forward distance.
func Steps(table *waypoints.Table, unit float64) []Step {
	points := table.Points()
	turns := geometry.HeadingsAlongPath(points)
	lengths := table.Lengths(unit)

	steps := make([]Step, len(turns))
	heading := 0.0
	for i, turn := range turns {
		heading = geometry.NormalizeHeading(heading + turn)
		steps[i] = Step{
			FromX:   points[i].X,
			FromY:   points[i].Y,
			ToX:     points[i+1].X,
			ToY:     points[i+1].Y,
			Turn:    turn,
			Heading: heading,
			Forward: lengths[i],
		}
	}
	return steps
}

func run(path string, unit float64, w io.Writer) error {
	table := waypoints.PersonalArt()
	if path != "" {
		var err error
		if table, err = waypoints.LoadFile(path); err != nil {
			return err
		}
	}

	steps := Steps(table, unit)
	if err := gocsv.Marshal(steps, w); err != nil {
		return fmt.Errorf("writing turn table: %w", err)
	}
	slog.Debug("turn table written", "segments", len(steps))
	return nil
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	waypointsPath := flag.String("waypoints", "", "Waypoint CSV (empty = built-in art table)")
	unit := flag.Float64("unit", 0, "Forward distance per grid unit (0 = use config)")
	flag.Parse()

	// Logs go to stderr so stdout stays a clean CSV stream
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *unit <= 0 {
		*unit = cfg.Program.Unit
	}
	if *waypointsPath == "" {
		*waypointsPath = cfg.Program.Waypoints
	}

	if err := run(*waypointsPath, *unit, os.Stdout); err != nil {
		slog.Error("headings failed", "error", err)
		os.Exit(1)
	}
}
