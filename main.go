package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/turtlesoup/config"
	"github.com/pthm-cable/turtlesoup/game"
	"github.com/pthm-cable/turtlesoup/palette"
	"github.com/pthm-cable/turtlesoup/scene"
	"github.com/pthm-cable/turtlesoup/telemetry"
	"github.com/pthm-cable/turtlesoup/terminal"
	"github.com/pthm-cable/turtlesoup/turtle"
	"github.com/pthm-cable/turtlesoup/waypoints"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	program := flag.String("program", "", "Program to draw: "+strings.Join(turtle.Names(), ", ")+" (empty = use config)")
	waypointsPath := flag.String("waypoints", "", "Waypoint CSV for the path program (empty = use config)")
	headless := flag.Bool("headless", false, "Run the programs without graphics and log the result")
	tui := flag.Bool("tui", false, "Draw in the terminal instead of a window")
	gallery := flag.Bool("gallery", false, "Draw every program listed under gallery.programs side by side")
	outputDir := flag.String("output-dir", "", "Output directory for the command log and config snapshot")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *program != "" {
		cfg.Program.Name = *program
	}
	if *waypointsPath != "" {
		cfg.Program.Waypoints = *waypointsPath
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	specs, err := buildSpecs(cfg, *gallery)
	if err != nil {
		slog.Error("failed to build programs", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *headless:
		err = runHeadless(cfg, specs)
	case *tui:
		err = runTerminal(ctx, cfg, specs)
	default:
		err = runWindow(ctx, cfg, specs)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// buildSpecs binds the configured program, or every gallery program, to
// the options in cfg.
func buildSpecs(cfg *config.Config, gallery bool) ([]scene.Spec, error) {
	opts := turtle.Options{
		SideLength: cfg.Program.SideLength,
		Sides:      cfg.Program.Sides,
		Unit:       cfg.Program.Unit,
	}
	if cfg.Program.Waypoints != "" {
		table, err := waypoints.LoadFile(cfg.Program.Waypoints)
		if err != nil {
			return nil, err
		}
		opts.Waypoints = table
	}

	names := []string{cfg.Program.Name}
	if gallery {
		names = cfg.Gallery.Programs
	}

	specs := make([]scene.Spec, 0, len(names))
	for _, name := range names {
		p, err := turtle.Lookup(name, opts)
		if err != nil {
			return nil, err
		}
		specs = append(specs, scene.Spec{Name: name, Program: p})
	}
	return specs, nil
}

// runHeadless drives a fresh pen with every program and writes the command
// log when an output directory is configured.
func runHeadless(cfg *config.Config, specs []scene.Spec) error {
	om, err := telemetry.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		return err
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		return fmt.Errorf("writing config snapshot: %w", err)
	}

	for _, spec := range specs {
		cl := telemetry.NewCommandLog(spec.Name, turtle.NewPen(r2.Vec{}))
		if err := spec.Program(cl); err != nil {
			return fmt.Errorf("running %s: %w", spec.Name, err)
		}
		if err := om.WriteCommands(cl.Records()); err != nil {
			return err
		}

		pen := cl.Pen()
		pos := pen.Position()
		slog.Info("drawing complete",
			"program", spec.Name,
			"commands", len(cl.Records()),
			"segments", len(pen.Trail()),
			"distance", pen.Distance(),
			"x", pos.X,
			"y", pos.Y,
			"heading", pen.Heading(),
		)
	}

	if om != nil {
		slog.Info("output written", "dir", om.Dir(), "commands", om.Written())
	}
	return nil
}

// runTerminal plays the drawings in the terminal until the user quits.
func runTerminal(ctx context.Context, cfg *config.Config, specs []scene.Spec) error {
	s, err := scene.New(ctx, specs, scene.Options{
		Spacing:    cfg.Gallery.Spacing,
		StepPeriod: cfg.Derived.StepPeriod,
		Paused:     cfg.Animation.StartPaused,
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	defer screen.Fini()

	return terminal.Run(ctx, screen, s, terminal.Options{
		Aspect:   cfg.Terminal.CellAspect,
		Marker:   cfg.Derived.GlyphRune,
		Gradient: palette.NewGradient(cfg.Turtle.HueStart, cfg.Turtle.HueSpan),
	})
}

// runWindow opens the raylib viewer.
func runWindow(ctx context.Context, cfg *config.Config, specs []scene.Spec) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(ctx, cfg, specs)
	if err != nil {
		return err
	}
	defer g.Unload()

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		g.Update()
		g.Draw()
	}
	return nil
}
