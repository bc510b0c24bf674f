// Package scene plays turtle programs back as animated drawings.
//
// Each drawing is an ECS entity carrying a pen and the recorded script that
// drives it. Programs are recorded up front, then applied a few commands at
// a time so viewers can watch the trail grow.
package scene

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/turtlesoup/components"
	"github.com/pthm-cable/turtlesoup/turtle"
)

// Spec names a program to draw.
type Spec struct {
	Name    string
	Program turtle.Program
}

// Options control layout and playback speed.
type Options struct {
	Spacing    float64 // World units between drawing origins
	StepPeriod float64 // Seconds per command (0 = apply everything on the first Advance)
	Paused     bool
}

// Scene holds the animated drawings.
type Scene struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Drawing, components.Pen, components.Script]
	filter *ecs.Filter3[components.Drawing, components.Pen, components.Script]

	opts   Options
	accum  float64
	paused bool
	count  int
	total  int
}

// Compile records every program concurrently. The result is indexed like specs.
func Compile(ctx context.Context, specs []Spec) ([][]turtle.Command, error) {
	scripts := make([][]turtle.Command, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cmds, err := turtle.Record(spec.Program)
			if err != nil {
				return fmt.Errorf("recording %s: %w", spec.Name, err)
			}
			scripts[i] = cmds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scripts, nil
}

// New records the programs and lays the drawings out left to right,
// centred on the origin.
func New(ctx context.Context, specs []Spec, opts Options) (*Scene, error) {
	scripts, err := Compile(ctx, specs)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	s := &Scene{
		world:  world,
		mapper: ecs.NewMap3[components.Drawing, components.Pen, components.Script](world),
		filter: ecs.NewFilter3[components.Drawing, components.Pen, components.Script](world),
		opts:   opts,
		paused: opts.Paused,
	}

	for i, spec := range specs {
		origin := r2.Vec{X: (float64(i) - float64(len(specs)-1)/2) * opts.Spacing}
		drawing := components.Drawing{Name: spec.Name, Index: i}
		pen := components.Pen{Pen: turtle.NewPen(origin)}
		s.mapper.NewEntity(&drawing, &pen, components.NewScript(scripts[i]))
		s.total += len(scripts[i])
	}
	s.count = len(specs)

	slog.Info("scene compiled", "drawings", s.count, "commands", s.total)
	return s, nil
}

// Len returns the number of drawings.
func (s *Scene) Len() int {
	return s.count
}

// Step applies up to n pending commands on every drawing and returns the
// number of commands applied in total.
func (s *Scene) Step(n int) int {
	applied := 0
	query := s.filter.Query()
	for query.Next() {
		_, pen, script := query.Get()
		for i := 0; i < n; i++ {
			c, ok := script.Next()
			if !ok {
				break
			}
			pen.Apply(c)
			applied++
		}
	}
	return applied
}

// Advance moves playback forward by dt seconds.
func (s *Scene) Advance(dt float64) int {
	if s.paused {
		return 0
	}
	if s.opts.StepPeriod <= 0 {
		return s.Step(math.MaxInt)
	}

	s.accum += dt
	n := int(s.accum / s.opts.StepPeriod)
	if n == 0 {
		return 0
	}
	s.accum -= float64(n) * s.opts.StepPeriod
	return s.Step(n)
}

// Finish applies every pending command.
func (s *Scene) Finish() int {
	return s.Step(math.MaxInt)
}

// Done reports whether every script has finished.
func (s *Scene) Done() bool {
	done := true
	query := s.filter.Query()
	for query.Next() {
		_, _, script := query.Get()
		if !script.Done() {
			done = false
		}
	}
	return done
}

// Restart clears every trail and rewinds every script.
func (s *Scene) Restart() {
	query := s.filter.Query()
	for query.Next() {
		_, pen, script := query.Get()
		pen.Reset()
		script.Rewind()
	}
	s.accum = 0
	slog.Debug("scene restarted")
}

// SetPaused pauses or resumes Advance.
func (s *Scene) SetPaused(paused bool) {
	s.paused = paused
}

// TogglePause flips the pause state and returns the new state.
func (s *Scene) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Paused reports whether playback is paused.
func (s *Scene) Paused() bool {
	return s.paused
}

// SetStepPeriod changes playback speed.
func (s *Scene) SetStepPeriod(period float64) {
	s.opts.StepPeriod = period
}

// CommandsPerSecond returns the playback speed, 0 when unthrottled.
func (s *Scene) CommandsPerSecond() float64 {
	if s.opts.StepPeriod <= 0 {
		return 0
	}
	return 1 / s.opts.StepPeriod
}

// StepPeriod returns seconds per command.
func (s *Scene) StepPeriod() float64 {
	return s.opts.StepPeriod
}

// Each calls fn for every drawing.
func (s *Scene) Each(fn func(d *components.Drawing, pen *turtle.Pen, script *components.Script)) {
	query := s.filter.Query()
	for query.Next() {
		d, pen, script := query.Get()
		fn(d, pen.Pen, script)
	}
}

// Bounds returns the box covering every drawing's full recording, so the
// camera can frame the final picture before it is drawn.
func (s *Scene) Bounds() r2.Box {
	var box r2.Box
	first := true
	s.Each(func(_ *components.Drawing, pen *turtle.Pen, script *components.Script) {
		ghost := turtle.NewPen(pen.Origin())
		turtle.Replay(ghost, script.Commands)
		b := ghost.Bounds()
		if first {
			box = b
			first = false
			return
		}
		box.Min.X = math.Min(box.Min.X, b.Min.X)
		box.Min.Y = math.Min(box.Min.Y, b.Min.Y)
		box.Max.X = math.Max(box.Max.X, b.Max.X)
		box.Max.Y = math.Max(box.Max.Y, b.Max.Y)
	})
	return box
}
