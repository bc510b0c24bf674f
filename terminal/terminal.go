package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/turtlesoup/components"
	"github.com/pthm-cable/turtlesoup/palette"
	"github.com/pthm-cable/turtlesoup/scene"
	"github.com/pthm-cable/turtlesoup/turtle"
)

// frameRate is the number of redraws per second.
const frameRate = 30

// Options control the terminal view.
type Options struct {
	Aspect   float64 // Character cell height / width
	Marker   rune    // Turtle marker
	Gradient palette.Gradient
}

// Plot draws every trail and turtle of the scene onto screen, leaving the
// last row free for the status line. It does not call Show.
func Plot(screen tcell.Screen, s *scene.Scene, opts Options) Viewport {
	cols, rows := screen.Size()
	v := Fit(s.Bounds(), cols, rows-1, opts.Aspect)

	screen.Clear()
	s.Each(func(d *components.Drawing, pen *turtle.Pen, script *components.Script) {
		g := opts.Gradient.Offset(d.Index)
		n := script.Strokes()

		for _, seg := range pen.Trail() {
			c0, r0 := v.Cell(seg.From)
			c1, r1 := v.Cell(seg.To)
			ch := strokeRune(c1-c0, r1-r0)
			r, gr, b, _ := g.RGBA(seg.Index, n)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(gr), int32(b)))

			line(c0, r0, c1, r1, func(x, y int) {
				if v.Contains(x, y) {
					screen.SetContent(x, y, ch, nil, style)
				}
			})
		}

		if col, row := v.Cell(pen.Position()); v.Contains(col, row) {
			screen.SetContent(col, row, opts.Marker, nil, tcell.StyleDefault.Bold(true))
		}
	})
	return v
}

// Run shows the scene until q, Escape or Ctrl-C is pressed or ctx is done.
// Space pauses, n steps one command and r restarts. The caller owns screen
// and must have called Init.
func Run(ctx context.Context, screen tcell.Screen, s *scene.Scene, opts Options) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if !handleKey(ev, s) {
					slog.Debug("terminal viewer closed")
					return nil
				}
			}

		case now := <-ticker.C:
			s.Advance(now.Sub(last).Seconds())
			last = now
		}

		Plot(screen, s, opts)
		drawStatus(screen, s)
		screen.Show()
	}
}

// handleKey applies a key press and returns false when the viewer should close.
func handleKey(ev *tcell.EventKey, s *scene.Scene) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			s.TogglePause()
		case 'n':
			s.SetPaused(true)
			s.Step(1)
		case 'r':
			s.Restart()
		}
	}
	return true
}

// drawStatus writes the playback state on the last row.
func drawStatus(screen tcell.Screen, s *scene.Scene) {
	cols, rows := screen.Size()
	state := "drawing"
	if s.Paused() {
		state = "paused"
	} else if s.Done() {
		state = "done"
	}
	text := fmt.Sprintf(" %s | space pause  n step  r restart  q quit", state)

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < cols; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		screen.SetContent(x, rows-1, ch, nil, style)
	}
}
