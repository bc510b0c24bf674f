// Package components defines ECS components for the turtle scene.
package components

import (
	"github.com/gammazero/deque"

	"github.com/pthm-cable/turtlesoup/turtle"
)

// Drawing identifies one program in the scene.
type Drawing struct {
	Name  string
	Index int // Position in the gallery, left to right
}

// Pen holds the turtle that draws the trail.
type Pen struct {
	*turtle.Pen
}

// Script is the program recording being played back on the pen.
type Script struct {
	Commands []turtle.Command            // Full recording, in order
	Pending  deque.Deque[turtle.Command] // Not yet applied
	Applied  int                         // Number of commands applied so far
}

// NewScript queues every command of a recording.
func NewScript(commands []turtle.Command) *Script {
	s := &Script{Commands: commands}
	s.Rewind()
	return s
}

// Rewind queues the full recording again.
func (s *Script) Rewind() {
	s.Pending.Clear()
	for _, c := range s.Commands {
		s.Pending.PushBack(c)
	}
	s.Applied = 0
}

// Next pops the next command. ok is false when the script is finished.
func (s *Script) Next() (c turtle.Command, ok bool) {
	if s.Pending.Len() == 0 {
		return turtle.Command{}, false
	}
	s.Applied++
	return s.Pending.PopFront(), true
}

// Done reports whether every command has been applied.
func (s *Script) Done() bool {
	return s.Pending.Len() == 0
}

// Progress returns the applied fraction in [0, 1].
func (s *Script) Progress() float32 {
	if len(s.Commands) == 0 {
		return 1
	}
	return float32(s.Applied) / float32(len(s.Commands))
}

// Strokes returns the number of trail segments the full recording draws.
func (s *Script) Strokes() int {
	n := 0
	for _, c := range s.Commands {
		if c.Kind == turtle.KindForward && c.Value != 0 {
			n++
		}
	}
	return n
}
