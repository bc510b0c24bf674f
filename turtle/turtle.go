// Package turtle defines the Turtle collaborator, the drawing programs that
// drive it, and two implementations: a Recorder that captures commands and
// a Pen that keeps position, heading and trail.
package turtle

import "fmt"

// Turtle moves on the plane leaving a trail.
type Turtle interface {
	// Forward moves distance units along the current heading.
	Forward(distance float64)
	// Turn rotates the heading clockwise by angle degrees.
	Turn(angle float64)
}

// Kind identifies a turtle command.
type Kind uint8

const (
	KindForward Kind = iota
	KindTurn
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindForward:
		return "forward"
	case KindTurn:
		return "turn"
	default:
		return "unknown"
	}
}

// Command is a single recorded turtle call.
type Command struct {
	Kind  Kind
	Value float64
}

// Forward returns a forward command.
func Forward(distance float64) Command {
	return Command{Kind: KindForward, Value: distance}
}

// Turn returns a turn command.
func Turn(angle float64) Command {
	return Command{Kind: KindTurn, Value: angle}
}

// String returns the command as "forward(50)" or "turn(90)".
func (c Command) String() string {
	return fmt.Sprintf("%s(%g)", c.Kind, c.Value)
}

// Apply issues the command on t.
func (c Command) Apply(t Turtle) {
	switch c.Kind {
	case KindForward:
		t.Forward(c.Value)
	case KindTurn:
		t.Turn(c.Value)
	}
}

// Replay issues every command in order on t.
func Replay(t Turtle, commands []Command) {
	for _, c := range commands {
		c.Apply(t)
	}
}
