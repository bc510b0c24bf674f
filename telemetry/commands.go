package telemetry

import (
	"github.com/pthm-cable/turtlesoup/turtle"
)

// CommandRecord is one row of commands.csv: a command and the pen state
// right after it ran.
type CommandRecord struct {
	Drawing string  `csv:"drawing"`
	Index   int     `csv:"index"`
	Kind    string  `csv:"kind"`
	Value   float64 `csv:"value"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	Heading float64 `csv:"heading"`
}

// CommandLog is a Turtle that drives a pen and records every call.
type CommandLog struct {
	drawing string
	pen     *turtle.Pen
	records []CommandRecord
}

// NewCommandLog wraps pen, labelling records with drawing.
func NewCommandLog(drawing string, pen *turtle.Pen) *CommandLog {
	return &CommandLog{drawing: drawing, pen: pen}
}

// Forward moves the pen and records the call.
func (l *CommandLog) Forward(distance float64) {
	l.pen.Forward(distance)
	l.record(turtle.Forward(distance))
}

// Turn turns the pen and records the call.
func (l *CommandLog) Turn(angle float64) {
	l.pen.Turn(angle)
	l.record(turtle.Turn(angle))
}

// Records returns the recorded rows in call order.
func (l *CommandLog) Records() []CommandRecord {
	return l.records
}

// Pen returns the wrapped pen.
func (l *CommandLog) Pen() *turtle.Pen {
	return l.pen
}

func (l *CommandLog) record(c turtle.Command) {
	pos := l.pen.Position()
	l.records = append(l.records, CommandRecord{
		Drawing: l.drawing,
		Index:   len(l.records),
		Kind:    c.Kind.String(),
		Value:   c.Value,
		X:       pos.X,
		Y:       pos.Y,
		Heading: l.pen.Heading(),
	})
}
