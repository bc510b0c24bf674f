package turtle

// Recorder is a Turtle that only remembers the commands it was given.
type Recorder struct {
	commands []Command
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Forward records a forward command.
func (r *Recorder) Forward(distance float64) {
	r.commands = append(r.commands, Forward(distance))
}

// Turn records a turn command.
func (r *Recorder) Turn(angle float64) {
	r.commands = append(r.commands, Turn(angle))
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}
