package evaluator

// Signal is the control-flow result of executing a statement.
type Signal int

const (
	SignalCompleted Signal = iota
	SignalBreak
	SignalContinue
	SignalReturn
	// SignalAborted unwinds after a failed truthiness check.
	SignalAborted
)

var signalNames = [...]string{"completed", "break", "continue", "return", "aborted"}

func (s Signal) String() string {
	if int(s) < len(signalNames) {
		return signalNames[s]
	}
	return "unknown"
}

// Outcome is returned by every statement execution. Value is only set for
// SignalReturn; Line is the line of the statement that raised the signal.
type Outcome struct {
	Signal Signal
	Value  Symbol
	Line   int
}

var completed = Outcome{Signal: SignalCompleted}

func aborted(line int) Outcome {
	return Outcome{Signal: SignalAborted, Line: line}
}
