package evaluator

import (
	"errors"
	"fmt"
	"io"
)

// ErrAborted is returned by expression evaluation after a condition
// violation; the enclosing construct stops without executing further.
var ErrAborted = errors.New("evaluation aborted")

type ErrorKind int

const (
	TypeError ErrorKind = iota
	ValueError
	ParameterError
	ConditionError
	UndeclaredError
)

var errorKindNames = [...]string{"type", "value", "parameter", "condition", "undeclared"}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "unknown"
}

// RuntimeError is a language-level violation. Suppressed is set when an
// earlier error under the same flag was already printed.
type RuntimeError struct {
	Kind       ErrorKind
	Line       int
	Name       string
	Suppressed bool
}

func (e *RuntimeError) Message() string {
	switch e.Kind {
	case TypeError:
		return "type violation"
	case ValueError:
		return e.Name + " has no value"
	case ParameterError:
		return "unknown parameter type"
	case ConditionError:
		return "condition unknown"
	case UndeclaredError:
		return e.Name + " undeclared"
	}
	return "unknown error"
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Line %d, %s", e.Line, e.Message())
}

// Flag marks that a diagnostic was already printed for one statement or one
// independently evaluated argument. The zero value is ready to use.
type Flag struct {
	reported bool
}

func (f *Flag) Reported() bool { return f.reported }

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// Reporter writes diagnostics to the diagnostic sink and keeps every error,
// printed or not.
type Reporter struct {
	out    io.Writer
	color  bool
	errors []*RuntimeError
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// SetColor enables ANSI colouring of the line prefix.
func (r *Reporter) SetColor(on bool) { r.color = on }

// Report records an error and prints it unless flag was already set.
func (r *Reporter) Report(flag *Flag, kind ErrorKind, line int, name string) {
	err := &RuntimeError{Kind: kind, Line: line, Name: name, Suppressed: flag.reported}
	r.errors = append(r.errors, err)
	if !flag.reported {
		r.print(err)
	}
	flag.reported = true
}

// Escape reports a break, continue or return that left the top level.
func (r *Reporter) Escape(line int) {
	err := &RuntimeError{Kind: TypeError, Line: line}
	r.errors = append(r.errors, err)
	r.print(err)
}

func (r *Reporter) print(err *RuntimeError) {
	if r.out == nil {
		return
	}
	if r.color {
		fmt.Fprintf(r.out, "%sLine %d%s, %s\n", colorRed, err.Line, colorReset, err.Message())
		return
	}
	fmt.Fprintln(r.out, err.Error())
}

// Errors returns every reported error in order, including suppressed ones.
func (r *Reporter) Errors() []*RuntimeError {
	return r.errors
}

// Printed returns the errors that reached the diagnostic sink.
func (r *Reporter) Printed() []*RuntimeError {
	var out []*RuntimeError
	for _, e := range r.errors {
		if !e.Suppressed {
			out = append(out, e)
		}
	}
	return out
}
