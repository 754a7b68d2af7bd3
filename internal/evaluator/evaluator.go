package evaluator

import (
	"io"
	"log/slog"
	"os"

	"github.com/funvibe/miniscript/internal/ast"
)

// CallFrame represents a single frame in the call stack
type CallFrame struct {
	Name string // Function name
	Line int    // Line of the call
}

type Evaluator struct {
	// Out receives everything document.write renders.
	Out io.Writer
	// Reporter receives language diagnostics.
	Reporter *Reporter
	// GlobalEnv is the process-wide scope and the fallback for lookups
	// that miss in a function's local scope.
	GlobalEnv *Environment
	// CallStack holds the active function calls, innermost last.
	CallStack []CallFrame
	Logger    *slog.Logger
}

// New creates an evaluator writing program output to out and diagnostics
// to diag.
func New(out, diag io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{
		Out:       out,
		Reporter:  NewReporter(diag),
		GlobalEnv: NewEnvironment(),
		Logger:    slog.Default(),
	}
}

// Run hoists every function definition into the global scope and then
// executes the top-level statements in order. A break, continue or return
// that reaches the top level is reported and execution moves on.
func (e *Evaluator) Run(program *ast.Program) {
	if program == nil {
		return
	}
	e.Hoist(program.Statements)

	for _, stmt := range program.Statements {
		var flag Flag
		out := e.Exec(stmt, e.GlobalEnv, &flag)
		switch out.Signal {
		case SignalBreak, SignalContinue, SignalReturn:
			e.Logger.Debug("signal escaped top level", "signal", out.Signal.String(), "line", out.Line)
			e.Reporter.Escape(out.Line)
		}
	}
}

// Hoist registers every function definition in stmts, at any depth, in the
// global scope. Later definitions of a name replace earlier ones.
func (e *Evaluator) Hoist(stmts []ast.Statement) {
	for _, fs := range ast.Functions(stmts) {
		sym := e.GlobalEnv.Declare(fs.Name)
		sym.Kind = KindFunction
		sym.Function = fs
		sym.Assigned = true
		e.Logger.Debug("hoisted function", "name", fs.Name, "params", len(fs.Parameters), "line", fs.Line)
	}
}

// lookup resolves name in env, falling back to the global scope when env
// has no declared entry for it.
func (e *Evaluator) lookup(env *Environment, name string) *Symbol {
	sym := env.Resolve(name)
	if !sym.Declared && env != e.GlobalEnv {
		sym = e.GlobalEnv.Resolve(name)
	}
	return sym
}


func (e *Evaluator) pushCall(name string, line int) {
	e.CallStack = append(e.CallStack, CallFrame{Name: name, Line: line})
	e.Logger.Debug("call", "function", name, "line", line, "depth", len(e.CallStack))
}

func (e *Evaluator) popCall() {
	if len(e.CallStack) > 0 {
		e.CallStack = e.CallStack[:len(e.CallStack)-1]
	}
}
