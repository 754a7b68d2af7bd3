package evaluator

import "github.com/funvibe/miniscript/internal/ast"

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *Environment, flag *Flag) (Symbol, error) {
	callee := e.lookup(env, node.Function)
	if !callee.Declared || callee.Kind != KindFunction || callee.Function == nil {
		return e.typeViolation(node, flag)
	}
	fn := callee.Function
	if len(node.Arguments) != len(fn.Parameters) {
		return e.typeViolation(node, flag)
	}

	// Each argument reports its own first error.
	args := make([]Symbol, len(node.Arguments))
	for i, arg := range node.Arguments {
		var argFlag Flag
		v, err := e.evalValue(arg, env, &argFlag)
		if err != nil {
			return Undefined(), err
		}
		args[i] = v
	}
	return e.ApplyFunction(fn, args, node.Line, flag)
}

// ApplyFunction runs fn in a fresh local scope holding only its parameters.
// The arguments must match the parameters in number and order. The body
// reports through flag, the flag of the statement making the call.
func (e *Evaluator) ApplyFunction(fn *ast.FunctionStatement, args []Symbol, line int, flag *Flag) (Symbol, error) {
	local := NewEnvironment()
	for i, name := range fn.Parameters {
		param := local.Declare(name)
		param.CopyFrom(args[i])
		param.Assigned = true
	}

	e.pushCall(fn.Name, line)
	defer e.popCall()

	out := e.execBlock(fn.Body, local, flag)
	switch out.Signal {
	case SignalReturn:
		return out.Value, nil
	case SignalAborted:
		return Undefined(), ErrAborted
	case SignalBreak, SignalContinue:
		e.Logger.Debug("signal escaped function", "function", fn.Name, "signal", out.Signal.String(), "line", out.Line)
		e.Reporter.Report(flag, TypeError, out.Line, "")
	}
	return Undefined(), nil
}
