package evaluator

import "github.com/funvibe/miniscript/internal/ast"

// Exec executes one statement against env. flag belongs to the enclosing
// top-level statement; nested bodies share it, so one top-level statement
// prints at most one diagnostic however often its body runs.
func (e *Evaluator) Exec(stmt ast.Statement, env *Environment, flag *Flag) Outcome {
	switch s := stmt.(type) {
	case *ast.WriteStatement:
		return e.execWrite(s, env, flag)
	case *ast.DeclarationStatement:
		return e.execDeclaration(s, env, flag)
	case *ast.AssignStatement:
		return e.execAssignment(s, env, flag)
	case *ast.IfStatement:
		return e.execIf(s, env, flag)
	case *ast.LoopStatement:
		return e.execLoop(s, env, flag)
	case *ast.FunctionStatement:
		// Registered by Hoist; the body only runs through calls.
		return completed
	case *ast.CallStatement:
		if _, err := e.evalCallExpression(s.Call, env, flag); err != nil {
			return aborted(s.Line)
		}
		return completed
	case *ast.BreakStatement:
		return Outcome{Signal: SignalBreak, Line: s.Line}
	case *ast.ContinueStatement:
		return Outcome{Signal: SignalContinue, Line: s.Line}
	case *ast.ReturnStatement:
		return e.execReturn(s, env, flag)
	case *ast.NopStatement:
		return completed
	}
	if stmt != nil {
		e.Reporter.Report(flag, TypeError, stmt.GetLine(), "")
	}
	return completed
}

// execBlock runs stmts in order and stops at the first signal.
func (e *Evaluator) execBlock(stmts []ast.Statement, env *Environment, flag *Flag) Outcome {
	for _, stmt := range stmts {
		if out := e.Exec(stmt, env, flag); out.Signal != SignalCompleted {
			return out
		}
	}
	return completed
}

func (e *Evaluator) execIf(node *ast.IfStatement, env *Environment, flag *Flag) Outcome {
	cond, err := e.Eval(node.Condition, env, flag)
	if err != nil {
		return completed
	}
	truth, err := e.Truth(cond, node.Condition.GetLine(), flag)
	if err != nil {
		return completed
	}
	if truth {
		return e.execBlock(node.Consequence, env, flag)
	}
	return e.execBlock(node.Alternative, env, flag)
}

func (e *Evaluator) execReturn(node *ast.ReturnStatement, env *Environment, flag *Flag) Outcome {
	if node.Value == nil {
		return Outcome{Signal: SignalReturn, Value: Undefined(), Line: node.Line}
	}
	v, err := e.evalValue(node.Value, env, flag)
	if err != nil {
		return aborted(node.Line)
	}
	return Outcome{Signal: SignalReturn, Value: v, Line: node.Line}
}
