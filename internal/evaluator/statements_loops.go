package evaluator

import "github.com/funvibe/miniscript/internal/ast"

// execLoop runs a while loop (TestFirst) or a do-while loop. A condition
// that cannot be evaluated ends the loop without further diagnostics.
func (e *Evaluator) execLoop(node *ast.LoopStatement, env *Environment, flag *Flag) Outcome {
	if node.TestFirst && !e.loopCondition(node, env, flag) {
		return completed
	}

	for {
		out := e.execBlock(node.Body, env, flag)
		switch out.Signal {
		case SignalBreak, SignalAborted:
			return completed
		case SignalReturn:
			return out
		}
		if !e.loopCondition(node, env, flag) {
			return completed
		}
	}
}

func (e *Evaluator) loopCondition(node *ast.LoopStatement, env *Environment, flag *Flag) bool {
	cond, err := e.Eval(node.Condition, env, flag)
	if err != nil {
		return false
	}
	truth, err := e.Truth(cond, node.Condition.GetLine(), flag)
	return err == nil && truth
}
