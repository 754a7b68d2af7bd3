package evaluator

import "github.com/funvibe/miniscript/internal/ast"

// Truth maps a value to a condition: booleans are themselves, integers are
// true when non-zero and strings when non-empty. Any other kind is a
// condition violation and aborts the enclosing construct.
func (e *Evaluator) Truth(v Symbol, line int, flag *Flag) (bool, error) {
	switch v.Kind {
	case KindBoolean:
		return v.Bool, nil
	case KindInteger:
		return v.Int != 0, nil
	case KindString:
		return v.Str != "", nil
	}
	e.Reporter.Report(flag, ConditionError, line, "")
	return false, ErrAborted
}

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *Environment, flag *Flag) (Symbol, error) {
	right, err := e.Eval(node.Right, env, flag)
	if err != nil {
		return Undefined(), err
	}
	if !right.Kind.truthy() {
		e.Reporter.Report(flag, TypeError, node.Line, "")
		return Undefined(), nil
	}
	t, err := e.Truth(right, node.Right.GetLine(), flag)
	if err != nil {
		return Undefined(), err
	}
	return Boolean(!t), nil
}

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *Environment, flag *Flag) (Symbol, error) {
	left, err := e.Eval(node.Left, env, flag)
	if err != nil {
		return Undefined(), err
	}

	switch node.Operator {
	case ast.OpAND:
		t, err := e.Truth(left, node.Left.GetLine(), flag)
		if err != nil {
			return Undefined(), err
		}
		if !t {
			return Boolean(false), nil
		}
	case ast.OpOR:
		t, err := e.Truth(left, node.Left.GetLine(), flag)
		if err != nil {
			return Undefined(), err
		}
		if t {
			return Boolean(true), nil
		}
	}

	// left is held by value: evaluating right may call a function that
	// changes the variables left was read from.
	right, err := e.Eval(node.Right, env, flag)
	if err != nil {
		return Undefined(), err
	}
	return e.evalInfix(node, left, right, flag)
}

func (e *Evaluator) evalInfix(node *ast.InfixExpression, left, right Symbol, flag *Flag) (Symbol, error) {
	if left.Kind == KindUndefined || right.Kind == KindUndefined {
		return Undefined(), nil
	}

	if left.Kind != right.Kind {
		if !left.Kind.truthy() || !right.Kind.truthy() {
			return e.typeViolation(node, flag)
		}
		lt, _ := e.Truth(left, node.Line, flag)
		rt, _ := e.Truth(right, node.Line, flag)
		switch node.Operator {
		case ast.OpOR:
			return Boolean(lt || rt), nil
		case ast.OpAND:
			return Boolean(lt && rt), nil
		}
		return e.typeViolation(node, flag)
	}

	switch left.Kind {
	case KindString:
		return e.evalStringInfix(node, left.Str, right.Str, flag)
	case KindInteger:
		return e.evalIntegerInfix(node, left.Int, right.Int, flag)
	case KindBoolean:
		return e.evalBooleanInfix(node, left.Bool, right.Bool, flag)
	}
	return e.typeViolation(node, flag)
}

func (e *Evaluator) evalStringInfix(node *ast.InfixExpression, l, r string, flag *Flag) (Symbol, error) {
	switch node.Operator {
	case ast.OpAdd:
		return String(l + r), nil
	case ast.OpOR:
		return Boolean(l != "" || r != ""), nil
	case ast.OpAND:
		return Boolean(l != "" && r != ""), nil
	case ast.OpEQ:
		return Boolean(l == r), nil
	case ast.OpNE:
		return Boolean(l != r), nil
	}
	return e.typeViolation(node, flag)
}

func (e *Evaluator) evalIntegerInfix(node *ast.InfixExpression, l, r int64, flag *Flag) (Symbol, error) {
	switch node.Operator {
	case ast.OpAdd:
		return Integer(l + r), nil
	case ast.OpSub:
		return Integer(l - r), nil
	case ast.OpMul:
		return Integer(l * r), nil
	case ast.OpDiv:
		if r == 0 {
			return e.typeViolation(node, flag)
		}
		return Integer(l / r), nil
	case ast.OpGT:
		return Boolean(l > r), nil
	case ast.OpLT:
		return Boolean(l < r), nil
	case ast.OpGE:
		return Boolean(l >= r), nil
	case ast.OpLE:
		return Boolean(l <= r), nil
	case ast.OpOR:
		return Boolean(l != 0 || r != 0), nil
	case ast.OpAND:
		return Boolean(l != 0 && r != 0), nil
	case ast.OpEQ:
		return Boolean(l == r), nil
	case ast.OpNE:
		return Boolean(l != r), nil
	}
	return e.typeViolation(node, flag)
}

func (e *Evaluator) evalBooleanInfix(node *ast.InfixExpression, l, r bool, flag *Flag) (Symbol, error) {
	switch node.Operator {
	case ast.OpOR:
		return Boolean(l || r), nil
	case ast.OpAND:
		return Boolean(l && r), nil
	case ast.OpEQ:
		return Boolean(l == r), nil
	case ast.OpNE:
		return Boolean(l != r), nil
	}
	return e.typeViolation(node, flag)
}

func (e *Evaluator) typeViolation(node ast.Node, flag *Flag) (Symbol, error) {
	e.Reporter.Report(flag, TypeError, node.GetLine(), "")
	return Undefined(), nil
}
