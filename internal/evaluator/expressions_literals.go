package evaluator

import "github.com/funvibe/miniscript/internal/ast"

// Eval evaluates an expression against env. The only error it returns is
// ErrAborted; every other violation is reported under flag and yields an
// undefined result.
func (e *Evaluator) Eval(node ast.Expression, env *Environment, flag *Flag) (Symbol, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return Integer(n.Value), nil
	case *ast.StringLiteral:
		return String(n.Value), nil
	case *ast.BooleanLiteral:
		return Boolean(n.Value), nil
	case *ast.LineBreakLiteral:
		return LineBreak(), nil
	case *ast.Identifier:
		return e.evalIdentifier(n, env, flag, false), nil
	case *ast.MemberExpression:
		return e.evalMemberExpression(n, env, flag, false), nil
	case *ast.IndexExpression:
		return e.evalIndexExpression(n, env, flag, false)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(n, env, flag)
	case *ast.InfixExpression:
		return e.evalInfixExpression(n, env, flag)
	case *ast.CallExpression:
		return e.evalCallExpression(n, env, flag)
	}
	if node != nil {
		e.Reporter.Report(flag, TypeError, node.GetLine(), "")
	}
	return Undefined(), nil
}

// evalValue evaluates an expression whose whole value is transferred to a
// new owner: an initializer, an assigned value, an argument or a returned
// value. Variables read here may hold objects, arrays and functions.
func (e *Evaluator) evalValue(node ast.Expression, env *Environment, flag *Flag) (Symbol, error) {
	switch n := node.(type) {
	case *ast.Identifier:
		return e.evalIdentifier(n, env, flag, true), nil
	case *ast.MemberExpression:
		return e.evalMemberExpression(n, env, flag, true), nil
	case *ast.IndexExpression:
		return e.evalIndexExpression(n, env, flag, true)
	}
	return e.Eval(node, env, flag)
}
