package evaluator

import (
	"bytes"
	"testing"

	"github.com/funvibe/miniscript/internal/ast"
)

// Small constructors for hand-built trees. Lines are explicit where a test
// checks a diagnostic.

func num(n int64) ast.Expression { return &ast.IntegerLiteral{Line: 1, Value: n} }
func str(s string) ast.Expression { return &ast.StringLiteral{Line: 1, Value: s} }
func boolean(b bool) ast.Expression { return &ast.BooleanLiteral{Line: 1, Value: b} }
func br() ast.Expression { return &ast.LineBreakLiteral{Line: 1} }

func ident(line int, name string) ast.Expression {
	return &ast.Identifier{Line: line, Value: name}
}

func member(line int, name, m string) ast.Expression {
	return &ast.MemberExpression{Line: line, Name: name, Member: m}
}

func index(line int, name string, at ast.Expression) ast.Expression {
	return &ast.IndexExpression{Line: line, Name: name, Index: at}
}

func infix(line int, left ast.Expression, op ast.Operator, right ast.Expression) ast.Expression {
	return &ast.InfixExpression{Line: line, Left: left, Operator: op, Right: right}
}

func not(line int, right ast.Expression) ast.Expression {
	return &ast.PrefixExpression{Line: line, Right: right}
}

func call(line int, fn string, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Line: line, Function: fn, Arguments: args}
}

func write(line int, args ...ast.Expression) ast.Statement {
	return &ast.WriteStatement{Line: line, Arguments: args}
}

func declare(line int, name string, value ast.Expression) ast.Statement {
	return &ast.DeclarationStatement{Line: line, Name: name, Value: value}
}

func declareObject(line int, name string, members ...ast.Statement) ast.Statement {
	if members == nil {
		members = []ast.Statement{}
	}
	return &ast.DeclarationStatement{Line: line, Name: name, ObjectInit: members}
}

func declareArray(line int, name string, elems ...ast.Expression) ast.Statement {
	if elems == nil {
		elems = []ast.Expression{}
	}
	return &ast.DeclarationStatement{Line: line, Name: name, ArrayInit: elems}
}

func assign(line int, name string, value ast.Expression) ast.Statement {
	return &ast.AssignStatement{Line: line, Target: &ast.NameTarget{Line: line, Name: name}, Value: value}
}

func assignMember(line int, name, m string, value ast.Expression) ast.Statement {
	return &ast.AssignStatement{Line: line, Target: &ast.MemberTarget{Line: line, Name: name, Member: m}, Value: value}
}

func assignIndex(line int, name string, at, value ast.Expression) ast.Statement {
	return &ast.AssignStatement{Line: line, Target: &ast.IndexTarget{Line: line, Name: name, Index: at}, Value: value}
}

func function(line int, name string, params []string, body ...ast.Statement) ast.Statement {
	return &ast.FunctionStatement{Line: line, Name: name, Parameters: params, Body: body}
}

func callStmt(line int, fn string, args ...ast.Expression) ast.Statement {
	return &ast.CallStatement{Line: line, Call: call(line, fn, args...)}
}

func ret(line int, value ast.Expression) ast.Statement {
	return &ast.ReturnStatement{Line: line, Value: value}
}

func ifElse(line int, cond ast.Expression, then, otherwise []ast.Statement) ast.Statement {
	return &ast.IfStatement{Line: line, Condition: cond, Consequence: then, Alternative: otherwise}
}

func while(line int, cond ast.Expression, body ...ast.Statement) ast.Statement {
	return &ast.LoopStatement{Line: line, Condition: cond, Body: body, TestFirst: true}
}

func doWhile(line int, cond ast.Expression, body ...ast.Statement) ast.Statement {
	return &ast.LoopStatement{Line: line, Condition: cond, Body: body}
}

func block(stmts ...ast.Statement) []ast.Statement { return stmts }

// runProgram executes stmts and returns program output, diagnostic output
// and the evaluator for further inspection.
func runProgram(t *testing.T, stmts ...ast.Statement) (string, string, *Evaluator) {
	t.Helper()
	var out, diag bytes.Buffer
	e := New(&out, &diag)
	e.Run(&ast.Program{File: t.Name(), Statements: stmts})
	return out.String(), diag.String(), e
}
