// Package prettyprinter renders a program tree back as miniscript source.
package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/funvibe/miniscript/internal/ast"
)

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[ast.Operator]int{
	ast.OpOR:  1,
	ast.OpAND: 2,
	ast.OpEQ:  3,
	ast.OpNE:  3,
	ast.OpLT:  4,
	ast.OpGT:  4,
	ast.OpLE:  4,
	ast.OpGE:  4,
	ast.OpAdd: 5,
	ast.OpSub: 5,
	ast.OpMul: 6,
	ast.OpDiv: 6,
}

// prefixPrecedence binds tighter than every binary operator.
const prefixPrecedence = 7

func precedence(e ast.Expression) int {
	switch n := e.(type) {
	case *ast.InfixExpression:
		return operatorPrecedence[n.Operator]
	case *ast.PrefixExpression:
		return prefixPrecedence
	}
	return prefixPrecedence + 1
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders a whole program.
func Print(program *ast.Program) string {
	p := NewCodePrinter()
	p.Statements(program.Statements)
	return p.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) Statements(stmts []ast.Statement) {
	for _, s := range stmts {
		p.writeIndent()
		p.Statement(s)
		p.write("\n")
	}
}

func (p *CodePrinter) block(stmts []ast.Statement) {
	p.write("{\n")
	p.indent++
	p.Statements(stmts)
	p.indent--
	p.writeIndent()
	p.write("}")
}

// Statement renders one statement without indentation or trailing newline.
func (p *CodePrinter) Statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.WriteStatement:
		p.write("document.write(")
		p.expressionList(s.Arguments)
		p.write(");")

	case *ast.DeclarationStatement:
		p.write("var " + s.Name)
		switch {
		case s.Value != nil:
			p.write(" = ")
			p.Expression(s.Value)
		case s.ObjectInit != nil:
			p.write(" = ")
			p.object(s.ObjectInit)
		case s.ArrayInit != nil:
			p.write(" = [")
			p.expressionList(s.ArrayInit)
			p.write("]")
		}
		p.write(";")

	case *ast.AssignStatement:
		p.target(s.Target)
		p.write(" = ")
		p.Expression(s.Value)
		p.write(";")

	case *ast.IfStatement:
		p.write("if (")
		p.Expression(s.Condition)
		p.write(") ")
		p.block(s.Consequence)
		if len(s.Alternative) > 0 {
			p.write(" else ")
			p.block(s.Alternative)
		}

	case *ast.LoopStatement:
		if s.TestFirst {
			p.write("while (")
			p.Expression(s.Condition)
			p.write(") ")
			p.block(s.Body)
			return
		}
		p.write("do ")
		p.block(s.Body)
		p.write(" while (")
		p.Expression(s.Condition)
		p.write(");")

	case *ast.FunctionStatement:
		p.write("function " + s.Name + "(")
		for i, param := range s.Parameters {
			if i > 0 {
				p.write(", ")
			}
			p.write(param)
		}
		p.write(") ")
		p.block(s.Body)

	case *ast.CallStatement:
		p.Expression(s.Call)
		p.write(";")

	case *ast.BreakStatement:
		p.write("break;")
	case *ast.ContinueStatement:
		p.write("continue;")
	case *ast.ReturnStatement:
		p.write("return")
		if s.Value != nil {
			p.write(" ")
			p.Expression(s.Value)
		}
		p.write(";")
	case *ast.NopStatement:
		p.write(";")
	}
}

// object prints an initializer. Plain member declarations use the
// key: value form; anything else is printed as a statement.
func (p *CodePrinter) object(members []ast.Statement) {
	if len(members) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	for i, m := range members {
		p.writeIndent()
		if d, ok := m.(*ast.DeclarationStatement); ok && d.Value != nil {
			p.write(d.Name + ": ")
			p.Expression(d.Value)
		} else {
			p.Statement(m)
		}
		if i < len(members)-1 {
			p.write(",")
		}
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) target(t ast.Target) {
	switch n := t.(type) {
	case *ast.MemberTarget:
		p.write(n.Name + "." + n.Member)
	case *ast.IndexTarget:
		p.write(n.Name + "[")
		p.Expression(n.Index)
		p.write("]")
	default:
		p.write(t.BaseName())
	}
}

func (p *CodePrinter) expressionList(exprs []ast.Expression) {
	for i, e := range exprs {
		if i > 0 {
			p.write(", ")
		}
		p.Expression(e)
	}
}

// Expression renders e with the minimum parentheses its operators need.
func (p *CodePrinter) Expression(e ast.Expression) {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		p.write(strconv.FormatInt(n.Value, 10))
	case *ast.StringLiteral:
		p.write(strconv.Quote(n.Value))
	case *ast.BooleanLiteral:
		p.write(strconv.FormatBool(n.Value))
	case *ast.LineBreakLiteral:
		p.write(`"<br />"`)
	case *ast.Identifier:
		p.write(n.Value)
	case *ast.MemberExpression:
		p.write(n.Name + "." + n.Member)
	case *ast.IndexExpression:
		p.write(n.Name + "[")
		p.Expression(n.Index)
		p.write("]")
	case *ast.CallExpression:
		p.write(n.Function + "(")
		p.expressionList(n.Arguments)
		p.write(")")
	case *ast.PrefixExpression:
		p.write("!")
		p.operand(n.Right, prefixPrecedence, false)
	case *ast.InfixExpression:
		prec := operatorPrecedence[n.Operator]
		p.operand(n.Left, prec, false)
		p.write(" " + n.Operator.String() + " ")
		// All binary operators are left-associative.
		p.operand(n.Right, prec, true)
	}
}

func (p *CodePrinter) operand(e ast.Expression, parent int, right bool) {
	prec := precedence(e)
	if prec < parent || (right && prec == parent) {
		p.write("(")
		p.Expression(e)
		p.write(")")
		return
	}
	p.Expression(e)
}
