package ast

import "strings"

// Operator is a binary operator.
type Operator int

const (
	OpGT Operator = iota
	OpLT
	OpGE
	OpLE
	OpNE
	OpEQ
	OpOR
	OpAND
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var operatorSymbols = map[Operator]string{
	OpGT:  ">",
	OpLT:  "<",
	OpGE:  ">=",
	OpLE:  "<=",
	OpNE:  "!=",
	OpEQ:  "==",
	OpOR:  "||",
	OpAND: "&&",
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

func (op Operator) String() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return "?"
}

// ParseOperator maps an operator symbol to its Operator.
func ParseOperator(s string) (Operator, bool) {
	for op, sym := range operatorSymbols {
		if sym == s {
			return op, true
		}
	}
	return 0, false
}

// MemberExpression is single-level dot access on a named object, e.g. obj.field
type MemberExpression struct {
	Line   int
	Name   string
	Member string
}

func (me *MemberExpression) expressionNode() {}
func (me *MemberExpression) GetLine() int    { return me.Line }
func (me *MemberExpression) String() string  { return me.Name + "." + me.Member }

// IndexExpression indexes a named array, e.g. arr[i]
type IndexExpression struct {
	Line  int
	Name  string
	Index Expression
}

func (ie *IndexExpression) expressionNode() {}
func (ie *IndexExpression) GetLine() int    { return ie.Line }
func (ie *IndexExpression) String() string  { return ie.Name + "[" + ie.Index.String() + "]" }

// PrefixExpression is the logical negation !x
type PrefixExpression struct {
	Line  int
	Right Expression
}

func (pe *PrefixExpression) expressionNode() {}
func (pe *PrefixExpression) GetLine() int    { return pe.Line }
func (pe *PrefixExpression) String() string  { return "!" + pe.Right.String() }

// InfixExpression is a binary operation, e.g. 5 + 5
type InfixExpression struct {
	Line     int
	Left     Expression
	Operator Operator
	Right    Expression
}

func (ie *InfixExpression) expressionNode() {}
func (ie *InfixExpression) GetLine() int    { return ie.Line }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator.String() + " " + ie.Right.String() + ")"
}

// CallExpression calls a function by name: f(a, b)
type CallExpression struct {
	Line      int
	Function  string
	Arguments []Expression
}

func (ce *CallExpression) expressionNode() {}
func (ce *CallExpression) GetLine() int    { return ce.Line }
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	return ce.Function + "(" + strings.Join(args, ", ") + ")"
}
