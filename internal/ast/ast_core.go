package ast

import "strconv"

// Node is the base interface for all AST nodes.
type Node interface {
	// GetLine returns the source line used in diagnostics.
	GetLine() int
	String() string
}

// Statement is a Node that is executed for its effect.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node handed over by the parser.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) GetLine() int {
	if len(p.Statements) > 0 {
		return p.Statements[0].GetLine()
	}
	return 0
}

func (p *Program) String() string { return "program " + p.File }

// Identifier is a bare variable read: x
type Identifier struct {
	Line  int
	Value string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) GetLine() int    { return i.Line }
func (i *Identifier) String() string  { return i.Value }

// IntegerLiteral is an integer constant.
type IntegerLiteral struct {
	Line  int
	Value int64
}

func (il *IntegerLiteral) expressionNode() {}
func (il *IntegerLiteral) GetLine() int    { return il.Line }
func (il *IntegerLiteral) String() string  { return strconv.FormatInt(il.Value, 10) }

// StringLiteral is a string constant.
type StringLiteral struct {
	Line  int
	Value string
}

func (sl *StringLiteral) expressionNode() {}
func (sl *StringLiteral) GetLine() int    { return sl.Line }
func (sl *StringLiteral) String() string  { return strconv.Quote(sl.Value) }

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Line  int
	Value bool
}

func (bl *BooleanLiteral) expressionNode() {}
func (bl *BooleanLiteral) GetLine() int    { return bl.Line }
func (bl *BooleanLiteral) String() string  { return strconv.FormatBool(bl.Value) }

// LineBreakLiteral is the line-break marker accepted by document.write.
type LineBreakLiteral struct {
	Line int
}

func (lb *LineBreakLiteral) expressionNode() {}
func (lb *LineBreakLiteral) GetLine() int    { return lb.Line }
func (lb *LineBreakLiteral) String() string  { return "<br />" }
