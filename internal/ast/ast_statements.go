package ast

import "strings"

// Target is an assignable location produced by the parser.
// It is one of *NameTarget, *MemberTarget or *IndexTarget.
type Target interface {
	Node
	targetNode()
	// BaseName is the variable the target is rooted at.
	BaseName() string
}

// NameTarget assigns a bare variable: x = ...
type NameTarget struct {
	Line int
	Name string
}

func (nt *NameTarget) targetNode()      {}
func (nt *NameTarget) GetLine() int     { return nt.Line }
func (nt *NameTarget) String() string   { return nt.Name }
func (nt *NameTarget) BaseName() string { return nt.Name }

// MemberTarget assigns an object member: obj.field = ...
type MemberTarget struct {
	Line   int
	Name   string
	Member string
}

func (mt *MemberTarget) targetNode()      {}
func (mt *MemberTarget) GetLine() int     { return mt.Line }
func (mt *MemberTarget) String() string   { return mt.Name + "." + mt.Member }
func (mt *MemberTarget) BaseName() string { return mt.Name }

// IndexTarget assigns an array slot: arr[i] = ...
type IndexTarget struct {
	Line  int
	Name  string
	Index Expression
}

func (it *IndexTarget) targetNode()      {}
func (it *IndexTarget) GetLine() int     { return it.Line }
func (it *IndexTarget) String() string   { return it.Name + "[" + it.Index.String() + "]" }
func (it *IndexTarget) BaseName() string { return it.Name }

// WriteStatement is document.write(args...)
type WriteStatement struct {
	Line      int
	Arguments []Expression
}

func (ws *WriteStatement) statementNode() {}
func (ws *WriteStatement) GetLine() int   { return ws.Line }
func (ws *WriteStatement) String() string { return "document.write(" + joinNodes(ws.Arguments) + ")" }

// DeclarationStatement is var name [= value | = {object} | = [array]].
// At most one of Value, ObjectInit and ArrayInit is set; ObjectInit and
// ArrayInit are non-nil (possibly empty) when the initializer is present.
type DeclarationStatement struct {
	Line       int
	Name       string
	Value      Expression
	ObjectInit []Statement
	ArrayInit  []Expression
}

func (ds *DeclarationStatement) statementNode() {}
func (ds *DeclarationStatement) GetLine() int   { return ds.Line }
func (ds *DeclarationStatement) String() string {
	switch {
	case ds.Value != nil:
		return "var " + ds.Name + " = " + ds.Value.String()
	case ds.ObjectInit != nil:
		return "var " + ds.Name + " = {...}"
	case ds.ArrayInit != nil:
		return "var " + ds.Name + " = [" + joinNodes(ds.ArrayInit) + "]"
	}
	return "var " + ds.Name
}

// AssignStatement is target = value
type AssignStatement struct {
	Line   int
	Target Target
	Value  Expression
}

func (as *AssignStatement) statementNode() {}
func (as *AssignStatement) GetLine() int   { return as.Line }
func (as *AssignStatement) String() string { return as.Target.String() + " = " + as.Value.String() }

// IfStatement is if (cond) { ... } else { ... }
type IfStatement struct {
	Line        int
	Condition   Expression
	Consequence []Statement
	Alternative []Statement
}

func (is *IfStatement) statementNode() {}
func (is *IfStatement) GetLine() int   { return is.Line }
func (is *IfStatement) String() string { return "if (" + is.Condition.String() + ")" }

// LoopStatement is while (cond) { ... } when TestFirst, do { ... } while (cond) otherwise.
type LoopStatement struct {
	Line      int
	Condition Expression
	Body      []Statement
	TestFirst bool
}

func (ls *LoopStatement) statementNode() {}
func (ls *LoopStatement) GetLine() int   { return ls.Line }
func (ls *LoopStatement) String() string {
	if ls.TestFirst {
		return "while (" + ls.Condition.String() + ")"
	}
	return "do while (" + ls.Condition.String() + ")"
}

// FunctionStatement defines a named function.
type FunctionStatement struct {
	Line       int
	Name       string
	Parameters []string
	Body       []Statement
}

func (fs *FunctionStatement) statementNode() {}
func (fs *FunctionStatement) GetLine() int   { return fs.Line }
func (fs *FunctionStatement) String() string {
	return "function " + fs.Name + "(" + strings.Join(fs.Parameters, ", ") + ")"
}

// CallStatement evaluates a call for its side effects.
type CallStatement struct {
	Line int
	Call *CallExpression
}

func (cs *CallStatement) statementNode() {}
func (cs *CallStatement) GetLine() int   { return cs.Line }
func (cs *CallStatement) String() string { return cs.Call.String() }

type BreakStatement struct {
	Line int
}

func (bs *BreakStatement) statementNode() {}
func (bs *BreakStatement) GetLine() int   { return bs.Line }
func (bs *BreakStatement) String() string { return "break" }

type ContinueStatement struct {
	Line int
}

func (cs *ContinueStatement) statementNode() {}
func (cs *ContinueStatement) GetLine() int   { return cs.Line }
func (cs *ContinueStatement) String() string { return "continue" }

// ReturnStatement is return <expression>
type ReturnStatement struct {
	Line  int
	Value Expression
}

func (rs *ReturnStatement) statementNode() {}
func (rs *ReturnStatement) GetLine() int   { return rs.Line }
func (rs *ReturnStatement) String() string { return "return " + rs.Value.String() }

// NopStatement is an empty statement.
type NopStatement struct {
	Line int
}

func (ns *NopStatement) statementNode() {}
func (ns *NopStatement) GetLine() int   { return ns.Line }
func (ns *NopStatement) String() string { return ";" }

func joinNodes[T Node](nodes []T) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
