package evaluator

import (
	"strconv"

	"github.com/funvibe/miniscript/internal/ast"
)

// readable checks that sym holds a value and reports a value error naming
// name otherwise.
func (e *Evaluator) readable(sym *Symbol, name string, line int, flag *Flag) bool {
	if !sym.Declared || !sym.Assigned {
		e.Reporter.Report(flag, ValueError, line, name)
		return false
	}
	return true
}

// scalar rejects objects and arrays read without member or index syntax,
// unless the whole value is being transferred.
func (e *Evaluator) scalar(sym *Symbol, whole bool, line int, flag *Flag) bool {
	if !whole && sym.Kind.structured() {
		e.Reporter.Report(flag, TypeError, line, "")
		return false
	}
	return true
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *Environment, flag *Flag, whole bool) Symbol {
	sym := e.lookup(env, node.Value)
	if !e.readable(sym, node.Value, node.Line, flag) {
		return Undefined()
	}
	if !e.scalar(sym, whole, node.Line, flag) {
		return Undefined()
	}
	return *sym
}

func (e *Evaluator) evalMemberExpression(node *ast.MemberExpression, env *Environment, flag *Flag, whole bool) Symbol {
	base := e.lookup(env, node.Name)
	if !e.readable(base, node.Name, node.Line, flag) {
		return Undefined()
	}
	if base.Kind != KindObject {
		e.Reporter.Report(flag, TypeError, node.Line, "")
		return Undefined()
	}
	member := base.Object.Resolve(node.Member)
	if !e.readable(member, node.Name+"."+node.Member, node.Line, flag) {
		return Undefined()
	}
	if !e.scalar(member, whole, node.Line, flag) {
		return Undefined()
	}
	return *member
}

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *Environment, flag *Flag, whole bool) (Symbol, error) {
	base := e.lookup(env, node.Name)
	if !e.readable(base, node.Name, node.Line, flag) {
		return Undefined(), nil
	}
	if base.Kind == KindObject {
		e.Reporter.Report(flag, TypeError, node.Line, "")
		return Undefined(), nil
	}

	slot, i, err := e.indexSlot(base, node.Index, env, node.Line, flag)
	if err != nil || slot == nil {
		return Undefined(), err
	}
	if !slot.Assigned {
		e.Reporter.Report(flag, ValueError, node.Line, node.Name+"["+strconv.FormatInt(i, 10)+"]")
		return Undefined(), nil
	}
	if !e.scalar(slot, whole, node.Line, flag) {
		return Undefined(), nil
	}
	return *slot, nil
}

// indexSlot evaluates index and returns the matching slot of base, growing
// the array when the index is past its end. A nil slot means a violation
// was reported.
func (e *Evaluator) indexSlot(base *Symbol, index ast.Expression, env *Environment, line int, flag *Flag) (*Symbol, int64, error) {
	idx, err := e.Eval(index, env, flag)
	if err != nil {
		return nil, 0, err
	}
	if idx.Kind != KindInteger || base.Kind != KindArray {
		e.Reporter.Report(flag, TypeError, line, "")
		return nil, 0, nil
	}
	if idx.Int < 0 || idx.Int >= MaxArrayLength {
		e.Reporter.Report(flag, TypeError, line, "")
		return nil, 0, nil
	}
	return base.Array.Slot(int(idx.Int)), idx.Int, nil
}
