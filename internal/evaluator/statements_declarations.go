package evaluator

import "github.com/funvibe/miniscript/internal/ast"

func (e *Evaluator) execDeclaration(node *ast.DeclarationStatement, env *Environment, flag *Flag) Outcome {
	var value Symbol
	if node.Value != nil {
		v, err := e.evalValue(node.Value, env, flag)
		if err == nil {
			value = v
		}
	}

	sym := env.Declare(node.Name)

	switch {
	case node.Value != nil:
		sym.CopyFrom(value)
		sym.Assigned = true

	case node.ObjectInit != nil:
		members := NewEnvironment()
		for _, stmt := range node.ObjectInit {
			if out := e.Exec(stmt, members, flag); out.Signal != SignalCompleted {
				return out
			}
		}
		sym.Kind = KindObject
		sym.Object = members
		sym.Assigned = true

	case node.ArrayInit != nil:
		arr := NewArray()
		for _, el := range node.ArrayInit {
			v, err := e.evalValue(el, env, flag)
			if err != nil {
				v = Undefined()
			}
			slot := &Symbol{Declared: true, Assigned: true}
			slot.CopyFrom(v)
			arr.Append(slot)
		}
		sym.Kind = KindArray
		sym.Array = arr
		sym.Assigned = true
	}
	return completed
}

func (e *Evaluator) execAssignment(node *ast.AssignStatement, env *Environment, flag *Flag) Outcome {
	value, err := e.evalValue(node.Value, env, flag)
	if err != nil {
		value = Undefined()
	}

	slot, err := e.resolveTarget(node.Target, env, flag)
	if err != nil {
		return aborted(node.Line)
	}
	if slot == nil {
		return completed
	}
	slot.CopyFrom(value)
	slot.Assigned = true
	return completed
}

// resolveTarget finds the slot an assignment writes. The base name is
// resolved in env only, never in the global scope; an undeclared one is
// reported and then treated as declared in env. A nil slot means a violation was
// reported and nothing should be written.
func (e *Evaluator) resolveTarget(target ast.Target, env *Environment, flag *Flag) (*Symbol, error) {
	line := target.GetLine()
	sym := env.Resolve(target.BaseName())
	if !sym.Declared {
		e.Reporter.Report(flag, UndeclaredError, line, target.BaseName())
		sym.Declared = true
	}

	switch t := target.(type) {
	case *ast.MemberTarget:
		if sym.Kind != KindObject {
			e.Reporter.Report(flag, TypeError, line, "")
			return nil, nil
		}
		member := sym.Object.Resolve(t.Member)
		member.Declared = true
		return member, nil

	case *ast.IndexTarget:
		if sym.Kind == KindObject {
			e.Reporter.Report(flag, TypeError, line, "")
			return nil, nil
		}
		slot, _, err := e.indexSlot(sym, t.Index, env, line, flag)
		if slot != nil {
			slot.Declared = true
		}
		return slot, err

	case *ast.NameTarget:
		if sym.Kind.structured() {
			e.Reporter.Report(flag, TypeError, line, "")
			return nil, nil
		}
		return sym, nil
	}
	e.Reporter.Report(flag, TypeError, line, "")
	return nil, nil
}
